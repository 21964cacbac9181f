package syntax

import "testing"

func TestSourceTextLineIndexing(t *testing.T) {
	src := NewSourceText("test.wv", []byte("abc\ndef\r\nghi"))
	if got, want := src.LineCount(), 3; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if got, want := src.GetLineContent(0), "abc"; got != want {
		t.Errorf("line 0 = %q, want %q", got, want)
	}
	if got, want := src.GetLineContent(1), "def"; got != want {
		t.Errorf("line 1 = %q, want %q", got, want)
	}
	if got, want := src.GetLineContent(2), "ghi"; got != want {
		t.Errorf("line 2 = %q, want %q", got, want)
	}
}

func TestSourceTextLonelyCarriageReturnIsNotNewline(t *testing.T) {
	// A lone '\r' (not followed by '\n') must not start a new line.
	src := NewSourceText("test.wv", []byte("a\rb\n"))
	if got, want := src.LineCount(), 2; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if got, want := src.GetLineContent(0), "a\rb"; got != want {
		t.Errorf("line 0 = %q, want %q", got, want)
	}
}

func TestSourceTextLinePosition(t *testing.T) {
	src := NewSourceText("test.wv", []byte("ab\ncd"))
	pos := src.LinePosition(SourcePosition(4))
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("LinePosition(4) = %+v, want {Line:1 Column:1}", pos)
	}
}

func TestSourceTextFullSpanRoundTrips(t *testing.T) {
	text := "fn main() {}\n"
	src := NewSourceText("test.wv", []byte(text))
	if got := src.Text(src.FullSpan()); got != text {
		t.Errorf("Text(FullSpan()) = %q, want %q", got, text)
	}
}
