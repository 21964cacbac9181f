package syntax

import "testing"

func TestNodeOrTokenFullText(t *testing.T) {
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte("let  x = 1;"))
	tokens := NewLexer(arena, text, diags).Tokenize()

	var rebuilt string
	for _, tok := range tokens {
		rebuilt += NewTokenElement(tok).FullText()
	}
	if rebuilt != "let  x = 1;" {
		t.Errorf("FullText() mismatch: got %q", rebuilt)
	}
}

func TestNodeChildAccessors(t *testing.T) {
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte("true"))
	tokens := NewLexer(arena, text, diags).Tokenize()

	node := arena.NewNode(TrueLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(tokens[0])})
	if len(node.ChildTokens()) != 1 {
		t.Fatalf("expected one child token")
	}
	if len(node.ChildNodes()) != 0 {
		t.Fatalf("expected no child nodes")
	}
	if node.FirstToken() != tokens[0] {
		t.Errorf("FirstToken() did not return the wrapped token")
	}
	if node.LastToken() != tokens[0] {
		t.Errorf("LastToken() did not return the wrapped token")
	}
}

func TestMissingTokenIsZeroWidth(t *testing.T) {
	arena := NewArena()
	tok := arena.NewMissingToken(SemicolonToken, SourcePosition(5))
	if !tok.IsMissing() {
		t.Errorf("expected IsMissing() to be true")
	}
	if !tok.Span.IsEmpty() {
		t.Errorf("expected a missing token to have an empty span")
	}
	if tok.FullText() != "" {
		t.Errorf("expected a missing token's FullText to be empty, got %q", tok.FullText())
	}
}

func TestArenaInternDeduplicates(t *testing.T) {
	arena := NewArena()
	a := arena.Intern("hello")
	b := arena.Intern("hello")
	if &a == &b {
		t.Skip("string header comparison is not meaningful here")
	}
	if a != b {
		t.Errorf("expected interned strings to compare equal")
	}
}

func TestEmptyTriviaRangeIsShared(t *testing.T) {
	arena := NewArena()
	a := arena.NewTriviaRange(nil)
	b := arena.NewTriviaRange(nil)
	if a != b {
		t.Errorf("expected empty TriviaRange to be deduplicated to a single instance")
	}
}
