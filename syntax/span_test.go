package syntax

import "testing"

func TestSourceSpan(t *testing.T) {
	s := NewSourceSpan(3, 7)
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if s.IsEmpty() {
		t.Errorf("IsEmpty() = true, want false")
	}
	if !EmptySpanAt(5).IsEmpty() {
		t.Errorf("EmptySpanAt(5).IsEmpty() = false, want true")
	}
}

func TestSourceSpanContains(t *testing.T) {
	outer := NewSourceSpan(0, 10)
	inner := NewSourceSpan(2, 5)
	if !outer.Contains(inner) {
		t.Errorf("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Errorf("did not expect inner to contain outer")
	}
}

func TestSourceSpanUnion(t *testing.T) {
	a := NewSourceSpan(0, 5)
	b := NewSourceSpan(3, 10)
	u := a.Union(b)
	if u.Start != 0 || u.End != 10 {
		t.Errorf("Union() = %v, want {0 10}", u)
	}
}

func TestSourceSpanPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for start > end")
		}
	}()
	NewSourceSpan(5, 3)
}

func TestLinePositionString(t *testing.T) {
	p := LinePosition{Line: 2, Column: 4}
	if got, want := p.String(), "3:5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
