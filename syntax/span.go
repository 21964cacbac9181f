package syntax

import "fmt"

// SourcePosition is a 32-bit byte offset into a source buffer.
type SourcePosition uint32

// SourceSpan is a half-open [Start, End) range of byte offsets. Empty
// spans (Start == End) are legal, e.g. for missing tokens.
type SourceSpan struct {
	Start SourcePosition
	End   SourcePosition
}

// NewSourceSpan builds a span, panicking if start > end.
func NewSourceSpan(start, end SourcePosition) SourceSpan {
	if start > end {
		panic(fmt.Sprintf("syntax: invalid span [%d, %d)", start, end))
	}
	return SourceSpan{Start: start, End: end}
}

// EmptySpanAt returns a zero-length span anchored at pos, as used for
// missing tokens.
func EmptySpanAt(pos SourcePosition) SourceSpan {
	return SourceSpan{Start: pos, End: pos}
}

// Len returns the number of bytes the span covers.
func (s SourceSpan) Len() int {
	return int(s.End - s.Start)
}

// IsEmpty reports whether the span covers zero bytes.
func (s SourceSpan) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether other lies entirely within s.
func (s SourceSpan) Contains(other SourceSpan) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Union returns the smallest span covering both s and other.
func (s SourceSpan) Union(other SourceSpan) SourceSpan {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return SourceSpan{Start: start, End: end}
}

// String renders the span as "[start, end)".
func (s SourceSpan) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// LinePosition is a zero-based line and column. Column is measured in
// bytes within the line, not grapheme clusters (spec §3.1).
type LinePosition struct {
	Line   int
	Column int
}

// String renders as "line:column" using one-based line/column, the
// conventional presentation for diagnostics.
func (p LinePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// LineSpan is a pair of LinePositions delimiting a range.
type LineSpan struct {
	Start LinePosition
	End   LinePosition
}

func (s LineSpan) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
