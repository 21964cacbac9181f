package syntax

import "sort"

// SourceText owns the UTF-8 source buffer for one compilation and
// precomputes line-start offsets so that byte offsets can be mapped
// to and from (line, column) pairs (spec §4.1).
//
// Line-ending policy: "\n" and "\r\n" begin a new line and are
// included in the preceding line's span; a lone "\r" does not start a
// new line. The final line has no terminator.
type SourceText struct {
	filename   string
	text       string
	lineStarts []SourcePosition
}

// NewSourceText scans buf once to record line-start offsets and
// returns a SourceText. filename is an opaque label attached to
// diagnostics; it is never interpreted (no filesystem access occurs
// here).
func NewSourceText(filename string, buf []byte) *SourceText {
	text := string(buf)
	lineStarts := []SourcePosition{0}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lineStarts = append(lineStarts, SourcePosition(i+1))
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
				lineStarts = append(lineStarts, SourcePosition(i+1))
			}
			// a lone '\r' not followed by '\n' does not start a new line
		}
	}

	return &SourceText{filename: filename, text: text, lineStarts: lineStarts}
}

// Filename returns the opaque logical filename passed to NewSourceText.
func (s *SourceText) Filename() string {
	return s.filename
}

// Len returns the number of bytes in the source buffer.
func (s *SourceText) Len() int {
	return len(s.text)
}

// Bytes returns the raw source buffer.
func (s *SourceText) Bytes() []byte {
	return []byte(s.text)
}

// Text returns the substring covered by span.
func (s *SourceText) Text(span SourceSpan) string {
	return s.text[span.Start:span.End]
}

// FullSpan returns the span covering the entire source buffer.
func (s *SourceText) FullSpan() SourceSpan {
	return SourceSpan{Start: 0, End: SourcePosition(len(s.text))}
}

// LineCount returns the number of lines, including a trailing
// terminator-less final line.
func (s *SourceText) LineCount() int {
	return len(s.lineStarts)
}

// LineIndex returns the zero-based index of the line containing
// offset, found by binary search over the precomputed line starts.
func (s *SourceText) LineIndex(offset SourcePosition) int {
	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	return i - 1
}

// LinePosition maps a byte offset to a (line, column) pair.
func (s *SourceText) LinePosition(offset SourcePosition) LinePosition {
	line := s.LineIndex(offset)
	return LinePosition{Line: line, Column: int(offset - s.lineStarts[line])}
}

// LineSpan maps a SourceSpan to the LinePosition pair delimiting it.
func (s *SourceText) LineSpan(span SourceSpan) LineSpan {
	return LineSpan{Start: s.LinePosition(span.Start), End: s.LinePosition(span.End)}
}

// GetLine returns the full span of line i, including its terminator
// (if any).
func (s *SourceText) GetLine(i int) SourceSpan {
	start := s.lineStarts[i]
	var end SourcePosition
	if i+1 < len(s.lineStarts) {
		end = s.lineStarts[i+1]
	} else {
		end = SourcePosition(len(s.text))
	}
	return SourceSpan{Start: start, End: end}
}

// GetLineContent returns the text of line i without its terminator.
func (s *SourceText) GetLineContent(i int) string {
	span := s.GetLine(i)
	text := s.Text(span)
	text = trimLineTerminator(text)
	return text
}

func trimLineTerminator(text string) string {
	n := len(text)
	if n >= 2 && text[n-2] == '\r' && text[n-1] == '\n' {
		return text[:n-2]
	}
	if n >= 1 && (text[n-1] == '\n' || text[n-1] == '\r') {
		return text[:n-1]
	}
	return text
}
