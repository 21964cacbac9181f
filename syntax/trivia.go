package syntax

// Trivia is a single piece of insignificant text: whitespace, a
// comment, a documentation comment, or a shebang line (spec §3.3).
// Trivia is preserved verbatim so the tree round-trips losslessly.
type Trivia struct {
	Kind SyntaxKind
	Span SourceSpan
	Text string
}

// TriviaRange is the (possibly empty) ordered run of Trivia attached
// to one side of a token. Arena.EmptyTriviaRange hands out a single
// shared instance for the overwhelmingly common empty case (spec §3.6
// "Trivia-range deduplication"); non-empty ranges get their own
// arena-owned backing slice.
type TriviaRange struct {
	Items []Trivia
}

// NewTriviaRange returns a TriviaRange for items, reusing the Arena's
// shared empty range when items is empty rather than allocating.
func (a *Arena) NewTriviaRange(items []Trivia) *TriviaRange {
	if len(items) == 0 {
		return a.empty
	}
	return &TriviaRange{Items: AllocSlice(a, items)}
}

// Width returns the number of source bytes spanned by the range.
func (r *TriviaRange) Width() int {
	width := 0
	for _, t := range r.Items {
		width += t.Span.Len()
	}
	return width
}

// Text concatenates every trivia item's verbatim text.
func (r *TriviaRange) Text() string {
	if len(r.Items) == 0 {
		return ""
	}
	if len(r.Items) == 1 {
		return r.Items[0].Text
	}
	total := 0
	for _, t := range r.Items {
		total += len(t.Text)
	}
	buf := make([]byte, 0, total)
	for _, t := range r.Items {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}

// HasDocumentation reports whether the range contains a documentation
// comment (spec §3.3). The parser does not call it; doc comments stay
// in the leading trivia of the token that follows them.
func (r *TriviaRange) HasDocumentation() bool {
	for _, t := range r.Items {
		if IsDocumentationTrivia(t.Kind) {
			return true
		}
	}
	return false
}
