package syntax

import "strings"

// TokenFlags records out-of-band facts about a Token that do not fit
// its Kind/Span/Text, notably whether it was synthesized by error
// recovery rather than read from source (spec §4.2 "missing tokens").
type TokenFlags uint8

const (
	// TokenFlagMissing marks a zero-width token inserted by the parser
	// when a production required a token the input did not supply.
	// A missing token's Span is empty and its Text is "".
	TokenFlagMissing TokenFlags = 1 << iota
)

// NumberPrefix identifies which base introduced an IntegerLiteral or
// FloatLiteral token (spec §3.4). FloatLiteral tokens are always
// NumberPrefixDecimal: a fractional part or exponent is only
// recognized in the unprefixed branch of scanNumber.
type NumberPrefix uint8

const (
	NumberPrefixDecimal NumberPrefix = iota
	NumberPrefixBinary
	NumberPrefixOctal
	NumberPrefixHex
)

// StringPrefix identifies the encoding-width prefix (if any) on a
// StringLiteral or CharacterLiteral token (spec §3.4 "prefix
// (none/u8/u16/u32)").
type StringPrefix uint8

const (
	StringPrefixNone StringPrefix = iota
	StringPrefixU8
	StringPrefixU16
	StringPrefixU32
)

// Token is a lexed terminal: a Kind, the exact source span of its
// significant text, that text verbatim, the trivia surrounding it on
// each side, and (for literal kinds) a decoded payload value (spec
// §3.4, §3.5).
type Token struct {
	Kind  SyntaxKind
	Span  SourceSpan
	Text  string
	Flags TokenFlags

	Leading  *TriviaRange
	Trailing *TriviaRange

	// Payload fields, populated only for the matching literal Kind.
	NumberPrefix NumberPrefix // IntegerLiteral, FloatLiteral
	Digits       string       // IntegerLiteral: digit run. FloatLiteral: mantissa+exponent text.
	Suffix       string       // IntegerLiteral, FloatLiteral: trailing suffix spelling, "" if none.
	StringPrefix StringPrefix // StringLiteral, CharacterLiteral
	IntegerValue uint64
	FloatValue   float64
	CharValue    rune
	StringValue  string
}

// IsMissing reports whether the token was synthesized during error
// recovery rather than consumed from source text.
func (t *Token) IsMissing() bool {
	return t.Flags&TokenFlagMissing != 0
}

// FullSpan returns the span covering the token's leading trivia, its
// own text, and its trailing trivia.
func (t *Token) FullSpan() SourceSpan {
	start := t.Span.Start
	if len(t.Leading.Items) > 0 {
		start = t.Leading.Items[0].Span.Start
	}
	end := t.Span.End
	if n := len(t.Trailing.Items); n > 0 {
		end = t.Trailing.Items[n-1].Span.End
	}
	return SourceSpan{Start: start, End: end}
}

// FullText reconstructs the exact source slice covered by FullSpan:
// leading trivia, the token's own text, then trailing trivia. This is
// the primitive the lossless round-trip property is built on (spec
// §3.1 "full-fidelity").
func (t *Token) FullText() string {
	if len(t.Leading.Items) == 0 && len(t.Trailing.Items) == 0 {
		return t.Text
	}
	var b strings.Builder
	b.WriteString(t.Leading.Text())
	b.WriteString(t.Text)
	b.WriteString(t.Trailing.Text())
	return b.String()
}

// NewToken allocates a well-formed token from the arena.
func (a *Arena) NewToken(kind SyntaxKind, span SourceSpan, text string, leading, trailing *TriviaRange) *Token {
	return a.newToken(Token{
		Kind:     kind,
		Span:     span,
		Text:     text,
		Leading:  leading,
		Trailing: trailing,
	})
}

// NewMissingToken allocates a zero-width token of kind at pos, used by
// the parser's error recovery to stand in for a token the input did
// not supply (spec §4.2). A missing token carries no trivia of its
// own: the trivia that would have surrounded it stays attached to its
// neighbors.
func (a *Arena) NewMissingToken(kind SyntaxKind, pos SourcePosition) *Token {
	return a.newToken(Token{
		Kind:     kind,
		Span:     EmptySpanAt(pos),
		Flags:    TokenFlagMissing,
		Leading:  a.empty,
		Trailing: a.empty,
	})
}
