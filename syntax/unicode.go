package syntax

import (
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// IsIdentifierStart reports whether r can begin an identifier: a
// Unicode letter or letter-number, or underscore (spec §4.4).
func IsIdentifierStart(r rune) bool {
	return unicode.Is(unicode.L, r) || unicode.Is(unicode.Nl, r) || r == '_'
}

// IsIdentifierContinue reports whether r can continue an identifier
// begun by IsIdentifierStart: letters, letter-numbers, combining
// marks, decimal digits, connector punctuation, or underscore.
func IsIdentifierContinue(r rune) bool {
	return unicode.Is(unicode.L, r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		r == '_'
}

// IsDecimalDigit reports whether r is an ASCII decimal digit.
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// IsBinaryDigit reports whether r is '0' or '1'.
func IsBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsOctalDigit reports whether r is an ASCII octal digit.
func IsOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsHorizontalWhitespace reports whether r is space or tab: the only
// characters the lexer groups as WhitespaceTrivia (spec §4.1's newline
// policy keeps line terminators out of this set so they can be
// classified separately as EndOfLineTrivia).
func IsHorizontalWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsNewlineStart reports whether r can begin a line terminator under
// this language's line-ending policy: '\n' alone, or '\r' when
// followed by '\n'. It sees one rune only, so it reports true for
// every '\r'; callers check for the following '\n'. Unlike the teacher's broader notion of "newline"
// (which also treats NEL, LS, PS, and a lone '\r' as line endings),
// this spec reserves those characters as ordinary content (spec §4.1).
func IsNewlineStart(r rune) bool {
	return r == '\n' || r == '\r'
}

// RuneDisplayName returns a human-readable name for r suitable for
// diagnostic messages about unrecognized or invalid characters (e.g.
// "ZERO WIDTH SPACE"), falling back to a quoted rune literal when the
// Unicode Character Database has no entry.
func RuneDisplayName(r rune) string {
	if name := runenames.Name(r); name != "" && name != "<noname>" {
		return name
	}
	return strconv.QuoteRune(r)
}
