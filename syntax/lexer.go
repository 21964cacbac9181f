package syntax

import (
	"strconv"
	"strings"
)

// TriviaMode controls how much trivia the lexer attaches to tokens
// (spec §4.4 "trivia mode ∈ {None, DocumentationOnly, All}"). Trivia
// dropped by the chosen mode is still scanned over (the cursor always
// advances past it), it is simply never recorded, so the resulting
// tree's FullText is a lossless round trip only under TriviaModeAll.
type TriviaMode int

const (
	// TriviaModeAll retains every trivia item, preserving a lossless
	// round trip. It is the zero value, and the default for NewLexer.
	TriviaModeAll TriviaMode = iota
	// TriviaModeDocumentationOnly keeps only documentation comments
	// (`///`, `/** */`), discarding whitespace and ordinary comments.
	TriviaModeDocumentationOnly
	// TriviaModeNone discards all trivia; tokens carry only their span.
	TriviaModeNone
)

// Lexer turns a SourceText into a flat token stream with trivia
// attached per token (spec §4.1, §4.4). It never aborts: unrecognized
// input becomes an ErrorToken plus a diagnostic, and lexing continues.
type Lexer struct {
	arena *Arena
	diags *DiagnosticSink
	sc    *Scanner
	atBOF bool
	mode  TriviaMode
}

// NewLexer returns a Lexer reading text's bytes, allocating tokens and
// trivia from arena and reporting problems to diags. It retains every
// trivia item (TriviaModeAll); use NewLexerWithMode to trade losslessness
// for a smaller tree.
func NewLexer(arena *Arena, text *SourceText, diags *DiagnosticSink) *Lexer {
	return NewLexerWithMode(arena, text, diags, TriviaModeAll)
}

// NewLexerWithMode is NewLexer with an explicit trivia-retention mode.
func NewLexerWithMode(arena *Arena, text *SourceText, diags *DiagnosticSink, mode TriviaMode) *Lexer {
	return &Lexer{arena: arena, diags: diags, sc: NewScanner(string(text.Bytes())), atBOF: true, mode: mode}
}

// keepTrivia reports whether a trivia item of kind should be recorded
// under the lexer's configured TriviaMode.
func (lx *Lexer) keepTrivia(kind SyntaxKind) bool {
	switch lx.mode {
	case TriviaModeAll:
		return true
	case TriviaModeDocumentationOnly:
		return IsDocumentationTrivia(kind)
	default:
		return false
	}
}

// keptTrivia returns the items of a scanned trivia run that keepTrivia
// accepts. Filtering happens after the leading/trailing split, so the
// split sees every end-of-line whatever the mode.
func (lx *Lexer) keptTrivia(items []Trivia) []Trivia {
	if lx.mode == TriviaModeAll {
		return items
	}
	var kept []Trivia
	for _, t := range items {
		if lx.keepTrivia(t.Kind) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Tokenize lexes the entire source into a token slice terminated by a
// single EndOfFileToken. Trivia preceding a token is attached as its
// Leading trivia; trivia following a token up to and including the
// first end-of-line is attached as its Trailing trivia, so splitting
// a line never requires consulting the next token (spec §4.1).
func (lx *Lexer) Tokenize() []*Token {
	var tokens []*Token
	leading := lx.scanTrivia()
	for {
		start := lx.sc.Cursor()
		kind, text, tok := lx.scanToken()
		trailingRun := lx.scanTrivia()
		trailing, nextLeading := splitTrailingTrivia(trailingRun)

		tok.Kind = kind
		tok.Span = SourceSpan{Start: SourcePosition(start), End: SourcePosition(lx.sc.Cursor())}
		tok.Text = text
		tok.Leading = lx.arena.NewTriviaRange(lx.keptTrivia(leading))
		tok.Trailing = lx.arena.NewTriviaRange(lx.keptTrivia(trailing))
		stored := lx.arena.newToken(*tok)
		tokens = append(tokens, stored)

		if kind == EndOfFileToken {
			break
		}
		leading = nextLeading
	}
	return tokens
}

// splitTrailingTrivia divides a contiguous trivia run into the part
// that trails the token just produced (everything up to and including
// the first end-of-line) and the part that leads the next token.
func splitTrailingTrivia(run []Trivia) (trailing, leading []Trivia) {
	for i, t := range run {
		if t.Kind == EndOfLineTrivia {
			return run[:i+1], run[i+1:]
		}
	}
	return run, nil
}

// scanTrivia consumes every contiguous piece of trivia starting at the
// cursor and returns it as a slice, leaving the cursor at the first
// character that begins a real token (or at EOF).
func (lx *Lexer) scanTrivia() []Trivia {
	var out []Trivia
	for {
		start := lx.sc.Cursor()

		var kind SyntaxKind
		switch {
		case lx.sc.Done():
			return out

		case lx.atBOF && lx.sc.At("#!"):
			lx.sc.EatUntil(func(r rune) bool { return r == '\n' || r == '\r' })
			kind = ShebangTrivia

		case lx.sc.AtRune(IsHorizontalWhitespace):
			lx.sc.EatWhile(IsHorizontalWhitespace)
			kind = WhitespaceTrivia

		case lx.sc.At("\n") || lx.sc.At("\r\n"):
			lx.sc.EatNewline()
			kind = EndOfLineTrivia

		case lx.sc.At("///") && !lx.sc.At("////"):
			lx.sc.EatUntil(func(r rune) bool { return r == '\n' || r == '\r' })
			kind = SingleLineDocumentationTrivia

		case lx.sc.At("//"):
			lx.sc.EatUntil(func(r rune) bool { return r == '\n' || r == '\r' })
			kind = SingleLineCommentTrivia

		case lx.sc.At("/**") && !lx.sc.At("/**/"):
			lx.scanBlockComment()
			kind = MultiLineDocumentationTrivia

		case lx.sc.At("/*"):
			lx.scanBlockComment()
			kind = BlockCommentTrivia

		default:
			lx.atBOF = false
			return out
		}
		out = append(out, Trivia{Kind: kind, Span: spanFrom(start, lx.sc), Text: lx.sc.From(start)})
		lx.atBOF = false
	}
}

func spanFrom(start int, sc *Scanner) SourceSpan {
	return SourceSpan{Start: SourcePosition(start), End: SourcePosition(sc.Cursor())}
}

func (lx *Lexer) scanBlockComment() {
	lx.sc.Advance(2)
	if !lx.sc.EatNestedComment("/*", "*/") {
		lx.diags.AddError(spanFrom(lx.sc.Cursor(), lx.sc), "unterminated block comment")
	}
}

// scanToken scans exactly one significant token at the cursor,
// returning its kind, its verbatim text, and a partially-populated
// Token carrying any literal payload. Callers fill in Span/Text/trivia
// afterward.
func (lx *Lexer) scanToken() (SyntaxKind, string, *Token) {
	start := lx.sc.Cursor()
	if lx.sc.Done() {
		return EndOfFileToken, "", &Token{}
	}

	if prefix, width, ok := lx.atStringOrCharPrefix(); ok {
		lx.sc.Advance(width)
		if lx.sc.Peek() == '"' {
			return lx.scanString(start, prefix)
		}
		return lx.scanChar(start, prefix)
	}

	r := lx.sc.Peek()
	switch {
	case IsIdentifierStart(r):
		return lx.scanIdentifierOrKeyword(start)
	case IsDecimalDigit(r):
		return lx.scanNumber(start)
	case r == '"':
		return lx.scanString(start, StringPrefixNone)
	case r == '\'':
		return lx.scanChar(start, StringPrefixNone)
	}

	if kind, width := lx.scanPunctuation(); kind != None {
		lx.sc.Advance(width)
		return kind, lx.sc.From(start), &Token{}
	}

	lx.sc.Eat()
	lx.diags.AddError(spanFrom(start, lx.sc), "unexpected character "+RuneDisplayName(r))
	return ErrorToken, lx.sc.From(start), &Token{}
}

// stringPrefixTable lists the encoding-width prefixes a string or
// character literal may carry (spec §3.4).
var stringPrefixTable = []struct {
	text   string
	prefix StringPrefix
}{
	{"u32", StringPrefixU32},
	{"u16", StringPrefixU16},
	{"u8", StringPrefixU8},
}

// atStringOrCharPrefix reports whether the cursor sits at one of
// stringPrefixTable immediately glued to an opening quote, returning
// the prefix and the byte width of its spelling. A bare identifier
// like "u8" not immediately followed by a quote lexes as an ordinary
// identifier instead (spec §4.4: "`\"` or prefix+`\"`").
func (lx *Lexer) atStringOrCharPrefix() (StringPrefix, int, bool) {
	for _, p := range stringPrefixTable {
		if lx.sc.AtLiteralPrefix(p.text, '"') || lx.sc.AtLiteralPrefix(p.text, '\'') {
			return p.prefix, len(p.text), true
		}
	}
	return StringPrefixNone, 0, false
}

func (lx *Lexer) scanIdentifierOrKeyword(start int) (SyntaxKind, string, *Token) {
	lx.sc.Eat()
	lx.sc.EatWhile(IsIdentifierContinue)
	text := lx.sc.From(start)
	if kind, ok := TryMapIdentifierToKeyword(text); ok {
		return kind, text, &Token{}
	}
	return IdentifierToken, lx.arena.Intern(text), &Token{}
}

func (lx *Lexer) scanNumber(start int) (SyntaxKind, string, *Token) {
	isFloat := false

	if lx.sc.At("0x") || lx.sc.At("0X") {
		lx.sc.Advance(2)
		digitsStart := lx.sc.Cursor()
		lx.sc.EatWhile(func(r rune) bool { return IsHexDigit(r) || r == '_' })
		digits := lx.sc.From(digitsStart)
		suffix := lx.scanNumberSuffix()
		text := lx.sc.From(start)
		v, _ := strconv.ParseUint(strings.ReplaceAll(digits, "_", ""), 16, 64)
		return IntegerLiteralToken, text, &Token{NumberPrefix: NumberPrefixHex, Digits: digits, Suffix: suffix, IntegerValue: v}
	}
	if lx.sc.At("0o") || lx.sc.At("0O") {
		lx.sc.Advance(2)
		digitsStart := lx.sc.Cursor()
		lx.sc.EatWhile(func(r rune) bool { return IsOctalDigit(r) || r == '_' })
		digits := lx.sc.From(digitsStart)
		suffix := lx.scanNumberSuffix()
		text := lx.sc.From(start)
		v, _ := strconv.ParseUint(strings.ReplaceAll(digits, "_", ""), 8, 64)
		return IntegerLiteralToken, text, &Token{NumberPrefix: NumberPrefixOctal, Digits: digits, Suffix: suffix, IntegerValue: v}
	}
	if lx.sc.At("0b") || lx.sc.At("0B") {
		lx.sc.Advance(2)
		digitsStart := lx.sc.Cursor()
		lx.sc.EatWhile(func(r rune) bool { return IsBinaryDigit(r) || r == '_' })
		digits := lx.sc.From(digitsStart)
		suffix := lx.scanNumberSuffix()
		text := lx.sc.From(start)
		v, _ := strconv.ParseUint(strings.ReplaceAll(digits, "_", ""), 2, 64)
		return IntegerLiteralToken, text, &Token{NumberPrefix: NumberPrefixBinary, Digits: digits, Suffix: suffix, IntegerValue: v}
	}

	digitsStart := start
	lx.sc.EatWhile(func(r rune) bool { return IsDecimalDigit(r) || r == '_' })

	if lx.sc.At(".") && IsDecimalDigit(lx.sc.Scout(1)) {
		isFloat = true
		lx.sc.Eat()
		lx.sc.EatWhile(func(r rune) bool { return IsDecimalDigit(r) || r == '_' })
	}
	if lx.sc.AtAny('e', 'E') {
		save := lx.sc.Cursor()
		lx.sc.Eat()
		if lx.sc.AtAny('+', '-') {
			lx.sc.Eat()
		}
		if lx.sc.AtRune(IsDecimalDigit) {
			isFloat = true
			lx.sc.EatWhile(IsDecimalDigit)
		} else {
			lx.sc.Jump(save)
		}
	}

	digits := lx.sc.From(digitsStart)
	suffix := lx.scanNumberSuffix()
	text := lx.sc.From(start)
	clean := strings.ReplaceAll(digits, "_", "")
	if isFloat {
		v, _ := strconv.ParseFloat(clean, 64)
		return FloatLiteralToken, text, &Token{NumberPrefix: NumberPrefixDecimal, Digits: digits, Suffix: suffix, FloatValue: v}
	}
	v, err := strconv.ParseUint(clean, 10, 64)
	if err != nil {
		lx.diags.AddError(spanFrom(start, lx.sc), "integer literal out of range")
	}
	return IntegerLiteralToken, text, &Token{NumberPrefix: NumberPrefixDecimal, Digits: digits, Suffix: suffix, IntegerValue: v}
}

// scanNumberSuffix consumes the optional alphanumeric suffix trailing
// a numeric literal's digits (spec §4.4's "optional suffix").
func (lx *Lexer) scanNumberSuffix() string {
	start := lx.sc.Cursor()
	lx.sc.EatWhile(IsIdentifierContinue)
	return lx.sc.From(start)
}

func (lx *Lexer) scanString(start int, prefix StringPrefix) (SyntaxKind, string, *Token) {
	lx.sc.Eat()
	var value strings.Builder
	for {
		if lx.sc.Done() || lx.sc.AtRune(IsNewlineStart) {
			lx.diags.AddError(spanFrom(start, lx.sc), "unterminated string literal")
			break
		}
		if lx.sc.EatIf('"') {
			break
		}
		if lx.sc.At("\\") {
			value.WriteRune(lx.scanEscape(start))
			continue
		}
		value.WriteRune(lx.sc.Eat())
	}
	return StringLiteralToken, lx.sc.From(start), &Token{StringPrefix: prefix, StringValue: lx.arena.Intern(value.String())}
}

func (lx *Lexer) scanChar(start int, prefix StringPrefix) (SyntaxKind, string, *Token) {
	lx.sc.Eat()
	var value rune
	if lx.sc.At("\\") {
		value = lx.scanEscape(start)
	} else if !lx.sc.Done() && !lx.sc.AtAny('\'') {
		value = lx.sc.Eat()
	}
	if !lx.sc.EatIf('\'') {
		lx.diags.AddError(spanFrom(start, lx.sc), "unterminated character literal")
	}
	return CharacterLiteralToken, lx.sc.From(start), &Token{StringPrefix: prefix, CharValue: value}
}

// scanEscape consumes a single backslash escape sequence and returns
// its decoded rune value.
func (lx *Lexer) scanEscape(literalStart int) rune {
	lx.sc.Eat() // backslash
	if lx.sc.Done() {
		lx.diags.AddError(spanFrom(literalStart, lx.sc), "unterminated escape sequence")
		return 0
	}
	switch r := lx.sc.Eat(); r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	case 'x':
		digits := lx.sc.EatWhile(IsHexDigit)
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || len(digits) == 0 {
			lx.diags.AddError(spanFrom(literalStart, lx.sc), "invalid \\x escape sequence")
		}
		return rune(v)
	case 'u':
		if !lx.sc.EatIf('{') {
			lx.diags.AddError(spanFrom(literalStart, lx.sc), "expected '{' after \\u")
			return 0
		}
		digits := lx.sc.EatWhile(IsHexDigit)
		v, err := strconv.ParseUint(digits, 16, 32)
		if !lx.sc.EatIf('}') || err != nil || len(digits) == 0 {
			lx.diags.AddError(spanFrom(literalStart, lx.sc), "invalid \\u{...} escape sequence")
		}
		return rune(v)
	default:
		lx.diags.AddError(spanFrom(literalStart, lx.sc), "unrecognized escape sequence")
		return r
	}
}

// punctuationTable lists multi-character punctuators longest-first so
// a single linear scan finds the longest match (spec §4.4's
// "maximal munch" tokenization rule), grounded on the original
// tokenizer's hand-ordered dispatch (SyntaxFacts.cxx operator tables).
var punctuationTable = []struct {
	text string
	kind SyntaxKind
}{
	{"![", ExclamationOpenBracketToken},
	{"#[", HashOpenBracketToken},
	{"::", ColonColonToken},
	{"..=", DotDotEqualsToken},
	{"..", DotDotToken},
	{"==", EqualsEqualsToken},
	{"!=", ExclamationEqualsToken},
	{"++", PlusPlusToken},
	{"+=", PlusEqualsToken},
	{"--", MinusMinusToken},
	{"-=", MinusEqualsToken},
	{"->", MinusGreaterThanToken},
	{"=>", EqualsGreaterThanToken},
	{"*=", AsteriskEqualsToken},
	{"/=", SlashEqualsToken},
	{"%=", PercentEqualsToken},
	{"&&", AmpersandAmpersandToken},
	{"&=", AmpersandEqualsToken},
	{"||", BarBarToken},
	{"|=", BarEqualsToken},
	{"^=", CaretEqualsToken},
	{"<<=", LessThanLessThanEqualsToken},
	{"<<", LessThanLessThanToken},
	{"<=", LessThanEqualsToken},
	{">>=", GreaterThanGreaterThanEqualsToken},
	{">>", GreaterThanGreaterThanToken},
	{">=", GreaterThanEqualsToken},
	{"??=", QuestionQuestionEqualsToken},
	{"??", QuestionQuestionToken},

	{"(", OpenParenToken},
	{")", CloseParenToken},
	{"{", OpenBraceToken},
	{"}", CloseBraceToken},
	{"[", OpenBracketToken},
	{"]", CloseBracketToken},
	{";", SemicolonToken},
	{",", CommaToken},
	{":", ColonToken},
	{".", DotToken},
	{"@", AtToken},
	{"=", EqualsToken},
	{"!", ExclamationToken},
	{"+", PlusToken},
	{"-", MinusToken},
	{"*", AsteriskToken},
	{"/", SlashToken},
	{"%", PercentToken},
	{"&", AmpersandToken},
	{"|", BarToken},
	{"^", CaretToken},
	{"~", TildeToken},
	{"<", LessThanToken},
	{">", GreaterThanToken},
	{"?", QuestionToken},
}

func (lx *Lexer) scanPunctuation() (SyntaxKind, int) {
	for _, p := range punctuationTable {
		if lx.sc.At(p.text) {
			return p.kind, len(p.text)
		}
	}
	return None, 0
}
