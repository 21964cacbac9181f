package syntax

// Parser is a recursive-descent parser over a pre-lexed token stream
// that never aborts on malformed input (spec §4.2). Every production
// either succeeds or falls back to a synthesized missing token plus a
// diagnostic, so ParseSourceFile always returns a complete tree whose
// FullText equals the original source (spec §3.1).
type Parser struct {
	arena   *Arena
	diags   *DiagnosticSink
	tokens  []*Token
	pos     int
	depth   int
	maxDepth int

	// noStructLiteral suppresses StructExpressionSyntax parsing at the
	// current call depth, so `if x {` parses `x` as the condition and
	// `{` as the block opener rather than misreading `x {}` as a
	// struct literal (spec §9 "struct-literal disambiguation").
	noStructLiteral bool

	// pendingRecovery holds UnexpectedNodesSyntax clusters swept up by
	// matchStatementTerminator when a statement failed to reach its own
	// ';', waiting for the enclosing item loop to splice them in as
	// siblings of that statement rather than nested inside it (spec §8
	// scenario 3).
	pendingRecovery []NodeOrToken
}

// NewParser returns a Parser over tokens (as produced by
// Lexer.Tokenize), allocating nodes from arena and reporting problems
// to diags.
func NewParser(arena *Arena, tokens []*Token, diags *DiagnosticSink) *Parser {
	return &Parser{arena: arena, diags: diags, tokens: tokens, maxDepth: maxNestingDepth}
}

// SetMaxNestingDepth overrides the recursion-depth guard for this
// parser. A non-positive value is ignored.
func (p *Parser) SetMaxNestingDepth(depth int) {
	if depth > 0 {
		p.maxDepth = depth
	}
}

// Current returns the token at the cursor without consuming it.
func (p *Parser) Current() *Token {
	return p.Peek(0)
}

// Peek returns the token offset tokens ahead of the cursor, clamped to
// the final EndOfFileToken once the stream is exhausted.
func (p *Parser) Peek(offset int) *Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

// Kind returns the kind of the current token.
func (p *Parser) Kind() SyntaxKind {
	return p.Current().Kind
}

// At reports whether the current token has the given kind.
func (p *Parser) At(kind SyntaxKind) bool {
	return p.Kind() == kind
}

// AtAny reports whether the current token's kind is any of kinds.
func (p *Parser) AtAny(kinds ...SyntaxKind) bool {
	k := p.Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// AtEnd reports whether the cursor has reached the EndOfFileToken.
func (p *Parser) AtEnd() bool {
	return p.At(EndOfFileToken)
}

// next consumes and returns the current token, advancing the cursor
// unless already at end of stream.
func (p *Parser) next() *Token {
	tok := p.Current()
	if !p.AtEnd() {
		p.pos++
	}
	return tok
}

// Match consumes the current token if it has the requested kind,
// returning it wrapped as a tree element. Otherwise it records a
// diagnostic and returns a zero-width missing token of that kind
// without consuming anything, so the caller's production can still
// build a structurally complete node (spec §4.2 "missing tokens").
func (p *Parser) Match(kind SyntaxKind) NodeOrToken {
	if p.At(kind) {
		return NewTokenElement(p.next())
	}
	p.diags.AddError(p.Current().Span, "expected "+describeExpectedKind(kind)+" but found "+describeFoundToken(p.Current()))
	return NewTokenElement(p.arena.NewMissingToken(kind, p.Current().Span.Start))
}

// TryMatch consumes the current token if it has the requested kind,
// returning (element, true). If not, it returns (zero value, false)
// without consuming anything or recording a diagnostic, letting the
// caller try an alternative production (spec §4.2 "try_match").
func (p *Parser) TryMatch(kind SyntaxKind) (NodeOrToken, bool) {
	if p.At(kind) {
		return NewTokenElement(p.next()), true
	}
	return NodeOrToken{}, false
}

// MatchContextualKeyword consumes the current token if it is an
// IdentifierToken spelled like the requested contextual keyword,
// reclassifying it to that keyword's SyntaxKind in the returned token.
// Otherwise behaves like Match: a diagnostic plus a missing token.
func (p *Parser) MatchContextualKeyword(kind SyntaxKind, spelling string) NodeOrToken {
	if elem, ok := p.TryMatchContextualKeyword(kind, spelling); ok {
		return elem
	}
	p.diags.AddError(p.Current().Span, "expected '"+spelling+"' but found "+describeFoundToken(p.Current()))
	return NewTokenElement(p.arena.NewMissingToken(kind, p.Current().Span.Start))
}

// TryMatchContextualKeyword consumes the current token if it is an
// IdentifierToken spelled exactly like spelling, returning a copy
// reclassified to kind. No diagnostic is recorded on failure.
func (p *Parser) TryMatchContextualKeyword(kind SyntaxKind, spelling string) (NodeOrToken, bool) {
	cur := p.Current()
	if cur.Kind != IdentifierToken || cur.Text != spelling {
		return NodeOrToken{}, false
	}
	p.next()
	reclassified := p.arena.NewToken(kind, cur.Span, cur.Text, cur.Leading, cur.Trailing)
	return NewTokenElement(reclassified), true
}

// ConsumeUnexpected consumes exactly one token the current production
// did not expect, wrapping it in an UnexpectedNodesSyntax node so it
// stays in the tree and the lossless round-trip property holds (spec
// §4.2 "unexpected nodes"). Never call this at end of stream.
func (p *Parser) ConsumeUnexpected() NodeOrToken {
	tok := p.next()
	return NewNodeElement(p.arena.NewNode(UnexpectedNodesSyntax, []NodeOrToken{NewTokenElement(tok)}))
}

// MatchUntil repeatedly consumes tokens as UnexpectedNodesSyntax
// clusters until the current token is in stopSet or the stream ends,
// then returns every skipped element plus the stopping token's
// position left unconsumed for the caller to Match (spec §4.2
// "match_until" skip-to-recovery-set strategy).
func (p *Parser) MatchUntil(stopSet SyntaxKindSet) []NodeOrToken {
	var skipped []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !stopSet.Contains(p.Kind()) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		skipped = append(skipped, p.ConsumeUnexpected())
	}
	return skipped
}

// statementSyncSet bounds a statement-recovery sweep: `}` ends the
// enclosing block and EOF ends the file, so recovery must stop before
// either rather than swallow them.
var statementSyncSet = NewSyntaxKindSet(CloseBraceToken, EndOfFileToken)

// declarationStartSet holds the keywords that begin a declaration; a
// recovery sweep stops in front of them so the declaration that
// follows the garbage is still parsed.
var declarationStartSet = NewSyntaxKindSet(
	UsingKeyword, NamespaceKeyword, FunctionKeyword, DelegateKeyword, StructKeyword,
	ConceptKeyword, ExtendKeyword, TypeKeyword, EnumKeyword, VarKeyword, ConstKeyword,
)

// sweepToStatementBoundary consumes tokens up to the next statement
// boundary and wraps them together as one UnexpectedNodesSyntax node,
// swallowing a single SemicolonToken into the run instead of stopping
// at it: a stray ';' still belongs to the malformed statement being
// discarded, not to whatever follows (spec §8 scenario 3). It leaves
// `}`/EOF and any declaration keyword unconsumed and returns the zero
// NodeOrToken if nothing was swept.
func (p *Parser) sweepToStatementBoundary() NodeOrToken {
	var tokens []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !statementSyncSet.Contains(p.Kind()) && !declarationStartSet.Contains(p.Kind()) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		sawSemicolon := p.At(SemicolonToken)
		tokens = append(tokens, NewTokenElement(p.next()))
		if sawSemicolon {
			break
		}
	}
	if len(tokens) == 0 {
		return NodeOrToken{}
	}
	return NewNodeElement(p.arena.NewNode(UnexpectedNodesSyntax, tokens))
}

// matchStatementTerminator matches the ';' that ends a simple
// statement. When the parser isn't actually sitting on one, a missing
// token alone would leave the real tokens (e.g. a keyword that also
// starts a legitimate statement, like `while`) to be reattempted as a
// fresh statement by the caller's item loop. Instead this sweeps the
// malformed remainder up to the next statement boundary and stashes it
// in pendingRecovery, so the caller can splice it in as a sibling of
// this statement rather than nest it inside this statement or misparse
// it as the next one (spec §8 scenario 3).
func (p *Parser) matchStatementTerminator() NodeOrToken {
	semi := p.Match(SemicolonToken)
	if tok := semi.AsToken(); tok != nil && tok.IsMissing() {
		if swept := p.sweepToStatementBoundary(); swept.IsNode() {
			p.pendingRecovery = append(p.pendingRecovery, swept)
		}
	}
	return semi
}

// ParseBalancedTokenSequence consumes one balanced run of tokens:
// either a single token that is not an opening bracket, or a bracketed
// group ((), {}, [], or ![ ]) together with everything nested inside
// it up to its matching closer (spec §4.2 "balanced token sequence"
// recovery primitive, grounded on the original Parser::
// ParseBalancedTokenSequence).
func (p *Parser) ParseBalancedTokenSequence() *SyntaxNode {
	var elements []NodeOrToken
	p.parseBalancedInto(&elements)
	return p.arena.NewNode(BalancedTokenSequenceSyntax, elements)
}

func (p *Parser) parseBalancedInto(elements *[]NodeOrToken) {
	opener, closer, isOpener := matchingCloser(p.Kind())
	if !isOpener {
		*elements = append(*elements, NewTokenElement(p.next()))
		return
	}
	*elements = append(*elements, NewTokenElement(p.next()))
	_ = opener
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(closer) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		p.parseBalancedInto(elements)
	}
	*elements = append(*elements, p.Match(closer))
}

// MatchBalancedTokenSequence behaves like MatchUntil but skips whole
// balanced groups rather than individual tokens, so an unexpected `{`
// during recovery swallows its entire body instead of desynchronizing
// on the first nested `}` (spec §4.2's balanced-sequence recovery).
func (p *Parser) MatchBalancedTokenSequence(stopSet SyntaxKindSet) []NodeOrToken {
	var skipped []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !stopSet.Contains(p.Kind()) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		var group []NodeOrToken
		p.parseBalancedInto(&group)
		skipped = append(skipped, NewNodeElement(p.arena.NewNode(UnexpectedNodesSyntax, group)))
	}
	return skipped
}

func matchingCloser(kind SyntaxKind) (opener, closer SyntaxKind, ok bool) {
	switch kind {
	case OpenParenToken:
		return OpenParenToken, CloseParenToken, true
	case OpenBraceToken:
		return OpenBraceToken, CloseBraceToken, true
	case OpenBracketToken:
		return OpenBracketToken, CloseBracketToken, true
	case ExclamationOpenBracketToken:
		return ExclamationOpenBracketToken, CloseBracketToken, true
	case HashOpenBracketToken:
		return HashOpenBracketToken, CloseBracketToken, true
	default:
		return None, None, false
	}
}

// enterNesting increments the recursion-depth counter, reporting an
// error and returning false once maxNestingDepth is exceeded so the
// caller can fall back to a missing/error node instead of recursing
// further (spec §4.2 "nesting depth limit").
func (p *Parser) enterNesting() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.diags.AddError(p.Current().Span, "expression nested too deeply")
		return false
	}
	return true
}

func (p *Parser) exitNesting() {
	p.depth--
}

func describeExpectedKind(kind SyntaxKind) string {
	if s := kind.Spelling(); s != "" {
		return "'" + s + "'"
	}
	return kind.Name()
}

func describeFoundToken(tok *Token) string {
	if tok.Kind == EndOfFileToken {
		return "end of file"
	}
	if tok.Text != "" {
		return "'" + tok.Text + "'"
	}
	return tok.Kind.Name()
}

// ParseSourceFile parses the entire token stream as a SourceFileSyntax:
// a list of top-level declarations followed by the EndOfFileToken
// (spec §4.5 "SourceFileSyntax").
func (p *Parser) ParseSourceFile() *SyntaxNode {
	var items []NodeOrToken
	stopAtEOF := NewSyntaxKindSet(EndOfFileToken)
	progress := loopProgress{}
	for !p.AtEnd() {
		if !progress.Check(p.Current().Span.Start) {
			items = append(items, p.ConsumeUnexpected())
			continue
		}
		before := p.pos
		items = append(items, p.ParseCodeBlockItem()...)
		if p.pos == before {
			items = append(items, p.MatchUntil(stopAtEOF)...)
		}
	}
	list := p.arena.NewList(items)
	eof := p.Match(EndOfFileToken)
	return p.arena.NewNode(SourceFileSyntax, []NodeOrToken{NewNodeElement(list), eof})
}

// ParseCodeBlockItem parses one top-level or block-level item: a
// declaration, a statement, or (as fallback) an expression statement
// (spec §4.6 "CodeBlockItemSyntax"). It returns the wrapped item
// followed by any UnexpectedNodesSyntax siblings that matchStatement-
// Terminator had to sweep up while parsing it, so the caller's item
// list gets the malformed remainder as its own element instead of a
// nested child (spec §8 scenario 3).
func (p *Parser) ParseCodeBlockItem() []NodeOrToken {
	item := p.parseDeclarationOrStatement()
	result := []NodeOrToken{NewNodeElement(p.arena.NewNode(CodeBlockItemSyntax, []NodeOrToken{NewNodeElement(item)}))}
	if len(p.pendingRecovery) > 0 {
		result = append(result, p.pendingRecovery...)
		p.pendingRecovery = nil
	}
	return result
}
