package syntax

// parsePattern parses one pattern (spec §4.6 patterns): wildcard,
// identifier binding, literal, tuple, slice, or struct destructuring.
func (p *Parser) parsePattern() *SyntaxNode {
	switch p.Kind() {
	case UnderscoreKeyword:
		return p.arena.NewNode(WildcardPatternSyntax, []NodeOrToken{p.Match(UnderscoreKeyword)})
	case OpenParenToken:
		return p.parseTuplePattern()
	case OpenBracketToken:
		return p.parseSlicePattern()
	case IntegerLiteralToken, FloatLiteralToken, StringLiteralToken, CharacterLiteralToken, TrueKeyword, FalseKeyword, MinusToken:
		return p.parseLiteralPattern()
	case IdentifierToken:
		if p.Peek(1).Kind == OpenBraceToken {
			return p.parseStructPattern()
		}
		return p.arena.NewNode(IdentifierPatternSyntax, []NodeOrToken{p.Match(IdentifierToken)})
	default:
		p.diags.AddError(p.Current().Span, "expected a pattern but found "+describeFoundToken(p.Current()))
		return p.arena.NewNode(IdentifierPatternSyntax, []NodeOrToken{p.Match(IdentifierToken)})
	}
}

func (p *Parser) parseLiteralPattern() *SyntaxNode {
	var children []NodeOrToken
	if p.At(MinusToken) {
		children = append(children, NewTokenElement(p.next()))
	}
	children = append(children, NewTokenElement(p.next()))
	return p.arena.NewNode(LiteralPatternSyntax, children)
}

func (p *Parser) parseTuplePattern() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenParenToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseParenToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		items = append(items, NewNodeElement(p.parsePattern()))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(TuplePatternSyntax, children)
}

func (p *Parser) parseSlicePattern() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenBracketToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBracketToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		if dotdot, ok := p.TryMatch(DotDotToken); ok {
			items = append(items, dotdot)
			if p.At(IdentifierToken) {
				items = append(items, NewTokenElement(p.next()))
			}
		} else {
			items = append(items, NewNodeElement(p.parsePattern()))
		}
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBracketToken))
	return p.arena.NewNode(SlicePatternSyntax, children)
}

func (p *Parser) parseStructPattern() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(IdentifierToken))
	children = append(children, p.Match(OpenBraceToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBraceToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		var fieldChildren []NodeOrToken
		fieldChildren = append(fieldChildren, p.Match(IdentifierToken))
		if colon, ok := p.TryMatch(ColonToken); ok {
			fieldChildren = append(fieldChildren, colon)
			fieldChildren = append(fieldChildren, NewNodeElement(p.parsePattern()))
		}
		items = append(items, NewNodeElement(p.arena.NewNode(FieldPatternSyntax, fieldChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBraceToken))
	return p.arena.NewNode(StructPatternSyntax, children)
}
