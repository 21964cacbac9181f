package syntax

// parseType parses one type reference (spec §4.6 names/types):
// pointer and reference prefixes, tuple types, array types, and plain
// or generic or qualified names.
func (p *Parser) parseType() *SyntaxNode {
	if !p.enterNesting() {
		return p.arena.NewNode(IdentifierNameSyntax, []NodeOrToken{NewTokenElement(p.arena.NewMissingToken(IdentifierToken, p.Current().Span.Start))})
	}
	defer p.exitNesting()

	switch p.Kind() {
	case AsteriskToken:
		star := p.Match(AsteriskToken)
		return p.arena.NewNode(PointerTypeSyntax, []NodeOrToken{star, NewNodeElement(p.parseType())})
	case AmpersandToken:
		amp := p.Match(AmpersandToken)
		return p.arena.NewNode(ReferenceTypeSyntax, []NodeOrToken{amp, NewNodeElement(p.parseType())})
	case OpenBracketToken:
		return p.parseArrayType()
	case OpenParenToken:
		return p.parseTupleType()
	default:
		return p.parseQualifiedName()
	}
}

func (p *Parser) parseArrayType() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenBracketToken))
	children = append(children, NewNodeElement(p.parseType()))
	if semi, ok := p.TryMatch(SemicolonToken); ok {
		children = append(children, semi)
		children = append(children, NewNodeElement(p.parseExpression()))
	}
	children = append(children, p.Match(CloseBracketToken))
	return p.arena.NewNode(ArrayTypeSyntax, children)
}

func (p *Parser) parseTupleType() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenParenToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseParenToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		elem := p.arena.NewNode(TupleTypeElementSyntax, []NodeOrToken{NewNodeElement(p.parseType())})
		items = append(items, NewNodeElement(elem))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(TupleTypeSyntax, children)
}

// parseQualifiedName parses a (possibly `::`-qualified, possibly
// generic) name, used both as a type reference and as the target of a
// `using` declaration (spec §4.6 "IdentifierNameSyntax",
// "GenericNameSyntax", "QualifiedNameSyntax").
func (p *Parser) parseQualifiedName() *SyntaxNode {
	left := p.parseSimpleName()
	for p.At(ColonColonToken) {
		sep := p.Match(ColonColonToken)
		right := p.parseSimpleName()
		left = p.arena.NewNode(QualifiedNameSyntax, []NodeOrToken{NewNodeElement(left), sep, NewNodeElement(right)})
	}
	return left
}

func (p *Parser) parseSimpleName() *SyntaxNode {
	name := p.Match(IdentifierToken)
	if p.At(ExclamationOpenBracketToken) {
		args := p.parseGenericArgumentList()
		return p.arena.NewNode(GenericNameSyntax, []NodeOrToken{name, NewNodeElement(args)})
	}
	return p.arena.NewNode(IdentifierNameSyntax, []NodeOrToken{name})
}
