package syntax

// parseStatement dispatches on the current token to one of the
// statement productions (spec §4.6), falling back to an expression
// statement for everything else, including the expression-position
// control-flow constructs `if`/`match`/`assert`/`let`/`eval` (spec §9).
func (p *Parser) parseStatement() *SyntaxNode {
	switch p.Kind() {
	case OpenBraceToken:
		return p.parseBlockStatement()
	case SemicolonToken:
		return p.arena.NewNode(EmptyStatementSyntax, []NodeOrToken{p.Match(SemicolonToken)})
	case ReturnKeyword:
		return p.parseReturnStatement()
	case WhileKeyword:
		return p.parseWhileStatement()
	case BreakKeyword:
		return p.parseBreakStatement()
	case ContinueKeyword:
		return p.parseContinueStatement()
	case GotoKeyword:
		return p.parseGotoStatement()
	case YieldKeyword:
		return p.parseYieldStatement()
	case LoopKeyword:
		return p.parseLoopStatement()
	case ForKeyword:
		return p.parseForStatement()
	case ForeachKeyword:
		return p.parseForEachStatement()
	case CheckedKeyword:
		return p.parseCheckedStatement(CheckedKeyword, CheckedStatementSyntax)
	case UncheckedKeyword:
		return p.parseCheckedStatement(UncheckedKeyword, UncheckedStatementSyntax)
	case UnsafeKeyword:
		return p.parseCheckedStatement(UnsafeKeyword, UnsafeStatementSyntax)
	case LazyKeyword:
		return p.parseCheckedStatement(LazyKeyword, LazyStatementSyntax)
	default:
		if p.Kind() == IdentifierToken && p.Peek(1).Kind == ColonToken {
			return p.parseLabeledStatement()
		}
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenBraceToken))
	var items []NodeOrToken
	stop := NewSyntaxKindSet(CloseBraceToken, EndOfFileToken)
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBraceToken) {
		if !progress.Check(p.Current().Span.Start) {
			items = append(items, p.MatchUntil(stop)...)
			break
		}
		items = append(items, p.ParseCodeBlockItem()...)
	}
	children = append(children, NewNodeElement(p.arena.NewList(items)))
	children = append(children, p.Match(CloseBraceToken))
	return p.arena.NewNode(BlockStatementSyntax, children)
}

func (p *Parser) parseReturnStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ReturnKeyword))
	if !p.At(SemicolonToken) {
		children = append(children, NewNodeElement(p.parseExpression()))
	}
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(ReturnStatementSyntax, children)
}

func (p *Parser) parseWhileStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(WhileKeyword))
	children = append(children, NewNodeElement(p.parseExpressionNoStructLiteral()))
	children = append(children, NewNodeElement(p.parseBlockStatement()))
	return p.arena.NewNode(WhileStatementSyntax, children)
}

func (p *Parser) parseBreakStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(BreakKeyword))
	if p.At(IdentifierToken) {
		children = append(children, NewTokenElement(p.next()))
	}
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(BreakStatementSyntax, children)
}

func (p *Parser) parseContinueStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ContinueKeyword))
	if p.At(IdentifierToken) {
		children = append(children, NewTokenElement(p.next()))
	}
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(ContinueStatementSyntax, children)
}

func (p *Parser) parseGotoStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(GotoKeyword))
	children = append(children, p.Match(IdentifierToken))
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(GotoStatementSyntax, children)
}

func (p *Parser) parseYieldStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(YieldKeyword))
	children = append(children, NewNodeElement(p.parseExpression()))
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(YieldStatementSyntax, children)
}

func (p *Parser) parseLoopStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(LoopKeyword))
	children = append(children, NewNodeElement(p.parseBlockStatement()))
	return p.arena.NewNode(LoopStatementSyntax, children)
}

func (p *Parser) parseForStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ForKeyword))
	children = append(children, p.Match(OpenParenToken))
	if !p.At(SemicolonToken) {
		children = append(children, NewNodeElement(p.parseDeclarationOrStatement()))
	} else {
		children = append(children, p.Match(SemicolonToken))
	}
	if !p.At(SemicolonToken) {
		children = append(children, NewNodeElement(p.parseExpression()))
	}
	children = append(children, p.Match(SemicolonToken))
	if !p.At(CloseParenToken) {
		children = append(children, NewNodeElement(p.parseExpression()))
	}
	children = append(children, p.Match(CloseParenToken))
	children = append(children, NewNodeElement(p.parseBlockStatement()))
	return p.arena.NewNode(ForStatementSyntax, children)
}

func (p *Parser) parseForEachStatement() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ForeachKeyword))
	children = append(children, p.Match(OpenParenToken))
	children = append(children, NewNodeElement(p.parsePattern()))
	children = append(children, p.Match(InKeyword))
	children = append(children, NewNodeElement(p.parseExpressionNoStructLiteral()))
	children = append(children, p.Match(CloseParenToken))
	children = append(children, NewNodeElement(p.parseBlockStatement()))
	return p.arena.NewNode(ForEachStatementSyntax, children)
}

func (p *Parser) parseCheckedStatement(keyword, nodeKind SyntaxKind) *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(keyword))
	children = append(children, NewNodeElement(p.parseBlockStatement()))
	return p.arena.NewNode(nodeKind, children)
}

func (p *Parser) parseLabeledStatement() *SyntaxNode {
	var children []NodeOrToken
	label := p.arena.NewNode(LabelSyntax, []NodeOrToken{p.Match(IdentifierToken), p.Match(ColonToken)})
	children = append(children, NewNodeElement(label))
	children = append(children, NewNodeElement(p.parseStatement()))
	return p.arena.NewNode(LabeledStatementSyntax, children)
}

func (p *Parser) parseExpressionStatement() *SyntaxNode {
	var children []NodeOrToken
	expr := p.parseExpression()
	children = append(children, NewNodeElement(expr))
	if expr.Kind == IfExpressionSyntax || expr.Kind == MatchExpressionSyntax {
		// A brace-bodied if/match statement ends at its closing brace;
		// a following ';' is optional.
		if semi, ok := p.TryMatch(SemicolonToken); ok {
			children = append(children, semi)
		}
	} else {
		children = append(children, p.matchStatementTerminator())
	}
	return p.arena.NewNode(ExpressionStatementSyntax, children)
}
