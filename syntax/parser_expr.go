package syntax

// parseExpression parses a full expression, including assignment and
// the ternary conditional (spec §4.8, lowest precedence tier).
func (p *Parser) parseExpression() *SyntaxNode {
	return p.parseAssignmentExpression()
}

// parseExpressionNoStructLiteral parses an expression with struct
// literals suppressed, for use as the scrutinee of `if`/`while`/
// `foreach`/`match` where a following `{` must open a block rather
// than be misread as a struct literal's field list (spec §9).
func (p *Parser) parseExpressionNoStructLiteral() *SyntaxNode {
	saved := p.noStructLiteral
	p.noStructLiteral = true
	expr := p.parseExpression()
	p.noStructLiteral = saved
	return expr
}

func (p *Parser) parseAssignmentExpression() *SyntaxNode {
	left := p.parseConditionalExpression()
	if nodeKind, ok := GetAssignmentOperator(p.Kind()); ok {
		op := NewTokenElement(p.next())
		right := p.parseAssignmentExpression()
		return p.arena.NewNode(nodeKind, []NodeOrToken{NewNodeElement(left), op, NewNodeElement(right)})
	}
	return left
}

func (p *Parser) parseConditionalExpression() *SyntaxNode {
	cond := p.parseBinaryExpression(PrecedenceCoalescing)
	if p.At(QuestionToken) {
		question := p.Match(QuestionToken)
		whenTrue := p.parseAssignmentExpression()
		colon := p.Match(ColonToken)
		whenFalse := p.parseAssignmentExpression()
		return p.arena.NewNode(ConditionalExpressionSyntax, []NodeOrToken{
			NewNodeElement(cond), question, NewNodeElement(whenTrue), colon, NewNodeElement(whenFalse),
		})
	}
	return cond
}

// parseBinaryExpression implements precedence climbing starting at
// minPrecedence: it parses one unary operand, then repeatedly folds
// in an infix operator whose precedence is at least minPrecedence
// (spec §4.8).
func (p *Parser) parseBinaryExpression(minPrecedence Precedence) *SyntaxNode {
	left := p.parseUnaryExpression()
	for {
		precedence, nodeKind, rightAssoc, ok := GetBinaryOperator(p.Kind())
		if !ok || precedence < minPrecedence {
			return left
		}
		op := NewTokenElement(p.next())
		nextMin := precedence + 1
		if rightAssoc {
			nextMin = precedence
		}
		right := p.parseBinaryExpression(nextMin)
		left = p.arena.NewNode(nodeKind, []NodeOrToken{NewNodeElement(left), op, NewNodeElement(right)})
	}
}

func (p *Parser) parseUnaryExpression() *SyntaxNode {
	if nodeKind, ok := GetPrefixUnaryOperator(p.Kind()); ok {
		op := NewTokenElement(p.next())
		operand := p.parseUnaryExpression()
		return p.arena.NewNode(nodeKind, []NodeOrToken{op, NewNodeElement(operand)})
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression parses a primary expression followed by any
// number of postfix operators: call, index, member access (`.` and
// `->`), and post-increment/decrement (spec §4.8 postfix chain).
func (p *Parser) parsePostfixExpression() *SyntaxNode {
	expr := p.parsePrimaryExpression()
	progress := loopProgress{}
	for {
		if !progress.Check(p.Current().Span.Start) {
			return expr
		}
		switch {
		case p.At(OpenParenToken):
			args := p.parseArgumentList()
			expr = p.arena.NewNode(InvocationExpressionSyntax, []NodeOrToken{NewNodeElement(expr), NewNodeElement(args)})
		case p.At(OpenBracketToken):
			open := p.Match(OpenBracketToken)
			index := p.parseExpression()
			closeTok := p.Match(CloseBracketToken)
			expr = p.arena.NewNode(IndexExpressionSyntax, []NodeOrToken{NewNodeElement(expr), open, NewNodeElement(index), closeTok})
		case p.At(DotToken):
			dot := p.Match(DotToken)
			name := p.parseSimpleName()
			expr = p.arena.NewNode(SimpleMemberAccessExpressionSyntax, []NodeOrToken{NewNodeElement(expr), dot, NewNodeElement(name)})
		case p.At(MinusGreaterThanToken):
			arrow := p.Match(MinusGreaterThanToken)
			name := p.parseSimpleName()
			expr = p.arena.NewNode(PointerMemberAccessExpressionSyntax, []NodeOrToken{NewNodeElement(expr), arrow, NewNodeElement(name)})
		default:
			if nodeKind, ok := GetPostfixUnaryOperator(p.Kind()); ok {
				op := NewTokenElement(p.next())
				expr = p.arena.NewNode(nodeKind, []NodeOrToken{NewNodeElement(expr), op})
				continue
			}
			return expr
		}
	}
}

func (p *Parser) parsePrimaryExpression() *SyntaxNode {
	if !p.enterNesting() {
		return p.arena.NewNode(IdentifierNameSyntax, []NodeOrToken{NewTokenElement(p.arena.NewMissingToken(IdentifierToken, p.Current().Span.Start))})
	}
	defer p.exitNesting()

	switch p.Kind() {
	case IntegerLiteralToken:
		return p.arena.NewNode(IntegerLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case FloatLiteralToken:
		return p.arena.NewNode(FloatLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case StringLiteralToken:
		return p.arena.NewNode(StringLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case CharacterLiteralToken:
		return p.arena.NewNode(CharacterLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case TrueKeyword:
		return p.arena.NewNode(TrueLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case FalseKeyword:
		return p.arena.NewNode(FalseLiteralExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case SelfKeyword:
		return p.arena.NewNode(SelfExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case UnreachableKeyword:
		return p.arena.NewNode(UnreachableExpressionSyntax, []NodeOrToken{NewTokenElement(p.next())})
	case OpenParenToken:
		return p.parseParenthesizedExpression()
	case IfKeyword:
		return p.parseIfExpression()
	case MatchKeyword:
		return p.parseMatchExpression()
	case AssertKeyword:
		return p.parseAssertExpression()
	case LetKeyword:
		return p.parseLetExpression()
	case EvalKeyword:
		return p.parseEvalExpression()
	case SizeOfKeyword:
		return p.parseBuiltinTypeExpression(SizeOfKeyword, SizeOfExpressionSyntax)
	case TypeOfKeyword:
		return p.parseBuiltinTypeExpression(TypeOfKeyword, TypeOfExpressionSyntax)
	case AlignOfKeyword:
		return p.parseBuiltinTypeExpression(AlignOfKeyword, AlignOfExpressionSyntax)
	case NameOfKeyword:
		return p.parseBuiltinExprExpression(NameOfKeyword, NameOfExpressionSyntax)
	case AddressOfKeyword:
		op := NewTokenElement(p.next())
		operand := p.parseUnaryExpression()
		return p.arena.NewNode(AddressOfExpressionSyntax, []NodeOrToken{op, NewNodeElement(operand)})
	case IdentifierToken:
		return p.parseNameOrStructExpression()
	default:
		p.diags.AddError(p.Current().Span, "expected an expression but found "+describeFoundToken(p.Current()))
		missing := p.arena.NewMissingToken(IdentifierToken, p.Current().Span.Start)
		return p.arena.NewNode(IdentifierNameSyntax, []NodeOrToken{NewTokenElement(missing)})
	}
}

func (p *Parser) parseParenthesizedExpression() *SyntaxNode {
	open := p.Match(OpenParenToken)
	inner := p.parseExpression()
	closeTok := p.Match(CloseParenToken)
	return p.arena.NewNode(ParenthesizedExpressionSyntax, []NodeOrToken{open, NewNodeElement(inner), closeTok})
}

// parseNameOrStructExpression parses a (possibly qualified, possibly
// generic) name and, unless struct literals are currently suppressed,
// reinterprets `Name {` as a StructExpressionSyntax (spec §9).
func (p *Parser) parseNameOrStructExpression() *SyntaxNode {
	name := p.parseQualifiedName()
	if p.noStructLiteral || !p.At(OpenBraceToken) {
		return name
	}
	return p.parseStructExpression(name)
}

func (p *Parser) parseStructExpression(name *SyntaxNode) *SyntaxNode {
	var children []NodeOrToken
	children = append(children, NewNodeElement(name))
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
			fieldChildren = append(fieldChildren, NewNodeElement(p.parseExpression()))
		}
		items = append(items, NewNodeElement(p.arena.NewNode(StructExpressionFieldSyntax, fieldChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBraceToken))
	return p.arena.NewNode(StructExpressionSyntax, children)
}

func (p *Parser) parseIfExpression() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(IfKeyword))
	children = append(children, NewNodeElement(p.parseExpressionNoStructLiteral()))
	children = append(children, NewNodeElement(p.parseBlockStatement()))
	if elseKw, ok := p.TryMatch(ElseKeyword); ok {
		var branch *SyntaxNode
		if p.At(IfKeyword) {
			branch = p.parseIfExpression()
		} else {
			branch = p.parseBlockStatement()
		}
		elseClause := p.arena.NewNode(ElseClauseSyntax, []NodeOrToken{elseKw, NewNodeElement(branch)})
		children = append(children, NewNodeElement(elseClause))
	}
	return p.arena.NewNode(IfExpressionSyntax, children)
}

func (p *Parser) parseMatchExpression() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(MatchKeyword))
	children = append(children, NewNodeElement(p.parseExpressionNoStructLiteral()))
	children = append(children, p.Match(OpenBraceToken))
	var arms []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBraceToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		var armChildren []NodeOrToken
		armChildren = append(armChildren, NewNodeElement(p.parsePattern()))
		if guardKw, ok := p.TryMatchContextualKeyword(WhereContextualKeyword, "where"); ok {
			armChildren = append(armChildren, guardKw, NewNodeElement(p.parseExpressionNoStructLiteral()))
		}
		armChildren = append(armChildren, p.Match(EqualsGreaterThanToken))
		armChildren = append(armChildren, NewNodeElement(p.parseExpression()))
		arms = append(arms, NewNodeElement(p.arena.NewNode(MatchArmSyntax, armChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			arms = append(arms, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(arms)))
	children = append(children, p.Match(CloseBraceToken))
	return p.arena.NewNode(MatchExpressionSyntax, children)
}

func (p *Parser) parseAssertExpression() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(AssertKeyword))
	children = append(children, p.Match(OpenParenToken))
	children = append(children, NewNodeElement(p.parseExpression()))
	if comma, ok := p.TryMatch(CommaToken); ok {
		children = append(children, comma)
		children = append(children, NewNodeElement(p.parseExpression()))
	}
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(AssertExpressionSyntax, children)
}

func (p *Parser) parseLetExpression() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(LetKeyword))
	children = append(children, NewNodeElement(p.parsePattern()))
	children = append(children, p.Match(EqualsToken))
	children = append(children, NewNodeElement(p.parseExpressionNoStructLiteral()))
	return p.arena.NewNode(LetExpressionSyntax, children)
}

func (p *Parser) parseEvalExpression() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(EvalKeyword))
	children = append(children, p.Match(OpenParenToken))
	children = append(children, NewNodeElement(p.parseExpression()))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(EvalExpressionSyntax, children)
}

func (p *Parser) parseBuiltinTypeExpression(keyword, nodeKind SyntaxKind) *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(keyword))
	children = append(children, p.Match(OpenParenToken))
	children = append(children, NewNodeElement(p.parseType()))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(nodeKind, children)
}

func (p *Parser) parseBuiltinExprExpression(keyword, nodeKind SyntaxKind) *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(keyword))
	children = append(children, p.Match(OpenParenToken))
	children = append(children, NewNodeElement(p.parseExpression()))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(nodeKind, children)
}
