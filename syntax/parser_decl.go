package syntax

// parseDeclarationOrStatement dispatches on the current token to
// either a top-level/member declaration or a statement, with a final
// fallback to an expression-statement (spec §4.6: `if`/`match`/
// `assert`/`let` are expression-position constructs reached only
// through that fallback, since neither the declaration nor the
// statement grammar lists them directly).
func (p *Parser) parseDeclarationOrStatement() *SyntaxNode {
	switch p.Kind() {
	case HashOpenBracketToken:
		attrs := p.parseAttributeList()
		decl := p.parseDeclarationOrStatement()
		decl.Children = append([]NodeOrToken{NewNodeElement(attrs)}, decl.Children...)
		return decl
	case UsingKeyword:
		return p.parseUsingDeclaration()
	case NamespaceKeyword:
		return p.parseNamespaceDeclaration()
	case FunctionKeyword:
		return p.parseFunctionDeclaration()
	case DelegateKeyword:
		return p.parseDelegateDeclaration()
	case StructKeyword:
		return p.parseStructDeclaration()
	case ConceptKeyword:
		return p.parseConceptDeclaration()
	case ExtendKeyword:
		return p.parseExtendDeclaration()
	case TypeKeyword:
		return p.parseTypeAliasDeclaration()
	case EnumKeyword:
		return p.parseEnumDeclaration()
	case VarKeyword:
		return p.parseVariableDeclaration()
	case ConstKeyword:
		return p.parseConstantDeclaration()
	default:
		if modifierKeywords.Contains(p.Kind()) {
			mods := p.parseModifiers()
			decl := p.parseDeclarationOrStatement()
			decl.Children = append(mods, decl.Children...)
			return decl
		}
		return p.parseStatement()
	}
}

// parseAttributeList parses one `#[ ... ]` attribute list (spec §4.6
// "AttributeListSyntax"), containing a comma-separated list of
// attribute names with optional argument lists.
func (p *Parser) parseAttributeList() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(HashOpenBracketToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBracketToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		name := p.Match(IdentifierToken)
		var attrChildren []NodeOrToken
		attrChildren = append(attrChildren, name)
		if p.At(OpenParenToken) {
			attrChildren = append(attrChildren, NewNodeElement(p.parseArgumentList()))
		}
		items = append(items, NewNodeElement(p.arena.NewNode(AttributeSyntax, attrChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBracketToken))
	return p.arena.NewNode(AttributeListSyntax, children)
}

// modifierKeywords is every keyword that can prefix a declaration or
// parameter as a modifier (spec §4.6, grounded on the original
// tokenizer's IsMemberModifier/IsParameterModifier tables).
var modifierKeywords = NewSyntaxKindSet(
	PublicKeyword, PrivateKeyword, InternalKeyword, AsyncKeyword, DiscardableKeyword,
	DynamicKeyword, ExplicitKeyword, ExportKeyword, ExternKeyword, FinalKeyword, FixedKeyword,
	ImplicitKeyword, InlineKeyword, NativeKeyword, OverrideKeyword, PartialKeyword, PreciseKeyword,
	PureKeyword, ReadonlyKeyword, RecursiveKeyword, SynchronizedKeyword, TailCallKeyword,
	ThreadLocalKeyword, TransientKeyword, TrustedKeyword, UnalignedKeyword, UniformKeyword,
	MutableKeyword, RestrictKeyword, AtomicKeyword,
)

func (p *Parser) parseModifiers() []NodeOrToken {
	var mods []NodeOrToken
	for modifierKeywords.Contains(p.Kind()) {
		mods = append(mods, NewTokenElement(p.next()))
	}
	return mods
}

func (p *Parser) parseUsingDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(UsingKeyword))
	children = append(children, NewNodeElement(p.parseQualifiedName()))
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(UsingDeclarationSyntax, children)
}

func (p *Parser) parseNamespaceDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(NamespaceKeyword))
	children = append(children, NewNodeElement(p.parseQualifiedName()))
	children = append(children, NewNodeElement(p.parseMemberDeclarationBlock()))
	return p.arena.NewNode(NamespaceDeclarationSyntax, children)
}

func (p *Parser) parseMemberDeclarationBlock() *SyntaxNode {
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
	return p.arena.NewNode(MemberDeclarationBlockSyntax, children)
}

func (p *Parser) parseFunctionDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(FunctionKeyword))
	children = append(children, p.Match(IdentifierToken))
	if p.At(ExclamationOpenBracketToken) {
		children = append(children, NewNodeElement(p.parseGenericParameterList()))
	}
	children = append(children, NewNodeElement(p.parseParameterList()))
	if p.At(MinusGreaterThanToken) {
		children = append(children, NewNodeElement(p.parseReturnTypeClause()))
	}
	children = append(children, p.parseContractClauses()...)
	if p.At(OpenBraceToken) {
		children = append(children, NewNodeElement(p.parseBlockStatement()))
	} else {
		children = append(children, p.matchStatementTerminator())
	}
	return p.arena.NewNode(FunctionDeclarationSyntax, children)
}

func (p *Parser) parseDelegateDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(DelegateKeyword))
	children = append(children, p.Match(IdentifierToken))
	if p.At(ExclamationOpenBracketToken) {
		children = append(children, NewNodeElement(p.parseGenericParameterList()))
	}
	children = append(children, NewNodeElement(p.parseParameterList()))
	if p.At(MinusGreaterThanToken) {
		children = append(children, NewNodeElement(p.parseReturnTypeClause()))
	}
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(DelegateDeclarationSyntax, children)
}

func (p *Parser) parseStructDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(StructKeyword))
	children = append(children, p.Match(IdentifierToken))
	if p.At(ExclamationOpenBracketToken) {
		children = append(children, NewNodeElement(p.parseGenericParameterList()))
	}
	children = append(children, p.parseContractClauses()...)
	children = append(children, NewNodeElement(p.parseMemberDeclarationBlock()))
	return p.arena.NewNode(StructDeclarationSyntax, children)
}

func (p *Parser) parseConceptDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ConceptKeyword))
	children = append(children, p.Match(IdentifierToken))
	if p.At(ExclamationOpenBracketToken) {
		children = append(children, NewNodeElement(p.parseGenericParameterList()))
	}
	children = append(children, NewNodeElement(p.parseMemberDeclarationBlock()))
	return p.arena.NewNode(ConceptDeclarationSyntax, children)
}

func (p *Parser) parseExtendDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ExtendKeyword))
	children = append(children, NewNodeElement(p.parseType()))
	children = append(children, p.parseContractClauses()...)
	children = append(children, NewNodeElement(p.parseMemberDeclarationBlock()))
	return p.arena.NewNode(ExtendDeclarationSyntax, children)
}

func (p *Parser) parseTypeAliasDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(TypeKeyword))
	children = append(children, p.Match(IdentifierToken))
	children = append(children, p.Match(EqualsToken))
	children = append(children, NewNodeElement(p.parseType()))
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(TypeAliasDeclarationSyntax, children)
}

func (p *Parser) parseEnumDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(EnumKeyword))
	children = append(children, p.Match(IdentifierToken))
	if p.At(ColonToken) {
		children = append(children, p.Match(ColonToken))
		children = append(children, NewNodeElement(p.parseType()))
	}
	children = append(children, p.Match(OpenBraceToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBraceToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		var itemChildren []NodeOrToken
		itemChildren = append(itemChildren, p.Match(IdentifierToken))
		if p.At(EqualsToken) {
			itemChildren = append(itemChildren, p.Match(EqualsToken))
			itemChildren = append(itemChildren, NewNodeElement(p.parseExpression()))
		}
		items = append(items, NewNodeElement(p.arena.NewNode(EnumItemSyntax, itemChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBraceToken))
	return p.arena.NewNode(EnumDeclarationSyntax, children)
}

func (p *Parser) parseVariableDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(VarKeyword))
	children = append(children, NewNodeElement(p.parsePattern()))
	if p.At(ColonToken) {
		children = append(children, NewNodeElement(p.parseTypeClause()))
	}
	if p.At(EqualsToken) {
		children = append(children, NewNodeElement(p.parseEqualsValueClause()))
	}
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(VariableDeclarationSyntax, children)
}

func (p *Parser) parseConstantDeclaration() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ConstKeyword))
	children = append(children, p.Match(IdentifierToken))
	if p.At(ColonToken) {
		children = append(children, NewNodeElement(p.parseTypeClause()))
	}
	children = append(children, NewNodeElement(p.parseEqualsValueClause()))
	children = append(children, p.matchStatementTerminator())
	return p.arena.NewNode(ConstantDeclarationSyntax, children)
}

// parseTypeClause parses a `: Type` annotation. When there is no ':'
// at all, the tokens that follow were never meant to spell a type, so
// this stops at the missing-colon diagnostic instead of also sending
// them through parseType (which would just fail a second time on the
// same unmoved cursor and double the diagnostic for one absent
// annotation).
func (p *Parser) parseTypeClause() *SyntaxNode {
	colon := p.Match(ColonToken)
	if tok := colon.AsToken(); tok != nil && tok.IsMissing() {
		missing := p.arena.NewMissingToken(IdentifierToken, p.Current().Span.Start)
		placeholder := p.arena.NewNode(IdentifierNameSyntax, []NodeOrToken{NewTokenElement(missing)})
		return p.arena.NewNode(TypeClauseSyntax, []NodeOrToken{colon, NewNodeElement(placeholder)})
	}
	return p.arena.NewNode(TypeClauseSyntax, []NodeOrToken{colon, NewNodeElement(p.parseType())})
}

func (p *Parser) parseReturnTypeClause() *SyntaxNode {
	return p.arena.NewNode(ReturnTypeClauseSyntax, []NodeOrToken{
		p.Match(MinusGreaterThanToken),
		NewNodeElement(p.parseType()),
	})
}

func (p *Parser) parseEqualsValueClause() *SyntaxNode {
	return p.arena.NewNode(EqualsValueClauseSyntax, []NodeOrToken{
		p.Match(EqualsToken),
		NewNodeElement(p.parseExpression()),
	})
}

// contractKeywordTable maps the contextual-keyword spelling of each
// clause to the clause's kind and the node kind it produces (spec §9
// "contract clauses": where/requires/ensures/invariant).
var contractKeywordTable = []struct {
	spelling     string
	keywordKind  SyntaxKind
	clauseKind   SyntaxKind
}{
	{"where", WhereContextualKeyword, WhereClauseSyntax},
	{"requires", RequiresContextualKeyword, RequiresClauseSyntax},
	{"ensures", EnsuresContextualKeyword, EnsuresClauseSyntax},
	{"invariant", InvariantContextualKeyword, InvariantClauseSyntax},
}

// parseContractClauses parses zero or more trailing where/requires/
// ensures/invariant clauses between a declaration's signature and its
// body (spec §9).
func (p *Parser) parseContractClauses() []NodeOrToken {
	var clauses []NodeOrToken
	progress := loopProgress{}
	for {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		matched := false
		for _, c := range contractKeywordTable {
			if elem, ok := p.TryMatchContextualKeyword(c.keywordKind, c.spelling); ok {
				expr := p.parseExpression()
				clauses = append(clauses, NewNodeElement(p.arena.NewNode(c.clauseKind, []NodeOrToken{elem, NewNodeElement(expr)})))
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return clauses
}

func (p *Parser) parseGenericParameterList() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ExclamationOpenBracketToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBracketToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		name := p.Match(IdentifierToken)
		items = append(items, NewNodeElement(p.arena.NewNode(GenericParameterSyntax, []NodeOrToken{name})))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBracketToken))
	return p.arena.NewNode(GenericParameterListSyntax, children)
}

func (p *Parser) parseGenericArgumentList() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(ExclamationOpenBracketToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseBracketToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		items = append(items, NewNodeElement(p.parseType()))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseBracketToken))
	return p.arena.NewNode(GenericArgumentListSyntax, children)
}

// parameterModifierKeywords is every keyword that can prefix a
// parameter (spec §9: params/ref/out/in/move plus the shared
// declaration modifiers).
var parameterModifierKeywords = NewSyntaxKindSet(ParamsKeyword, RefKeyword, OutKeyword, InKeyword, MoveKeyword)

func (p *Parser) parseParameterList() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenParenToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseParenToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		var paramChildren []NodeOrToken
		if p.At(HashOpenBracketToken) {
			paramChildren = append(paramChildren, NewNodeElement(p.parseAttributeList()))
		}
		for parameterModifierKeywords.Contains(p.Kind()) || modifierKeywords.Contains(p.Kind()) {
			paramChildren = append(paramChildren, NewTokenElement(p.next()))
		}
		paramChildren = append(paramChildren, p.Match(IdentifierToken))
		paramChildren = append(paramChildren, NewNodeElement(p.parseTypeClause()))
		if p.At(EqualsToken) {
			paramChildren = append(paramChildren, NewNodeElement(p.parseEqualsValueClause()))
		}
		items = append(items, NewNodeElement(p.arena.NewNode(ParameterSyntax, paramChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(ParameterListSyntax, children)
}

func (p *Parser) parseArgumentList() *SyntaxNode {
	var children []NodeOrToken
	children = append(children, p.Match(OpenParenToken))
	var items []NodeOrToken
	progress := loopProgress{}
	for !p.AtEnd() && !p.At(CloseParenToken) {
		if !progress.Check(p.Current().Span.Start) {
			break
		}
		var argChildren []NodeOrToken
		if nameElem, ok := p.tryParseNamedArgumentPrefix(); ok {
			argChildren = append(argChildren, nameElem...)
		}
		argChildren = append(argChildren, NewNodeElement(p.parseExpression()))
		items = append(items, NewNodeElement(p.arena.NewNode(ArgumentSyntax, argChildren)))
		if comma, ok := p.TryMatch(CommaToken); ok {
			items = append(items, comma)
		} else {
			break
		}
	}
	children = append(children, NewNodeElement(p.arena.NewSeparatedList(items)))
	children = append(children, p.Match(CloseParenToken))
	return p.arena.NewNode(ArgumentListSyntax, children)
}

// tryParseNamedArgumentPrefix recognizes the `name:` prefix of a named
// argument without committing the cursor unless both the identifier
// and the following colon are present.
func (p *Parser) tryParseNamedArgumentPrefix() ([]NodeOrToken, bool) {
	if p.Kind() != IdentifierToken || p.Peek(1).Kind != ColonToken {
		return nil, false
	}
	name := NewTokenElement(p.next())
	colon := NewTokenElement(p.next())
	return []NodeOrToken{name, colon}, true
}
