package syntax

// SyntaxKind is the single closed enumeration partitioning every
// trivia, token, keyword, contextual keyword, and node shape in the
// grammar (spec §3.2). Re-architected per spec §9 as a tagged variant:
// classification is table-driven rather than via an inheritance
// hierarchy.
type SyntaxKind uint16

const (
	// None is the zero value: "no kind", used for invalid/sentinel
	// lookups (e.g. SyntaxFacts helpers that return "not applicable").
	None SyntaxKind = iota

	// --- Trivia (spec §3.3) ---
	WhitespaceTrivia
	EndOfLineTrivia
	SingleLineCommentTrivia
	BlockCommentTrivia
	SingleLineDocumentationTrivia
	MultiLineDocumentationTrivia
	ShebangTrivia

	// --- Special tokens ---
	EndOfFileToken
	ErrorToken // a single stray byte the lexer could not classify

	// --- Literal / identifier tokens (typed payloads, spec §3.4) ---
	IdentifierToken
	IntegerLiteralToken
	FloatLiteralToken
	StringLiteralToken
	CharacterLiteralToken

	// --- Punctuation tokens ---
	OpenParenToken
	CloseParenToken
	OpenBraceToken
	CloseBraceToken
	OpenBracketToken
	CloseBracketToken
	ExclamationOpenBracketToken // `![` generic parameter/argument list opener
	HashOpenBracketToken        // `#[` attribute list opener
	SemicolonToken
	CommaToken
	ColonToken
	ColonColonToken
	DotToken
	DotDotToken
	DotDotEqualsToken
	AtToken

	EqualsToken
	EqualsEqualsToken
	ExclamationToken
	ExclamationEqualsToken

	PlusToken
	PlusPlusToken
	PlusEqualsToken
	MinusToken
	MinusMinusToken
	MinusEqualsToken
	MinusGreaterThanToken // `->`
	EqualsGreaterThanToken // `=>`

	AsteriskToken
	AsteriskEqualsToken
	SlashToken
	SlashEqualsToken
	PercentToken
	PercentEqualsToken

	AmpersandToken
	AmpersandAmpersandToken
	AmpersandEqualsToken
	BarToken
	BarBarToken
	BarEqualsToken
	CaretToken
	CaretEqualsToken
	TildeToken

	LessThanToken
	LessThanEqualsToken
	LessThanLessThanToken
	LessThanLessThanEqualsToken
	GreaterThanToken
	GreaterThanEqualsToken
	GreaterThanGreaterThanToken
	GreaterThanGreaterThanEqualsToken

	QuestionToken
	QuestionQuestionToken
	QuestionQuestionEqualsToken

	// --- Keywords (spec §9 "Contextual keywords", SyntaxFacts.cxx) ---
	UsingKeyword
	FunctionKeyword
	DelegateKeyword
	StructKeyword
	ConceptKeyword
	ExtendKeyword
	NamespaceKeyword
	TypeKeyword
	EnumKeyword
	VarKeyword
	LetKeyword
	ConstKeyword

	ReturnKeyword
	WhileKeyword
	BreakKeyword
	ContinueKeyword
	GotoKeyword
	YieldKeyword
	LoopKeyword
	ForKeyword
	ForeachKeyword
	CheckedKeyword
	UncheckedKeyword
	UnsafeKeyword
	LazyKeyword
	DoKeyword
	SwitchKeyword
	CaseKeyword
	TryKeyword
	CatchKeyword
	FinallyKeyword
	ThrowKeyword

	TrueKeyword
	FalseKeyword
	IfKeyword
	ElseKeyword
	MatchKeyword
	AssertKeyword
	SelfKeyword
	UnreachableKeyword
	EvalKeyword

	IsKeyword
	AsKeyword
	SizeOfKeyword
	TypeOfKeyword
	AlignOfKeyword
	NameOfKeyword
	AddressOfKeyword

	ParamsKeyword
	RefKeyword
	OutKeyword
	InKeyword
	MoveKeyword

	PublicKeyword
	PrivateKeyword
	InternalKeyword
	AsyncKeyword
	DiscardableKeyword
	DynamicKeyword
	ExplicitKeyword
	ExportKeyword
	ExternKeyword
	FinalKeyword
	FixedKeyword
	ImplicitKeyword
	InlineKeyword
	NativeKeyword
	OverrideKeyword
	PartialKeyword
	PreciseKeyword
	PureKeyword
	ReadonlyKeyword
	RecursiveKeyword
	SynchronizedKeyword
	TailCallKeyword
	ThreadLocalKeyword
	TransientKeyword
	TrustedKeyword
	UnalignedKeyword
	UniformKeyword

	MutableKeyword
	RestrictKeyword
	AtomicKeyword

	UnderscoreKeyword // `_` wildcard

	// Keyword spellings of bitwise/logical operators
	// (SyntaxFacts.cxx ENABLE_KEYWORD_BIT_OPERATORS).
	AndKeyword
	OrKeyword
	NotKeyword
	BitAndKeyword
	BitOrKeyword
	BitXorKeyword
	BitComplKeyword

	// --- Contextual keywords (identifier-shaped, spec §9) ---
	WhereContextualKeyword
	RequiresContextualKeyword
	EnsuresContextualKeyword
	InvariantContextualKeyword
	GetContextualKeyword
	SetContextualKeyword

	// --- Nodes: structural / lists ---
	SourceFileSyntax
	SyntaxListSyntax
	SeparatedSyntaxListSyntax
	UnexpectedNodesSyntax
	CodeBlockItemSyntax
	BalancedTokenSequenceSyntax
	LabelSyntax

	AttributeListSyntax
	AttributeSyntax
	GenericParameterListSyntax
	GenericParameterSyntax
	GenericArgumentListSyntax
	ParameterListSyntax
	ParameterSyntax
	ArgumentListSyntax
	ArgumentSyntax
	TypeClauseSyntax
	ReturnTypeClauseSyntax
	EqualsValueClauseSyntax
	ElseClauseSyntax
	WhereClauseSyntax
	RequiresClauseSyntax
	EnsuresClauseSyntax
	InvariantClauseSyntax
	MemberDeclarationBlockSyntax
	EnumItemSyntax
	MatchArmSyntax

	// --- Nodes: declarations ---
	UsingDeclarationSyntax
	NamespaceDeclarationSyntax
	FunctionDeclarationSyntax
	DelegateDeclarationSyntax
	StructDeclarationSyntax
	ConceptDeclarationSyntax
	ExtendDeclarationSyntax
	TypeAliasDeclarationSyntax
	EnumDeclarationSyntax
	VariableDeclarationSyntax
	ConstantDeclarationSyntax

	// --- Nodes: statements ---
	BlockStatementSyntax
	EmptyStatementSyntax
	ReturnStatementSyntax
	WhileStatementSyntax
	BreakStatementSyntax
	ContinueStatementSyntax
	GotoStatementSyntax
	YieldStatementSyntax
	LoopStatementSyntax
	ForStatementSyntax
	ForEachStatementSyntax
	CheckedStatementSyntax
	UncheckedStatementSyntax
	UnsafeStatementSyntax
	LazyStatementSyntax
	ExpressionStatementSyntax
	LabeledStatementSyntax

	// --- Nodes: names / types (shared between expression and type position) ---
	IdentifierNameSyntax
	GenericNameSyntax
	QualifiedNameSyntax
	TupleTypeSyntax
	TupleTypeElementSyntax
	ArrayTypeSyntax
	PointerTypeSyntax
	ReferenceTypeSyntax

	// --- Nodes: expressions ---
	IntegerLiteralExpressionSyntax
	FloatLiteralExpressionSyntax
	StringLiteralExpressionSyntax
	CharacterLiteralExpressionSyntax
	TrueLiteralExpressionSyntax
	FalseLiteralExpressionSyntax
	SelfExpressionSyntax
	UnreachableExpressionSyntax
	ParenthesizedExpressionSyntax
	StructExpressionSyntax
	StructExpressionFieldSyntax
	InvocationExpressionSyntax
	IndexExpressionSyntax
	SimpleMemberAccessExpressionSyntax
	PointerMemberAccessExpressionSyntax
	IfExpressionSyntax
	MatchExpressionSyntax
	AssertExpressionSyntax
	LetExpressionSyntax
	EvalExpressionSyntax
	SizeOfExpressionSyntax
	TypeOfExpressionSyntax
	AlignOfExpressionSyntax
	NameOfExpressionSyntax

	// Prefix unary
	UnaryPlusExpressionSyntax
	UnaryMinusExpressionSyntax
	BitwiseNotExpressionSyntax
	LogicalNotExpressionSyntax
	PreIncrementExpressionSyntax
	PreDecrementExpressionSyntax
	AddressOfExpressionSyntax
	DereferenceExpressionSyntax

	// Postfix unary
	PostIncrementExpressionSyntax
	PostDecrementExpressionSyntax

	// Binary (shared BinaryExpressionSyntax shape; SyntaxKind selects operator)
	CoalesceExpressionSyntax
	BitwiseOrExpressionSyntax
	ExclusiveOrExpressionSyntax
	BitwiseAndExpressionSyntax
	EqualsExpressionSyntax
	NotEqualsExpressionSyntax
	LessThanExpressionSyntax
	LessThanOrEqualExpressionSyntax
	GreaterThanExpressionSyntax
	GreaterThanOrEqualExpressionSyntax
	LeftShiftExpressionSyntax
	RightShiftExpressionSyntax
	AddExpressionSyntax
	SubtractExpressionSyntax
	MultiplyExpressionSyntax
	DivideExpressionSyntax
	ModuloExpressionSyntax
	LogicalAndExpressionSyntax
	LogicalOrExpressionSyntax
	IsExpressionSyntax
	AsExpressionSyntax

	// Assignment (shared AssignmentExpressionSyntax shape)
	SimpleAssignmentExpressionSyntax
	AddAssignmentExpressionSyntax
	SubtractAssignmentExpressionSyntax
	MultiplyAssignmentExpressionSyntax
	DivideAssignmentExpressionSyntax
	ModuloAssignmentExpressionSyntax
	AndAssignmentExpressionSyntax
	ExclusiveOrAssignmentExpressionSyntax
	OrAssignmentExpressionSyntax
	LeftShiftAssignmentExpressionSyntax
	RightShiftAssignmentExpressionSyntax
	CoalesceAssignmentExpressionSyntax

	ConditionalExpressionSyntax

	// --- Nodes: patterns ---
	WildcardPatternSyntax
	IdentifierPatternSyntax
	SlicePatternSyntax
	TuplePatternSyntax
	StructPatternSyntax
	FieldPatternSyntax
	LiteralPatternSyntax

	// kindCount is a sentinel marking one past the last valid kind; it
	// is never itself a valid SyntaxKind.
	kindCount
)

// KindCount returns the number of distinct SyntaxKind values,
// including None. Used to size table-driven lookups.
func KindCount() int {
	return int(kindCount)
}

// IsTrivia reports whether kind is one of the trivia kinds attached to
// a token's leading/trailing trivia list (spec §3.3).
func IsTrivia(kind SyntaxKind) bool {
	return kind >= WhitespaceTrivia && kind <= ShebangTrivia
}

// IsDocumentationTrivia reports whether kind carries documentation
// text rather than being discarded prose (spec §3.3).
func IsDocumentationTrivia(kind SyntaxKind) bool {
	return kind == SingleLineDocumentationTrivia || kind == MultiLineDocumentationTrivia
}

// IsToken reports whether kind is a lexer-produced token (including
// keywords, but excluding trivia and node kinds).
func IsToken(kind SyntaxKind) bool {
	return kind >= EndOfFileToken && kind <= BitComplKeyword
}

// IsPunctuation reports whether kind is one of the fixed-spelling
// operator/punctuator tokens.
func IsPunctuation(kind SyntaxKind) bool {
	return kind >= OpenParenToken && kind <= QuestionQuestionEqualsToken
}

// IsLiteralToken reports whether kind carries a literal payload.
func IsLiteralToken(kind SyntaxKind) bool {
	switch kind {
	case IntegerLiteralToken, FloatLiteralToken, StringLiteralToken, CharacterLiteralToken:
		return true
	default:
		return false
	}
}

// IsNode reports whether kind tags a SyntaxNode produced by the
// parser, as opposed to a token held at a tree leaf.
func IsNode(kind SyntaxKind) bool {
	return kind >= SourceFileSyntax && kind < kindCount
}

// IsExpression reports whether kind is one of the expression node
// shapes (spec §4.7-§4.8). Used by the parser to validate recovery
// targets and by the walker's default dispatch.
func IsExpression(kind SyntaxKind) bool {
	return kind >= IntegerLiteralExpressionSyntax && kind <= ConditionalExpressionSyntax
}

// IsPattern reports whether kind is one of the pattern node shapes.
func IsPattern(kind SyntaxKind) bool {
	return kind >= WildcardPatternSyntax && kind <= LiteralPatternSyntax
}

// IsStatement reports whether kind is one of the statement node shapes.
func IsStatement(kind SyntaxKind) bool {
	return kind >= BlockStatementSyntax && kind <= LabeledStatementSyntax
}

// IsDeclaration reports whether kind is one of the declaration node
// shapes reachable as a CodeBlockItemSyntax.
func IsDeclaration(kind SyntaxKind) bool {
	return kind >= UsingDeclarationSyntax && kind <= ConstantDeclarationSyntax
}
