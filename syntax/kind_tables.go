package syntax

// kindNames and kindSpellings are the name/spelling tables backing
// Name() and Spelling() (spec §3.2: "name/spelling/classification
// tables"). kindSpellings is only populated for kinds with a single
// fixed textual representation (punctuation, keywords); literal and
// identifier tokens and every node kind have no fixed spelling and
// are left absent (Spelling returns "" for them).
var kindNames = map[SyntaxKind]string{
	None:                          "None",
	WhitespaceTrivia:              "WhitespaceTrivia",
	EndOfLineTrivia:               "EndOfLineTrivia",
	SingleLineCommentTrivia:       "SingleLineCommentTrivia",
	BlockCommentTrivia:            "BlockCommentTrivia",
	SingleLineDocumentationTrivia: "SingleLineDocumentationTrivia",
	MultiLineDocumentationTrivia:  "MultiLineDocumentationTrivia",
	ShebangTrivia:                 "ShebangTrivia",
	EndOfFileToken:                "EndOfFileToken",
	ErrorToken:                    "ErrorToken",
	IdentifierToken:               "IdentifierToken",
	IntegerLiteralToken:           "IntegerLiteralToken",
	FloatLiteralToken:             "FloatLiteralToken",
	StringLiteralToken:            "StringLiteralToken",
	CharacterLiteralToken:         "CharacterLiteralToken",

	OpenParenToken:              "OpenParenToken",
	CloseParenToken:             "CloseParenToken",
	OpenBraceToken:              "OpenBraceToken",
	CloseBraceToken:             "CloseBraceToken",
	OpenBracketToken:            "OpenBracketToken",
	CloseBracketToken:           "CloseBracketToken",
	ExclamationOpenBracketToken: "ExclamationOpenBracketToken",
	HashOpenBracketToken:        "HashOpenBracketToken",
	SemicolonToken:              "SemicolonToken",
	CommaToken:                  "CommaToken",
	ColonToken:                  "ColonToken",
	ColonColonToken:             "ColonColonToken",
	DotToken:                    "DotToken",
	DotDotToken:                 "DotDotToken",
	DotDotEqualsToken:           "DotDotEqualsToken",
	AtToken:                     "AtToken",

	EqualsToken:            "EqualsToken",
	EqualsEqualsToken:      "EqualsEqualsToken",
	ExclamationToken:       "ExclamationToken",
	ExclamationEqualsToken: "ExclamationEqualsToken",

	PlusToken:              "PlusToken",
	PlusPlusToken:          "PlusPlusToken",
	PlusEqualsToken:        "PlusEqualsToken",
	MinusToken:             "MinusToken",
	MinusMinusToken:        "MinusMinusToken",
	MinusEqualsToken:       "MinusEqualsToken",
	MinusGreaterThanToken:  "MinusGreaterThanToken",
	EqualsGreaterThanToken: "EqualsGreaterThanToken",

	AsteriskToken:       "AsteriskToken",
	AsteriskEqualsToken: "AsteriskEqualsToken",
	SlashToken:          "SlashToken",
	SlashEqualsToken:    "SlashEqualsToken",
	PercentToken:        "PercentToken",
	PercentEqualsToken:  "PercentEqualsToken",

	AmpersandToken:          "AmpersandToken",
	AmpersandAmpersandToken: "AmpersandAmpersandToken",
	AmpersandEqualsToken:    "AmpersandEqualsToken",
	BarToken:                "BarToken",
	BarBarToken:             "BarBarToken",
	BarEqualsToken:          "BarEqualsToken",
	CaretToken:              "CaretToken",
	CaretEqualsToken:        "CaretEqualsToken",
	TildeToken:              "TildeToken",

	LessThanToken:                     "LessThanToken",
	LessThanEqualsToken:               "LessThanEqualsToken",
	LessThanLessThanToken:             "LessThanLessThanToken",
	LessThanLessThanEqualsToken:       "LessThanLessThanEqualsToken",
	GreaterThanToken:                  "GreaterThanToken",
	GreaterThanEqualsToken:            "GreaterThanEqualsToken",
	GreaterThanGreaterThanToken:       "GreaterThanGreaterThanToken",
	GreaterThanGreaterThanEqualsToken: "GreaterThanGreaterThanEqualsToken",

	QuestionToken:              "QuestionToken",
	QuestionQuestionToken:      "QuestionQuestionToken",
	QuestionQuestionEqualsToken: "QuestionQuestionEqualsToken",

	UsingKeyword:     "UsingKeyword",
	FunctionKeyword:  "FunctionKeyword",
	DelegateKeyword:  "DelegateKeyword",
	StructKeyword:    "StructKeyword",
	ConceptKeyword:   "ConceptKeyword",
	ExtendKeyword:    "ExtendKeyword",
	NamespaceKeyword: "NamespaceKeyword",
	TypeKeyword:      "TypeKeyword",
	EnumKeyword:      "EnumKeyword",
	VarKeyword:       "VarKeyword",
	LetKeyword:       "LetKeyword",
	ConstKeyword:     "ConstKeyword",

	ReturnKeyword:     "ReturnKeyword",
	WhileKeyword:      "WhileKeyword",
	BreakKeyword:      "BreakKeyword",
	ContinueKeyword:   "ContinueKeyword",
	GotoKeyword:       "GotoKeyword",
	YieldKeyword:      "YieldKeyword",
	LoopKeyword:       "LoopKeyword",
	ForKeyword:        "ForKeyword",
	ForeachKeyword:    "ForeachKeyword",
	CheckedKeyword:    "CheckedKeyword",
	UncheckedKeyword:  "UncheckedKeyword",
	UnsafeKeyword:     "UnsafeKeyword",
	LazyKeyword:       "LazyKeyword",
	DoKeyword:         "DoKeyword",
	SwitchKeyword:     "SwitchKeyword",
	CaseKeyword:       "CaseKeyword",
	TryKeyword:        "TryKeyword",
	CatchKeyword:      "CatchKeyword",
	FinallyKeyword:    "FinallyKeyword",
	ThrowKeyword:      "ThrowKeyword",

	TrueKeyword:        "TrueKeyword",
	FalseKeyword:       "FalseKeyword",
	IfKeyword:          "IfKeyword",
	ElseKeyword:        "ElseKeyword",
	MatchKeyword:       "MatchKeyword",
	AssertKeyword:      "AssertKeyword",
	SelfKeyword:        "SelfKeyword",
	UnreachableKeyword: "UnreachableKeyword",
	EvalKeyword:        "EvalKeyword",

	IsKeyword:        "IsKeyword",
	AsKeyword:        "AsKeyword",
	SizeOfKeyword:    "SizeOfKeyword",
	TypeOfKeyword:    "TypeOfKeyword",
	AlignOfKeyword:   "AlignOfKeyword",
	NameOfKeyword:    "NameOfKeyword",
	AddressOfKeyword: "AddressOfKeyword",

	ParamsKeyword: "ParamsKeyword",
	RefKeyword:    "RefKeyword",
	OutKeyword:    "OutKeyword",
	InKeyword:     "InKeyword",
	MoveKeyword:   "MoveKeyword",

	PublicKeyword:       "PublicKeyword",
	PrivateKeyword:      "PrivateKeyword",
	InternalKeyword:     "InternalKeyword",
	AsyncKeyword:        "AsyncKeyword",
	DiscardableKeyword:  "DiscardableKeyword",
	DynamicKeyword:      "DynamicKeyword",
	ExplicitKeyword:     "ExplicitKeyword",
	ExportKeyword:       "ExportKeyword",
	ExternKeyword:       "ExternKeyword",
	FinalKeyword:        "FinalKeyword",
	FixedKeyword:        "FixedKeyword",
	ImplicitKeyword:     "ImplicitKeyword",
	InlineKeyword:       "InlineKeyword",
	NativeKeyword:       "NativeKeyword",
	OverrideKeyword:     "OverrideKeyword",
	PartialKeyword:      "PartialKeyword",
	PreciseKeyword:      "PreciseKeyword",
	PureKeyword:         "PureKeyword",
	ReadonlyKeyword:     "ReadonlyKeyword",
	RecursiveKeyword:    "RecursiveKeyword",
	SynchronizedKeyword: "SynchronizedKeyword",
	TailCallKeyword:     "TailCallKeyword",
	ThreadLocalKeyword:  "ThreadLocalKeyword",
	TransientKeyword:    "TransientKeyword",
	TrustedKeyword:      "TrustedKeyword",
	UnalignedKeyword:    "UnalignedKeyword",
	UniformKeyword:      "UniformKeyword",

	MutableKeyword:  "MutableKeyword",
	RestrictKeyword: "RestrictKeyword",
	AtomicKeyword:   "AtomicKeyword",

	UnderscoreKeyword: "UnderscoreKeyword",

	AndKeyword:      "AndKeyword",
	OrKeyword:       "OrKeyword",
	NotKeyword:      "NotKeyword",
	BitAndKeyword:   "BitAndKeyword",
	BitOrKeyword:    "BitOrKeyword",
	BitXorKeyword:   "BitXorKeyword",
	BitComplKeyword: "BitComplKeyword",

	WhereContextualKeyword:     "WhereContextualKeyword",
	RequiresContextualKeyword:  "RequiresContextualKeyword",
	EnsuresContextualKeyword:   "EnsuresContextualKeyword",
	InvariantContextualKeyword: "InvariantContextualKeyword",
	GetContextualKeyword:       "GetContextualKeyword",
	SetContextualKeyword:       "SetContextualKeyword",

	SourceFileSyntax:            "SourceFileSyntax",
	SyntaxListSyntax:            "SyntaxListSyntax",
	SeparatedSyntaxListSyntax:   "SeparatedSyntaxListSyntax",
	UnexpectedNodesSyntax:       "UnexpectedNodesSyntax",
	CodeBlockItemSyntax:         "CodeBlockItemSyntax",
	BalancedTokenSequenceSyntax: "BalancedTokenSequenceSyntax",
	LabelSyntax:                 "LabelSyntax",

	AttributeListSyntax:         "AttributeListSyntax",
	AttributeSyntax:             "AttributeSyntax",
	GenericParameterListSyntax:  "GenericParameterListSyntax",
	GenericParameterSyntax:      "GenericParameterSyntax",
	GenericArgumentListSyntax:   "GenericArgumentListSyntax",
	ParameterListSyntax:         "ParameterListSyntax",
	ParameterSyntax:             "ParameterSyntax",
	ArgumentListSyntax:          "ArgumentListSyntax",
	ArgumentSyntax:              "ArgumentSyntax",
	TypeClauseSyntax:            "TypeClauseSyntax",
	ReturnTypeClauseSyntax:      "ReturnTypeClauseSyntax",
	EqualsValueClauseSyntax:     "EqualsValueClauseSyntax",
	ElseClauseSyntax:            "ElseClauseSyntax",
	WhereClauseSyntax:           "WhereClauseSyntax",
	RequiresClauseSyntax:        "RequiresClauseSyntax",
	EnsuresClauseSyntax:         "EnsuresClauseSyntax",
	InvariantClauseSyntax:       "InvariantClauseSyntax",
	MemberDeclarationBlockSyntax: "MemberDeclarationBlockSyntax",
	EnumItemSyntax:              "EnumItemSyntax",
	MatchArmSyntax:              "MatchArmSyntax",

	UsingDeclarationSyntax:     "UsingDeclarationSyntax",
	NamespaceDeclarationSyntax: "NamespaceDeclarationSyntax",
	FunctionDeclarationSyntax:  "FunctionDeclarationSyntax",
	DelegateDeclarationSyntax:  "DelegateDeclarationSyntax",
	StructDeclarationSyntax:    "StructDeclarationSyntax",
	ConceptDeclarationSyntax:   "ConceptDeclarationSyntax",
	ExtendDeclarationSyntax:    "ExtendDeclarationSyntax",
	TypeAliasDeclarationSyntax: "TypeAliasDeclarationSyntax",
	EnumDeclarationSyntax:      "EnumDeclarationSyntax",
	VariableDeclarationSyntax:  "VariableDeclarationSyntax",
	ConstantDeclarationSyntax:  "ConstantDeclarationSyntax",

	BlockStatementSyntax:      "BlockStatementSyntax",
	EmptyStatementSyntax:      "EmptyStatementSyntax",
	ReturnStatementSyntax:     "ReturnStatementSyntax",
	WhileStatementSyntax:      "WhileStatementSyntax",
	BreakStatementSyntax:      "BreakStatementSyntax",
	ContinueStatementSyntax:   "ContinueStatementSyntax",
	GotoStatementSyntax:       "GotoStatementSyntax",
	YieldStatementSyntax:      "YieldStatementSyntax",
	LoopStatementSyntax:       "LoopStatementSyntax",
	ForStatementSyntax:        "ForStatementSyntax",
	ForEachStatementSyntax:    "ForEachStatementSyntax",
	CheckedStatementSyntax:    "CheckedStatementSyntax",
	UncheckedStatementSyntax:  "UncheckedStatementSyntax",
	UnsafeStatementSyntax:     "UnsafeStatementSyntax",
	LazyStatementSyntax:       "LazyStatementSyntax",
	ExpressionStatementSyntax: "ExpressionStatementSyntax",
	LabeledStatementSyntax:    "LabeledStatementSyntax",

	IdentifierNameSyntax: "IdentifierNameSyntax",
	GenericNameSyntax:    "GenericNameSyntax",
	QualifiedNameSyntax:  "QualifiedNameSyntax",
	TupleTypeSyntax:        "TupleTypeSyntax",
	TupleTypeElementSyntax: "TupleTypeElementSyntax",
	ArrayTypeSyntax:        "ArrayTypeSyntax",
	PointerTypeSyntax:      "PointerTypeSyntax",
	ReferenceTypeSyntax:    "ReferenceTypeSyntax",

	IntegerLiteralExpressionSyntax:   "IntegerLiteralExpressionSyntax",
	FloatLiteralExpressionSyntax:     "FloatLiteralExpressionSyntax",
	StringLiteralExpressionSyntax:    "StringLiteralExpressionSyntax",
	CharacterLiteralExpressionSyntax: "CharacterLiteralExpressionSyntax",
	TrueLiteralExpressionSyntax:      "TrueLiteralExpressionSyntax",
	FalseLiteralExpressionSyntax:     "FalseLiteralExpressionSyntax",
	SelfExpressionSyntax:             "SelfExpressionSyntax",
	UnreachableExpressionSyntax:      "UnreachableExpressionSyntax",
	ParenthesizedExpressionSyntax:    "ParenthesizedExpressionSyntax",
	StructExpressionSyntax:           "StructExpressionSyntax",
	StructExpressionFieldSyntax:      "StructExpressionFieldSyntax",
	InvocationExpressionSyntax:       "InvocationExpressionSyntax",
	IndexExpressionSyntax:            "IndexExpressionSyntax",
	SimpleMemberAccessExpressionSyntax:  "SimpleMemberAccessExpressionSyntax",
	PointerMemberAccessExpressionSyntax: "PointerMemberAccessExpressionSyntax",
	IfExpressionSyntax:     "IfExpressionSyntax",
	MatchExpressionSyntax:  "MatchExpressionSyntax",
	AssertExpressionSyntax: "AssertExpressionSyntax",
	LetExpressionSyntax:    "LetExpressionSyntax",
	EvalExpressionSyntax:   "EvalExpressionSyntax",
	SizeOfExpressionSyntax: "SizeOfExpressionSyntax",
	TypeOfExpressionSyntax: "TypeOfExpressionSyntax",
	AlignOfExpressionSyntax: "AlignOfExpressionSyntax",
	NameOfExpressionSyntax: "NameOfExpressionSyntax",

	UnaryPlusExpressionSyntax:    "UnaryPlusExpressionSyntax",
	UnaryMinusExpressionSyntax:   "UnaryMinusExpressionSyntax",
	BitwiseNotExpressionSyntax:   "BitwiseNotExpressionSyntax",
	LogicalNotExpressionSyntax:   "LogicalNotExpressionSyntax",
	PreIncrementExpressionSyntax: "PreIncrementExpressionSyntax",
	PreDecrementExpressionSyntax: "PreDecrementExpressionSyntax",
	AddressOfExpressionSyntax:    "AddressOfExpressionSyntax",
	DereferenceExpressionSyntax:  "DereferenceExpressionSyntax",

	PostIncrementExpressionSyntax: "PostIncrementExpressionSyntax",
	PostDecrementExpressionSyntax: "PostDecrementExpressionSyntax",

	CoalesceExpressionSyntax:          "CoalesceExpressionSyntax",
	BitwiseOrExpressionSyntax:         "BitwiseOrExpressionSyntax",
	ExclusiveOrExpressionSyntax:       "ExclusiveOrExpressionSyntax",
	BitwiseAndExpressionSyntax:        "BitwiseAndExpressionSyntax",
	EqualsExpressionSyntax:            "EqualsExpressionSyntax",
	NotEqualsExpressionSyntax:         "NotEqualsExpressionSyntax",
	LessThanExpressionSyntax:          "LessThanExpressionSyntax",
	LessThanOrEqualExpressionSyntax:   "LessThanOrEqualExpressionSyntax",
	GreaterThanExpressionSyntax:       "GreaterThanExpressionSyntax",
	GreaterThanOrEqualExpressionSyntax: "GreaterThanOrEqualExpressionSyntax",
	LeftShiftExpressionSyntax:         "LeftShiftExpressionSyntax",
	RightShiftExpressionSyntax:        "RightShiftExpressionSyntax",
	AddExpressionSyntax:               "AddExpressionSyntax",
	SubtractExpressionSyntax:          "SubtractExpressionSyntax",
	MultiplyExpressionSyntax:          "MultiplyExpressionSyntax",
	DivideExpressionSyntax:            "DivideExpressionSyntax",
	ModuloExpressionSyntax:            "ModuloExpressionSyntax",
	LogicalAndExpressionSyntax:        "LogicalAndExpressionSyntax",
	LogicalOrExpressionSyntax:         "LogicalOrExpressionSyntax",
	IsExpressionSyntax:                "IsExpressionSyntax",
	AsExpressionSyntax:                "AsExpressionSyntax",

	SimpleAssignmentExpressionSyntax:      "SimpleAssignmentExpressionSyntax",
	AddAssignmentExpressionSyntax:         "AddAssignmentExpressionSyntax",
	SubtractAssignmentExpressionSyntax:    "SubtractAssignmentExpressionSyntax",
	MultiplyAssignmentExpressionSyntax:    "MultiplyAssignmentExpressionSyntax",
	DivideAssignmentExpressionSyntax:      "DivideAssignmentExpressionSyntax",
	ModuloAssignmentExpressionSyntax:      "ModuloAssignmentExpressionSyntax",
	AndAssignmentExpressionSyntax:         "AndAssignmentExpressionSyntax",
	ExclusiveOrAssignmentExpressionSyntax: "ExclusiveOrAssignmentExpressionSyntax",
	OrAssignmentExpressionSyntax:          "OrAssignmentExpressionSyntax",
	LeftShiftAssignmentExpressionSyntax:   "LeftShiftAssignmentExpressionSyntax",
	RightShiftAssignmentExpressionSyntax:  "RightShiftAssignmentExpressionSyntax",
	CoalesceAssignmentExpressionSyntax:    "CoalesceAssignmentExpressionSyntax",

	ConditionalExpressionSyntax: "ConditionalExpressionSyntax",

	WildcardPatternSyntax:   "WildcardPatternSyntax",
	IdentifierPatternSyntax: "IdentifierPatternSyntax",
	SlicePatternSyntax:      "SlicePatternSyntax",
	TuplePatternSyntax:      "TuplePatternSyntax",
	StructPatternSyntax:     "StructPatternSyntax",
	FieldPatternSyntax:      "FieldPatternSyntax",
	LiteralPatternSyntax:    "LiteralPatternSyntax",
}

var kindSpellings = map[SyntaxKind]string{
	OpenParenToken:              "(",
	CloseParenToken:             ")",
	OpenBraceToken:              "{",
	CloseBraceToken:             "}",
	OpenBracketToken:            "[",
	CloseBracketToken:           "]",
	ExclamationOpenBracketToken: "![",
	HashOpenBracketToken:        "#[",
	SemicolonToken:              ";",
	CommaToken:                  ",",
	ColonToken:                  ":",
	ColonColonToken:             "::",
	DotToken:                    ".",
	DotDotToken:                 "..",
	DotDotEqualsToken:           "..=",
	AtToken:                     "@",

	EqualsToken:            "=",
	EqualsEqualsToken:      "==",
	ExclamationToken:       "!",
	ExclamationEqualsToken: "!=",

	PlusToken:              "+",
	PlusPlusToken:          "++",
	PlusEqualsToken:        "+=",
	MinusToken:             "-",
	MinusMinusToken:        "--",
	MinusEqualsToken:       "-=",
	MinusGreaterThanToken:  "->",
	EqualsGreaterThanToken: "=>",

	AsteriskToken:       "*",
	AsteriskEqualsToken: "*=",
	SlashToken:          "/",
	SlashEqualsToken:    "/=",
	PercentToken:        "%",
	PercentEqualsToken:  "%=",

	AmpersandToken:          "&",
	AmpersandAmpersandToken: "&&",
	AmpersandEqualsToken:    "&=",
	BarToken:                "|",
	BarBarToken:             "||",
	BarEqualsToken:          "|=",
	CaretToken:              "^",
	CaretEqualsToken:        "^=",
	TildeToken:              "~",

	LessThanToken:                     "<",
	LessThanEqualsToken:               "<=",
	LessThanLessThanToken:             "<<",
	LessThanLessThanEqualsToken:       "<<=",
	GreaterThanToken:                  ">",
	GreaterThanEqualsToken:            ">=",
	GreaterThanGreaterThanToken:       ">>",
	GreaterThanGreaterThanEqualsToken: ">>=",

	QuestionToken:               "?",
	QuestionQuestionToken:       "??",
	QuestionQuestionEqualsToken: "??=",

	EndOfFileToken: "",

	UsingKeyword:     "using",
	FunctionKeyword:  "function",
	DelegateKeyword:  "delegate",
	StructKeyword:    "struct",
	ConceptKeyword:   "concept",
	ExtendKeyword:    "extend",
	NamespaceKeyword: "namespace",
	TypeKeyword:      "type",
	EnumKeyword:      "enum",
	VarKeyword:       "var",
	LetKeyword:       "let",
	ConstKeyword:     "const",

	ReturnKeyword:    "return",
	WhileKeyword:     "while",
	BreakKeyword:     "break",
	ContinueKeyword:  "continue",
	GotoKeyword:      "goto",
	YieldKeyword:     "yield",
	LoopKeyword:      "loop",
	ForKeyword:       "for",
	ForeachKeyword:   "foreach",
	CheckedKeyword:   "checked",
	UncheckedKeyword: "unchecked",
	UnsafeKeyword:    "unsafe",
	LazyKeyword:      "lazy",
	DoKeyword:        "do",
	SwitchKeyword:    "switch",
	CaseKeyword:      "case",
	TryKeyword:       "try",
	CatchKeyword:     "catch",
	FinallyKeyword:   "finally",
	ThrowKeyword:     "throw",

	TrueKeyword:        "true",
	FalseKeyword:       "false",
	IfKeyword:          "if",
	ElseKeyword:        "else",
	MatchKeyword:       "match",
	AssertKeyword:      "assert",
	SelfKeyword:        "self",
	UnreachableKeyword: "unreachable",
	EvalKeyword:        "eval",

	IsKeyword:        "is",
	AsKeyword:        "as",
	SizeOfKeyword:    "sizeof",
	TypeOfKeyword:    "typeof",
	AlignOfKeyword:   "alignof",
	NameOfKeyword:    "nameof",
	AddressOfKeyword: "addressof",

	ParamsKeyword: "params",
	RefKeyword:    "ref",
	OutKeyword:    "out",
	InKeyword:     "in",
	MoveKeyword:   "move",

	PublicKeyword:       "public",
	PrivateKeyword:      "private",
	InternalKeyword:     "internal",
	AsyncKeyword:        "async",
	DiscardableKeyword:  "discardable",
	DynamicKeyword:      "dynamic",
	ExplicitKeyword:     "explicit",
	ExportKeyword:       "export",
	ExternKeyword:       "extern",
	FinalKeyword:        "final",
	FixedKeyword:        "fixed",
	ImplicitKeyword:     "implicit",
	InlineKeyword:       "inline",
	NativeKeyword:       "native",
	OverrideKeyword:     "override",
	PartialKeyword:      "partial",
	PreciseKeyword:      "precise",
	PureKeyword:         "pure",
	ReadonlyKeyword:     "readonly",
	RecursiveKeyword:    "recursive",
	SynchronizedKeyword: "synchronized",
	TailCallKeyword:     "tailcall",
	ThreadLocalKeyword:  "threadlocal",
	TransientKeyword:    "transient",
	TrustedKeyword:      "trusted",
	UnalignedKeyword:    "unaligned",
	UniformKeyword:      "uniform",

	MutableKeyword:  "mutable",
	RestrictKeyword: "restrict",
	AtomicKeyword:   "atomic",

	UnderscoreKeyword: "_",

	AndKeyword:      "and",
	OrKeyword:       "or",
	NotKeyword:      "not",
	BitAndKeyword:   "bitand",
	BitOrKeyword:    "bitor",
	BitXorKeyword:   "bitxor",
	BitComplKeyword: "bitcompl",

	WhereContextualKeyword:     "where",
	RequiresContextualKeyword:  "requires",
	EnsuresContextualKeyword:   "ensures",
	InvariantContextualKeyword: "invariant",
	GetContextualKeyword:       "get",
	SetContextualKeyword:       "set",
}

// Name returns the SyntaxKind's identifier-style name, e.g.
// "IdentifierToken". Every kind has a Name; the empty string is
// returned only for out-of-range values.
func (k SyntaxKind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return ""
}

// String makes SyntaxKind satisfy fmt.Stringer using its Name.
func (k SyntaxKind) String() string {
	return k.Name()
}

// Spelling returns the kind's single fixed textual representation
// (punctuation and keywords), or "" if the kind has no fixed spelling
// (identifiers, literals, every node kind).
func (k SyntaxKind) Spelling() string {
	return kindSpellings[k]
}
