package syntax

// Precedence orders binary operators for precedence-climbing parsing
// (spec §4.8). Ordered low-to-high; Primary is the base case where
// climbing stops and a unary/postfix expression is parsed directly.
// This ladder follows spec.md's own list rather than the original
// implementation's Precedence enum, which also carries Lambda/Switch/
// Range slots this grammar does not need.
type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceAssignment
	PrecedenceConditional
	PrecedenceCoalescing
	PrecedenceLogicalOr
	PrecedenceLogicalAnd
	PrecedenceBitwiseOr
	PrecedenceBitwiseXor
	PrecedenceBitwiseAnd
	PrecedenceEquality
	PrecedenceRelational
	PrecedenceShift
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedenceUnary
	PrecedenceCast
	PrecedenceDereference
	PrecedenceAddressOf
	PrecedencePrimary
)

// binaryOperatorInfo associates a binary-operator token kind with its
// precedence, resulting expression-node kind, and associativity.
type binaryOperatorInfo struct {
	precedence    Precedence
	kind          SyntaxKind
	rightAssoc    bool
}

// binaryOperators maps a token kind that can appear as an infix
// binary operator to its parse info, grounded on the original
// tokenizer's GetBinaryExpression/GetBinaryOperatorPrecedence tables
// (SyntaxFacts.cxx).
var binaryOperators = map[SyntaxKind]binaryOperatorInfo{
	QuestionQuestionToken: {PrecedenceCoalescing, CoalesceExpressionSyntax, true},

	BarBarToken: {PrecedenceLogicalOr, LogicalOrExpressionSyntax, false},
	OrKeyword:   {PrecedenceLogicalOr, LogicalOrExpressionSyntax, false},

	AmpersandAmpersandToken: {PrecedenceLogicalAnd, LogicalAndExpressionSyntax, false},
	AndKeyword:              {PrecedenceLogicalAnd, LogicalAndExpressionSyntax, false},

	BarToken:      {PrecedenceBitwiseOr, BitwiseOrExpressionSyntax, false},
	BitOrKeyword:  {PrecedenceBitwiseOr, BitwiseOrExpressionSyntax, false},

	CaretToken:     {PrecedenceBitwiseXor, ExclusiveOrExpressionSyntax, false},
	BitXorKeyword:  {PrecedenceBitwiseXor, ExclusiveOrExpressionSyntax, false},

	AmpersandToken: {PrecedenceBitwiseAnd, BitwiseAndExpressionSyntax, false},
	BitAndKeyword:  {PrecedenceBitwiseAnd, BitwiseAndExpressionSyntax, false},

	EqualsEqualsToken:      {PrecedenceEquality, EqualsExpressionSyntax, false},
	ExclamationEqualsToken: {PrecedenceEquality, NotEqualsExpressionSyntax, false},

	LessThanToken:              {PrecedenceRelational, LessThanExpressionSyntax, false},
	LessThanEqualsToken:        {PrecedenceRelational, LessThanOrEqualExpressionSyntax, false},
	GreaterThanToken:           {PrecedenceRelational, GreaterThanExpressionSyntax, false},
	GreaterThanEqualsToken:     {PrecedenceRelational, GreaterThanOrEqualExpressionSyntax, false},
	IsKeyword:                  {PrecedenceRelational, IsExpressionSyntax, false},
	AsKeyword:                  {PrecedenceRelational, AsExpressionSyntax, false},

	LessThanLessThanToken:          {PrecedenceShift, LeftShiftExpressionSyntax, false},
	GreaterThanGreaterThanToken:    {PrecedenceShift, RightShiftExpressionSyntax, false},

	PlusToken:  {PrecedenceAdditive, AddExpressionSyntax, false},
	MinusToken: {PrecedenceAdditive, SubtractExpressionSyntax, false},

	AsteriskToken: {PrecedenceMultiplicative, MultiplyExpressionSyntax, false},
	SlashToken:    {PrecedenceMultiplicative, DivideExpressionSyntax, false},
	PercentToken:  {PrecedenceMultiplicative, ModuloExpressionSyntax, false},
}

// GetBinaryOperator reports whether kind can start a binary operator
// and, if so, its precedence/node-kind/associativity.
func GetBinaryOperator(kind SyntaxKind) (precedence Precedence, nodeKind SyntaxKind, rightAssoc bool, ok bool) {
	info, ok := binaryOperators[kind]
	return info.precedence, info.kind, info.rightAssoc, ok
}

// assignmentOperators maps an assignment-operator token kind to the
// resulting AssignmentExpressionSyntax variant. All are right
// associative (spec §4.8).
var assignmentOperators = map[SyntaxKind]SyntaxKind{
	EqualsToken:                       SimpleAssignmentExpressionSyntax,
	PlusEqualsToken:                   AddAssignmentExpressionSyntax,
	MinusEqualsToken:                  SubtractAssignmentExpressionSyntax,
	AsteriskEqualsToken:               MultiplyAssignmentExpressionSyntax,
	SlashEqualsToken:                  DivideAssignmentExpressionSyntax,
	PercentEqualsToken:                ModuloAssignmentExpressionSyntax,
	AmpersandEqualsToken:              AndAssignmentExpressionSyntax,
	CaretEqualsToken:                  ExclusiveOrAssignmentExpressionSyntax,
	BarEqualsToken:                    OrAssignmentExpressionSyntax,
	LessThanLessThanEqualsToken:       LeftShiftAssignmentExpressionSyntax,
	GreaterThanGreaterThanEqualsToken: RightShiftAssignmentExpressionSyntax,
	QuestionQuestionEqualsToken:       CoalesceAssignmentExpressionSyntax,
}

// GetAssignmentOperator reports whether kind is an assignment
// operator and, if so, the AssignmentExpressionSyntax kind it produces.
func GetAssignmentOperator(kind SyntaxKind) (SyntaxKind, bool) {
	k, ok := assignmentOperators[kind]
	return k, ok
}

// prefixUnaryOperators maps a prefix-operator token kind to its
// PrefixUnaryExpressionSyntax variant (spec §4.8 "Unary" tier).
var prefixUnaryOperators = map[SyntaxKind]SyntaxKind{
	PlusToken:        UnaryPlusExpressionSyntax,
	MinusToken:       UnaryMinusExpressionSyntax,
	TildeToken:       BitwiseNotExpressionSyntax,
	ExclamationToken: LogicalNotExpressionSyntax,
	NotKeyword:       LogicalNotExpressionSyntax,
	BitComplKeyword:  BitwiseNotExpressionSyntax,
	PlusPlusToken:    PreIncrementExpressionSyntax,
	MinusMinusToken:  PreDecrementExpressionSyntax,
	AmpersandToken:   AddressOfExpressionSyntax,
	AsteriskToken:    DereferenceExpressionSyntax,
}

// GetPrefixUnaryOperator reports whether kind can start a prefix unary
// expression and, if so, its node kind.
func GetPrefixUnaryOperator(kind SyntaxKind) (SyntaxKind, bool) {
	k, ok := prefixUnaryOperators[kind]
	return k, ok
}

// postfixUnaryOperators maps a postfix-operator token kind to its
// PostfixUnaryExpressionSyntax variant.
var postfixUnaryOperators = map[SyntaxKind]SyntaxKind{
	PlusPlusToken:   PostIncrementExpressionSyntax,
	MinusMinusToken: PostDecrementExpressionSyntax,
}

// GetPostfixUnaryOperator reports whether kind can follow an operand
// as a postfix unary operator and, if so, its node kind.
func GetPostfixUnaryOperator(kind SyntaxKind) (SyntaxKind, bool) {
	k, ok := postfixUnaryOperators[kind]
	return k, ok
}

// IsAssignmentOperator reports whether kind is one of the
// AssignmentExpressionSyntax node kinds (not the token kind).
func IsAssignmentOperator(kind SyntaxKind) bool {
	return kind >= SimpleAssignmentExpressionSyntax && kind <= CoalesceAssignmentExpressionSyntax
}
