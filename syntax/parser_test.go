package syntax

import "testing"

func parseSource(t *testing.T, src string) (*SyntaxNode, *DiagnosticSink) {
	t.Helper()
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte(src))
	tokens := NewLexer(arena, text, diags).Tokenize()
	root := NewParser(arena, tokens, diags).ParseSourceFile()
	return root, diags
}

func newParser(t *testing.T, src string) (*Parser, *DiagnosticSink) {
	t.Helper()
	arena := NewArena()
	diags := NewDiagnosticSink()
	text := NewSourceText("test.wv", []byte(src))
	tokens := NewLexer(arena, text, diags).Tokenize()
	return NewParser(arena, tokens, diags), diags
}

// The following six tests each exercise one of the end-to-end parser
// recovery scenarios laid out in spec §8.

func TestParserScenarioEmptySource(t *testing.T) {
	root, diags := parseSource(t, "")
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	sf, ok := AsSourceFile(root)
	if !ok {
		t.Fatalf("expected a SourceFileSyntax")
	}
	if items := sf.Items(); len(items) != 0 {
		t.Errorf("expected zero items, got %d", len(items))
	}
	eof := sf.EndOfFile()
	if eof == nil || eof.IsMissing() {
		t.Fatalf("expected a non-missing EndOfFileToken, got %+v", eof)
	}
	if eof.Span.Start != 0 || eof.Span.End != 0 {
		t.Errorf("expected EndOfFileToken span [0,0), got [%d,%d)", eof.Span.Start, eof.Span.End)
	}
}

func TestParserScenarioIfInsideBlock(t *testing.T) {
	src := "function f() {\n  if true { }\n}\n"
	root, diags := parseSource(t, src)
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	ifs := FindAll(root, IfExpressionSyntax)
	if len(ifs) != 1 {
		t.Fatalf("expected one IfExpressionSyntax, got %d", len(ifs))
	}
	ifExpr, ok := AsIfExpression(ifs[0])
	if !ok {
		t.Fatalf("expected a well-formed IfExpressionSyntax")
	}
	if ifExpr.Condition() == nil || ifExpr.Condition().Kind != TrueLiteralExpressionSyntax {
		t.Errorf("expected the condition to be the `true` literal, got %v", ifExpr.Condition())
	}
	then := ifExpr.Then()
	if then == nil {
		t.Fatalf("expected a BlockStatementSyntax consequent")
	}
	if len(then.ChildTokens()) != 2 {
		t.Errorf("expected the consequent block to be just `{` `}`, got %d tokens", len(then.ChildTokens()))
	}
}

func TestParserScenarioReturnFollowedByGarbageStatement(t *testing.T) {
	src := "function f() {\n  return while true;\n}\n"
	root, diags := parseSource(t, src)
	if diags.Len() != 2 {
		t.Fatalf("expected exactly two diagnostics, got %d: %v", diags.Len(), diags.Records())
	}

	fn, ok := AsFunctionDeclaration(FindAll(root, FunctionDeclarationSyntax)[0])
	if !ok {
		t.Fatalf("expected a FunctionDeclarationSyntax")
	}
	body, ok := AsBlockStatement(fn.Body())
	if !ok {
		t.Fatalf("expected a BlockStatementSyntax body")
	}
	items := body.Statements()
	if len(items) != 2 {
		t.Fatalf("expected the block to hold the return statement and a swept sibling, got %d items: %v", len(items), items)
	}

	codeBlockItem := items[0]
	if codeBlockItem.Kind != CodeBlockItemSyntax {
		t.Fatalf("expected item 0 to be a CodeBlockItemSyntax, got %v", codeBlockItem.Kind)
	}
	ret := codeBlockItem.ChildNodes()[0]
	if ret.Kind != ReturnStatementSyntax {
		t.Fatalf("expected item 0's statement to be a ReturnStatementSyntax, got %v", ret.Kind)
	}
	retTokens := ret.ChildTokens()
	if len(retTokens) != 2 || retTokens[0].Kind != ReturnKeyword || !retTokens[1].IsMissing() || retTokens[1].Kind != SemicolonToken {
		t.Fatalf("expected ReturnStatement{return, <expr>, missing ';'}, got tokens %v", retTokens)
	}
	exprs := ret.ChildNodes()
	if len(exprs) != 1 || exprs[0].Kind != IdentifierNameSyntax {
		t.Fatalf("expected the return's expression to be a missing-identifier placeholder, got %v", exprs)
	}
	if name := exprs[0].ChildTokens(); len(name) != 1 || !name[0].IsMissing() {
		t.Errorf("expected the placeholder identifier token to be missing, got %v", name)
	}

	unexpected := items[1]
	if unexpected.Kind != UnexpectedNodesSyntax {
		t.Fatalf("expected item 1 to be UnexpectedNodesSyntax, got %v", unexpected.Kind)
	}
	swept := unexpected.ChildTokens()
	if len(swept) != 3 || swept[0].Kind != WhileKeyword || swept[1].Kind != TrueKeyword || swept[2].Kind != SemicolonToken {
		t.Fatalf("expected UnexpectedNodes{while, true, ';'}, got %v", swept)
	}
	if got := root.FullText(); got != src {
		t.Errorf("FullText() mismatch despite recovery:\n got: %q\nwant: %q", got, src)
	}
}

func TestParserScenarioBalancedParens(t *testing.T) {
	p, diags := newParser(t, "()")
	seq := p.ParseBalancedTokenSequence()
	if diags.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if seq.Kind != BalancedTokenSequenceSyntax {
		t.Fatalf("expected a BalancedTokenSequenceSyntax, got %v", seq.Kind)
	}
	toks := seq.ChildTokens()
	if len(toks) != 2 || toks[0].Kind != OpenParenToken || toks[1].Kind != CloseParenToken {
		t.Fatalf("expected {'(', ')'}, got %v", toks)
	}
}

func TestParserScenarioUnclosedBalancedParens(t *testing.T) {
	p, diags := newParser(t, "((())")
	seq := p.ParseBalancedTokenSequence()
	if diags.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", diags.Len(), diags.Records())
	}
	if seq.Kind != BalancedTokenSequenceSyntax {
		t.Fatalf("expected a BalancedTokenSequenceSyntax, got %v", seq.Kind)
	}
	if got := seq.FullText(); got != "((())" {
		t.Errorf("FullText() mismatch despite recovery:\n got: %q\nwant: %q", got, "((())")
	}
	last := seq.ChildTokens()
	if n := len(last); n == 0 || !last[n-1].IsMissing() || last[n-1].Kind != CloseParenToken {
		t.Errorf("expected the outermost ')' to be synthesized missing, got %v", last)
	}
}

func TestParserScenarioAttributedParameterMissingType(t *testing.T) {
	src := "public function A(a: Int, #[unused] b, c: String) -> Void;\n"
	root, diags := parseSource(t, src)
	if diags.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", diags.Len(), diags.Records())
	}
	fn, ok := AsFunctionDeclaration(FindAll(root, FunctionDeclarationSyntax)[0])
	if !ok {
		t.Fatalf("expected a FunctionDeclarationSyntax")
	}
	params := fn.Parameters().ChildNodes()[0].ChildNodes()
	if len(params) != 3 {
		t.Fatalf("expected three parameters, got %d: %v", len(params), params)
	}
	second := params[1]
	if attrs := second.ChildNodes(); len(attrs) == 0 || attrs[0].Kind != AttributeListSyntax {
		t.Errorf("expected the second parameter to carry an AttributeListSyntax, got %v", second.ChildNodes())
	}
	var typeClause *SyntaxNode
	for _, c := range second.ChildNodes() {
		if c.Kind == TypeClauseSyntax {
			typeClause = c
		}
	}
	if typeClause == nil {
		t.Fatalf("expected the second parameter to still carry a TypeClauseSyntax")
	}
	if colon := typeClause.ChildTokens(); len(colon) == 0 || !colon[0].IsMissing() {
		t.Errorf("expected a missing ':' on the second parameter's type clause, got %v", colon)
	}
	if got := root.FullText(); got != src {
		t.Errorf("FullText() mismatch despite recovery:\n got: %q\nwant: %q", got, src)
	}
}

func TestParserLosslessRoundTrip(t *testing.T) {
	src := "function add(a: int, b: int) -> int {\n  return a + b;\n}\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	if got := root.FullText(); got != src {
		t.Errorf("FullText() mismatch:\n got: %q\nwant: %q", got, src)
	}
}

func TestParserFunctionDeclarationShape(t *testing.T) {
	src := "function add(a: int, b: int) -> int {\n  return a + b;\n}\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	sf, ok := AsSourceFile(root)
	if !ok {
		t.Fatalf("expected root to be a SourceFileSyntax")
	}
	items := sf.Items()
	if len(items) != 1 || items[0].Kind != CodeBlockItemSyntax {
		t.Fatalf("expected one CodeBlockItemSyntax item, got %d: %v", len(items), items)
	}
	decl := items[0].ChildNodes()[0]
	fn, ok := AsFunctionDeclaration(decl)
	if !ok {
		t.Fatalf("expected a FunctionDeclarationSyntax, got %v", decl.Kind)
	}
	if fn.Name() == nil || fn.Name().Text != "add" {
		t.Errorf("expected function name \"add\", got %v", fn.Name())
	}
	if fn.ReturnType() == nil {
		t.Errorf("expected a return type clause")
	}
	if fn.Body() == nil {
		t.Errorf("expected a function body")
	}
}

func TestParserRecoversFromMissingSemicolon(t *testing.T) {
	src := "function f() { return 1 }\n"
	root, diags := parseSource(t, src)
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for the missing ';'")
	}
	if got := root.FullText(); got != src {
		t.Errorf("FullText() mismatch despite recovery:\n got: %q\nwant: %q", got, src)
	}
}

func TestParserRecoversFromGarbageTopLevelToken(t *testing.T) {
	src := "@@@ function f() {}\n"
	root, diags := parseSource(t, src)
	if !diags.HasErrors() {
		t.Fatalf("expected diagnostics for the stray tokens")
	}
	if got := root.FullText(); got != src {
		t.Errorf("FullText() mismatch despite recovery:\n got: %q\nwant: %q", got, src)
	}
	fns := FindAll(root, FunctionDeclarationSyntax)
	if len(fns) != 1 {
		t.Errorf("expected recovery to still find the function declaration, got %d", len(fns))
	}
}

func TestParserBinaryExpressionPrecedence(t *testing.T) {
	src := "const x = 1 + 2 * 3;\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	adds := FindAll(root, AddExpressionSyntax)
	if len(adds) != 1 {
		t.Fatalf("expected exactly one AddExpressionSyntax, got %d", len(adds))
	}
	bin, ok := AsBinaryExpression(adds[0])
	if !ok {
		t.Fatalf("expected AddExpressionSyntax to be a well-formed binary expression")
	}
	if bin.Right().Kind != MultiplyExpressionSyntax {
		t.Errorf("expected the right operand of '+' to be the '*' subexpression (precedence), got %v", bin.Right().Kind)
	}
}

func TestParserIfExpressionAsStatement(t *testing.T) {
	src := "function f() {\n  if x { return 1; } else { return 2; }\n}\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	ifs := FindAll(root, IfExpressionSyntax)
	if len(ifs) != 1 {
		t.Fatalf("expected one IfExpressionSyntax, got %d", len(ifs))
	}
	ifExpr, ok := AsIfExpression(ifs[0])
	if !ok {
		t.Fatalf("expected a well-formed IfExpressionSyntax")
	}
	if ifExpr.Else() == nil {
		t.Errorf("expected an else clause")
	}
}

func TestParserStructLiteralDisambiguation(t *testing.T) {
	// In `while x {`, `x` must parse as the condition, not as the start
	// of a struct literal `x { ... }` swallowing the loop body.
	src := "function f() {\n  while x {\n    break;\n  }\n}\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	if structs := FindAll(root, StructExpressionSyntax); len(structs) != 0 {
		t.Errorf("did not expect a struct literal inside a while condition")
	}
	if whiles := FindAll(root, WhileStatementSyntax); len(whiles) != 1 {
		t.Errorf("expected exactly one while statement, got %d", len(whiles))
	}
}

func TestParserStructLiteralInExpressionPosition(t *testing.T) {
	src := "const p = Point { x: 1, y: 2 };\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	if structs := FindAll(root, StructExpressionSyntax); len(structs) != 1 {
		t.Errorf("expected one struct literal, got %d", len(structs))
	}
}
