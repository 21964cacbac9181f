package syntax

import "testing"

func TestWalkVisitsEveryDescendant(t *testing.T) {
	root, diags := parseSource(t, "function add(a: int, b: int) -> int {\n  return a + b;\n}\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}

	var nodeCount, tokenCount int
	v := NewKindVisitor(nil, func(tok *Token) { tokenCount++ })
	// NewKindVisitor with a nil handler map still descends into every node;
	// count nodes separately with a direct recursive walk over Children.
	Walk(v, NewNodeElement(root))

	var countNodes func(elem NodeOrToken)
	countNodes = func(elem NodeOrToken) {
		if elem.IsNode() {
			nodeCount++
			for _, child := range elem.AsNode().Children {
				countNodes(child)
			}
		}
	}
	countNodes(NewNodeElement(root))

	if nodeCount == 0 {
		t.Errorf("expected at least one node in the tree")
	}
	if tokenCount == 0 {
		t.Errorf("expected Walk to visit at least one token")
	}
}

func TestFindFirstReturnsMatchOrNil(t *testing.T) {
	root, diags := parseSource(t, "function f() {\n  return 1 + 2 * 3;\n}\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	fn := FindFirst(root, FunctionDeclarationSyntax)
	if fn == nil {
		t.Fatalf("expected to find a FunctionDeclarationSyntax")
	}
	if FindFirst(root, StructDeclarationSyntax) != nil {
		t.Errorf("did not expect to find a StructDeclarationSyntax")
	}
}

func TestFindAllCollectsEveryMatch(t *testing.T) {
	src := "function f() {\n  return 1 + 2 + 3;\n}\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	adds := FindAll(root, AddExpressionSyntax)
	if len(adds) != 2 {
		t.Fatalf("expected two nested AddExpressionSyntax nodes (left-assoc '+'), got %d", len(adds))
	}
}

func TestKindVisitorStopsDescentWhenHandlerReturnsFalse(t *testing.T) {
	src := "function f() {\n  if x { return 1 + 2; } else { return 3; }\n}\n"
	root, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}

	var sawAddInsideIf bool
	visited := make(map[SyntaxKind]int)
	v := NewKindVisitor(map[SyntaxKind]func(*SyntaxNode) bool{
		IfExpressionSyntax: func(n *SyntaxNode) bool {
			visited[IfExpressionSyntax]++
			return false
		},
		AddExpressionSyntax: func(n *SyntaxNode) bool {
			sawAddInsideIf = true
			return true
		},
	}, nil)
	WalkNode(v, root)

	if visited[IfExpressionSyntax] != 1 {
		t.Fatalf("expected the if-expression handler to run once, got %d", visited[IfExpressionSyntax])
	}
	if sawAddInsideIf {
		t.Errorf("did not expect Walk to descend into the if-expression once its handler returned false")
	}
}

func TestBaseVisitorDescendsByDefault(t *testing.T) {
	root, diags := parseSource(t, "const x = 1;\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Records())
	}
	var bv BaseVisitor
	if !bv.VisitNode(root) {
		t.Errorf("expected BaseVisitor.VisitNode to request descent by default")
	}
}
