package syntax

// Visitor receives a tree traversal. Unlike a classic visitor pattern
// built from one method per node type, dispatch happens once, by
// switching on Kind (spec §9: "double dispatch via kind, not virtual
// methods") — VisitNode/VisitToken are the only two entry points, and
// callers switch on n.Kind themselves when they care which shape they
// were handed.
type Visitor interface {
	// VisitNode is called for every node before its children. Return
	// true to descend into the node's children, false to skip them.
	VisitNode(n *SyntaxNode) bool
	// VisitToken is called for every leaf token, in source order.
	VisitToken(t *Token)
}

// BaseVisitor is an embeddable Visitor that descends into every node
// and ignores tokens; embed it and override only the methods a
// concrete visitor cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitNode(*SyntaxNode) bool { return true }
func (BaseVisitor) VisitToken(*Token)           {}

// Walk traverses elem depth-first, in source order (so an
// UnexpectedNodesSyntax cluster produced by error recovery is visited
// exactly where it sits in the tree).
func Walk(v Visitor, elem NodeOrToken) {
	if elem.IsToken() {
		v.VisitToken(elem.AsToken())
		return
	}
	n := elem.AsNode()
	if !v.VisitNode(n) {
		return
	}
	for _, c := range n.Children {
		Walk(v, c)
	}
}

// WalkNode is a convenience entry point for walking a *SyntaxNode
// directly, without wrapping it in a NodeOrToken first.
func WalkNode(v Visitor, n *SyntaxNode) {
	Walk(v, NewNodeElement(n))
}

// kindVisitor adapts a map of per-kind callbacks into a Visitor,
// letting call sites register interest in specific node kinds (e.g.
// every FunctionDeclarationSyntax) without writing the switch
// themselves.
type kindVisitor struct {
	onNode  map[SyntaxKind]func(*SyntaxNode) bool
	onToken func(*Token)
}

// NewKindVisitor builds a Visitor that calls handlers[k] for every
// node whose Kind is k (descending into children unless the handler
// returns false), and onToken (if non-nil) for every token. Kinds with
// no registered handler are always descended into.
func NewKindVisitor(handlers map[SyntaxKind]func(*SyntaxNode) bool, onToken func(*Token)) Visitor {
	return &kindVisitor{onNode: handlers, onToken: onToken}
}

func (kv *kindVisitor) VisitNode(n *SyntaxNode) bool {
	if handler, ok := kv.onNode[n.Kind]; ok {
		return handler(n)
	}
	return true
}

func (kv *kindVisitor) VisitToken(t *Token) {
	if kv.onToken != nil {
		kv.onToken(t)
	}
}

// FindFirst returns the first node of the given kind in root's tree,
// or nil if none is present.
func FindFirst(root *SyntaxNode, kind SyntaxKind) *SyntaxNode {
	var found *SyntaxNode
	WalkNode(NewKindVisitor(map[SyntaxKind]func(*SyntaxNode) bool{
		kind: func(n *SyntaxNode) bool {
			if found == nil {
				found = n
			}
			return false
		},
	}, nil), root)
	return found
}

// FindAll returns every node of the given kind in root's tree, in
// source order.
func FindAll(root *SyntaxNode, kind SyntaxKind) []*SyntaxNode {
	var found []*SyntaxNode
	WalkNode(NewKindVisitor(map[SyntaxKind]func(*SyntaxNode) bool{
		kind: func(n *SyntaxNode) bool {
			found = append(found, n)
			return true
		},
	}, nil), root)
	return found
}
