package syntax

import "strings"

// SyntaxNode is the single tagged-union shape behind every non-leaf
// production in the tree (spec §9: "a single closed enum ... rather
// than one Go type per production"). Kind says which grammar shape
// this is; Children holds its tokens and sub-nodes in source order,
// including any UnexpectedNodesSyntax clusters produced by error
// recovery. Typed accessors in ast.go narrow a SyntaxNode to a
// specific shape without introducing a second type hierarchy.
type SyntaxNode struct {
	Kind     SyntaxKind
	Children []NodeOrToken
}

// NodeOrToken holds exactly one of a *SyntaxNode or a *Token. It is
// the element type of SyntaxNode.Children and of walker callbacks,
// letting tree traversal treat leaves and interior nodes uniformly.
type NodeOrToken struct {
	node  *SyntaxNode
	token *Token
}

// NewNodeElement wraps a node as a NodeOrToken.
func NewNodeElement(n *SyntaxNode) NodeOrToken { return NodeOrToken{node: n} }

// NewTokenElement wraps a token as a NodeOrToken.
func NewTokenElement(t *Token) NodeOrToken { return NodeOrToken{token: t} }

// IsToken reports whether the element holds a token rather than a node.
func (e NodeOrToken) IsToken() bool { return e.token != nil }

// IsNode reports whether the element holds a node rather than a token.
func (e NodeOrToken) IsNode() bool { return e.node != nil }

// AsNode returns the held node, or nil if the element is a token.
func (e NodeOrToken) AsNode() *SyntaxNode { return e.node }

// AsToken returns the held token, or nil if the element is a node.
func (e NodeOrToken) AsToken() *Token { return e.token }

// Kind returns the Kind of whichever value the element holds, or None
// if the element is the zero value.
func (e NodeOrToken) Kind() SyntaxKind {
	switch {
	case e.token != nil:
		return e.token.Kind
	case e.node != nil:
		return e.node.Kind
	default:
		return None
	}
}

// Span returns the element's significant span, excluding trivia.
func (e NodeOrToken) Span() SourceSpan {
	switch {
	case e.token != nil:
		return e.token.Span
	case e.node != nil:
		return e.node.Span()
	default:
		return SourceSpan{}
	}
}

// FullSpan returns the element's span including surrounding trivia.
func (e NodeOrToken) FullSpan() SourceSpan {
	switch {
	case e.token != nil:
		return e.token.FullSpan()
	case e.node != nil:
		return e.node.FullSpan()
	default:
		return SourceSpan{}
	}
}

// FullText reconstructs the element's exact source text, including
// trivia, recursively for nodes.
func (e NodeOrToken) FullText() string {
	switch {
	case e.token != nil:
		return e.token.FullText()
	case e.node != nil:
		return e.node.FullText()
	default:
		return ""
	}
}

// Span returns the node's significant span: from the start of its
// first child's significant span to the end of its last child's.
// Leading/trailing trivia of the outermost tokens is excluded.
func (n *SyntaxNode) Span() SourceSpan {
	if len(n.Children) == 0 {
		return SourceSpan{}
	}
	return SourceSpan{
		Start: n.Children[0].Span().Start,
		End:   n.Children[len(n.Children)-1].Span().End,
	}
}

// FullSpan returns the node's span including all surrounding trivia.
func (n *SyntaxNode) FullSpan() SourceSpan {
	if len(n.Children) == 0 {
		return SourceSpan{}
	}
	return SourceSpan{
		Start: n.Children[0].FullSpan().Start,
		End:   n.Children[len(n.Children)-1].FullSpan().End,
	}
}

// FullText reconstructs the node's exact source text by concatenating
// every child's FullText in order (spec §3.1 "full-fidelity": a
// SourceFileSyntax's FullText always equals the original input).
func (n *SyntaxNode) FullText() string {
	if len(n.Children) == 1 {
		return n.Children[0].FullText()
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.FullText())
	}
	return b.String()
}

// ChildNodes returns the subset of Children that are nodes.
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.Children {
		if c.IsNode() {
			out = append(out, c.AsNode())
		}
	}
	return out
}

// ChildTokens returns the subset of Children that are tokens.
func (n *SyntaxNode) ChildTokens() []*Token {
	var out []*Token
	for _, c := range n.Children {
		if c.IsToken() {
			out = append(out, c.AsToken())
		}
	}
	return out
}

// FirstToken returns the first token reachable by descending into the
// leftmost child at each level, or nil for an empty node.
func (n *SyntaxNode) FirstToken() *Token {
	for _, c := range n.Children {
		if c.IsToken() {
			return c.AsToken()
		}
		if t := c.AsNode().FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the last token reachable by descending into the
// rightmost child at each level, or nil for an empty node.
func (n *SyntaxNode) LastToken() *Token {
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if c.IsToken() {
			return c.AsToken()
		}
		if t := c.AsNode().LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// NewNode allocates a node of kind over children from the arena.
func (a *Arena) NewNode(kind SyntaxKind, children []NodeOrToken) *SyntaxNode {
	return a.newNode(SyntaxNode{Kind: kind, Children: AllocSlice(a, children)})
}

// NewList allocates a SyntaxListSyntax node wrapping elements. Used
// for homogeneous repetition productions (statement lists inside a
// block, member lists, attribute lists) that have no separators (spec
// §4.5 "list" and "separated list" productions).
func (a *Arena) NewList(elements []NodeOrToken) *SyntaxNode {
	return a.NewNode(SyntaxListSyntax, elements)
}

// NewSeparatedList allocates a SeparatedSyntaxListSyntax node, which
// interleaves items and their separator tokens (spec §4.5 "separated
// list": parameter lists, argument lists, generic argument lists).
func (a *Arena) NewSeparatedList(elements []NodeOrToken) *SyntaxNode {
	return a.NewNode(SeparatedSyntaxListSyntax, elements)
}
