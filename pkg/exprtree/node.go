// Package exprtree defines the expression AST produced by parsing template
// command text. Nodes are plain structs linked into trees; an AST is owned
// by the template node that parsed it and is deep-copied through Clone when
// that node is cloned.
package exprtree

// NodeType identifies the type of an expression node.
type NodeType string

const (
	// Literals
	NodeString  NodeType = "string"
	NodeNumber  NodeType = "number"
	NodeBoolean NodeType = "boolean"
	NodeNull    NodeType = "null"

	// References
	NodeDataRef NodeType = "dataref" // $name
	NodeGlobal  NodeType = "global"  // bare identifier

	// Composite
	NodeBinary   NodeType = "binary"   // +, -, *, /
	NodeFunction NodeType = "function" // name(args...)
	NodeList     NodeType = "list"     // [a, b, c]
)

// Node is a node in an expression tree.
type Node struct {
	Type      NodeType
	StrValue  string  // string literal, reference/function name, or operator
	NumValue  float64 // set for NodeNumber
	BoolValue bool    // set for NodeBoolean
	Position  int     // byte offset in the source text

	LHS      *Node   // left operand (NodeBinary)
	RHS      *Node   // right operand (NodeBinary)
	Children []*Node // function arguments or list elements
}

// Clone returns a deep copy of the subtree rooted at n. Mutating any node of
// the copy never affects the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.LHS = n.LHS.Clone()
	c.RHS = n.RHS.Clone()
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}
