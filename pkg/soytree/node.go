// Package soytree contains template AST nodes. Only the command-node
// plumbing and the expression-holding 'case' node live here; the full node
// taxonomy belongs to the surrounding compiler.
package soytree

import "github.com/paulscallanjr/closure-templates/pkg/exprtree"

// Node is the surface common to all template nodes.
type Node interface {
	// ID returns the node's id within its tree.
	ID() int
	// CommandName returns the command keyword, e.g. "case".
	CommandName() string
	// CommandText returns the raw command text as written in the template.
	CommandText() string
}

// ExprHolder is the uniform surface of nodes that own parsed
// sub-expressions. Generic tree walkers (type checkers, optimizers) visit
// expressions through it without knowing the node's specific role.
type ExprHolder interface {
	// ExprList returns the node's parsed sub-expressions in source order.
	ExprList() []*exprtree.Node
}

// commandNode carries the fields shared by all command nodes. The command
// text is immutable, so clones share it by reference.
type commandNode struct {
	id          int
	commandName string
	commandText string
}

func (n *commandNode) ID() int             { return n.id }
func (n *commandNode) CommandName() string { return n.commandName }
func (n *commandNode) CommandText() string { return n.commandText }
