package soytree

import (
	"github.com/paulscallanjr/closure-templates/pkg/exprparse"
	"github.com/paulscallanjr/closure-templates/pkg/exprtree"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// SwitchCaseNode represents a 'case' block in a 'switch' block. It owns the
// parsed expression list for its command text exclusively.
type SwitchCaseNode struct {
	commandNode
	exprList []*exprtree.Node
}

// NewSwitchCaseNode parses commandText eagerly and returns the finished
// node. On parse failure it returns a *types.SyntaxError carrying the
// offending text; no partially built node is ever observable.
func NewSwitchCaseNode(id int, commandText string) (*SwitchCaseNode, error) {
	exprs, err := exprparse.ParseExprList(commandText)
	if err != nil {
		return nil, &types.SyntaxError{Text: commandText, Err: err}
	}
	return &SwitchCaseNode{
		commandNode: commandNode{id: id, commandName: "case", commandText: commandText},
		exprList:    exprs,
	}, nil
}

// ExprList returns the parsed expression list in source order. The returned
// slice is the node's own; callers walking the tree must not retain it past
// the node's lifetime.
func (n *SwitchCaseNode) ExprList() []*exprtree.Node {
	return n.exprList
}

// Clone returns an independent copy: every sub-expression is deep-copied so
// mutating the clone's expressions never affects the original, while the
// immutable raw command text is shared.
func (n *SwitchCaseNode) Clone() *SwitchCaseNode {
	exprs := make([]*exprtree.Node, len(n.exprList))
	for i, e := range n.exprList {
		exprs[i] = e.Clone()
	}
	return &SwitchCaseNode{commandNode: n.commandNode, exprList: exprs}
}
