package soytree_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/paulscallanjr/closure-templates/pkg/exprtree"
	"github.com/paulscallanjr/closure-templates/pkg/soytree"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

func TestNewSwitchCaseNode(t *testing.T) {
	node, err := soytree.NewSwitchCaseNode(7, "'a', 'b', 1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	var _ soytree.Node = node
	if node.ID() != 7 {
		t.Errorf("ID() = %d, want 7", node.ID())
	}
	if node.CommandName() != "case" {
		t.Errorf("CommandName() = %q, want %q", node.CommandName(), "case")
	}
	if node.CommandText() != "'a', 'b', 1 + 2" {
		t.Errorf("CommandText() = %q", node.CommandText())
	}
	if len(node.ExprList()) != 3 {
		t.Errorf("got %d exprs, want 3", len(node.ExprList()))
	}
}

func TestNewSwitchCaseNodeFailFast(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"dangling operator", "'a', +"},
		{"unclosed string", "'abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := soytree.NewSwitchCaseNode(1, tt.text)
			if node != nil {
				t.Fatalf("got node %v for unparsable text", node)
			}
			var synErr *types.SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("error type = %T, want *types.SyntaxError", err)
			}
			if synErr.Text != tt.text {
				t.Errorf("SyntaxError.Text = %q, want %q", synErr.Text, tt.text)
			}
			if !strings.Contains(err.Error(), tt.text) {
				t.Errorf("message %q missing offending text", err.Error())
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	orig, err := soytree.NewSwitchCaseNode(1, "'a', strLen($s)")
	if err != nil {
		t.Fatal(err)
	}

	clone := orig.Clone()
	if diff := cmp.Diff(orig.ExprList(), clone.ExprList()); diff != "" {
		t.Fatalf("clone expression list differs (-orig +clone):\n%s", diff)
	}
	if clone.CommandText() != orig.CommandText() {
		t.Errorf("clone command text differs")
	}

	// Mutate a sub-expression of the clone, deep inside the tree.
	clone.ExprList()[0].StrValue = "changed"
	clone.ExprList()[1].Children[0].StrValue = "changed"

	if got := orig.ExprList()[0].StrValue; got != "a" {
		t.Errorf("original literal = %q after clone mutation, want %q", got, "a")
	}
	if got := orig.ExprList()[1].Children[0].StrValue; got != "s" {
		t.Errorf("original call argument = %q after clone mutation, want %q", got, "s")
	}
}

func TestExprHolderSurface(t *testing.T) {
	node, err := soytree.NewSwitchCaseNode(1, "1, 2")
	if err != nil {
		t.Fatal(err)
	}

	// A generic walker sees the node only through the holder surface.
	var holder soytree.ExprHolder = node
	var count int
	var walk func(n *exprtree.Node)
	walk = func(n *exprtree.Node) {
		if n == nil {
			return
		}
		count++
		walk(n.LHS)
		walk(n.RHS)
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, expr := range holder.ExprList() {
		walk(expr)
	}
	if count != 2 {
		t.Errorf("walked %d nodes, want 2", count)
	}
}
