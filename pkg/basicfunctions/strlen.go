// Package basicfunctions contains built-in expression functions. Each
// function implements the shared dual-backend contract; StrLenFunction is
// the representative exemplar.
package basicfunctions

import (
	"unicode/utf16"

	"github.com/paulscallanjr/closure-templates/pkg/data"
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/shared"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// StrLenFunction determines the length of a string.
//
// strLen(expr1) requires expr1 to be text-coercible: a plain string or
// sanitized content.
type StrLenFunction struct{}

var _ shared.Function = StrLenFunction{}

func (StrLenFunction) Name() string { return "strLen" }

func (StrLenFunction) ValidArgsSizes() []int { return []int{1} }

func (StrLenFunction) Pure() bool { return true }

// Compute returns the argument's text length as an integer value. Length is
// measured in UTF-16 code units so it matches the String.prototype.length
// the emitted backend evaluates to.
func (StrLenFunction) Compute(_ shared.Context, args []types.Value) (types.Value, error) {
	arg0 := args[0]
	text, ok := arg0.(types.Texter)
	if !ok {
		return nil, &types.TypeError{
			Name:     "strLen",
			Required: "a string or sanitized content",
			Value:    arg0.String(),
		}
	}
	n := len(utf16.Encode([]rune(text.CoerceToText())))
	return data.NewInteger(int64(n)), nil
}

// ComputeForJsSrc coerces the argument expression to a string and emits a
// length-of-text expression. The result is atomic, so callers never need to
// parenthesize it.
func (StrLenFunction) ComputeForJsSrc(args []jssrc.Expr) (jssrc.Expr, error) {
	arg0 := jssrc.ToString(args[0])
	return jssrc.New("("+arg0.Text()+").length", jssrc.MaxPrecedence), nil
}
