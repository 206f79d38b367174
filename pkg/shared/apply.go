package shared

import (
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// CheckArity validates the argument count against the primitive's declared
// sizes. It runs before any configuration or type validation, independent of
// which backend the call is headed for.
func CheckArity(p Primitive, got int) error {
	for _, n := range p.ValidArgsSizes() {
		if n == got {
			return nil
		}
	}
	return &types.ArityError{Name: p.Name(), Allowed: p.ValidArgsSizes(), Got: got}
}

// ApplyDirective interprets dir over value and args, validating arity first.
func ApplyDirective(ctx Context, dir Directive, value types.Value, args []types.Value) (types.Value, error) {
	if err := CheckArity(dir, len(args)); err != nil {
		return nil, err
	}
	return dir.Apply(ctx, value, args)
}

// ApplyDirectiveForJsSrc emits the JavaScript expression for dir, validating
// arity first.
func ApplyDirectiveForJsSrc(dir Directive, value jssrc.Expr, args []jssrc.Expr) (jssrc.Expr, error) {
	if err := CheckArity(dir, len(args)); err != nil {
		return jssrc.Expr{}, err
	}
	return dir.ApplyForJsSrc(value, args)
}

// CallFunction interprets fn over args, validating arity first.
func CallFunction(ctx Context, fn Function, args []types.Value) (types.Value, error) {
	if err := CheckArity(fn, len(args)); err != nil {
		return nil, err
	}
	return fn.Compute(ctx, args)
}

// CallFunctionForJsSrc emits the JavaScript expression for fn, validating
// arity first.
func CallFunctionForJsSrc(fn Function, args []jssrc.Expr) (jssrc.Expr, error) {
	if err := CheckArity(fn, len(args)); err != nil {
		return jssrc.Expr{}, err
	}
	return fn.ComputeForJsSrc(args)
}

// RequiredJsLibNames returns the external JavaScript libraries the
// primitive's emitted fragments depend on, or nil when it declares none.
func RequiredJsLibNames(p Primitive) []string {
	if assisted, ok := p.(JsLibraryAssisted); ok {
		return assisted.RequiredJsLibNames()
	}
	return nil
}
