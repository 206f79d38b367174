// Package soy is the type-checking and extensible-primitive core of the
// template compiler: a structural type lattice over template values
// (pkg/types), immutable runtime values (pkg/data), and a registry of
// built-in print directives and functions that each run two ways — as a
// direct interpreter over in-memory values, or as an emitter of JavaScript
// source expressions for the compiled-output backend (pkg/jssrc).
//
// # Quick start
//
//	// Interpret a directive under a per-call locale.
//	ctx := shared.Context{Locale: func() string { return "en-US" }}
//	out, err := soy.ApplyDirective(ctx, "|formatNum",
//	    data.NewFloat(0.25), []types.Value{data.NewString("percent")})
//
//	// Emit the JavaScript expression for the same call.
//	expr, libs, err := soy.ApplyDirectiveForJsSrc("|formatNum",
//	    jssrc.New("opt_data.value", jssrc.MaxPrecedence),
//	    []jssrc.Expr{jssrc.New("'percent'", jssrc.MaxPrecedence)})
//
// Both backends validate arity first, then literal configuration, then value
// types; the four failure kinds are defined in pkg/types.
//
// Everything reachable from this package is immutable after startup and safe
// for arbitrary concurrent use.
package soy

import (
	"fmt"
	"sync"

	"github.com/paulscallanjr/closure-templates/pkg/basicfunctions"
	"github.com/paulscallanjr/closure-templates/pkg/exprparse"
	"github.com/paulscallanjr/closure-templates/pkg/exprtree"
	"github.com/paulscallanjr/closure-templates/pkg/i18ndirectives"
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/shared"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// Version returns the current version of the library.
func Version() string {
	return "v0.1.0-dev"
}

var (
	builtins     *shared.Registry
	builtinsOnce sync.Once
)

// Builtins returns the process-wide registry of built-in directives and
// functions. It is built on first use and read-only afterwards.
func Builtins() *shared.Registry {
	builtinsOnce.Do(func() {
		builtins = shared.NewRegistry(
			[]shared.Directive{
				i18ndirectives.FormatNumDirective{},
			},
			[]shared.Function{
				basicfunctions.StrLenFunction{},
			},
		)
	})
	return builtins
}

// ApplyDirective looks up a print directive by its prefixed name and
// interprets it over value and args, validating arity before anything else.
func ApplyDirective(ctx shared.Context, name string, value types.Value, args []types.Value) (types.Value, error) {
	dir, ok := Builtins().Directive(name)
	if !ok {
		return nil, fmt.Errorf("soy: unknown print directive %q", name)
	}
	return shared.ApplyDirective(ctx, dir, value, args)
}

// ApplyDirectiveForJsSrc looks up a print directive by its prefixed name and
// emits the JavaScript expression applying it, along with the names of the
// external JavaScript libraries the emitted fragment depends on.
func ApplyDirectiveForJsSrc(name string, value jssrc.Expr, args []jssrc.Expr) (jssrc.Expr, []string, error) {
	dir, ok := Builtins().Directive(name)
	if !ok {
		return jssrc.Expr{}, nil, fmt.Errorf("soy: unknown print directive %q", name)
	}
	expr, err := shared.ApplyDirectiveForJsSrc(dir, value, args)
	if err != nil {
		return jssrc.Expr{}, nil, err
	}
	return expr, shared.RequiredJsLibNames(dir), nil
}

// CallFunction looks up a built-in function by name and interprets it over
// args, validating arity before anything else.
func CallFunction(ctx shared.Context, name string, args []types.Value) (types.Value, error) {
	fn, ok := Builtins().Function(name)
	if !ok {
		return nil, fmt.Errorf("soy: unknown function %q", name)
	}
	return shared.CallFunction(ctx, fn, args)
}

// CallFunctionForJsSrc looks up a built-in function by name and emits the
// JavaScript expression computing it.
func CallFunctionForJsSrc(name string, args []jssrc.Expr) (jssrc.Expr, error) {
	fn, ok := Builtins().Function(name)
	if !ok {
		return jssrc.Expr{}, fmt.Errorf("soy: unknown function %q", name)
	}
	return shared.CallFunctionForJsSrc(fn, args)
}

// ParseExprList parses raw command text into a non-empty expression list.
func ParseExprList(text string) ([]*exprtree.Node, error) {
	return exprparse.ParseExprList(text)
}

// MustParseExprList is like ParseExprList but panics on failure. It
// simplifies safe initialization of global variables.
func MustParseExprList(text string) []*exprtree.Node {
	exprs, err := exprparse.ParseExprList(text)
	if err != nil {
		panic(fmt.Sprintf("soy: ParseExprList(%q): %v", text, err))
	}
	return exprs
}
