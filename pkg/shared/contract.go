// Package shared defines the uniform contract implemented by every built-in
// print directive and function: stable name, declared argument-count set,
// purity, autoescape interaction, and the paired interpret / emit-source
// entry points that must stay semantically equivalent.
//
// Primitive instances are created once at process start and shared read-only
// for the process lifetime. They hold no mutable per-call state; everything
// context-dependent arrives through [Context] on each interpret call, so
// concurrent renders with different contexts remain independent, and the
// emit-source entry points are pure functions of their inputs.
package shared

import (
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// Context carries the per-call inputs an interpret entry point may need.
type Context struct {
	// Locale supplies the identifier of the locale in effect for the
	// current render, e.g. "en-US". Invoked at most once per call.
	Locale func() string
}

// LocaleString returns the current locale identifier, or the empty string
// when no accessor was supplied.
func (c Context) LocaleString() string {
	if c.Locale == nil {
		return ""
	}
	return c.Locale()
}

// Primitive is the metadata shared by directives and functions.
type Primitive interface {
	// Name is the stable identifier; directive names carry the "|" prefix.
	Name() string
	// ValidArgsSizes is the finite set of permitted call-argument counts.
	ValidArgsSizes() []int
	// Pure reports whether the primitive's result depends only on its
	// inputs and evaluation context.
	Pure() bool
}

// Directive is a print directive: it post-processes a printed value. The two
// entry points are behaviorally paired — same formatted result for the same
// (type, context) pair in both backends, modulo documented divergences.
type Directive interface {
	Primitive

	// CancelAutoescape reports whether applying the directive cancels
	// autoescaping for the print command it is attached to.
	CancelAutoescape() bool

	// Apply interprets the directive over in-memory values. Arity has
	// already been validated; Apply still validates value types and
	// literal configuration itself.
	Apply(ctx Context, value types.Value, args []types.Value) (types.Value, error)

	// ApplyForJsSrc emits a JavaScript expression applying the directive
	// to the given value expression. Literal arguments that select
	// behavior are resolved against fixed lookup tables at this point;
	// unknown literals are a ConfigurationError.
	ApplyForJsSrc(value jssrc.Expr, args []jssrc.Expr) (jssrc.Expr, error)
}

// Function is a built-in expression function with the same dual-backend
// pairing as Directive.
type Function interface {
	Primitive

	// Compute interprets the function over in-memory argument values.
	Compute(ctx Context, args []types.Value) (types.Value, error)

	// ComputeForJsSrc emits a JavaScript expression computing the
	// function over the given argument expressions.
	ComputeForJsSrc(args []jssrc.Expr) (jssrc.Expr, error)
}

// JsLibraryAssisted is implemented by primitives whose emitted fragments
// depend on external JavaScript libraries. The surrounding code generator,
// not this core, ensures the named libraries resolve in the emitted program.
type JsLibraryAssisted interface {
	RequiredJsLibNames() []string
}
