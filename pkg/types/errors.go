package types

import (
	"fmt"
	"sort"
	"strings"
)

// The compiler core fails at four well-defined validation boundaries, each
// with its own error type. All four are terminal for the call that raised
// them: the core never retries, suppresses, or partially recovers. Callers
// decide whether to abort the enclosing compilation/render or to collect
// diagnostics across calls.
//
// Validation order is fixed: arity is checked before configuration, which is
// checked before value types; syntax errors arise only at node construction.

// ArityError reports a call whose argument count is outside the primitive's
// declared set of valid sizes. It is raised before any other validation, for
// both the interpret and the emit-source backend.
type ArityError struct {
	Name    string // primitive name, including the "|" prefix for directives
	Allowed []int  // declared valid argument counts
	Got     int
}

func (e *ArityError) Error() string {
	sizes := make([]int, len(e.Allowed))
	copy(sizes, e.Allowed)
	sort.Ints(sizes)
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s: called with %d args, valid sizes are [%s]",
		e.Name, e.Got, strings.Join(parts, ", "))
}

// ConfigurationError reports a literal argument that selects backend
// behavior but is absent from its fixed enumeration. The emit-source backend
// raises it at compile time, the interpret backend at call time.
type ConfigurationError struct {
	Name    string
	Literal string   // the offending literal, as written
	Allowed []string // the accepted literals
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: argument %q must be one of '%s'",
		e.Name, e.Literal, strings.Join(e.Allowed, "', '"))
}

// TypeError reports an input value that lacks a capability the primitive
// requires, such as text coercion.
type TypeError struct {
	Name     string
	Required string // the missing capability or expected type, for the message
	Value    string // display form of the offending value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: argument is not %s: %s", e.Name, e.Required, e.Value)
}

// SyntaxError reports raw command text that failed to parse into the
// expected expression structure. It carries the offending text and wraps the
// underlying parse failure.
type SyntaxError struct {
	Text string // the command text that failed to parse
	Err  error  // underlying cause, may be nil
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid expression list %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("invalid expression list %q", e.Text)
}

// Unwrap returns the underlying parse failure.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}
