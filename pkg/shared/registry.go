package shared

import (
	"fmt"
	"sort"
)

// Registry is a name-keyed table of built-in primitives. It is built once at
// startup and read-only afterwards, so lookups need no synchronization.
type Registry struct {
	directives map[string]Directive
	functions  map[string]Function
}

// NewRegistry builds a registry from the given primitives. Duplicate names
// indicate a wiring mistake and panic.
func NewRegistry(directives []Directive, functions []Function) *Registry {
	r := &Registry{
		directives: make(map[string]Directive, len(directives)),
		functions:  make(map[string]Function, len(functions)),
	}
	for _, d := range directives {
		if _, dup := r.directives[d.Name()]; dup {
			panic(fmt.Sprintf("shared: duplicate directive %q", d.Name()))
		}
		r.directives[d.Name()] = d
	}
	for _, f := range functions {
		if _, dup := r.functions[f.Name()]; dup {
			panic(fmt.Sprintf("shared: duplicate function %q", f.Name()))
		}
		r.functions[f.Name()] = f
	}
	return r
}

// Directive looks up a print directive by its prefixed name.
func (r *Registry) Directive(name string) (Directive, bool) {
	d, ok := r.directives[name]
	return d, ok
}

// Function looks up a built-in function by name.
func (r *Registry) Function(name string) (Function, bool) {
	f, ok := r.functions[name]
	return f, ok
}

// DirectiveNames returns the registered directive names, sorted.
func (r *Registry) DirectiveNames() []string {
	names := make([]string, 0, len(r.directives))
	for name := range r.directives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FunctionNames returns the registered function names, sorted.
func (r *Registry) FunctionNames() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
