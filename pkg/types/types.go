// Package types defines the structural type lattice used by the template
// compiler, the capability interfaces satisfied by runtime values, and the
// error kinds raised at the compiler's validation boundaries.
//
// Types are immutable tagged unions identified by a [Kind]. They are created
// once (the primitive singletons at package init, list types on demand) and
// shared freely across goroutines without synchronization.
package types

import (
	"fmt"
	"hash"
	"hash/fnv"
)

// Kind identifies which variant of the type lattice a Type represents.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindHTML
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindHTML:
		return "html"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is an immutable descriptor for a template value type.
//
// A Type is a tagged union over [Kind]: primitive kinds carry no payload,
// KindList additionally carries its element type. Two Types with the same
// shape are interchangeable regardless of where they were constructed;
// compare with [Type.Equal], never by pointer.
type Type struct {
	kind Kind
	elem *Type // non-nil for KindList only
}

// Primitive type singletons. Callers may also build equal values through
// other paths; identity is never significant.
var (
	NullType   = &Type{kind: KindNull}
	BoolType   = &Type{kind: KindBool}
	IntType    = &Type{kind: KindInt}
	FloatType  = &Type{kind: KindFloat}
	StringType = &Type{kind: KindString}
	HTMLType   = &Type{kind: KindHTML}
)

// ListOf returns the type of a list whose elements have type elem.
func ListOf(elem *Type) *Type {
	if elem == nil {
		panic("types: ListOf called with nil element type")
	}
	return &Type{kind: KindList, elem: elem}
}

// Kind reports the lattice variant of t.
func (t *Type) Kind() Kind {
	return t.kind
}

// ElementType returns the element type of a list type, or nil for any other
// kind.
func (t *Type) ElementType() *Type {
	return t.elem
}

// AssignableFrom reports whether a value typed src may be used where a value
// typed t is expected.
//
// The default answer is false; only explicit per-kind rules grant
// assignability. Primitives are assignable between equal kinds. Lists are
// covariant: list<a> is assignable to list<b> iff a is assignable to b,
// recursively. Covariance is sound here because list values are immutable,
// so there is no write-through-supertype hazard.
func (t *Type) AssignableFrom(src *Type) bool {
	if src == nil {
		return false
	}
	switch t.kind {
	case KindList:
		if src.kind != KindList {
			return false
		}
		return t.elem.AssignableFrom(src.elem)
	default:
		return t.kind == src.kind
	}
}

// IsInstance reports whether v is a member of t.
//
// For list types the check stops at the sequence capability: element types
// are never re-verified at runtime. Per-element correctness is established
// by the static type-check pass before values flow here; callers must not
// rely on IsInstance for element-level soundness. This trust boundary is
// deliberate — adding runtime element checks would change observable
// behavior for ill-typed inputs that today pass through undetected.
func (t *Type) IsInstance(v Value) bool {
	if v == nil {
		return false
	}
	if t.kind == KindList {
		_, ok := v.(Sequence)
		return ok
	}
	return v.ValueKind() == t.kind
}

// Equal reports structural equality: same kind and, for lists, equal element
// types.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.kind != other.kind {
		return false
	}
	if t.kind == KindList {
		return t.elem.Equal(other.elem)
	}
	return true
}

// Hash returns a hash consistent with Equal, derived from the kind and the
// element type.
func (t *Type) Hash() uint32 {
	h := fnv.New32a()
	t.hashInto(h)
	return h.Sum32()
}

func (t *Type) hashInto(h hash.Hash32) {
	h.Write([]byte{byte(t.kind)})
	if t.elem != nil {
		t.elem.hashInto(h)
	}
}

// String renders the canonical display form used in diagnostics. List types
// render exactly as "list<elem>"; tooling matches on this form, so it must
// stay stable.
func (t *Type) String() string {
	if t.kind == KindList {
		return "list<" + t.elem.String() + ">"
	}
	return t.kind.String()
}
