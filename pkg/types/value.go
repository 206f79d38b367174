package types

// Value is a runtime template value. Implementations are immutable once
// constructed and never mutated afterwards, which is what allows types,
// values and the list-covariance rule to be shared freely across concurrent
// renders.
//
// A Value always reports its own lattice kind; the optional capabilities
// ([Texter], [Numberer], [Sequence]) are modeled as separate interfaces so
// that primitives can detect a missing capability and raise a [TypeError].
type Value interface {
	// ValueKind reports the lattice kind the value belongs to.
	ValueKind() Kind
	// String returns the display form used in diagnostics.
	String() string
}

// Texter is the coerce-to-text capability. Plain strings and sanitized
// content satisfy it; numbers and lists do not.
type Texter interface {
	Value
	// CoerceToText returns the value's text form.
	CoerceToText() string
}

// Numberer is the coerce-to-number capability.
type Numberer interface {
	Value
	// CoerceToNumber returns the value's numeric form.
	CoerceToNumber() float64
}

// Sequence is the list capability: ordered random access by integer index.
// List instance checks test for exactly this interface and nothing more; see
// [Type.IsInstance].
type Sequence interface {
	Value
	// Len returns the number of elements.
	Len() int
	// Index returns the element at position i.
	Index(i int) Value
}
