// Package data provides the concrete immutable values that flow through
// template rendering: plain primitives, sanitized content, and lists.
//
// Every constructor returns a finished, immutable value; there is no way to
// observe or build a partially constructed one. Values satisfy the
// capability interfaces from pkg/types (Texter, Numberer, Sequence) as
// appropriate for their kind.
package data

import (
	"strconv"

	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// StringData is a plain text value.
type StringData struct {
	value string
}

// NewString returns a string value.
func NewString(v string) StringData { return StringData{value: v} }

func (d StringData) ValueKind() types.Kind { return types.KindString }
func (d StringData) String() string        { return d.value }

// CoerceToText satisfies the text-coercion capability.
func (d StringData) CoerceToText() string { return d.value }

// IntegerData is a 64-bit integer value.
type IntegerData struct {
	value int64
}

// NewInteger returns an integer value.
func NewInteger(v int64) IntegerData { return IntegerData{value: v} }

func (d IntegerData) ValueKind() types.Kind { return types.KindInt }
func (d IntegerData) String() string        { return strconv.FormatInt(d.value, 10) }

// Value returns the underlying integer.
func (d IntegerData) Value() int64 { return d.value }

// CoerceToNumber satisfies the numeric-coercion capability.
func (d IntegerData) CoerceToNumber() float64 { return float64(d.value) }

// FloatData is a 64-bit floating-point value.
type FloatData struct {
	value float64
}

// NewFloat returns a float value.
func NewFloat(v float64) FloatData { return FloatData{value: v} }

func (d FloatData) ValueKind() types.Kind { return types.KindFloat }
func (d FloatData) String() string        { return strconv.FormatFloat(d.value, 'g', -1, 64) }

// CoerceToNumber satisfies the numeric-coercion capability.
func (d FloatData) CoerceToNumber() float64 { return d.value }

// BooleanData is a boolean value.
type BooleanData struct {
	value bool
}

// NewBoolean returns a boolean value.
func NewBoolean(v bool) BooleanData { return BooleanData{value: v} }

func (d BooleanData) ValueKind() types.Kind { return types.KindBool }
func (d BooleanData) String() string        { return strconv.FormatBool(d.value) }

// Value returns the underlying boolean.
func (d BooleanData) Value() bool { return d.value }

// NullData is the null value.
type NullData struct{}

// Null is the singleton null value.
var Null = NullData{}

func (NullData) ValueKind() types.Kind { return types.KindNull }
func (NullData) String() string        { return "null" }
