package data

import (
	"strings"

	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// ListData is an immutable sequential container keyed by integer. It
// satisfies the Sequence capability, which is all a list instance check
// inspects; element types are the static checker's responsibility.
type ListData struct {
	items []types.Value
}

// NewList returns a list value holding the given elements. The slice is
// copied so later mutation of the argument cannot reach the value.
func NewList(items ...types.Value) ListData {
	copied := make([]types.Value, len(items))
	copy(copied, items)
	return ListData{items: copied}
}

func (d ListData) ValueKind() types.Kind { return types.KindList }

func (d ListData) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range d.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Len returns the number of elements.
func (d ListData) Len() int { return len(d.items) }

// Index returns the element at position i.
func (d ListData) Index(i int) types.Value { return d.items[i] }
