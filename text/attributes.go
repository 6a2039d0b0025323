package text

import (
	"maps"
	"slices"
)

// Attributes maps attribute names to values. An empty set is distinct from
// no tracking at all (see Text.IsPlain).
type Attributes map[string]string

// Clone returns a copy of a. The result is never nil.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// Equal reports whether a and b hold the same pairs. nil equals empty.
func (a Attributes) Equal(b Attributes) bool {
	return maps.Equal(a, b)
}

// Keys returns the attribute names in ascending order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

func (a Attributes) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// HasAttribute returns a predicate matching sets that contain name.
func HasAttribute(name string) func(Attributes) bool {
	return func(a Attributes) bool { return a.Has(name) }
}

// AttributeEquals returns a predicate matching sets where name maps to value.
func AttributeEquals(name, value string) func(Attributes) bool {
	return func(a Attributes) bool {
		v, ok := a[name]
		return ok && v == value
	}
}

// AttributesEqual returns a predicate matching sets equal to attrs.
func AttributesEqual(attrs Attributes) func(Attributes) bool {
	return func(a Attributes) bool { return a.Equal(attrs) }
}
