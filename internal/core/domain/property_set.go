package domain

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// PropertySet is an immutable collection of uniquely named properties in ascending name order.
// The zero value is an empty set.
type PropertySet[T PropertySpec] struct {
	items []T
}

// newSortedPropertySet takes ownership of items, which must already be uniquely named.
func newSortedPropertySet[T PropertySpec](items []T) PropertySet[T] {
	slices.SortFunc(items, func(a, b T) int {
		return cmp.Compare(a.PropertyName(), b.PropertyName())
	})
	return PropertySet[T]{items: items}
}

// Len returns the number of properties in the set.
func (s PropertySet[T]) Len() int { return len(s.items) }

// All yields the properties in ascending name order.
func (s PropertySet[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Slice returns a copy of the properties in ascending name order.
func (s PropertySet[T]) Slice() []T {
	return slices.Clone(s.items)
}

// Names returns the property names in ascending order.
func (s PropertySet[T]) Names() []string {
	names := make([]string, len(s.items))
	for i, item := range s.items {
		names[i] = item.PropertyName()
	}
	return names
}

// Get looks up a property by name.
func (s PropertySet[T]) Get(name string) (T, bool) {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].PropertyName() >= name
	})
	if i < len(s.items) && s.items[i].PropertyName() == name {
		return s.items[i], true
	}
	var zero T
	return zero, false
}
