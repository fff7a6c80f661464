package domain

import "iter"

// CollectFileProperties consumes properties once and returns them as a name-ordered set.
// displayName labels the collection in the error returned when two properties share a name;
// collection stops at the first duplicate and no partial set is returned.
func CollectFileProperties[T PropertySpec](displayName string, properties iter.Seq[T]) (PropertySet[T], error) {
	names := make(map[string]struct{})
	var items []T
	for property := range properties {
		name := property.PropertyName()
		if _, seen := names[name]; seen {
			return PropertySet[T]{}, &DuplicatePropertyNameError{Domain: displayName, Name: name}
		}
		names[name] = struct{}{}
		items = append(items, property)
	}
	return newSortedPropertySet(items), nil
}
