package domain

import "strconv"

// CheckPropertyName rejects an empty property name and returns any other name unchanged.
func CheckPropertyName(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyPropertyName
	}
	return name, nil
}

// EnsurePropertiesHaveNames returns a copy of properties in which every anonymous property
// is named "$N", N counting anonymous properties only, starting at 1, in slice order.
// Named properties are copied unchanged and the input slice is left untouched.
func EnsurePropertiesHaveNames[T Renamable[T]](properties []T) []T {
	named := make([]T, len(properties))
	unnamed := 0
	for i, property := range properties {
		if property.PropertyName() != "" {
			named[i] = property
			continue
		}
		unnamed++
		named[i] = property.WithPropertyName("$" + strconv.Itoa(unnamed))
	}
	return named
}
