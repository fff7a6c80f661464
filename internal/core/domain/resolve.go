package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// ResolvedOutputFilePropertySpec is the immutable description of one cacheable output, as
// consumed by cache-key computation and stale-output cleanup.
type ResolvedOutputFilePropertySpec struct {
	Name       string     `json:"name"`
	OutputType OutputType `json:"type"`
	OutputFile string     `json:"file,omitzero"`
}

// PropertyName returns the name of the output.
func (r ResolvedOutputFilePropertySpec) PropertyName() string { return r.Name }

// ResolveDeclaredOutputFileProperty flattens one declared output into the visitor: a composite
// is expanded one level and every element visited in expansion order, an absent cacheable
// output is skipped, anything else is visited once.
func ResolveDeclaredOutputFileProperty(visitor OutputFilePropertyVisitor, declared DeclaredOutput) {
	switch declared.kind {
	case DeclaredComposite:
		for output := range declared.composite.ExpandToOutputProperties() {
			visitor.AcceptOutputFileProperty(output)
		}
	case DeclaredCacheable:
		if _, ok := declared.cacheable.OutputFile(); !ok {
			return
		}
		visitor.AcceptOutputFileProperty(declared.cacheable)
	case DeclaredGeneric:
		visitor.AcceptOutputFileProperty(declared.generic)
	default:
		panic(unknownKind(declared.kind))
	}
}

// ResolveFileProperties converts a collected set of cacheable outputs into resolved specs.
// Every element must implement CacheableOutputFilePropertySpec; one that does not is a bug in
// the caller and panics with an error wrapping ErrContractViolation.
func ResolveFileProperties[T PropertySpec](properties PropertySet[T]) PropertySet[ResolvedOutputFilePropertySpec] {
	resolved := make([]ResolvedOutputFilePropertySpec, 0, properties.Len())
	for property := range properties.All() {
		cacheable, ok := any(property).(CacheableOutputFilePropertySpec)
		if !ok {
			err := zerr.Wrap(ErrContractViolation, "property is not a cacheable output")
			err = zerr.With(err, "property", property.PropertyName())
			err = zerr.With(err, "type", fmt.Sprintf("%T", property))
			panic(zerr.WithStack(err))
		}
		file, _ := cacheable.OutputFile()
		resolved = append(resolved, ResolvedOutputFilePropertySpec{
			Name:       cacheable.PropertyName(),
			OutputType: cacheable.OutputType(),
			OutputFile: file,
		})
	}
	return newSortedPropertySet(resolved)
}

// IsCacheable reports whether every property in the set can be resolved to a single file.
// When it cannot, the name of the first offending property is returned.
func IsCacheable[T PropertySpec](properties PropertySet[T]) (string, bool) {
	for property := range properties.All() {
		if _, ok := any(property).(CacheableOutputFilePropertySpec); !ok {
			return property.PropertyName(), false
		}
	}
	return "", true
}
