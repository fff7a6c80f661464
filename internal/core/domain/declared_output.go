package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// DeclaredOutputKind tags the variant held by a DeclaredOutput.
type DeclaredOutputKind int

const (
	// DeclaredComposite expands into many outputs.
	DeclaredComposite DeclaredOutputKind = iota + 1
	// DeclaredCacheable wraps at most one output file.
	DeclaredCacheable
	// DeclaredGeneric is any other output property.
	DeclaredGeneric
)

// String returns a readable name for the kind.
func (k DeclaredOutputKind) String() string {
	switch k {
	case DeclaredComposite:
		return "composite"
	case DeclaredCacheable:
		return "cacheable"
	case DeclaredGeneric:
		return "generic"
	default:
		return fmt.Sprintf("DeclaredOutputKind(%d)", int(k))
	}
}

// DeclaredOutput is an output property as declared on a task, before resolution.
// The zero value holds no variant and must not be dispatched.
type DeclaredOutput struct {
	kind      DeclaredOutputKind
	composite CompositeOutputProperty
	cacheable OutputFileProperty
	generic   OutputFilesProperty
}

// DeclareComposite wraps a composite output.
func DeclareComposite(p CompositeOutputProperty) DeclaredOutput {
	return DeclaredOutput{kind: DeclaredComposite, composite: p}
}

// DeclareCacheable wraps a single-file output.
func DeclareCacheable(p OutputFileProperty) DeclaredOutput {
	return DeclaredOutput{kind: DeclaredCacheable, cacheable: p}
}

// DeclareGeneric wraps a multi-file output.
func DeclareGeneric(p OutputFilesProperty) DeclaredOutput {
	return DeclaredOutput{kind: DeclaredGeneric, generic: p}
}

// Kind returns the variant tag.
func (d DeclaredOutput) Kind() DeclaredOutputKind { return d.kind }

// Composite returns the composite variant.
func (d DeclaredOutput) Composite() (CompositeOutputProperty, bool) {
	return d.composite, d.kind == DeclaredComposite
}

// Cacheable returns the cacheable variant.
func (d DeclaredOutput) Cacheable() (OutputFileProperty, bool) {
	return d.cacheable, d.kind == DeclaredCacheable
}

// Generic returns the generic variant.
func (d DeclaredOutput) Generic() (OutputFilesProperty, bool) {
	return d.generic, d.kind == DeclaredGeneric
}

// PropertyName returns the name of the wrapped property.
func (d DeclaredOutput) PropertyName() string {
	switch d.kind {
	case DeclaredComposite:
		return d.composite.PropertyName()
	case DeclaredCacheable:
		return d.cacheable.PropertyName()
	case DeclaredGeneric:
		return d.generic.PropertyName()
	default:
		panic(unknownKind(d.kind))
	}
}

// WithPropertyName returns a copy whose wrapped property carries the given name.
func (d DeclaredOutput) WithPropertyName(name string) DeclaredOutput {
	switch d.kind {
	case DeclaredComposite:
		d.composite = d.composite.WithPropertyName(name)
	case DeclaredCacheable:
		d.cacheable = d.cacheable.WithPropertyName(name)
	case DeclaredGeneric:
		d.generic = d.generic.WithPropertyName(name)
	default:
		panic(unknownKind(d.kind))
	}
	return d
}

func unknownKind(k DeclaredOutputKind) error {
	return zerr.With(zerr.Wrap(ErrContractViolation, "unhandled declared output kind"), "kind", k.String())
}
