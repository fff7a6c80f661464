package domain

import (
	"iter"
	"slices"
	"strconv"
)

// InputFileProperty is a declared task input.
type InputFileProperty struct {
	name  string
	paths []string
}

// NewInputFileProperty creates an input property. An empty name declares an anonymous input.
func NewInputFileProperty(name string, paths ...string) InputFileProperty {
	return InputFileProperty{name: name, paths: slices.Clone(paths)}
}

// PropertyName returns the name of the input.
func (p InputFileProperty) PropertyName() string { return p.name }

// Paths returns a copy of the declared input paths.
func (p InputFileProperty) Paths() []string { return slices.Clone(p.paths) }

// WithPropertyName returns a copy of the input carrying the given name.
func (p InputFileProperty) WithPropertyName(name string) InputFileProperty {
	p.name = name
	return p
}

// OutputFileProperty is an output backed by a single file or directory. The file may be
// absent when an optional output was left unset.
type OutputFileProperty struct {
	name       string
	outputType OutputType
	file       string
}

// NewOutputFileProperty creates a single-file output. An empty file declares an absent output.
func NewOutputFileProperty(name string, outputType OutputType, file string) OutputFileProperty {
	return OutputFileProperty{name: name, outputType: outputType, file: file}
}

// PropertyName returns the name of the output.
func (p OutputFileProperty) PropertyName() string { return p.name }

// OutputType returns the declared output type.
func (p OutputFileProperty) OutputType() OutputType { return p.outputType }

// OutputFile returns the backing file, or false when the output is absent.
func (p OutputFileProperty) OutputFile() (string, bool) {
	return p.file, p.file != ""
}

// Paths returns the backing file as a one-element slice, or nil when absent.
func (p OutputFileProperty) Paths() []string {
	if p.file == "" {
		return nil
	}
	return []string{p.file}
}

// WithPropertyName returns a copy of the output carrying the given name.
func (p OutputFileProperty) WithPropertyName(name string) OutputFileProperty {
	p.name = name
	return p
}

// OutputFilesProperty is a single output property spanning several files. It cannot be
// resolved to one cacheable file and therefore makes its task non-cacheable.
type OutputFilesProperty struct {
	name       string
	outputType OutputType
	paths      []string
}

// NewOutputFilesProperty creates a multi-file output.
func NewOutputFilesProperty(name string, outputType OutputType, paths ...string) OutputFilesProperty {
	return OutputFilesProperty{name: name, outputType: outputType, paths: slices.Clone(paths)}
}

// PropertyName returns the name of the output.
func (p OutputFilesProperty) PropertyName() string { return p.name }

// OutputType returns the declared output type.
func (p OutputFilesProperty) OutputType() OutputType { return p.outputType }

// Paths returns a copy of the output paths.
func (p OutputFilesProperty) Paths() []string { return slices.Clone(p.paths) }

// WithPropertyName returns a copy of the output carrying the given name.
func (p OutputFilesProperty) WithPropertyName(name string) OutputFilesProperty {
	p.name = name
	return p
}

// CompositeEntry is one element of a composite output. Key is empty for indexed entries.
type CompositeEntry struct {
	Key  string
	Path string
}

// CompositeOutputProperty is a declared output that expands into one cacheable output per
// entry. Keyed entries are named "<name>.<key>", indexed entries "<name>$<n>" starting at 1.
type CompositeOutputProperty struct {
	name       string
	outputType OutputType
	entries    []CompositeEntry
}

// NewCompositeOutputProperty creates a composite output from its entries, kept in order.
func NewCompositeOutputProperty(name string, outputType OutputType, entries ...CompositeEntry) CompositeOutputProperty {
	return CompositeOutputProperty{name: name, outputType: outputType, entries: slices.Clone(entries)}
}

// PropertyName returns the name of the composite.
func (p CompositeOutputProperty) PropertyName() string { return p.name }

// OutputType returns the type shared by all expanded outputs.
func (p CompositeOutputProperty) OutputType() OutputType { return p.outputType }

// WithPropertyName returns a copy of the composite carrying the given name.
func (p CompositeOutputProperty) WithPropertyName(name string) CompositeOutputProperty {
	p.name = name
	return p
}

// ExpandToOutputProperties yields one OutputFileProperty per entry, in declaration order.
func (p CompositeOutputProperty) ExpandToOutputProperties() iter.Seq[OutputFilePropertySpec] {
	return func(yield func(OutputFilePropertySpec) bool) {
		index := 0
		for _, entry := range p.entries {
			var suffix string
			if entry.Key != "" {
				suffix = "." + entry.Key
			} else {
				index++
				suffix = "$" + strconv.Itoa(index)
			}
			if !yield(NewOutputFileProperty(p.name+suffix, p.outputType, entry.Path)) {
				return
			}
		}
	}
}
