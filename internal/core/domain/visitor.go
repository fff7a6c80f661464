package domain

import "slices"

// OutputFilePropertyVisitor receives output properties produced by
// ResolveDeclaredOutputFileProperty.
type OutputFilePropertyVisitor interface {
	AcceptOutputFileProperty(property OutputFilePropertySpec)
}

// OutputFilesVisitor accumulates visited outputs and collects them once into a name-ordered
// set. It is not safe for concurrent use.
type OutputFilesVisitor struct {
	specs              []OutputFilePropertySpec
	fileProperties     PropertySet[OutputFilePropertySpec]
	collected          bool
	hasDeclaredOutputs bool
}

// NewOutputFilesVisitor creates an empty visitor.
func NewOutputFilesVisitor() *OutputFilesVisitor {
	return &OutputFilesVisitor{}
}

// AcceptOutputFileProperty records an output property.
func (v *OutputFilesVisitor) AcceptOutputFileProperty(property OutputFilePropertySpec) {
	v.hasDeclaredOutputs = true
	v.specs = append(v.specs, property)
}

// HasDeclaredOutputs reports whether any output was accepted, duplicates included.
func (v *OutputFilesVisitor) HasDeclaredOutputs() bool {
	return v.hasDeclaredOutputs
}

// FileProperties collects the accepted outputs under the "output" label. The first successful
// call fixes the result: outputs accepted afterwards are not reflected in later calls.
func (v *OutputFilesVisitor) FileProperties() (PropertySet[OutputFilePropertySpec], error) {
	if v.collected {
		return v.fileProperties, nil
	}
	properties, err := CollectFileProperties("output", slices.Values(v.specs))
	if err != nil {
		return PropertySet[OutputFilePropertySpec]{}, err
	}
	v.fileProperties = properties
	v.collected = true
	return v.fileProperties, nil
}

// InputFilesVisitor accumulates input properties and collects them once under the "input"
// label, with the same finalize-once behaviour as OutputFilesVisitor.
type InputFilesVisitor struct {
	specs          []InputFileProperty
	fileProperties PropertySet[InputFileProperty]
	collected      bool
}

// NewInputFilesVisitor creates an empty visitor.
func NewInputFilesVisitor() *InputFilesVisitor {
	return &InputFilesVisitor{}
}

// AcceptInputFileProperty records an input property.
func (v *InputFilesVisitor) AcceptInputFileProperty(property InputFileProperty) {
	v.specs = append(v.specs, property)
}

// FileProperties collects the accepted inputs.
func (v *InputFilesVisitor) FileProperties() (PropertySet[InputFileProperty], error) {
	if v.collected {
		return v.fileProperties, nil
	}
	properties, err := CollectFileProperties("input", slices.Values(v.specs))
	if err != nil {
		return PropertySet[InputFileProperty]{}, err
	}
	v.fileProperties = properties
	v.collected = true
	return v.fileProperties, nil
}
