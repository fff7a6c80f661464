// Package domain contains the file property model of a task and the rules that turn declared
// properties into the name-ordered sets consumed by caching and cleanup.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// PropertySpec is implemented by every declared or resolved task property.
type PropertySpec interface {
	// PropertyName returns the name of the property. It is empty for an anonymous
	// property that has not gone through EnsurePropertiesHaveNames yet.
	PropertyName() string
}

// FilePropertySpec is a property associated with one or more filesystem paths.
type FilePropertySpec interface {
	PropertySpec
	// Paths returns the paths of the property relative to the project root.
	Paths() []string
}

// OutputFilePropertySpec is a file property produced by a task.
type OutputFilePropertySpec interface {
	FilePropertySpec
	OutputType() OutputType
}

// CacheableOutputFilePropertySpec is an output property backed by at most one physical file.
type CacheableOutputFilePropertySpec interface {
	OutputFilePropertySpec
	// OutputFile returns the backing file, or false when the output is absent.
	OutputFile() (string, bool)
}

// CompositeOutputFilePropertySpec is one declared output that denotes many physical outputs.
type CompositeOutputFilePropertySpec interface {
	PropertySpec
	// ExpandToOutputProperties yields the concrete outputs one level deep.
	ExpandToOutputProperties() iter.Seq[OutputFilePropertySpec]
}

// Renamable is implemented by specs that can be copied under a new name.
type Renamable[T any] interface {
	PropertySpec
	WithPropertyName(name string) T
}

// OutputType describes what kind of filesystem entry an output produces.
type OutputType int

const (
	// OutputTypeFile is a single regular file.
	OutputTypeFile OutputType = iota
	// OutputTypeDirectory is a directory whose contents are owned by the task.
	OutputTypeDirectory
	// OutputTypeFileTree is a set of files below a directory.
	OutputTypeFileTree
	// OutputTypeAbsent marks an output that resolved to nothing.
	OutputTypeAbsent
)

// String returns the configuration spelling of the output type.
func (t OutputType) String() string {
	switch t {
	case OutputTypeFile:
		return "file"
	case OutputTypeDirectory:
		return "directory"
	case OutputTypeFileTree:
		return "tree"
	case OutputTypeAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ParseOutputType converts a configuration value to an OutputType.
// An empty string defaults to OutputTypeFile.
func ParseOutputType(s string) (OutputType, error) {
	switch s {
	case "", "file":
		return OutputTypeFile, nil
	case "directory", "dir":
		return OutputTypeDirectory, nil
	case "tree":
		return OutputTypeFileTree, nil
	default:
		return 0, zerr.With(ErrUnknownOutputType, "type", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t OutputType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *OutputType) UnmarshalText(text []byte) error {
	if string(text) == "absent" {
		*t = OutputTypeAbsent
		return nil
	}
	parsed, err := ParseOutputType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
