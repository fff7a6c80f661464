package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrEmptyPropertyName is returned when a declared property name is the empty string.
	ErrEmptyPropertyName = zerr.New("Property name must not be empty string")

	// ErrDuplicatePropertyName is the sentinel matched by DuplicatePropertyNameError.
	ErrDuplicatePropertyName = zerr.New("duplicate property name")

	// ErrContractViolation marks a property that lacks a capability the caller guaranteed.
	// It is only ever raised through panic.
	ErrContractViolation = zerr.New("property contract violation")

	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrResolutionFailed is returned when resolving the file properties of a task fails.
	ErrResolutionFailed = zerr.New("property resolution failed")

	// ErrOutputPathOutsideRoot is returned when an output path is outside the project root.
	ErrOutputPathOutsideRoot = zerr.New("output path is outside project root")

	// ErrFailedToCleanOutput is returned when removing a stale output fails.
	ErrFailedToCleanOutput = zerr.New("failed to clean output file")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrConfigNotFound is returned when no props.yaml is found in the working directory or its parents.
	ErrConfigNotFound = zerr.New("could not find props.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownOutputType is returned when an output declares a type outside the supported set.
	ErrUnknownOutputType = zerr.New("unknown output type, expected 'file', 'directory' or 'tree'")

	// ErrConflictingOutputPaths is returned when an output declares more than one of path, each and files.
	ErrConflictingOutputPaths = zerr.New("output declares more than one of 'path', 'each' and 'files'")

	// ErrInvalidTaskName is returned when a task name is empty or contains whitespace.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrInvalidCompositeOutput is returned when 'each' is neither a list nor a map of paths.
	ErrInvalidCompositeOutput = zerr.New("'each' must be a list or a map of paths")

	// ErrInputNotFound is returned when an input path matches no file.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInvalidKeepPattern is returned when a keep pattern is not a valid glob.
	ErrInvalidKeepPattern = zerr.New("invalid keep pattern")

	// ErrInvalidFilter is returned when a property name filter is not a valid glob.
	ErrInvalidFilter = zerr.New("invalid property filter")

	// ErrStoreReadFailed is returned when the snapshot store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot store")

	// ErrStoreUnmarshalFailed is returned when the snapshot store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot store")

	// ErrStoreMarshalFailed is returned when the snapshot store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot store")

	// ErrStoreWriteFailed is returned when the snapshot store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot store")

	// ErrStoreCreateFailed is returned when the snapshot store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")
)

// DuplicatePropertyNameError reports two file properties sharing a name within one domain.
type DuplicatePropertyNameError struct {
	// Domain is the human-readable label of the collection, e.g. "output".
	Domain string
	// Name is the offending property name.
	Name string
}

func (e *DuplicatePropertyNameError) Error() string {
	return fmt.Sprintf("Multiple %s file properties with name '%s'", e.Domain, e.Name)
}

// Unwrap lets errors.Is match ErrDuplicatePropertyName.
func (e *DuplicatePropertyNameError) Unwrap() error {
	return ErrDuplicatePropertyName
}
