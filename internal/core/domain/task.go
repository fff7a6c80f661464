package domain

import "time"

// Task is a unit of work whose file properties are resolved.
type Task struct {
	Name         string
	Inputs       []InputFileProperty
	Outputs      []DeclaredOutput
	Dependencies []string
	// Keep lists glob patterns of files that stale-output cleanup must not remove.
	Keep []string
}

// TaskProperties is the outcome of resolving the file properties of one task.
type TaskProperties struct {
	Task   Task
	Inputs PropertySet[InputFileProperty]
	// Outputs holds every visited output, cacheable or not.
	Outputs PropertySet[OutputFilePropertySpec]
	// Resolved is empty unless Cacheable is true.
	Resolved           PropertySet[ResolvedOutputFilePropertySpec]
	HasDeclaredOutputs bool
	Cacheable          bool
	// NotCacheableReason explains why Cacheable is false.
	NotCacheableReason string
}

// Snapshot is the recorded state of a task's resolved outputs after a clean.
type Snapshot struct {
	TaskName    string                           `json:"task_name,omitzero"`
	Fingerprint string                           `json:"fingerprint,omitzero"`
	Outputs     []ResolvedOutputFilePropertySpec `json:"outputs,omitzero"`
	Timestamp   time.Time                        `json:"timestamp,omitzero"`
}
