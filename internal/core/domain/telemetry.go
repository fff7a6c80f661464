package domain

// LogLevel represents the severity of a telemetry message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// TaskStatus is the up-to-date state of a task compared to its recorded snapshot.
type TaskStatus string

const (
	// TaskStatusUpToDate means the fingerprint matches the snapshot and every output exists.
	TaskStatusUpToDate TaskStatus = "up-to-date"
	// TaskStatusChanged means the declared properties changed or an output is missing.
	TaskStatusChanged TaskStatus = "changed"
	// TaskStatusNew means no snapshot has been recorded for the task.
	TaskStatusNew TaskStatus = "new"
	// TaskStatusNotCacheable means the task declares an output that cannot be tracked.
	TaskStatusNotCacheable TaskStatus = "not cacheable"
)
