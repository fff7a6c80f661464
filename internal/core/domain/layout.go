package domain

import "path/filepath"

const (
	// PropsDirName is the name of the internal state directory.
	PropsDirName = ".props"
	// SnapshotFileName is the name of the snapshot store file.
	SnapshotFileName = "snapshots.json"
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "props.yaml"
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSnapshotPath returns the snapshot store path relative to the project root.
func DefaultSnapshotPath() string {
	return filepath.Join(PropsDirName, SnapshotFileName)
}
