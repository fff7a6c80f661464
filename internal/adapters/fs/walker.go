// Package fs provides file system adapters for walking, fingerprinting and cleaning outputs.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// skippedDirs are version control directories never descended into.
var skippedDirs = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping version control directories.
// Paths are yielded as filepath.WalkDir produces them, i.e. prefixed with root.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skippedDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// WalkDirs yields all directories below root, root included, deepest first.
func (w *Walker) WalkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var dirs []string
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skippedDirs[d.Name()] {
					return filepath.SkipDir
				}
				dirs = append(dirs, path)
			}
			return nil
		})

		for i := len(dirs) - 1; i >= 0; i-- {
			if !yield(dirs[i]) {
				return
			}
		}
	}
}
