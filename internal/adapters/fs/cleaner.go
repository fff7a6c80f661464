package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputCleaner = (*Cleaner)(nil)

// Cleaner removes outputs that a task declared previously but no longer declares.
type Cleaner struct {
	walker *Walker
}

// NewCleaner creates a new Cleaner.
func NewCleaner(walker *Walker) *Cleaner {
	return &Cleaner{walker: walker}
}

// RemoveStaleOutputs deletes every previous output file missing from current. A previous
// output that contains, or is contained in, a current output is left alone. Directories are
// emptied file by file, sparing files matching a keep pattern, and then pruned if empty.
// Removed files are returned relative to root, sorted.
func (c *Cleaner) RemoveStaleOutputs(
	root string,
	previous, current []domain.ResolvedOutputFilePropertySpec,
	keep []string,
) ([]string, error) {
	patterns, err := CompilePatterns(keep)
	if err != nil {
		return nil, err
	}

	currentFiles := make([]string, 0, len(current))
	for _, output := range current {
		if output.OutputFile != "" {
			currentFiles = append(currentFiles, filepath.Clean(filepath.FromSlash(output.OutputFile)))
		}
	}

	var removed []string
	for _, output := range previous {
		if output.OutputFile == "" {
			continue
		}
		rel := filepath.Clean(filepath.FromSlash(output.OutputFile))
		if slices.ContainsFunc(currentFiles, func(cur string) bool { return overlaps(rel, cur) }) {
			continue
		}

		abs, err := resolveUnderRoot(root, rel)
		if err != nil {
			return nil, zerr.With(err, "output", output.Name)
		}

		paths, err := c.removeOutput(root, abs, patterns)
		removed = append(removed, paths...)
		if err != nil {
			return removed, zerr.With(err, "output", output.Name)
		}
	}

	slices.Sort(removed)
	return removed, nil
}

func (c *Cleaner) removeOutput(root, abs string, keep *Patterns) ([]string, error) {
	info, err := os.Lstat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", abs)
	}

	if !info.IsDir() {
		return removeFile(root, abs, keep)
	}

	var removed []string
	for file := range c.walker.WalkFiles(abs) {
		paths, err := removeFile(root, file, keep)
		removed = append(removed, paths...)
		if err != nil {
			return removed, err
		}
	}

	for dir := range c.walker.WalkDirs(abs) {
		// Fails for directories still holding kept files.
		_ = os.Remove(dir)
	}

	return removed, nil
}

func removeFile(root, abs string, keep *Patterns) ([]string, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", abs)
	}
	rel = filepath.ToSlash(rel)

	if keep.Match(rel) {
		return nil, nil
	}

	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToCleanOutput.Error()), "path", rel)
	}
	return []string{rel}, nil
}

// resolveUnderRoot joins rel to root and rejects results that escape root.
func resolveUnderRoot(root, rel string) (string, error) {
	abs := rel
	if !filepath.IsAbs(rel) {
		abs = filepath.Join(root, rel)
	}

	check, err := filepath.Rel(root, abs)
	if err != nil || check == "." || check == ".." || strings.HasPrefix(check, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrOutputPathOutsideRoot, "path", rel)
	}
	return abs, nil
}

// overlaps reports whether a equals b or one is an ancestor of the other.
func overlaps(a, b string) bool {
	if a == b {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(a, b+sep) || strings.HasPrefix(b, a+sep)
}
