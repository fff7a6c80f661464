package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves the given input patterns to a sorted list of files relative to root.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, input := range inputs {
		path := filepath.Join(root, input)

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "path", input)
		}

		for _, match := range matches {
			if err := r.addMatch(root, match, uniquePaths); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) addMatch(root, match string, paths map[string]bool) error {
	info, err := os.Stat(match)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", match)
	}

	if !info.IsDir() {
		return addRelative(root, match, paths)
	}

	for file := range r.walker.WalkFiles(match) {
		if err := addRelative(root, file, paths); err != nil {
			return err
		}
	}
	return nil
}

func addRelative(root, path string, paths map[string]bool) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
	}
	paths[filepath.ToSlash(rel)] = true
	return nil
}
