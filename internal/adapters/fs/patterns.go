package fs

import (
	"path"

	"github.com/gobwas/glob"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/zerr"
)

// Patterns is a compiled set of slash-separated glob patterns.
type Patterns struct {
	globs []glob.Glob
}

// CompilePatterns compiles the given patterns. '*' does not cross '/' while '**' does.
func CompilePatterns(patterns []string) (*Patterns, error) {
	p := &Patterns{globs: make([]glob.Glob, 0, len(patterns))}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidKeepPattern.Error()), "pattern", pattern)
		}
		p.globs = append(p.globs, g)
	}
	return p, nil
}

// Match reports whether the slash-separated relative path, or its base name, matches any
// pattern. A nil Patterns matches nothing.
func (p *Patterns) Match(rel string) bool {
	if p == nil {
		return false
	}
	base := path.Base(rel)
	for _, g := range p.globs {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}
