// Package fs resolves plugin classpath entries on the local filesystem.
package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClasspathResolver = (*Resolver)(nil)

// Resolver implements the ClasspathResolver interface using filepath.Glob.
type Resolver struct {
	// Getenv looks up environment variables. It defaults to os.Getenv.
	Getenv func(string) string
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands the given classpath patterns to a sorted list of absolute paths.
// Relative patterns are anchored at root. Every pattern must match at least one entry.
func (r *Resolver) Resolve(patterns []string, root string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrClasspathEntryNotFound, "pattern matched nothing"), "path", path)
		}

		for _, match := range matches {
			uniquePaths[filepath.Clean(match)] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}
