// Package cas implements the result store that remembers the outcome of earlier builds.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore using one flat JSON file per config root.
// Results are keyed by invocation fingerprint.
type Store struct {
	mu     sync.RWMutex
	caches map[string]map[string]domain.BuildResult
}

// NewStore creates a new, empty Store. Files are read on first access.
func NewStore() *Store {
	return &Store{
		caches: make(map[string]map[string]domain.BuildResult),
	}
}

// Path returns the location of the store file for a config root.
func Path(root string) string {
	return filepath.Join(filepath.Clean(root), domain.StateDirName, domain.ResultsFileName)
}

// cache returns the in-memory results for root, loading them on first use.
// Callers must hold mu for writing.
func (s *Store) cache(root string) (map[string]domain.BuildResult, error) {
	path := Path(root)
	if c, ok := s.caches[path]; ok {
		return c, nil
	}

	c := make(map[string]domain.BuildResult)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
		}
	}

	s.caches[path] = c
	return c, nil
}

func (s *Store) save(root string, c map[string]domain.BuildResult) error {
	path := Path(root)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	return nil
}

// Get retrieves the last result recorded for fingerprint under root.
// Returns nil, nil if there is none.
func (s *Store) Get(root, fingerprint string) (*domain.BuildResult, error) {
	s.mu.RLock()
	if c, ok := s.caches[Path(root)]; ok {
		defer s.mu.RUnlock()
		return lookup(c, fingerprint), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cache(root)
	if err != nil {
		return nil, err
	}
	return lookup(c, fingerprint), nil
}

// Put stores the result under its fingerprint and writes the file.
// Build output is not kept. The result becomes visible only once the file is written.
func (s *Store) Put(root string, result domain.BuildResult) error {
	if result.Fingerprint == "" {
		return zerr.Wrap(domain.ErrStoreWriteFailed, "result has no fingerprint")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cache(root)
	if err != nil {
		return err
	}

	result.Output = ""
	next := maps.Clone(c)
	next[result.Fingerprint] = result
	if err := s.save(root, next); err != nil {
		return err
	}

	s.caches[Path(root)] = next
	return nil
}

func lookup(c map[string]domain.BuildResult, fingerprint string) *domain.BuildResult {
	result, ok := c[fingerprint]
	if !ok {
		return nil
	}
	return &result
}
