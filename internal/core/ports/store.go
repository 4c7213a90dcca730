package ports

import "go.trai.ch/jute/internal/core/domain"

// ResultStore records the outcome of build invocations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get returns the last result recorded for the fingerprint.
	// Returns nil, nil if not found.
	Get(root, fingerprint string) (*domain.BuildResult, error)

	// Put records the result under its fingerprint.
	Put(root string, result domain.BuildResult) error
}
