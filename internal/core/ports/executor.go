package ports

import (
	"context"
	"io"

	"go.trai.ch/jute/internal/core/domain"
)

// Executor runs build tool processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and streams its output to stdout and stderr.
	//
	// A process that exits with a non-zero status yields an error matching
	// domain.ErrCommandFailed; any other error means the process could not run.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
