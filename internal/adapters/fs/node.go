package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jute/internal/core/ports"
)

const ResolverNodeID graft.ID = "adapter.fs.resolver"

func init() {
	graft.Register(graft.Node[ports.ClasspathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ClasspathResolver, error) {
			return NewResolver(), nil
		},
	})
}
