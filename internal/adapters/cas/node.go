package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jute/internal/core/ports"
)

const NodeID graft.ID = "adapter.result_store"

func init() {
	graft.Register(graft.Node[ports.ResultStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ResultStore, error) {
			return NewStore(), nil
		},
	})
}
