package gradle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jute/internal/adapters/fs"
	"go.trai.ch/jute/internal/adapters/shell"
	"go.trai.ch/jute/internal/adapters/telemetry/progrock"
	"go.trai.ch/jute/internal/core/ports"
)

// NodeID is the unique identifier for the harness factory Graft node.
const NodeID graft.ID = "adapter.harness_factory"

func init() {
	graft.Register(graft.Node[ports.HarnessFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.ResolverNodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.HarnessFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			classpath, err := graft.Dep[ports.ClasspathResolver](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, classpath, tel), nil
		},
	})
}
