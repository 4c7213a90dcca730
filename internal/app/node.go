package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jute/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/jute/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jute/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/jute/internal/adapters/gradle"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jute/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jute/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/jute/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gradle.NodeID,
			fs.ResolverNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	harnesses, err := graft.Dep[ports.HarnessFactory](ctx)
	if err != nil {
		return nil, err
	}

	classpath, err := graft.Dep[ports.ClasspathResolver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, harnesses, classpath, store, tel, log), nil
}
