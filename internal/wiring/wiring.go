// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jute/internal/adapters/cas"
	_ "go.trai.ch/jute/internal/adapters/config"
	_ "go.trai.ch/jute/internal/adapters/fs"
	_ "go.trai.ch/jute/internal/adapters/gradle"
	_ "go.trai.ch/jute/internal/adapters/logger"
	_ "go.trai.ch/jute/internal/adapters/shell"
	_ "go.trai.ch/jute/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/jute/internal/app"
)
