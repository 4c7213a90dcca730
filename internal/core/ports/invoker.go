// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/jute/internal/core/domain"
)

//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks

// Invoker owns the argument list handed to the build tool.
// The list may be replaced wholesale at any time by anyone holding the invoker.
type Invoker interface {
	// Arguments returns the current argument list.
	Arguments() []string

	// WithArguments replaces the argument list and returns the handle to keep configuring.
	WithArguments(args []string) Invoker
}

// ProjectInvoker is an Invoker bound to a project directory and a plugin classpath.
type ProjectInvoker interface {
	Invoker

	// WithProjectDir sets the directory of the build under test.
	WithProjectDir(dir string) ProjectInvoker

	// WithPluginClasspath replaces the plugin classpath with the given entries.
	WithPluginClasspath(entries []string) ProjectInvoker

	// WithDefaultPluginClasspath replaces the plugin classpath with the one
	// discovered from the plugin development conventions.
	WithDefaultPluginClasspath() (ProjectInvoker, error)
}

// Builder executes the build with the current argument list.
type Builder interface {
	// Build runs the build and expects it to succeed.
	Build(ctx context.Context) (*domain.BuildResult, error)

	// BuildAndFail runs the build and expects it to fail.
	BuildAndFail(ctx context.Context) (*domain.BuildResult, error)
}

// BuildInvoker is a ProjectInvoker that can also run the build.
type BuildInvoker interface {
	ProjectInvoker
	Builder
}

// HarnessOptions configures a new build harness.
type HarnessOptions struct {
	// BuildTool is the executable to run. Empty selects the project's wrapper
	// script if present, otherwise domain.DefaultBuildTool.
	BuildTool string
	// Environment is added to the build tool process environment.
	Environment map[string]string
	// Output, when set, receives the build tool's stdout and stderr as they are produced.
	Output io.Writer
}

// HarnessFactory creates build harnesses.
type HarnessFactory interface {
	NewHarness(opts HarnessOptions) BuildInvoker
}
