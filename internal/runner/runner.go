// Package runner tracks declared build properties and projects them onto a build invoker's arguments.
//
// A Runner keeps the properties of the most recent declaration as a snapshot and appends
// their rendered options to the arguments of the invoker it wraps. The invoker owns the
// argument list: anyone holding it may replace the list wholesale, which drops the options
// applied so far. WithSavedProperties appends the snapshot again in that case.
//
// A Runner is not safe for concurrent use. Separate Runners share no state.
package runner

import (
	"context"
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner is the property manager in front of a build invoker.
type Runner struct {
	invoker  ports.Invoker
	snapshot domain.Snapshot
}

// New wraps an invoker with an empty property snapshot.
func New(inv ports.Invoker) *Runner {
	return &Runner{invoker: inv}
}

// Create binds the invoker to the directory holding buildFile and wraps it.
// With defaultClasspath the plugin classpath is replaced by the one discovered
// from the plugin development conventions.
func Create(inv ports.ProjectInvoker, buildFile string, defaultClasspath bool) (*Runner, error) {
	return CreateInDir(inv, filepath.Dir(buildFile), defaultClasspath)
}

// CreateInDir binds the invoker to dir and wraps it.
func CreateInDir(inv ports.ProjectInvoker, dir string, defaultClasspath bool) (*Runner, error) {
	p := inv.WithProjectDir(dir)
	if defaultClasspath {
		var err error
		if p, err = p.WithDefaultPluginClasspath(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to apply default plugin classpath"), "project_dir", dir)
		}
	}
	return New(p), nil
}

// Invoker returns the current invoker handle.
func (r *Runner) Invoker() ports.Invoker {
	return r.invoker
}

// Properties returns the properties of the most recent declaration.
// The returned slice is a copy.
func (r *Runner) Properties() []domain.Property {
	return r.snapshot.Properties()
}

// WithProperties declares one project property per entry, replacing any previous declaration,
// and applies them to the arguments. Entries are declared in sorted key order.
func (r *Runner) WithProperties(properties map[string]string) (*Runner, error) {
	props := make([]domain.Property, 0, len(properties))
	for _, name := range slices.Sorted(maps.Keys(properties)) {
		p, err := domain.KindProject.Create(name, properties[name])
		if err != nil {
			return r, err
		}
		props = append(props, p)
	}
	return r.Declare(props...), nil
}

// WithProperty declares a single project property, replacing any previous declaration,
// and applies it to the arguments.
func (r *Runner) WithProperty(name, value string) (*Runner, error) {
	p, err := domain.KindProject.Create(name, value)
	if err != nil {
		return r, err
	}
	return r.Declare(p), nil
}

// WithPropertyValues declares a single project property holding several values joined by
// domain.ValueDelimiter. A value containing the delimiter is rejected.
func (r *Runner) WithPropertyValues(name string, values ...string) (*Runner, error) {
	p, err := domain.NewMultiValueProperty(domain.KindProject, name, values...)
	if err != nil {
		return r, err
	}
	return r.Declare(p), nil
}

// Declare replaces the snapshot with props and applies it to the arguments.
func (r *Runner) Declare(props ...domain.Property) *Runner {
	r.snapshot = domain.NewSnapshot(props...)
	return r.WithSavedProperties()
}

// WithSavedProperties appends the options of the current snapshot to the invoker's arguments.
// Existing arguments are kept as they are, so calling it twice appends the options twice.
func (r *Runner) WithSavedProperties() *Runner {
	current := r.invoker.Arguments()
	args := make([]string, 0, len(current)+r.snapshot.Len())
	args = append(args, current...)
	args = append(args, r.snapshot.Options()...)
	r.invoker = r.invoker.WithArguments(args)
	return r
}

// Build runs the build and expects it to succeed.
func (r *Runner) Build(ctx context.Context) (*domain.BuildResult, error) {
	b, ok := r.invoker.(ports.Builder)
	if !ok {
		return nil, domain.ErrInvokerCannotBuild
	}
	return b.Build(ctx)
}

// BuildAndFail runs the build and expects it to fail.
func (r *Runner) BuildAndFail(ctx context.Context) (*domain.BuildResult, error) {
	b, ok := r.invoker.(ports.Builder)
	if !ok {
		return nil, domain.ErrInvokerCannotBuild
	}
	return b.BuildAndFail(ctx)
}
