// Package gradle implements the build harness that runs Gradle builds under test.
package gradle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInvoker = (*Harness)(nil)

// Harness runs the build tool against a project directory.
// Configuration methods mutate the harness and return it.
type Harness struct {
	executor  ports.Executor
	classpath ports.ClasspathResolver
	telemetry ports.Telemetry

	tool            string
	env             map[string]string
	output          io.Writer
	projectDir      string
	arguments       []string
	pluginClasspath []string

	now func() time.Time
}

// NewHarness creates a Harness with an empty argument list.
func NewHarness(
	executor ports.Executor,
	classpath ports.ClasspathResolver,
	telemetry ports.Telemetry,
	opts ports.HarnessOptions,
) *Harness {
	return &Harness{
		executor:  executor,
		classpath: classpath,
		telemetry: telemetry,
		tool:      opts.BuildTool,
		env:       maps.Clone(opts.Environment),
		output:    opts.Output,
		now:       time.Now,
	}
}

// Arguments returns the current argument list.
func (h *Harness) Arguments() []string {
	return h.arguments
}

// WithArguments replaces the argument list with a copy of args.
func (h *Harness) WithArguments(args []string) ports.Invoker {
	h.arguments = slices.Clone(args)
	return h
}

// ProjectDir returns the directory of the build under test.
func (h *Harness) ProjectDir() string {
	return h.projectDir
}

// WithProjectDir sets the directory of the build under test.
func (h *Harness) WithProjectDir(dir string) ports.ProjectInvoker {
	h.projectDir = dir
	return h
}

// PluginClasspath returns the classpath handed to the build.
func (h *Harness) PluginClasspath() []string {
	return slices.Clone(h.pluginClasspath)
}

// WithPluginClasspath replaces the plugin classpath.
func (h *Harness) WithPluginClasspath(entries []string) ports.ProjectInvoker {
	h.pluginClasspath = slices.Clone(entries)
	return h
}

// WithDefaultPluginClasspath replaces the plugin classpath with the one listed in the
// plugin-under-test metadata of the project directory.
func (h *Harness) WithDefaultPluginClasspath() (ports.ProjectInvoker, error) {
	if h.projectDir == "" {
		return nil, domain.ErrProjectDirRequired
	}
	entries, err := h.classpath.DefaultClasspath(h.projectDir)
	if err != nil {
		return nil, err
	}
	return h.WithPluginClasspath(entries), nil
}

// Build runs the build and expects it to succeed.
func (h *Harness) Build(ctx context.Context) (*domain.BuildResult, error) {
	return h.run(ctx, false)
}

// BuildAndFail runs the build and expects it to fail.
func (h *Harness) BuildAndFail(ctx context.Context) (*domain.BuildResult, error) {
	return h.run(ctx, true)
}

// Command returns the process invocation for the current configuration.
func (h *Harness) Command() *domain.Command {
	env := maps.Clone(h.env)
	if env == nil {
		env = make(map[string]string)
	}
	if len(h.pluginClasspath) > 0 {
		env[domain.EnvPluginClasspath] = strings.Join(h.pluginClasspath, string(os.PathListSeparator))
	}

	return &domain.Command{
		Path: h.resolveTool(),
		Args: slices.Clone(h.arguments),
		Dir:  h.projectDir,
		Env:  env,
	}
}

func (h *Harness) run(ctx context.Context, expectFailure bool) (*domain.BuildResult, error) {
	if h.projectDir == "" {
		return nil, domain.ErrProjectDirRequired
	}

	cmd := h.Command()
	name := strings.TrimSpace(filepath.Base(cmd.Path) + " " + strings.Join(cmd.Args, " "))
	ctx, vertex := h.telemetry.Record(ctx, name)

	var out lockedBuffer
	stdout := []io.Writer{&out, vertex.Stdout()}
	stderr := []io.Writer{&out, vertex.Stderr()}
	if h.output != nil {
		forward := &lockedWriter{w: h.output}
		stdout = append(stdout, forward)
		stderr = append(stderr, forward)
	}

	start := h.now()
	err := h.executor.Execute(ctx, cmd, io.MultiWriter(stdout...), io.MultiWriter(stderr...))

	result := &domain.BuildResult{
		Fingerprint: domain.Fingerprint(cmd.Dir, cmd.Args),
		ProjectDir:  cmd.Dir,
		Arguments:   cmd.Args,
		Success:     err == nil,
		Duration:    h.now().Sub(start),
		Timestamp:   start,
		Output:      out.String(),
	}

	if err != nil && !errors.Is(err, domain.ErrCommandFailed) {
		vertex.Complete(err)
		return nil, zerr.With(errors.Join(domain.ErrBuildExecutionFailed, err), "project_dir", cmd.Dir)
	}
	if err != nil {
		result.ExitCode = exitCode(err)
	}

	switch {
	case !expectFailure && !result.Success:
		err = zerr.With(zerr.With(zerr.Wrap(domain.ErrUnexpectedBuildFailure, name),
			"exit_code", result.ExitCode), "project_dir", cmd.Dir)
	case expectFailure && result.Success:
		err = zerr.With(zerr.Wrap(domain.ErrUnexpectedBuildSuccess, name), "project_dir", cmd.Dir)
	default:
		err = nil
	}

	vertex.Complete(err)
	return result, err
}

// resolveTool picks the explicit tool, then the project's wrapper script, then the default tool.
func (h *Harness) resolveTool() string {
	if h.tool != "" {
		return h.tool
	}
	wrapper := filepath.Join(h.projectDir, domain.WrapperScriptName)
	if info, err := os.Stat(wrapper); err == nil && info.Mode().IsRegular() {
		return wrapper
	}
	return domain.DefaultBuildTool
}

// exitCode extracts the process exit status from an execution error, or -1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		md, ok := e.(interface{ Metadata() map[string]any })
		if !ok {
			continue
		}
		if code, ok := md.Metadata()["exit_code"].(int); ok {
			return code
		}
	}
	return -1
}

// lockedWriter serializes writes from the stdout and stderr goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// lockedBuffer collects stdout and stderr, which are written from separate goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
