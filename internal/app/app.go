// Package app implements the application layer for jute.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/jute/internal/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	harnesses    ports.HarnessFactory
	classpath    ports.ClasspathResolver
	store        ports.ResultStore
	telemetry    ports.Telemetry
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	harnesses ports.HarnessFactory,
	classpath ports.ClasspathResolver,
	store ports.ResultStore,
	tel ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		harnesses:    harnesses,
		classpath:    classpath,
		store:        store,
		telemetry:    tel,
		logger:       log,
	}
}

// WithWorkDir sets the directory config discovery starts from.
// The process working directory is used when it is empty.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// RunOptions configuration for the Run and Arguments methods.
// Fields override the values of the config file.
type RunOptions struct {
	ConfigPath string
	ProjectDir string
	BuildFile  string
	BuildTool  string
	// Arguments are appended to the configured arguments.
	Arguments []string
	// Properties and SystemProperties hold name=value assignments.
	Properties       []string
	SystemProperties []string
	DefaultClasspath bool
	ExpectFailure    bool
	// Output receives the build tool's output as it runs.
	Output io.Writer
}

// Run executes the configured build once and records its result.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.BuildResult, error) {
	r, cfg, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}

	args := r.Invoker().Arguments()
	fingerprint := domain.Fingerprint(cfg.ProjectDir, args)
	a.reportPrevious(cfg.Root, fingerprint)

	journal := filepath.Join(cfg.Root, domain.StateDirName, domain.JournalFileName)
	if err := a.telemetry.Persist(journal); err != nil {
		a.logger.Warn("could not record build progress: " + err.Error())
	}

	snapshot := domain.NewSnapshot(r.Properties()...)
	a.logger.Debug(fmt.Sprintf("declared %d properties (snapshot %s)", snapshot.Len(), snapshot.Fingerprint()))
	a.logger.Info(fmt.Sprintf("running build in %s: %s", cfg.ProjectDir, strings.Join(args, " ")))

	var result *domain.BuildResult
	if opts.ExpectFailure {
		result, err = r.BuildAndFail(ctx)
	} else {
		result, err = r.Build(ctx)
	}

	if result != nil {
		if putErr := a.store.Put(cfg.Root, *result); putErr != nil {
			a.logger.Warn("could not record build result: " + putErr.Error())
		}
		a.logger.Info(fmt.Sprintf("build finished with exit code %d in %s",
			result.ExitCode, result.Duration.Round(time.Millisecond)))
	}

	return result, err
}

// Arguments returns the argument list a run with opts would pass to the build tool.
func (a *App) Arguments(_ context.Context, opts RunOptions) ([]string, error) {
	r, _, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}
	return r.Invoker().Arguments(), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the state directory next to the config file.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath, true)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Root, domain.StateDirName)
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove state directory"), "path", path)
	}
	a.logger.Info(fmt.Sprintf("removed %s", path))
	return nil
}

// Close flushes the progress journal.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// ConfigureLogging switches the logger to JSON output or debug level when it supports it.
func (a *App) ConfigureLogging(jsonOutput, verbose bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(jsonOutput)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// prepare builds a runner from the config file and the overrides in opts.
//
//nolint:cyclop // orchestration function
func (a *App) prepare(opts RunOptions) (*runner.Runner, *domain.RunConfig, error) {
	// 1. Load the configuration
	cfg, err := a.loadConfig(opts.ConfigPath, opts.ProjectDir != "" || opts.BuildFile != "")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Apply overrides
	if err := a.applyOverrides(cfg, opts); err != nil {
		return nil, nil, err
	}

	overrides, err := parseAssignments(opts.Properties, opts.SystemProperties)
	if err != nil {
		return nil, nil, err
	}
	cfg.Properties = mergeProperties(cfg.Properties, overrides)

	// 3. Configure the harness
	harness := a.harnesses.NewHarness(ports.HarnessOptions{
		BuildTool:   cfg.BuildTool,
		Environment: cfg.Environment,
		Output:      opts.Output,
	})
	harness.WithArguments(cfg.Arguments)

	if len(cfg.PluginClasspath) > 0 {
		if cfg.DefaultClasspath {
			a.logger.Warn("'pluginClasspath' is ignored because the default classpath is requested")
		} else {
			entries, err := a.classpath.Resolve(cfg.PluginClasspath, cfg.Root)
			if err != nil {
				return nil, nil, zerr.Wrap(err, "failed to resolve plugin classpath")
			}
			harness.WithPluginClasspath(entries)
		}
	}

	// 4. Bind the runner and declare the properties
	var r *runner.Runner
	if cfg.BuildFile != "" {
		r, err = runner.Create(harness, cfg.BuildFile, cfg.DefaultClasspath)
	} else {
		r, err = runner.CreateInDir(harness, cfg.ProjectDir, cfg.DefaultClasspath)
	}
	if err != nil {
		return nil, nil, err
	}

	return r.Declare(cfg.Properties...), cfg, nil
}

// loadConfig loads the given config file or discovers one from the work directory.
// With optional set, a missing config yields an empty config rooted at the work directory.
func (a *App) loadConfig(path string, optional bool) (*domain.RunConfig, error) {
	if path != "" {
		return a.configLoader.Load(path)
	}

	cwd, err := a.cwd()
	if err != nil {
		return nil, err
	}

	found, err := a.configLoader.Discover(cwd)
	if err != nil {
		if optional && errors.Is(err, domain.ErrConfigNotFound) {
			a.logger.Debug(fmt.Sprintf("no %s found, using flags only", domain.ConfigFileName))
			return &domain.RunConfig{Root: cwd, ProjectDir: cwd}, nil
		}
		return nil, err
	}

	return a.configLoader.Load(found)
}

func (a *App) applyOverrides(cfg *domain.RunConfig, opts RunOptions) error {
	cwd, err := a.cwd()
	if err != nil {
		return err
	}

	if opts.ProjectDir != "" {
		cfg.ProjectDir = absFrom(cwd, opts.ProjectDir)
		cfg.BuildFile = ""
	}
	if opts.BuildFile != "" {
		cfg.BuildFile = absFrom(cwd, opts.BuildFile)
		cfg.ProjectDir = filepath.Dir(cfg.BuildFile)
	}
	if opts.BuildTool != "" {
		cfg.BuildTool = opts.BuildTool
		if strings.ContainsRune(opts.BuildTool, '/') {
			cfg.BuildTool = absFrom(cwd, opts.BuildTool)
		}
	}
	if opts.DefaultClasspath {
		cfg.DefaultClasspath = true
	}
	if len(opts.Arguments) > 0 {
		args := make([]string, 0, len(cfg.Arguments)+len(opts.Arguments))
		args = append(args, cfg.Arguments...)
		cfg.Arguments = append(args, opts.Arguments...)
	}

	return nil
}

func (a *App) reportPrevious(root, fingerprint string) {
	prev, err := a.store.Get(root, fingerprint)
	if err != nil {
		a.logger.Warn("could not read previous build results: " + err.Error())
		return
	}
	if prev == nil {
		return
	}

	outcome := "succeeded"
	if !prev.Success {
		outcome = fmt.Sprintf("failed with exit code %d", prev.ExitCode)
	}
	a.logger.Info(fmt.Sprintf("previous run of this invocation %s at %s",
		outcome, prev.Timestamp.Format(time.RFC3339)))
}

func (a *App) cwd() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	return cwd, nil
}

func absFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func parseAssignments(project, system []string) ([]domain.Property, error) {
	props := make([]domain.Property, 0, len(project)+len(system))
	for _, assignment := range project {
		p, err := domain.ParseAssignment(domain.KindProject, assignment)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	for _, assignment := range system {
		p, err := domain.ParseAssignment(domain.KindSystem, assignment)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// mergeProperties replaces configured properties of the same kind and name in place
// and appends the remaining overrides in order.
func mergeProperties(configured, overrides []domain.Property) []domain.Property {
	merged := make([]domain.Property, 0, len(configured)+len(overrides))
	merged = append(merged, configured...)

	for _, o := range overrides {
		replaced := false
		for i, p := range merged {
			if p.Kind() == o.Kind() && p.Name() == o.Name() {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}
	return merged
}
