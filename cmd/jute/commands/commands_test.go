package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jute/cmd/jute/commands"
	"go.trai.ch/jute/internal/app"
	"go.trai.ch/jute/internal/core/domain"
)

type mockApp struct {
	runFunc       func(ctx context.Context, opts app.RunOptions) (*domain.BuildResult, error)
	argumentsFunc func(ctx context.Context, opts app.RunOptions) ([]string, error)
	cleanFunc     func(ctx context.Context, opts app.CleanOptions) error

	logJSON bool
	verbose bool
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (*domain.BuildResult, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return &domain.BuildResult{Success: true}, nil
}

func (m *mockApp) Arguments(ctx context.Context, opts app.RunOptions) ([]string, error) {
	if m.argumentsFunc != nil {
		return m.argumentsFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ConfigureLogging(jsonOutput, verbose bool) {
	m.logJSON = jsonOutput
	m.verbose = verbose
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.BuildResult, error) {
				captured = opts
				called = true
				return &domain.BuildResult{Success: true}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, out)
		cli.SetArgs([]string{
			"run",
			"--config", "ci/jute.yaml",
			"--project-dir", "fixtures/simple",
			"--tool", "./gradlew",
			"-P", "foo=bar",
			"--property", "list=x,y",
			"-D", "org.gradle.caching=true",
			"--default-classpath",
			"--expect-failure",
			"--verbose",
			"--", "check", "--stacktrace",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "ci/jute.yaml", captured.ConfigPath)
		assert.Equal(t, "fixtures/simple", captured.ProjectDir)
		assert.Equal(t, "./gradlew", captured.BuildTool)
		assert.Equal(t, []string{"foo=bar", "list=x,y"}, captured.Properties)
		assert.Equal(t, []string{"org.gradle.caching=true"}, captured.SystemProperties)
		assert.Equal(t, []string{"check", "--stacktrace"}, captured.Arguments)
		assert.True(t, captured.DefaultClasspath)
		assert.True(t, captured.ExpectFailure)
		assert.Same(t, out, captured.Output)
		assert.True(t, mock.verbose)
		assert.False(t, mock.logJSON)
	})

	t.Run("quiet drops the output writer", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.BuildResult, error) {
				captured = opts
				return &domain.BuildResult{Success: true}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--quiet", "--build-file", "build.gradle"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Nil(t, captured.Output)
		assert.Equal(t, "build.gradle", captured.BuildFile)
		assert.False(t, captured.ExpectFailure)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.BuildResult, error) {
				return &domain.BuildResult{ExitCode: 1}, domain.ErrUnexpectedBuildFailure
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrUnexpectedBuildFailure)
	})
}

func TestCommands_Args(t *testing.T) {
	t.Run("prints one argument per line", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			argumentsFunc: func(_ context.Context, opts app.RunOptions) ([]string, error) {
				captured = opts
				return []string{"--stacktrace", "build", "-Pfoo=bar", "-Plist=x,y,z", "-Dorg.gradle.caching=true"}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"args", "--log-json", "-P", "foo=bar", "--", "build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"build"}, captured.Arguments)
		assert.Equal(t, []string{"foo=bar"}, captured.Properties)
		assert.True(t, mock.logJSON)

		g := goldie.New(t)
		g.Assert(t, "args", out.Bytes())
	})

	t.Run("prints nothing on error", func(t *testing.T) {
		mock := &mockApp{
			argumentsFunc: func(_ context.Context, _ app.RunOptions) ([]string, error) {
				return nil, domain.ErrInvalidProperty
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"args", "-P", "=oops"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidProperty)
		assert.Empty(t, out.String())
	})
}

func TestCommands_Clean(t *testing.T) {
	t.Run("passes the config path", func(t *testing.T) {
		var captured app.CleanOptions
		mock := &mockApp{
			cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean", "-c", "jute.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "jute.yaml", captured.ConfigPath)
	})

	t.Run("returns error on clean failure", func(t *testing.T) {
		mock := &mockApp{
			cleanFunc: func(_ context.Context, _ app.CleanOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		mock := &mockApp{
			cleanFunc: func(_ context.Context, _ app.CleanOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		cli := commands.New(&mockApp{})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs(args)

		require.NoError(t, cli.Execute(context.Background()))

		g := goldie.New(t)
		g.Assert(t, "version", out.Bytes())
	}
}
