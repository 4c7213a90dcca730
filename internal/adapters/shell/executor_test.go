package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jute/internal/adapters/shell"
	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	executor := shell.NewExecutor(nil)

	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "line1\nline2\n", stdout.String())
}

func TestExecutor_Execute_SeparatesStreams(t *testing.T) {
	executor := shell.NewExecutor(nil)

	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "echo out; echo err 1>&2"},
		Dir:  t.TempDir(),
	}

	var stdout, stderr bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_LogsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Debug("part1part2").Times(1)
	mockLogger.EXPECT().Debug("tail").Times(1)

	executor := shell.NewExecutor(mockLogger)
	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2; printf tail"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_Environment(t *testing.T) {
	executor := shell.NewExecutor(nil)

	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "echo $MY_TEST_VAR"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"MY_TEST_VAR": "test-value-123"},
	}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "test-value-123")
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	executor := shell.NewExecutor(nil)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0o600))

	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "cat marker.txt"},
		Dir:  dir,
	}

	var stdout bytes.Buffer
	require.NoError(t, executor.Execute(context.Background(), cmd, &stdout, io.Discard))
	assert.Equal(t, "here", stdout.String())
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	executor := shell.NewExecutor(nil)

	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "exit 42"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 42, exitErr.ExitCode())
}

func TestExecutor_Execute_UnknownCommand(t *testing.T) {
	executor := shell.NewExecutor(nil)

	cmd := &domain.Command{
		Path: "nonexistent-command-xyz123",
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrBuildToolNotFound)
	assert.NotErrorIs(t, err, domain.ErrCommandFailed)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor(nil)

	err := executor.Execute(context.Background(), &domain.Command{}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrBuildToolNotFound)
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	executor := shell.NewExecutor(nil)

	dir := t.TempDir()
	script := filepath.Join(dir, "tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\"\n"), 0o700))

	cmd := &domain.Command{
		Path: script,
		Args: []string{"build", "-Pfoo=bar"},
		Dir:  dir,
	}

	var stdout bytes.Buffer
	require.NoError(t, executor.Execute(context.Background(), cmd, &stdout, io.Discard))
	assert.Equal(t, "build -Pfoo=bar\n", stdout.String())
}

func TestExecutor_Execute_CommandPath(t *testing.T) {
	executor := shell.NewExecutor(nil)

	binDir := t.TempDir()
	name := "my-build-tool"
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\necho success\n"), 0o700))

	cmd := &domain.Command{
		Path: name,
		Dir:  binDir,
		Env:  map[string]string{"PATH": binDir},
	}

	var stdout bytes.Buffer
	require.NoError(t, executor.Execute(context.Background(), cmd, &stdout, io.Discard))
	assert.Equal(t, "success\n", stdout.String())
}

func TestExecutor_Execute_ContextCanceled(t *testing.T) {
	executor := shell.NewExecutor(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := &domain.Command{
		Path: "sh",
		Args: []string{"-c", "sleep 5"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(ctx, cmd, io.Discard, io.Discard)
	require.Error(t, err)
}
