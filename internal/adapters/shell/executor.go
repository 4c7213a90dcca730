// Package shell provides the process executor used to run the build tool.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor. Output lines are also logged at debug level.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and waits for it to complete.
// Both output streams are copied concurrently so neither pipe can fill up and stall the process.
func (e *Executor) Execute(ctx context.Context, command *domain.Command, stdout, stderr io.Writer) error {
	if command == nil || command.Path == "" {
		return zerr.Wrap(domain.ErrBuildToolNotFound, "empty command")
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	cmdEnv := resolveEnvironment(os.Environ(), command.Env)

	executable := command.Path
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		lp, err := lookPath(executable, cmdEnv)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrBuildToolNotFound, err.Error()), "command", command.Path)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = command.Path
	}
	cmd.Dir = command.Dir
	cmd.Env = cmdEnv

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", command.Path)
	}

	stdoutLog := &logWriter{logger: e.logger}
	stderrLog := &logWriter{logger: e.logger}

	var g errgroup.Group
	g.Go(func() error {
		defer func() { _ = stdoutLog.Close() }()
		_, err := io.Copy(io.MultiWriter(stdoutLog, stdout), outPipe)
		return err
	})
	g.Go(func() error {
		defer func() { _ = stderrLog.Close() }()
		_, err := io.Copy(io.MultiWriter(stderrLog, stderr), errPipe)
		return err
	})
	// All reads must finish before Wait closes the pipes.
	copyErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(errors.Join(domain.ErrCommandFailed, err), "exit_code", exitErr.ExitCode())
		}
		return zerr.Wrap(err, "failed to wait for command")
	}
	if copyErr != nil {
		return zerr.Wrap(copyErr, "failed to read command output")
	}

	return nil
}

// logWriter forwards complete lines to the logger at debug level.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	if w.logger == nil {
		return
	}
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}

// allowListedEnvVars are the system environment variables inherited by the build tool.
// Everything else must come from the command's own environment.
var allowListedEnvVars = map[string]struct{}{
	"HOME":             {},
	"TERM":             {},
	"USER":             {},
	"PATH":             {},
	"TMPDIR":           {},
	"JAVA_HOME":        {},
	"GRADLE_USER_HOME": {},
	"GRADLE_OPTS":      {},
	"JAVA_OPTS":        {},
}

// resolveEnvironment merges the allow-listed system environment with the command environment.
// Command entries win.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := filterSystemEnv(sysEnv)

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

func filterSystemEnv(sysEnv []string) map[string]string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			if _, allowed := allowListedEnvVars[k]; allowed {
				envMap[k] = v
			}
		}
	}
	return envMap
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
