package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jute/internal/adapters/gradle"
	"go.trai.ch/jute/internal/adapters/telemetry"
	"go.trai.ch/jute/internal/app"
	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader    *mocks.MockConfigLoader
	executor  *mocks.MockExecutor
	classpath *mocks.MockClasspathResolver
	store     *mocks.MockResultStore
	logger    *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		classpath: mocks.NewMockClasspathResolver(ctrl),
		store:     mocks.NewMockResultStore(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	tel := telemetry.NewNoOp()
	application := app.New(
		m.loader,
		gradle.NewFactory(m.executor, m.classpath, tel),
		m.classpath,
		m.store,
		tel,
		m.logger,
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, m.logger), func() { _ = application.Close() }, nil
	}, m
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "jute version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command errors are logged and yield exit code 1.
func TestRun_ExecutionError(t *testing.T) {
	provider, m := newProvider(t)

	m.loader.EXPECT().Load("/missing/jute.yaml").Return(nil, domain.ErrConfigNotFound)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	exitCode := run(context.Background(), []string{"run", "--config", "/missing/jute.yaml"},
		new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_Options verifies that options are applied to the app before execution.
func TestRun_Options(t *testing.T) {
	provider, m := newProvider(t)
	workDir := t.TempDir()

	m.loader.EXPECT().Discover(workDir).Return("", domain.ErrConfigNotFound)
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"args", "--project-dir", ".", "-P", "foo=bar", "--", "build"},
		stdout, new(bytes.Buffer), provider, func(a *app.App) { a.WithWorkDir(workDir) })

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "build\n-Pfoo=bar\n", stdout.String())
}
