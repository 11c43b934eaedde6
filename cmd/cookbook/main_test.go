package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/adapters/cache"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/adapters/store"
	"go.trai.ch/cookbook/internal/adapters/telemetry"
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/core/ports/mocks"
	"go.trai.ch/cookbook/internal/engine/admission"
	"go.trai.ch/cookbook/internal/engine/expansion"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T, ctrl *gomock.Controller) (*app.Components, *mocks.MockLogger) {
	t.Helper()
	mockLogger := mocks.NewMockLogger(ctrl)
	entries := store.NewMemory(2)
	provider, err := telemetry.NewProvider(config.TelemetrySettings{}, nil)
	require.NoError(t, err)

	application := app.New(
		entries,
		admission.NewValidator(entries),
		expansion.NewResolver(entries, 0),
		expansion.NewAggregator(entries),
		cache.Nop{},
		mocks.NewMockSeedLoader(ctrl),
		mocks.NewMockWatcher(ctrl),
		provider.Tracer(),
		mockLogger,
	)
	return &app.Components{
		App:       application,
		Logger:    mockLogger,
		Settings:  config.DefaultSettings(),
		Telemetry: provider,
	}, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _ := newComponents(t, ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned, "cleanup runs on exit")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, mockLogger := newComponents(t, ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"summary", "Ghost"}, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ConfigFlag verifies that --config reaches the settings loader.
func TestRun_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  address: \":9999\"\n"), 0o600))
	t.Setenv(config.EnvConfigPath, "")

	ctrl := gomock.NewController(t)
	components, _ := newComponents(t, ctrl)

	var seen string
	provider := func(_ context.Context) (*app.Components, func(), error) {
		seen = os.Getenv(config.EnvConfigPath)
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"--config", path, "version"}, io.Discard, provider)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, path, seen)
}

func TestConfigFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"serve"}, want: ""},
		{args: []string{"--config", "a.yaml", "serve"}, want: "a.yaml"},
		{args: []string{"-c", "b.yaml"}, want: "b.yaml"},
		{args: []string{"serve", "--config=c.yaml"}, want: "c.yaml"},
		{args: []string{"-c=d.yaml"}, want: "d.yaml"},
		{args: []string{"parse", "--", "--config", "x"}, want: ""},
		{args: []string{"--config"}, want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, configFlag(tt.args), tt.args)
	}
}
