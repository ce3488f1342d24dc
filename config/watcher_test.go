package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, file string, capacity int) {
	t.Helper()

	data := fmt.Sprintf("defaults:\n  capacity: %d\n", capacity)
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))
}

func TestWatcherLoadsInitialConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "deploy.yaml")
	writeConfigFile(t, file, 42)

	w, err := NewWatcher(file, NewLoader())
	require.NoError(t, err)
	defer w.Stop()

	assert.Equal(t, 42, w.GetConfig().Defaults.Capacity)
}

func TestWatcherRejectsUnsupportedFormat(t *testing.T) {
	_, err := NewWatcher("deploy.toml", NewLoader())
	assert.Error(t, err)
}

func TestWatcherManualReload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "deploy.yaml")
	writeConfigFile(t, file, 42)

	w, err := NewWatcher(file, NewLoader())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan *Config, 1)
	w.OnConfigChange(func(oldConfig, newConfig *Config) {
		changed <- newConfig
	})

	writeConfigFile(t, file, 64)
	require.NoError(t, w.Reload())

	select {
	case cfg := <-changed:
		assert.Equal(t, 64, cfg.Defaults.Capacity)
	case <-time.After(2 * time.Second):
		t.Fatal("config change callback not invoked")
	}

	assert.Equal(t, 64, w.GetConfig().Defaults.Capacity)
}

func TestWatcherDetectsFileChanges(t *testing.T) {
	file := filepath.Join(t.TempDir(), "deploy.yaml")
	writeConfigFile(t, file, 42)

	w, err := NewWatcher(file, NewLoader())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	writeConfigFile(t, file, 99)

	// Reload is debounced, give it room.
	require.Eventually(t, func() bool {
		return w.GetConfig().Defaults.Capacity == 99
	}, 5*time.Second, 50*time.Millisecond)
}

func TestFileProviderLoadAndWatchLifecycle(t *testing.T) {
	file := filepath.Join(t.TempDir(), "deploy.yaml")
	writeConfigFile(t, file, 42)

	provider, err := NewFileProvider(file)
	require.NoError(t, err)
	defer provider.Close()

	cfg, err := provider.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Defaults.Capacity)
}
