package prover

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", "show_meta_variables: true\nworkers: 3\n")
	config, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.ShowMetaVariables = true
	want.Workers = 3
	assert.Equal(t, want, config)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadConfig(writeFile(t, dir, "unknown.yaml", "rules: {}\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "broken.yaml", "workers: [1\n"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(writeFile(t, t.TempDir(), "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigPath)
	config := Config{Name: "custom", History: "/tmp/history", Workers: 2}
	require.NoError(t, WriteConfig(path, config))

	d, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(d), "show_meta_variables: false")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestConfigResolution(t *testing.T) {
	t.Parallel()

	assert.Equal(t, runtime.NumCPU(), Config{}.WorkerCount())
	assert.Equal(t, 4, Config{Workers: 4}.WorkerCount())

	assert.Equal(t, "", Config{}.HistoryPath())
	assert.Equal(t, "/tmp/h", Config{History: "/tmp/h"}.HistoryPath())

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, ".fol-prover_history"), DefaultConfig().HistoryPath())
	}
}
