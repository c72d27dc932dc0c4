package prover

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCollectScripts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := writeFile(t, dir, "b"+ScriptExtension, identityScript)
	a := writeFile(t, dir, "nested/a"+ScriptExtension, identityScript)
	writeFile(t, dir, "notes.yaml", "name: not a script\n")
	plain := writeFile(t, dir, "plain.yaml", identityScript)

	files, err := CollectScripts([]string{dir, b, plain})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a, plain}, files)

	_, err = CollectScripts([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestCheckPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "identity"+ScriptExtension, identityScript)
	writeFile(t, dir, "commute"+ScriptExtension, commuteScript)
	writeFile(t, dir, "quantifier"+ScriptExtension, quantifierScript)
	writeFile(t, dir, "unfinished"+ScriptExtension, unfinishedScript)
	writeFile(t, dir, "broken"+ScriptExtension, "formula: A ∧\n")

	config := DefaultConfig()
	config.Workers = 2
	results, err := CheckPaths(context.Background(), zap.NewNop(), config, []string{dir}, CheckOptions{})
	require.NoError(t, err)
	require.Len(t, results, 5)

	byName := make(map[string]ScriptResult)
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	assert.True(t, byName["identity"+ScriptExtension].Passed)
	assert.True(t, byName["commute"+ScriptExtension].Passed)
	assert.True(t, byName["quantifier"+ScriptExtension].Passed)

	unfinished := byName["unfinished"+ScriptExtension]
	assert.False(t, unfinished.Passed)
	assert.Equal(t, "unfinished", unfinished.Name)
	assert.Equal(t, 1, unfinished.OpenGoals)
	assert.Contains(t, unfinished.Error, ErrScriptFailed.Error())

	broken := byName["broken"+ScriptExtension]
	assert.False(t, broken.Passed)
	assert.Contains(t, broken.Error, "syntax error")

	assert.Equal(t, 2, Failed(results))
}

func TestCheckPathsKeepsOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		writeFile(t, dir, name+ScriptExtension, identityScript)
	}

	results, err := CheckPaths(context.Background(), nil, Config{Workers: 3}, []string{dir}, CheckOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, filepath.Join(dir, name+ScriptExtension), results[i].Path)
		assert.True(t, results[i].Passed)
	}
}

func TestCheckPathsCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "identity"+ScriptExtension, identityScript)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CheckPaths(ctx, nil, DefaultConfig(), []string{dir}, CheckOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckPathsMissing(t *testing.T) {
	t.Parallel()

	_, err := CheckPaths(context.Background(), nil, DefaultConfig(), []string{filepath.Join(t.TempDir(), "nope")}, CheckOptions{})
	assert.Error(t, err)
}
