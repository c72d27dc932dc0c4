package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertDoza/fol-prover/internal/logic"
	"github.com/RobertDoza/fol-prover/prover"
)

// These tests share the package-level flag variables and must not run in
// parallel.

func TestReadFormula(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formula.txt")
	require.NoError(t, os.WriteFile(path, []byte("A → A\n"), 0o644))

	want := logic.Implies(logic.Atom("A"), logic.Atom("A"))

	formulaText = ""
	f, err := readFormula([]string{path})
	require.NoError(t, err)
	assert.True(t, want.Equal(f))

	formulaText = "A -> A"
	defer func() { formulaText = "" }()
	f, err = readFormula(nil)
	require.NoError(t, err)
	assert.True(t, want.Equal(f))

	_, err = readFormula([]string{path})
	assert.Error(t, err)

	formulaText = ""
	_, err = readFormula(nil)
	assert.Error(t, err)
}

func TestInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	rootCmd.SetArgs([]string{"init", "--config", path})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, Execute())

	loaded, err := prover.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, prover.DefaultConfig(), loaded)
}

func TestCheckCommandOnPassingScripts(t *testing.T) {
	dir := t.TempDir()
	script := "formula: A → A\nsteps: [apply rule impI, apply assumption, done]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "id"+prover.ScriptExtension), []byte(script), 0o644))

	rootCmd.SetArgs([]string{"check", "--config", filepath.Join(dir, "none.yaml"), dir})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, Execute())
}
