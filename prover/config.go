package prover

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the file written by "fol-prover init".
const DefaultConfigPath = ".fol-prover.yaml"

// Config holds the user settings read from the configuration file.
type Config struct {
	Name string `yaml:"name"`
	// Color enables colored output.
	Color bool `yaml:"color"`
	// History is the liner history file of interactive sessions. A leading
	// ~ expands to the home directory.
	History           string `yaml:"history"`
	ShowMetaVariables bool   `yaml:"show_meta_variables"`
	// Workers bounds the number of scripts checked at once; 0 means one
	// per CPU.
	Workers int `yaml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Name:    "fol-prover",
		Color:   true,
		History: "~/.fol-prover_history",
	}
}

// LoadConfig reads the configuration file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig stores config at path.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// WorkerCount resolves Workers.
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// HistoryPath resolves History, or returns "" when history is disabled.
func (c Config) HistoryPath() string {
	if c.History == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(c.History, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, rest)
	}
	return c.History
}
