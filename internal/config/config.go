// Package config loads the optional REPL configuration file
// (.golisprc.yaml), grounded on the teacher's snapshot-tooling dependency
// on goccy/go-yaml -- promoted here to a direct, exercised import rather
// than a transitive one.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the REPL's tunable settings. The zero value is not the
// default configuration; use Default.
type Config struct {
	Prompt     string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Echo       bool   `yaml:"echo"`
}

// Default returns the configuration used when no .golisprc.yaml is found.
func Default() Config {
	return Config{Prompt: "user> ", HistoryFile: "", Echo: true}
}

// Load reads .golisprc.yaml from $HOME, then from dir, merging found
// fields over the defaults so that the file in dir wins. A missing file
// at either location is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	if home, err := os.UserHomeDir(); err == nil {
		if err := mergeFile(&cfg, filepath.Join(home, ".golisprc.yaml")); err != nil {
			return cfg, err
		}
	}
	if err := mergeFile(&cfg, filepath.Join(dir, ".golisprc.yaml")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
