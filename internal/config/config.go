// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

// Package config loads the driver's optional YAML configuration file (§2
// Ambient Stack "Configuration"), using goccy/go-yaml the way the retrieval
// pack's config-driven tools do. Every field has a zero-config default, so
// running lispy with no --config flag works out of the box.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the driver's tunables (§6.4).
type Config struct {
	// Prompt is shown before reading a new top-level form.
	Prompt string `yaml:"prompt"`
	// ContinuationPrompt is shown while a form spans multiple lines.
	ContinuationPrompt string `yaml:"continuation_prompt"`
	// HistoryFile is where REPL line history is persisted.
	HistoryFile string `yaml:"history_file"`
	// Prelude lists files loaded into the global environment before the
	// REPL starts or a script file runs, in order.
	Prelude []string `yaml:"prelude"`
	// LogLevel is the default logrus level name ("debug", "info", "warn",
	// "error"), overridden by the --log-level flag.
	LogLevel string `yaml:"log_level"`
	// LogJSON selects the logrus JSON formatter instead of the default
	// text formatter.
	LogJSON bool `yaml:"log_json"`
}

// Default returns the configuration used when no config file is loaded
// (neither --config nor ~/.lispyrc.yaml); Load starts from it as well.
func Default() Config {
	return Config{
		Prompt:             "lispy> ",
		ContinuationPrompt: "..... ",
		HistoryFile:        ".lispy_history",
		LogLevel:           "warn",
	}
}

// Load reads and parses the YAML file at path on top of Default(): fields
// absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the default config file location, "~/.lispyrc.yaml",
// consulted when --config is not given. It returns "" if the home directory
// cannot be determined, in which case the caller should fall back to
// Default() without treating that as an error.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lispyrc.yaml")
}
