package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the root configuration for ponto, stored in config.json under
// the user config directory. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// DataDir overrides where the profile database lives. Empty selects
	// the default data directory.
	DataDir string `json:"data_dir"`
	// WeekStart is the first day of the work week: "sunday" or "monday".
	WeekStart string `json:"week_start"`
}

// DefaultWeekStart matches the locale convention of the original app.
const DefaultWeekStart = "sunday"

func defaultConfig() Config {
	return Config{WeekStart: DefaultWeekStart}
}

// WeekStartDay maps the configured week start onto a weekday.
func (c Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(c.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// configTemplate is the annotated config written on first run. Lines whose
// trimmed content starts with // are stripped before JSON parsing, allowing
// human-readable documentation inside the file.
const configTemplate = `// ponto configuration
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise ponto behaviour.
{
  // Directory holding the profile database. Empty uses the default
  // ($XDG_DATA_HOME/ponto or ~/.local/share/ponto).
  "data_dir": "",

  // First day of the work week for the weekly totals: "sunday" or "monday".
  "week_start": "sunday"
}
`

// configFilePath returns the path to the config file, honoring
// XDG_CONFIG_HOME and falling back to ~/.config/ponto/config.json.
func configFilePath() (string, error) {
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return filepath.Join(configDir, "ponto", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ponto", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file, creating it with annotated defaults on first
// run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.WeekStart == "" {
		cfg.WeekStart = DefaultWeekStart
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
