// Package config loads sarifhtml's configuration file and resolves it
// against CLI flags and environment variables.
//
// Priority order, highest wins:
//  1. CLI flags (--theme, --no-color, --summary)
//  2. Environment (SARIFHTML_THEME, SARIFHTML_NO_COLOR, NO_COLOR, CI)
//  3. Config file (.sarifhtml.yaml locally, then the XDG config dir)
//  4. Defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultTheme names the HTML palette used when nothing else chooses.
const DefaultTheme = "light"

// CliFlags holds command-line flag values. The *Set booleans record
// whether the user passed the flag at all, so an explicit false can
// override a config-file true.
type CliFlags struct {
	Theme   string
	NoColor bool
	Summary bool

	ThemeSet   bool
	NoColorSet bool
	SummarySet bool
}

// AppConfig is the file-backed configuration from .sarifhtml.yaml.
type AppConfig struct {
	Theme   string `yaml:"theme"`
	NoColor bool   `yaml:"no_color"`
	Summary bool   `yaml:"summary"`
}

// Resolved is the final configuration, with per-setting provenance for
// debugging: "cli", "env", "file", or "default".
type Resolved struct {
	Theme   string
	NoColor bool
	Summary bool

	ThemeSource   string
	NoColorSource string
	SummarySource string
}

// Resolve merges all configuration sources in priority order.
func Resolve(flags CliFlags) Resolved {
	resolved := Resolved{
		Theme:         DefaultTheme,
		ThemeSource:   "default",
		NoColorSource: "default",
		SummarySource: "default",
	}

	if fileCfg, ok := loadFile(); ok {
		if fileCfg.Theme != "" {
			resolved.Theme = fileCfg.Theme
			resolved.ThemeSource = "file"
		}
		if fileCfg.NoColor {
			resolved.NoColor = true
			resolved.NoColorSource = "file"
		}
		if fileCfg.Summary {
			resolved.Summary = true
			resolved.SummarySource = "file"
		}
	}

	if theme := os.Getenv("SARIFHTML_THEME"); theme != "" {
		resolved.Theme = theme
		resolved.ThemeSource = "env"
	}
	if noColor := getEnvBool("SARIFHTML_NO_COLOR", "NO_COLOR", "CI"); noColor != nil {
		resolved.NoColor = *noColor
		resolved.NoColorSource = "env"
	}

	if flags.ThemeSet {
		resolved.Theme = flags.Theme
		resolved.ThemeSource = "cli"
	}
	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
		resolved.NoColorSource = "cli"
	}
	if flags.SummarySet {
		resolved.Summary = flags.Summary
		resolved.SummarySource = "cli"
	}

	return resolved
}

// loadFile reads the config file, if one exists. A missing file is
// normal; a malformed one prints a warning and falls back to defaults
// rather than failing the run.
func loadFile() (*AppConfig, bool) {
	path := configPath()
	if path == "" {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return nil, false
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error parsing config file %s: %v. Using defaults.\n", path, err)
		return nil, false
	}
	return &cfg, true
}

// configPath finds the config file: local directory first, then the
// XDG user config dir.
func configPath() string {
	localPath := ".sarifhtml.yaml"
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}

	xdgPath := filepath.Join(configHome, "sarifhtml", "config.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// getEnvBool returns the first parseable boolean among the named
// environment variables, or nil when none is set.
func getEnvBool(names ...string) *bool {
	for _, name := range names {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if parsed, err := strconv.ParseBool(val); err == nil {
			return &parsed
		}
	}
	return nil
}
