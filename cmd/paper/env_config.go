package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-paper"
)

const envPrefix = "PAPER_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring a config file.
type envConfig struct {
	Theme          string // PAPER_THEME: site theme name
	HighlightTheme string // PAPER_HIGHLIGHT_THEME: code highlight theme name
	Output         string // PAPER_OUTPUT: site output directory
	Staging        string // PAPER_STAGING: staging directory
	AssetPath      string // PAPER_ASSET_PATH: custom asset directory
}

// knownEnvVars lists valid PAPER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PAPER_THEME":           true,
	"PAPER_HIGHLIGHT_THEME": true,
	"PAPER_OUTPUT":          true,
	"PAPER_STAGING":         true,
	"PAPER_ASSET_PATH":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		Theme:          getenv("PAPER_THEME"),
		HighlightTheme: getenv("PAPER_HIGHLIGHT_THEME"),
		Output:         getenv("PAPER_OUTPUT"),
		Staging:        getenv("PAPER_STAGING"),
		AssetPath:      getenv("PAPER_ASSET_PATH"),
	}
}

// warnUnknownEnvVars prints warnings for unrecognized PAPER_* variables.
// Helps catch typos like PAPER_THEM instead of PAPER_THEME.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment values on top of the file config.
// Flags are applied afterwards, giving: flags > env > file > defaults.
func applyEnvConfig(env *envConfig, cfg *paper.Config) {
	if env.Theme != "" {
		cfg.Theme = env.Theme
	}
	if env.HighlightTheme != "" {
		cfg.HighlightTheme = env.HighlightTheme
	}
}
