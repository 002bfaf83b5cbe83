package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wetmore/go-mdsite/internal/config"
)

// envPrefix starts every environment variable read by mdsite.
const envPrefix = "MDSITE_"

// perPageUnset marks MDSITE_PER_PAGE as absent or invalid.
// 0 is a valid value (single page), so a negative sentinel is used.
const perPageUnset = -1

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MDSITE_CONFIG: config file name or path
	ContentDir     string // MDSITE_CONTENT_DIR: markdown root
	PostsDir       string // MDSITE_POSTS_DIR: posts directory, relative to content dir
	Pattern        string // MDSITE_PATTERN: glob for markdown files
	PerPage        int    // MDSITE_PER_PAGE: posts per listing page
	DateFormat     string // MDSITE_DATE_FORMAT: display date format
	HighlightStyle string // MDSITE_HIGHLIGHT_STYLE: chroma style name
	OutputDir      string // MDSITE_OUTPUT_DIR: export directory
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":          true,
	"MDSITE_CONTENT_DIR":     true,
	"MDSITE_POSTS_DIR":       true,
	"MDSITE_PATTERN":         true,
	"MDSITE_PER_PAGE":        true,
	"MDSITE_DATE_FORMAT":     true,
	"MDSITE_HIGHLIGHT_STYLE": true,
	"MDSITE_OUTPUT_DIR":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("MDSITE_CONFIG"),
		ContentDir:     getenv("MDSITE_CONTENT_DIR"),
		PostsDir:       getenv("MDSITE_POSTS_DIR"),
		Pattern:        getenv("MDSITE_PATTERN"),
		PerPage:        perPageUnset,
		DateFormat:     getenv("MDSITE_DATE_FORMAT"),
		HighlightStyle: getenv("MDSITE_HIGHLIGHT_STYLE"),
		OutputDir:      getenv("MDSITE_OUTPUT_DIR"),
	}

	// Invalid values are ignored, not errors
	if perPage := getenv("MDSITE_PER_PAGE"); perPage != "" {
		if n, err := strconv.Atoi(perPage); err == nil && n >= 0 {
			cfg.PerPage = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDSITE_* variables.
// Helps catch typos like MDSITE_CONTENTDIR instead of MDSITE_CONTENT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied afterwards,
// giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.PostsDir != "" {
		cfg.Content.PostsDir = env.PostsDir
	}
	if env.Pattern != "" {
		cfg.Content.Pattern = env.Pattern
	}
	if env.PerPage != perPageUnset {
		cfg.Posts.PerPage = env.PerPage
	}
	if env.DateFormat != "" {
		cfg.Dates.Format = env.DateFormat
	}
	if env.HighlightStyle != "" {
		cfg.Highlight.Style = env.HighlightStyle
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
}
