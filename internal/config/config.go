package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wetmore/go-mdsite/internal/dateutil"
	"github.com/wetmore/go-mdsite/internal/fileutil"
	"github.com/wetmore/go-mdsite/internal/pipeline"
	"github.com/wetmore/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxSiteTitleLength = 200
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxPatternLength   = 256
	MaxStyleLength     = 50 // chroma style names are short
	MaxPerPage         = 1000
)

// Defaults applied by DefaultConfig.
const (
	DefaultContentDir = "markdown"
	DefaultPostsDir   = "posts"
	DefaultPattern    = "*.md"
	DefaultPerPage    = 10
	DefaultOutputDir  = "public/data"
)

// appName names the directory searched under the user config dir.
const appName = "mdsite"

// Config holds all configuration for loading site content.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Posts     PostsConfig     `yaml:"posts"`
	Dates     DatesConfig     `yaml:"dates"`
	Highlight HighlightConfig `yaml:"highlight"`
	Output    OutputConfig    `yaml:"output"`
}

// SiteConfig describes the site as a whole.
type SiteConfig struct {
	Title string `yaml:"title"`
}

// ContentConfig locates markdown sources.
type ContentConfig struct {
	Dir      string `yaml:"dir"`      // Root of all markdown (default: "markdown")
	PostsDir string `yaml:"postsDir"` // Relative to Dir (default: "posts")
	Pattern  string `yaml:"pattern"`  // Glob matched against file names (default: "*.md")
}

// PostsConfig defines post listing options.
type PostsConfig struct {
	PerPage int `yaml:"perPage"` // 0 = single page
}

// DatesConfig defines how front matter dates are displayed.
type DatesConfig struct {
	Format string `yaml:"format"` // Tokens or preset name (empty = no display date)
}

// HighlightConfig defines code highlighting options.
type HighlightConfig struct {
	Style  string `yaml:"style"`  // chroma style (default: "github")
	Inline bool   `yaml:"inline"` // Inline styles instead of CSS classes
}

// OutputConfig defines where exported page data goes.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxSiteTitleLength); err != nil {
		return err
	}

	// Validate content fields
	if err := validateFieldLength("content.dir", c.Content.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.postsDir", c.Content.PostsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.pattern", c.Content.Pattern, MaxPatternLength); err != nil {
		return err
	}
	if c.Content.Pattern != "" && !doublestar.ValidatePattern(c.Content.Pattern) {
		return fmt.Errorf("%w: content.pattern: %q is not a valid glob", ErrInvalidValue, c.Content.Pattern)
	}
	if c.Content.PostsDir != "" {
		if err := fileutil.ValidateID(c.Content.PostsDir); err != nil {
			return fmt.Errorf("%w: content.postsDir: %v", ErrInvalidValue, err)
		}
	}

	if c.Posts.PerPage < 0 || c.Posts.PerPage > MaxPerPage {
		return fmt.Errorf("%w: posts.perPage: must be between 0 and %d, got %d", ErrInvalidValue, MaxPerPage, c.Posts.PerPage)
	}

	if c.Dates.Format != "" {
		if _, err := dateutil.ParseDateFormat(c.Dates.Format); err != nil {
			return fmt.Errorf("%w: dates.format: %v", ErrInvalidValue, err)
		}
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.Highlight.Style != "" && !pipeline.ValidHighlightStyle(c.Highlight.Style) {
		return fmt.Errorf("%w: highlight.style: unknown style %q", ErrInvalidValue, c.Highlight.Style)
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Dir:      DefaultContentDir,
			PostsDir: DefaultPostsDir,
			Pattern:  DefaultPattern,
		},
		Posts:     PostsConfig{PerPage: DefaultPerPage},
		Highlight: HighlightConfig{Style: pipeline.DefaultHighlightStyle},
		Output:    OutputConfig{Dir: DefaultOutputDir},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
