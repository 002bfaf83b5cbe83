package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	mdsite "github.com/wetmore/go-mdsite"
	"github.com/wetmore/go-mdsite/internal/config"
	"github.com/wetmore/go-mdsite/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrWriteOutput = errors.New("failed to write output")
)

// site bundles the resolved configuration and the loader built from it.
type site struct {
	cfg    *config.Config
	loader *mdsite.Loader
}

// resolveConfig builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(f *commonFlags, env *Environment) (*config.Config, error) {
	if !f.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	envCfg := loadEnvConfig(env.Getenv)

	configName := f.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logVerbose(f, env, "Config: %s", configName)
	}

	applyEnvConfig(envCfg, cfg)

	if f.contentDir != "" {
		cfg.Content.Dir = f.contentDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSite resolves configuration and creates the content loader.
func openSite(f *commonFlags, env *Environment) (*site, error) {
	cfg, err := resolveConfig(f, env)
	if err != nil {
		return nil, err
	}

	loader, err := mdsite.NewLoader(
		mdsite.WithContentDir(cfg.Content.Dir),
		mdsite.WithPostsDir(cfg.Content.PostsDir),
		mdsite.WithPattern(cfg.Content.Pattern),
		mdsite.WithDateFormat(cfg.Dates.Format),
		mdsite.WithHighlightStyle(cfg.Highlight.Style),
		mdsite.WithInlineStyles(cfg.Highlight.Inline),
	)
	if err != nil {
		return nil, err
	}

	logVerbose(f, env, "Content directory: %s", loader.ContentDir())
	return &site{cfg: cfg, loader: loader}, nil
}

// logVerbose writes a progress line to stderr when --verbose is set.
func logVerbose(f *commonFlags, env *Environment, format string, args ...any) {
	if f.verbose && !f.quiet {
		fmt.Fprintf(env.Stderr, format+"\n", args...)
	}
}

// marshalJSON encodes v as indented JSON with a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := marshalJSON(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// runIDs lists page ids, or post ids with --posts.
func runIDs(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseIDsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: ids takes at most one directory", ErrUsage)
	}
	if f.posts && len(rest) > 0 {
		return fmt.Errorf("%w: --posts does not take a directory", ErrUsage)
	}

	s, err := openSite(&f.common, env)
	if err != nil {
		return err
	}

	var ids []string
	if f.posts {
		ids, err = s.loader.PostIDs(ctx)
	} else {
		root := ""
		if len(rest) == 1 {
			root = rest[0]
		}
		ids, err = s.loader.PageIDs(ctx, root)
	}
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(env.Stdout, id)
	}
	return nil
}

// runShow prints one page, or one post when post is true.
func runShow(ctx context.Context, args []string, env *Environment, post bool) error {
	name, usage := "page", printPageUsage
	if post {
		name, usage = "post", printPostUsage
	}

	f, rest, err := parseShowFlags(name, usage, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("%w: %s requires exactly one id", ErrUsage, name)
	}

	s, err := openSite(&f.common, env)
	if err != nil {
		return err
	}

	var data *mdsite.PageData
	if post {
		data, err = s.loader.Post(ctx, rest[0])
	} else {
		data, err = s.loader.Page(ctx, rest[0])
	}
	if err != nil {
		return err
	}

	if f.html {
		if _, err := io.WriteString(env.Stdout, data.ContentHTML); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	return writeJSON(env.Stdout, data)
}

// runPosts prints one page of the sorted post listing.
func runPosts(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parsePostsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: posts takes no arguments", ErrUsage)
	}
	if f.perPage < perPageUnset {
		return fmt.Errorf("%w: --per-page must not be negative", ErrUsage)
	}

	s, err := openSite(&f.common, env)
	if err != nil {
		return err
	}

	perPage := s.cfg.Posts.PerPage
	if f.perPage != perPageUnset {
		perPage = f.perPage
	}

	posts, err := s.loader.SortedPosts(ctx)
	if err != nil {
		return err
	}

	page, err := mdsite.Paginate(posts, f.page, perPage)
	if err != nil {
		return err
	}
	return writeJSON(env.Stdout, page)
}

// runTitle renders its arguments as a title.
func runTitle(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseCommonFlags("title", printTitleUsage, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: title requires markdown text", ErrUsage)
	}

	s, err := openSite(f, env)
	if err != nil {
		return err
	}

	title, err := s.loader.RenderTitle(ctx, strings.Join(rest, " "))
	if err != nil {
		return err
	}
	return writeJSON(env.Stdout, title)
}

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	f, rest, err := parseCommonFlags("config", printConfigUsage, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	cfg, err := resolveConfig(f, env)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := env.Stdout.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
