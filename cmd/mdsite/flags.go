package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config     string
	contentDir string
	quiet      bool
	verbose    bool
}

// idsFlags holds flags for the ids command.
type idsFlags struct {
	common commonFlags
	posts  bool
}

// showFlags holds flags for the page and post commands.
type showFlags struct {
	common commonFlags
	html   bool // Print the rendered body only
}

// postsFlags holds flags for the posts command.
type postsFlags struct {
	common  commonFlags
	page    int
	perPage int
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common commonFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.contentDir, "content-dir", "", "markdown content directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
// Usage output goes to w.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and wraps parse failures with ErrUsage.
// flag.ErrHelp is returned unwrapped so callers can exit cleanly.
func parseFlagSet(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseCommonFlags parses a command that takes only common flags.
func parseCommonFlags(name string, usage func(io.Writer), args []string, w io.Writer) (*commonFlags, []string, error) {
	fs := newFlagSet(name, usage, w)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseIDsFlags parses ids command flags and returns positional args.
func parseIDsFlags(args []string, w io.Writer) (*idsFlags, []string, error) {
	fs := newFlagSet("ids", printIDsUsage, w)
	f := &idsFlags{}
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.posts, "posts", false, "list post ids instead of pages")

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseShowFlags parses page or post command flags and returns positional args.
func parseShowFlags(name string, usage func(io.Writer), args []string, w io.Writer) (*showFlags, []string, error) {
	fs := newFlagSet(name, usage, w)
	f := &showFlags{}
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.html, "html", false, "print the rendered body only")

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parsePostsFlags parses posts command flags and returns positional args.
func parsePostsFlags(args []string, w io.Writer) (*postsFlags, []string, error) {
	fs := newFlagSet("posts", printPostsUsage, w)
	f := &postsFlags{}
	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.page, "page", "p", 1, "listing page to print (1-based)")
	fs.IntVar(&f.perPage, "per-page", perPageUnset, "posts per page (0 = all)")

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string, w io.Writer) (*exportFlags, []string, error) {
	fs := newFlagSet("export", printExportUsage, w)
	f := &exportFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}
