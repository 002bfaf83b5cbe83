package mdsite

import (
	"io/fs"
)

// PageTitle holds every form of a page title.
type PageTitle struct {
	Raw       string `json:"raw"`       // As written in front matter (markdown)
	HTML      string `json:"html"`      // Inline HTML, for the page body
	Plaintext string `json:"plaintext"` // Text only, for <title> and feeds
}

// PageMetadata is everything about a page except its body.
type PageMetadata struct {
	ID    string    `json:"id"`
	Date  string    `json:"date,omitempty"` // As written in front matter
	Title PageTitle `json:"title"`

	// DisplayDate is Date in the configured display format.
	// Empty when the page has no date or no format is configured.
	DisplayDate string `json:"displayDate,omitempty"`

	// Params holds the front matter keys other than title and date.
	Params map[string]any `json:"params,omitempty"`
}

// PageData is all the data needed to render a page.
type PageData struct {
	PageMetadata
	ContentHTML string `json:"contentHtml"`
}

// Option configures a Loader.
type Option func(*Loader)

// loaderConfig holds internal configuration for Loader.
type loaderConfig struct {
	contentDir     string
	fsys           fs.FS
	postsDir       string
	pattern        string
	dateFormat     string
	highlightStyle string
	inlineStyles   bool
}

// Defaults used when no option overrides them.
const (
	DefaultContentDir = "markdown"
	DefaultPostsDir   = "posts"
	DefaultPattern    = "*.md"
)

// WithContentDir sets the directory holding all markdown content.
func WithContentDir(dir string) Option {
	return func(l *Loader) {
		l.cfg.contentDir = dir
	}
}

// WithFS reads content from fsys instead of the content directory.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.cfg.fsys = fsys
	}
}

// WithPostsDir sets the posts directory, relative to the content directory.
func WithPostsDir(dir string) Option {
	return func(l *Loader) {
		l.cfg.postsDir = dir
	}
}

// WithPattern sets the glob selecting source files in a directory.
// Patterns may use "**" to descend into subdirectories.
func WithPattern(pattern string) Option {
	return func(l *Loader) {
		l.cfg.pattern = pattern
	}
}

// WithDateFormat enables PageMetadata.DisplayDate using a format such as
// "MMMM D, YYYY" or a preset name ("iso", "long", ...).
func WithDateFormat(format string) Option {
	return func(l *Loader) {
		l.cfg.dateFormat = format
	}
}

// WithHighlightStyle selects the chroma style for code blocks.
func WithHighlightStyle(name string) Option {
	return func(l *Loader) {
		l.cfg.highlightStyle = name
	}
}

// WithInlineStyles emits inline style attributes for highlighted code
// instead of CSS classes.
func WithInlineStyles(inline bool) Option {
	return func(l *Loader) {
		l.cfg.inlineStyles = inline
	}
}
