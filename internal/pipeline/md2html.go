package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	style        string
	inlineStyles bool
}

// WithHighlightStyle selects the chroma style for fenced code blocks.
// With class output, HighlightCSS returns the matching stylesheet.
func WithHighlightStyle(name string) ConverterOption {
	return func(c *converterConfig) {
		if name != "" {
			c.style = name
		}
	}
}

// WithInlineStyles emits style attributes instead of CSS classes for
// highlighted code.
func WithInlineStyles(inline bool) ConverterOption {
	return func(c *converterConfig) {
		c.inlineStyles = inline
	}
}

// ValidHighlightStyle reports whether name is a registered chroma style.
func ValidHighlightStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// HighlightCSS returns the stylesheet matching class-based highlighting
// output for the named chroma style.
func HighlightCSS(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown highlight style %q", ErrHTMLConversion, name)
	}

	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: writing %s stylesheet: %v", ErrHTMLConversion, name, err)
	}
	return buf.String(), nil
}

// GoldmarkConverter converts Markdown bodies to HTML fragments using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// typographic punctuation, math and syntax highlighting.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	cfg := converterConfig{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.Footnote,
			extension.Typographer,
			NewMath(true),
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(!cfg.inlineStyles),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Anchors for in-page links
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // Posts embed figures and iframes as raw HTML
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so ctx is checked before and after the
// conversion.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
