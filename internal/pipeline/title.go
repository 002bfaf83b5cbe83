package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// TitleRenderer renders one-line markdown, such as a page title, to inline
// HTML. Only paragraphs are recognized as blocks, so "# Title" stays text,
// and raw HTML is escaped.
type TitleRenderer struct {
	md goldmark.Markdown
}

// NewTitleRenderer creates a TitleRenderer with typographic punctuation and
// inline math.
func NewTitleRenderer() *TitleRenderer {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewLinkParser(), 200),
			util.Prioritized(parser.NewAutoLinkParser(), 300),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Typographer,
			NewMath(false),
		),
	)
	return &TitleRenderer{md: md}
}

// RenderInline converts markdown to HTML without the enclosing paragraph
// tags. Separate paragraphs are joined with a space.
func (r *TitleRenderer) RenderInline(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if block.PreviousSibling() != nil {
			buf.WriteByte(' ')
		}
		for inline := block.FirstChild(); inline != nil; inline = inline.NextSibling() {
			if err := r.md.Renderer().Render(&buf, source, inline); err != nil {
				return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
			}
		}
	}
	return buf.String(), nil
}
