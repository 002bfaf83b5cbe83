package pipeline

// Notes:
// - Assertions target markup this package adds or configures (math shape,
//   highlighting mode, raw HTML passthrough), not goldmark's CommonMark output

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Body rendering
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []ConverterOption
		content      string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "fragment without document wrapper",
			content:      "# Hello\n\nWorld",
			wantContains: []string{`<h1 id="hello">Hello</h1>`, "<p>World</p>"},
			wantExcludes: []string{"<html", "<body"},
		},
		{
			name:         "raw html passes through",
			content:      "<figure><img src=\"a.png\"></figure>\n",
			wantContains: []string{`<figure><img src="a.png"></figure>`},
		},
		{
			name:         "typographer",
			content:      `"quoted" -- dash`,
			wantContains: []string{"&ldquo;quoted&rdquo;", "&ndash;"},
		},
		{
			name:         "footnote",
			content:      "Claim[^1].\n\n[^1]: Source.\n",
			wantContains: []string{`class="footnotes"`, "Source."},
		},
		{
			name:         "table",
			content:      "| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "strikethrough",
			content:      "~~gone~~",
			wantContains: []string{"<del>gone</del>"},
		},
		{
			name:         "math block",
			content:      "$$\n\\int_0^1 x\\,dx\n$$\n",
			wantContains: []string{`<span class="katex-display">`, `\int_0^1 x\,dx`},
		},
		{
			name:         "inline math",
			content:      "where $n \\ge 1$ holds",
			wantContains: []string{`<span class="katex-mathml">`, `n \ge 1`},
		},
		{
			name:         "highlighted code uses classes by default",
			content:      "```go\nfunc main() {}\n```\n",
			wantContains: []string{`class="chroma"`},
			wantExcludes: []string{`style="color`},
		},
		{
			name:         "highlighted code with inline styles",
			opts:         []ConverterOption{WithInlineStyles(true), WithHighlightStyle("monokai")},
			content:      "```go\nfunc main() {}\n```\n",
			wantContains: []string{`style="`},
			wantExcludes: []string{`class="chroma"`},
		},
		{
			name:         "no hard wraps",
			content:      "line one\nline two",
			wantContains: []string{"line one\nline two"},
			wantExcludes: []string{"<br"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := NewGoldmarkConverter(tt.opts...)
			got, err := conv.ToHTML(context.Background(), tt.content)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
			for _, exclude := range tt.wantExcludes {
				assert.NotContains(t, got, exclude)
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# Title")
	assert.ErrorIs(t, err, context.Canceled)
}

// ---------------------------------------------------------------------------
// TestValidHighlightStyle
// ---------------------------------------------------------------------------

func TestValidHighlightStyle(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidHighlightStyle(DefaultHighlightStyle), "default style %q", DefaultHighlightStyle)
	assert.True(t, ValidHighlightStyle("monokai"))
	assert.False(t, ValidHighlightStyle("no-such-style"))
}

// ---------------------------------------------------------------------------
// TestHighlightCSS
// ---------------------------------------------------------------------------

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS(DefaultHighlightStyle)
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")

	_, err = HighlightCSS("no-such-style")
	assert.ErrorIs(t, err, ErrHTMLConversion)
}
