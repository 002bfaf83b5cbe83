//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkGoldmarkToHTML benchmarks page body conversion.
func BenchmarkGoldmarkToHTML(b *testing.B) {
	converter := NewGoldmarkConverter()
	ctx := context.Background()

	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "# Hello\n\nWorld"},
		{"math", strings.Repeat("Inline $a^2 + b^2 = c^2$ and\n\n$$\n\\int_0^1 x\\,dx\n$$\n\n", 10)},
		{"post_small", generatePostMarkdown(5)},
		{"post_large", generatePostMarkdown(100)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, input.content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTitle benchmarks the title path: inline render then plaintext.
func BenchmarkTitle(b *testing.B) {
	r := NewTitleRenderer()
	ctx := context.Background()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		html, err := r.RenderInline(ctx, "Notes on *linear* maps $T: V \\to W$")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := PlainText(html); err != nil {
			b.Fatal(err)
		}
	}
}

// generatePostMarkdown builds a post with n sections of prose, code and math.
func generatePostMarkdown(n int) string {
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "## Section %d\n\n", i+1)
		sb.WriteString("Some \"quoted\" prose -- with a footnote[^1] and $x_i$.\n\n")
		sb.WriteString("```go\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```\n\n")
		sb.WriteString("| a | b |\n|---|---|\n| 1 | 2 |\n\n")
	}
	sb.WriteString("[^1]: The footnote.\n")
	return sb.String()
}
