package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF unchanged",
			input:    "line1\nline2\nline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "CRLF to LF",
			input:    "line1\r\nline2\r\nline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "CR to LF",
			input:    "line1\rline2\rline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "mixed line endings",
			input:    "line1\r\nline2\rline3\nline4",
			expected: "line1\nline2\nline3\nline4",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, normalizeLineEndings(tt.input))
		})
	}
}

func TestCommonMarkPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &CommonMarkPreprocessor{}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "byte order mark stripped",
			input:    byteOrderMark + "---\ntitle: A\n---\n",
			expected: "---\ntitle: A\n---\n",
		},
		{
			name:     "inner byte order mark kept",
			input:    "a" + byteOrderMark,
			expected: "a" + byteOrderMark,
		},
		{
			name:     "windows source",
			input:    "---\r\ntitle: A\r\n---\r\nbody\r\n",
			expected: "---\ntitle: A\n---\nbody\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, p.PreprocessMarkdown(context.Background(), tt.input))
		})
	}

	t.Run("cancelled context returns input", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		in := "a\r\nb"
		assert.Equal(t, in, p.PreprocessMarkdown(ctx, in))
	})
}
