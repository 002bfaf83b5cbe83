package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, cmd := range []string{"ids", "page", "post", "posts", "title", "export", "config", "version", "help"} {
		assert.Contains(t, buf.String(), "  "+cmd+" ", "usage should list %s", cmd)
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		want    string
	}{
		{"ids", "Usage: mdsite ids"},
		{"page", "Usage: mdsite page"},
		{"post", "Usage: mdsite post <id>"},
		{"posts", "Usage: mdsite posts"},
		{"title", "Usage: mdsite title"},
		{"export", "posts/page-<n>.json"},
		{"export", "site.json"},
		{"config", "Usage: mdsite config"},
		{"version", "Usage: mdsite version"},
		{"help", "Usage: mdsite help"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := newTestEnv(nil)
			assert.NoError(t, runHelp([]string{tt.command}, env))
			assert.Contains(t, stdout.String(), tt.want)
		})
	}
}

func TestCommandUsage_ListsCommonFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printPostsUsage(&buf)

	out := buf.String()
	assert.True(t, strings.Contains(out, "--content-dir") && strings.Contains(out, "--quiet"),
		"common flags missing from:\n%s", out)
}
