package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestEnv returns an Environment with buffered output and the given
// variables as its process environment.
func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			environ := make([]string, 0, len(vars))
			for k, v := range vars {
				environ = append(environ, k+"="+v)
			}
			return environ
		},
	}
	return env, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o750))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	return tempDir
}

// siteFiles is a small site with two pages and three posts.
func siteFiles() map[string]string {
	return map[string]string{
		"about.md":          "---\ntitle: About *me*\n---\nHello from the about page.\n",
		"projects.md":       "---\ntitle: Projects\n---\n# Projects\n\nSome `code`.\n",
		"notes.txt":         "not markdown",
		"posts/first.md":    "---\ntitle: First\ndate: 2019-01-05\n---\nFirst post.\n",
		"posts/second.md":   "---\ntitle: Second $x^2$\ndate: 2020-03-01\n---\nSecond post.\n",
		"posts/third.md":    "---\ntitle: Third\ndate: 2021-11-20\n---\nThird post.\n",
		"posts/drafts/x.md": "---\ntitle: Draft\n---\n",
	}
}
