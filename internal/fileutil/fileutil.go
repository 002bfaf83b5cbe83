// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyID    = errors.New("page id cannot be empty")
	ErrIDEscapes  = errors.New("page id escapes content directory")
	ErrIDNullByte = errors.New("page id contains null byte")
)

// PageID derives a page identifier from a path relative to a content root:
// the extension is dropped and separators are normalized to "/".
//
// Examples:
//   - "about.md" -> "about"
//   - "posts/hello-world.md" -> "posts/hello-world"
//   - "notes.v2.md" -> "notes.v2"
func PageID(relPath string) string {
	slashed := filepath.ToSlash(relPath)
	return strings.TrimSuffix(slashed, path.Ext(slashed))
}

// ValidateID checks that id names a file inside its content root.
func ValidateID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if strings.ContainsRune(id, 0) {
		return ErrIDNullByte
	}
	slashed := filepath.ToSlash(id)
	if strings.HasPrefix(slashed, "/") || filepath.IsAbs(id) {
		return fmt.Errorf("%w: %q", ErrIDEscapes, id)
	}
	cleaned := path.Clean(slashed)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %q", ErrIDEscapes, id)
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file next to dst and renames it
// into place, so readers never observe a partially written file.
func WriteFileAtomic(dst string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(dst)
	tmpFile, err := os.CreateTemp(dir, ".mdsite-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "mdsite" -> false (name)
//   - "./mdsite.yaml" -> true (relative path)
//   - "/etc/mdsite.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
