// Package pipeline implements the Markdown-to-HTML rendering used by the
// site loader.
//
// This package handles the three rendering stages:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via Goldmark, for page bodies and for
//     inline titles
//   - HTML to plaintext extraction for titles, dropping the MathML twin that
//     math rendering emits next to the visible formula
//
// Reading files and front matter is handled by the root mdsite package; this
// package only ever sees strings.
package pipeline
