package mdsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wetmore/go-mdsite/internal/dateutil"
	"github.com/wetmore/go-mdsite/internal/fileutil"
	"github.com/wetmore/go-mdsite/internal/frontmatter"
	"github.com/wetmore/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ titleRenderer                 = (*pipeline.TitleRenderer)(nil)
)

// sourceExtensions are the file extensions read as markdown, in lookup order.
var sourceExtensions = []string{".md", ".markdown"}

// titleRenderer renders markdown titles to inline HTML.
type titleRenderer interface {
	RenderInline(ctx context.Context, markdown string) (string, error)
}

// Loader reads markdown content and turns it into page data.
type Loader struct {
	cfg           loaderConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	titleRenderer titleRenderer
}

// NewLoader creates a Loader with default configuration.
// Use options to customize behavior (e.g., WithContentDir, WithPostsDir, WithDateFormat).
// Returns error if an option value is invalid.
func NewLoader(opts ...Option) (*Loader, error) {
	l := &Loader{
		cfg: loaderConfig{
			contentDir:     DefaultContentDir,
			postsDir:       DefaultPostsDir,
			pattern:        DefaultPattern,
			highlightStyle: pipeline.DefaultHighlightStyle,
		},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(l)
	}

	if err := l.validateConfig(); err != nil {
		return nil, err
	}

	if l.cfg.fsys == nil {
		l.cfg.fsys = os.DirFS(l.cfg.contentDir)
	}

	// Create renderers if not injected (e.g., by tests)
	if l.htmlConverter == nil {
		l.htmlConverter = pipeline.NewGoldmarkConverter(
			pipeline.WithHighlightStyle(l.cfg.highlightStyle),
			pipeline.WithInlineStyles(l.cfg.inlineStyles),
		)
	}
	if l.titleRenderer == nil {
		l.titleRenderer = pipeline.NewTitleRenderer()
	}

	return l, nil
}

// validateConfig fills empty settings with defaults and checks the rest.
func (l *Loader) validateConfig() error {
	if l.cfg.contentDir == "" {
		l.cfg.contentDir = DefaultContentDir
	}
	if l.cfg.postsDir == "" {
		l.cfg.postsDir = DefaultPostsDir
	}
	if l.cfg.pattern == "" {
		l.cfg.pattern = DefaultPattern
	}
	if l.cfg.highlightStyle == "" {
		l.cfg.highlightStyle = pipeline.DefaultHighlightStyle
	}

	if !doublestar.ValidatePattern(l.cfg.pattern) {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, l.cfg.pattern)
	}
	if err := fileutil.ValidateID(l.cfg.postsDir); err != nil {
		return fmt.Errorf("%w: posts directory: %v", ErrInvalidPageID, err)
	}
	if l.cfg.dateFormat != "" {
		if _, err := dateutil.ParseDateFormat(l.cfg.dateFormat); err != nil {
			return err
		}
	}
	if !pipeline.ValidHighlightStyle(l.cfg.highlightStyle) {
		return fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, l.cfg.highlightStyle)
	}
	return nil
}

// ContentDir returns the directory content is read from. It is meaningless
// when the loader was created WithFS.
func (l *Loader) ContentDir() string {
	return l.cfg.contentDir
}

// HighlightCSS returns the stylesheet for highlighted code blocks, or ""
// when code is highlighted with inline styles.
func (l *Loader) HighlightCSS() (string, error) {
	if l.cfg.inlineStyles {
		return "", nil
	}
	return pipeline.HighlightCSS(l.cfg.highlightStyle)
}

// RenderTitle renders a markdown title to inline HTML and to plaintext.
// The plaintext form drops the MathML copy of every formula so each formula
// reads once. An empty title yields an empty PageTitle.
func (l *Loader) RenderTitle(ctx context.Context, raw string) (PageTitle, error) {
	if err := ctx.Err(); err != nil {
		return PageTitle{}, err
	}
	if raw == "" {
		return PageTitle{}, nil
	}

	html, err := l.titleRenderer.RenderInline(ctx, raw)
	if err != nil {
		return PageTitle{}, err
	}

	plaintext, err := pipeline.PlainText(html)
	if err != nil {
		return PageTitle{}, fmt.Errorf("%w: title plaintext: %v", ErrHTMLConversion, err)
	}

	return PageTitle{Raw: raw, HTML: html, Plaintext: plaintext}, nil
}

// PageIDs returns the ids of all markdown pages in root, a directory relative
// to the content directory ("" for the content directory itself). Ids are
// relative to the content directory and sorted.
func (l *Loader) PageIDs(ctx context.Context, root string) ([]string, error) {
	return l.listIDs(ctx, l.cfg.fsys, root)
}

// Page loads the page with the given id, e.g. "about" or "posts/my-post".
func (l *Loader) Page(ctx context.Context, id string) (*PageData, error) {
	return l.load(ctx, l.cfg.fsys, id)
}

// listIDs walks root in fsys and returns the ids of files matching the
// configured pattern.
func (l *Loader) listIDs(ctx context.Context, fsys fs.FS, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := "."
	if root != "" {
		if err := fileutil.ValidateID(root); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPageID, err)
		}
		dir = path.Clean(filepath.ToSlash(root))
	}

	sub := fsys
	prefix := ""
	if dir != "." {
		var err error
		if sub, err = fs.Sub(fsys, dir); err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
		prefix = dir
	}

	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var ids []string
	err := doublestar.GlobWalk(sub, l.cfg.pattern, func(p string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(p) {
			return nil
		}
		ids = append(ids, path.Join(prefix, fileutil.PageID(p)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// source is one markdown file split into its parts.
type source struct {
	id     string
	matter frontmatter.Matter
	body   []byte
}

// read loads and splits the source file for id.
func (l *Loader) read(ctx context.Context, fsys fs.FS, id string) (*source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fileutil.ValidateID(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageID, err)
	}
	name := path.Clean(filepath.ToSlash(id))

	data, err := readSource(fsys, name)
	if err != nil {
		return nil, err
	}

	content := l.preprocessor.PreprocessMarkdown(ctx, string(data))

	matter, body, err := frontmatter.Parse([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatter, name, err)
	}

	return &source{id: name, matter: matter, body: body}, nil
}

// readSource reads name with the first markdown extension that exists.
func readSource(fsys fs.FS, name string) ([]byte, error) {
	for _, ext := range sourceExtensions {
		data, err := fs.ReadFile(fsys, name+ext)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", name+ext, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPageNotFound, name)
}

// metadata builds the PageMetadata of src, rendering its title.
func (l *Loader) metadata(ctx context.Context, src *source) (PageMetadata, error) {
	raw := src.matter.Title
	if !src.matter.HasTitle {
		raw = fallbackTitle(src.id)
	}

	title, err := l.RenderTitle(ctx, raw)
	if err != nil {
		return PageMetadata{}, fmt.Errorf("rendering title of %s: %w", src.id, err)
	}

	meta := PageMetadata{
		ID:          src.id,
		Date:        src.matter.Date,
		Title:       title,
		DisplayDate: l.displayDate(src.matter.Date),
	}
	if len(src.matter.Params) > 0 {
		meta.Params = src.matter.Params
	}
	return meta, nil
}

// load builds the full PageData for id.
// Recovers from renderer panics so one malformed file cannot crash a build.
func (l *Loader) load(ctx context.Context, fsys fs.FS, id string) (page *PageData, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error rendering %s: %v", id, r)
		}
	}()

	src, err := l.read(ctx, fsys, id)
	if err != nil {
		return nil, err
	}

	meta, err := l.metadata(ctx, src)
	if err != nil {
		return nil, err
	}

	contentHTML, err := l.htmlConverter.ToHTML(ctx, string(src.body))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", src.id, err)
	}

	return &PageData{PageMetadata: meta, ContentHTML: contentHTML}, nil
}

// displayDate formats date for display. Dates in an unrecognized layout are
// shown as written.
func (l *Loader) displayDate(date string) string {
	if l.cfg.dateFormat == "" || date == "" {
		return ""
	}
	formatted, err := dateutil.Format(date, l.cfg.dateFormat)
	if err != nil {
		return date
	}
	return formatted
}

// fallbackTitle derives a title from an id: "posts/my-first_post" becomes
// "My First Post".
func fallbackTitle(id string) string {
	base := path.Base(id)
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(spaced)
}

// isMarkdown reports whether p has a markdown extension. The match is
// case-sensitive, like readSource, so every listed id can be loaded.
func isMarkdown(p string) bool {
	return slices.Contains(sourceExtensions, path.Ext(p))
}
