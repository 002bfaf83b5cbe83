package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	mdsite "github.com/wetmore/go-mdsite"
	"github.com/wetmore/go-mdsite/internal/fileutil"
)

// Output layout under the export directory.
const (
	pagesSubdir  = "pages"
	postsSubdir  = "posts"
	highlightCSS = "highlight.css"
	siteJSON     = "site.json"
)

// siteData is the site-wide record written to site.json.
type siteData struct {
	Title        mdsite.PageTitle `json:"title"`
	Pages        int              `json:"pages"`
	Posts        int              `json:"posts"`
	ListingPages int              `json:"listingPages"`
	PerPage      int              `json:"perPage"`
}

// exportSummary counts files written by an export.
type exportSummary struct {
	Pages    int
	Posts    int
	Listings int
}

// exporter writes page data as JSON files for the templating layer.
type exporter struct {
	loader  *mdsite.Loader
	dir     string
	title   string
	perPage int
	flags   *commonFlags
	env     *Environment
}

// runExport writes pages/<id>.json, posts/<id>.json, posts/page-N.json,
// site.json and, unless code is highlighted with inline styles, highlight.css.
func runExport(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseExportFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: export takes no arguments", ErrUsage)
	}

	s, err := openSite(&f.common, env)
	if err != nil {
		return err
	}

	dir := s.cfg.Output.Dir
	if f.output != "" {
		dir = f.output
	}

	e := &exporter{
		loader:  s.loader,
		dir:     dir,
		title:   s.cfg.Site.Title,
		perPage: s.cfg.Posts.PerPage,
		flags:   &f.common,
		env:     env,
	}

	start := env.Now()
	summary, err := e.export(ctx)
	if err != nil {
		return err
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Exported %d pages, %d posts, %d listing pages to %s\n",
			summary.Pages, summary.Posts, summary.Listings, dir)
	}
	logVerbose(&f.common, env, "Export took %v", env.Now().Sub(start).Round(time.Millisecond))
	return nil
}

// export writes every page, then every post and the paginated listing.
func (e *exporter) export(ctx context.Context) (exportSummary, error) {
	var summary exportSummary

	pages, err := e.exportPages(ctx)
	if err != nil {
		return summary, err
	}
	summary.Pages = pages

	posts, listings, err := e.exportPosts(ctx)
	if err != nil {
		return summary, err
	}
	summary.Posts = posts
	summary.Listings = listings

	if err := e.exportSite(ctx, summary); err != nil {
		return summary, err
	}

	css, err := e.loader.HighlightCSS()
	if err != nil {
		return summary, err
	}
	if css != "" {
		if err := e.writeFile(highlightCSS, []byte(css)); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// exportPages writes one file per page in the content root.
func (e *exporter) exportPages(ctx context.Context) (int, error) {
	ids, err := e.loader.PageIDs(ctx, "")
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		page, err := e.loader.Page(ctx, id)
		if err != nil {
			return 0, err
		}
		if err := e.write(filepath.Join(pagesSubdir, filepath.FromSlash(id)+".json"), page); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

// exportPosts writes one file per post plus one file per listing page.
// A missing posts directory exports nothing.
func (e *exporter) exportPosts(ctx context.Context) (posts, listings int, err error) {
	sorted, err := e.loader.SortedPosts(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		logVerbose(e.flags, e.env, "No posts directory, skipping posts")
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}

	for _, meta := range sorted {
		post, err := e.loader.Post(ctx, meta.ID)
		if err != nil {
			return 0, 0, err
		}
		if err := e.write(filepath.Join(postsSubdir, filepath.FromSlash(meta.ID)+".json"), post); err != nil {
			return 0, 0, err
		}
	}

	pageCount := mdsite.PageCount(len(sorted), e.perPage)
	for n := 1; n <= pageCount; n++ {
		page, err := mdsite.Paginate(sorted, n, e.perPage)
		if err != nil {
			return 0, 0, err
		}
		if err := e.write(filepath.Join(postsSubdir, fmt.Sprintf("page-%d.json", n)), page); err != nil {
			return 0, 0, err
		}
	}

	return len(sorted), pageCount, nil
}

// exportSite writes the site title, rendered like a page title, and the
// export counts.
func (e *exporter) exportSite(ctx context.Context, summary exportSummary) error {
	title, err := e.loader.RenderTitle(ctx, e.title)
	if err != nil {
		return err
	}

	return e.write(siteJSON, siteData{
		Title:        title,
		Pages:        summary.Pages,
		Posts:        summary.Posts,
		ListingPages: summary.Listings,
		PerPage:      e.perPage,
	})
}

// write encodes v as JSON to rel under the export directory.
func (e *exporter) write(rel string, v any) error {
	data, err := marshalJSON(v)
	if err != nil {
		return err
	}
	return e.writeFile(rel, data)
}

// writeFile atomically writes data to rel under the export directory.
func (e *exporter) writeFile(rel string, data []byte) error {
	dst := filepath.Join(e.dir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(dst, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, dst, err)
	}

	logVerbose(e.flags, e.env, "Created %s", dst)
	return nil
}
