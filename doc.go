// Package mdsite loads the markdown content of a static personal website
// into page data for a templating layer.
//
// # Quick Start
//
// Create a loader over the content directory and load a page:
//
//	loader, err := mdsite.NewLoader(mdsite.WithContentDir("markdown"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := loader.Page(ctx, "about")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(page.Title.Plaintext, len(page.ContentHTML))
//
// # Content Layout
//
// Every markdown file is one record, identified by its path relative to the
// content directory without the extension:
//
//	markdown/
//	├── about.md            -> "about"
//	└── posts/
//	    └── hello-world.md  -> post "hello-world"
//
// Files start with YAML front matter. Only title and date are interpreted;
// other keys are passed through as PageMetadata.Params:
//
//	---
//	title: Notes on $\lambda$-calculus
//	date: 2020-05-01
//	---
//
// # Loading Pipeline
//
// Each record is built the same way:
//
//  1. Read the file and normalize line endings
//  2. Split and decode the front matter
//  3. Render the title to inline HTML and to plaintext
//  4. Render the body to HTML (GFM, footnotes, typographer, math, highlighting)
//
// Titles are plain inline markdown. Math inside them renders twice (a
// MathML copy and a visible copy); the plaintext form keeps only the
// visible one, so it can be used as the document title.
//
// # Posts
//
// Posts live in a subdirectory of the content directory. SortedPosts returns
// their metadata newest first, and Paginate splits any listing into pages:
//
//	posts, err := loader.SortedPosts(ctx)
//	first, err := mdsite.Paginate(posts, 1, 10)
package mdsite
