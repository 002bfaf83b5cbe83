package mdsite

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"slices"
)

// postsFS returns the posts directory as a file system.
func (l *Loader) postsFS() (fs.FS, error) {
	sub, err := fs.Sub(l.cfg.fsys, l.cfg.postsDir)
	if err != nil {
		return nil, fmt.Errorf("opening posts directory: %w", err)
	}
	return sub, nil
}

// PostIDs returns the ids of all posts, relative to the posts directory.
func (l *Loader) PostIDs(ctx context.Context) ([]string, error) {
	fsys, err := l.postsFS()
	if err != nil {
		return nil, err
	}
	return l.listIDs(ctx, fsys, "")
}

// Post loads the post with the given id.
func (l *Loader) Post(ctx context.Context, id string) (*PageData, error) {
	fsys, err := l.postsFS()
	if err != nil {
		return nil, err
	}
	return l.load(ctx, fsys, id)
}

// SortedPosts returns the metadata of every post, newest first.
// Dates compare as strings, so ISO dates sort chronologically. Posts with
// equal dates keep id order and undated posts come last.
func (l *Loader) SortedPosts(ctx context.Context) ([]PageMetadata, error) {
	fsys, err := l.postsFS()
	if err != nil {
		return nil, err
	}

	ids, err := l.listIDs(ctx, fsys, "")
	if err != nil {
		return nil, err
	}

	posts := make([]PageMetadata, 0, len(ids))
	for _, id := range ids {
		src, err := l.read(ctx, fsys, id)
		if err != nil {
			return nil, err
		}
		meta, err := l.metadata(ctx, src)
		if err != nil {
			return nil, err
		}
		posts = append(posts, meta)
	}

	slices.SortStableFunc(posts, func(a, b PageMetadata) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return posts, nil
}
