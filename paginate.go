package mdsite

import "fmt"

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"` // 1-based
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// Paginate returns page number page (1-based) of items, perPage items per
// page. perPage <= 0 puts every item on a single page. An empty listing
// still has a first page with no items.
func Paginate[T any](items []T, page, perPage int) (Page[T], error) {
	total := len(items)
	pages := PageCount(total, perPage)
	if page < 1 || page > pages {
		return Page[T]{}, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, page, pages)
	}

	start, end := 0, total
	if perPage > 0 {
		start = (page - 1) * perPage
		end = min(start+perPage, total)
	}

	return Page[T]{
		Items:      append(make([]T, 0, end-start), items[start:end]...),
		Number:     page,
		TotalPages: pages,
		TotalItems: total,
	}, nil
}

// PageCount returns how many pages Paginate splits n items into.
func PageCount(n, perPage int) int {
	if perPage <= 0 || n == 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}
