package mdsite

import (
	"errors"

	"github.com/wetmore/go-mdsite/internal/dateutil"
	"github.com/wetmore/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrPageNotFound   = errors.New("page not found")
	ErrInvalidPageID  = errors.New("invalid page id")
	ErrFrontMatter    = errors.New("invalid front matter")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageOutOfRange = errors.New("page number out of range")

	// Option validation errors.
	ErrInvalidPattern        = errors.New("invalid content pattern")
	ErrInvalidDateFormat     = dateutil.ErrInvalidDateFormat
	ErrInvalidHighlightStyle = errors.New("unknown highlight style")
)
