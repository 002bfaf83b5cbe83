// Package frontmatter splits markdown sources into their YAML front matter
// and body, and extracts the keys the site loader understands.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/wetmore/go-mdsite/internal/yamlutil"
)

// ErrParse indicates the front matter block could not be decoded.
var ErrParse = errors.New("invalid front matter")

// Well-known front matter keys.
const (
	KeyTitle = "title"
	KeyDate  = "date"
)

// yamlFormat delimits front matter with "---" lines and decodes it with
// yamlutil so the whole module shares one YAML implementation.
var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.UnmarshalLenient)

// Matter is the decoded front matter of one source file.
type Matter struct {
	// Title is the raw markdown title. HasTitle distinguishes a missing key
	// from an explicitly empty one.
	Title    string
	HasTitle bool

	// Date is the date as written, or "" when absent.
	Date string

	// Params holds every key other than title and date.
	Params map[string]any
}

// Parse splits source into front matter and body. A source without a front
// matter block yields an empty Matter and the whole source as body.
func Parse(source []byte) (Matter, []byte, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw, yamlFormat)
	if err != nil {
		return Matter{}, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	m := Matter{Params: map[string]any{}}
	maps.Copy(m.Params, raw)

	if v, ok := raw[KeyTitle]; ok {
		delete(m.Params, KeyTitle)
		m.Title, m.HasTitle = scalarString(v), v != nil
	}
	if v, ok := raw[KeyDate]; ok {
		delete(m.Params, KeyDate)
		m.Date = dateString(v)
	}

	return m, body, nil
}

// scalarString renders a YAML scalar as written. Titles like "1984" decode
// as integers and still need to be shown as text.
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// dateString normalizes decoded timestamps back to their ISO form.
func dateString(v any) string {
	switch val := v.(type) {
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	default:
		return scalarString(v)
	}
}
