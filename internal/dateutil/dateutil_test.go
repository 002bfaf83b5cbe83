package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "YYYY", format: "YYYY", want: "2006"},
		{name: "YY", format: "YY", want: "06"},
		{name: "MMMM", format: "MMMM", want: "January"},
		{name: "MMM", format: "MMM", want: "Jan"},
		{name: "MM", format: "MM", want: "01"},
		{name: "M", format: "M", want: "1"},
		{name: "DD", format: "DD", want: "02"},
		{name: "D", format: "D", want: "2"},
		{name: "iso layout", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long layout", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "bracket literal", format: "[Posted] MMM D", want: "Posted Jan 2"},
		{name: "preset lowercase", format: "long", want: "January 2, 2006"},
		{name: "preset mixed case", format: "European", want: "02/01/2006"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[Posted YYYY", wantErr: ErrInvalidDateFormat},
		{
			name:    "too long",
			format:  "YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD",
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ParseDateFormat(%q)", tt.format)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{name: "iso date", raw: "2020-05-01", want: want},
		{name: "surrounding whitespace", raw: "  2020-05-01 ", want: want},
		{name: "slashes", raw: "2020/05/01", want: want},
		{name: "long form", raw: "May 1, 2020", want: want},
		{name: "rfc3339", raw: "2020-05-01T00:00:00Z", want: want},
		{name: "datetime", raw: "2020-05-01 13:45:00", want: want.Add(13*time.Hour + 45*time.Minute)},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "last tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnrecognizedDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "ParseDate(%q) = %v, want %v", tt.raw, got, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		format  string
		want    string
		wantErr error
	}{
		{name: "long", raw: "2020-05-01", format: "MMMM D, YYYY", want: "May 1, 2020"},
		{name: "preset", raw: "2021-12-24", format: "us", want: "12/24/2021"},
		{name: "empty date", raw: "", format: "long", want: ""},
		{name: "bad date", raw: "someday", format: "long", wantErr: ErrUnrecognizedDate},
		{name: "bad format", raw: "2020-05-01", format: "[oops", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(tt.raw, tt.format)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
