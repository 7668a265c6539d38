package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
}

func TestParseRSSDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"named zone", "Mon, 02 Jan 2006 15:04:05 GMT", time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"numeric offset", "Tue, 10 Jun 2003 04:00:00 -0500", time.Date(2003, 6, 10, 9, 0, 0, 0, time.UTC)},
		{"single digit day", "Wed, 4 Mar 2026 08:30:00 +0000", time.Date(2026, 3, 4, 8, 30, 0, 0, time.UTC)},
		{"surrounding whitespace", "\n  Mon, 02 Jan 2006 15:04:05 +0000  ", time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"EST", "Tue, 10 Jun 2003 04:00:00 EST", time.Date(2003, 6, 10, 9, 0, 0, 0, time.UTC)},
		{"EDT", "Tue, 10 Jun 2003 04:00:00 EDT", time.Date(2003, 6, 10, 8, 0, 0, 0, time.UTC)},
		{"CST", "Tue, 10 Jun 2003 04:00:00 CST", time.Date(2003, 6, 10, 10, 0, 0, 0, time.UTC)},
		{"CDT", "Tue, 10 Jun 2003 04:00:00 CDT", time.Date(2003, 6, 10, 9, 0, 0, 0, time.UTC)},
		{"MST", "Tue, 10 Jun 2003 04:00:00 MST", time.Date(2003, 6, 10, 11, 0, 0, 0, time.UTC)},
		{"MDT", "Tue, 10 Jun 2003 04:00:00 MDT", time.Date(2003, 6, 10, 10, 0, 0, 0, time.UTC)},
		{"PST", "Tue, 10 Jun 2003 04:00:00 PST", time.Date(2003, 6, 10, 12, 0, 0, 0, time.UTC)},
		{"PDT rolls into next day", "Tue, 10 Jun 2003 23:30:00 PDT", time.Date(2003, 6, 11, 6, 30, 0, 0, time.UTC)},
		{"UT", "Tue, 10 Jun 2003 04:00:00 UT", time.Date(2003, 6, 10, 4, 0, 0, 0, time.UTC)},
		{"Z", "Tue, 10 Jun 2003 04:00:00 Z", time.Date(2003, 6, 10, 4, 0, 0, 0, time.UTC)},
		{"UTC single digit day", "Tue, 3 Jun 2003 04:00:00 UTC", time.Date(2003, 6, 3, 4, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRSSDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.UTC())
		})
	}

	for _, bad := range []string{"", "not-a-date", "2026-02-14T12:00:00", "Mon, 02 Jan 2006"} {
		_, err := ParseRSSDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestParseFeedDate(t *testing.T) {
	t.Run("nil falls back to now", func(t *testing.T) {
		assert.Equal(t, fixedNow(), ParseFeedDate(nil, fixedNow))
	})

	t.Run("malformed falls back to now", func(t *testing.T) {
		assert.Equal(t, fixedNow(), ParseFeedDate(new("not-a-date"), fixedNow))
	})

	t.Run("valid value is parsed", func(t *testing.T) {
		got := ParseFeedDate(new("Mon, 02 Jan 2006 15:04:05 +0000"), fixedNow)
		assert.True(t, got.Equal(time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)))
	})

	t.Run("default clock is the wall clock", func(t *testing.T) {
		before := time.Now()
		got := ParseFeedDate(nil, nil)
		assert.WithinDuration(t, before, got, time.Second)
	})
}

func TestCatalogDateToShortDate(t *testing.T) {
	assert.Equal(t, "3/15/24", CatalogDateToShortDate(new("2024-03-15T07:00:00Z"), ""))
	assert.Equal(t, "2024-03-15", CatalogDateToShortDate(new("2024-03-15T07:00:00"), "2006-01-02"))
	assert.Equal(t, Placeholder, CatalogDateToShortDate(nil, ""))
	assert.Equal(t, Placeholder, CatalogDateToShortDate(new("yesterday"), ""))
	// Feed-style dates are not catalog dates.
	assert.Equal(t, Placeholder, CatalogDateToShortDate(new("Mon, 02 Jan 2006 15:04:05 GMT"), ""))
}

func TestDateToShortDate(t *testing.T) {
	d := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "10/5/26", DateToShortDate(d, ""))
	assert.Equal(t, "05 Oct 2026", DateToShortDate(d, "02 Jan 2006"))
}
