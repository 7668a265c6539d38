// Package dateutil normalizes the timestamp formats podcast sources emit.
//
// Feed dates and catalog dates come from different systems and fail
// differently: feed dates fall back to the current instant, catalog dates
// fall back to a placeholder string. Keep the two paths separate.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Placeholder is displayed when a catalog date is missing or malformed.
const Placeholder = "-"

// DefaultShortLayout is the short display layout used when none is configured.
const DefaultShortLayout = "1/2/06"

// catalogLayout matches the release dates returned by the search catalog.
const catalogLayout = "2006-01-02T15:04:05"

// rssLayouts accept "<weekday>, <day> <month> <year> <hh>:<mm>:<ss> <zone>"
// with a named zone or a numeric offset and a one- or two-digit day.
var rssLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// rfc822Zones are the named zones RFC 822 defines. time.Parse only knows
// an abbreviation's offset when the local zone uses it, so these are fixed.
var rfc822Zones = map[string]int{
	"UT":  0,
	"UTC": 0,
	"GMT": 0,
	"Z":   0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// ErrInvalidDate is returned when a value matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// ParseRSSDate parses an RSS pubDate strictly.
func ParseRSSDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	// time.Parse rejects zone names shorter than three letters.
	if head, zone, ok := cutLastField(value); ok && (zone == "UT" || zone == "Z") {
		value = head + " +0000"
	}
	for _, layout := range rssLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return withRFC822Zone(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func withRFC822Zone(t time.Time) time.Time {
	name, _ := t.Zone()
	offset, ok := rfc822Zones[name]
	if !ok {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, offset))
}

func cutLastField(value string) (head, last string, ok bool) {
	i := strings.LastIndexByte(value, ' ')
	if i < 0 {
		return "", "", false
	}
	return value[:i], value[i+1:], true
}

// ParseFeedDate converts a feed date to an instant.
// A nil or malformed value yields now(); the failure is never surfaced.
func ParseFeedDate(raw *string, now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	if raw == nil {
		return now()
	}
	t, err := ParseRSSDate(*raw)
	if err != nil {
		return now()
	}
	return t
}

// CatalogDateToShortDate formats a catalog release date for display.
// A nil or malformed value yields Placeholder.
func CatalogDateToShortDate(raw *string, layout string) string {
	if raw == nil {
		return Placeholder
	}
	value := strings.TrimSuffix(strings.TrimSpace(*raw), "Z")
	t, err := time.Parse(catalogLayout, value)
	if err != nil {
		return Placeholder
	}
	return DateToShortDate(t, layout)
}

// DateToShortDate formats t with layout, or DefaultShortLayout when layout is empty.
func DateToShortDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultShortLayout
	}
	return t.Format(layout)
}
