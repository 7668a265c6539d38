// Package subscription defines podcast subscription rules.
package subscription

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrEmptyURL is returned for a blank feed URL.
	ErrEmptyURL = errors.New("feed url is empty")
	// ErrInvalidURL is returned for a feed URL that cannot be fetched over http(s).
	ErrInvalidURL = errors.New("invalid feed url")
)

// NormalizeURL trims raw and checks that it is an absolute http(s) URL.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyURL
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return "", fmt.Errorf("%w: contains whitespace", ErrInvalidURL)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must be an http(s) url", ErrInvalidURL, trimmed)
	}
	return trimmed, nil
}

// SplitList breaks whitespace-joined entries apart and drops blanks.
func SplitList(feeds []string) []string {
	if len(feeds) == 0 {
		return feeds
	}
	out := make([]string, 0, len(feeds))
	for _, feed := range feeds {
		for item := range strings.FieldsSeq(feed) {
			out = append(out, item)
		}
	}
	return out
}
