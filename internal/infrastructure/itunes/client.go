// Package itunes queries the iTunes catalog for podcasts.
package itunes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tesso57/podplay/internal/dispatch"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

// DefaultBaseURL is the public iTunes search endpoint host.
const DefaultBaseURL = "https://itunes.apple.com"

const maxResponseSize = 5 * 1024 * 1024

// ErrEmptyTerm is returned for a blank search term.
var ErrEmptyTerm = errors.New("search term is empty")

type searchResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []searchResult `json:"results"`
}

type searchResult struct {
	CollectionCensoredName string `json:"collectionCensoredName"`
	FeedURL                string `json:"feedUrl"`
	ArtworkURL30           string `json:"artworkUrl30"`
	ReleaseDate            string `json:"releaseDate"`
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Transport http.RoundTripper
	Logger    *zap.SugaredLogger
}

// Client searches the catalog.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *zap.SugaredLogger
}

// NewClient constructs a Client.
func NewClient(opt Options) *Client {
	if opt.BaseURL == "" {
		opt.BaseURL = DefaultBaseURL
	}
	if opt.Timeout <= 0 {
		opt.Timeout = 30 * time.Second
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:   strings.TrimRight(opt.BaseURL, "/"),
		userAgent: opt.UserAgent,
		http:      &http.Client{Timeout: opt.Timeout, Transport: opt.Transport},
		logger:    opt.Logger,
	}
}

// SearchByTerm searches in the background and calls done exactly once on the
// given executor, with nil on any failure.
func (c *Client) SearchByTerm(term string, on dispatch.Executor, done func([]podcast.SearchResult)) {
	if on == nil {
		on = dispatch.Inline
	}
	go func() {
		results, err := c.Search(context.Background(), term)
		if err != nil {
			c.logger.Warnw("podcast search failed", "term", term, "error", err)
			results = nil
		}
		on.Execute(func() { done(results) })
	}()
}

// Search runs a podcast search synchronously.
func (c *Client) Search(ctx context.Context, term string) ([]podcast.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	endpoint := c.baseURL + "/search?" + url.Values{
		"media": {"podcast"},
		"term":  {term},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]podcast.SearchResult, 0, len(payload.Results))
	for _, r := range payload.Results {
		results = append(results, podcast.SearchResult{
			Name:        r.CollectionCensoredName,
			FeedURL:     r.FeedURL,
			ImageURL:    r.ArtworkURL30,
			ReleaseDate: r.ReleaseDate,
		})
	}
	c.logger.Debugw("podcast search complete", "term", term, "results", len(results))
	return results, nil
}
