// Package rss fetches podcast RSS feeds and walks them into accumulators.
package rss

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/tesso57/podplay/internal/dispatch"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

const feedAcceptHeader = "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

const (
	defaultTimeout      = 30 * time.Second
	defaultUserAgent    = "Podplay/1.0"
	defaultMaxBodyBytes = 20 * 1024 * 1024
)

var (
	// ErrEmptyURL is returned for a blank feed URL.
	ErrEmptyURL = errors.New("feed url is empty")
	// ErrTransport covers request construction, connection and read failures.
	ErrTransport = errors.New("feed transport failed")
	// ErrEmptyBody is returned when a successful response has no content.
	ErrEmptyBody = errors.New("feed response body is empty")
	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("feed response body too large")
	// ErrMalformed is returned when the body is not well-formed XML.
	ErrMalformed = errors.New("feed document is malformed")
)

// StatusError reports a response status outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected feed status: %s", e.Status)
}

type acceptTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	if clone.Header.Get("User-Agent") == "" && t.userAgent != "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return base.RoundTrip(clone)
}

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Transport    http.RoundTripper
	Logger       *zap.SugaredLogger
	Now          func() time.Time
}

// Fetcher retrieves RSS feeds over HTTP.
// It does not retry and offers no way to cancel an asynchronous fetch.
type Fetcher struct {
	client  *http.Client
	maxBody int64
	walker  Walker
	logger  *zap.SugaredLogger
}

// NewFetcher constructs a Fetcher.
func NewFetcher(opt Options) *Fetcher {
	if opt.Timeout <= 0 {
		opt.Timeout = defaultTimeout
	}
	if opt.UserAgent == "" {
		opt.UserAgent = defaultUserAgent
	}
	if opt.MaxBodyBytes <= 0 {
		opt.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop().Sugar()
	}
	return &Fetcher{
		client: &http.Client{
			Timeout:   opt.Timeout,
			Transport: acceptTransport{base: opt.Transport, userAgent: opt.UserAgent},
		},
		maxBody: opt.MaxBodyBytes,
		walker:  Walker{Now: opt.Now, Logger: opt.Logger},
		logger:  opt.Logger,
	}
}

// GetFeed fetches url in the background and calls done exactly once on the
// given executor, with nil on any failure.
func (f *Fetcher) GetFeed(url string, on dispatch.Executor, done func(*podcast.FeedAccumulator)) {
	if on == nil {
		on = dispatch.Inline
	}
	go func() {
		acc, err := f.Fetch(context.Background(), url)
		if err != nil {
			f.logger.Warnw("feed fetch failed", "url", url, "error", err)
			acc = nil
		}
		on.Execute(func() { done(acc) })
	}()
}

// Fetch retrieves and walks a feed synchronously.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*podcast.FeedAccumulator, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}

	if kind := gofeed.DetectFeedType(bytes.NewReader(body)); kind != gofeed.FeedTypeRSS {
		f.logger.Warnw("feed is not RSS, episodes may be missing", "url", url, "type", feedTypeName(kind))
	}

	doc, err := parseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	acc := podcast.NewFeedAccumulator()
	f.walker.Walk(doc, acc)
	f.logger.Debugw("parsed feed", "url", url, "episodes", len(acc.Episodes))
	return acc, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, ErrBodyTooLarge
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

// parseDocument builds the node tree without namespace checks, so prefixed
// tags such as itunes:duration parse even when xmlns:itunes is undeclared.
// Well-formedness is still enforced by a strict token pass first.
func parseDocument(body []byte) (*xmlquery.Node, error) {
	if err := checkWellFormed(body); err != nil {
		return nil, err
	}
	return xmlquery.ParseWithOptions(bytes.NewReader(body), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{Strict: false},
	})
}

func checkWellFormed(body []byte) error {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.Strict = true
	d.CharsetReader = charset.NewReaderLabel
	for {
		if _, err := d.Token(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func feedTypeName(kind gofeed.FeedType) string {
	switch kind {
	case gofeed.FeedTypeAtom:
		return "atom"
	case gofeed.FeedTypeJSON:
		return "json"
	case gofeed.FeedTypeRSS:
		return "rss"
	default:
		return "unknown"
	}
}
