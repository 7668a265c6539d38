// Package usecase contains application-level services.
package usecase

import (
	"github.com/tesso57/podplay/internal/dispatch"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

// FeedService abstracts asynchronous RSS retrieval.
// Implementations call done exactly once on the given executor, with nil on failure.
type FeedService interface {
	GetFeed(url string, on dispatch.Executor, done func(*podcast.FeedAccumulator))
}

// PodcastService loads podcasts from their feeds.
type PodcastService struct {
	Feeds  FeedService
	Mapper PodcastMapper
}

// NewPodcastService constructs a PodcastService.
func NewPodcastService(feeds FeedService, mapper PodcastMapper) PodcastService {
	return PodcastService{Feeds: feeds, Mapper: mapper}
}

// GetPodcast fetches and maps the feed at feedURL, then calls done exactly
// once on the given executor. done receives nil when the feed could not be
// fetched, parsed or mapped.
func (s PodcastService) GetPodcast(feedURL string, on dispatch.Executor, done func(*podcast.Podcast)) {
	if on == nil {
		on = dispatch.Inline
	}
	s.Feeds.GetFeed(feedURL, dispatch.Inline, func(acc *podcast.FeedAccumulator) {
		var p *podcast.Podcast
		if acc != nil {
			p = s.Mapper.ToPodcast(feedURL, "", acc)
		}
		on.Execute(func() { done(p) })
	})
}

// GetPodcastForSummary loads the podcast behind a search summary. The
// catalog's name and artwork replace the feed's own title and image.
func (s PodcastService) GetPodcastForSummary(summary podcast.Summary, on dispatch.Executor, done func(*podcast.Podcast)) {
	s.GetPodcast(summary.FeedURL, on, func(p *podcast.Podcast) {
		if p != nil {
			name := summary.Name
			p.Title = &name
			p.ImageURL = summary.ImageURL
		}
		done(p)
	})
}
