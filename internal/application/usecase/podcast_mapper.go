package usecase

import (
	"time"

	"go.uber.org/zap"

	"github.com/tesso57/podplay/internal/dateutil"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

// PodcastMapper converts parse accumulators into domain podcasts.
type PodcastMapper struct {
	Now    func() time.Time
	Logger *zap.SugaredLogger
}

// NewPodcastMapper constructs a PodcastMapper.
func NewPodcastMapper(now func() time.Time, logger *zap.SugaredLogger) PodcastMapper {
	return PodcastMapper{Now: now, Logger: logger}
}

// ToPodcast builds a Podcast from acc. It returns nil when acc has no
// episode sequence at all; an empty sequence is a valid, episode-less podcast.
func (m PodcastMapper) ToPodcast(feedURL, imageURL string, acc *podcast.FeedAccumulator) *podcast.Podcast {
	if acc == nil || acc.Episodes == nil {
		return nil
	}

	// Only an empty description falls back to the summary; a missing one stays missing.
	description := acc.Description
	if description != nil && *description == "" {
		description = acc.Summary
	}

	return &podcast.Podcast{
		FeedURL:     feedURL,
		Title:       acc.Title,
		Description: description,
		ImageURL:    imageURL,
		LastUpdated: acc.LastUpdated,
		Episodes:    m.ToEpisodes(acc.Episodes),
	}
}

// ToEpisodes maps accumulators to episodes in order, defaulting absent fields.
func (m PodcastMapper) ToEpisodes(items []*podcast.EpisodeAccumulator) []podcast.Episode {
	episodes := make([]podcast.Episode, 0, len(items))
	for _, it := range items {
		if it == nil {
			it = &podcast.EpisodeAccumulator{}
		}
		episodes = append(episodes, podcast.Episode{
			GUID:        orEmpty(it.GUID),
			Title:       orEmpty(it.Title),
			Description: orEmpty(it.Description),
			MediaURL:    orEmpty(it.MediaURL),
			MediaType:   orEmpty(it.MediaType),
			ReleaseDate: m.releaseDate(it),
			Duration:    orEmpty(it.Duration),
		})
	}
	return episodes
}

func (m PodcastMapper) releaseDate(it *podcast.EpisodeAccumulator) time.Time {
	if it.PubDate != nil {
		if _, err := dateutil.ParseRSSDate(*it.PubDate); err != nil && m.Logger != nil {
			m.Logger.Debugw("unparseable episode pubDate, using current time",
				"guid", orEmpty(it.GUID), "value", *it.PubDate)
		}
	}
	return dateutil.ParseFeedDate(it.PubDate, m.Now)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
