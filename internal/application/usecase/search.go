package usecase

import (
	"github.com/tesso57/podplay/internal/dateutil"
	"github.com/tesso57/podplay/internal/dispatch"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

// SearchClient abstracts the podcast catalog.
// Implementations call done exactly once on the given executor, with nil on failure.
type SearchClient interface {
	SearchByTerm(term string, on dispatch.Executor, done func([]podcast.SearchResult))
}

// SearchService turns catalog results into display summaries.
type SearchService struct {
	Client     SearchClient
	DateLayout string
}

// NewSearchService constructs a SearchService.
func NewSearchService(client SearchClient, dateLayout string) SearchService {
	return SearchService{Client: client, DateLayout: dateLayout}
}

// SearchPodcasts searches the catalog. A failed search yields an empty list.
func (s SearchService) SearchPodcasts(term string, on dispatch.Executor, done func([]podcast.Summary)) {
	s.Client.SearchByTerm(term, on, func(results []podcast.SearchResult) {
		done(s.ToSummaries(results))
	})
}

// ToSummaries maps raw results to summaries, preserving order.
func (s SearchService) ToSummaries(results []podcast.SearchResult) []podcast.Summary {
	summaries := make([]podcast.Summary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, podcast.Summary{
			Name:        r.Name,
			LastUpdated: dateutil.CatalogDateToShortDate(&r.ReleaseDate, s.DateLayout),
			ImageURL:    r.ImageURL,
			FeedURL:     r.FeedURL,
		})
	}
	return summaries
}
