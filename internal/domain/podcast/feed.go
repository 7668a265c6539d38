package podcast

import "time"

// FeedAccumulator collects feed values during a single parse.
// A nil Episodes slice marks a malformed accumulator; an empty one is valid.
type FeedAccumulator struct {
	Title       *string
	Description *string
	Summary     *string
	LastUpdated *time.Time
	Episodes    []*EpisodeAccumulator
}

// EpisodeAccumulator collects the raw values of one <item>.
// PubDate is kept unparsed until mapping.
type EpisodeAccumulator struct {
	GUID        *string
	Title       *string
	Description *string
	MediaURL    *string
	MediaType   *string
	PubDate     *string
	Link        *string
	Duration    *string
}

// NewFeedAccumulator returns an accumulator with an empty episode sequence.
func NewFeedAccumulator() *FeedAccumulator {
	return new(FeedAccumulator{Episodes: []*EpisodeAccumulator{}})
}

// BeginEpisode appends a new empty episode and returns it.
// Only the returned episode may be mutated until the next call.
func (f *FeedAccumulator) BeginEpisode() *EpisodeAccumulator {
	ep := &EpisodeAccumulator{}
	f.Episodes = append(f.Episodes, ep)
	return ep
}

// CurrentEpisode returns the last appended episode, or nil when there is none.
func (f *FeedAccumulator) CurrentEpisode() *EpisodeAccumulator {
	if f == nil || len(f.Episodes) == 0 {
		return nil
	}
	return f.Episodes[len(f.Episodes)-1]
}

// SetEnclosure sets the media URL and type together.
func (e *EpisodeAccumulator) SetEnclosure(url, mediaType string) {
	e.MediaURL = &url
	e.MediaType = &mediaType
}
