// Package podcast defines core podcast models.
package podcast

import "time"

// Episode represents a single podcast episode.
type Episode struct {
	GUID        string
	Title       string
	Description string
	MediaURL    string
	MediaType   string
	ReleaseDate time.Time
	Duration    string
}

// Podcast represents a parsed podcast feed.
// Episodes keep the feed's document order, which is not necessarily chronological.
type Podcast struct {
	FeedURL     string
	Title       *string
	Description *string
	ImageURL    string
	LastUpdated *time.Time
	Episodes    []Episode
}

// TitleText returns the title or an empty string.
func (p *Podcast) TitleText() string {
	if p == nil || p.Title == nil {
		return ""
	}
	return *p.Title
}

// DescriptionText returns the description or an empty string.
func (p *Podcast) DescriptionText() string {
	if p == nil || p.Description == nil {
		return ""
	}
	return *p.Description
}
