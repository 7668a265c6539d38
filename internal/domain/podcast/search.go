package podcast

// SearchResult is a podcast record returned by the search catalog.
// ReleaseDate is in the catalog's own format.
type SearchResult struct {
	Name        string
	FeedURL     string
	ImageURL    string
	ReleaseDate string
}

// Summary is a search result prepared for display.
type Summary struct {
	Name        string
	LastUpdated string
	ImageURL    string
	FeedURL     string
}
