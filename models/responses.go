package models

// FeedPageResponse is the JSON body of a page served by the feed,
// e.g. GET /api/character?page=2.
type FeedPageResponse struct {
	// Info carries the navigation metadata of the page. The client derives
	// HasPrevious/HasNext from the presence of Prev and Next.
	Info FeedPageInfo `json:"info"`

	// Results is the page contents. A response without a results array is
	// treated as malformed, an empty array as an empty page.
	Results []FeedRecord `json:"results"`
}

// FeedPageInfo is the navigation block of a [FeedPageResponse].
type FeedPageInfo struct {
	// Count is the total number of records the feed holds.
	Count int `json:"count"`

	// Pages is the total number of pages.
	Pages int `json:"pages"`

	// Next is the URL of the following page, or nil on the last page.
	Next *string `json:"next"`

	// Prev is the URL of the preceding page, or nil on the first page.
	Prev *string `json:"prev"`
}

// FeedRecord is one entity as it appears on the wire.
type FeedRecord struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Species string `json:"species"`
	Image   string `json:"image"`
}

// ToRecord converts the wire form into the collection form.
func (f FeedRecord) ToRecord() Record {
	return Record{
		ExternalID: f.ID,
		Name:       f.Name,
		Status:     f.Status,
		Species:    f.Species,
		ImageRef:   f.Image,
	}
}

// FeedErrorResponse is the body the feed returns for pages it does not have.
type FeedErrorResponse struct {
	Error string `json:"error"`
}
