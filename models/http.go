package models

// FeedPageQuery is what the stub feed server needs to answer one page request.
type FeedPageQuery struct {
	// Resource is the collection name from the path, e.g. "character".
	Resource string

	// Page is the requested 1-based page index.
	Page int

	// BaseURL is the scheme and host the info.next/info.prev links point at,
	// e.g. "http://localhost:8080".
	BaseURL string
}
