package models

// PageBatch is the result of fetching one page from the feed.
type PageBatch struct {
	// Page is the index that was requested.
	Page int `json:"page"`

	// Records are the page contents in feed order.
	Records []Record `json:"records"`

	// HasPrevious reports whether the feed has a page before this one.
	HasPrevious bool `json:"has_previous"`

	// HasNext reports whether the feed has a page after this one.
	HasNext bool `json:"has_next"`
}

// Direction is a single-step cursor move.
type Direction int

const (
	Previous Direction = iota + 1
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// MergePolicy selects how a fetched batch is combined with the collection.
type MergePolicy int

const (
	// Replace makes the batch (plus decoration) the whole collection.
	Replace MergePolicy = iota + 1

	// Append adds the batch after the existing collection.
	Append
)

func (p MergePolicy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Append:
		return "append"
	default:
		return "unknown"
	}
}

// Navigation is a request the caller can issue against the synchronized collection.
type Navigation int

const (
	// Reload re-fetches the current page and replaces the collection.
	Reload Navigation = iota + 1

	// GoPrevious replaces the collection with the previous page.
	GoPrevious

	// GoNext replaces the collection with the next page.
	GoNext

	// LoadMore appends the next page to the collection.
	LoadMore
)

func (n Navigation) String() string {
	switch n {
	case Reload:
		return "reload"
	case GoPrevious:
		return "previous"
	case GoNext:
		return "next"
	case LoadMore:
		return "load_more"
	default:
		return "unknown"
	}
}

// Direction returns the cursor move the navigation needs. ok is false for
// Reload, which stays on the current page.
func (n Navigation) Direction() (dir Direction, ok bool) {
	switch n {
	case GoPrevious:
		return Previous, true
	case GoNext, LoadMore:
		return Next, true
	default:
		return 0, false
	}
}

// Policy returns the merge policy the navigation applies.
func (n Navigation) Policy() MergePolicy {
	if n == LoadMore {
		return Append
	}
	return Replace
}

// NavigationState tells the display layer which navigation controls are enabled.
type NavigationState struct {
	Page          int  `json:"page"`
	CanGoPrevious bool `json:"can_go_previous"`
	CanGoNext     bool `json:"can_go_next"`
}
