// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemKind tags the concrete type stored behind an [Item].
type ItemKind int

const (
	// KindTitle is a client-inserted section header.
	KindTitle ItemKind = iota + 1

	// KindDescription is a client-inserted description row carrying a switch action.
	KindDescription

	// KindRecord is one remote entity fetched from the feed.
	KindRecord
)

// String returns the lower-case name of the kind, used in logs and the journal.
func (k ItemKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindDescription:
		return "description"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Item is one row of the synchronized collection.
//
// The set of implementations is closed: the unexported marker method keeps
// other packages from adding kinds. Code that must handle every kind should
// go through [ItemVisitor] instead of a type switch, so that adding a kind is
// a compile-time change for all of its callers.
//
// All implementations are comparable value types; two items compare equal
// with == exactly when every field matches.
type Item interface {
	// Kind returns the tag of the concrete type.
	Kind() ItemKind

	// Accept dispatches the item to the matching visitor method.
	Accept(v ItemVisitor)

	isItem()
}

// ItemVisitor handles each [Item] kind. Renderers implement it to get
// exhaustive, compiler-checked handling of the collection.
type ItemVisitor interface {
	VisitTitle(t Title)
	VisitDescription(d Description)
	VisitRecord(r Record)
}

// Title is a section header. It is always inserted by the client and never
// comes from the feed.
type Title struct {
	Text string `json:"text"`
}

// Description is a client-inserted text row. SwitchActionID is an opaque
// token the display layer hands back when the user toggles the row's switch.
type Description struct {
	Text           string `json:"text"`
	SwitchActionID string `json:"switch_action_id"`
}

// Record is one remote entity. ExternalID is its stable identity across fetches.
type Record struct {
	ExternalID int64  `json:"external_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Species    string `json:"species"`
	ImageRef   string `json:"image_ref"`
}

func (Title) Kind() ItemKind       { return KindTitle }
func (Description) Kind() ItemKind { return KindDescription }
func (Record) Kind() ItemKind      { return KindRecord }

func (t Title) Accept(v ItemVisitor)       { v.VisitTitle(t) }
func (d Description) Accept(v ItemVisitor) { v.VisitDescription(d) }
func (r Record) Accept(v ItemVisitor)      { v.VisitRecord(r) }

func (Title) isItem()       {}
func (Description) isItem() {}
func (Record) isItem()      {}

// RecordItems converts a batch of records into collection items, preserving order.
func RecordItems(records []Record) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		items = append(items, r)
	}
	return items
}
