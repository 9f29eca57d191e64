// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cursor tracks the pagination position of a synchronized collection
// together with the navigation bounds reported by the last successful fetch.
//
// A [PageCursor] has no loading state of its own; whoever owns it decides
// when a move is committed. Before the first [PageCursor.ApplyBounds] the
// bounds are optimistic: there is no previous page and there may be a next one.
package cursor

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/models"
)

// FirstPage is the lowest page index the cursor can hold.
const FirstPage = 1

// ErrOutOfRange is returned when a move would leave the known bounds.
var ErrOutOfRange = errors.New("navigation out of range")

// PageCursor is the current page plus the last known bounds.
// The zero value is not usable; construct it with [New].
type PageCursor struct {
	page        int
	hasPrevious bool
	hasNext     bool
}

// New returns a cursor at the first page with optimistic bounds.
func New() *PageCursor {
	return &PageCursor{page: FirstPage, hasPrevious: false, hasNext: true}
}

// Page returns the current page index.
func (c *PageCursor) Page() int {
	return c.page
}

// CanGoToPrevious reports whether a move to the previous page is allowed.
func (c *PageCursor) CanGoToPrevious() bool {
	return c.page > FirstPage && c.hasPrevious
}

// CanGoToNext reports whether a move to the next page is allowed.
func (c *PageCursor) CanGoToNext() bool {
	return c.hasNext
}

// Peek returns the page [PageCursor.Advance] would move to without moving.
func (c *PageCursor) Peek(dir models.Direction) (int, error) {
	switch dir {
	case models.Previous:
		if !c.CanGoToPrevious() {
			return c.page, fmt.Errorf("%w: no page before %d", ErrOutOfRange, c.page)
		}
		return c.page - 1, nil
	case models.Next:
		if !c.CanGoToNext() {
			return c.page, fmt.Errorf("%w: no page after %d", ErrOutOfRange, c.page)
		}
		return c.page + 1, nil
	default:
		return c.page, fmt.Errorf("%w: unknown direction %d", ErrOutOfRange, dir)
	}
}

// Advance moves the cursor one page in dir. It fails with [ErrOutOfRange]
// when the matching Can* check is false; the page never drops below
// [FirstPage].
func (c *PageCursor) Advance(dir models.Direction) error {
	target, err := c.Peek(dir)
	if err != nil {
		return err
	}
	c.page = target
	return nil
}

// ApplyBounds overwrites the stored bounds with what the feed reported.
func (c *PageCursor) ApplyBounds(hasPrevious, hasNext bool) {
	c.hasPrevious = hasPrevious
	c.hasNext = hasNext
}

// Navigation returns the state the display layer needs for its controls.
func (c *PageCursor) Navigation() models.NavigationState {
	return models.NavigationState{
		Page:          c.page,
		CanGoPrevious: c.CanGoToPrevious(),
		CanGoNext:     c.CanGoToNext(),
	}
}
