package service

import (
	"errors"

	"github.com/MKhiriev/go-feed-sync/internal/cursor"
)

var (
	// ErrOutOfRange is returned when the cursor bounds forbid the requested move.
	ErrOutOfRange = cursor.ErrOutOfRange

	// ErrBusy is returned when a request arrives while a fetch is outstanding.
	ErrBusy = errors.New("sync in progress")

	// ErrSessionClosed is returned after Close, including to a navigation whose
	// fetch was still outstanding when Close was called.
	ErrSessionClosed = errors.New("sync session closed")

	// ErrUnknownAction is returned by TriggerAction for an action id nothing is bound to.
	ErrUnknownAction = errors.New("unknown switch action")

	// ErrUnknownNavigation is returned for a navigation value outside the defined set.
	ErrUnknownNavigation = errors.New("unknown navigation")
)

// Feed server errors.
var (
	// ErrPageNotFound is returned for a page index outside 1..pages.
	ErrPageNotFound = errors.New("page not found")

	// ErrUnknownResource is returned for a resource the dataset does not hold.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrVersionIsNotSpecified is returned when the binary carries no build version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
