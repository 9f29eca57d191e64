package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/models"
)

// Sentinels matched by [FetchError.Is], one per failure kind.
var (
	ErrNetwork        = errors.New("feed unreachable")
	ErrServerRejected = errors.New("feed rejected request")
	ErrMalformed      = errors.New("malformed feed response")
)

// FetchError describes a failed page fetch.
type FetchError struct {
	Kind models.FailureKind
	// Status is the HTTP status for FailureServerRejected, zero otherwise.
	Status int
	Page   int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == models.FailureServerRejected {
		return fmt.Sprintf("fetch page %d: %s (status %d): %v", e.Page, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch page %d: %s: %v", e.Page, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNetwork) and friends work on the kind.
func (e *FetchError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *FetchError) sentinel() error {
	switch e.Kind {
	case models.FailureNetwork:
		return ErrNetwork
	case models.FailureServerRejected:
		return ErrServerRejected
	case models.FailureMalformed:
		return ErrMalformed
	default:
		return errUnknownKind
	}
}

var errUnknownKind = errors.New("unknown fetch failure")

func networkError(page int, err error) *FetchError {
	return &FetchError{Kind: models.FailureNetwork, Page: page, Err: err}
}

func rejectedError(page, status int, err error) *FetchError {
	return &FetchError{Kind: models.FailureServerRejected, Status: status, Page: page, Err: err}
}

func malformedError(page int, err error) *FetchError {
	return &FetchError{Kind: models.FailureMalformed, Page: page, Err: err}
}

// Classify reports the failure kind and status of err. Errors that are not a
// [*FetchError] (a custom FeedClient, a cancelled context) count as network
// failures.
func Classify(err error) (models.FailureKind, int) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, fe.Status
	}
	return models.FailureNetwork, 0
}
