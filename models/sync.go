package models

import "time"

// FailureKind classifies why a fetch failed.
type FailureKind int

const (
	// FailureNetwork means the request never produced a response.
	FailureNetwork FailureKind = iota + 1

	// FailureServerRejected means the feed answered with a non-success status.
	FailureServerRejected

	// FailureMalformed means the response could not be turned into a batch.
	FailureMalformed
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureServerRejected:
		return "server_rejected"
	case FailureMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// RejectionReason explains why a navigation request was refused before any fetch.
type RejectionReason int

const (
	// RejectedOutOfRange means the cursor bounds forbid the move.
	RejectedOutOfRange RejectionReason = iota + 1

	// RejectedBusy means another fetch is still outstanding.
	RejectedBusy
)

func (r RejectionReason) String() string {
	switch r {
	case RejectedOutOfRange:
		return "out_of_range"
	case RejectedBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// SyncUpdate is emitted to the display layer after every successful sync.
type SyncUpdate struct {
	Navigation Navigation
	EditScript EditScript
	State      NavigationState
}

// SyncFailure is emitted to the display layer after every failed sync.
type SyncFailure struct {
	Navigation Navigation
	Kind       FailureKind
	// Status is the HTTP-like status for FailureServerRejected, zero otherwise.
	Status     int
	FailedPage int
	Err        error
}

// NavigationRejected is emitted when a request is refused without fetching.
type NavigationRejected struct {
	Navigation Navigation
	Reason     RejectionReason
	Page       int
}

// SyncOutcome is the result column of a journal entry.
type SyncOutcome string

const (
	OutcomeSynced SyncOutcome = "synced"
	OutcomeFailed SyncOutcome = "failed"
)

// JournalEntry records one finished sync attempt of a session.
type JournalEntry struct {
	ID           int64       `json:"id"`
	SessionID    string      `json:"session_id"`
	Navigation   string      `json:"navigation"`
	Page         int         `json:"page"`
	Outcome      SyncOutcome `json:"outcome"`
	FailureKind  string      `json:"failure_kind,omitempty"`
	Inserts      int         `json:"inserts"`
	Updates      int         `json:"updates"`
	Removes      int         `json:"removes"`
	ItemCount    int         `json:"item_count"`
	SnapshotHash string      `json:"snapshot_hash"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SyncState is the lifecycle state of a sync session.
type SyncState string

const (
	// SyncIdle accepts navigation requests.
	SyncIdle SyncState = "idle"

	// SyncFetching has one fetch outstanding and rejects new requests as busy.
	SyncFetching SyncState = "fetching"

	// SyncError is entered after a failed fetch. It accepts requests like idle.
	SyncError SyncState = "error"
)
