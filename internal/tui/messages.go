package tui

import (
	"github.com/MKhiriev/go-feed-sync/models"
)

type syncRenderedMsg struct {
	update models.SyncUpdate
}

type syncFailedMsg struct {
	failure models.SyncFailure
}

type navRejectedMsg struct {
	rejected models.NavigationRejected
}

// navDoneMsg is returned by the command that ran a navigation once the
// controller has let go of it.
type navDoneMsg struct {
	nav    models.Navigation
	action string
	err    error
}

type historyLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type copiedMsg struct {
	err error
}
