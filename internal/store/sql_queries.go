package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed-sync/models"
)

const journalTable = "sync_journal"

var journalColumns = []string{
	"id",
	"session_id",
	"navigation",
	"page",
	"outcome",
	"failure_kind",
	"inserts",
	"updates",
	"removes",
	"item_count",
	"snapshot_hash",
	"created_at",
}

// sqlite understands ? placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertJournalEntryQuery(entry models.JournalEntry) (string, []any, error) {
	return builder.
		Insert(journalTable).
		Columns(journalColumns[1:]...).
		Values(
			entry.SessionID,
			entry.Navigation,
			entry.Page,
			string(entry.Outcome),
			entry.FailureKind,
			entry.Inserts,
			entry.Updates,
			entry.Removes,
			entry.ItemCount,
			entry.SnapshotHash,
			entry.CreatedAt,
		).
		ToSql()
}

func buildSelectJournalQuery(sessionID string, limit uint64) (string, []any, error) {
	q := builder.
		Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("id DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	return q.ToSql()
}
