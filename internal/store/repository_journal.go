package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

type syncJournalRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncJournalRepository returns the SQLite-backed [SyncJournalRepository].
func NewSyncJournalRepository(db *DB, logger *logger.Logger) SyncJournalRepository {
	logger.Debug().Msg("creating sync journal repository")
	return &syncJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncJournalRepository) Record(ctx context.Context, entry models.JournalEntry) (int64, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertJournalEntryQuery(entry)
	if err != nil {
		r.logger.Err(err).Str("func", "syncJournalRepository.Record").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncJournalRepository.Record").
			Str("session_id", entry.SessionID).
			Int("page", entry.Page).
			Msg("failed to insert journal entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *syncJournalRepository) List(ctx context.Context, sessionID string, limit uint64) ([]models.JournalEntry, error) {
	query, args, err := buildSelectJournalQuery(sessionID, limit)
	if err != nil {
		r.logger.Err(err).Str("func", "syncJournalRepository.List").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncJournalRepository.List").
			Str("session_id", sessionID).
			Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var e models.JournalEntry
		var outcome string
		if err = rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.Navigation,
			&e.Page,
			&outcome,
			&e.FailureKind,
			&e.Inserts,
			&e.Updates,
			&e.Removes,
			&e.ItemCount,
			&e.SnapshotHash,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Outcome = models.SyncOutcome(outcome)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
