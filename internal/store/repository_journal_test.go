package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockJournal(t *testing.T) (SyncJournalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSyncJournalRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

// ── Record ──────────────────────────────────────────────────────────────────

func TestRecord_Success(t *testing.T) {
	repo, mock := newMockJournal(t)
	entry := models.JournalEntry{
		SessionID:  "s-1",
		Navigation: "load_more",
		Page:       3,
		Outcome:    models.OutcomeSynced,
		Inserts:    20,
		ItemCount:  62,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_journal")).
		WithArgs("s-1", "load_more", 3, "synced", "", 20, 0, 0, 62, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Record(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_ExecError(t *testing.T) {
	repo, mock := newMockJournal(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_journal")).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Record(context.Background(), models.JournalEntry{SessionID: "s-1", Outcome: models.OutcomeFailed})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	repo, mock := newMockJournal(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(journalColumns).
		AddRow(2, "s-1", "next", 2, "failed", "network", 0, 0, 0, 22, "", now).
		AddRow(1, "s-1", "reload", 1, "synced", "", 22, 0, 0, 22, "abc", now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id")).
		WithArgs("s-1").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "s-1", 50)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.JournalEntry{
		ID: 2, SessionID: "s-1", Navigation: "next", Page: 2,
		Outcome: models.OutcomeFailed, FailureKind: "network", ItemCount: 22, CreatedAt: now,
	}, got[0])
	assert.Equal(t, models.OutcomeSynced, got[1].Outcome)
	assert.Equal(t, "abc", got[1].SnapshotHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock := newMockJournal(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(journalColumns))

	got, err := repo.List(context.Background(), "nobody", 10)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newMockJournal(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id")).
		WillReturnError(errors.New("no such table"))

	_, err := repo.List(context.Background(), "s-1", 10)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestList_ScanError(t *testing.T) {
	repo, mock := newMockJournal(t)

	rows := sqlmock.NewRows(journalColumns).
		AddRow("not-a-number", "s-1", "next", 2, "synced", "", 0, 0, 0, 0, "", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id")).WillReturnRows(rows)

	_, err := repo.List(context.Background(), "s-1", 10)

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── sqlite ──────────────────────────────────────────────────────────────────

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	storages, err := NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: "file:journal_roundtrip?mode=memory&cache=shared"},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.JournalRepository
	for page := 1; page <= 3; page++ {
		_, err = repo.Record(ctx, models.JournalEntry{
			SessionID:  "s-1",
			Navigation: "next",
			Page:       page,
			Outcome:    models.OutcomeSynced,
			ItemCount:  page * 20,
		})
		require.NoError(t, err)
	}
	_, err = repo.Record(ctx, models.JournalEntry{SessionID: "other", Outcome: models.OutcomeFailed})
	require.NoError(t, err)

	got, err := repo.List(ctx, "s-1", 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Page)
	assert.Equal(t, 2, got[1].Page)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := t.TempDir() + "/journal.db"

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file:x?mode=memory&cache=shared"))
	assert.False(t, isMemoryDSN("journal.db"))
}
