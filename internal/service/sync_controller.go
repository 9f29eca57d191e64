package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/cursor"
	"github.com/MKhiriev/go-feed-sync/internal/diff"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	eventFetch   = "fetch"
	eventSucceed = "succeed"
	eventFail    = "fail"
)

// SyncController owns the cursor and the collection of one session and
// serialises navigation requests against the feed.
//
// At most one fetch is outstanding at a time. A fetch result only touches
// the cursor and the collection when it succeeds, so a failed request leaves
// both exactly as they were. Outcomes reach the [Renderer] in the order the
// fetches finished, before the controller accepts the next request.
type SyncController struct {
	feed       adapter.FeedClient
	renderer   Renderer
	decoration DecorationPolicy
	journal    store.SyncJournalRepository
	metrics    *metrics.Collector
	logger     *logger.Logger
	sessionID  string
	actions    map[string]models.Navigation

	mu     sync.Mutex
	fsm    *fsm.FSM
	cursor *cursor.PageCursor
	items  *store.CollectionStore
	epoch  uint64
	closed bool
}

var _ Navigator = (*SyncController)(nil)

// NewSyncController builds an idle controller at the first page with an
// empty collection. renderer, journal and collector may be nil.
func NewSyncController(
	feed adapter.FeedClient,
	renderer Renderer,
	decoration DecorationPolicy,
	journal store.SyncJournalRepository,
	collector *metrics.Collector,
	log *logger.Logger,
) *SyncController {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if log == nil {
		log = logger.Nop()
	}
	sessionID := utils.NewUUIDGenerator().Generate()

	c := &SyncController{
		feed:       feed,
		renderer:   renderer,
		decoration: decoration,
		journal:    journal,
		metrics:    collector,
		logger:     log.WithField("session_id", sessionID),
		sessionID:  sessionID,
		actions:    map[string]models.Navigation{},
		cursor:     cursor.New(),
		items:      store.NewCollectionStore(),
	}
	if id := decoration.Description.SwitchActionID; id != "" {
		c.actions[id] = models.LoadMore
	}

	c.fsm = fsm.NewFSM(
		string(models.SyncIdle),
		fsm.Events{
			{Name: eventFetch, Src: []string{string(models.SyncIdle), string(models.SyncError)}, Dst: string(models.SyncFetching)},
			{Name: eventSucceed, Src: []string{string(models.SyncFetching)}, Dst: string(models.SyncIdle)},
			{Name: eventFail, Src: []string{string(models.SyncFetching)}, Dst: string(models.SyncError)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug().
					Str("event", e.Event).
					Str("from", e.Src).
					Str("to", e.Dst).
					Msg("sync state changed")
			},
		},
	)

	return c
}

// SessionID identifies this controller's rows in the journal.
func (c *SyncController) SessionID() string {
	return c.sessionID
}

// Navigate implements [Navigator].
func (c *SyncController) Navigate(ctx context.Context, nav models.Navigation) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrSessionClosed
	}

	if !c.fsm.Can(eventFetch) {
		page := c.cursor.Page()
		c.mu.Unlock()
		c.reject(nav, models.RejectedBusy, page)
		return ErrBusy
	}

	target, err := c.targetPage(nav)
	if err != nil {
		page := c.cursor.Page()
		c.mu.Unlock()
		if errors.Is(err, ErrOutOfRange) {
			c.reject(nav, models.RejectedOutOfRange, page)
		}
		return err
	}

	if err = c.fsm.Event(context.WithoutCancel(ctx), eventFetch); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("start fetch: %w", err)
	}
	epoch := c.epoch
	c.mu.Unlock()

	c.logger.Debug().Str("navigation", nav.String()).Int("page", target).Msg("fetching page")

	started := time.Now()
	batch, fetchErr := c.feed.FetchPage(ctx, target)
	elapsed := time.Since(started)

	if fetchErr != nil {
		return c.fail(ctx, nav, target, epoch, elapsed, fetchErr)
	}
	return c.succeed(ctx, nav, target, epoch, elapsed, batch)
}

// TriggerAction implements [Navigator].
func (c *SyncController) TriggerAction(ctx context.Context, actionID string) error {
	nav, ok := c.actions[actionID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, actionID)
	}
	return c.Navigate(ctx, nav)
}

// State implements [Navigator].
func (c *SyncController) State() models.SyncState {
	return models.SyncState(c.fsm.Current())
}

// Navigation implements [Navigator].
func (c *SyncController) Navigation() models.NavigationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor.Navigation()
}

// Snapshot implements [Navigator].
func (c *SyncController) Snapshot() []models.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Snapshot()
}

// History implements [Navigator]. Without a journal it returns no entries.
func (c *SyncController) History(ctx context.Context, limit uint64) ([]models.JournalEntry, error) {
	if c.journal == nil {
		return []models.JournalEntry{}, nil
	}
	return c.journal.List(ctx, c.sessionID, limit)
}

// Close implements [Navigator]. It is safe to call more than once.
func (c *SyncController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.epoch++
	c.logger.Debug().Msg("sync session closed")
}

// targetPage validates nav against the cursor and returns the page to fetch.
// Must be called with c.mu held.
func (c *SyncController) targetPage(nav models.Navigation) (int, error) {
	switch nav {
	case models.Reload:
		return c.cursor.Page(), nil
	case models.GoPrevious, models.GoNext, models.LoadMore:
		dir, _ := nav.Direction()
		return c.cursor.Peek(dir)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownNavigation, nav)
	}
}

func (c *SyncController) succeed(ctx context.Context, nav models.Navigation, target int, epoch uint64, elapsed time.Duration, batch models.PageBatch) error {
	c.mu.Lock()
	if c.stale(epoch) {
		c.mu.Unlock()
		c.logger.Debug().Int("page", target).Msg("discarding fetch result of closed session")
		return ErrSessionClosed
	}

	if dir, ok := nav.Direction(); ok {
		if err := c.cursor.Advance(dir); err != nil {
			// targetPage validated the move and nothing moves the cursor while fetching
			c.mu.Unlock()
			c.finish(ctx, epoch, eventFail)
			return err
		}
	}
	c.cursor.ApplyBounds(batch.HasPrevious, batch.HasNext)

	policy := nav.Policy()
	prev := c.items.Snapshot()
	next := c.items.Merge(batch.Records, policy, c.decoration.forPage(policy, target))
	script := diff.Compute(prev, next)

	update := models.SyncUpdate{
		Navigation: nav,
		EditScript: script,
		State:      c.cursor.Navigation(),
	}
	c.mu.Unlock()

	counts := script.Counts()
	c.logger.Info().
		Str("navigation", nav.String()).
		Int("page", target).
		Int("records", len(batch.Records)).
		Int("inserts", counts.Inserts).
		Int("updates", counts.Updates).
		Int("removes", counts.Removes).
		Int("items", len(next)).
		Dur("elapsed", elapsed).
		Msg("page synced")

	c.renderer.RenderSync(update)
	c.finish(ctx, epoch, eventSucceed)

	c.metrics.RecordSync(nav, counts, len(next), elapsed)
	c.record(ctx, models.JournalEntry{
		Navigation:   nav.String(),
		Page:         target,
		Outcome:      models.OutcomeSynced,
		Inserts:      counts.Inserts,
		Updates:      counts.Updates,
		Removes:      counts.Removes,
		ItemCount:    len(next),
		SnapshotHash: store.FingerprintHex(next),
	})

	return nil
}

func (c *SyncController) fail(ctx context.Context, nav models.Navigation, target int, epoch uint64, elapsed time.Duration, fetchErr error) error {
	c.mu.Lock()
	if c.stale(epoch) {
		c.mu.Unlock()
		return ErrSessionClosed
	}
	size := c.items.Len()
	snapshot := c.items.Snapshot()
	c.mu.Unlock()

	kind, status := adapter.Classify(fetchErr)
	failure := models.SyncFailure{
		Navigation: nav,
		Kind:       kind,
		Status:     status,
		FailedPage: target,
		Err:        fetchErr,
	}

	c.logger.Warn().
		Err(fetchErr).
		Str("navigation", nav.String()).
		Int("page", target).
		Str("kind", kind.String()).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("page sync failed")

	c.renderer.RenderFailure(failure)
	c.finish(ctx, epoch, eventFail)

	c.metrics.RecordFailure(nav, elapsed)
	c.record(ctx, models.JournalEntry{
		Navigation:   nav.String(),
		Page:         target,
		Outcome:      models.OutcomeFailed,
		FailureKind:  kind.String(),
		ItemCount:    size,
		SnapshotHash: store.FingerprintHex(snapshot),
	})

	return fetchErr
}

// finish moves the state machine out of fetching unless the session was
// closed in the meantime.
func (c *SyncController) finish(ctx context.Context, epoch uint64, event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(epoch) {
		return
	}
	if err := c.fsm.Event(context.WithoutCancel(ctx), event); err != nil {
		c.logger.Err(err).Str("event", event).Msg("unexpected sync state transition error")
	}
}

func (c *SyncController) stale(epoch uint64) bool {
	return c.closed || c.epoch != epoch
}

func (c *SyncController) reject(nav models.Navigation, reason models.RejectionReason, page int) {
	c.logger.Debug().
		Str("navigation", nav.String()).
		Str("reason", reason.String()).
		Int("page", page).
		Msg("navigation rejected")

	c.metrics.RecordRejected(reason)
	c.renderer.RenderRejected(models.NavigationRejected{
		Navigation: nav,
		Reason:     reason,
		Page:       page,
	})
}

// record writes a journal entry. The journal is an audit trail only, so a
// failed write is logged and counted but never fails the sync.
func (c *SyncController) record(ctx context.Context, entry models.JournalEntry) {
	if c.journal == nil {
		return
	}
	entry.SessionID = c.sessionID

	if _, err := c.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		c.metrics.RecordJournalError()
		c.logger.Err(err).
			Str("navigation", entry.Navigation).
			Int("page", entry.Page).
			Msg("failed to write sync journal entry")
	}
}

type nopRenderer struct{}

func (nopRenderer) RenderSync(models.SyncUpdate)             {}
func (nopRenderer) RenderFailure(models.SyncFailure)         {}
func (nopRenderer) RenderRejected(models.NavigationRejected) {}
