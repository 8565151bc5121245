package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
)

// SessionStore defines the persisted-session surface the engine depends on.
// Implemented by repositories.SessionRepository.
type SessionStore interface {
	Load() (*models.Session, bool)
	Save(session *models.Session) error
	Clear() error
}

// ActivityRecorder records successful mutations locally.
// Recording is best-effort: errors are logged and otherwise ignored.
type ActivityRecorder interface {
	Record(action string, movieID int, title string) error
}

// WatchlistEngine owns the in-memory watchlist projection and applies the
// guard, de-duplication, and reconciliation rules for mutations.
type WatchlistEngine struct {
	store        SessionStore
	remote       services.WatchlistService
	imageBaseURL string
	recorder     ActivityRecorder
	events       chan<- Event
	logger       *log.Logger

	mu          sync.Mutex
	entries     []models.WatchlistEntry
	pending     map[int]struct{}
	nextTicket  uint64
	lastApplied uint64
}

// NewWatchlistEngine creates an engine with the provided session store and
// remote client. imageBaseURL feeds poster normalization.
func NewWatchlistEngine(store SessionStore, remote services.WatchlistService, imageBaseURL string) *WatchlistEngine {
	return &WatchlistEngine{
		store:        store,
		remote:       remote,
		imageBaseURL: imageBaseURL,
		logger:       shared.NewLogger(nil),
		pending:      make(map[int]struct{}),
	}
}

// SetRecorder attaches a best-effort activity recorder.
func (e *WatchlistEngine) SetRecorder(recorder ActivityRecorder) {
	e.recorder = recorder
}

// SetEvents attaches a channel receiving engine events. Sends never block;
// a full channel drops the event.
func (e *WatchlistEngine) SetEvents(events chan<- Event) {
	e.events = events
}

// SetLogger replaces the engine's logger.
func (e *WatchlistEngine) SetLogger(logger *log.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// token returns the current session token, if a complete session exists.
func (e *WatchlistEngine) token() (string, bool) {
	session, ok := e.store.Load()
	if !ok {
		return "", false
	}
	return session.Token, true
}

// sendEvent delivers an event without blocking.
func (e *WatchlistEngine) sendEvent(event Event) {
	if e.events == nil {
		return
	}
	select {
	case e.events <- event:
	default:
		// Channel full, drop the event
	}
}

// Load populates the projection from the server.
//
// With no session the projection is emptied and no call is made. A fetch
// failure leaves the projection empty and returns the typed error; the
// caller surfaces it as a non-fatal warning (read-only degraded mode).
func (e *WatchlistEngine) Load(ctx context.Context) error {
	token, ok := e.token()
	if !ok {
		e.Reset()
		return nil
	}

	entries, err := e.remote.FetchAll(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrSessionExpired) {
			e.signOut()
		}
		return err
	}

	e.mu.Lock()
	e.entries = entries
	count := len(entries)
	e.mu.Unlock()

	e.sendEvent(loadedEvent(count))
	return nil
}

// Entries returns a snapshot copy of the projection. Callers may not
// observe or cause mutations through it.
func (e *WatchlistEngine) Entries() []models.WatchlistEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := make([]models.WatchlistEntry, len(e.entries))
	copy(snapshot, e.entries)
	return snapshot
}

// Contains reports whether the projection holds an entry for the movie id.
func (e *WatchlistEngine) Contains(movieID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.containsLocked(movieID)
}

func (e *WatchlistEngine) containsLocked(movieID int) bool {
	for _, entry := range e.entries {
		if entry.MovieID == movieID {
			return true
		}
	}
	return false
}

// Pending reports whether a mutation is in flight for the movie id.
func (e *WatchlistEngine) Pending(movieID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[movieID]
	return ok
}

// count returns the current projection size.
func (e *WatchlistEngine) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// Reset empties the projection and invalidates any in-flight responses.
// Called on sign-out; performs no network calls.
func (e *WatchlistEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = nil
	e.lastApplied = e.nextTicket
}

// signOut clears the persisted session and the projection after a 401.
func (e *WatchlistEngine) signOut() {
	if err := e.store.Clear(); err != nil {
		e.logger.Warnf("failed to clear session: %v", err)
	}
	e.Reset()
	e.sendEvent(sessionExpiredEvent())
}

// begin marks a mutation for the movie id as in flight and issues its
// reconciliation ticket. The second return value is false when the key
// already has a mutation pending.
func (e *WatchlistEngine) begin(movieID int) (uint64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, inFlight := e.pending[movieID]; inFlight {
		return 0, false
	}
	e.pending[movieID] = struct{}{}
	e.nextTicket++
	return e.nextTicket, true
}

// finish clears the in-flight marker for the movie id.
func (e *WatchlistEngine) finish(movieID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, movieID)
}

// reconcile replaces the projection with an authoritative server list,
// unless a response with a newer ticket has already been applied.
func (e *WatchlistEngine) reconcile(ticket uint64, entries []models.WatchlistEntry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ticket <= e.lastApplied {
		return false
	}
	e.lastApplied = ticket
	e.entries = entries
	return true
}

// record appends to the local activity log, best-effort.
func (e *WatchlistEngine) record(action string, movieID int, title string) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Record(action, movieID, title); err != nil {
		e.logger.Warnf("failed to record activity: %v", err)
	}
}

// RequestAdd adds a catalog candidate to the watchlist.
//
// Returns false with a nil error when the add was a successful no-op (entry
// already present, or a mutation for the key is in flight). On success the
// projection equals the server-returned list.
func (e *WatchlistEngine) RequestAdd(ctx context.Context, candidate models.CatalogItem) (bool, error) {
	token, ok := e.token()
	if !ok {
		return false, fmt.Errorf("%w: sign in to manage your watchlist", shared.ErrNotAuthenticated)
	}

	if candidate.ID == 0 {
		return false, fmt.Errorf("%w: candidate has no id", shared.ErrInvalidInput)
	}

	if e.Contains(candidate.ID) {
		return false, nil
	}

	ticket, ok := e.begin(candidate.ID)
	if !ok {
		return false, nil
	}
	defer e.finish(candidate.ID)

	entry := models.EntryFromCandidate(candidate, e.imageBaseURL)

	entries, err := e.remote.Add(ctx, token, entry)
	if err != nil {
		if errors.Is(err, shared.ErrSessionExpired) {
			e.signOut()
		}
		return false, err
	}

	applied := e.reconcile(ticket, entries)
	if !applied {
		e.logger.Debugf("discarded stale add response for %d", candidate.ID)
	}

	e.record("added", entry.MovieID, entry.Title)
	e.sendEvent(entryAddedEvent(entry.MovieID, e.count(), entry.Title))
	return true, nil
}

// RequestRemove removes an entry by movie id.
//
// A 404 from the server means the entry was already gone: it is dropped
// from the projection and the call reports success. Returns false with a
// nil error when a mutation for the key is already in flight.
func (e *WatchlistEngine) RequestRemove(ctx context.Context, movieID int) (bool, error) {
	token, ok := e.token()
	if !ok {
		return false, fmt.Errorf("%w: sign in to manage your watchlist", shared.ErrNotAuthenticated)
	}

	ticket, ok := e.begin(movieID)
	if !ok {
		return false, nil
	}
	defer e.finish(movieID)

	title := e.titleOf(movieID)

	entries, err := e.remote.Remove(ctx, token, movieID)
	if err != nil {
		if errors.Is(err, shared.ErrEntryNotFound) {
			// Already consistent server-side, drop locally.
			e.reconcile(ticket, e.without(movieID))
			e.sendEvent(entryRemovedEvent(movieID, e.count()))
			return true, nil
		}
		if errors.Is(err, shared.ErrSessionExpired) {
			e.signOut()
		}
		return false, err
	}

	applied := e.reconcile(ticket, entries)
	if !applied {
		e.logger.Debugf("discarded stale remove response for %d", movieID)
	}

	e.record("removed", movieID, title)
	e.sendEvent(entryRemovedEvent(movieID, e.count()))
	return true, nil
}

// titleOf returns the projected title for a movie id, if present.
func (e *WatchlistEngine) titleOf(movieID int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, entry := range e.entries {
		if entry.MovieID == movieID {
			return entry.Title
		}
	}
	return ""
}

// without returns a copy of the projection with the movie id filtered out.
func (e *WatchlistEngine) without(movieID int) []models.WatchlistEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	filtered := make([]models.WatchlistEntry, 0, len(e.entries))
	for _, entry := range e.entries {
		if entry.MovieID != movieID {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
