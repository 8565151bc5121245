// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
)

// MemorySessionStore is an in-memory test double for tasks.SessionStore.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *models.Session
	saveErr error
}

func NewMemorySessionStore(session *models.Session) *MemorySessionStore {
	return &MemorySessionStore{session: session}
}

func (s *MemorySessionStore) Load() (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.Complete() {
		return nil, false
	}
	return s.session, true
}

func (s *MemorySessionStore) Save(session *models.Session) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.session = session
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

func (s *MemorySessionStore) SetSaveErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// FakeWatchlistService is a scripted test double for
// services.WatchlistService with per-operation call counting.
type FakeWatchlistService struct {
	mu sync.Mutex

	FetchResult  []models.WatchlistEntry
	FetchErr     error
	AddResult    []models.WatchlistEntry
	AddErr       error
	RemoveResult []models.WatchlistEntry
	RemoveErr    error

	// AddFunc/RemoveFunc override the scripted results when set.
	AddFunc    func(entry models.WatchlistEntry) ([]models.WatchlistEntry, error)
	RemoveFunc func(movieID int) ([]models.WatchlistEntry, error)

	FetchCalls  int
	AddCalls    int
	RemoveCalls int
}

func (f *FakeWatchlistService) FetchAll(ctx context.Context, token string) ([]models.WatchlistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchCalls++
	return f.FetchResult, f.FetchErr
}

func (f *FakeWatchlistService) Add(ctx context.Context, token string, entry models.WatchlistEntry) ([]models.WatchlistEntry, error) {
	f.mu.Lock()
	f.AddCalls++
	fn := f.AddFunc
	result, err := f.AddResult, f.AddErr
	f.mu.Unlock()
	if fn != nil {
		return fn(entry)
	}
	return result, err
}

func (f *FakeWatchlistService) Remove(ctx context.Context, token string, movieID int) ([]models.WatchlistEntry, error) {
	f.mu.Lock()
	f.RemoveCalls++
	fn := f.RemoveFunc
	result, err := f.RemoveResult, f.RemoveErr
	f.mu.Unlock()
	if fn != nil {
		return fn(movieID)
	}
	return result, err
}

// Calls returns the total number of network calls made.
func (f *FakeWatchlistService) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FetchCalls + f.AddCalls + f.RemoveCalls
}

// FakeRecorder is a test double for tasks.ActivityRecorder.
type FakeRecorder struct {
	mu      sync.Mutex
	Actions []string
	Err     error
}

func (r *FakeRecorder) Record(action string, movieID int, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Actions = append(r.Actions, action)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// RecordingRoundTripper captures requests and serves scripted responses.
type RecordingRoundTripper struct {
	mu        sync.Mutex
	Requests  []*http.Request
	Responder func(req *http.Request) (*http.Response, error)
}

func (r *RecordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	r.Requests = append(r.Requests, req)
	fn := r.Responder
	r.mu.Unlock()
	return fn(req)
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
