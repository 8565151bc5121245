package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
	tu "github.com/desertthunder/mvx/internal/testing"
)

func entryFixture() models.WatchlistEntry {
	return models.WatchlistEntry{MovieID: 7, Title: "Dark", Status: "plan"}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newBackend(rt http.RoundTripper) *BackendService {
	return NewBackendService("https://backend.example.com", &http.Client{Transport: rt})
}

func TestBackendService(t *testing.T) {
	ctx := context.Background()

	t.Run("SignIn", func(t *testing.T) {
		t.Run("Returns Complete Session", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(200, `{"message":"ok","userId":"user-1","name":"Test User","token":"token-abc"}`), nil
				},
			}

			session, err := newBackend(rt).SignIn(ctx, "test@example.com", "hunter2")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if session.UserID != "user-1" || session.Token != "token-abc" {
				t.Errorf("unexpected session %+v", session)
			}
			if session.Email != "test@example.com" {
				t.Errorf("expected request email on session, got %s", session.Email)
			}

			req := rt.Requests[0]
			if req.Method != http.MethodPost || req.URL.Path != "/signin" {
				t.Errorf("expected POST /signin, got %s %s", req.Method, req.URL.Path)
			}
			if req.Header.Get("Authorization") != "" {
				t.Error("signin must not carry an Authorization header")
			}
		})

		t.Run("Bad Credentials Map To Auth Failed", func(t *testing.T) {
			for _, status := range []int{400, 401} {
				rt := &tu.RecordingRoundTripper{
					Responder: func(req *http.Request) (*http.Response, error) {
						return jsonResponse(status, `{"message":"invalid credentials"}`), nil
					},
				}

				_, err := newBackend(rt).SignIn(ctx, "test@example.com", "wrong")
				if !errors.Is(err, shared.ErrAuthFailed) {
					t.Errorf("status %d: expected ErrAuthFailed, got %v", status, err)
				}
			}
		})

		t.Run("Incomplete Response Is A Server Error", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(200, `{"message":"ok","name":"Test User"}`), nil
				},
			}

			_, err := newBackend(rt).SignIn(ctx, "test@example.com", "hunter2")
			if !errors.Is(err, shared.ErrServerError) {
				t.Errorf("expected ErrServerError for missing fields, got %v", err)
			}
		})

		t.Run("Transport Failure Is Unreachable", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(nil, errors.New("connection refused"))
			svc := NewBackendService("https://backend.example.com", &http.Client{Transport: rt})

			_, err := svc.SignIn(ctx, "test@example.com", "hunter2")
			if !errors.Is(err, shared.ErrServiceUnreachable) {
				t.Errorf("expected ErrServiceUnreachable, got %v", err)
			}
		})
	})

	t.Run("SignUp", func(t *testing.T) {
		t.Run("Returns Server Message", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(201, `{"message":"account created"}`), nil
				},
			}

			message, err := newBackend(rt).SignUp(ctx, "Test User", "test@example.com", "hunter2")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if message != "account created" {
				t.Errorf("unexpected message %q", message)
			}
			if rt.Requests[0].URL.Path != "/signup" {
				t.Errorf("expected POST /signup, got %s", rt.Requests[0].URL.Path)
			}
		})

		t.Run("Validation Failure Maps To Invalid Input", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(400, `{"message":"email already registered"}`), nil
				},
			}

			_, err := newBackend(rt).SignUp(ctx, "Test User", "test@example.com", "hunter2")
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("Watchlist", func(t *testing.T) {
		t.Run("Empty Token Fails Before Any Request", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(200, `{"username":"Test User","watchlist":[]}`), nil
				},
			}
			svc := newBackend(rt)

			if _, err := svc.FetchAll(ctx, ""); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("fetch: expected ErrNotAuthenticated, got %v", err)
			}
			if _, err := svc.Add(ctx, "", entryFixture()); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("add: expected ErrNotAuthenticated, got %v", err)
			}
			if _, err := svc.Remove(ctx, "", 7); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("remove: expected ErrNotAuthenticated, got %v", err)
			}

			if len(rt.Requests) != 0 {
				t.Errorf("expected no requests without a token, got %d", len(rt.Requests))
			}
		})

		t.Run("FetchAll Sends Bearer Token", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(200, `{"username":"Test User","watchlist":[{"movieId":7,"title":"Dark"}]}`), nil
				},
			}

			entries, err := newBackend(rt).FetchAll(ctx, "token-abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(entries) != 1 || entries[0].MovieID != 7 {
				t.Errorf("unexpected entries %+v", entries)
			}

			req := rt.Requests[0]
			if req.Method != http.MethodGet || req.URL.Path != "/watchlist" {
				t.Errorf("expected GET /watchlist, got %s %s", req.Method, req.URL.Path)
			}
			if got := req.Header.Get("Authorization"); got != "Bearer token-abc" {
				t.Errorf("expected bearer header, got %q", got)
			}
		})

		t.Run("Add Duplicate Maps To Duplicate Entry", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(400, `{"message":"movie already in watchlist"}`), nil
				},
			}

			_, err := newBackend(rt).Add(ctx, "token-abc", entryFixture())
			if !errors.Is(err, shared.ErrDuplicateEntry) {
				t.Errorf("expected ErrDuplicateEntry, got %v", err)
			}
		})

		t.Run("Add Returns Authoritative List", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(200, `{"username":"Test User","watchlist":[{"movieId":7,"title":"Dark"},{"movieId":9,"title":"Severance"}]}`), nil
				},
			}

			entries, err := newBackend(rt).Add(ctx, "token-abc", entryFixture())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(entries) != 2 {
				t.Errorf("expected full server list, got %d entries", len(entries))
			}
			if rt.Requests[0].URL.Path != "/watchlist/add" {
				t.Errorf("expected POST /watchlist/add, got %s", rt.Requests[0].URL.Path)
			}
		})

		t.Run("Remove Targets Movie ID Path", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(200, `{"username":"Test User","watchlist":[]}`), nil
				},
			}

			entries, err := newBackend(rt).Remove(ctx, "token-abc", 7)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("expected empty list, got %d entries", len(entries))
			}

			req := rt.Requests[0]
			if req.Method != http.MethodDelete || req.URL.Path != "/watchlist/7" {
				t.Errorf("expected DELETE /watchlist/7, got %s %s", req.Method, req.URL.Path)
			}
		})

		t.Run("Missing Entry Maps To Not Found", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(404, `{"message":"movie not in watchlist"}`), nil
				},
			}

			_, err := newBackend(rt).Remove(ctx, "token-abc", 7)
			if !errors.Is(err, shared.ErrEntryNotFound) {
				t.Errorf("expected ErrEntryNotFound, got %v", err)
			}
		})

		t.Run("Unauthorized Maps To Session Expired", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(401, `{"message":"invalid token"}`), nil
				},
			}

			svc := newBackend(rt)
			if _, err := svc.FetchAll(ctx, "stale"); !errors.Is(err, shared.ErrSessionExpired) {
				t.Errorf("fetch: expected ErrSessionExpired, got %v", err)
			}
			if _, err := svc.Add(ctx, "stale", entryFixture()); !errors.Is(err, shared.ErrSessionExpired) {
				t.Errorf("add: expected ErrSessionExpired, got %v", err)
			}
			if _, err := svc.Remove(ctx, "stale", 7); !errors.Is(err, shared.ErrSessionExpired) {
				t.Errorf("remove: expected ErrSessionExpired, got %v", err)
			}
		})

		t.Run("Unexpected Status Is A Server Error", func(t *testing.T) {
			rt := &tu.RecordingRoundTripper{
				Responder: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(500, `{"error":"internal"}`), nil
				},
			}

			_, err := newBackend(rt).FetchAll(ctx, "token-abc")
			if !errors.Is(err, shared.ErrServerError) {
				t.Errorf("expected ErrServerError, got %v", err)
			}
		})
	})
}
