// Watchlist backend implementation of [AuthService] and [WatchlistService].
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

var (
	_ AuthService      = (*BackendService)(nil)
	_ WatchlistService = (*BackendService)(nil)
)

// BackendService talks to the watchlist REST backend.
type BackendService struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendService creates a backend client for the given base URL.
func NewBackendService(baseURL string, client *http.Client) *BackendService {
	if client == nil {
		client = http.DefaultClient
	}

	return &BackendService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// apiError carries a non-2xx status and the server-provided message through
// doRequest so each operation can classify it.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status %d", e.Status)
}

// doRequest performs a request against the backend, decoding a JSON success
// body into result. Non-2xx responses come back as *apiError; transport
// failures as [shared.ErrServiceUnreachable].
func (s *BackendService) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		message := errBody.Message
		if message == "" {
			message = errBody.Error
		}
		return &apiError{Status: resp.StatusCode, Message: message}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrServerError, err)
		}
	}

	return nil
}

// classify maps an *apiError to the shared taxonomy. Overrides take
// precedence per status code; 401 always means the session is no longer
// valid unless overridden (signin maps it to ErrAuthFailed instead).
func classify(err error, overrides map[int]error) error {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return err
	}

	if sentinel, ok := overrides[apiErr.Status]; ok {
		return fmt.Errorf("%w: %s", sentinel, apiErr.Message)
	}
	if apiErr.Status == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrSessionExpired, apiErr.Message)
	}
	return fmt.Errorf("%w: %v", shared.ErrServerError, apiErr)
}

// SignIn exchanges email and password for a session.
func (s *BackendService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp models.SigninResponse
	if err := s.doRequest(ctx, http.MethodPost, "/signin", "", body, &resp); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusBadRequest:   shared.ErrAuthFailed,
			http.StatusUnauthorized: shared.ErrAuthFailed,
		})
	}

	session := &models.Session{
		UserID: resp.UserID,
		Name:   resp.Name,
		Email:  email,
		Token:  resp.Token,
	}
	if !session.Complete() {
		return nil, fmt.Errorf("%w: signin response missing session fields", shared.ErrServerError)
	}

	return session, nil
}

// SignUp registers a new account.
func (s *BackendService) SignUp(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp models.SignupResponse
	if err := s.doRequest(ctx, http.MethodPost, "/signup", "", body, &resp); err != nil {
		return "", classify(err, map[int]error{
			http.StatusBadRequest: shared.ErrInvalidInput,
		})
	}

	return resp.Message, nil
}

// requireToken guards watchlist operations: a missing token fails before any
// request is issued.
func requireToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: no session token", shared.ErrNotAuthenticated)
	}
	return nil
}

// FetchAll retrieves the user's watchlist.
func (s *BackendService) FetchAll(ctx context.Context, token string) ([]models.WatchlistEntry, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var resp models.WatchlistResponse
	if err := s.doRequest(ctx, http.MethodGet, "/watchlist", token, nil, &resp); err != nil {
		return nil, classify(err, nil)
	}
	return resp.Watchlist, nil
}

// Add inserts an entry and returns the authoritative full list.
func (s *BackendService) Add(ctx context.Context, token string, entry models.WatchlistEntry) ([]models.WatchlistEntry, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var resp models.WatchlistResponse
	if err := s.doRequest(ctx, http.MethodPost, "/watchlist/add", token, entry, &resp); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusBadRequest: shared.ErrDuplicateEntry,
		})
	}
	return resp.Watchlist, nil
}

// Remove deletes an entry by movie id and returns the authoritative full list.
func (s *BackendService) Remove(ctx context.Context, token string, movieID int) ([]models.WatchlistEntry, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var resp models.WatchlistResponse
	path := fmt.Sprintf("/watchlist/%d", movieID)
	if err := s.doRequest(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusNotFound: shared.ErrEntryNotFound,
		})
	}
	return resp.Watchlist, nil
}
