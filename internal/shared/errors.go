package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrSessionExpired   = fmt.Errorf("session expired")

	// Watchlist errors
	ErrDuplicateEntry = fmt.Errorf("entry already in watchlist")
	ErrEntryNotFound  = fmt.Errorf("entry not found")
	ErrTitleNotFound  = fmt.Errorf("title not found")

	// API and transport errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServerError        = fmt.Errorf("server error")
	ErrServiceUnreachable = fmt.Errorf("service unreachable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
