package services

import (
	"context"

	"github.com/desertthunder/mvx/internal/models"
)

// AuthService defines the authentication surface of the backend collaborator.
type AuthService interface {
	// SignIn exchanges credentials for a complete session (token + profile).
	SignIn(ctx context.Context, email, password string) (*models.Session, error)

	// SignUp registers a new account and returns the server's message.
	SignUp(ctx context.Context, name, email, password string) (string, error)
}

// WatchlistService defines the watchlist surface of the backend collaborator.
// Every call requires a bearer token; mutations return the authoritative
// full list after the change.
type WatchlistService interface {
	// FetchAll retrieves the user's watchlist.
	FetchAll(ctx context.Context, token string) ([]models.WatchlistEntry, error)

	// Add inserts an entry and returns the resulting full list.
	Add(ctx context.Context, token string, entry models.WatchlistEntry) ([]models.WatchlistEntry, error)

	// Remove deletes the entry with the given movie id and returns the
	// resulting full list.
	Remove(ctx context.Context, token string, movieID int) ([]models.WatchlistEntry, error)
}

// CatalogService defines the read-only title metadata feed.
type CatalogService interface {
	// Popular retrieves one page of titles ordered by popularity.
	Popular(ctx context.Context, page int) ([]models.CatalogItem, error)

	// Detail retrieves a single title by id.
	Detail(ctx context.Context, id int) (*models.CatalogItem, error)
}
