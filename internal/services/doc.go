// Package services implements HTTP clients for the two external
// collaborators: the watchlist backend and the TMDB catalog feed.
//
// # Backend
//
// [BackendService] implements [AuthService] and [WatchlistService] against
// the REST backend. Watchlist calls attach `Authorization: Bearer <token>`;
// mutations return the full authoritative list rather than a delta, so the
// caller can reconcile without drift.
//
// HTTP outcomes are classified into typed errors from the shared package
// before they leave this boundary:
//   - 401                      : [shared.ErrSessionExpired] (callers must sign out)
//   - 400 on add               : [shared.ErrDuplicateEntry], carrying the server message
//   - 404 on remove            : [shared.ErrEntryNotFound]
//   - any other non-2xx        : [shared.ErrServerError]
//   - transport failure        : [shared.ErrServiceUnreachable]
//
// # Catalog
//
// [TMDBService] implements [CatalogService]: popular titles by page and
// detail by id. A missing API key fails with [shared.ErrMissingConfig]
// before any request is issued. Responses are read-only and never cached.
package services
