// Package tasks implements the watchlist engine: the in-memory projection of
// the user's server-side watchlist and the rules for mutating it.
//
// # State
//
// [WatchlistEngine] owns the projection exclusively. Other components read
// snapshots via [WatchlistEngine.Entries]; nothing else writes it. The
// projection only changes when an authoritative server response is applied
// (or on sign-out, which empties it).
//
// # Mutations
//
// [WatchlistEngine.RequestAdd] and [WatchlistEngine.RequestRemove] follow
// the same sequence:
//
//  1. Guard: no session means [shared.ErrNotAuthenticated] with zero
//     network calls.
//  2. De-duplication: an add for a movie id already present, or any request
//     for a key with a mutation in flight, is a successful no-op.
//  3. Normalization: catalog candidates become watchlist entries through the
//     ordered resolvers in the models package.
//  4. Remote call, then reconciliation: the server returns the full list
//     after every mutation and that list replaces the projection.
//
// Responses are applied under a monotonic ticket: a response whose ticket is
// older than the last applied one is discarded, so an out-of-order
// completion cannot overwrite a newer authoritative list.
//
// A 401 from any watchlist call clears the persisted session and empties
// the projection. All other failures leave the projection untouched and
// surface a typed error for the caller to display.
//
// # Side channels
//
// An optional [ActivityRecorder] logs successful mutations locally;
// recording failures never disrupt the operation. An optional event channel
// receives [Event] values via non-blocking sends for UI refresh.
package tasks
