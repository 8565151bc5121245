// Package repositories implements SQLite persistence for local client state.
//
// Two stores exist:
//   - [SessionRepository] : the persisted session, one row under a fixed
//     name. Saves are transactional (the whole session or nothing) and
//     malformed rows load as absent rather than failing.
//   - [ActivityRepository] : an append-only log of local watchlist
//     mutations with atomic per-table sequence numbers for stable ordering.
//
// The [NextSequence] function atomically increments a dedicated sequence
// counter table inside a transaction.
package repositories
