// Package models defines domain entities for the mvx watchlist client.
//
// Three categories of types:
//
//  1. [Session] : the locally held proof of authentication (bearer token plus
//     profile fields). A session is either complete or absent; partial
//     sessions are rejected by [Session.Complete].
//  2. [WatchlistEntry] : an entry in the user's server-side watchlist, keyed
//     by MovieID. The backend owns the authoritative list; clients only hold
//     projections of it.
//  3. [CatalogItem] : a read-only title fetched from the TMDB catalog feed.
//     Never persisted; normalized into a WatchlistEntry on add via
//     [EntryFromCandidate].
//
// Field normalization (title, poster, genre fallback chains) lives here as
// explicit ordered-priority resolvers rather than inline conditionals.
package models
