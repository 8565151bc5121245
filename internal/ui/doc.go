// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for watchlist management:
//  1. [BrowseView] : page through popular titles, filter, and add to the watchlist
//  2. [WatchlistView] : review saved entries and remove them
//
// The view [Model] implements bubbletea's standard Init/Update/View pattern.
// Engine events flow through a channel from the WatchlistEngine, so mutations
// confirmed by the server refresh the view without polling. Mutations in
// flight render a pending marker; the list itself only changes once the
// authoritative server response lands.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, tab, [/], q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
