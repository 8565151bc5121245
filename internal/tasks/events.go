package tasks

import "fmt"

// EventKind enumerates watchlist engine events.
type EventKind int

const (
	EventLoaded EventKind = iota
	EventEntryAdded
	EventEntryRemoved
	EventSessionExpired
)

func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventEntryAdded:
		return "entry_added"
	case EventEntryRemoved:
		return "entry_removed"
	case EventSessionExpired:
		return "session_expired"
	default:
		return ""
	}
}

// Event is a notification emitted by the engine after a state change.
//
// Used to drive re-renders in the TUI without polling.
type Event struct {
	Kind    EventKind
	MovieID int    // Affected entry key, zero for list-wide events
	Count   int    // Projection size after the change
	Message string // Human-readable message for display
}

func loadedEvent(count int) Event {
	return Event{
		Kind:    EventLoaded,
		Count:   count,
		Message: fmt.Sprintf("Loaded %d watchlist entries", count),
	}
}

func entryAddedEvent(movieID, count int, title string) Event {
	return Event{
		Kind:    EventEntryAdded,
		MovieID: movieID,
		Count:   count,
		Message: fmt.Sprintf("Added '%s' to watchlist", title),
	}
}

func entryRemovedEvent(movieID, count int) Event {
	return Event{
		Kind:    EventEntryRemoved,
		MovieID: movieID,
		Count:   count,
		Message: "Removed entry from watchlist",
	}
}

func sessionExpiredEvent() Event {
	return Event{
		Kind:    EventSessionExpired,
		Message: "Session expired, signed out",
	}
}
