package core

import (
	"context"
	"time"
)

// Store defines the contract for keeping article counts. Adhering to
// this interface keeps the service independent of the underlying
// persistence mechanism (flat file, memory, SQL, ...).
type Store interface {
	// Load populates the store wholesale from its backing medium,
	// replacing any in-memory state. On failure the store is reset to
	// empty, never left partially populated. A missing backing file is
	// reported as ErrDataFileMissing; a malformed line as *ParseError.
	Load(ctx context.Context) error

	// Save writes the full store back to its backing medium, replacing
	// existing content. Round-trips losslessly with Load for diary
	// names containing no commas.
	Save(ctx context.Context) error

	// Add upserts the count at (date, diary). Last write wins.
	Add(date Date, diary string, count int)

	// Count returns the count recorded at (date, diary), if any.
	Count(date Date, diary string) (int, bool)

	// CountsSince returns every record for the diary dated cutoff or
	// later, ordered by date ascending. Future dates are not excluded.
	CountsSince(diary string, cutoff Date) []DatedCount

	// Diaries lists the distinct diary names present, sorted.
	Diaries() []string

	// Len returns the number of (date, diary) records held.
	Len() int
}

// Event reports that a store reloaded its contents from disk.
type Event struct {
	Time    time.Time
	Records int
	Err     error
}

// Watchable is implemented by stores that can observe their backing
// medium and reload when it changes out from under them.
type Watchable interface {
	// Watch reloads the store whenever the backing file changes and
	// emits an Event per reload. The channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
