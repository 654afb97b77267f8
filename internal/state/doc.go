// Package state records the health of the log source for display.
//
// # Overview
//
// The follower or poller goroutine reports every read to a Store; the UI reads
// a Snapshot on its refresh tick to draw the header and status bar. Log lines
// themselves do not pass through here; they travel to the UI as messages.
//
//	Producer (follower/poller):      Consumer (UI):
//	┌──────────────────┐            ┌──────────────────┐
//	│ read / fetch     │            │                  │
//	│      ↓           │            │                  │
//	│ store.Update()   │───────────→│ store.Snapshot() │
//	│      ↓           │  (mutex)   │      ↓           │
//	│ repeat...        │            │ render status    │
//	└──────────────────┘            └──────────────────┘
//
// # Update Semantics
//
//	// Success: status replaced when non-nil, lines counted, error cleared
//	store.Update(status, len(lines), nil)
//
//	// Failure: previous status kept, error recorded, failure counted
//	store.Update(nil, 0, err)
//
// Two or more consecutive failures mark the source offline.
//
// # Concurrency Model
//
// Update and RecordTruncation take the write lock; Snapshot takes the read
// lock and returns a value copy whose error is re-wrapped, so callers never
// share mutable state with the store. The zero Store is ready to use.
package state
