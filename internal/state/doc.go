// Package state holds the result of dex's one-shot catalog load.
//
// # Overview
//
// The loader goroutine in package app fetches every record once at startup
// and reports the outcome here; the bubbletea event loop reads snapshots on a
// tick. The Store is the only value shared between those two goroutines.
//
//	Loader (app.Hydrate):          Consumer (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ store.Begin()    │          │                  │
//	│ LoadCatalog()    │          │ store.Snapshot() │
//	│ store.Resolve()  │─────────→│ render grid      │
//	└──────────────────┘ (mutex)  └──────────────────┘
//
// # Phases
//
//   - Loading: the zero value, and the state after Begin
//   - Ready: every record fetched; Records holds the full list
//   - Failed: any fetch failed; Records is nil and Err holds the cause
//
// A load is all-or-nothing. Resolve with a non-nil error discards whatever
// records were passed, so the UI can never render a partial catalog.
//
// # Concurrency Model
//
// Resolve and Begin take the write lock; Snapshot takes the read lock and
// returns a copy of the record slice. Records themselves are never mutated
// after fetch, so the copy is shallow.
package state
