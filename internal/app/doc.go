// Package app is the composition root for dex.
//
// # Overview
//
// This package wires configuration, logging, the API client, the load-state
// store and the UI together. It also owns the one-shot catalog load.
//
// # Components
//
//   - app.go: Setup, NewClient and the TUI entry point Run
//   - loader.go: LoadCatalog (concurrent all-or-nothing fetch) and Hydrate
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/dex/config.toml
//	       ├─────> logging.Open()       File logger, becomes slog default
//	       ├─────> NewClient()          HTTP client with capped transport
//	       ├─────> prefs.Load()         Theme
//	       ├─────> Hydrate()            Background load into state.Store
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Hydrate goroutine:
//	┌─────────────────────────────────────────┐
//	│ FetchIndex(limit)                       │
//	│  └─> FetchRecord(ref) × N  (errgroup)   │
//	│       └─> Wait once                     │
//	│ store.Resolve(records | err)            │
//	└─────────────────────────────────────────┘
//
// # Load Semantics
//
// Every detail request is started without waiting on the previous one. The
// per-host connection cap (max_connections) lives in the HTTP transport, so
// it limits open sockets while the request fan-out stays unbounded. The first
// failure cancels the siblings through the errgroup context and the whole
// load fails; the store never receives a partial list.
//
// There is no automatic retry. The UI exposes a reload key that calls
// Hydrate again through Options.Reload.
//
// # Error Handling
//
// Fatal errors (returned from Run or Setup):
//   - Config file unreadable or invalid TOML
//   - Log file cannot be created
//   - Invalid base_url
//
// Recoverable errors (logged, surfaced in the UI):
//   - Catalog load failures
//   - Unreadable prefs file
package app
