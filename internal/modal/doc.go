// Package modal drives the detail overlay's staged reveal.
//
// Opening a record moves the Lifecycle to Opening and schedules two events
// through the injected Scheduler, both timed from the Open call: Reveal
// (default 50ms) shows the body and Stats (default 500ms) fills the stat bars.
// Close is synchronous. Events carry the generation of the Open that
// scheduled them, so anything still in flight after a Close or a re-Open is
// ignored.
//
//	Closed ──Open──> Opening ──Reveal──> ContentVisible ──Stats──> StatsVisible
//	   ^                                                               │
//	   └──────────────── Closing <──────────Close (any phase)──────────┘
//
// The TUI implements Scheduler with tea.Tick; tests use a virtual clock.
package modal
