// Package ui provides the dex terminal interface, built on Bubble Tea.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ dex  ● Records: 1,302  Matching: 48  loaded 2 minutes ago│ header.go
//	│ / char            Type: fire 2/12                        │ header.go
//	│ ┌──────┐┌──────┐┌──────┐┌──────┐                         │
//	│ │ #004 ││ #005 ││ #006 ││ #037 │  four cards per row     │ grid.go
//	│ └──────┘└──────┘└──────┘└──────┘                         │
//	│        ‹ prev  1  2  3  4  next ›  page 1 of 4           │ grid.go
//	│ / search  tab next type  n next page  ...                │ footer
//	└──────────────────────────────────────────────────────────┘
//
// # State
//
// Model owns every piece of interactive state and is only touched from the
// Bubble Tea event loop. The catalog itself arrives through state.Store, which
// the loader goroutine resolves; the model re-reads it on a short tick
// (SnapshotInterval) and copies a new result into browse.State.
//
// Filtering, pagination and the page-button window all come from
// browse.State, which recomputes them on every read.
//
// # Detail Overlay
//
// Enter re-fetches the selected record by id. Each request carries a
// selection token; a response whose token is no longer current is dropped, so
// rapid selection never shows the wrong record. A failed fetch leaves the
// overlay closed and puts the error in the footer.
//
// When the response arrives the model opens a modal.Lifecycle whose scheduler
// (tickScheduler) turns the staged reveal into tea.Tick commands. The body
// appears at ContentVisible and the stat bars fill at StatsVisible. Esc closes
// the overlay immediately.
//
// # Themes
//
// Nightfox, Kanagawa, Slate and the light Dawnfox are available. T cycles
// them and the choice is saved to the prefs file. Type chips use the catalog
// palette, with text color picked by lightness (go-colorful).
//
// # Files
//
//   - app.go: Model, Update, key routing, messages and commands
//   - keys.go: key bindings (bubbles/key), short and full help
//   - header.go: status bar and filter bar
//   - grid.go: card grid, pagination bar, footer
//   - detail.go: record overlay with stat bars (bubbles/progress)
//   - modal.go: tea.Tick scheduler for the overlay lifecycle
//   - help.go: help overlay
//   - badges.go: type chips and accent colors
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//   - strings.go, layout.go: text helpers and geometry constants
package ui
