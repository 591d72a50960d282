package ui

import "time"

// Grid geometry.
const (
	// GridColumns is the number of cards per row.
	GridColumns = 4

	// CardMinWidth is the narrowest a card is drawn, borders included.
	CardMinWidth = 18

	// CardHeight is a card's rendered height, borders included.
	CardHeight = 5

	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 100

	// OverlayWidth is the detail overlay's outer width.
	OverlayWidth = 60
)

// Timing constants.
const (
	// SnapshotInterval is how often the UI re-reads the load store.
	SnapshotInterval = 150 * time.Millisecond

	// DetailFetchTimeout bounds the re-fetch issued when a card is opened.
	DetailFetchTimeout = 10 * time.Second
)

// cardWidth splits the terminal width across GridColumns.
func cardWidth(total int) int {
	w := total / GridColumns
	if w < CardMinWidth {
		return CardMinWidth
	}
	return w
}
