// Package browse holds the catalog grid's browsing state.
//
// State owns the filter inputs (search text, category), the page number and
// the cursor. Everything shown on screen is derived on read: filtered list,
// current page slice, total pages and the page-button window are recomputed
// from the inputs each time they are requested, so there is no cache that can
// drift.
//
// Changing either the search text or the category returns to page 1. Page
// moves are clamped so that 1 <= Page() <= max(TotalPages(), 1).
package browse
