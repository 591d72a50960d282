// Package catalog holds the record model and the pure data-shaping pipeline
// behind the catalog view.
//
// # Overview
//
// The pipeline runs on every render from the current inputs:
//
//	records ──Filter(criteria)──> filtered ──Paginate(page, size)──> visible
//	                                  │
//	                                  └──TotalPages──> PageWindow(page, total, size)
//
// Every function here is total and side-effect free. Filter preserves input
// order and never mutates its argument; Paginate returns an empty slice for
// pages outside the available range; PageWindow returns an empty slice when
// there are no pages.
//
// # Page window
//
// PageWindow centers a fixed-size run of page numbers on the current page and
// slides it back from the end so that it keeps its full width whenever there
// are at least size pages:
//
//	PageWindow(1, 1, 5)   -> [1]
//	PageWindow(10, 10, 5) -> [6 7 8 9 10]
//	PageWindow(1, 0, 5)   -> []
//
// # Colors
//
// TypeColor, StatColor and TypeGradient map names to hex display tokens. They
// are total: unknown names fall back to neutral grays.
package catalog
