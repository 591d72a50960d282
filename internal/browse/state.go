package browse

import (
	"strings"

	"github.com/five82/dex/internal/catalog"
)

// State is the browsing state for the catalog grid: the loaded records, the
// user's filter inputs, the current page and the cursor within that page.
// Only inputs are stored; filtered results, page slices and the page window
// are recomputed from them on every read.
type State struct {
	records    []catalog.Record
	search     string
	category   string
	page       int
	cursor     int
	pageSize   int
	windowSize int
}

// New returns an empty State. Non-positive sizes use the catalog defaults.
func New(pageSize, windowSize int) *State {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	if windowSize <= 0 {
		windowSize = catalog.DefaultWindowSize
	}
	return &State{
		category:   catalog.AllCategories,
		page:       1,
		pageSize:   pageSize,
		windowSize: windowSize,
	}
}

// SetRecords replaces the record set. The page and cursor are clamped to the
// new data.
func (s *State) SetRecords(records []catalog.Record) {
	s.records = records
	s.page = s.Page()
	s.cursor = s.Cursor()
}

// SetSearch updates the name filter. A changed value resets to page 1.
func (s *State) SetSearch(search string) {
	if search == s.search {
		return
	}
	s.search = search
	s.reset()
}

// SetCategory updates the category filter. A changed value resets to page 1.
// Blank selects every category.
func (s *State) SetCategory(category string) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = catalog.AllCategories
	}
	if category == s.category {
		return
	}
	s.category = category
	s.reset()
}

// CycleCategory moves step positions through catalog.Categories.
func (s *State) CycleCategory(step int) {
	s.SetCategory(catalog.NextCategory(s.category, step))
}

// SetPage jumps to page, clamped to [1, max(TotalPages,1)].
func (s *State) SetPage(page int) {
	clamped := catalog.ClampPage(page, s.TotalPages())
	if clamped != s.page {
		s.cursor = 0
	}
	s.page = clamped
}

// NextPage advances one page; no-op on the last page.
func (s *State) NextPage() { s.SetPage(s.Page() + 1) }

// PrevPage goes back one page; no-op on the first page.
func (s *State) PrevPage() { s.SetPage(s.Page() - 1) }

// FirstPage jumps to page 1.
func (s *State) FirstPage() { s.SetPage(1) }

// LastPage jumps to the final page.
func (s *State) LastPage() { s.SetPage(s.TotalPages()) }

// MoveCursor shifts the cursor by delta within the visible page.
func (s *State) MoveCursor(delta int) {
	s.cursor = clampCursor(s.Cursor()+delta, len(s.Visible()))
}

// SetCursor places the cursor at index within the visible page.
func (s *State) SetCursor(index int) {
	s.cursor = clampCursor(index, len(s.Visible()))
}

func (s *State) reset() {
	s.page = 1
	s.cursor = 0
}

// Search returns the raw search input.
func (s *State) Search() string { return s.search }

// Category returns the selected category.
func (s *State) Category() string { return s.category }

// PageSize returns the records-per-page setting.
func (s *State) PageSize() int { return s.pageSize }

// Criteria returns the active filter.
func (s *State) Criteria() catalog.Criteria {
	return catalog.Criteria{Search: s.search, Category: s.category}
}

// Total returns the number of loaded records before filtering.
func (s *State) Total() int { return len(s.records) }

// Filtered returns the records matching the current criteria.
func (s *State) Filtered() []catalog.Record {
	return catalog.Filter(s.records, s.Criteria())
}

// Count returns the number of matching records.
func (s *State) Count() int { return len(s.Filtered()) }

// TotalPages returns ceil(Count/PageSize).
func (s *State) TotalPages() int {
	return catalog.TotalPages(s.Count(), s.pageSize)
}

// Page returns the 1-based current page, clamped to the current data.
func (s *State) Page() int {
	return catalog.ClampPage(s.page, s.TotalPages())
}

// Visible returns the records on the current page.
func (s *State) Visible() []catalog.Record {
	return catalog.Paginate(s.Filtered(), s.Page(), s.pageSize)
}

// Window returns the page numbers to show as controls.
func (s *State) Window() []int {
	return catalog.PageWindow(s.Page(), s.TotalPages(), s.windowSize)
}

// Cursor returns the cursor index within Visible.
func (s *State) Cursor() int {
	return clampCursor(s.cursor, len(s.Visible()))
}

// Selected returns the record under the cursor.
func (s *State) Selected() (catalog.Record, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return catalog.Record{}, false
	}
	return visible[clampCursor(s.cursor, len(visible))], true
}

func clampCursor(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
