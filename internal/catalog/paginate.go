package catalog

const (
	// DefaultPageSize is the number of records shown per page.
	DefaultPageSize = 12
	// DefaultWindowSize is the number of page buttons exposed at once.
	DefaultWindowSize = 5
)

// TotalPages returns ceil(count/pageSize). A non-positive page size falls back
// to DefaultPageSize.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of records. Pages outside the available
// range yield an empty slice.
func Paginate(records []Record, page, pageSize int) []Record {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return []Record{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []Record{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end:end]
}

// PageWindow returns the page numbers to expose as controls, centered on
// current and never longer than size. It returns an empty slice when there
// are no pages.
func PageWindow(current, total, size int) []int {
	if total <= 0 {
		return []int{}
	}
	if size <= 0 {
		size = DefaultWindowSize
	}
	start := maxInt(1, current-size/2)
	end := minInt(total, start+size-1)
	start = maxInt(1, minInt(start, total-size+1))

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ClampPage keeps page within [1, max(total,1)].
func ClampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if total < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
