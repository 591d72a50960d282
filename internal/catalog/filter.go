package catalog

import "strings"

// AllCategories is the sentinel category that disables type filtering.
const AllCategories = "all"

// Categories lists the selectable categories in display order, starting with
// the AllCategories sentinel.
var Categories = []string{
	AllCategories,
	"fire", "water", "grass", "electric", "psychic", "rock",
	"ground", "poison", "bug", "flying", "normal",
}

// Criteria narrows a record set by name substring and category.
type Criteria struct {
	Search   string
	Category string
}

// Matches reports whether a single record satisfies the criteria.
func (c Criteria) Matches(r Record) bool {
	needle := strings.ToLower(strings.TrimSpace(c.Search))
	return matches(r, needle, c.Category)
}

// Filter returns the records matching criteria, preserving their order. The
// input slice is never modified.
func Filter(records []Record, c Criteria) []Record {
	needle := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matches(r, needle, c.Category) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, needle, category string) bool {
	if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
		return false
	}
	if category == "" || category == AllCategories {
		return true
	}
	return r.HasType(category)
}

// NextCategory returns the category after current in Categories, wrapping.
// Unknown values restart at the beginning.
func NextCategory(current string, step int) string {
	n := len(Categories)
	for i, c := range Categories {
		if c == current {
			return Categories[((i+step)%n+n)%n]
		}
	}
	return Categories[0]
}
