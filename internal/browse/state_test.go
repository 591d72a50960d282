package browse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dex/internal/catalog"
)

func sample(n int) []catalog.Record {
	kinds := []string{"fire", "water", "grass"}
	out := make([]catalog.Record, n)
	for i := range out {
		out[i] = catalog.Record{
			ID:    i + 1,
			Name:  fmt.Sprintf("mon-%02d", i+1),
			Types: []string{kinds[i%len(kinds)]},
		}
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	s := New(0, 0)
	assert.Equal(t, catalog.DefaultPageSize, s.PageSize())
	assert.Equal(t, catalog.AllCategories, s.Category())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 0, s.TotalPages())
	assert.Empty(t, s.Visible())
	assert.Empty(t, s.Window())

	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestState_PagesThroughFilteredRecords(t *testing.T) {
	s := New(12, 5)
	s.SetRecords(sample(25))

	assert.Equal(t, 25, s.Count())
	assert.Equal(t, 3, s.TotalPages())
	assert.Len(t, s.Visible(), 12)

	s.LastPage()
	assert.Equal(t, 3, s.Page())
	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 25, visible[0].ID)

	s.NextPage()
	assert.Equal(t, 3, s.Page(), "next on the last page is a no-op")

	s.FirstPage()
	s.PrevPage()
	assert.Equal(t, 1, s.Page(), "prev on the first page is a no-op")

	s.SetPage(99)
	assert.Equal(t, 3, s.Page())
	s.SetPage(-4)
	assert.Equal(t, 1, s.Page())
}

func TestState_SearchResetsPage(t *testing.T) {
	s := New(12, 5)
	s.SetRecords(sample(40))
	s.SetPage(3)
	s.MoveCursor(4)

	s.SetSearch("mon-1")
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 10, s.Count(), "mon-10..mon-19")
}

func TestState_CategoryResetsPage(t *testing.T) {
	s := New(4, 5)
	s.SetRecords(sample(30))
	s.SetPage(5)

	s.SetCategory("  Water ")
	assert.Equal(t, "water", s.Category())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 10, s.Count())
	for _, r := range s.Filtered() {
		assert.True(t, r.HasType("water"))
	}

	s.SetCategory("")
	assert.Equal(t, catalog.AllCategories, s.Category())
	assert.Equal(t, 30, s.Count())
}

func TestState_UnchangedInputKeepsPage(t *testing.T) {
	s := New(4, 5)
	s.SetRecords(sample(30))
	s.SetPage(4)

	s.SetSearch("")
	s.SetCategory(catalog.AllCategories)
	assert.Equal(t, 4, s.Page())
}

func TestState_CycleCategoryWraps(t *testing.T) {
	s := New(0, 0)
	s.CycleCategory(1)
	assert.Equal(t, "fire", s.Category())
	s.CycleCategory(-2)
	assert.Equal(t, catalog.Categories[len(catalog.Categories)-1], s.Category())
}

func TestState_WindowFollowsPage(t *testing.T) {
	s := New(1, 5)
	s.SetRecords(sample(10))

	s.SetPage(7)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, s.Window())

	s.SetPage(10)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, s.Window())

	s.SetPage(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Window())
}

func TestState_ShrinkingDataClampsPage(t *testing.T) {
	s := New(12, 5)
	s.SetRecords(sample(50))
	s.SetPage(5)

	s.SetRecords(sample(13))
	assert.Equal(t, 2, s.Page())
	assert.Len(t, s.Visible(), 1)
}

func TestState_NoMatchesStaysOnPageOne(t *testing.T) {
	s := New(12, 5)
	s.SetRecords(sample(20))
	s.SetSearch("zzz")

	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 1, s.Page())
	assert.Empty(t, s.Visible())
	assert.Empty(t, s.Window())
}

func TestState_CursorClampsToVisible(t *testing.T) {
	s := New(12, 5)
	s.SetRecords(sample(14))

	s.MoveCursor(20)
	assert.Equal(t, 11, s.Cursor())
	s.MoveCursor(-50)
	assert.Equal(t, 0, s.Cursor())

	s.SetCursor(5)
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, 6, sel.ID)

	s.NextPage()
	assert.Equal(t, 0, s.Cursor(), "page change resets cursor")
	s.SetCursor(9)
	sel, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, 14, sel.ID)
}

func TestState_ReadsAreIdempotent(t *testing.T) {
	s := New(12, 5)
	s.SetRecords(sample(30))
	s.SetSearch("mon-2")

	first := s.Visible()
	second := s.Visible()
	assert.Equal(t, first, second)
	assert.Equal(t, s.Window(), s.Window())
}
