package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/state"
)

// renderHeader renders the status bar: logo, load state and record counts.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("dex", styles.Logo)}

	switch m.snapshot.Phase {
	case state.Loading:
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.WarningText)+bg.Space()+
				bg.Render("Loading catalog...", styles.WarningText.Bold(true)),
		)

	case state.Failed:
		parts = append(parts,
			bg.Render("● LOAD FAILED", styles.DangerText),
			bg.Render("r", styles.AccentText)+bg.Space()+bg.Render("to retry", styles.MutedText),
		)

	case state.Ready:
		total := int64(m.browse.Total())
		matching := int64(m.browse.Count())
		label := "Records:"
		if compact {
			label = "N:"
		}
		parts = append(parts,
			bg.Render("●", styles.SuccessText),
			bg.Render(label, styles.MutedText)+bg.Space()+
				bg.Render(humanize.Comma(total), styles.Text),
		)
		if matching != total {
			parts = append(parts,
				bg.Render("Matching:", styles.MutedText)+bg.Space()+
					bg.Render(humanize.Comma(matching), styles.AccentText),
			)
		}
		if !compact && !m.snapshot.LoadedAt.IsZero() {
			parts = append(parts, bg.Render("loaded "+humanize.Time(m.snapshot.LoadedAt), styles.FaintText))
		}
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderFilterBar shows the search box and the active type filter.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()

	searchView := m.search.View()
	if !m.searching && m.search.Value() == "" {
		searchView = styles.FaintText.Render("/ search by name")
	}

	category := m.browse.Category()
	var chip string
	if category == catalog.AllCategories {
		chip = styles.AccentText.Render("all types")
	} else {
		chip = typeBadge(category)
	}

	position := fmt.Sprintf("%d/%d", categoryIndex(category)+1, len(catalog.Categories))
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(
		searchView + "   " +
			styles.MutedText.Render("Type:") + " " + chip + " " +
			styles.FaintText.Render(position),
	)
}

func categoryIndex(category string) int {
	for i, c := range catalog.Categories {
		if c == category {
			return i
		}
	}
	return 0
}
