package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/state"
)

// renderMain renders the full screen: header, filters, grid, pages, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderPagination())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// contentHeight is what remains after header, filter bar, pagination and footer.
func (m Model) contentHeight() int {
	return maxInt(CardHeight, m.height-4)
}

// renderContent renders the grid or the load-state placeholder.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var msg string
	switch m.snapshot.Phase {
	case state.Loading:
		msg = m.spinner.View() + " " + styles.WarningText.Render("Fetching every record...")
	case state.Failed:
		errText := "unknown error"
		if m.snapshot.Err != nil {
			errText = m.snapshot.Err.Error()
		}
		msg = lipgloss.JoinVertical(lipgloss.Center,
			styles.DangerText.Render("Could not load the catalog"),
			styles.MutedText.Render(wrap(errText, maxInt(20, m.width-10))),
			"",
			styles.FaintText.Render("press r to retry"),
		)
	default:
		visible := m.browse.Visible()
		if len(visible) == 0 {
			msg = styles.MutedText.Render("No matches")
			break
		}
		return lipgloss.NewStyle().Height(height).Render(m.renderGrid(visible))
	}

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
}

// renderGrid lays out the page as rows of GridColumns cards.
func (m Model) renderGrid(records []catalog.Record) string {
	width := cardWidth(m.width)
	cursor := m.browse.Cursor()

	var rows []string
	for start := 0; start < len(records); start += GridColumns {
		end := start + GridColumns
		if end > len(records) {
			end = len(records)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(records[i], width, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one record: number, name and type chips.
func (m Model) renderCard(r catalog.Record, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := maxInt(1, width-4) // border + padding

	style := styles.Card.BorderForeground(lipgloss.Color(accentFor(r.Types, m.theme.SurfaceAlt)))
	nameStyle := styles.Text.Bold(true)
	if selected {
		style = styles.CardSelected
		nameStyle = styles.AccentText.Bold(true)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.FaintText.Render(recordNumber(r.ID)),
		nameStyle.Render(truncateText(displayName(r.Name), inner)),
		typeBadges(r.Types),
	)
	return style.Width(width - 2).MaxHeight(CardHeight).Render(body)
}

// renderPagination shows prev/next and the current page window.
func (m Model) renderPagination() string {
	styles := m.theme.Styles()
	total := m.browse.TotalPages()
	if total == 0 {
		return lipgloss.NewStyle().Width(m.width).Render("")
	}
	page := m.browse.Page()

	prev := styles.PageButton.Render("‹ prev")
	if page <= 1 {
		prev = styles.FaintText.Padding(0, 1).Render("‹ prev")
	}
	next := styles.PageButton.Render("next ›")
	if page >= total {
		next = styles.FaintText.Padding(0, 1).Render("next ›")
	}

	buttons := []string{prev}
	for _, p := range m.browse.Window() {
		label := strconv.Itoa(p)
		if p == page {
			buttons = append(buttons, styles.PageCurrent.Render(label))
		} else {
			buttons = append(buttons, styles.PageButton.Render(label))
		}
	}
	buttons = append(buttons, next)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	summary := styles.MutedText.Render(fmt.Sprintf("page %d of %d", page, total))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar+"  "+summary)
}

// renderFooter shows the status line or, when idle, the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		style := styles.InfoText
		if m.statusErr {
			style = styles.DangerText
		}
		return styles.Footer.Width(m.width).Render(style.Render(truncateText(m.status, m.width-2)))
	}
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
