package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dex/internal/catalog"
)

const statLabelWidth = 16

// renderDetail renders the record overlay. Content and stat bars appear in
// the stages the lifecycle has reached.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	record := m.lifecycle.Record()
	inner := OverlayWidth - 6 // border + padding

	var b strings.Builder
	title := styles.Text.Bold(true).Render(displayName(record.Name))
	b.WriteString(title + "  " + styles.FaintText.Render(recordNumber(record.ID)))
	b.WriteString("\n")
	b.WriteString(typeBadges(record.Types))
	b.WriteString("\n\n")

	if !m.lifecycle.ContentVisible() {
		b.WriteString(styles.MutedText.Render(m.spinner.View()))
	} else {
		b.WriteString(m.renderDetailBody(record, inner))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc to close"))

	overlay := styles.Overlay.
		BorderForeground(lipgloss.Color(accentFor(record.Types, m.theme.Surface))).
		Width(OverlayWidth - 2).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) renderDetailBody(record catalog.Record, inner int) string {
	styles := m.theme.Styles()
	statsShown := m.lifecycle.StatsVisible()

	var lines []string

	if len(record.Abilities) > 0 {
		names := make([]string, 0, len(record.Abilities))
		for _, a := range record.Abilities {
			names = append(names, displayName(a))
		}
		lines = append(lines,
			styles.AccentText.Bold(true).Render("Abilities"),
			styles.Text.Render(wrap(strings.Join(names, ", "), inner)),
			"",
		)
	}

	if record.Artwork != "" {
		lines = append(lines,
			styles.MutedText.Render("Artwork")+" "+styles.FaintText.Render(truncateMiddle(record.Artwork, inner-8)),
			"",
		)
	}

	lines = append(lines, styles.AccentText.Bold(true).Render("Base stats"))
	if len(record.Stats) == 0 {
		lines = append(lines, styles.FaintText.Render("no stats"))
		return strings.Join(lines, "\n")
	}

	barWidth := maxInt(10, inner-statLabelWidth-5)
	total := 0
	for _, s := range record.Stats {
		total += s.Value
		pct := 0.0
		if statsShown {
			pct = s.StatPercent()
		}
		bar := progress.New(
			progress.WithSolidFill(catalog.StatColor(s.Name)),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		label := styles.MutedText.Width(statLabelWidth).Render(catalog.StatLabel(s.Name))
		value := styles.Text.Width(4).Align(lipgloss.Right).Render(fmt.Sprint(s.Value))
		lines = append(lines, label+bar.ViewAs(pct)+" "+value)
	}

	// The total bar uses the primary type's gradient.
	primary := "normal"
	if len(record.Types) > 0 {
		primary = record.Types[0]
	}
	from, to := catalog.TypeGradient(primary, m.theme.Dark)
	totalPct := 0.0
	if statsShown {
		totalPct = float64(total) / float64(len(record.Stats)*catalog.MaxStatValue)
		if totalPct > 1 {
			totalPct = 1
		}
	}
	totalBar := progress.New(
		progress.WithGradient(from, to),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	lines = append(lines,
		styles.Text.Bold(true).Width(statLabelWidth).Render("total")+
			totalBar.ViewAs(totalPct)+" "+
			styles.Text.Bold(true).Width(4).Align(lipgloss.Right).Render(fmt.Sprint(total)),
	)

	return strings.Join(lines, "\n")
}
