package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/dex/internal/catalog"
)

const (
	inkDark  = "#1f2937"
	inkLight = "#ffffff"
)

// readableOn picks dark or light text for bg by CIE L*. The catalog palette
// pairs every badge with white, which washes out on yellow and tan tags.
func readableOn(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return inkLight
	}
	l, _, _ := c.Lab()
	if l > 0.7 {
		return inkDark
	}
	return inkLight
}

// typeBadge renders one category chip.
func typeBadge(name string) string {
	badge := catalog.TypeColor(name)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(badge.Background)).
		Foreground(lipgloss.Color(readableOn(badge.Background))).
		Padding(0, 1).
		Render(name)
}

// typeBadges renders the chips for every tag, space separated.
func typeBadges(types []string) string {
	if len(types) == 0 {
		return typeBadge("unknown")
	}
	parts := make([]string, 0, len(types)*2)
	for i, t := range types {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, typeBadge(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// accentFor blends the record's primary type color toward the theme surface
// for card accents.
func accentFor(types []string, surface string) string {
	primary := catalog.NeutralBadge.Background
	if len(types) > 0 {
		primary = catalog.TypeColor(types[0]).Background
	}
	a, err := colorful.Hex(primary)
	if err != nil {
		return primary
	}
	b, err := colorful.Hex(surface)
	if err != nil {
		return primary
	}
	return a.BlendLab(b, 0.35).Clamped().Hex()
}
