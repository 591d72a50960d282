package cli

import (
	"strings"

	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/dex/internal/catalog"
)

// swatch paints text on a hex background. Invalid hex falls back to plain text.
func swatch(hex, text string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return text
	}
	r, g, b := c.RGB255()
	fg := color.New(color.FgWhite)
	if l, _, _ := c.Lab(); l > 0.7 {
		fg = color.New(color.FgBlack)
	}
	fg.Add(color.Bold)
	return fg.AddBgRGB(int(r), int(g), int(b)).Sprint(" " + text + " ")
}

func colorTypes(types []string) string {
	if len(types) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, swatch(catalog.TypeColor(t).Background, t))
	}
	return strings.Join(parts, " ")
}

func statBar(s catalog.Stat, width int) string {
	filled := int(s.StatPercent()*float64(width) + 0.5)
	c, err := colorful.Hex(catalog.StatColor(s.Name))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if err != nil {
		return bar
	}
	r, g, b := c.RGB255()
	return color.RGB(int(r), int(g), int(b)).Sprint(bar)
}
