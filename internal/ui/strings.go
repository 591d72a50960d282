package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName turns an API slug like "mr-mime" into "Mr Mime".
func displayName(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// truncateText shortens s to width display cells, ending in an ellipsis when cut.
func truncateText(s string, width int) string {
	s = strings.TrimSpace(s)
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// wrap soft-wraps s at width cells.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// truncateMiddle shortens long values such as artwork URLs by removing the
// middle so both ends stay readable.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// recordNumber formats an id the way the catalog prints it: #001.
func recordNumber(id int) string {
	if id <= 0 {
		return "#???"
	}
	return fmt.Sprintf("#%03d", id)
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
