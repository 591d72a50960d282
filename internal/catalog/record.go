package catalog

import "strings"

// Record is one catalog entry as returned by the detail endpoint.
type Record struct {
	ID        int
	Name      string
	Artwork   string
	Types     []string
	Stats     []Stat
	Abilities []string
}

// Stat is a named numeric attribute. Values are 0-255 by convention.
type Stat struct {
	Name  string
	Value int
}

// MaxStatValue is the conventional ceiling used to scale stat bars.
const MaxStatValue = 255

// HasType reports whether the record carries the exact category tag.
func (r Record) HasType(name string) bool {
	for _, t := range r.Types {
		if t == name {
			return true
		}
	}
	return false
}

// StatPercent returns the stat value as a fraction of MaxStatValue clamped to [0,1].
func (s Stat) StatPercent() float64 {
	if s.Value <= 0 {
		return 0
	}
	if s.Value >= MaxStatValue {
		return 1
	}
	return float64(s.Value) / MaxStatValue
}

// StatLabel turns an API stat name like "special-attack" into "special attack".
func StatLabel(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "-", " ")
}
