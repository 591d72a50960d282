package catalog

// Badge is a pair of display tokens (hex colors) for a category chip.
type Badge struct {
	Background string
	Foreground string
}

// NeutralBadge is returned for categories outside the palette.
var NeutralBadge = Badge{Background: "#9ca3af", Foreground: "#ffffff"}

const neutralStatColor = "#6b7280"

var typeBadges = map[string]Badge{
	"normal":   {Background: "#a8a77a", Foreground: "#ffffff"},
	"fire":     {Background: "#ee8130", Foreground: "#ffffff"},
	"water":    {Background: "#6390f0", Foreground: "#ffffff"},
	"grass":    {Background: "#7ac74c", Foreground: "#ffffff"},
	"electric": {Background: "#f7d02c", Foreground: "#000000"},
	"psychic":  {Background: "#f95587", Foreground: "#ffffff"},
	"rock":     {Background: "#b6a136", Foreground: "#ffffff"},
	"ground":   {Background: "#e2bf65", Foreground: "#ffffff"},
	"poison":   {Background: "#a33ea1", Foreground: "#ffffff"},
	"bug":      {Background: "#a6b91a", Foreground: "#ffffff"},
	"flying":   {Background: "#a98ff3", Foreground: "#ffffff"},
}

// TypeColor resolves a category name to its badge colors. The lookup is an
// exact match; anything else gets NeutralBadge.
func TypeColor(name string) Badge {
	if b, ok := typeBadges[name]; ok {
		return b
	}
	return NeutralBadge
}

// KnownType reports whether name has a dedicated badge.
func KnownType(name string) bool {
	_, ok := typeBadges[name]
	return ok
}

var statColors = map[string]string{
	"hp":              "#22c55e", // green-500
	"attack":          "#ef4444", // red-500
	"defense":         "#3b82f6", // blue-500
	"special-attack":  "#a855f7", // purple-500
	"special-defense": "#14b8a6", // teal-500
	"speed":           "#eab308", // yellow-500
}

// StatColor returns the bar color for a stat name, gray when unknown.
func StatColor(name string) string {
	if c, ok := statColors[name]; ok {
		return c
	}
	return neutralStatColor
}

type gradient struct {
	light [2]string
	dark  [2]string
}

// Tailwind 400/500 (light) and 600/700 (dark) stops per type.
var typeGradients = map[string]gradient{
	"normal":   {light: [2]string{"#9ca3af", "#6b7280"}, dark: [2]string{"#4b5563", "#374151"}},
	"fire":     {light: [2]string{"#fb923c", "#ef4444"}, dark: [2]string{"#ea580c", "#b91c1c"}},
	"water":    {light: [2]string{"#60a5fa", "#3b82f6"}, dark: [2]string{"#2563eb", "#1d4ed8"}},
	"grass":    {light: [2]string{"#4ade80", "#22c55e"}, dark: [2]string{"#16a34a", "#15803d"}},
	"electric": {light: [2]string{"#fde047", "#facc15"}, dark: [2]string{"#eab308", "#ca8a04"}},
	"ice":      {light: [2]string{"#67e8f9", "#22d3ee"}, dark: [2]string{"#06b6d4", "#0891b2"}},
	"fighting": {light: [2]string{"#f87171", "#ef4444"}, dark: [2]string{"#dc2626", "#b91c1c"}},
	"poison":   {light: [2]string{"#c084fc", "#a855f7"}, dark: [2]string{"#9333ea", "#7e22ce"}},
	"ground":   {light: [2]string{"#fbbf24", "#f59e0b"}, dark: [2]string{"#d97706", "#b45309"}},
	"flying":   {light: [2]string{"#38bdf8", "#0ea5e9"}, dark: [2]string{"#0284c7", "#0369a1"}},
	"psychic":  {light: [2]string{"#f472b6", "#ec4899"}, dark: [2]string{"#db2777", "#be185d"}},
	"bug":      {light: [2]string{"#a3e635", "#84cc16"}, dark: [2]string{"#65a30d", "#4d7c0f"}},
	"rock":     {light: [2]string{"#a8a29e", "#78716c"}, dark: [2]string{"#57534e", "#44403c"}},
	"ghost":    {light: [2]string{"#818cf8", "#6366f1"}, dark: [2]string{"#4f46e5", "#4338ca"}},
	"dark":     {light: [2]string{"#a3a3a3", "#737373"}, dark: [2]string{"#525252", "#404040"}},
	"dragon":   {light: [2]string{"#a78bfa", "#8b5cf6"}, dark: [2]string{"#7c3aed", "#6d28d9"}},
	"steel":    {light: [2]string{"#94a3b8", "#64748b"}, dark: [2]string{"#475569", "#334155"}},
	"fairy":    {light: [2]string{"#fda4af", "#fb7185"}, dark: [2]string{"#f43f5e", "#e11d48"}},
}

// TypeGradient returns the two gradient stops for a type. Unknown types use
// the normal gradient.
func TypeGradient(name string, dark bool) (from, to string) {
	g, ok := typeGradients[name]
	if !ok {
		g = typeGradients["normal"]
	}
	if dark {
		return g.dark[0], g.dark[1]
	}
	return g.light[0], g.light[1]
}
