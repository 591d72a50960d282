package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Read returns the last maxLines lines of the file at path. maxLines <= 0
// returns every line. A missing file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Level extracts the level token from a slog text line, or "" when the line
// has none.
func Level(line string) string {
	for _, field := range strings.Fields(line) {
		if v, ok := strings.CutPrefix(field, "level="); ok {
			return strings.ToUpper(v)
		}
	}
	return ""
}

// MinLevel filters lines below min. Lines without a level are kept.
func MinLevel(lines []string, min string) []string {
	floor := rank(strings.ToUpper(strings.TrimSpace(min)))
	if floor <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		lvl := Level(line)
		if lvl == "" || rank(lvl) >= floor {
			out = append(out, line)
		}
	}
	return out
}

func rank(level string) int {
	switch level {
	case "TRACE":
		return 1
	case "DEBUG":
		return 2
	case "INFO":
		return 3
	case "WARN", "WARNING":
		return 4
	case "ERROR":
		return 5
	}
	return 0
}

var levelColors = map[string]*color.Color{
	"TRACE": color.New(color.FgHiBlack),
	"DEBUG": color.New(color.FgCyan),
	"INFO":  color.New(color.FgGreen),
	"WARN":  color.New(color.FgYellow, color.Bold),
	"ERROR": color.New(color.FgRed, color.Bold),
}

var (
	timeColor = color.New(color.FgHiBlack)
	keyColor  = color.New(color.FgBlue)
)

// Colorize highlights the time, level and attribute keys of a slog text line.
// Lines that do not look like slog output are returned unchanged.
func Colorize(line string) string {
	lvl := Level(line)
	if lvl == "" {
		return line
	}
	fields := strings.SplitAfter(line, " ")
	var b strings.Builder
	for _, field := range fields {
		trimmed := strings.TrimRight(field, " ")
		tail := field[len(trimmed):]
		key, value, ok := strings.Cut(trimmed, "=")
		switch {
		case !ok:
			b.WriteString(field)
			continue
		case key == "time":
			b.WriteString(timeColor.Sprint(trimmed))
		case key == "level":
			c, found := levelColors[lvl]
			if !found {
				b.WriteString(trimmed)
				break
			}
			b.WriteString(key + "=" + c.Sprint(value))
		default:
			b.WriteString(keyColor.Sprint(key) + "=" + value)
		}
		b.WriteString(tail)
	}
	return b.String()
}

// ColorizeLines applies Colorize to each line.
func ColorizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Colorize(line)
	}
	return out
}
