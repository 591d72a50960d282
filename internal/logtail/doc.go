// Package logtail reads the tail of the dex log file for `dex logs`.
//
// Read keeps a ring buffer of the last N lines so memory stays bounded by N
// rather than by the file size. A missing log file is not an error; it just
// means nothing has been logged yet.
//
// The log is written by slog's text handler, so each record looks like
//
//	time=2026-01-02T15:04:05.000Z level=INFO msg="catalog ready" records=1025
//
// Level and MinLevel parse the level= field. Colorize highlights the time,
// level and attribute keys with fatih/color, which honors NO_COLOR and
// disables itself when stdout is not a terminal.
package logtail
