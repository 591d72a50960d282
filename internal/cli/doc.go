// Package cli defines the dex command tree.
//
// The root command starts the interactive browser and refuses to run without
// a terminal. The subcommands reuse the same pipeline for scripting:
//
//	dex list   fetch everything, filter, print one page (uitable or --json)
//	dex show   fetch one record by id or name
//	dex types  print the selectable types and their badge colors
//	dex logs   print the tail of the log file
//
// Persistent flags (--config, --prefs, --log-level, --base-url) map onto
// app.Options. Errors are returned from RunE and printed by main as
// "dex: <err>".
package cli
