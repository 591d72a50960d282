// Package config loads dex's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dex/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, blank or non-positive, use defaults
//
// # Default Values
//
//   - base_url: https://pokeapi.co/api/v2
//   - index_limit: 11000 (must exceed the real record count; the full index is always requested)
//   - page_size: 12
//   - window_size: 5 (page buttons shown at once)
//   - max_connections: 16 (per-host connection cap for the bulk detail fetch)
//   - request_timeout_seconds: 15
//   - log_file: ~/.local/state/dex/dex.log
//   - log_level: info (trace, debug, info, warn, error)
//
// # TOML Format
//
//	base_url = "https://pokeapi.co/api/v2"
//	page_size = 12
//	log_level = "debug"
//
// Tilde expansion is applied to the config path and log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors ("parse config: ..."). A missing file
// is not an error.
package config
