package cli

import (
	"github.com/spf13/pflag"

	"github.com/five82/dex/internal/app"
	"github.com/five82/dex/internal/catalog"
)

// RootOptions are the persistent flags shared by every command.
type RootOptions struct {
	ConfigPath string
	PrefsPath  string
	LogLevel   string
	BaseURL    string
}

// AddRootArgs registers the persistent flags.
func AddRootArgs(fs *pflag.FlagSet, o *RootOptions) {
	fs.StringVar(&o.ConfigPath, "config", "",
		"Config file (default ~/.config/dex/config.toml).")
	fs.StringVar(&o.PrefsPath, "prefs", "",
		"Preferences file (default ~/.config/dex/prefs.toml).")
	fs.StringVar(&o.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error.")
	fs.StringVar(&o.BaseURL, "base-url", "",
		"API root, overrides base_url from the config file.")
}

// AppOptions converts the flags to app.Options.
func (o RootOptions) AppOptions() app.Options {
	return app.Options{
		ConfigPath: o.ConfigPath,
		PrefsPath:  o.PrefsPath,
		LogLevel:   o.LogLevel,
		BaseURL:    o.BaseURL,
	}
}

// FilterOptions select a slice of the catalog.
type FilterOptions struct {
	Search   string
	Category string
	Page     int
	All      bool
}

// AddFilterArgs registers search, type and page flags.
func AddFilterArgs(fs *pflag.FlagSet, o *FilterOptions) {
	fs.StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive name substring.")
	fs.StringVarP(&o.Category, "type", "t", catalog.AllCategories,
		"Type filter, or \"all\".")
	fs.IntVarP(&o.Page, "page", "p", 1,
		"Page to print (1-based).")
	fs.BoolVar(&o.All, "all", false,
		"Print every match instead of one page.")
}

// OutputOptions control the output format.
type OutputOptions struct {
	JSON bool
}

// AddOutputArg registers --json.
func AddOutputArg(fs *pflag.FlagSet, o *OutputOptions) {
	fs.BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
}
