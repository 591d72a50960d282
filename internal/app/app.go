package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/logging"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/prefs"
	"github.com/five82/dex/internal/state"
	"github.com/five82/dex/internal/ui"
)

// Options configure the dex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dex/prefs.toml
	LogLevel   string // overrides log_level from config when set
	BaseURL    string // overrides base_url from config when set
}

// Runtime bundles the pieces every dex entry point needs.
type Runtime struct {
	Config config.Config
	Logger *slog.Logger
	Client *pokeapi.Client

	closer io.Closer
}

// Close releases the log file.
func (r *Runtime) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Setup loads config, opens the log file and builds the API client. The
// logger also becomes the slog default.
func Setup(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	slog.SetDefault(logger)

	client, err := NewClient(cfg, logger)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	logger.Debug("runtime ready",
		"base_url", client.BaseURL(),
		"index_limit", cfg.IndexLimit,
		"max_connections", cfg.MaxConnections,
	)
	return &Runtime{Config: cfg, Logger: logger, Client: client, closer: closer}, nil
}

// NewClient builds the API client with a connection-capped transport. The
// cap bounds sockets, not request issuance: the loader still fires every
// detail request at once and the transport queues the excess.
//
// RequestTimeout applies to the response headers of a request that holds a
// connection. http.Client.Timeout is left unset because it also counts time
// spent queued behind the cap.
func NewClient(cfg config.Config, logger *slog.Logger) (*pokeapi.Client, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.MaxConnections > 0 {
		base.MaxConnsPerHost = cfg.MaxConnections
		base.MaxIdleConnsPerHost = cfg.MaxConnections
	}
	if cfg.RequestTimeout > 0 {
		base.ResponseHeaderTimeout = cfg.RequestTimeout
	}
	hc := &http.Client{Transport: logging.NewTransport(base, logger)}
	return pokeapi.NewClient(cfg.BaseURL, pokeapi.WithHTTPClient(hc))
}

// Run boots the dex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		rt.Logger.Warn("prefs unreadable, using defaults", "error", err)
	}

	store := &state.Store{}
	limit := rt.Config.IndexLimit
	Hydrate(ctx, store, rt.Client, limit)

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   rt.Client,
		Store:     store,
		Config:    &rt.Config,
		Logger:    rt.Logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Reload: func() {
			rt.Logger.Info("catalog reload requested")
			Hydrate(ctx, store, rt.Client, limit)
		},
	}
	return ui.Run(uiOpts)
}
