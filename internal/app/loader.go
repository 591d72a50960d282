package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/state"
)

// LoadCatalog fetches the index and then every referenced record. Detail
// requests are all issued up front, one goroutine each, and awaited once.
// Any failure fails the whole load and no partial list is returned. Records
// come back in index order.
func LoadCatalog(ctx context.Context, fetcher pokeapi.Fetcher, limit int) ([]catalog.Record, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is nil")
	}

	refs, err := fetcher.FetchIndex(ctx, limit)
	if err != nil {
		return nil, err
	}

	records := make([]catalog.Record, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			record, err := fetcher.FetchRecord(gctx, ref)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// Hydrate marks the store as loading and runs LoadCatalog in the background.
// The store always ends up Ready or Failed. The returned channel is closed
// once it has been resolved.
func Hydrate(ctx context.Context, store *state.Store, fetcher pokeapi.Fetcher, limit int) <-chan struct{} {
	done := make(chan struct{})
	if store == nil {
		close(done)
		return done
	}

	store.Begin()
	go func() {
		defer close(done)

		start := time.Now()
		slog.Debug("catalog load started", "limit", limit)

		records, err := LoadCatalog(ctx, fetcher, limit)
		store.Resolve(records, err)

		if err != nil {
			slog.Error("catalog load failed", "error", err, "elapsed", time.Since(start))
			return
		}
		slog.Info("catalog loaded", "records", len(records), "elapsed", time.Since(start))
	}()
	return done
}
