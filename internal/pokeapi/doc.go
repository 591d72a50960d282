// Package pokeapi is the HTTP client for the catalog's remote data source.
//
// # Endpoints
//
//	GET {base}/pokemon?limit=N      index of {name, url} references
//	GET {url}                        one record, by reference (bulk hydration)
//	GET {base}/pokemon/{id-or-name}  one record, by identifier (detail refresh)
//
// The full index is always requested; callers pass a limit larger than the
// real population (11000 by default).
//
// # Errors
//
// Non-2xx responses surface as *StatusError. Every Fetch* method wraps its
// failure in *FetchError so callers can tell which reference broke a load:
//
//	var fe *pokeapi.FetchError
//	if errors.As(err, &fe) {
//		slog.Error("load failed", "op", fe.Op, "ref", fe.Ref)
//	}
//
// Transport and JSON decoding errors are wrapped with %w and keep their
// original cause.
//
// # Testing
//
// Fetcher is the seam used by the loader and the UI. Tests either point a real
// Client at an httptest.Server or provide a small fake.
package pokeapi
