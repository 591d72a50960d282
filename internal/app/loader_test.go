package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/state"
)

type fakeFetcher struct {
	refs     []pokeapi.Reference
	indexErr error
	failOn   string
	// barrier, when set, blocks every detail call until all of them are in flight.
	barrier *barrier

	mu        sync.Mutex
	requested []string
	limit     int
}

func (f *fakeFetcher) FetchIndex(_ context.Context, limit int) ([]pokeapi.Reference, error) {
	f.mu.Lock()
	f.limit = limit
	f.mu.Unlock()
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.refs, nil
}

func (f *fakeFetcher) FetchRecord(ctx context.Context, ref pokeapi.Reference) (catalog.Record, error) {
	f.mu.Lock()
	f.requested = append(f.requested, ref.Name)
	f.mu.Unlock()

	if f.barrier != nil {
		if err := f.barrier.arrive(ctx); err != nil {
			return catalog.Record{}, err
		}
	}
	if ref.Name == f.failOn {
		return catalog.Record{}, &pokeapi.FetchError{Op: "detail", Ref: ref.Name, Err: &pokeapi.StatusError{Path: "/pokemon/" + ref.Name, Code: 500}}
	}
	var id int
	_, _ = fmt.Sscanf(ref.URL, "https://example.test/pokemon/%d/", &id)
	return catalog.Record{ID: id, Name: ref.Name}, nil
}

func (f *fakeFetcher) FetchRecordByID(_ context.Context, id string) (catalog.Record, error) {
	return catalog.Record{Name: id}, nil
}

type barrier struct {
	want    int32
	arrived atomic.Int32
	all     chan struct{}
	once    sync.Once
}

func newBarrier(n int) *barrier {
	return &barrier{want: int32(n), all: make(chan struct{})}
}

func (b *barrier) arrive(ctx context.Context) error {
	if b.arrived.Add(1) == b.want {
		b.once.Do(func() { close(b.all) })
	}
	select {
	case <-b.all:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Second):
		return errors.New("detail requests were serialized")
	}
}

func refs(names ...string) []pokeapi.Reference {
	out := make([]pokeapi.Reference, 0, len(names))
	for i, name := range names {
		out = append(out, pokeapi.Reference{Name: name, URL: fmt.Sprintf("https://example.test/pokemon/%d/", i+1)})
	}
	return out
}

func TestLoadCatalog_ReturnsEveryRecordInIndexOrder(t *testing.T) {
	fetcher := &fakeFetcher{refs: refs("bulbasaur", "ivysaur", "venusaur", "charmander")}

	records, err := LoadCatalog(context.Background(), fetcher, 11000)
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i, name := range []string{"bulbasaur", "ivysaur", "venusaur", "charmander"} {
		assert.Equal(t, name, records[i].Name)
		assert.Equal(t, i+1, records[i].ID)
	}
	assert.Equal(t, 11000, fetcher.limit)
}

func TestLoadCatalog_IssuesAllDetailRequestsConcurrently(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	fetcher := &fakeFetcher{refs: refs(names...), barrier: newBarrier(len(names))}

	records, err := LoadCatalog(context.Background(), fetcher, 0)
	require.NoError(t, err)
	assert.Len(t, records, len(names))
	assert.ElementsMatch(t, names, fetcher.requested)
}

func TestLoadCatalog_AnyFailureFailsWholeLoad(t *testing.T) {
	fetcher := &fakeFetcher{refs: refs("bulbasaur", "ivysaur", "venusaur"), failOn: "ivysaur"}

	records, err := LoadCatalog(context.Background(), fetcher, 0)
	require.Error(t, err)
	assert.Nil(t, records)

	var fe *pokeapi.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "ivysaur", fe.Ref)
}

func TestLoadCatalog_IndexFailure(t *testing.T) {
	fetcher := &fakeFetcher{indexErr: errors.New("index down")}

	records, err := LoadCatalog(context.Background(), fetcher, 0)
	require.EqualError(t, err, "index down")
	assert.Nil(t, records)
	assert.Empty(t, fetcher.requested)
}

func TestLoadCatalog_EmptyIndex(t *testing.T) {
	records, err := LoadCatalog(context.Background(), &fakeFetcher{}, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadCatalog_NilFetcher(t *testing.T) {
	_, err := LoadCatalog(context.Background(), nil, 0)
	require.Error(t, err)
}

func TestHydrate_ResolvesStoreReady(t *testing.T) {
	store := &state.Store{}
	fetcher := &fakeFetcher{refs: refs("pikachu", "raichu")}

	done := Hydrate(context.Background(), store, fetcher, 0)
	waitDone(t, done)

	snap := store.Snapshot()
	assert.Equal(t, state.Ready, snap.Phase)
	assert.Equal(t, 2, snap.Count())
	assert.NoError(t, snap.Err)
}

func TestHydrate_ResolvesStoreFailedWithoutPartialData(t *testing.T) {
	store := &state.Store{}
	fetcher := &fakeFetcher{refs: refs("pikachu", "raichu", "pichu"), failOn: "pichu"}

	done := Hydrate(context.Background(), store, fetcher, 0)
	waitDone(t, done)

	snap := store.Snapshot()
	assert.Equal(t, state.Failed, snap.Phase)
	assert.Nil(t, snap.Records)
	assert.False(t, pokeapi.IsNotFound(snap.Err))
	assert.ErrorContains(t, snap.Err, "pichu")
}

func TestHydrate_CancelledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &state.Store{}
	fetcher := &fakeFetcher{refs: refs("a", "b"), barrier: newBarrier(3)}

	done := Hydrate(ctx, store, fetcher, 0)
	waitDone(t, done)

	snap := store.Snapshot()
	assert.Equal(t, state.Failed, snap.Phase)
	assert.ErrorIs(t, snap.Err, context.Canceled)
}

func TestHydrate_MarksLoadingSynchronously(t *testing.T) {
	store := &state.Store{}
	store.Resolve(nil, errors.New("earlier failure"))

	b := newBarrier(2)
	fetcher := &fakeFetcher{refs: refs("a"), barrier: b}
	done := Hydrate(context.Background(), store, fetcher, 0)

	assert.Equal(t, state.Loading, store.Snapshot().Phase)

	// Release the single in-flight request.
	require.NoError(t, b.arrive(context.Background()))
	waitDone(t, done)
	assert.Equal(t, state.Ready, store.Snapshot().Phase)
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Hydrate did not resolve the store")
	}
}
