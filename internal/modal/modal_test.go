package modal

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dex/internal/catalog"
)

// virtualClock collects scheduled events and releases them as time advances.
type virtualClock struct {
	now     time.Duration
	pending []scheduled
}

type scheduled struct {
	at time.Duration
	ev Event
}

func (c *virtualClock) After(d time.Duration, ev Event) {
	c.pending = append(c.pending, scheduled{at: c.now + d, ev: ev})
}

// advance moves the clock forward and fires every due event in time order.
func (c *virtualClock) advance(d time.Duration, l *Lifecycle) {
	c.now += d
	sort.SliceStable(c.pending, func(i, j int) bool { return c.pending[i].at < c.pending[j].at })
	var keep []scheduled
	var due []scheduled
	for _, s := range c.pending {
		if s.at <= c.now {
			due = append(due, s)
		} else {
			keep = append(keep, s)
		}
	}
	c.pending = keep
	for _, s := range due {
		l.Fire(s.ev)
	}
}

var pikachu = catalog.Record{ID: 25, Name: "pikachu", Types: []string{"electric"}}

func TestLifecycle_OpenRevealsContentThenStats(t *testing.T) {
	clock := &virtualClock{}
	l := New(clock, DefaultDelays())

	l.Open(pikachu)
	assert.Equal(t, Opening, l.Phase())
	assert.False(t, l.ContentVisible())
	assert.False(t, l.StatsVisible())
	assert.Equal(t, "pikachu", l.Record().Name)

	clock.advance(49*time.Millisecond, l)
	assert.False(t, l.ContentVisible(), "content must wait for its delay")

	clock.advance(time.Millisecond, l)
	assert.Equal(t, ContentVisible, l.Phase())
	assert.True(t, l.ContentVisible())
	assert.False(t, l.StatsVisible())

	clock.advance(449*time.Millisecond, l)
	assert.False(t, l.StatsVisible(), "stats are timed from Open, not from reveal")

	clock.advance(time.Millisecond, l)
	assert.Equal(t, StatsVisible, l.Phase())
	assert.True(t, l.StatsVisible())
	assert.True(t, l.ContentVisible(), "content stays visible once stats appear")
}

func TestLifecycle_CloseIsSynchronousAndCancelsPendingEvents(t *testing.T) {
	clock := &virtualClock{}
	l := New(clock, DefaultDelays())

	var seen []Phase
	l.Observe(func(tr Transition) { seen = append(seen, tr.To) })

	l.Open(pikachu)
	clock.advance(50*time.Millisecond, l)
	l.Close()

	assert.Equal(t, Closed, l.Phase())
	assert.False(t, l.ContentVisible())
	assert.False(t, l.StatsVisible())
	assert.False(t, l.Closing())
	assert.Equal(t, catalog.Record{}, l.Record())

	// The stats event is still queued; it must not reopen anything.
	clock.advance(time.Second, l)
	assert.Equal(t, Closed, l.Phase())
	assert.False(t, l.StatsVisible())

	assert.Equal(t, []Phase{Opening, ContentVisible, Closing, Closed}, seen)
}

func TestLifecycle_CloseWhileClosedIsNoOp(t *testing.T) {
	l := New(&virtualClock{}, Delays{})
	calls := 0
	l.Observe(func(Transition) { calls++ })

	l.Close()
	assert.Equal(t, Closed, l.Phase())
	assert.Zero(t, calls)
}

func TestLifecycle_CloseFromOpeningBeforeAnyTimer(t *testing.T) {
	clock := &virtualClock{}
	l := New(clock, DefaultDelays())

	l.Open(pikachu)
	l.Close()
	clock.advance(time.Second, l)

	assert.Equal(t, Closed, l.Phase())
	assert.False(t, l.ContentVisible())
}

func TestLifecycle_ReopenIgnoresEventsFromEarlierOpen(t *testing.T) {
	clock := &virtualClock{}
	l := New(clock, DefaultDelays())

	l.Open(pikachu)
	clock.advance(40*time.Millisecond, l)
	l.Close()
	clock.advance(5*time.Millisecond, l)

	eevee := catalog.Record{ID: 133, Name: "eevee"}
	l.Open(eevee)

	// The first open's reveal (due at 50ms) lands 5ms into the second open.
	clock.advance(5*time.Millisecond, l)
	assert.False(t, l.ContentVisible(), "stale reveal must be ignored")

	clock.advance(45*time.Millisecond, l)
	assert.True(t, l.ContentVisible())
	assert.Equal(t, "eevee", l.Record().Name)
}

func TestLifecycle_FireRejectsStaleAndDuplicateEvents(t *testing.T) {
	var events []Event
	l := New(SchedulerFunc(func(_ time.Duration, ev Event) { events = append(events, ev) }), Delays{})

	l.Open(pikachu)
	require.Len(t, events, 2)
	assert.Equal(t, Reveal, events[0].Stage)
	assert.Equal(t, Stats, events[1].Stage)

	assert.False(t, l.Fire(Event{Stage: Reveal, Generation: events[0].Generation - 1}))
	assert.True(t, l.Fire(events[0]))
	assert.False(t, l.Fire(events[0]), "duplicate reveal changes nothing")
	assert.True(t, l.Fire(events[1]))
	assert.False(t, l.Fire(Event{Stage: Stage(99), Generation: l.Generation()}))
}

func TestLifecycle_StatsBeforeRevealShowsBoth(t *testing.T) {
	var events []Event
	l := New(SchedulerFunc(func(_ time.Duration, ev Event) { events = append(events, ev) }), Delays{})

	l.Open(pikachu)
	require.True(t, l.Fire(events[1]))
	assert.Equal(t, StatsVisible, l.Phase())
	assert.True(t, l.ContentVisible())
	assert.False(t, l.Fire(events[0]))
}

func TestNew_DefaultsZeroDelays(t *testing.T) {
	var delays []time.Duration
	l := New(SchedulerFunc(func(d time.Duration, _ Event) { delays = append(delays, d) }), Delays{Stats: time.Second})

	l.Open(pikachu)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, time.Second}, delays)
}

func TestLifecycle_NilSchedulerStaysOpening(t *testing.T) {
	l := New(nil, Delays{})
	l.Open(pikachu)
	assert.Equal(t, Opening, l.Phase())
	assert.True(t, l.IsOpen())
}

func TestPhaseAndStageStrings(t *testing.T) {
	assert.Equal(t, "stats-visible", StatsVisible.String())
	assert.Equal(t, "phase(42)", Phase(42).String())
	assert.Equal(t, "reveal", Reveal.String())
	assert.Equal(t, "stage(0)", Stage(0).String())
}
