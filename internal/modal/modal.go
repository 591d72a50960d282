package modal

import (
	"fmt"
	"time"

	"github.com/five82/dex/internal/catalog"
)

// Phase is the modal's position in its open/close sequence.
type Phase int

const (
	// Closed shows nothing and ignores timed events.
	Closed Phase = iota
	// Opening has a record but neither stage has fired yet.
	Opening
	// ContentVisible shows the record body; stats are still hidden.
	ContentVisible
	// StatsVisible shows the body and the stat bars.
	StatsVisible
	// Closing is passed through by Close on its way to Closed.
	Closing
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case ContentVisible:
		return "content-visible"
	case StatsVisible:
		return "stats-visible"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Stage identifies which timed step an Event advances.
type Stage int

const (
	// Reveal shows the modal body.
	Reveal Stage = iota + 1
	// Stats animates the stat bars.
	Stats
)

func (s Stage) String() string {
	switch s {
	case Reveal:
		return "reveal"
	case Stats:
		return "stats"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Event is a scheduled step. Generation ties it to the Open call that
// scheduled it; events from an earlier generation are dropped.
type Event struct {
	Stage      Stage
	Generation uint64
}

// Scheduler delivers ev back to Fire after d has elapsed.
type Scheduler interface {
	After(d time.Duration, ev Event)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, ev Event)

// After implements Scheduler.
func (f SchedulerFunc) After(d time.Duration, ev Event) {
	f(d, ev)
}

// Delays are measured from the Open instant. Both steps are scheduled
// independently.
type Delays struct {
	Content time.Duration
	Stats   time.Duration
}

// DefaultDelays returns the standard reveal timing.
func DefaultDelays() Delays {
	return Delays{Content: 50 * time.Millisecond, Stats: 500 * time.Millisecond}
}

// Transition describes one phase change.
type Transition struct {
	From   Phase
	To     Phase
	Record catalog.Record
}

// Observer is notified of every phase change.
type Observer func(Transition)

// Lifecycle is a timer-driven state machine for the detail overlay. It is not
// safe for concurrent use; the owner serialises Open, Close and Fire on one
// goroutine (the bubbletea event loop).
type Lifecycle struct {
	scheduler  Scheduler
	delays     Delays
	observers  []Observer
	phase      Phase
	record     catalog.Record
	generation uint64

	contentVisible bool
	statsVisible   bool
	closing        bool
}

// New builds a closed Lifecycle. Zero delays fall back to DefaultDelays.
func New(scheduler Scheduler, delays Delays) *Lifecycle {
	def := DefaultDelays()
	if delays.Content <= 0 {
		delays.Content = def.Content
	}
	if delays.Stats <= 0 {
		delays.Stats = def.Stats
	}
	return &Lifecycle{scheduler: scheduler, delays: delays}
}

// Observe registers an observer for phase transitions.
func (l *Lifecycle) Observe(o Observer) {
	if o != nil {
		l.observers = append(l.observers, o)
	}
}

// Open shows record. Opening while already open restarts the sequence for the
// new record and invalidates events scheduled for the old one.
func (l *Lifecycle) Open(record catalog.Record) {
	l.generation++
	l.record = record
	l.contentVisible = false
	l.statsVisible = false
	l.closing = false
	l.transition(Opening)

	if l.scheduler == nil {
		return
	}
	gen := l.generation
	l.scheduler.After(l.delays.Content, Event{Stage: Reveal, Generation: gen})
	l.scheduler.After(l.delays.Stats, Event{Stage: Stats, Generation: gen})
}

// Fire applies a scheduled event. It reports whether the event changed
// state; stale events and events arriving after Close return false.
func (l *Lifecycle) Fire(ev Event) bool {
	if ev.Generation != l.generation || l.phase == Closed || l.phase == Closing {
		return false
	}
	switch ev.Stage {
	case Reveal:
		if l.contentVisible {
			return false
		}
		l.contentVisible = true
		if l.phase == Opening {
			l.transition(ContentVisible)
		}
		return true
	case Stats:
		if l.statsVisible {
			return false
		}
		// Stats imply content even if the reveal event was delayed.
		l.contentVisible = true
		l.statsVisible = true
		l.transition(StatsVisible)
		return true
	default:
		return false
	}
}

// Close hides the overlay immediately. It passes through Closing with both
// flags retracted and lands in Closed before returning. No-op when closed.
func (l *Lifecycle) Close() {
	if l.phase == Closed {
		return
	}
	l.generation++
	l.contentVisible = false
	l.statsVisible = false
	l.closing = true
	l.transition(Closing)

	l.record = catalog.Record{}
	l.closing = false
	l.transition(Closed)
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// IsOpen reports whether the overlay should be drawn.
func (l *Lifecycle) IsOpen() bool { return l.phase != Closed }

// ContentVisible reports whether the modal body is shown.
func (l *Lifecycle) ContentVisible() bool { return l.contentVisible }

// StatsVisible reports whether stat bars are shown at full value.
func (l *Lifecycle) StatsVisible() bool { return l.statsVisible }

// Closing reports whether a close is in progress.
func (l *Lifecycle) Closing() bool { return l.closing }

// Record returns the displayed record, or the zero Record when closed.
func (l *Lifecycle) Record() catalog.Record { return l.record }

// Generation returns the current open generation.
func (l *Lifecycle) Generation() uint64 { return l.generation }

func (l *Lifecycle) transition(to Phase) {
	from := l.phase
	l.phase = to
	if from == to {
		return
	}
	t := Transition{From: from, To: to, Record: l.record}
	for _, o := range l.observers {
		o(t)
	}
}
