package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dex/internal/modal"
)

// modalEventMsg carries a scheduled lifecycle event back into Update.
type modalEventMsg modal.Event

// tickScheduler turns lifecycle scheduling into tea.Tick commands. Open is
// called from inside Update, so the commands are queued and handed back to
// bubbletea by drain.
type tickScheduler struct {
	pending []tea.Cmd
}

// After implements modal.Scheduler.
func (s *tickScheduler) After(d time.Duration, ev modal.Event) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return modalEventMsg(ev)
	}))
}

func (s *tickScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
