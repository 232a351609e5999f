package gallery

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"wishgallery/internal/logging"
	"wishgallery/internal/session"
)

// updateMsg carries a controller change into the Bubble Tea loop.
type updateMsg session.Update

// Updates buffers controller notifications for the model. Observe never
// blocks: the controller may call it from inside Update.
type Updates struct {
	ch   chan session.Update
	done chan struct{}
	once sync.Once
}

// NewUpdates creates an update feed.
func NewUpdates() *Updates {
	return &Updates{
		ch:   make(chan session.Update, 64),
		done: make(chan struct{}),
	}
}

// Observe is registered with session.WithObserver.
func (u *Updates) Observe(up session.Update) {
	select {
	case u.ch <- up:
	default:
		// The model re-reads the snapshot on every message; only the cue is lost.
		logging.Get(logging.CategoryUI).Debugw("update feed full, dropping update",
			"state", up.Snapshot.State.String(), "cue", up.Cue.String())
	}
}

// Stop releases any pending wait.
func (u *Updates) Stop() {
	u.once.Do(func() { close(u.done) })
}

func (u *Updates) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case up := <-u.ch:
			return updateMsg(up)
		case <-u.done:
			return nil
		}
	}
}
