// Package tui runs boulder levels in the terminal with Bubble Tea.
// It owns the tick loop, key bindings, the level menu and the journal view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LevelChangedMsg reports a level file that changed on disk.
type LevelChangedMsg struct {
	Path string
}

// WatchErrorMsg reports a failure from the level watcher.
type WatchErrorMsg struct {
	Err error
}

// watchCmd waits for the next change on a level subscription. It returns
// nil once the subscription is closed, which ends the wait loop.
func watchCmd(sub *levels.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-sub.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg{Path: path}
		case err, ok := <-sub.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
