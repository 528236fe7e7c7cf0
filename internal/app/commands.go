package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/burrow/internal/browser"
)

// Message types for the view loop.
type (
	// tickMsg drives toast expiry once a second.
	tickMsg time.Time

	// spinMsg advances the loading spinner while a navigation is
	// pending past its grace period.
	spinMsg time.Time

	// scanMsg delivers one poller publication.
	scanMsg browser.Publication

	// navTimeoutMsg fires when a pending navigation outlives the
	// grace period. gen says which navigation the timer belonged to,
	// so a timer from an already-resolved navigation is inert.
	navTimeoutMsg struct{ gen int }

	// toastMsg sets the footer status line.
	toastMsg struct {
		text  string
		isErr bool
	}

	// opDoneMsg reports the outcome of a file operation. text is the
	// success line; on failure it doubles as the error prefix.
	opDoneMsg struct {
		text string
		err  error
	}

	// editorDoneMsg reports the editor handing the terminal back.
	editorDoneMsg struct{ err error }
)

const (
	// navGracePeriod is how long a navigation may stay unacknowledged
	// before the footer admits it is loading.
	navGracePeriod = 500 * time.Millisecond

	// spinInterval paces the loading spinner.
	spinInterval = 120 * time.Millisecond

	// toastDuration is how long a status line stays up.
	toastDuration = 3 * time.Second
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func spinCmd() tea.Cmd {
	return tea.Tick(spinInterval, func(t time.Time) tea.Msg {
		return spinMsg(t)
	})
}

func navTimeoutCmd(gen int) tea.Cmd {
	return tea.Tick(navGracePeriod, func(time.Time) tea.Msg {
		return navTimeoutMsg{gen: gen}
	})
}

func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

func toastErr(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, isErr: true} }
}

// waitScan blocks until the state publishes a scan newer than the one
// the model last saw, then feeds it back as a message. Re-armed on
// every scanMsg so a listener is always registered; the poller
// publishes each cycle, so this returns at least once per interval.
func (m Model) waitScan() tea.Cmd {
	st, after := m.state, m.seq
	return func() tea.Msg {
		pub, err := st.WaitScan(context.Background(), after)
		if err != nil {
			return nil
		}
		return scanMsg(pub)
	}
}
