package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/burrow/internal/browser"
	"github.com/marcus/burrow/internal/history"
	"github.com/marcus/burrow/internal/keymap"
	"github.com/marcus/burrow/internal/launcher"
	"github.com/marcus/burrow/internal/listing"
)

// Update is the single mutation point for all view state. Every pass
// ends in finish, so the cursor is always clamped, visible, and
// remembered no matter which message ran.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m = m.handleWheel(msg)

	case scanMsg:
		m = m.applyScan(browser.Publication(msg))
		cmds = append(cmds, m.waitScan())

	case navTimeoutMsg:
		if m.pending != nil && m.pending.gen == msg.gen && !m.loading {
			m.loading = true
			cmds = append(cmds, spinCmd())
		}

	case spinMsg:
		if m.loading {
			m.frame++
			cmds = append(cmds, spinCmd())
		}

	case tickMsg:
		if m.status != "" && time.Now().After(m.statusExpiry) {
			m.status = ""
		}
		cmds = append(cmds, tickCmd())

	case toastMsg:
		m = m.showStatus(msg.text, msg.isErr)

	case opDoneMsg:
		if msg.err != nil {
			m = m.showStatus(msg.text+": "+msg.err.Error(), true)
		} else {
			m = m.showStatus(msg.text, false)
		}

	case editorDoneMsg:
		if msg.err != nil {
			m = m.showStatus("editor: "+msg.err.Error(), true)
		}
	}

	m = m.finish()
	return m, tea.Batch(cmds...)
}

func (m Model) showStatus(text string, isErr bool) Model {
	m.status = text
	m.statusIsErr = isErr
	m.statusExpiry = time.Now().Add(toastDuration)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.mode == opDelete {
		return m.handleConfirmKey(msg)
	}
	if m.mode != opNone {
		return m.handlePromptKey(msg)
	}

	switch m.keys.Lookup(keymap.ContextBrowse, msg.String()) {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdCursorUp:
		m.cursor--
	case keymap.CmdCursorDown:
		m.cursor++
	case keymap.CmdCursorTop:
		m.cursor = 0
	case keymap.CmdCursorBottom:
		m.cursor = len(m.entries) - 1
	case keymap.CmdPageUp:
		m.cursor -= m.visibleRows()
	case keymap.CmdPageDown:
		m.cursor += m.visibleRows()
	case keymap.CmdHalfPageUp:
		m.cursor -= m.visibleRows() / 2
	case keymap.CmdHalfPageDown:
		m.cursor += m.visibleRows() / 2

	case keymap.CmdEnter:
		return m.enterSelected()
	case keymap.CmdAscend:
		return m.ascend()

	case keymap.CmdOpen:
		if e, ok := m.selected(); ok {
			if err := m.openPath(e.Path); err != nil {
				return m, toastErr(err.Error())
			}
		}
	case keymap.CmdEdit:
		return m.editSelected()
	case keymap.CmdReveal:
		if e, ok := m.selected(); ok {
			if err := m.revealPath(e.Path); err != nil {
				return m, toastErr(err.Error())
			}
		}
	case keymap.CmdCopyPath:
		if e, ok := m.selected(); ok {
			if err := m.copyPath(e.Path); err != nil {
				return m, toastErr("copy path: " + err.Error())
			}
			return m, toast("copied " + e.Path)
		}

	case keymap.CmdCreateFile:
		return m.startPrompt(opCreateFile)
	case keymap.CmdCreateDir:
		return m.startPrompt(opCreateDir)
	case keymap.CmdRename:
		if e, ok := m.selected(); ok {
			m.opTarget = e
			return m.startPrompt(opRename)
		}
	case keymap.CmdDelete:
		if e, ok := m.selected(); ok {
			m.opTarget = e
			m.mode = opDelete
		}
	}
	return m, nil
}

// handleWheel scrolls the viewport one row per notch. The cursor does
// not move; if a notch would push it out of view, finish snaps the
// viewport right back, which caps wheel travel at cursor visibility.
func (m Model) handleWheel(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll--
	case tea.MouseButtonWheelDown:
		m.scroll++
	}
	return m
}

// navigateTo points the poller at target and keeps the current listing
// on screen until a scan of target arrives.
func (m Model) navigateTo(target string) (Model, tea.Cmd) {
	m.navGen++
	m.state.SetTarget(target)
	m.pending = &pendingNav{target: target, prev: m.path, gen: m.navGen}
	return m, navTimeoutCmd(m.navGen)
}

func (m Model) enterSelected() (Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}
	if e.Kind == listing.KindDir {
		return m.navigateTo(e.Path)
	}
	// Not a directory: hand it to the system handler.
	if err := m.openPath(e.Path); err != nil {
		return m, toastErr(err.Error())
	}
	return m, nil
}

func (m Model) ascend() (Model, tea.Cmd) {
	parent := filepath.Dir(m.path)
	if parent == m.path {
		return m, nil // filesystem root
	}
	return m.navigateTo(parent)
}

func (m Model) editSelected() (Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok || e.Kind == listing.KindDir {
		return m, nil
	}
	return m, tea.ExecProcess(launcher.EditorCommand(e.Path), func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	})
}

// applyScan folds one publication into the view. A publication that is
// neither the pending target nor the displayed directory only advances
// the sequence cursor.
func (m Model) applyScan(pub browser.Publication) Model {
	if pub.Seq > m.seq {
		m.seq = pub.Seq
	}

	if m.pending != nil {
		if pub.Path != m.pending.target {
			return m // scan of the old directory; keep what we show
		}
		prev := m.pending.prev
		m.path = pub.Snap.Path
		m.entries = pub.Snap.Entries
		m.sig = pub.Snap.Sig
		m.pending = nil
		m.loading = false
		m.cursor, m.scroll = m.landingPosition(pub.Snap, prev)
		return m
	}

	if pub.Path != m.path || pub.Snap.Sig == m.sig {
		return m
	}
	// The displayed directory changed on disk underneath us; adopt the
	// new listing and let finish re-clamp the cursor.
	m.entries = pub.Snap.Entries
	m.sig = pub.Snap.Sig
	return m
}

// landingPosition decides where the cursor lands after entering snap:
// the saved position if the directory was visited before, else on the
// entry named like the directory just exited, else the top.
func (m Model) landingPosition(snap listing.Snapshot, prev string) (cursor, scroll int) {
	if pos, ok := m.hist.Lookup(snap.Path); ok {
		return pos.Cursor, pos.Scroll
	}
	if i := snap.IndexOf(filepath.Base(prev)); i >= 0 {
		return i, i
	}
	return 0, 0
}

// finish runs after every message: clamp the cursor into the listing,
// keep it on screen with one row of bottom margin, bound the scroll to
// real rows, and remember the position for the displayed directory.
func (m Model) finish() Model {
	n := len(m.entries)
	if m.cursor > n-1 {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	vis := m.visibleRows()
	margin := 0
	if vis > 1 {
		margin = 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	} else if m.cursor > m.scroll+vis-1-margin {
		m.scroll = m.cursor - (vis - 1 - margin)
	}
	if m.scroll > n-1 {
		m.scroll = n - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}

	m.hist.Save(m.path, history.Position{Cursor: m.cursor, Scroll: m.scroll})
	return m
}
