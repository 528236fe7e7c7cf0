// Package app is the bubbletea view loop: one model owning the
// displayed listing, cursor and scroll, fed by poller publications and
// key events. All view state mutates in Update and nowhere else.
package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/burrow/internal/browser"
	"github.com/marcus/burrow/internal/history"
	"github.com/marcus/burrow/internal/keymap"
	"github.com/marcus/burrow/internal/launcher"
	"github.com/marcus/burrow/internal/listing"
)

// opMode says which file-operation prompt owns the footer, if any.
type opMode int

const (
	opNone opMode = iota
	opCreateFile
	opCreateDir
	opRename
	opDelete // inline y/n confirmation, no text input
)

// pendingNav tracks a requested directory change until the poller
// acknowledges it with a scan of the target.
type pendingNav struct {
	target string // directory asked for
	prev   string // directory displayed when the request was made
	gen    int    // matches grace timers to their navigation
}

// Model is the single bubbletea model for the whole browser.
type Model struct {
	state *browser.State
	hist  *history.History
	keys  *keymap.Map

	// Host integrations, swapped in tests so no processes spawn.
	openPath   func(string) error
	revealPath func(string) error
	copyPath   func(string) error

	// Terminal geometry
	width  int
	height int
	ready  bool

	// Displayed directory. These mirror the last adopted snapshot;
	// the poller may already be ahead of them.
	path    string
	entries []listing.Entry
	sig     uint64
	cursor  int
	scroll  int

	// Navigation in flight
	pending *pendingNav
	navGen  int
	loading bool // pending outlived the grace period
	frame   int  // spinner frame while loading
	seq     uint64

	// File operation prompt
	mode     opMode
	input    textinput.Model
	opTarget listing.Entry // entry a rename/delete acts on
	opErr    string

	// Status toast
	status       string
	statusIsErr  bool
	statusExpiry time.Time
}

// New builds the model rooted at start. st must be the same State the
// poller runs against.
func New(st *browser.State, start string) Model {
	ti := textinput.New()
	ti.CharLimit = 255

	return Model{
		state:      st,
		hist:       history.New(),
		keys:       keymap.Default(),
		openPath:   launcher.Open,
		revealPath: launcher.Reveal,
		copyPath:   clipboard.WriteAll,
		path:       start,
		input:      ti,
	}
}

// Init arms the publication listener, the housekeeping tick and the
// prompt cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitScan(), tickCmd(), textinput.Blink)
}

// selected returns the entry under the cursor.
func (m Model) selected() (listing.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return listing.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// visibleRows is the listing viewport height: the frame minus the
// header and footer lines.
func (m Model) visibleRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}
