package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/burrow/internal/keymap"
)

// validateFilename rejects names that cannot become a directory entry:
// empty or whitespace, dot names, path separators, control characters,
// and the characters Windows reserves.
func validateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%q is not a usable name", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name cannot contain path separators")
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("name contains control characters")
		}
	}
	if strings.ContainsAny(name, `<>:"|?*`) {
		return fmt.Errorf("name contains reserved characters")
	}
	return nil
}

// startPrompt opens the footer prompt for mode. Rename prompts start
// prefilled with the current name.
func (m Model) startPrompt(mode opMode) (Model, tea.Cmd) {
	m.mode = mode
	m.opErr = ""
	m.input.Reset()
	if mode == opRename {
		m.input.SetValue(m.opTarget.Name)
		m.input.CursorEnd()
	}
	return m, m.input.Focus()
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Lookup(keymap.ContextPrompt, msg.String()) {
	case keymap.CmdCancel:
		m.mode = opNone
		m.opErr = ""
		m.input.Blur()
	case keymap.CmdConfirm:
		return m.submitPrompt()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.opErr = ""
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Lookup(keymap.ContextConfirm, msg.String()) {
	case keymap.CmdConfirm:
		m.mode = opNone
		return m, deleteCmd(m.opTarget.Path)
	case keymap.CmdCancel:
		m.mode = opNone
	}
	return m, nil
}

// submitPrompt validates the typed name and issues the operation. A
// bad name keeps the prompt open with an inline error instead of
// surfacing a toast.
func (m Model) submitPrompt() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if err := validateFilename(name); err != nil {
		m.opErr = err.Error()
		return m, nil
	}
	dest := filepath.Join(m.path, name)
	if _, err := os.Lstat(dest); err == nil {
		m.opErr = name + " already exists"
		return m, nil
	}

	mode := m.mode
	m.mode = opNone
	m.input.Blur()

	switch mode {
	case opCreateFile:
		return m, createCmd(dest, false)
	case opCreateDir:
		return m, createCmd(dest, true)
	case opRename:
		return m, renameCmd(m.opTarget.Path, dest)
	}
	return m, nil
}

// The operation commands touch the filesystem and report back with an
// opDoneMsg. None of them refresh the listing: the poller's next cycle
// picks the change up on its own.

func createCmd(path string, isDir bool) tea.Cmd {
	return func() tea.Msg {
		name := filepath.Base(path)
		if isDir {
			if err := os.Mkdir(path, 0o755); err != nil {
				return opDoneMsg{text: "create " + name, err: err}
			}
			return opDoneMsg{text: "created " + name}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return opDoneMsg{text: "create " + name, err: err}
		}
		f.Close()
		return opDoneMsg{text: "created " + name}
	}
}

func renameCmd(src, dst string) tea.Cmd {
	return func() tea.Msg {
		if err := os.Rename(src, dst); err != nil {
			return opDoneMsg{text: "rename " + filepath.Base(src), err: err}
		}
		return opDoneMsg{text: "renamed to " + filepath.Base(dst)}
	}
}

func deleteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := os.RemoveAll(path); err != nil {
			return opDoneMsg{text: "delete " + filepath.Base(path), err: err}
		}
		return opDoneMsg{text: "deleted " + filepath.Base(path)}
	}
}
