// Package keymap defines the key bindings for the browser and resolves
// incoming keys to commands per input context.
package keymap

// Binding ties one key chord to a command within one input context.
// Key is the bubbletea key string (msg.String()).
type Binding struct {
	Key     string
	Command string
	Context string
}

// Input contexts. Browse is the normal listing view; prompt and confirm
// take over while a file operation is being named or confirmed.
const (
	ContextBrowse  = "browse"
	ContextPrompt  = "prompt"
	ContextConfirm = "confirm"
)

// Commands.
const (
	CmdQuit         = "quit"
	CmdCursorUp     = "cursor-up"
	CmdCursorDown   = "cursor-down"
	CmdCursorTop    = "cursor-top"
	CmdCursorBottom = "cursor-bottom"
	CmdPageUp       = "page-up"
	CmdPageDown     = "page-down"
	CmdHalfPageUp   = "half-page-up"
	CmdHalfPageDown = "half-page-down"
	CmdEnter        = "enter"
	CmdAscend       = "ascend"
	CmdOpen         = "open"
	CmdEdit         = "edit"
	CmdReveal       = "reveal"
	CmdCopyPath     = "copy-path"
	CmdCreateFile   = "create-file"
	CmdCreateDir    = "create-dir"
	CmdRename       = "rename"
	CmdDelete       = "delete"

	// Prompt/confirm contexts only.
	CmdConfirm = "confirm"
	CmdCancel  = "cancel"
)

// Map resolves keys to commands. Built once at startup from the default
// bindings; there is no user override layer.
type Map struct {
	commands map[string]string // "context\x00key" -> command
	hints    map[string]string
}

func Default() *Map {
	m := &Map{
		commands: make(map[string]string),
		hints: map[string]string{
			ContextBrowse:  "enter open • bksp up • a new • R rename • D delete • q quit",
			ContextPrompt:  "enter confirm • esc cancel",
			ContextConfirm: "y delete • n cancel",
		},
	}
	for _, b := range DefaultBindings() {
		m.commands[b.Context+"\x00"+b.Key] = b.Command
	}
	return m
}

// Lookup returns the command bound to key in context, or "" when the
// key is unbound there.
func (m *Map) Lookup(context, key string) string {
	return m.commands[context+"\x00"+key]
}

// Hints returns the footer hint line for context.
func (m *Map) Hints(context string) string {
	return m.hints[context]
}
