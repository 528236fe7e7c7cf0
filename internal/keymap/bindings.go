package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Browse context: cursor movement
		{Key: "q", Command: "quit", Context: "browse"},
		{Key: "ctrl+c", Command: "quit", Context: "browse"},
		{Key: "j", Command: "cursor-down", Context: "browse"},
		{Key: "down", Command: "cursor-down", Context: "browse"},
		{Key: "k", Command: "cursor-up", Context: "browse"},
		{Key: "up", Command: "cursor-up", Context: "browse"},
		{Key: "g", Command: "cursor-top", Context: "browse"},
		{Key: "home", Command: "cursor-top", Context: "browse"},
		{Key: "G", Command: "cursor-bottom", Context: "browse"},
		{Key: "end", Command: "cursor-bottom", Context: "browse"},
		{Key: "pgup", Command: "page-up", Context: "browse"},
		{Key: "ctrl+b", Command: "page-up", Context: "browse"},
		{Key: "pgdown", Command: "page-down", Context: "browse"},
		{Key: "ctrl+f", Command: "page-down", Context: "browse"},
		{Key: "ctrl+u", Command: "half-page-up", Context: "browse"},
		{Key: "ctrl+d", Command: "half-page-down", Context: "browse"},

		// Browse context: navigation between directories
		{Key: "enter", Command: "enter", Context: "browse"},
		{Key: "l", Command: "enter", Context: "browse"},
		{Key: "right", Command: "enter", Context: "browse"},
		{Key: "backspace", Command: "ascend", Context: "browse"},
		{Key: "h", Command: "ascend", Context: "browse"},
		{Key: "left", Command: "ascend", Context: "browse"},

		// Browse context: acting on the selected entry
		{Key: "o", Command: "open", Context: "browse"},
		{Key: "e", Command: "edit", Context: "browse"},
		{Key: "ctrl+r", Command: "reveal", Context: "browse"},
		{Key: "Y", Command: "copy-path", Context: "browse"},
		{Key: "a", Command: "create-file", Context: "browse"},
		{Key: "A", Command: "create-dir", Context: "browse"},
		{Key: "R", Command: "rename", Context: "browse"},
		{Key: "D", Command: "delete", Context: "browse"},

		// Prompt and confirm contexts are handled by the active input
		// widget; only the keys that leave them are bound here.
		{Key: "esc", Command: "cancel", Context: "prompt"},
		{Key: "enter", Command: "confirm", Context: "prompt"},
		{Key: "esc", Command: "cancel", Context: "confirm"},
		{Key: "n", Command: "cancel", Context: "confirm"},
		{Key: "N", Command: "cancel", Context: "confirm"},
		{Key: "y", Command: "confirm", Context: "confirm"},
		{Key: "Y", Command: "confirm", Context: "confirm"},
		{Key: "enter", Command: "confirm", Context: "confirm"},
	}
}
