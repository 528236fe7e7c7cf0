// Package styles centralizes the lipgloss palette and styles used by
// the browser UI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/burrow/internal/listing"
)

// Color palette. Entry rows keep to the basic ANSI colors so they
// follow the terminal theme rather than fight it.
var (
	DirColor     = lipgloss.Color("4") // directories, classic blue
	OtherColor   = lipgloss.Color("3") // broken links, sockets, devices
	MutedColor   = lipgloss.Color("8")
	ErrorColor   = lipgloss.Color("1")
	SuccessColor = lipgloss.Color("2")
)

// Entry row styles
var (
	Dir = lipgloss.NewStyle().
		Foreground(DirColor)

	File = lipgloss.NewStyle()

	Other = lipgloss.NewStyle().
		Foreground(OtherColor)

	// Selected renders the whole row in reverse video. Accent colors
	// are dropped on the selected row so the highlight reads as one
	// block.
	Selected = lipgloss.NewStyle().
			Reverse(true)
)

// Chrome styles (header and footer)
var (
	Header = lipgloss.NewStyle().
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(MutedColor)

	PromptLabel = lipgloss.NewStyle().
			Bold(true)

	// Toast styles for status messages
	Toast = lipgloss.NewStyle().
		Foreground(SuccessColor)

	ToastError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// ForKind returns the row style for k.
func ForKind(k listing.Kind) lipgloss.Style {
	switch k {
	case listing.KindDir:
		return Dir
	case listing.KindOther:
		return Other
	default:
		return File
	}
}
