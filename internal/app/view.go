package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/burrow/internal/icons"
	"github.com/marcus/burrow/internal/keymap"
	"github.com/marcus/burrow/internal/styles"
)

// View renders the full frame: header line, one row per visible entry,
// footer line. The row window is [scroll, scroll+visibleRows).
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')

	vis := m.visibleRows()
	for i := 0; i < vis; i++ {
		idx := m.scroll + i
		switch {
		case m.seq == 0 && i == 0:
			// Nothing published yet; the first scan is moments away.
			b.WriteString(styles.Muted.Render(" scanning…"))
		case m.seq > 0 && len(m.entries) == 0 && i == 0:
			b.WriteString(styles.Muted.Render(" (empty)"))
		case idx < len(m.entries):
			b.WriteString(m.rowView(idx))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := styles.Header.Render("burrow")
	avail := m.width - runewidth.StringWidth("burrow") - 4
	line := " " + title + " " + ansi.Truncate(m.path, avail, "…")
	if m.loading {
		line += " " + styles.Muted.Render(spinnerFrames[m.frame%len(spinnerFrames)])
	}
	return line
}

// rowView renders one entry: space, icon, space, name. The selected
// row is padded to the full width and reversed, with accent colors
// dropped so the highlight reads as a single block.
func (m Model) rowView(i int) string {
	e := m.entries[i]
	ic := icons.For(e)
	name := ansi.Truncate(e.Name, m.width-4, "…")

	if i == m.cursor {
		row := " " + ic.Glyph + " " + name
		if pad := m.width - runewidth.StringWidth(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		return styles.Selected.Render(row)
	}

	glyph := ic.Glyph
	if ic.Color != "" {
		glyph = lipgloss.NewStyle().Foreground(ic.Color).Render(glyph)
	}
	return " " + glyph + " " + styles.ForKind(e.Kind).Render(name)
}

func (m Model) footerView() string {
	switch {
	case m.mode == opDelete:
		return styles.ToastError.Render(" delete "+m.opTarget.Name+"?") +
			styles.Muted.Render(" "+m.keys.Hints(keymap.ContextConfirm))

	case m.mode != opNone:
		var label string
		switch m.mode {
		case opCreateFile:
			label = " New file: "
		case opCreateDir:
			label = " New directory: "
		case opRename:
			label = " Rename: "
		}
		line := styles.PromptLabel.Render(label) + m.input.View()
		if m.opErr != "" {
			line += "  " + styles.ToastError.Render(m.opErr)
		}
		return line

	case m.status != "":
		if m.statusIsErr {
			return styles.ToastError.Render(" " + m.status)
		}
		return styles.Toast.Render(" " + m.status)

	case m.loading:
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		target := ""
		if m.pending != nil {
			target = m.pending.target
		}
		return styles.Muted.Render(" " + frame + " loading " + target + "…")

	default:
		return styles.Muted.Render(" " + m.keys.Hints(keymap.ContextBrowse))
	}
}
