package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/burrow/internal/browser"
	"github.com/marcus/burrow/internal/listing"
)

func TestViewEmptyBeforeFirstResize(t *testing.T) {
	m := New(browser.NewState("/d"), "/d")
	if got := m.View(); got != "" {
		t.Errorf("unsized view rendered %q", got)
	}
}

func TestViewShowsScanningBeforeFirstPublication(t *testing.T) {
	m := testModel(t, "/d")
	if got := m.View(); !strings.Contains(got, "scanning") {
		t.Errorf("view before any scan:\n%s", got)
	}
}

func TestViewFillsExactlyTheFrame(t *testing.T) {
	m := testModel(t, "/d")
	m = apply(t, m, pubFor(1, "/d", dirE("docs"), fileE("main.go")))

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Errorf("view has %d lines, want the full 12-row frame", len(lines))
	}
}

func TestViewRendersHeaderAndVisibleRows(t *testing.T) {
	m := testModel(t, "/projects/burrow")
	m = apply(t, m, pubFor(1, "/projects/burrow", dirE("docs"), fileE("main.go")))

	got := m.View()
	for _, want := range []string{"burrow", "/projects/burrow", "docs", "main.go"} {
		if !strings.Contains(got, want) {
			t.Errorf("view is missing %q:\n%s", want, got)
		}
	}
}

func TestViewWindowsLongListings(t *testing.T) {
	m := testModel(t, "/d")
	entries := make([]listing.Entry, 0, 30)
	for i := 0; i < 30; i++ {
		entries = append(entries, fileE(string(rune('a'+i%26))+"-entry"))
	}
	m = apply(t, m, pubFor(1, "/d", entries...))

	got := m.View()
	if !strings.Contains(got, "a-entry") {
		t.Error("first row not rendered")
	}
	// row 10 onward sits below a 10-row viewport
	if strings.Contains(got, "k-entry") {
		t.Error("rows past the viewport were rendered")
	}
}

func TestViewTruncatesLongNames(t *testing.T) {
	m := testModel(t, "/d")
	long := strings.Repeat("n", 80)
	m = apply(t, m, pubFor(1, "/d", fileE(long)))

	got := m.View()
	if strings.Contains(got, long) {
		t.Error("an 80-cell name survived a 60-cell frame")
	}
	if !strings.Contains(got, "…") {
		t.Error("truncated name has no ellipsis")
	}
}

func TestViewShowsEmptyPlaceholder(t *testing.T) {
	m := testModel(t, "/d")
	m = apply(t, m, pubFor(1, "/d"))
	if got := m.View(); !strings.Contains(got, "(empty)") {
		t.Errorf("empty directory view:\n%s", got)
	}
}

func TestViewFooterPrecedence(t *testing.T) {
	m := testModel(t, "/d")
	m = apply(t, m, pubFor(1, "/d", fileE("doomed.txt")))

	// browse hints by default
	if got := m.View(); !strings.Contains(got, "quit") {
		t.Errorf("no key hints in the idle footer:\n%s", got)
	}

	// a toast displaces the hints
	m = apply(t, m, toastMsg{text: "copied /d/doomed.txt"})
	if got := m.View(); !strings.Contains(got, "copied /d/doomed.txt") {
		t.Errorf("toast not shown:\n%s", got)
	}

	// an open prompt displaces the toast
	pm := apply(t, m, keyRunes('a'))
	if got := pm.View(); !strings.Contains(got, "New file:") {
		t.Errorf("prompt not shown:\n%s", got)
	}

	// a delete confirmation outranks everything
	dm := apply(t, m, keyRunes('D'))
	if got := dm.View(); !strings.Contains(got, "delete doomed.txt?") {
		t.Errorf("confirmation bar not shown:\n%s", got)
	}
}

func TestViewShowsInlinePromptError(t *testing.T) {
	m := testModel(t, "/d")
	m = apply(t, m, pubFor(1, "/d"))
	m = apply(t, m, keyRunes('a'))
	m.input.SetValue("bad/name")
	m = apply(t, m, keyType(tea.KeyEnter))

	if got := m.View(); !strings.Contains(got, "path separators") {
		t.Errorf("inline validation error not rendered:\n%s", got)
	}
}

func TestViewShowsLoadingTarget(t *testing.T) {
	m := testModel(t, "/d")
	m = apply(t, m, pubFor(1, "/d", dirE("slow")))
	m = apply(t, m, keyType(tea.KeyEnter))
	m = apply(t, m, navTimeoutMsg{gen: m.pending.gen})

	got := m.View()
	if !strings.Contains(got, "loading") || !strings.Contains(got, "slow") {
		t.Errorf("loading footer missing:\n%s", got)
	}
}
