// Package icons maps directory entries to nerd font glyphs.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/burrow/internal/listing"
)

// Icon is a glyph plus an optional accent color. An empty color means
// the entry's kind color applies.
type Icon struct {
	Glyph string
	Color lipgloss.Color
}

// Accent colors stay in the basic ANSI range so they follow the
// terminal palette.
var (
	red    = lipgloss.Color("1")
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")
	blue   = lipgloss.Color("4")
	cyan   = lipgloss.Color("6")
)

type rule struct {
	match func(e listing.Entry) bool
	icon  Icon
}

// ext matches case-insensitively on name suffixes.
func ext(suffixes ...string) func(listing.Entry) bool {
	return func(e listing.Entry) bool {
		name := strings.ToLower(e.Name)
		for _, s := range suffixes {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}
}

// named matches exact names, any kind.
func named(names ...string) func(listing.Entry) bool {
	return func(e listing.Entry) bool {
		for _, n := range names {
			if e.Name == n {
				return true
			}
		}
		return false
	}
}

func kind(k listing.Kind) func(listing.Entry) bool {
	return func(e listing.Entry) bool { return e.Kind == k }
}

// gitMeta matches repository metadata sitting directly inside a .git
// directory, where names like config and HEAD carry no extension.
func gitMeta(e listing.Entry) bool {
	if filepath.Base(filepath.Dir(e.Path)) != ".git" {
		return false
	}
	switch e.Name {
	case "HEAD", "FETCH_HEAD", "ORIG_HEAD", "description", "config":
		return true
	}
	return false
}

// rules are checked top to bottom, first match wins. Order carries
// meaning: package.json is node tooling before it is json, and .git or
// node_modules are their ecosystems before they are plain directories.
var rules = []rule{
	{ext(".rs"), Icon{Glyph: "", Color: yellow}},
	{named(".git", ".gitignore", ".gitmodules", ".gitattributes"), Icon{Glyph: "", Color: yellow}},
	{gitMeta, Icon{Glyph: "", Color: yellow}},
	{ext(".go"), Icon{Glyph: "", Color: cyan}},
	{named("go.mod", "go.sum"), Icon{Glyph: "", Color: cyan}},
	{ext(".toml"), Icon{Glyph: "", Color: cyan}},
	{ext(".lock"), Icon{Glyph: "", Color: yellow}},
	{func(e listing.Entry) bool {
		return strings.HasSuffix(strings.ToLower(e.Name), ".js") ||
			e.Name == "package.json" || e.Name == "node_modules"
	}, Icon{Glyph: "", Color: green}},
	{ext(".json", ".jsonc", ".jsonl"), Icon{Glyph: "", Color: yellow}},
	{ext(".svg", ".png", ".jpg", ".jpeg"), Icon{Glyph: "", Color: red}},
	{ext(".css"), Icon{Glyph: "", Color: blue}},
	{ext(".html"), Icon{Glyph: "", Color: yellow}},
	{ext(".woff2", ".ttf"), Icon{Glyph: "", Color: red}},
	{ext(".md"), Icon{Glyph: "", Color: blue}},
	{kind(listing.KindDir), Icon{Glyph: ""}},
	{ext(".txt"), Icon{Glyph: ""}},
	{kind(listing.KindFile), Icon{Glyph: ""}},
}

// For returns the icon for e. Entries no rule covers render as a
// literal question mark.
func For(e listing.Entry) Icon {
	for _, r := range rules {
		if r.match(e) {
			return r.icon
		}
	}
	return Icon{Glyph: "?"}
}
