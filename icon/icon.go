// Package icon provides multi-variant rendering for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds the visual representations of a single symbol across variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Question
	Image
	Video
	Tag
	Comment
	Provider
	Download
	Lock
	Search
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(^_^)b",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(>_<)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(o_o;)",
		squares: "🟨",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(?_?)",
		squares: "🟦",
	},
	Image: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "[img]",
		kaomoji: "(o^^)o",
		squares: "🟪",
	},
	Video: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "[vid]",
		kaomoji: "(^o^)",
		squares: "🟧",
	},
	Tag: {
		emoji:   "🏷️",
		nerd:    "",
		plain:   "#",
		kaomoji: "(='.'=)",
		squares: "🟫",
	},
	Comment: {
		emoji:   "💬",
		nerd:    "",
		plain:   ">",
		kaomoji: "(^o^)/",
		squares: "⬜",
	},
	Provider: {
		emoji:   "🌐",
		nerd:    "",
		plain:   "@",
		kaomoji: "(@_@)",
		squares: "🟦",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "v",
		kaomoji: "(._.)",
		squares: "🟩",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "*",
		kaomoji: "(x_x)",
		squares: "⬛",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "/",
		kaomoji: "(o_O)",
		squares: "🟨",
	},
}

// Get returns the rendered string for an Icon under the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
