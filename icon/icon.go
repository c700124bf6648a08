// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Push
	Pop
	Peek
	Empty
	Question
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💥", nerd: "", plain: "✗", kaomoji: "(╯°□°）╯︵ ┻━┻", squares: "🟥"},
	Push:     {emoji: "⬆️", nerd: "", plain: "+", kaomoji: "(ง •̀_•́)ง", squares: "🟦"},
	Pop:      {emoji: "⬇️", nerd: "", plain: "-", kaomoji: "(っ˘ڡ˘ς)", squares: "🟧"},
	Peek:     {emoji: "👀", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "🟨"},
	Empty:    {emoji: "🫙", nerd: "", plain: "∅", kaomoji: "(・_・;)", squares: "⬜"},
	Question: {emoji: "🤔", nerd: "", plain: "?", kaomoji: "(・・?", squares: "🟪"},
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

// Get returns the rendered string for an Icon under the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
