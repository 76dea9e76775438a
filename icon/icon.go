// Package icon renders status symbols in the variant the user configured.
// Variants range from emoji to plain ASCII for terminals without glyph support.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vgrab-cli/vgrab/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values for the icons setting.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds one symbol's representation per variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) variant(name string) string {
	switch name {
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

// Get renders the icon in the globally configured variant.
func Get(i Icon) string {
	return icons[i].variant(viper.GetString(key.IconsVariant))
}
