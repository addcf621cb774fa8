// Package cell implements the screen cell value type: a glyph plus a
// background and foreground colour, with the character-aware overlay
// rule used throughout compositing.
package cell

import "ansirender/color"

// Cell is one character position: a glyph and its two colours.
type Cell struct {
	Value      rune
	Background color.Color
	Foreground color.Color
}

// Empty is the zero-content cell: NUL glyph, both colours invalid.
var Empty = Cell{Value: 0, Background: color.Invalid, Foreground: color.Invalid}

// Default is the cell used to fill a freshly (re)sized buffer: a space
// on a black background with a white foreground.
var Default = Cell{
	Value:      ' ',
	Background: color.FromRGB(0, 0, 0),
	Foreground: color.FromRGB(255, 255, 255),
}

// halfBlockGlyphs is the fixed set of 18 half-block/shade code points
// whose overlay rule blends from the base cell's *foreground* instead
// of its background (spec Open Question 1). Reproduced verbatim from
// the original source; not to be generalised or reordered.
const halfBlockGlyphs = "▀▄▅▆▇█▉▊▋▌▐▙▛▜▟▚▞▓▒"

func isHalfBlock(r rune) bool {
	for _, g := range halfBlockGlyphs {
		if g == r {
			return true
		}
	}
	return false
}

// WithOverlay composites over on top of base (the receiver), following
// the character-aware rule:
//
//   - over.Value == NUL: base is returned unchanged.
//   - over.Value == ' ': base's glyph is kept; background blends into
//     both base's background and base's foreground.
//   - over.Value is printable and base.Value is a recognised
//     half-block/shade glyph: the result takes over's glyph, blending
//     both colour channels from base's *foreground*.
//   - over.Value is printable otherwise: the result takes over's
//     glyph, blending both colour channels from base's background.
func (base Cell) WithOverlay(over Cell) Cell {
	switch {
	case over.Value == 0:
		return base
	case over.Value == ' ':
		return Cell{
			Value:      base.Value,
			Background: base.Background.WithOverlay(over.Background),
			Foreground: base.Foreground.WithOverlay(over.Background),
		}
	case isHalfBlock(base.Value):
		return Cell{
			Value:      over.Value,
			Background: base.Foreground.WithOverlay(over.Background),
			Foreground: base.Foreground.WithOverlay(over.Foreground),
		}
	default:
		return Cell{
			Value:      over.Value,
			Background: base.Background.WithOverlay(over.Background),
			Foreground: base.Background.WithOverlay(over.Foreground),
		}
	}
}
