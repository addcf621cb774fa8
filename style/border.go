// Package style implements the Border and Style value types: the
// eight-segment border, predefined border presets, and the combined
// border+alignment node style.
package style

import (
	"ansirender/align"
	"ansirender/cell"
	"ansirender/color"
)

// Border is the eight cells that decorate a node's edge: four corners
// and four edges.
type Border struct {
	TopLeft, Top, TopRight       cell.Cell
	Right                        cell.Cell
	BottomRight, Bottom, BottomLeft cell.Cell
	Left                         cell.Cell
}

func borderFromChars(tl, t, tr, r, br, b, bl, l rune) Border {
	mk := func(v rune) cell.Cell {
		return cell.Cell{Value: v, Background: color.Transparent, Foreground: color.FromRGB(255, 255, 255)}
	}
	return Border{
		TopLeft: mk(tl), Top: mk(t), TopRight: mk(tr),
		Right:       mk(r),
		BottomRight: mk(br), Bottom: mk(b), BottomLeft: mk(bl),
		Left: mk(l),
	}
}

// EmptyBorder has every segment as a NUL cell (invisible).
var EmptyBorder = Border{}

// SimpleBorder is a single-line Unicode box border.
var SimpleBorder = borderFromChars('┌', '─', '┐', '│', '┘', '─', '└', '│')

// DoubleBorder is a double-line Unicode box border.
var DoubleBorder = borderFromChars('╔', '═', '╗', '║', '╝', '═', '╚', '║')

// RoundedBorder is a single-line Unicode box border with rounded corners.
var RoundedBorder = borderFromChars('╭', '─', '╮', '│', '╯', '─', '╰', '│')

// segments returns pointers to all eight cells, for the bulk setters.
func (b *Border) segments() []*cell.Cell {
	return []*cell.Cell{
		&b.TopLeft, &b.Top, &b.TopRight,
		&b.Right,
		&b.BottomRight, &b.Bottom, &b.BottomLeft,
		&b.Left,
	}
}

// SetBackgroundAll sets the background colour of all eight segments and
// returns the receiver for chaining.
func (b *Border) SetBackgroundAll(c color.Color) *Border {
	for _, seg := range b.segments() {
		seg.Background = c
	}
	return b
}

// SetForegroundAll sets the foreground colour of all eight segments and
// returns the receiver for chaining.
func (b *Border) SetForegroundAll(c color.Color) *Border {
	for _, seg := range b.segments() {
		seg.Foreground = c
	}
	return b
}

// Style is a node's border plus its internal and optional external
// alignment.
type Style struct {
	Border Border

	InternalAlignX align.X
	InternalAlignY align.Y

	ExternalAlignX *align.X
	ExternalAlignY *align.Y
}

// NewStyle returns the default style: empty border, top-left internal
// alignment, no external alignment override.
func NewStyle() *Style {
	return &Style{
		Border:         EmptyBorder,
		InternalAlignX: align.XLeft,
		InternalAlignY: align.YTop,
	}
}

// SetExternalAlignment replaces the external alignment override and
// returns the receiver for chaining. Pass nil for either axis to fall
// back to the parent's internal alignment on that axis.
func (s *Style) SetExternalAlignment(x *align.X, y *align.Y) *Style {
	s.ExternalAlignX, s.ExternalAlignY = x, y
	return s
}

// SetInternalAlignment replaces the internal alignment and returns the
// receiver for chaining.
func (s *Style) SetInternalAlignment(x align.X, y align.Y) *Style {
	s.InternalAlignX, s.InternalAlignY = x, y
	return s
}

// SetBorder replaces the border and returns the receiver for chaining.
func (s *Style) SetBorder(b Border) *Style {
	s.Border = b
	return s
}
