package geometry

import (
	"ansirender/align"
	"ansirender/color"
)

// Layer selects whether a ColorArea overlays a cell's background or
// foreground.
type Layer int

const (
	Background Layer = iota
	Foreground
)

// ColorArea is a region descriptor applied during compositing: a
// colour, which layer it targets, its geometry, an optional external
// alignment override, and a stable insertion index used for removal.
type ColorArea struct {
	Color  color.Color
	Layer  Layer
	X, Y   Dimension
	Width  Dimension
	Height Dimension

	ExternalAlignX *align.X
	ExternalAlignY *align.Y

	// Index is this area's position in its owning node's list,
	// maintained by the node package on every mutation.
	Index int
}

// NewColorArea constructs a ColorArea with Auto geometry and no
// alignment override.
func NewColorArea(c color.Color, layer Layer) *ColorArea {
	return &ColorArea{
		Color:  c,
		Layer:  layer,
		X:      AutoDim,
		Y:      AutoDim,
		Width:  AutoDim,
		Height: AutoDim,
	}
}

// SetGeometry replaces the area's (x, y, width, height) and returns the
// receiver for chaining.
func (a *ColorArea) SetGeometry(x, y, width, height Dimension) *ColorArea {
	a.X, a.Y, a.Width, a.Height = x, y, width, height
	return a
}

// SetAlignment replaces the area's external alignment override and
// returns the receiver for chaining. Pass nil to fall back to the
// owning node's internal alignment on that axis.
func (a *ColorArea) SetAlignment(x *align.X, y *align.Y) *ColorArea {
	a.ExternalAlignX, a.ExternalAlignY = x, y
	return a
}
