// Package color implements the RGBA colour value type used throughout
// the renderer: construction, HSL conversion, alpha compositing, the
// named CSS palette, and the HTML-style string grammars.
package color

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel RGBA value with an explicit validity
// flag. Invalid is a sentinel distinct from fully transparent: both
// have every channel zero, but an invalid colour passes through
// unchanged in an overlay instead of blending.
type Color struct {
	Red, Green, Blue, Alpha uint8
	Valid                   bool
}

// Invalid is the non-blendable sentinel colour.
var Invalid = Color{}

// FromRGB builds a fully opaque, valid colour.
func FromRGB(r, g, b uint8) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: 255, Valid: true}
}

// FromRGBA builds a colour with alpha supplied as a float in [0,1],
// rounded to the nearest 8-bit value.
func FromRGBA(r, g, b uint8, a float64) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: roundAlpha(a), Valid: true}
}

func roundAlpha(a float64) uint8 {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return uint8(math.Round(a * 255))
}

// FromU32 decodes a packed 0xRRGGBBAA value.
func FromU32(v uint32) Color {
	return Color{
		Red:   uint8(v >> 24),
		Green: uint8(v >> 16),
		Blue:  uint8(v >> 8),
		Alpha: uint8(v),
		Valid: true,
	}
}

// FromU16 decodes a packed 0xRGBA value, each nibble expanded by ×0x11.
func FromU16(v uint16) Color {
	expand := func(nibble uint16) uint8 { return uint8(nibble * 0x11) }
	return Color{
		Red:   expand((v >> 12) & 0xF),
		Green: expand((v >> 8) & 0xF),
		Blue:  expand((v >> 4) & 0xF),
		Alpha: expand(v & 0xF),
		Valid: true,
	}
}

// FromHSL builds an opaque colour from hue (degrees, any real, reduced
// mod 360), saturation and luminosity (clamped to [0,1]).
func FromHSL(h, s, l float64) Color {
	return FromHSLA(h, s, l, 1)
}

// FromHSLA builds a colour from HSL plus alpha in [0,1].
func FromHSLA(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return FromRGBA(r, g, b, a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Hue returns the colour's hue in degrees. When all channels are equal
// (including black, white and grays), hue is defined as 0 rather than
// propagating a division by zero.
func (c Color) Hue() float64 {
	h, _, _ := c.hsl()
	return h
}

// Saturation returns the colour's HSL saturation in [0,1].
func (c Color) Saturation() float64 {
	_, s, _ := c.hsl()
	return s
}

// Luminosity returns the colour's HSL luminosity in [0,1].
func (c Color) Luminosity() float64 {
	_, _, l := c.hsl()
	return l
}

func (c Color) hsl() (h, s, l float64) {
	hc, sc, lc := colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}.Hsl()
	maxv := maxOf(c.Red, c.Green, c.Blue)
	minv := minOf(c.Red, c.Green, c.Blue)
	if maxv == minv {
		return 0, 0, lc
	}
	return hc, sc, lc
}

func maxOf(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minOf(a, b, c uint8) uint8 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// WithRed returns a copy with the red channel replaced.
func (c Color) WithRed(r uint8) Color { c.Red = r; return c }

// WithGreen returns a copy with the green channel replaced.
func (c Color) WithGreen(g uint8) Color { c.Green = g; return c }

// WithBlue returns a copy with the blue channel replaced.
func (c Color) WithBlue(b uint8) Color { c.Blue = b; return c }

// WithAlpha returns a copy with the alpha channel replaced (float in [0,1]).
func (c Color) WithAlpha(a float64) Color { c.Alpha = roundAlpha(a); return c }

// WithHue returns a copy with hue replaced, saturation/luminosity kept.
func (c Color) WithHue(h float64) Color {
	_, s, l := c.hsl()
	return FromHSLA(h, s, l, float64(c.Alpha)/255)
}

// WithSaturation returns a copy with saturation replaced.
func (c Color) WithSaturation(s float64) Color {
	h, _, l := c.hsl()
	return FromHSLA(h, s, l, float64(c.Alpha)/255)
}

// WithLuminosity returns a copy with luminosity replaced.
func (c Color) WithLuminosity(l float64) Color {
	h, s, _ := c.hsl()
	return FromHSLA(h, s, l, float64(c.Alpha)/255)
}

// Inverted flips the RGB channels (255-x), keeping alpha and validity.
func (c Color) Inverted() Color {
	if !c.Valid {
		return c
	}
	return Color{
		Red:   255 - c.Red,
		Green: 255 - c.Green,
		Blue:  255 - c.Blue,
		Alpha: c.Alpha,
		Valid: true,
	}
}

// WithOverlay composites over on top of c (under) using premultiplied
// alpha blending. If either operand is invalid, the other is returned
// unchanged.
func (c Color) WithOverlay(over Color) Color {
	if !over.Valid {
		return c
	}
	if !c.Valid {
		return over
	}
	blend := func(u, o uint8) uint8 {
		return uint8(math.Round((float64(o)*float64(over.Alpha) + float64(u)*float64(255-over.Alpha)) / 255))
	}
	return Color{
		Red:   blend(c.Red, over.Red),
		Green: blend(c.Green, over.Green),
		Blue:  blend(c.Blue, over.Blue),
		Alpha: uint8(float64(over.Alpha) + float64(c.Alpha)*float64(255-over.Alpha)/255),
		Valid: true,
	}
}

// ParseError is returned by the string-parsing constructors.
type ParseError struct {
	Input string
	Cause string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse color %q: %s", e.Input, e.Cause)
}
