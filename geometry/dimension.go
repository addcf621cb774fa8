// Package geometry implements the CSS-like dimension algebra (the
// Dimension tagged value and its resolver) and the ColorArea region
// descriptor.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags which of the eleven Dimension variants a value holds.
type Kind int

const (
	Auto Kind = iota
	Pixel
	Percent
	PW
	PH
	PMin
	PMax
	VW
	VH
	VMin
	VMax
)

// Dimension is a tagged length value. Auto ignores Value; Pixel
// interprets Value as a cell count; every other variant interprets
// Value as a percentage (0-100 scale, matching the original grammar —
// 50 means 50%).
type Dimension struct {
	Kind  Kind
	Value float64
}

// AutoDim is the zero-value, content-inferred dimension.
var AutoDim = Dimension{Kind: Auto}

// PixelDim constructs a Pixel(n) dimension.
func PixelDim(n float64) Dimension { return Dimension{Kind: Pixel, Value: n} }

// PercentDim constructs a Percent(p) dimension.
func PercentDim(p float64) Dimension { return Dimension{Kind: Percent, Value: p} }

// PWDim constructs a PW(p) dimension.
func PWDim(p float64) Dimension { return Dimension{Kind: PW, Value: p} }

// PHDim constructs a PH(p) dimension.
func PHDim(p float64) Dimension { return Dimension{Kind: PH, Value: p} }

// PMinDim constructs a PMin(p) dimension.
func PMinDim(p float64) Dimension { return Dimension{Kind: PMin, Value: p} }

// PMaxDim constructs a PMax(p) dimension.
func PMaxDim(p float64) Dimension { return Dimension{Kind: PMax, Value: p} }

// VWDim constructs a VW(p) dimension.
func VWDim(p float64) Dimension { return Dimension{Kind: VW, Value: p} }

// VHDim constructs a VH(p) dimension.
func VHDim(p float64) Dimension { return Dimension{Kind: VH, Value: p} }

// VMinDim constructs a VMin(p) dimension.
func VMinDim(p float64) Dimension { return Dimension{Kind: VMin, Value: p} }

// VMaxDim constructs a VMax(p) dimension.
func VMaxDim(p float64) Dimension { return Dimension{Kind: VMax, Value: p} }

// Axis selects which of a parent/viewport's two dimensions a Percent
// (with no more specific variant) resolves against.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// IsParentRelative reports whether the dimension's resolved value
// depends on the parent's width/height (Percent, PW, PH, PMin, PMax).
func (d Dimension) IsParentRelative() bool {
	switch d.Kind {
	case Percent, PW, PH, PMin, PMax:
		return true
	}
	return false
}

// IsViewportRelative reports whether the dimension's resolved value
// depends on the renderer's viewport dimensions (VW, VH, VMin, VMax).
func (d Dimension) IsViewportRelative() bool {
	switch d.Kind {
	case VW, VH, VMin, VMax:
		return true
	}
	return false
}

// Resolve computes the integer cell count for dim given the current
// parent and viewport dimensions and which axis is being computed.
// Rounding is half-away-from-zero.
func Resolve(dim Dimension, parentW, parentH, viewportW, viewportH int, axis Axis) int {
	round := func(v float64) int {
		if v >= 0 {
			return int(math.Floor(v + 0.5))
		}
		return -int(math.Floor(-v + 0.5))
	}
	pct := func(p float64, base int) int { return round(p * 0.01 * float64(base)) }

	switch dim.Kind {
	case Auto:
		return 0
	case Pixel:
		return round(dim.Value)
	case Percent:
		if axis == Horizontal {
			return pct(dim.Value, parentW)
		}
		return pct(dim.Value, parentH)
	case PW:
		return pct(dim.Value, parentW)
	case PH:
		return pct(dim.Value, parentH)
	case PMin:
		return pct(dim.Value, minInt(parentW, parentH))
	case PMax:
		return pct(dim.Value, maxInt(parentW, parentH))
	case VW:
		return pct(dim.Value, viewportW)
	case VH:
		return pct(dim.Value, viewportH)
	case VMin:
		return pct(dim.Value, minInt(viewportW, viewportH))
	case VMax:
		return pct(dim.Value, maxInt(viewportW, viewportH))
	}
	return 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FromHTML parses the dimension string grammar: a decimal number
// optionally followed by a unit suffix (px, %, vw, vh, vmin, vmax, pw,
// ph, pmin, pmax) or the literal "auto". Bare numbers are pixels.
func FromHTML(s string) (Dimension, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	if lower == "auto" {
		return AutoDim, nil
	}

	type suffixKind struct {
		suffix string
		kind   Kind
	}
	// Longest/most specific suffixes first so overlapping prefixes
	// (e.g. "vmin" vs "vm") never misparse.
	suffixes := []suffixKind{
		{"vmin", VMin}, {"vmax", VMax}, {"pmin", PMin}, {"pmax", PMax},
		{"vw", VW}, {"vh", VH}, {"pw", PW}, {"ph", PH},
		{"px", Pixel}, {"%", Percent},
	}
	for _, sk := range suffixes {
		if strings.HasSuffix(lower, sk.suffix) {
			numPart := strings.TrimSpace(trimmed[:len(trimmed)-len(sk.suffix)])
			v, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return Dimension{}, &ParseError{Input: s, Cause: "invalid numeric part"}
			}
			return Dimension{Kind: sk.kind, Value: v}, nil
		}
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Dimension{}, &ParseError{Input: s, Cause: "not auto, a suffixed dimension, or a bare number"}
	}
	return PixelDim(v), nil
}

// ParseError is returned by FromHTML.
type ParseError struct {
	Input string
	Cause string
}

func (e *ParseError) Error() string {
	return "couldn't parse dimension " + strconv.Quote(e.Input) + ": " + e.Cause
}
