package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansirender/color"
)

func TestFromRGBAFullAlphaMatchesFromRGB(t *testing.T) {
	assert.Equal(t, color.FromRGB(10, 20, 30), color.FromRGBA(10, 20, 30, 1.0))
}

func TestInvertedIsInvolution(t *testing.T) {
	c := color.FromRGB(12, 200, 57)
	assert.Equal(t, c, c.Inverted().Inverted())
}

func TestInvertedPreservesInvalid(t *testing.T) {
	assert.Equal(t, color.Invalid, color.Invalid.Inverted())
}

func TestWithOverlayInvalidOverIsNoOp(t *testing.T) {
	c := color.FromRGB(1, 2, 3)
	assert.Equal(t, c, c.WithOverlay(color.Invalid))
}

func TestWithOverlayInvalidUnderReturnsOver(t *testing.T) {
	over := color.FromRGB(9, 8, 7)
	assert.Equal(t, over, color.Invalid.WithOverlay(over))
}

func TestWithOverlayOpaqueReplacesFully(t *testing.T) {
	under := color.FromRGB(0, 0, 0)
	over := color.FromRGB(255, 255, 255)
	assert.Equal(t, over, under.WithOverlay(over))
}

func TestWithOverlayHalfAlphaBlends(t *testing.T) {
	under := color.FromRGBA(254, 0, 0, 0.5)
	over := color.FromRGBA(0, 254, 0, 0.5)
	got := under.WithOverlay(over)
	want := color.FromRGBA(127, 127, 0, 0.75)
	assert.Equal(t, want.Red, got.Red)
	assert.Equal(t, want.Green, got.Green)
	assert.Equal(t, want.Blue, got.Blue)
	assert.Equal(t, want.Alpha, got.Alpha)
}

func TestSettersRoundTrip(t *testing.T) {
	base := color.FromRGBA(0, 78, 231, 0.997)
	assert.Equal(t, color.FromRGBA(156, 78, 231, 0.997), base.WithRed(156))
	assert.Equal(t, color.FromRGBA(0, 200, 231, 0.997), base.WithGreen(200))
	assert.Equal(t, color.FromRGBA(0, 78, 9, 0.997), base.WithBlue(9))
}

func TestHueIsZeroWhenChannelsEqual(t *testing.T) {
	assert.Equal(t, 0.0, color.FromRGB(128, 128, 128).Hue())
	assert.Equal(t, 0.0, color.FromRGB(0, 0, 0).Hue())
	assert.Equal(t, 0.0, color.FromRGB(255, 255, 255).Hue())
}

func TestFromU32RoundTripsChannels(t *testing.T) {
	c := color.FromU32(0x11223344)
	assert.Equal(t, color.Color{Red: 0x11, Green: 0x22, Blue: 0x33, Alpha: 0x44, Valid: true}, c)
}

func TestFromU16ExpandsNibbles(t *testing.T) {
	c := color.FromU16(0x68ac)
	assert.Equal(t, color.Color{Red: 0x66, Green: 0x88, Blue: 0xaa, Alpha: 0xcc, Valid: true}, c)
}

func TestFromHSLPureGreenHueIsGreenDominant(t *testing.T) {
	got := color.FromHSL(120, 0.6, 0.6)
	assert.True(t, got.Valid)
	assert.Greater(t, got.Green, got.Red)
	assert.Greater(t, got.Green, got.Blue)
}

func TestWithHueRoundTripsSaturationAndLuminosity(t *testing.T) {
	c := color.FromHSL(200, 0.4, 0.3)
	moved := c.WithHue(10)
	assert.InDelta(t, c.Saturation(), moved.Saturation(), 0.01)
	assert.InDelta(t, c.Luminosity(), moved.Luminosity(), 0.01)
}
