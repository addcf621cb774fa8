package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansirender/color"
)

func TestFromNameIsCaseAndSeparatorInsensitive(t *testing.T) {
	want := color.FromRGB(95, 158, 160)
	got, err := color.FromName(" caDeT_Blue ")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFromNameUnknownReturnsError(t *testing.T) {
	_, err := color.FromName("not a real colour")
	assert.Error(t, err)
}

func TestNameRoundTripsFromName(t *testing.T) {
	c := color.FromRGB(0, 255, 255)
	name, ok := c.Name()
	assert.True(t, ok)
	roundTripped, err := color.FromName(name)
	assert.NoError(t, err)
	assert.Equal(t, c, roundTripped)
}

func TestNameFalseForUnmatchedColor(t *testing.T) {
	_, ok := color.FromRGB(1, 2, 3).Name()
	assert.False(t, ok)
}

func TestTransparentResolvesByName(t *testing.T) {
	got, err := color.FromName("transparent")
	assert.NoError(t, err)
	assert.Equal(t, color.Transparent, got)
}
