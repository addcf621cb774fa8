package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansirender/color"
)

func TestFromHTMLName(t *testing.T) {
	got, err := color.FromHTML(" caDeT_Blue ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGB(95, 158, 160), got)
}

func TestFromHTMLHexRRGGBBAA(t *testing.T) {
	got, err := color.FromHTML(" # 5f9Ea0fe ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGBA(95, 158, 160, 254.0/255), got)
}

func TestFromHTMLHexRRGGBB(t *testing.T) {
	got, err := color.FromHTML(" # 5f9Ea0 ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGB(95, 158, 160), got)
}

func TestFromHTMLHexRGBA(t *testing.T) {
	got, err := color.FromHTML(" # 68ac ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGBA(0x66, 0x88, 0xaa, 204.0/255), got)
}

func TestFromHTMLHexRGB(t *testing.T) {
	got, err := color.FromHTML(" # 68a ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGB(0x66, 0x88, 0xaa), got)
}

func TestFromHTMLRGBAFunctionalBareAlpha(t *testing.T) {
	got, err := color.FromHTML(" rgba ( 95 , 158 , 160 , 0.997 ) ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGBA(95, 158, 160, 0.997), got)
}

func TestFromHTMLRGBAFunctionalPercentAlpha(t *testing.T) {
	got, err := color.FromHTML(" rgba ( 95 , 158 , 160 , 99.7 % ) ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGBA(95, 158, 160, 0.997), got)
}

func TestFromHTMLRGBFunctional(t *testing.T) {
	got, err := color.FromHTML(" rgb ( 95 , 158 , 160 ) ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromRGB(95, 158, 160), got)
}

func TestFromHTMLHSLAFunctional(t *testing.T) {
	got, err := color.FromHTML(" hsla ( 120.0 , 0.6 , 0.6, 0.997 ) ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromHSLA(120.0, 0.6, 0.6, 0.997), got)
}

func TestFromHTMLHSLFunctional(t *testing.T) {
	got, err := color.FromHTML(" hsl (120.0 , 0.6 , 0.6 ) ")
	assert.NoError(t, err)
	assert.Equal(t, color.FromHSL(120.0, 0.6, 0.6), got)
}

func TestFromHTMLGarbageIsError(t *testing.T) {
	_, err := color.FromHTML("not a colour at all")
	assert.Error(t, err)
}

func TestFromHTMLWrongFieldCountIsError(t *testing.T) {
	_, err := color.FromHTML("rgb(1, 2)")
	assert.Error(t, err)
}
