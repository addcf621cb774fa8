package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansirender/color"
	"ansirender/geometry"
	"ansirender/node"
)

func TestGetBufferPlacesText(t *testing.T) {
	n := node.New()
	n.SetTextString("hi")
	n.ProcessGeometry(10, 10, 10, 10, 0)

	buf := n.GetBuffer(0, 0, 0)
	assert.Equal(t, 'h', buf[0][0].Value)
	assert.Equal(t, 'i', buf[0][1].Value)
}

func TestGetBufferColorAreaBlendsBackground(t *testing.T) {
	n := node.New()
	n.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PixelDim(4), geometry.PixelDim(2))
	n.SetDefaultColors(color.FromRGB(0, 0, 0), color.FromRGB(255, 255, 255))

	area := geometry.NewColorArea(color.FromRGB(200, 0, 0), geometry.Background)
	area.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PixelDim(2), geometry.PixelDim(2))
	n.AddColor(area)

	n.ProcessGeometry(10, 10, 10, 10, 0)
	buf := n.GetBuffer(0, 0, 0)

	assert.Equal(t, color.FromRGB(200, 0, 0), buf[0][0].Background)
	assert.Equal(t, color.FromRGB(0, 0, 0), buf[0][3].Background)
}

func TestGetBufferChildOverlaysIntoParent(t *testing.T) {
	parent := node.New()
	parent.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PixelDim(5), geometry.PixelDim(3))

	child := node.New()
	child.SetGeometry(geometry.PixelDim(1), geometry.PixelDim(1), geometry.PixelDim(2), geometry.PixelDim(1))
	child.SetTextString("ab")
	parent.AddChild(child)

	parent.ProcessGeometry(10, 10, 10, 10, 0)
	buf := parent.GetBuffer(0, 0, 0)

	assert.Equal(t, 'a', buf[1][1].Value)
	assert.Equal(t, 'b', buf[1][2].Value)
}

func TestGetBufferPatternTiles(t *testing.T) {
	n := node.New()
	n.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PixelDim(4), geometry.PixelDim(1))
	n.SetPattern([][]rune{[]rune("ab")})

	n.ProcessGeometry(10, 10, 10, 10, 0)
	buf := n.GetBuffer(0, 0, 0)

	assert.Equal(t, []rune{'a', 'b', 'a', 'b'}, []rune{buf[0][0].Value, buf[0][1].Value, buf[0][2].Value, buf[0][3].Value})
}
