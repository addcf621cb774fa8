package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansirender/geometry"
	"ansirender/node"
)

func TestEmptyAutoNodeResolvesToZero(t *testing.T) {
	n := node.New()
	n.ProcessGeometry(80, 24, 80, 24, 0)
	assert.Equal(t, 0, n.CalculatedWidth())
	assert.Equal(t, 0, n.CalculatedHeight())
}

func TestAutoNodeInfersFromText(t *testing.T) {
	n := node.New()
	n.SetTextString("hello\nhi")
	n.ProcessGeometry(80, 24, 80, 24, 0)
	assert.Equal(t, 5, n.CalculatedWidth())
	assert.Equal(t, 2, n.CalculatedHeight())
}

func TestViewportRelativeRootWithParentRelativeChild(t *testing.T) {
	root := node.New()
	root.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.VWDim(100), geometry.VHDim(50))

	child := node.New()
	child.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PWDim(50), geometry.PHDim(50))
	root.AddChild(child)

	root.ProcessGeometry(40, 20, 40, 20, 0)

	assert.Equal(t, 40, root.CalculatedWidth())
	assert.Equal(t, 10, root.CalculatedHeight())
	assert.Equal(t, 20, child.CalculatedWidth())
	assert.Equal(t, 5, child.CalculatedHeight())
}

func TestPixelChildDoesNotNeedParentPass(t *testing.T) {
	root := node.New()
	root.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PixelDim(10), geometry.PixelDim(10))

	child := node.New()
	child.SetGeometry(geometry.PixelDim(1), geometry.PixelDim(1), geometry.PixelDim(3), geometry.PixelDim(3))
	root.AddChild(child)

	root.ProcessGeometry(80, 24, 80, 24, 0)

	assert.Equal(t, 3, child.CalculatedWidth())
	assert.Equal(t, 3, child.CalculatedHeight())
}
