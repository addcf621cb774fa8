package renderer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansirender/geometry"
	"ansirender/node"
	"ansirender/renderer"
)

type fixedSize struct{ cols, rows int }

func (f fixedSize) Size() (int, int, error) { return f.cols, f.rows, nil }

func newTestScene() *node.Node {
	n := node.New()
	n.SetGeometry(geometry.PixelDim(0), geometry.PixelDim(0), geometry.PixelDim(5), geometry.PixelDim(1))
	n.SetTextString("hello")
	return n
}

func TestDrawIsStableAcrossUnchangedFrames(t *testing.T) {
	var out bytes.Buffer
	r := renderer.New(&out, fixedSize{cols: 10, rows: 5})
	r.SetRoot(newTestScene())

	require.NoError(t, r.Draw(false))
	firstLen := out.Len()
	assert.Greater(t, firstLen, 0)

	out.Reset()
	require.NoError(t, r.Draw(false))
	secondLen := out.Len()

	assert.Less(t, secondLen, firstLen, "an unchanged frame should write far fewer bytes than the initial paint")
}

func TestDrawForceRepaintsEveryClippedCell(t *testing.T) {
	var out bytes.Buffer
	r := renderer.New(&out, fixedSize{cols: 10, rows: 5})
	r.SetRoot(newTestScene())

	require.NoError(t, r.Draw(false))
	firstLen := out.Len()

	out.Reset()
	require.NoError(t, r.Draw(false))
	unchangedLen := out.Len()
	assert.Less(t, unchangedLen, firstLen)

	out.Reset()
	require.NoError(t, r.Draw(true))
	forcedLen := out.Len()
	assert.Greater(t, forcedLen, unchangedLen, "a forced repaint should write more than a no-op frame")
	assert.Contains(t, out.String(), "hello", "a forced repaint should re-emit every cell of the 5x1 root")
}

func TestDrawWithNilRootIsNoOp(t *testing.T) {
	var out bytes.Buffer
	r := renderer.New(&out, fixedSize{cols: 10, rows: 5})
	assert.NoError(t, r.Draw(false))
	assert.Equal(t, 0, out.Len())
}
