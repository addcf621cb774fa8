package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansirender/geometry"
)

func TestResolvePixelIsIdentity(t *testing.T) {
	for _, n := range []float64{0, 1, 7, 200} {
		got := geometry.Resolve(geometry.PixelDim(n), 0, 0, 0, 0, geometry.Horizontal)
		assert.Equal(t, int(n), got)
	}
}

func TestResolveAutoIsZero(t *testing.T) {
	assert.Equal(t, 0, geometry.Resolve(geometry.AutoDim, 100, 100, 100, 100, geometry.Horizontal))
}

func TestResolvePercentUsesParentOnGivenAxis(t *testing.T) {
	assert.Equal(t, 50, geometry.Resolve(geometry.PercentDim(50), 100, 40, 0, 0, geometry.Horizontal))
	assert.Equal(t, 20, geometry.Resolve(geometry.PercentDim(50), 100, 40, 0, 0, geometry.Vertical))
}

func TestResolvePWPHIgnoreAxisArgument(t *testing.T) {
	assert.Equal(t, 10, geometry.Resolve(geometry.PWDim(10), 100, 40, 0, 0, geometry.Vertical))
	assert.Equal(t, 4, geometry.Resolve(geometry.PHDim(10), 100, 40, 0, 0, geometry.Horizontal))
}

func TestResolveVWVHUseViewportNotParent(t *testing.T) {
	assert.Equal(t, 80, geometry.Resolve(geometry.VWDim(40), 10, 10, 200, 50, geometry.Horizontal))
	assert.Equal(t, 25, geometry.Resolve(geometry.VHDim(50), 10, 10, 200, 50, geometry.Vertical))
}

func TestResolvePMinPMaxPickSmallerLarger(t *testing.T) {
	assert.Equal(t, 10, geometry.Resolve(geometry.PMinDim(50), 20, 60, 0, 0, geometry.Horizontal))
	assert.Equal(t, 30, geometry.Resolve(geometry.PMaxDim(50), 20, 60, 0, 0, geometry.Horizontal))
}

func TestResolveRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 3, geometry.Resolve(geometry.PixelDim(2.5), 0, 0, 0, 0, geometry.Horizontal))
	assert.Equal(t, -3, geometry.Resolve(geometry.PixelDim(-2.5), 0, 0, 0, 0, geometry.Horizontal))
}

func TestIsParentRelative(t *testing.T) {
	assert.True(t, geometry.PercentDim(1).IsParentRelative())
	assert.True(t, geometry.PWDim(1).IsParentRelative())
	assert.False(t, geometry.VWDim(1).IsParentRelative())
	assert.False(t, geometry.AutoDim.IsParentRelative())
}

func TestIsViewportRelative(t *testing.T) {
	assert.True(t, geometry.VWDim(1).IsViewportRelative())
	assert.True(t, geometry.VMinDim(1).IsViewportRelative())
	assert.False(t, geometry.PercentDim(1).IsViewportRelative())
}

func TestFromHTMLAuto(t *testing.T) {
	d, err := geometry.FromHTML("  Auto ")
	assert.NoError(t, err)
	assert.Equal(t, geometry.AutoDim, d)
}

func TestFromHTMLBareNumberIsPixel(t *testing.T) {
	d, err := geometry.FromHTML("42")
	assert.NoError(t, err)
	assert.Equal(t, geometry.PixelDim(42), d)
}

func TestFromHTMLSuffixes(t *testing.T) {
	cases := []struct {
		in   string
		want geometry.Dimension
	}{
		{"50%", geometry.PercentDim(50)},
		{"10px", geometry.PixelDim(10)},
		{"20vw", geometry.VWDim(20)},
		{"20vh", geometry.VHDim(20)},
		{"5vmin", geometry.VMinDim(5)},
		{"5vmax", geometry.VMaxDim(5)},
		{"33pw", geometry.PWDim(33)},
		{"33ph", geometry.PHDim(33)},
		{"7pmin", geometry.PMinDim(7)},
		{"7pmax", geometry.PMaxDim(7)},
	}
	for _, c := range cases {
		got, err := geometry.FromHTML(c.in)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestFromHTMLGarbageIsError(t *testing.T) {
	_, err := geometry.FromHTML("not a dimension")
	assert.Error(t, err)
}
