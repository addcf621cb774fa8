package node

import (
	"ansirender/align"
	"ansirender/cell"
	"ansirender/geometry"
)

// GetBuffer returns this node's composited buffer, recomputing it on
// demand per spec.md §4.5. absoluteX/absoluteY are this node's absolute
// screen offset this frame; padding is the renderer's padding value.
func (n *Node) GetBuffer(absoluteX, absoluteY, padding int) [][]cell.Cell {
	if !n.haveBuffer || absInt(absoluteX-n.absoluteX) >= padding || absInt(absoluteY-n.absoluteY) >= padding {
		n.updateContent = true
	}
	n.absoluteX, n.absoluteY = absoluteX, absoluteY

	if n.updateContent {
		n.clearBuffer()
		n.drawPattern()
		n.drawAnimatedPattern()
		n.drawText()
		n.drawAnimation()
		n.drawColors()
		n.drawChildren(padding)
		n.updateContent = false
	}
	return n.buffer
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// local converts a node-local coordinate (0,0 at the node's own
// top-left) into buffer indices, reporting whether it falls within the
// allocated (possibly viewport-clipped) buffer.
func (n *Node) local(x, y int) (bi, bj int, ok bool) {
	bj = x - n.bufferOriginX
	bi = y - n.bufferOriginY
	if bi < 0 || bi >= len(n.buffer) {
		return 0, 0, false
	}
	if bj < 0 || bj >= len(n.buffer[bi]) {
		return 0, 0, false
	}
	return bi, bj, true
}

func (n *Node) clearBuffer() {
	fill := cell.Cell{Value: n.DefaultCharacter, Background: n.DefaultBackground, Foreground: n.DefaultForeground}
	for i := range n.buffer {
		for j := range n.buffer[i] {
			n.buffer[i][j] = fill
		}
	}
}

func gridRuneTiled(grid [][]rune, row, col int) rune {
	if len(grid) == 0 {
		return 0
	}
	r := row % len(grid)
	if r < 0 {
		r += len(grid)
	}
	line := grid[r]
	if len(line) == 0 {
		return 0
	}
	c := col % len(line)
	if c < 0 {
		c += len(line)
	}
	return line[c]
}

func gridRuneAt(grid [][]rune, row, col int) rune {
	if row < 0 || row >= len(grid) {
		return 0
	}
	line := grid[row]
	if col < 0 || col >= len(line) {
		return 0
	}
	return line[col]
}

func (n *Node) drawPattern() { n.tileGrid(n.pattern) }

func (n *Node) drawAnimatedPattern() {
	if len(n.animatedPattern) == 0 {
		return
	}
	idx := n.currentPatternFrame % len(n.animatedPattern)
	if idx < 0 {
		idx += len(n.animatedPattern)
	}
	n.tileGrid(n.animatedPattern[idx])
}

func (n *Node) tileGrid(grid [][]rune) {
	if len(grid) == 0 {
		return
	}
	for y := 0; y < n.calculatedHeight; y++ {
		for x := 0; x < n.calculatedWidth; x++ {
			r := gridRuneTiled(grid, y, x)
			if r == 0 {
				continue
			}
			if bi, bj, ok := n.local(x, y); ok {
				n.buffer[bi][bj].Value = r
			}
		}
	}
}

func (n *Node) drawText() { n.placeGrid(n.text) }

func (n *Node) drawAnimation() {
	if len(n.animation) == 0 {
		return
	}
	idx := n.currentFrame % len(n.animation)
	if idx < 0 {
		idx += len(n.animation)
	}
	n.placeGrid(n.animation[idx])
}

func (n *Node) placeGrid(grid [][]rune) {
	if len(grid) == 0 {
		return
	}
	blockH := len(grid)
	blockW := 0
	for _, line := range grid {
		blockW = maxInt(blockW, len(line))
	}
	offX := alignOffsetX(n.style.InternalAlignX, n.calculatedWidth, blockW)
	offY := alignOffsetY(n.style.InternalAlignY, n.calculatedHeight, blockH)

	for row := 0; row < blockH; row++ {
		for col := 0; col < blockW; col++ {
			r := gridRuneAt(grid, row, col)
			if r == 0 {
				continue
			}
			x, y := offX+col, offY+row
			if x < 0 || x >= n.calculatedWidth || y < 0 || y >= n.calculatedHeight {
				continue
			}
			if bi, bj, ok := n.local(x, y); ok {
				n.buffer[bi][bj].Value = r
			}
		}
	}
}

func alignOffsetX(a align.X, containerW, itemW int) int {
	switch a {
	case align.XCenter:
		return (containerW - itemW) / 2
	case align.XRight:
		return containerW - itemW
	default:
		return 0
	}
}

func alignOffsetY(a align.Y, containerH, itemH int) int {
	switch a {
	case align.YCenter:
		return (containerH - itemH) / 2
	case align.YBottom:
		return containerH - itemH
	default:
		return 0
	}
}

func (n *Node) drawColors() {
	for _, area := range n.colors {
		w := area.Width
		h := area.Height
		width := n.calculatedWidth
		if w.Kind != geometry.Auto {
			width = geometry.Resolve(w, n.calculatedWidth, n.calculatedHeight, n.lastViewportW, n.lastViewportH, geometry.Horizontal)
		}
		height := n.calculatedHeight
		if h.Kind != geometry.Auto {
			height = geometry.Resolve(h, n.calculatedWidth, n.calculatedHeight, n.lastViewportW, n.lastViewportH, geometry.Vertical)
		}

		ax, ay := effectiveExternalAlign(area.ExternalAlignX, area.ExternalAlignY, n.style)
		offX := alignOffsetX(ax, n.calculatedWidth, width)
		offY := alignOffsetY(ay, n.calculatedHeight, height)

		x0 := offX + geometry.Resolve(area.X, n.calculatedWidth, n.calculatedHeight, n.lastViewportW, n.lastViewportH, geometry.Horizontal)
		y0 := offY + geometry.Resolve(area.Y, n.calculatedWidth, n.calculatedHeight, n.lastViewportW, n.lastViewportH, geometry.Vertical)

		for y := maxInt(0, y0); y < minInt(n.calculatedHeight, y0+height); y++ {
			for x := maxInt(0, x0); x < minInt(n.calculatedWidth, x0+width); x++ {
				bi, bj, ok := n.local(x, y)
				if !ok {
					continue
				}
				switch area.Layer {
				case geometry.Background:
					n.buffer[bi][bj].Background = n.buffer[bi][bj].Background.WithOverlay(area.Color)
				case geometry.Foreground:
					n.buffer[bi][bj].Foreground = n.buffer[bi][bj].Foreground.WithOverlay(area.Color)
				}
			}
		}
	}
}

func (n *Node) drawChildren(padding int) {
	for _, child := range n.children {
		ax, ay := effectiveExternalAlign(child.style.ExternalAlignX, child.style.ExternalAlignY, n.style)
		offX := alignOffsetX(ax, n.calculatedWidth, child.calculatedWidth)
		offY := alignOffsetY(ay, n.calculatedHeight, child.calculatedHeight)

		childLocalX := offX + geometry.Resolve(child.X, n.calculatedWidth, n.calculatedHeight, n.lastViewportW, n.lastViewportH, geometry.Horizontal)
		childLocalY := offY + geometry.Resolve(child.Y, n.calculatedWidth, n.calculatedHeight, n.lastViewportW, n.lastViewportH, geometry.Vertical)

		childAbsX := n.absoluteX + childLocalX
		childAbsY := n.absoluteY + childLocalY

		childBuf := child.GetBuffer(childAbsX, childAbsY, padding)

		for ci := range childBuf {
			for cj := range childBuf[ci] {
				over := childBuf[ci][cj]
				px := childLocalX + cj + child.bufferOriginX
				py := childLocalY + ci + child.bufferOriginY
				bi, bj, ok := n.local(px, py)
				if !ok {
					continue
				}
				n.buffer[bi][bj] = n.buffer[bi][bj].WithOverlay(over)
			}
		}

		n.drawChildBorder(child, childLocalX, childLocalY)
	}
}

func (n *Node) drawChildBorder(child *Node, childLocalX, childLocalY int) {
	b := child.style.Border
	w, h := child.calculatedWidth, child.calculatedHeight

	put := func(x, y int, c cell.Cell) {
		if c.Value == 0 {
			return
		}
		if bi, bj, ok := n.local(x, y); ok {
			n.buffer[bi][bj] = n.buffer[bi][bj].WithOverlay(c)
		}
	}

	put(childLocalX-1, childLocalY-1, b.TopLeft)
	put(childLocalX+w, childLocalY-1, b.TopRight)
	put(childLocalX-1, childLocalY+h, b.BottomLeft)
	put(childLocalX+w, childLocalY+h, b.BottomRight)
	for k := 0; k < w; k++ {
		put(childLocalX+k, childLocalY-1, b.Top)
		put(childLocalX+k, childLocalY+h, b.Bottom)
	}
	for k := 0; k < h; k++ {
		put(childLocalX-1, childLocalY+k, b.Left)
		put(childLocalX+w, childLocalY+k, b.Right)
	}
}
