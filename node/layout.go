package node

import (
	"ansirender/cell"
	"ansirender/geometry"
)

// ProcessGeometry resolves this node's size (and recursively its
// children's) against the current viewport and parent dimensions,
// following the two-pass rule from spec.md §4.4: children with
// viewport-or-absolute geometry are laid out before Auto inference, so
// that inference never depends on a parent-relative child.
func (n *Node) ProcessGeometry(viewportW, viewportH, parentW, parentH, padding int) {
	n.checkDependencies(viewportW, viewportH, parentW, parentH)

	viewportOnly, parentRelative := n.partitionChildren()

	for _, c := range viewportOnly {
		c.ProcessGeometry(viewportW, viewportH, 0, 0, padding)
	}

	n.inferAuto(viewportW, viewportH, parentW, parentH)

	if n.updateSize {
		n.updateContent = true
		n.resolveAndAllocate(viewportW, viewportH, parentW, parentH, padding)
		n.updateSize = false
	}

	if n.updateContent {
		for _, c := range parentRelative {
			c.ProcessGeometry(viewportW, viewportH, n.calculatedWidth, n.calculatedHeight, padding)
		}
	}
}

func (n *Node) checkDependencies(viewportW, viewportH, parentW, parentH int) {
	viewportChanged := viewportW != n.lastViewportW || viewportH != n.lastViewportH
	parentChanged := parentW != n.lastParentW || parentH != n.lastParentH

	if viewportChanged && (n.X.IsViewportRelative() || n.Width.IsViewportRelative() ||
		n.Y.IsViewportRelative() || n.Height.IsViewportRelative()) {
		n.updateSize = true
	}
	if parentChanged && (n.X.IsParentRelative() || n.Width.IsParentRelative() ||
		n.Y.IsParentRelative() || n.Height.IsParentRelative()) {
		n.updateSize = true
	}

	n.lastViewportW, n.lastViewportH = viewportW, viewportH
	n.lastParentW, n.lastParentH = parentW, parentH
}

// partitionChildren splits children into those whose width and height
// are NOT parent-relative (viewport-only pass) and the rest.
func (n *Node) partitionChildren() (viewportOnly, parentRelative []*Node) {
	for _, c := range n.children {
		if c.Width.IsParentRelative() || c.Height.IsParentRelative() {
			parentRelative = append(parentRelative, c)
		} else {
			viewportOnly = append(viewportOnly, c)
		}
	}
	return
}

func (n *Node) inferAuto(viewportW, viewportH, parentW, parentH int) {
	widthAuto := n.Width.Kind == geometry.Auto
	heightAuto := n.Height.Kind == geometry.Auto
	if !widthAuto && !heightAuto {
		return
	}

	newW, newH := n.calculatedWidth, n.calculatedHeight

	if widthAuto {
		w := geometry.Resolve(n.Width, parentW, parentH, viewportW, viewportH, geometry.Horizontal)
		for _, c := range n.children {
			if eligibleForInference(c.X, c.Width) {
				w = maxInt(w, c.calculatedWidth+geometry.Resolve(c.X, 0, 0, viewportW, viewportH, geometry.Horizontal))
			}
		}
		for _, line := range n.text {
			w = maxInt(w, len(line))
		}
		for _, frame := range n.animation {
			for _, line := range frame {
				w = maxInt(w, len(line))
			}
		}
		newW = w
	}

	if heightAuto {
		h := geometry.Resolve(n.Height, parentW, parentH, viewportW, viewportH, geometry.Vertical)
		for _, c := range n.children {
			if eligibleForInference(c.Y, c.Height) {
				h = maxInt(h, c.calculatedHeight+geometry.Resolve(c.Y, 0, 0, viewportW, viewportH, geometry.Vertical))
			}
		}
		if len(n.text) > 0 {
			h = maxInt(h, len(n.text))
		}
		for _, frame := range n.animation {
			h = maxInt(h, len(frame))
		}
		newH = h
	}

	if newW != n.calculatedWidth || newH != n.calculatedHeight {
		n.updateSize = true
	}
	n.calculatedWidth, n.calculatedHeight = newW, newH
}

// eligibleForInference reports whether a child can contribute to its
// parent's Auto-axis inference on one axis: its position and size on
// that axis (x and width, or y and height, passed by the caller) must
// both be viewport-or-absolute, never parent-relative, to avoid the
// inference cycle spec.md §9 describes.
func eligibleForInference(pos, size geometry.Dimension) bool {
	return !pos.IsParentRelative() && !size.IsParentRelative()
}

func (n *Node) resolveAndAllocate(viewportW, viewportH, parentW, parentH, padding int) {
	if n.Width.Kind != geometry.Auto {
		n.calculatedWidth = geometry.Resolve(n.Width, parentW, parentH, viewportW, viewportH, geometry.Horizontal)
	}
	if n.Height.Kind != geometry.Auto {
		n.calculatedHeight = geometry.Resolve(n.Height, parentW, parentH, viewportW, viewportH, geometry.Vertical)
	}
	if n.calculatedWidth < 0 {
		n.calculatedWidth = 0
	}
	if n.calculatedHeight < 0 {
		n.calculatedHeight = 0
	}

	loX, visibleW := clippedVisible(n.absoluteX, viewportW, n.calculatedWidth, padding)
	loY, visibleH := clippedVisible(n.absoluteY, viewportH, n.calculatedHeight, padding)
	n.bufferOriginX = loX - padding
	n.bufferOriginY = loY - padding

	n.buffer = make([][]cell.Cell, visibleH)
	fill := cell.Cell{Value: ' ', Background: n.DefaultBackground, Foreground: n.DefaultForeground}
	for i := range n.buffer {
		row := make([]cell.Cell, visibleW)
		for j := range row {
			row[j] = fill
		}
		n.buffer[i] = row
	}
	n.haveBuffer = true
}

// clippedVisible returns the lower bound (lo) of the visible slice of
// [0,calc) under the renderer's viewport, and the total buffer
// dimension once padding is added on both sides.
func clippedVisible(absolute, rendererDim, calc, padding int) (lo, size int) {
	hi := minInt(-absolute+rendererDim, calc)
	if hi < 0 {
		hi = 0
	}
	lo = minInt(-absolute, calc)
	if lo < 0 {
		lo = 0
	}
	return lo, hi - lo + 2*padding
}
