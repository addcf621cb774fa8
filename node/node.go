// Package node implements the scene-graph Node: geometry, content,
// decoration and structure, the two-pass layout algorithm, the
// compositing algorithm, and the shadow-state mutation scheme used by
// the optional background driver.
package node

import (
	"github.com/mattn/go-runewidth"

	"ansirender/align"
	"ansirender/cell"
	"ansirender/color"
	"ansirender/geometry"
	"ansirender/style"
)

// Node is one entry in the scene graph.
type Node struct {
	// Geometry.
	X, Y, Width, Height                 geometry.Dimension
	calculatedWidth, calculatedHeight   int
	absoluteX, absoluteY                int

	// Content.
	DefaultCharacter   rune
	DefaultBackground  color.Color
	DefaultForeground  color.Color
	text               [][]rune
	pattern            [][]rune
	animation          [][][]rune
	currentFrame       int
	animatedPattern    [][][]rune
	currentPatternFrame int

	// Decoration.
	colors []*geometry.ColorArea
	style  *style.Style

	// Structure. parent is a non-owning back-reference, used by AddChild
	// to reject cycles; dirty signals propagate through signal. It must
	// never be used to extend the parent's lifetime.
	children       []*Node
	parent         *Node
	parentLocation int

	// Dirty flags.
	updateSize    bool
	updateContent bool

	// Compositing state.
	buffer          [][]cell.Cell
	bufferOriginX   int
	bufferOriginY   int
	haveBuffer      bool
	lastViewportW   int
	lastViewportH   int
	lastParentW     int
	lastParentH     int

	signal *updateSignal
	shadow *Mutator
}

// New constructs a Node with empty content, Dimension::Auto geometry,
// and both dirty flags set so the first layout/composite pass always
// runs.
func New() *Node {
	n := &Node{
		X: geometry.AutoDim, Y: geometry.AutoDim,
		Width: geometry.AutoDim, Height: geometry.AutoDim,
		DefaultCharacter:  0,
		DefaultBackground: color.Transparent,
		DefaultForeground: color.FromRGB(255, 255, 255),
		style:             style.NewStyle(),
		updateSize:        true,
		updateContent:     true,
	}
	n.signal = newUpdateSignal(nil)
	n.shadow = &Mutator{target: n}
	return n
}

// CalculatedWidth returns the last inferred/resolved width.
func (n *Node) CalculatedWidth() int { return n.calculatedWidth }

// CalculatedHeight returns the last inferred/resolved height.
func (n *Node) CalculatedHeight() int { return n.calculatedHeight }

// AbsoluteX returns the last absolute x offset used to composite this node.
func (n *Node) AbsoluteX() int { return n.absoluteX }

// AbsoluteY returns the last absolute y offset used to composite this node.
func (n *Node) AbsoluteY() int { return n.absoluteY }

// Style returns the node's style for direct mutation.
func (n *Node) Style() *style.Style { return n.style }

// BufferOrigin returns the node-local coordinate that buffer index
// [0][0] maps to, for callers (the renderer's draw loop) that need to
// index directly into the slice returned by GetBuffer.
func (n *Node) BufferOrigin() (x, y int) { return n.bufferOriginX, n.bufferOriginY }

// SetGeometry sets x, y, width, height in one call and marks the node dirty.
func (n *Node) SetGeometry(x, y, w, h geometry.Dimension) {
	n.X, n.Y, n.Width, n.Height = x, y, w, h
	n.markDirty()
}

// SetDefaultCharacter sets the fill glyph used when the buffer is
// cleared, and marks the node dirty.
func (n *Node) SetDefaultCharacter(r rune) {
	n.DefaultCharacter = r
	n.markDirty()
}

// SetDefaultColors sets the fill colours and marks the node dirty.
func (n *Node) SetDefaultColors(bg, fg color.Color) {
	n.DefaultBackground, n.DefaultForeground = bg, fg
	n.markDirty()
}

// SetText replaces the node's text grid from pre-split lines and marks
// the node dirty. Zero-width runes (combining marks, joiners) are
// dropped since a Cell holds exactly one printable glyph per column.
func (n *Node) SetText(lines [][]rune) {
	n.text = dropZeroWidth(lines)
	n.markDirty()
}

// SetTextString replaces the node's text grid by splitting s on "\n"
// (after normalising "\r\n" to "\n").
func (n *Node) SetTextString(s string) {
	n.SetText(splitLines(s))
}

// Text returns the node's text grid.
func (n *Node) Text() [][]rune { return n.text }

// SetPattern replaces the node's tiled pattern grid and marks the node
// dirty. Zero-width runes are dropped, as in SetText.
func (n *Node) SetPattern(lines [][]rune) {
	n.pattern = dropZeroWidth(lines)
	n.markDirty()
}

// Pattern returns the node's pattern grid.
func (n *Node) Pattern() [][]rune { return n.pattern }

// SetAnimation replaces the node's animation frames and marks the node
// dirty. Zero-width runes are dropped from every frame, as in SetText.
func (n *Node) SetAnimation(frames [][][]rune) {
	out := make([][][]rune, len(frames))
	for i, f := range frames {
		out[i] = dropZeroWidth(f)
	}
	n.animation = out
	n.markDirty()
}

// Animation returns the node's animation frames.
func (n *Node) Animation() [][][]rune { return n.animation }

// SetCurrentFrame sets the active animation frame index and marks the
// node dirty.
func (n *Node) SetCurrentFrame(i int) {
	n.currentFrame = i
	n.markDirty()
}

// ShiftCurrentFrame advances the active animation frame index by delta
// (may be negative) and marks the node dirty.
func (n *Node) ShiftCurrentFrame(delta int) {
	n.currentFrame += delta
	n.markDirty()
}

// CurrentFrame returns the active animation frame index.
func (n *Node) CurrentFrame() int { return n.currentFrame }

// SetAnimatedPattern replaces the node's animated pattern frames and
// marks the node dirty. Zero-width runes are dropped from every frame,
// as in SetText.
func (n *Node) SetAnimatedPattern(frames [][][]rune) {
	out := make([][][]rune, len(frames))
	for i, f := range frames {
		out[i] = dropZeroWidth(f)
	}
	n.animatedPattern = out
	n.markDirty()
}

// SetCurrentPatternFrame sets the active animated-pattern frame index
// and marks the node dirty.
func (n *Node) SetCurrentPatternFrame(i int) {
	n.currentPatternFrame = i
	n.markDirty()
}

// Colors returns the node's ordered ColorAreas.
func (n *Node) Colors() []*geometry.ColorArea { return n.colors }

// AddColor appends a ColorArea, assigns its insertion index, and marks
// the node dirty.
func (n *Node) AddColor(a *geometry.ColorArea) {
	a.Index = len(n.colors)
	n.colors = append(n.colors, a)
	n.markDirty()
}

// RemoveColor removes the ColorArea at the given index, re-indexes the
// remaining areas, and marks the node dirty. Panics if index is out of
// range, per spec.md §7's "logical invariants are programming errors".
func (n *Node) RemoveColor(index int) {
	if index < 0 || index >= len(n.colors) {
		panic("node: RemoveColor index out of range")
	}
	n.colors = append(n.colors[:index], n.colors[index+1:]...)
	for i, a := range n.colors {
		a.Index = i
	}
	n.markDirty()
}

// Children returns the node's ordered child list.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends child, links its parent back-reference, and marks
// the node dirty. Panics if child is n itself or one of n's ancestors.
func (n *Node) AddChild(child *Node) {
	for a := n; a != nil; a = a.parent {
		if a == child {
			panic("node: AddChild: child is this node or one of its ancestors")
		}
	}
	child.parent = n
	child.parentLocation = len(n.children)
	child.signal.setParent(n.signal)
	n.children = append(n.children, child)
	n.markDirty()
}

// SetChildren replaces the entire child list, relinking every child's
// parent back-reference and index, and marks the node dirty.
func (n *Node) SetChildren(children []*Node) {
	n.children = children
	for i, child := range n.children {
		child.parent = n
		child.parentLocation = i
		child.signal.setParent(n.signal)
	}
	n.markDirty()
}

// RemoveChild removes child by its recorded parentLocation, re-indexes
// remaining siblings, and marks the node dirty. Panics if child is not
// actually a child of n.
func (n *Node) RemoveChild(child *Node) {
	i := child.parentLocation
	if i < 0 || i >= len(n.children) || n.children[i] != child {
		panic("node: RemoveChild: not a child of this node")
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	for j := i; j < len(n.children); j++ {
		n.children[j].parentLocation = j
	}
	child.parent = nil
	child.signal.setParent(nil)
	n.markDirty()
}

// markDirty sets both dirty flags and bubbles the signal to any ancestor.
func (n *Node) markDirty() {
	n.updateSize = true
	n.updateContent = true
	n.signal.mark()
}

// dropZeroWidth filters combining marks and other zero-width runes out
// of each line, since a Cell holds exactly one glyph per column and has
// no way to stack a combining mark onto its predecessor.
func dropZeroWidth(lines [][]rune) [][]rune {
	out := make([][]rune, len(lines))
	for i, line := range lines {
		var filtered []rune
		for _, r := range line {
			if runewidth.RuneWidth(r) == 0 {
				continue
			}
			filtered = append(filtered, r)
		}
		out[i] = filtered
	}
	return out
}

func splitLines(s string) [][]rune {
	normalized := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			continue
		}
		normalized = append(normalized, s[i])
	}
	var lines [][]rune
	var cur []rune
	for _, r := range string(normalized) {
		if r == '\n' {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, r)
	}
	lines = append(lines, cur)
	return lines
}

// effectiveExternalAlign resolves a child's (or colour area's) external
// alignment, falling back to the parent's internal alignment when absent.
func effectiveExternalAlign(extX *align.X, extY *align.Y, parent *style.Style) (align.X, align.Y) {
	x := parent.InternalAlignX
	if extX != nil {
		x = *extX
	}
	y := parent.InternalAlignY
	if extY != nil {
		y = *extY
	}
	return x, y
}
