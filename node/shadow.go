package node

import (
	"ansirender/color"
	"ansirender/geometry"
	"sync"
)

// updateSignal is the per-node dirty bit used to bubble a mutation up
// to the root, mirroring the original's UpdateValueSignaler: a mutation
// sets the flag once and propagates to the parent only on that first
// transition, so repeated mutations before the next merge cost O(1)
// instead of O(depth) each.
type updateSignal struct {
	mu     sync.Mutex
	update bool
	parent *updateSignal
}

func newUpdateSignal(parent *updateSignal) *updateSignal {
	return &updateSignal{parent: parent}
}

func (s *updateSignal) setParent(p *updateSignal) {
	s.mu.Lock()
	s.parent = p
	s.mu.Unlock()
}

// mark sets the flag and, on the first transition, bubbles to the
// parent signal (which may itself bubble further). Safe to call from
// any goroutine.
func (s *updateSignal) mark() {
	s.mu.Lock()
	if s.update {
		s.mu.Unlock()
		return
	}
	s.update = true
	parent := s.parent
	s.mu.Unlock()
	if parent != nil {
		parent.mark()
	}
}

func (s *updateSignal) takeAndClear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.update
	s.update = false
	return v
}

// Mutator is a handle external code (e.g. a background-driver consumer
// running on another goroutine) uses to queue changes against a node
// without touching its live state directly. The driver merges pending
// mutations into the live tree at the start of each draw cycle via
// Node.MergeShadow. A Mutator is safe for single-writer use; it is not
// safe to share one Mutator across multiple goroutines.
type Mutator struct {
	target *Node

	mu      sync.Mutex
	pending shadowState
}

type shadowState struct {
	hasGeometry bool
	x, y, w, h  geometry.Dimension

	hasDefaultChar bool
	defaultChar    rune

	hasDefaultColors  bool
	defaultBackground color.Color
	defaultForeground color.Color

	hasText bool
	text    [][]rune

	hasPattern bool
	pattern    [][]rune

	hasAnimation bool
	animation    [][][]rune

	hasFrame bool
	frame    int

	hasPatternFrame bool
	patternFrame    int
}

// Shadow returns the Mutator for queuing mutations against n from
// another goroutine; New creates it together with the node, so calling
// Shadow never writes to n. Call (*Node).MergeShadow on the root at the
// start of each draw cycle to apply every descendant's queued mutations.
func (n *Node) Shadow() *Mutator {
	return n.shadow
}

// SetGeometry queues a geometry change.
func (m *Mutator) SetGeometry(x, y, w, h geometry.Dimension) *Mutator {
	m.mu.Lock()
	m.pending.hasGeometry = true
	m.pending.x, m.pending.y, m.pending.w, m.pending.h = x, y, w, h
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetDefaultCharacter queues a default-character change.
func (m *Mutator) SetDefaultCharacter(r rune) *Mutator {
	m.mu.Lock()
	m.pending.hasDefaultChar = true
	m.pending.defaultChar = r
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetDefaultColors queues a default-colour change.
func (m *Mutator) SetDefaultColors(bg, fg color.Color) *Mutator {
	m.mu.Lock()
	m.pending.hasDefaultColors = true
	m.pending.defaultBackground, m.pending.defaultForeground = bg, fg
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetText queues a text-grid replacement. Zero-width runes are dropped,
// as in Node.SetText.
func (m *Mutator) SetText(lines [][]rune) *Mutator {
	m.mu.Lock()
	m.pending.hasText = true
	m.pending.text = dropZeroWidth(lines)
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetPattern queues a pattern-grid replacement. Zero-width runes are
// dropped, as in Node.SetPattern.
func (m *Mutator) SetPattern(lines [][]rune) *Mutator {
	m.mu.Lock()
	m.pending.hasPattern = true
	m.pending.pattern = dropZeroWidth(lines)
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetAnimation queues an animation-frame replacement. Zero-width runes
// are dropped from every frame, as in Node.SetAnimation.
func (m *Mutator) SetAnimation(frames [][][]rune) *Mutator {
	m.mu.Lock()
	m.pending.hasAnimation = true
	out := make([][][]rune, len(frames))
	for i, f := range frames {
		out[i] = dropZeroWidth(f)
	}
	m.pending.animation = out
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetCurrentFrame queues an animation-frame-index change.
func (m *Mutator) SetCurrentFrame(i int) *Mutator {
	m.mu.Lock()
	m.pending.hasFrame = true
	m.pending.frame = i
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// SetCurrentPatternFrame queues an animated-pattern-frame-index change.
func (m *Mutator) SetCurrentPatternFrame(i int) *Mutator {
	m.mu.Lock()
	m.pending.hasPatternFrame = true
	m.pending.patternFrame = i
	m.mu.Unlock()
	m.target.signal.mark()
	return m
}

// takeAndClear atomically removes and returns the pending state.
func (m *Mutator) takeAndClear() shadowState {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.pending
	m.pending = shadowState{}
	return p
}

// MergeShadow merges any pending shadow mutation on n, then recurses
// into every child, returning true if anything in the subtree changed.
// Call this on the root at the start of each draw cycle (the
// background driver in the renderer package does this automatically).
func (n *Node) MergeShadow() bool {
	if !n.signal.takeAndClear() {
		changed := false
		for _, c := range n.children {
			if c.MergeShadow() {
				changed = true
			}
		}
		return changed
	}

	changed := false
	if n.shadow != nil {
		p := n.shadow.takeAndClear()
		if p.hasGeometry {
			n.X, n.Y, n.Width, n.Height = p.x, p.y, p.w, p.h
			changed = true
		}
		if p.hasDefaultChar {
			n.DefaultCharacter = p.defaultChar
			changed = true
		}
		if p.hasDefaultColors {
			n.DefaultBackground, n.DefaultForeground = p.defaultBackground, p.defaultForeground
			changed = true
		}
		if p.hasText {
			n.text = p.text
			changed = true
		}
		if p.hasPattern {
			n.pattern = p.pattern
			changed = true
		}
		if p.hasAnimation {
			n.animation = p.animation
			changed = true
		}
		if p.hasFrame {
			n.currentFrame = p.frame
			changed = true
		}
		if p.hasPatternFrame {
			n.currentPatternFrame = p.patternFrame
			changed = true
		}
	}

	for _, c := range n.children {
		if c.MergeShadow() {
			changed = true
		}
	}

	if changed {
		n.updateSize = true
		n.updateContent = true
	}
	return changed
}
