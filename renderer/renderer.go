// Package renderer drives a scene graph rooted at a single Node
// through layout and compositing each frame, diffs the result against
// the previous frame, and writes only the changed cells to a console.
package renderer

import (
	"sync"
	"time"

	"ansirender/align"
	"ansirender/cell"
	"ansirender/console"
	"ansirender/geometry"
	"ansirender/internal/applog"
	"ansirender/node"
	"ansirender/term"
)

// Renderer owns the previous-frame buffer, a console writer, and the
// root node it draws each cycle.
type Renderer struct {
	mu sync.Mutex

	root    *node.Node
	size    term.SizeProvider
	out     writer
	console *console.Console

	width, height   int
	previous        [][]cell.Cell
	padding         int
	drawing         bool
	DisableOutput   bool

	stop chan struct{}
	wg   sync.WaitGroup

	stats FrameStats
}

type writer interface {
	Write(p []byte) (n int, err error)
}

// New constructs a Renderer with the spec's default padding of 5,
// writing to out and querying size from size.
func New(out writer, size term.SizeProvider) *Renderer {
	return &Renderer{
		out:     out,
		size:    size,
		console: console.New(),
		padding: 5,
	}
}

// SetRoot replaces the node tree this renderer draws.
func (r *Renderer) SetRoot(n *node.Node) {
	r.mu.Lock()
	r.root = n
	r.mu.Unlock()
}

// SetPadding overrides the default padding used for viewport-move
// tolerance and buffer sizing.
func (r *Renderer) SetPadding(p int) {
	r.mu.Lock()
	r.padding = p
	r.mu.Unlock()
}

// Draw performs one frame: query terminal size, resize the previous
// buffer on change, lay out and composite the root, diff against the
// previous frame, and flush changed cells. A concurrent call while a
// draw is already in progress is a silent no-op (reentrancy guard). A
// failed size query is treated as a 0x0 terminal; the only error
// returned is a failed write to the output.
func (r *Renderer) Draw(force bool) error {
	r.mu.Lock()
	if r.drawing {
		r.mu.Unlock()
		return nil
	}
	r.drawing = true
	defer func() {
		r.mu.Lock()
		r.drawing = false
		r.mu.Unlock()
	}()
	root := r.root
	padding := r.padding
	r.mu.Unlock()

	if root == nil {
		return nil
	}

	start := time.Now()
	defer func() {
		d := time.Since(start)
		r.mu.Lock()
		r.stats.record(d)
		r.mu.Unlock()
	}()

	cols, rows, err := r.size.Size()
	if err != nil {
		cols, rows = 0, 0
	}

	if cols != r.width || rows != r.height {
		r.width, r.height = cols, rows
		r.previous = make([][]cell.Cell, rows)
		for i := range r.previous {
			row := make([]cell.Cell, cols)
			for j := range row {
				row[j] = cell.Empty
			}
			r.previous[i] = row
		}
		force = true
	}

	root.ProcessGeometry(r.width, r.height, r.width, r.height, padding)

	objectX := geometry.Resolve(root.X, r.width, r.height, r.width, r.height, geometry.Horizontal)
	objectY := geometry.Resolve(root.Y, r.width, r.height, r.width, r.height, geometry.Vertical)
	objectW := root.CalculatedWidth()
	objectH := root.CalculatedHeight()

	style := root.Style()
	offX, offY := 0, 0
	if style.ExternalAlignX != nil {
		switch *style.ExternalAlignX {
		case align.XCenter:
			offX = r.width/2 - objectW/2
		case align.XRight:
			offX = r.width - objectW
		}
	}
	if style.ExternalAlignY != nil {
		switch *style.ExternalAlignY {
		case align.YCenter:
			offY = r.height/2 - objectH/2
		case align.YBottom:
			offY = r.height - objectH
		}
	}

	buf := root.GetBuffer(offX+objectX, offY+objectY, padding)
	originX, originY := root.BufferOrigin()

	startX := clamp(offX+objectX, 0, r.width)
	endX := clamp(offX+objectX+objectW, 0, r.width)
	startY := clamp(offY+objectY, 0, r.height)
	endY := clamp(offY+objectY+objectH, 0, r.height)

	lastI, lastJ := -1, -1
	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			bi := y - (offY + objectY) - originY
			bj := x - (offX + objectX) - originX
			if bi < 0 || bi >= len(buf) || bj < 0 || bj >= len(buf[bi]) {
				continue
			}
			current := buf[bi][bj]
			if force || r.previous[y][x] != current {
				if x != lastJ+1 || y != lastI {
					r.console.SetCursor(x, y)
				}
				r.console.Print(current)
				r.previous[y][x] = current
				lastI, lastJ = y, x
			}
		}
	}

	r.console.SetCursor(endX, endY)

	r.mu.Lock()
	disable := r.DisableOutput
	r.mu.Unlock()
	if disable {
		r.console.Clear()
		return nil
	}
	return r.console.Flush(r.out)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts a background goroutine that merges shadow mutations and
// draws at targetFrameTime intervals until Stop is called. A failed
// frame write is fatal: it is logged and the process exits.
func (r *Renderer) Run(targetFrameTime time.Duration) {
	r.mu.Lock()
	if r.stop != nil {
		r.mu.Unlock()
		return
	}
	r.stop = make(chan struct{})
	stop := r.stop
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(targetFrameTime)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.mu.Lock()
				root := r.root
				r.mu.Unlock()
				if root != nil {
					root.MergeShadow()
				}
				if err := r.Draw(false); err != nil {
					applog.GetLogger().Fatal("renderer: %v", err)
				}
			}
		}
	}()
}

// Stop ends the background draw loop started by Run and waits for it
// to exit, returning the receiver for chaining.
func (r *Renderer) Stop() *Renderer {
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()
	if stop != nil {
		close(stop)
		r.wg.Wait()
	}
	return r
}

// Stats returns a snapshot of recorded frame durations.
func (r *Renderer) Stats() FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
