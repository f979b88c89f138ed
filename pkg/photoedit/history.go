package photoedit

import(
	"fmt"
	"sync"

	"github.com/abworrall/photoedit/pkg/raster"
)

const DefaultHistoryDepth = 10

// History is a bounded, linear undo/redo stack of full image
// snapshots. Memory use is depth x image size; there is no diffing.
// Safe for concurrent use.
type History struct {
	depth int

	mu    sync.Mutex
	undo  []*raster.Buffer // oldest first
	redo  []*raster.Buffer
}

func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth:depth}
}

func (h *History)String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fmt.Sprintf("History[undo:%d, redo:%d, max:%d]", len(h.undo), len(h.redo), h.depth)
}

// pushBounded appends, dropping the oldest entries to stay within depth.
func (h *History)pushBounded(stack []*raster.Buffer, b *raster.Buffer) []*raster.Buffer {
	stack = append(stack, b)
	if over := len(stack) - h.depth; over > 0 {
		n := copy(stack, stack[over:])
		for i:=n; i<len(stack); i++ {
			stack[i] = nil
		}
		stack = stack[:n]
	}
	return stack
}

// Push records a snapshot of b, ahead of a destructive edit. Redo
// history is discarded.
func (h *History)Push(b *raster.Buffer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo = h.pushBounded(h.undo, b.Clone())
	h.redo = nil
}

func pop(stack []*raster.Buffer) ([]*raster.Buffer, *raster.Buffer) {
	n := len(stack)
	top := stack[n-1]
	stack[n-1] = nil
	return stack[:n-1], top
}

// Undo returns the previous state, stashing current for Redo. The
// bool is false (and nothing changes) if there is nothing to undo.
func (h *History)Undo(current *raster.Buffer) (*raster.Buffer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return nil, false
	}
	h.redo = h.pushBounded(h.redo, current.Clone())

	var prev *raster.Buffer
	h.undo, prev = pop(h.undo)
	return prev, true
}

// Redo is the mirror of Undo.
func (h *History)Redo(current *raster.Buffer) (*raster.Buffer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return nil, false
	}
	h.undo = h.pushBounded(h.undo, current.Clone())

	var next *raster.Buffer
	h.redo, next = pop(h.redo)
	return next, true
}

func (h *History)CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

func (h *History)CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

func (h *History)UndoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

func (h *History)RedoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo)
}

// Clear drops every snapshot.
func (h *History)Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = nil
	h.redo = nil
}
