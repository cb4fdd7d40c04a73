package control

import (
	"math"

	"github.com/milk9111/spinview/sequence"
)

// Controller owns the displayed frame index of one sequence and updates it
// from drag gestures, scroll progress or discrete steps. Indices are 1-based.
//
// The drag and scroll inputs keep their own bookkeeping; both write the
// shared index through set, which only reports a change (and calls onChange)
// when the index actually moves.
type Controller struct {
	n        int
	current  int
	onChange func(index int)

	drag *Drag

	progress    float64
	hasProgress bool
	scrollIndex int
}

// NewController returns a controller for n frames showing frame 1. onChange
// is called with the new index every time it changes; it may be nil.
func NewController(n int, sensitivity float64, onChange func(index int)) *Controller {
	return &Controller{
		n:        max(n, 1),
		current:  1,
		onChange: onChange,
		drag:     NewDrag(sensitivity),
	}
}

// Current returns the displayed 1-based index.
func (c *Controller) Current() int {
	return c.current
}

// Len returns the number of frames the controller maps onto.
func (c *Controller) Len() int {
	return c.n
}

// Dragging reports whether a drag gesture is active.
func (c *Controller) Dragging() bool {
	return c.drag.State() == Dragging
}

// Progress returns the last scroll progress received and whether any was.
func (c *Controller) Progress() (float64, bool) {
	return c.progress, c.hasProgress
}

// PointerDown starts a drag from p at the current index.
func (c *Controller) PointerDown(p Pointer) {
	c.drag.Begin(p, c.current)
}

// PointerMove updates the index from an active drag using the wrap policy.
// It reports whether the index changed.
func (c *Controller) PointerMove(p Pointer) bool {
	requested, ok := c.drag.Move(p)
	if !ok {
		return false
	}
	return c.set(sequence.Wrap(requested, c.n))
}

// PointerUp ends any active drag, whichever device released and wherever it
// was released.
func (c *Controller) PointerUp() {
	c.drag.End()
}

// SetProgress maps normalized scroll progress to an index using the clamp
// policy. The value is recorded even when nothing is loaded yet. It reports
// whether the index changed.
func (c *Controller) SetProgress(p float64) bool {
	if math.IsNaN(p) {
		return false
	}
	c.progress = p
	c.hasProgress = true

	index := sequence.Clamp(p, c.n) + 1
	if index == c.scrollIndex {
		return false
	}
	c.scrollIndex = index
	return c.set(index)
}

// Step moves the index by delta frames, wrapping around the sequence.
func (c *Controller) Step(delta int) bool {
	if delta == 0 {
		return false
	}
	return c.set(sequence.Wrap(c.current+delta, c.n))
}

// Jump shows a specific 1-based index, wrapped into range.
func (c *Controller) Jump(index int) bool {
	return c.set(sequence.Wrap(index, c.n))
}

func (c *Controller) set(index int) bool {
	if index == c.current {
		return false
	}
	c.current = index
	if c.onChange != nil {
		c.onChange(index)
	}
	return true
}
