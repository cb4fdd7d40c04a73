package control

import "math"

// DefaultSensitivity is the drag distance, in pixels, per frame step.
const DefaultSensitivity = 5.0

// DragState is the gesture state of a Drag.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag turns horizontal pointer displacement into an unbounded requested
// frame index. Dragging toward negative X advances the sequence, so the
// object follows the pointer as if pulled.
type Drag struct {
	sensitivity float64

	state   DragState
	pointer Pointer
	startX  float64
	initial int
}

// NewDrag returns an idle drag. A non-positive sensitivity uses
// DefaultSensitivity.
func NewDrag(sensitivity float64) *Drag {
	if sensitivity <= 0 || math.IsNaN(sensitivity) {
		sensitivity = DefaultSensitivity
	}
	return &Drag{sensitivity: sensitivity}
}

func (d *Drag) Sensitivity() float64 {
	return d.sensitivity
}

func (d *Drag) State() DragState {
	return d.state
}

// Begin captures the start position and the index shown at that moment.
func (d *Drag) Begin(p Pointer, current int) {
	d.state = Dragging
	d.pointer = p
	d.startX, _ = p.Position()
	d.initial = current
}

// Move returns the requested index for p. It reports false when no drag is
// active or p belongs to a different pointer than the one that began it.
func (d *Drag) Move(p Pointer) (int, bool) {
	if d.state != Dragging || !p.Same(d.pointer) {
		return 0, false
	}
	x, _ := p.Position()
	frameDelta := int(math.Floor((x - d.startX) / d.sensitivity))
	return d.initial - frameDelta, true
}

// End returns the drag to Idle.
func (d *Drag) End() {
	d.state = Idle
}
