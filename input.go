package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/spinview/control"
)

// wheelStep is the scroll distance, in logical pixels, of one wheel notch.
const wheelStep = 60

type gestureKind int

const (
	gestureDown gestureKind = iota
	gestureMove
	gestureUp
)

type gesture struct {
	kind    gestureKind
	pointer control.Pointer
}

// Input holds the polled input for one tick.
type Input struct {
	// Gestures are the pointer events of this tick in device order: mouse
	// first, then touches.
	Gestures []gesture
	// Scroll is the page scroll delta in logical pixels, positive downward.
	Scroll float64
	// Step is a discrete frame step from the keyboard.
	Step int
	// CopyPressed is true on the tick the copy key was pressed.
	CopyPressed bool
	// QuitPressed is true on the tick the quit key was pressed.
	QuitPressed bool

	touchIDs []ebiten.TouchID
	lastX    int
	lastY    int
}

func NewInput() *Input {
	return &Input{}
}

// Update polls mouse, touch, wheel and keyboard. Screen coordinates are in
// device pixels; scale converts them back to logical pixels.
func (i *Input) Update(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	i.Gestures = i.Gestures[:0]

	mx, my := ebiten.CursorPosition()
	mouse := control.Pointer{Device: control.Mouse, X: float64(mx) / scale, Y: float64(my) / scale}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		i.Gestures = append(i.Gestures, gesture{kind: gestureDown, pointer: mouse})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		i.Gestures = append(i.Gestures, gesture{kind: gestureUp, pointer: mouse})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (mx != i.lastX || my != i.lastY):
		i.Gestures = append(i.Gestures, gesture{kind: gestureMove, pointer: mouse})
	}
	i.lastX, i.lastY = mx, my

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		i.Gestures = append(i.Gestures, gesture{kind: gestureDown, pointer: touchPointer(id, scale)})
	}
	i.touchIDs = ebiten.AppendTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		i.Gestures = append(i.Gestures, gesture{kind: gestureMove, pointer: touchPointer(id, scale)})
	}
	i.touchIDs = inpututil.AppendJustReleasedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		i.Gestures = append(i.Gestures, gesture{kind: gestureUp, pointer: control.Pointer{Device: control.Touch, ID: int(id)}})
	}

	// Wheel up is positive in ebiten; page scroll down is positive here.
	_, wy := ebiten.Wheel()
	i.Scroll = -wy * wheelStep
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		i.Scroll += 10 * wheelStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		i.Scroll -= 10 * wheelStep
	}

	i.Step = 0
	if keyRepeated(ebiten.KeyArrowRight) || keyRepeated(ebiten.KeyD) {
		i.Step++
	}
	if keyRepeated(ebiten.KeyArrowLeft) || keyRepeated(ebiten.KeyA) {
		i.Step--
	}

	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Interacted reports whether the user touched any control this tick.
func (i *Input) Interacted() bool {
	return len(i.Gestures) > 0 || i.Scroll != 0 || i.Step != 0
}

func touchPointer(id ebiten.TouchID, scale float64) control.Pointer {
	x, y := ebiten.TouchPosition(id)
	return control.Pointer{Device: control.Touch, ID: int(id), X: float64(x) / scale, Y: float64(y) / scale}
}

// keyRepeated fires on press and then every few ticks while held.
func keyRepeated(key ebiten.Key) bool {
	const (
		delay    = 20
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
