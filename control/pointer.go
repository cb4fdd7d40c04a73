// Package control maps pointer gestures and scroll progress onto the frame
// index of a sequence.
package control

// Device identifies where a pointer event came from.
type Device int

const (
	Mouse Device = iota
	Touch
)

func (d Device) String() string {
	switch d {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// Pointer is a single pointer sample in logical pixels. Mouse and touch input
// are both converted to a Pointer where the host input is polled, so gesture
// code only ever reads Position.
type Pointer struct {
	Device Device
	// ID distinguishes concurrent touches; it is 0 for the mouse.
	ID int
	X  float64
	Y  float64
}

// Position returns the pointer location.
func (p Pointer) Position() (x, y float64) {
	return p.X, p.Y
}

// Same reports whether p and o come from the same physical pointer.
func (p Pointer) Same(o Pointer) bool {
	return p.Device == o.Device && p.ID == o.ID
}
