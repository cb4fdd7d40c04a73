package render

import "github.com/milk9111/spinview/sequence"

// Canvas is a drawing surface with a resizable backing store.
type Canvas interface {
	// Resize sets the backing store size in device pixels.
	Resize(w, h int)
	Size() (w, h int)
	// Clear erases every pixel of the backing store.
	Clear()
	// DrawFrame draws a loaded frame scaled into dst.
	DrawFrame(f *sequence.Frame, dst Rect)
}

// Renderer draws frames onto a Canvas. It is not safe for concurrent use;
// the owner calls Render only from its draw callback.
type Renderer struct {
	last  int
	draws int
}

// Render sizes the canvas to geom, clears it and draws f contain-fitted.
// Frames that are not Loaded, a nil canvas and an empty geometry are all
// no-ops that leave the canvas untouched. It reports whether it drew.
func (r *Renderer) Render(f *sequence.Frame, c Canvas, geom Geometry) bool {
	if c == nil || !f.Ready() || geom.Empty() {
		return false
	}

	w, h := geom.Backing()
	dst := Contain(f.Width, f.Height, float64(w), float64(h))
	if dst.Empty() {
		return false
	}
	c.Resize(w, h)
	c.Clear()
	c.DrawFrame(f, dst)

	r.last = f.Index
	r.draws++
	return true
}

// Last returns the index of the last frame drawn, or 0.
func (r *Renderer) Last() int {
	return r.last
}

// Draws returns the number of completed renders.
func (r *Renderer) Draws() int {
	return r.draws
}
