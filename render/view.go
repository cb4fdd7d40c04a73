package render

import "github.com/milk9111/spinview/sequence"

// FrameSource looks up frames by 1-based index. *sequence.AssetSet
// implements it.
type FrameSource interface {
	Frame(index int) *sequence.Frame
}

// View ties request coalescing, the renderer and the surface geometry
// together. The owner calls Sync once per update and Draw once per refresh.
type View struct {
	sched    Scheduler
	renderer Renderer
	geom     Geometry

	// shown is the frame currently on the canvas and drawnAt the geometry it
	// was drawn for.
	shown   *sequence.Frame
	drawnAt Geometry
}

// Request asks for index to be drawn on the next refresh.
func (v *View) Request(index int) {
	v.sched.Request(index)
}

// SetGeometry records the surface size and scale. A change redraws the
// latest requested frame and reports true.
func (v *View) SetGeometry(g Geometry) bool {
	if g == v.geom {
		return false
	}
	v.geom = g
	v.sched.Invalidate()
	return true
}

func (v *View) Geometry() Geometry {
	return v.geom
}

// Sync requests current again once it has loaded if it was asked for
// before its frame was available.
func (v *View) Sync(current int, frames FrameSource) {
	if v.renderer.Last() == current || v.sched.Pending() {
		return
	}
	if frames.Frame(current).Ready() {
		v.sched.Request(current)
	}
}

// Draw renders the pending request, if any, and reports whether the canvas
// changed. When the requested frame cannot be drawn but the geometry moved
// since the last draw, the frame already on screen is redrawn at the new
// geometry.
func (v *View) Draw(frames FrameSource, c Canvas) bool {
	index, ok := v.sched.Tick()
	if !ok {
		return false
	}
	if f := frames.Frame(index); v.renderer.Render(f, c, v.geom) {
		v.shown, v.drawnAt = f, v.geom
		return true
	}
	if v.shown == nil || v.drawnAt == v.geom {
		return false
	}
	if !v.renderer.Render(v.shown, c, v.geom) {
		return false
	}
	v.drawnAt = v.geom
	return true
}

// Reset forgets the drawn frame, e.g. after the frames were replaced. The
// geometry and any pending request are kept.
func (v *View) Reset() {
	v.renderer = Renderer{}
	v.shown = nil
	v.drawnAt = Geometry{}
}

// Last returns the index of the frame on the canvas, or 0.
func (v *View) Last() int {
	return v.renderer.Last()
}

func (v *View) Draws() int {
	return v.renderer.Draws()
}

func (v *View) Pending() bool {
	return v.sched.Pending()
}
