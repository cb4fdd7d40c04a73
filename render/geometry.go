// Package render draws sequence frames onto a resizable surface with
// aspect-preserving contain placement at device pixel density.
package render

import "math"

// Geometry is the displayed size of a surface in logical pixels and the
// device scale factor it is shown at.
type Geometry struct {
	Width  float64
	Height float64
	Scale  float64
}

// Backing returns the backing store size in device pixels.
func (g Geometry) Backing() (int, int) {
	s := g.Scale
	if s <= 0 || math.IsNaN(s) {
		s = 1
	}
	w := int(math.Round(g.Width * s))
	h := int(math.Round(g.Height * s))
	return max(w, 0), max(h, 0)
}

// Empty reports whether the surface has no drawable area.
func (g Geometry) Empty() bool {
	w, h := g.Backing()
	return w == 0 || h == 0
}

// Rect is a placement in device pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contain scales a srcW x srcH image uniformly so it fits entirely inside a
// dstW x dstH box and centers it. The axis with leftover space gets equal
// margins on both sides.
func Contain(srcW, srcH int, dstW, dstH float64) Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}
	}
	sw, sh := float64(srcW), float64(srcH)
	if dstW/dstH > sw/sh {
		// Box is wider than the image: fit by height.
		w := sw * (dstH / sh)
		return Rect{X: (dstW - w) / 2, Y: 0, W: w, H: dstH}
	}
	h := sh * (dstW / sw)
	return Rect{X: 0, Y: (dstH - h) / 2, W: dstW, H: h}
}
