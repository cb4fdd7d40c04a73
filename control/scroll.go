package control

import "math"

// ScrollTracker integrates scroll deltas over a virtual scroll length and
// reports normalized progress in [0, 1]. It stands in for a page scroll
// position when the viewer runs in its own window.
type ScrollTracker struct {
	length float64
	offset float64
}

// NewScrollTracker returns a tracker for a scroll range of length pixels.
func NewScrollTracker(length float64) *ScrollTracker {
	if length <= 0 || math.IsNaN(length) {
		length = 1
	}
	return &ScrollTracker{length: length}
}

// Scroll moves the position by delta pixels (positive scrolls down) and
// returns the new progress.
func (s *ScrollTracker) Scroll(delta float64) float64 {
	if math.IsNaN(delta) {
		return s.Progress()
	}
	s.offset = max(0, min(s.length, s.offset+delta))
	return s.Progress()
}

// Progress returns the current position normalized to [0, 1].
func (s *ScrollTracker) Progress() float64 {
	return s.offset / s.length
}

// SetProgress moves the position to p, clamped to [0, 1].
func (s *ScrollTracker) SetProgress(p float64) {
	if math.IsNaN(p) {
		return
	}
	s.offset = max(0, min(1, p)) * s.length
}
