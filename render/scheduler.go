package render

// Scheduler coalesces render requests to at most one per display refresh.
// Requests made between ticks overwrite each other; only the latest index is
// drawn.
type Scheduler struct {
	index int
	dirty bool
}

// Request marks index as the frame to draw on the next tick.
func (s *Scheduler) Request(index int) {
	s.index = index
	s.dirty = true
}

// Invalidate asks for the latest requested index to be drawn again, e.g.
// after a resize. It does nothing before the first request.
func (s *Scheduler) Invalidate() {
	if s.index > 0 {
		s.dirty = true
	}
}

// Tick returns the index to draw for this refresh, if any, and clears the
// pending flag.
func (s *Scheduler) Tick() (int, bool) {
	if !s.dirty {
		return 0, false
	}
	s.dirty = false
	return s.index, true
}

// Latest returns the most recently requested index.
func (s *Scheduler) Latest() int {
	return s.index
}

// Pending reports whether a draw is waiting for the next tick.
func (s *Scheduler) Pending() bool {
	return s.dirty
}
