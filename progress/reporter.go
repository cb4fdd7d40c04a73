// Package progress turns frame load completions into a percentage and a
// one-way ready flag for loading indicators.
package progress

import "math"

// Status is a snapshot of the reporter.
type Status struct {
	Percent int
	Ready   bool
}

// Reporter aggregates load completions for a sequence of fixed length.
type Reporter struct {
	total     int
	completed int
	percent   int
	ready     bool

	subscribers []func(Status)
}

// NewReporter creates a reporter for total frames.
func NewReporter(total int) *Reporter {
	r := &Reporter{total: total}
	if total <= 0 {
		r.percent = 100
		r.ready = true
	}
	return r
}

// Observe records the current completed count. Counts lower than one
// already seen are ignored so percent never moves backwards.
func (r *Reporter) Observe(completed int) {
	if r.total <= 0 || completed <= r.completed {
		return
	}
	r.completed = min(completed, r.total)

	prev := r.Status()
	pct := int(math.Round(100 * float64(r.completed) / float64(r.total)))
	pct = max(0, min(100, pct))
	if pct > r.percent {
		r.percent = pct
	}
	if r.completed == r.total {
		r.ready = true
	}
	if cur := r.Status(); cur != prev {
		r.notify(cur)
	}
}

// Percent returns the rounded load percentage in [0, 100].
func (r *Reporter) Percent() int {
	return r.percent
}

// Ready reports whether every frame has completed. Once true it stays true.
func (r *Reporter) Ready() bool {
	return r.ready
}

// Completed returns the last observed completed count.
func (r *Reporter) Completed() int {
	return r.completed
}

func (r *Reporter) Status() Status {
	return Status{Percent: r.percent, Ready: r.ready}
}

// Subscribe registers fn to be called whenever percent or ready changes.
func (r *Reporter) Subscribe(fn func(Status)) {
	if fn == nil {
		return
	}
	r.subscribers = append(r.subscribers, fn)
}

func (r *Reporter) notify(s Status) {
	for _, fn := range r.subscribers {
		fn(s)
	}
}
