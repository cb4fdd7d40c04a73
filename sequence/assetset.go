package sequence

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrAlreadyLoading is returned by a second Load on the same set.
	ErrAlreadyLoading = errors.New("sequence: asset set already loading")
	// ErrNotLoading is returned by Wait before Load was called.
	ErrNotLoading = errors.New("sequence: asset set not loading")
)

// Completion is the outcome of one frame fetch. Exactly one is produced per
// frame; Err is nil on success.
type Completion struct {
	Index int
	Image image.Image
	Err   error
}

// AssetSet owns the ordered frames of a sequence and their load state.
//
// Fetches run on their own goroutines but never touch frames directly: they
// post Completions that the owner applies with Apply, so every frame field
// has a single writer.
type AssetSet struct {
	frames    []Frame
	completed int

	maxInFlight int
	started     atomic.Bool
	results     chan Completion
	fetched     chan struct{}

	listeners []func(completed, total int)
}

// NewAssetSet creates n Pending frames whose locators come from locate.
func NewAssetSet(n int, locate Locator) (*AssetSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sequence: frame count must be positive, got %d", n)
	}
	if locate == nil {
		return nil, fmt.Errorf("sequence: nil locator")
	}
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Index: i + 1, Locator: locate(i + 1), State: Pending}
	}
	return &AssetSet{
		frames:  frames,
		results: make(chan Completion, n),
		fetched: make(chan struct{}),
	}, nil
}

// SetMaxInFlight bounds concurrent fetches. Zero, the default, issues every
// fetch at once. It has no effect after Load.
func (s *AssetSet) SetMaxInFlight(limit int) {
	if limit < 0 {
		limit = 0
	}
	s.maxInFlight = limit
}

// Len returns the number of frames.
func (s *AssetSet) Len() int {
	return len(s.frames)
}

// Frame returns the frame at a 1-based index, or nil when out of range.
func (s *AssetSet) Frame(index int) *Frame {
	if index < 1 || index > len(s.frames) {
		return nil
	}
	return &s.frames[index-1]
}

// IsReady reports whether the frame at index is Loaded.
func (s *AssetSet) IsReady(index int) bool {
	return s.Frame(index).Ready()
}

// CompletedCount returns the number of frames that are Loaded or Failed.
func (s *AssetSet) CompletedCount() int {
	return s.completed
}

// Done reports whether every frame has completed.
func (s *AssetSet) Done() bool {
	return s.completed == len(s.frames)
}

// Subscribe registers fn to be called after every applied completion.
func (s *AssetSet) Subscribe(fn func(completed, total int)) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Load starts fetching every frame concurrently and returns immediately.
// It may be called once per set.
func (s *AssetSet) Load(ctx context.Context, fetcher Fetcher) error {
	if fetcher == nil {
		return fmt.Errorf("sequence: nil fetcher")
	}
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyLoading
	}

	type job struct {
		index   int
		locator string
	}
	jobs := make([]job, len(s.frames))
	for i := range s.frames {
		jobs[i] = job{index: s.frames[i].Index, locator: s.frames[i].Locator}
	}

	var g errgroup.Group
	if s.maxInFlight > 0 {
		g.SetLimit(s.maxInFlight)
	}
	go func() {
		defer close(s.fetched)
		for _, j := range jobs {
			g.Go(func() error {
				img, err := fetchAndDecode(ctx, fetcher, j.locator)
				s.results <- Completion{Index: j.index, Image: img, Err: err}
				return nil
			})
		}
		_ = g.Wait()
	}()
	return nil
}

// Apply drains pending completions without blocking and returns how many
// frames changed state.
func (s *AssetSet) Apply() int {
	applied := 0
	for {
		select {
		case c := <-s.results:
			if s.ApplyCompletion(c) {
				applied++
			}
		default:
			return applied
		}
	}
}

// ApplyCompletion moves one Pending frame to Loaded or Failed. Completions
// for unknown or already finished frames are ignored.
func (s *AssetSet) ApplyCompletion(c Completion) bool {
	f := s.Frame(c.Index)
	if f == nil || f.Terminal() {
		return false
	}

	switch {
	case c.Err == nil && c.Image != nil:
		b := c.Image.Bounds()
		f.State = Loaded
		f.Image = c.Image
		f.Width = b.Dx()
		f.Height = b.Dy()
	default:
		err := c.Err
		if err == nil {
			err = errors.New("no image data")
		}
		f.State = Failed
		f.Err = err
		log.Printf("[loader] failed to load %s: %v", f.Locator, err)
	}
	s.completed++

	for _, fn := range s.listeners {
		fn(s.completed, len(s.frames))
	}
	return true
}

// Wait blocks until every fetch has returned, then applies the results.
// It is meant for headless callers; the viewer polls Apply each tick.
func (s *AssetSet) Wait(ctx context.Context) error {
	if !s.started.Load() {
		return ErrNotLoading
	}
	select {
	case <-s.fetched:
	case <-ctx.Done():
		s.Apply()
		return ctx.Err()
	}
	s.Apply()
	return nil
}
