package sequence

import "image"

// LoadState is the lifecycle state of a single frame asset.
type LoadState int

const (
	Pending LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Frame is one still image of the sequence.
type Frame struct {
	// Index is 1-based and never changes.
	Index   int
	Locator string
	State   LoadState

	// Width and Height are the natural pixel size, set once Loaded.
	Width  int
	Height int
	// Image holds the decoded pixels, set once Loaded.
	Image image.Image
	// Err is the load failure, set once Failed.
	Err error
}

// Terminal reports whether the frame has finished loading, either way.
func (f *Frame) Terminal() bool {
	return f != nil && f.State != Pending
}

// Ready reports whether the frame has pixels that can be drawn.
func (f *Frame) Ready() bool {
	return f != nil && f.State == Loaded && f.Image != nil
}
