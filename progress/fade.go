package progress

import (
	"time"

	"github.com/fogleman/ease"
)

// Fade is the opacity curve of a loading indicator once loading is ready:
// fully visible for Delay, then eased out over Duration.
type Fade struct {
	Delay    time.Duration
	Duration time.Duration
}

// DefaultFade keeps the indicator up for half a second after the last frame
// completes, then fades it.
var DefaultFade = Fade{Delay: 500 * time.Millisecond, Duration: 400 * time.Millisecond}

// Alpha returns the indicator opacity in [0, 1], sinceReady after the
// reporter became ready.
func (f Fade) Alpha(sinceReady time.Duration) float64 {
	t := sinceReady - f.Delay
	switch {
	case t <= 0:
		return 1
	case f.Duration <= 0 || t >= f.Duration:
		return 0
	}
	return 1 - ease.OutQuad(float64(t)/float64(f.Duration))
}

// Done reports whether the indicator is fully hidden.
func (f Fade) Done(sinceReady time.Duration) bool {
	return sinceReady >= f.Delay+max(f.Duration, 0)
}
