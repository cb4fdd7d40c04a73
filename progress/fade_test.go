package progress

import (
	"math"
	"testing"
	"time"
)

func TestFadeAlpha(t *testing.T) {
	f := Fade{Delay: 500 * time.Millisecond, Duration: 400 * time.Millisecond}
	cases := []struct {
		since time.Duration
		want  float64
	}{
		{0, 1},
		{500 * time.Millisecond, 1},
		{700 * time.Millisecond, 0.25},
		{900 * time.Millisecond, 0},
		{5 * time.Second, 0},
	}
	for _, c := range cases {
		if got := f.Alpha(c.since); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Alpha(%v) = %v, want %v", c.since, got, c.want)
		}
	}

	prev := 1.0
	for d := time.Duration(0); d <= time.Second; d += 10 * time.Millisecond {
		a := f.Alpha(d)
		if a > prev {
			t.Fatalf("alpha increased at %v: %v > %v", d, a, prev)
		}
		prev = a
	}

	if f.Done(899*time.Millisecond) || !f.Done(900*time.Millisecond) {
		t.Errorf("Done boundary wrong")
	}
}

func TestFadeWithoutDuration(t *testing.T) {
	f := Fade{Delay: 100 * time.Millisecond}
	if f.Alpha(50*time.Millisecond) != 1 || f.Alpha(150*time.Millisecond) != 0 {
		t.Fatalf("zero-duration fade should cut off after the delay")
	}
}
