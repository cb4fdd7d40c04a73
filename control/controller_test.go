package control

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mouse(x float64) Pointer {
	return Pointer{Device: Mouse, X: x, Y: 300}
}

func TestDragScenario(t *testing.T) {
	var changes []int
	c := NewController(181, 5, func(i int) { changes = append(changes, i) })

	c.PointerDown(mouse(100))
	if !c.Dragging() {
		t.Fatalf("expected dragging after pointer down")
	}
	if !c.PointerMove(mouse(80)) {
		t.Fatalf("expected index change")
	}
	if c.Current() != 5 {
		t.Fatalf("Current = %d, want 5", c.Current())
	}
	if diff := cmp.Diff([]int{5}, changes); diff != "" {
		t.Fatalf("changes (-want +got):\n%s", diff)
	}
}

func TestDragDirectionAndWrap(t *testing.T) {
	cases := []struct {
		name  string
		moves []float64
		want  int
	}{
		{"left_advances", []float64{95}, 2},
		{"right_rewinds_and_wraps", []float64{105}, 181},
		{"partial_step_right_floors", []float64{101}, 1},
		{"partial_step_left", []float64{99}, 2},
		{"full_turn_left", []float64{100 - 5*181}, 1},
		{"past_full_turn_left", []float64{100 - 5*183}, 3},
		{"sub_step_no_change", []float64{100, 100}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(181, 5, nil)
			c.PointerDown(mouse(100))
			for _, x := range tc.moves {
				c.PointerMove(mouse(x))
			}
			if c.Current() != tc.want {
				t.Fatalf("Current = %d, want %d", c.Current(), tc.want)
			}
		})
	}
}

func TestDragRoundTrip(t *testing.T) {
	for k := -400; k <= 400; k += 37 {
		c := NewController(181, 5, nil)
		c.Jump(5)
		c.PointerDown(mouse(0))
		c.PointerMove(mouse(float64(k) * 5))
		c.PointerMove(mouse(0))
		if c.Current() != 5 {
			t.Fatalf("k=%d: round trip ended at %d", k, c.Current())
		}
	}
}

func TestDragWithoutMoveIsNoop(t *testing.T) {
	changes := 0
	c := NewController(181, 5, func(int) { changes++ })
	c.PointerDown(mouse(50))
	c.PointerUp()
	if changes != 0 || c.Current() != 1 {
		t.Fatalf("changes=%d current=%d", changes, c.Current())
	}
}

func TestDragEndsFromAnyDevice(t *testing.T) {
	c := NewController(181, 5, nil)
	c.PointerDown(Pointer{Device: Touch, ID: 3, X: 200})
	c.PointerMove(Pointer{Device: Touch, ID: 3, X: 190})
	if c.Current() != 3 {
		t.Fatalf("Current = %d, want 3", c.Current())
	}

	// A different pointer does not steer the drag.
	if c.PointerMove(mouse(0)) {
		t.Fatalf("foreign pointer moved the drag")
	}

	c.PointerUp()
	if c.Dragging() {
		t.Fatalf("drag should be idle after release")
	}
	if c.PointerMove(Pointer{Device: Touch, ID: 3, X: 0}) {
		t.Fatalf("moves after release must be ignored")
	}
	if c.Current() != 3 {
		t.Fatalf("Current = %d, want 3", c.Current())
	}
}

func TestDragResumesFromCurrentIndex(t *testing.T) {
	c := NewController(181, 5, nil)
	c.PointerDown(mouse(100))
	c.PointerMove(mouse(50)) // +10
	c.PointerUp()
	c.PointerDown(mouse(400))
	c.PointerMove(mouse(390)) // +2
	if c.Current() != 13 {
		t.Fatalf("Current = %d, want 13", c.Current())
	}
}

func TestSetProgress(t *testing.T) {
	var changes []int
	c := NewController(181, 5, func(i int) { changes = append(changes, i) })

	steps := []struct {
		progress float64
		changed  bool
		want     int
	}{
		{0, false, 1},
		{0.5, true, 91},
		{0.5001, false, 91},
		{1, true, 181},
		{1.2, false, 181},
		{-0.3, true, 1},
	}
	for _, s := range steps {
		if got := c.SetProgress(s.progress); got != s.changed {
			t.Fatalf("SetProgress(%v) changed=%v, want %v", s.progress, got, s.changed)
		}
		if c.Current() != s.want {
			t.Fatalf("SetProgress(%v): Current = %d, want %d", s.progress, c.Current(), s.want)
		}
	}
	if diff := cmp.Diff([]int{91, 181, 1}, changes); diff != "" {
		t.Fatalf("changes (-want +got):\n%s", diff)
	}
	if p, ok := c.Progress(); !ok || p != -0.3 {
		t.Fatalf("Progress = %v,%v", p, ok)
	}
}

func TestStep(t *testing.T) {
	c := NewController(10, 5, nil)
	c.Step(-1)
	if c.Current() != 10 {
		t.Fatalf("Step(-1) from 1 = %d, want 10", c.Current())
	}
	c.Step(3)
	if c.Current() != 3 {
		t.Fatalf("Step(3) from 10 = %d, want 3", c.Current())
	}
	if c.Step(0) {
		t.Fatalf("Step(0) should not change anything")
	}
}

func TestDefaultSensitivity(t *testing.T) {
	for _, s := range []float64{0, -2} {
		if got := NewDrag(s).Sensitivity(); got != DefaultSensitivity {
			t.Errorf("NewDrag(%v).Sensitivity() = %v", s, got)
		}
	}
}

func TestScrollTracker(t *testing.T) {
	s := NewScrollTracker(1000)
	cases := []struct {
		delta float64
		want  float64
	}{
		{250, 0.25},
		{250, 0.5},
		{-600, 0},
		{5000, 1},
		{-100, 0.9},
	}
	for _, c := range cases {
		if got := s.Scroll(c.delta); got != c.want {
			t.Fatalf("Scroll(%v) = %v, want %v", c.delta, got, c.want)
		}
	}
	s.SetProgress(0.3)
	if s.Progress() != 0.3 {
		t.Fatalf("Progress = %v", s.Progress())
	}
}
