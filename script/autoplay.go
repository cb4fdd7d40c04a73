// Package script runs tengo scripts that produce scroll progress, used to
// drive the sequence without user input.
package script

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Autoplay evaluates a script once per tick. The script sees the globals
// t (seconds since start, float) and n (frame count, int) and must assign a
// number to the global progress.
//
//	math := import("math")
//	progress = (1 - math.cos(t * 0.5)) / 2
type Autoplay struct {
	path     string
	compiled *tengo.Compiled
}

// LoadAutoplay compiles the script at path for a sequence of n frames.
func LoadAutoplay(path string, n int) (*Autoplay, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	a, err := CompileAutoplay(src, n)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	a.path = path
	return a, nil
}

// CompileAutoplay compiles src for a sequence of n frames.
func CompileAutoplay(src []byte, n int) (*Autoplay, error) {
	s := tengo.NewScript(src)
	_ = s.Add("t", 0.0)
	_ = s.Add("n", n)
	_ = s.Add("progress", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, err
	}
	return &Autoplay{compiled: compiled}, nil
}

// Path returns the file the script was loaded from, if any.
func (a *Autoplay) Path() string {
	return a.path
}

// Progress runs the script for time t (seconds) and returns the progress it
// assigned.
func (a *Autoplay) Progress(ctx context.Context, t float64) (float64, error) {
	if a == nil || a.compiled == nil {
		return 0, fmt.Errorf("script: nil autoplay")
	}
	if err := a.compiled.Set("t", t); err != nil {
		return 0, err
	}
	if err := a.compiled.RunContext(ctx); err != nil {
		return 0, err
	}
	v := a.compiled.Get("progress")
	switch v.ValueType() {
	case "float", "int":
	default:
		return 0, fmt.Errorf("script: progress must be a number, got %s", v.ValueType())
	}
	p := v.Float()
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("script: progress is %v", p)
	}
	return p, nil
}
