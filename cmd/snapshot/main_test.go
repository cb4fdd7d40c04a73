package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/spinview/config"
	"github.com/milk9111/spinview/sequence"
)

func writeSequence(t *testing.T, dir string, n int, broken int) {
	t.Helper()
	locate := sequence.FrameLocator(filepath.Join(dir, "frame-"), "png")
	for i := 1; i <= n; i++ {
		path := locate(i)
		if i == broken {
			if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
				t.Fatalf("write %s: %v", path, err)
			}
			continue
		}
		img := image.NewRGBA(image.Rect(0, 0, 20, 10))
		for y := 0; y < 10; y++ {
			for x := 0; x < 20; x++ {
				img.Set(x, y, color.RGBA{R: uint8(i * 10), A: 255})
			}
		}
		f, err := os.Create(path)
		if err != nil {
			t.Fatalf("create %s: %v", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode %s: %v", path, err)
		}
		f.Close()
	}
}

func testConfig(dir string, n int) config.Config {
	cfg := config.Default()
	cfg.Frames = n
	cfg.BasePath = filepath.Join(dir, "frame-")
	cfg.Extension = "png"
	cfg.Background = "#000000"
	return cfg
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, 12, 0)
	out := filepath.Join(dir, "out.png")

	cases := []struct {
		name string
		opts options
		want int
	}{
		{"explicit_frame", options{frame: 3, width: 40, height: 40, scale: 2}, 3},
		{"wrapped_frame", options{frame: 13, width: 40, height: 40, scale: 1}, 1},
		{"progress", options{progress: 0.5, useProg: true, width: 40, height: 40, scale: 1}, 7},
		{"natural_size", options{frame: 12, scale: 1}, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.opts.out = out
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			index, err := snapshot(ctx, testConfig(dir, 12), c.opts)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if index != c.want {
				t.Fatalf("index = %d, want %d", index, c.want)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatalf("open output: %v", err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			w, h := 20, 10
			if c.opts.width > 0 {
				w = int(c.opts.width * c.opts.scale)
				h = int(c.opts.height * c.opts.scale)
			}
			if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
				t.Fatalf("output %v, want %dx%d", b, w, h)
			}
		})
	}
}

func TestSnapshotFailedFrame(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, 5, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := snapshot(ctx, testConfig(dir, 5), options{frame: 2, scale: 1, out: filepath.Join(dir, "out.png")})
	if err == nil {
		t.Fatalf("expected an error for a frame that failed to load")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.png")); statErr == nil {
		t.Fatalf("no output should be written for a failed frame")
	}
}
