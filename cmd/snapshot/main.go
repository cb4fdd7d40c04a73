package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/milk9111/spinview/config"
	"github.com/milk9111/spinview/render"
	"github.com/milk9111/spinview/sequence"
)

type options struct {
	frame    int
	progress float64
	useProg  bool
	width    float64
	height   float64
	scale    float64
	out      string
	timeout  time.Duration
}

// snapshot loads the whole sequence and renders one frame contain-fitted to
// a PNG, the same way the viewer would draw it.
func snapshot(ctx context.Context, cfg config.Config, opts options) (int, error) {
	assets, err := sequence.NewAssetSet(cfg.Frames, sequence.FrameLocator(cfg.BasePath, cfg.Extension))
	if err != nil {
		return 0, err
	}
	assets.SetMaxInFlight(cfg.MaxInFlight)
	if err := assets.Load(ctx, sequence.NewFetcher(cfg.BasePath)); err != nil {
		return 0, err
	}
	if err := assets.Wait(ctx); err != nil {
		return 0, fmt.Errorf("wait for frames: %w", err)
	}

	index := sequence.Wrap(opts.frame, assets.Len())
	if opts.useProg {
		index = sequence.Clamp(opts.progress, assets.Len()) + 1
	}
	f := assets.Frame(index)
	if !f.Ready() {
		return index, fmt.Errorf("frame %d (%s) is %s: %v", index, f.Locator, f.State, f.Err)
	}

	canvas := render.NewRasterCanvas(0, 0, cfg.BackgroundColor())
	var r render.Renderer
	geom := render.Geometry{Width: opts.width, Height: opts.height, Scale: opts.scale}
	if opts.width <= 0 || opts.height <= 0 {
		geom.Width, geom.Height = float64(f.Width), float64(f.Height)
	}
	if !r.Render(f, canvas, geom) {
		return index, fmt.Errorf("nothing drawn for %vx%v@%v", geom.Width, geom.Height, geom.Scale)
	}

	out, err := os.Create(opts.out)
	if err != nil {
		return index, err
	}
	if err := png.Encode(out, canvas.Image()); err != nil {
		out.Close()
		return index, fmt.Errorf("encode %s: %w", opts.out, err)
	}
	return index, out.Close()
}

func main() {
	configPath := flag.String("config", "spinview.yaml", "path to the viewer config")
	basePath := flag.String("base", "", "override the frame base path or URL prefix")
	var opts options
	flag.IntVar(&opts.frame, "frame", 1, "1-based frame index (wrapped into range)")
	flag.Float64Var(&opts.progress, "progress", 0, "scroll progress in [0,1]; overrides -frame when set")
	flag.Float64Var(&opts.width, "width", 0, "surface width in logical pixels (default: frame width)")
	flag.Float64Var(&opts.height, "height", 0, "surface height in logical pixels (default: frame height)")
	flag.Float64Var(&opts.scale, "scale", 1, "device scale factor")
	flag.StringVar(&opts.out, "out", "frame.png", "output PNG path")
	flag.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "give up loading after this long")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "progress" {
			opts.useProg = true
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
		cfg = config.Default()
	}
	if *basePath != "" {
		cfg.BasePath = *basePath
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	start := time.Now()
	index, err := snapshot(ctx, cfg, opts)
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	log.Printf("wrote frame %03d to %s in %s", index, opts.out, time.Since(start).Round(time.Millisecond))
}
