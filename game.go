package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/spinview/config"
	"github.com/milk9111/spinview/control"
	"github.com/milk9111/spinview/progress"
	"github.com/milk9111/spinview/render"
	"github.com/milk9111/spinview/script"
	"github.com/milk9111/spinview/sequence"
	"github.com/milk9111/spinview/watch"
)

type Game struct {
	ctx     context.Context
	cfg     config.Config
	fetcher sequence.Fetcher
	debug   bool

	assets   *sequence.AssetSet
	progress *progress.Reporter

	ctrl     *control.Controller
	scroll   *control.ScrollTracker
	input    *Input
	view     render.View
	canvas   *gpuCanvas

	overlay   *LoadingOverlay
	clipboard *clipboardWriter

	autoplay      *script.Autoplay
	autoplayStart time.Time

	watcher *watch.Watcher
	settler watch.Settler
}

type GameOptions struct {
	Debug bool
	// Watch reloads the sequence when files in its directory change.
	Watch bool
}

func NewGame(ctx context.Context, cfg config.Config, opts GameOptions) (*Game, error) {
	g := &Game{
		ctx:       ctx,
		cfg:       cfg,
		fetcher:   sequence.NewFetcher(cfg.BasePath),
		debug:     opts.Debug,
		scroll:    control.NewScrollTracker(cfg.ScrollLength),
		input:     NewInput(),
		canvas:    newGPUCanvas(cfg.BackgroundColor()),
		overlay:   NewLoadingOverlay(progress.DefaultFade),
		clipboard: newClipboardWriter(),
		settler:   watch.Settler{Quiet: 250 * time.Millisecond},
	}
	g.ctrl = control.NewController(cfg.Frames, cfg.Sensitivity, g.view.Request)

	if cfg.Autoplay != "" {
		a, err := script.LoadAutoplay(cfg.Autoplay, cfg.Frames)
		if err != nil {
			return nil, err
		}
		g.autoplay = a
		g.autoplayStart = time.Now()
	}

	if err := g.load(); err != nil {
		return nil, err
	}
	g.view.Request(g.ctrl.Current())

	if opts.Watch {
		g.startWatch()
	}
	return g, nil
}

// load builds a fresh asset set and starts fetching every frame.
func (g *Game) load() error {
	assets, err := sequence.NewAssetSet(g.cfg.Frames, sequence.FrameLocator(g.cfg.BasePath, g.cfg.Extension))
	if err != nil {
		return err
	}
	assets.SetMaxInFlight(g.cfg.MaxInFlight)

	reporter := progress.NewReporter(assets.Len())
	assets.Subscribe(func(completed, _ int) {
		reporter.Observe(completed)
	})
	reporter.Subscribe(func(s progress.Status) {
		if s.Ready {
			log.Printf("[loader] %d frames complete", assets.Len())
		}
	})

	if err := assets.Load(g.ctx, g.fetcher); err != nil {
		return fmt.Errorf("load %s: %w", g.cfg.BasePath, err)
	}
	g.assets = assets
	g.progress = reporter
	return nil
}

func (g *Game) startWatch() {
	if _, ok := g.fetcher.(*sequence.HTTPFetcher); ok {
		log.Printf("[watch] %s is remote, not watching", g.cfg.BasePath)
		return
	}
	dir := filepath.Dir(g.cfg.BasePath)
	w, err := watch.New([]string{g.cfg.Extension}, dir)
	if err != nil {
		log.Printf("[watch] failed to watch %s: %v", dir, err)
		return
	}
	g.watcher = w
	log.Printf("[watch] watching %s", dir)
}

// reload swaps in a new asset set, keeping the displayed index.
func (g *Game) reload() {
	if err := g.load(); err != nil {
		log.Printf("[watch] reload failed: %v", err)
		return
	}
	g.canvas.releaseTextures()
	g.view.Reset()
	g.overlay.Reset()
	g.view.Request(g.ctrl.Current())
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	now := time.Now()

	g.assets.Apply()

	g.input.Update(g.view.Geometry().Scale)
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	g.handleInput()
	g.runAutoplay(now)

	g.view.Sync(g.ctrl.Current(), g.assets)

	g.pollWatch(now)
	g.overlay.Update(g.progress.Status(), now)
	return nil
}

func (g *Game) handleInput() {
	in := g.input
	if in.Interacted() && g.autoplay != nil {
		log.Printf("[input] autoplay stopped by user input")
		g.autoplay = nil
	}

	switch g.cfg.Mode {
	case config.ModeScroll:
		if in.Scroll != 0 {
			g.ctrl.SetProgress(g.scroll.Scroll(in.Scroll))
		}
	default:
		for _, ev := range in.Gestures {
			switch ev.kind {
			case gestureDown:
				if !g.ctrl.Dragging() {
					g.ctrl.PointerDown(ev.pointer)
				}
			case gestureMove:
				g.ctrl.PointerMove(ev.pointer)
			case gestureUp:
				g.ctrl.PointerUp()
			}
		}
	}
	if in.Step != 0 {
		g.ctrl.Step(in.Step)
	}

	if in.CopyPressed {
		if f := g.assets.Frame(g.ctrl.Current()); f != nil && g.clipboard.Copy(f.Locator) {
			log.Printf("[input] copied %s", f.Locator)
		}
	}
}

func (g *Game) runAutoplay(now time.Time) {
	if g.autoplay == nil {
		return
	}
	p, err := g.autoplay.Progress(g.ctx, now.Sub(g.autoplayStart).Seconds())
	if err != nil {
		log.Printf("[autoplay] %s: %v", g.autoplay.Path(), err)
		g.autoplay = nil
		return
	}
	g.scroll.SetProgress(p)
	g.ctrl.SetProgress(p)
}

func (g *Game) pollWatch(now time.Time) {
	if g.watcher == nil {
		return
	}
drain:
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[watch] %s changed", filepath.Base(name))
			g.settler.Notify(now)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[watch] %v", err)
		default:
			break drain
		}
	}
	if g.settler.Ready(now) {
		g.reload()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(g.assets, g.canvas)

	screen.Fill(g.cfg.BackgroundColor())
	g.canvas.present(screen)
	g.overlay.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frame: %03d/%d  Loaded: %d%%  Draws: %d  FPS: %.2f",
			g.ctrl.Current(), g.assets.Len(), g.progress.Percent(), g.view.Draws(), ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	geom := render.Geometry{
		Width:  outsideWidth,
		Height: outsideHeight,
		Scale:  ebiten.Monitor().DeviceScaleFactor(),
	}
	g.view.SetGeometry(geom)
	w, h := geom.Backing()
	return float64(w), float64(h)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
