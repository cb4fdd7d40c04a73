package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spinview/config"
)

func main() {
	configPath := flag.String("config", "spinview.yaml", "path to the viewer config (defaults are used if it does not exist)")
	frames := flag.Int("frames", 0, "override the number of frames")
	basePath := flag.String("base", "", "override the frame base path or URL prefix")
	ext := flag.String("ext", "", "override the frame file extension")
	sensitivity := flag.Float64("sensitivity", 0, "override drag pixels per frame step")
	mode := flag.String("mode", "", "override input mode: drag or scroll")
	autoplay := flag.String("autoplay", "", "tengo script that drives scroll progress")
	watchDir := flag.Bool("watch", false, "reload frames when files in the sequence directory change")
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
		log.Printf("[config] %s not found, using defaults", *configPath)
		cfg = config.Default()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			cfg.Frames = *frames
		case "base":
			cfg.BasePath = *basePath
		case "ext":
			cfg.Extension = *ext
		case "sensitivity":
			cfg.Sensitivity = *sensitivity
		case "mode":
			cfg.Mode = config.Mode(*mode)
		case "autoplay":
			cfg.Autoplay = *autoplay
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game, err := NewGame(ctx, cfg, GameOptions{Debug: *debug, Watch: *watchDir})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
