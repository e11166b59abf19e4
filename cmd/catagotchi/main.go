package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/catagotchi/audio"
	"github.com/lixenwraith/catagotchi/config"
	"github.com/lixenwraith/catagotchi/game"
	"github.com/lixenwraith/catagotchi/render"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to TOML config (missing file uses defaults)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/catagotchi.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	imageFlag  = flag.String("image", "", "Background image, overrides config")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("config: loaded from %s", cfg.Source)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCATAGOTCHI CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	opts := []game.Option{game.WithConfig(cfg)}
	if sm := startAudio(cfg); sm != nil {
		defer sm.Cleanup()
		opts = append(opts, game.WithSounds(sm, *muteFlag))
	} else {
		opts = append(opts, game.WithSounds(nil, *muteFlag))
	}

	g, err := game.New(render.NewTcellSurface(screen), opts...)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := g.Run(ctx, pollEvents(screen)); err != nil && ctx.Err() == nil {
		log.Printf("game: stopped with error: %v", err)
	}
}

// loadConfig layers file, environment and flags, then validates
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if *imageFlag != "" {
		cfg.Render.Image = *imageFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startAudio returns nil when audio is disabled or the speaker cannot open
func startAudio(cfg *config.Config) *audio.SoundManager {
	if !cfg.Audio.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio: initialization failed: %v (continuing without audio)", err)
		return nil
	}
	sm.SetMuted(*muteFlag)
	return sm
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}
