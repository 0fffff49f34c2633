package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/maxcabrajac/game-of-life/audio"
	"github.com/maxcabrajac/game-of-life/config"
	"github.com/maxcabrajac/game-of-life/constant"
	"github.com/maxcabrajac/game-of-life/render"
	"github.com/maxcabrajac/game-of-life/terminal"
)

var (
	configFlag   = flag.String("config", "", "path to a TOML config file")
	widthFlag    = flag.Int("width", 0, "grid width in cells (0 = fill the terminal)")
	heightFlag   = flag.Int("height", 0, "grid height in cells (0 = fill the terminal)")
	aliveFlag    = flag.Float64("alive", constant.DefaultAliveProbability, "initial alive probability for random seeding")
	intervalFlag = flag.Duration("interval", constant.DefaultTickInterval, "delay between generations")
	modeFlag     = flag.String("mode", "block", "render mode: block or braille")
	patternFlag  = flag.String("pattern", "random", "starting pattern: random, blinker, block, glider, gosper")
	colorFlag    = flag.String("color", "", "live-cell color (name or #rrggbb)")
	seedFlag     = flag.Int64("seed", 0, "random seed (0 = time-derived)")
	soundFlag    = flag.Bool("sound", false, "play a pulse per generation")
	debugFlag    = flag.Bool("debug", false, "log to logs/game-of-life.log")
)

// crash restores the terminal before anything is printed, then reports
// the panic to stderr. Shared by main and the event-poll goroutine.
// Uses \r\n: the terminal may still be in raw mode.
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGAME-OF-LIFE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// fail reports a startup error after the terminal has been claimed.
func fail(backend terminal.Backend, err error) {
	backend.Fini()
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	flag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Mode was validated with the rest of the config.
	mode, _ := render.ParseMode(cfg.Mode)

	backend, err := terminal.NewScreen(terminal.Options{Foreground: cfg.Color})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer backend.Fini()

	var player pulsePlayer
	if cfg.Sound {
		pulse := audio.NewPulse()
		if err := pulse.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without sound)", err)
		} else {
			defer pulse.Cleanup()
			player = pulse
		}
	}

	game, err := NewGame(cfg, backend, render.New(mode, backend), player)
	if err != nil {
		fail(backend, err)
	}
	if err := game.Run(); err != nil {
		fail(backend, err)
	}
}

// resolveConfig layers flag values over the optional config file over the
// defaults. Only flags the user actually passed override the file.
func resolveConfig() (config.Config, error) {
	cfg := config.Default()

	if *configFlag != "" {
		if err := cfg.LoadFile(*configFlag); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "alive":
			cfg.AliveProb = *aliveFlag
		case "interval":
			cfg.Interval = *intervalFlag
		case "mode":
			cfg.Mode = *modeFlag
		case "pattern":
			cfg.Pattern = *patternFlag
		case "color":
			cfg.Color = *colorFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
