package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/maxcabrajac/game-of-life/config"
	"github.com/maxcabrajac/game-of-life/constant"
	"github.com/maxcabrajac/game-of-life/life"
	"github.com/maxcabrajac/game-of-life/render"
	"github.com/maxcabrajac/game-of-life/terminal"
)

// Game owns the run loop: the engine advances on a ticker, input arrives
// on the event channel, and every change is drawn through the renderer.
// The simulation itself stays single-threaded; the poll goroutine only
// converts blocking PollEvent calls into channel sends.
type Game struct {
	cfg      config.Config
	backend  terminal.Backend
	renderer render.Renderer
	pulse    pulsePlayer
	engine   *life.Engine
	rng      *rand.Rand

	// screenSized grids follow the terminal on resize; explicit ones
	// keep their dimensions for the whole run.
	screenSized bool
	width       int
	height      int
	paused      bool

	events chan terminal.Event
}

// pulsePlayer is the slice of the audio manager the loop needs; the
// interface keeps the loop testable without a speaker.
type pulsePlayer interface {
	Play(density float64)
}

// NewGame resolves the grid dimensions, seeds the first generation, and
// returns a game ready to Run. pulse may be nil for a silent run.
func NewGame(cfg config.Config, backend terminal.Backend, renderer render.Renderer, pulse pulsePlayer) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:         cfg,
		backend:     backend,
		renderer:    renderer,
		pulse:       pulse,
		rng:         rand.New(rand.NewSource(seed)),
		screenSized: cfg.Width == 0,
		events:      make(chan terminal.Event, constant.EventBufferSize),
	}

	w, h := cfg.Width, cfg.Height
	if g.screenSized {
		w, h = renderer.GridSize(backend.Size())
	} else if mode, _ := render.ParseMode(cfg.Mode); mode == render.ModeBraille {
		// Screen-derived dimensions are aligned by construction; explicit
		// ones are user input and must be checked before any grid exists.
		if w%2 != 0 || h%4 != 0 {
			return nil, fmt.Errorf("braille mode needs width%%2 == 0 and height%%4 == 0, got %dx%d", w, h)
		}
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("terminal too small for a %s-mode grid", cfg.Mode)
	}

	if err := g.reseed(w, h, cfg.Pattern); err != nil {
		return nil, err
	}
	log.Printf("game: %dx%d grid, mode=%s pattern=%s seed=%d", w, h, cfg.Mode, cfg.Pattern, seed)
	return g, nil
}

// reseed replaces the engine with a freshly seeded w×h grid.
func (g *Game) reseed(w, h int, pattern string) error {
	grid, err := life.SeedGrid(w, h, pattern, g.rng, g.cfg.AliveProb)
	if err != nil {
		return err
	}
	g.engine = life.NewEngine(grid)
	g.width, g.height = w, h
	return nil
}

// Run drives the loop until a quit key, the backend closing, or a render
// error. It owns the poll goroutine for the duration of the call.
func (g *Game) Run() error {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		for {
			ev := g.backend.PollEvent()
			g.events <- ev
			if ev.Type == terminal.EventClosed {
				return
			}
		}
	}()

	if err := g.render(); err != nil {
		return err
	}

	ticker := time.NewTicker(g.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-g.events:
			quit, err := g.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			if g.paused {
				continue
			}
			if err := g.step(); err != nil {
				return err
			}
		}
	}
}

// step advances one generation, draws it, and pulses the audio.
func (g *Game) step() error {
	g.engine.Tick()
	if err := g.render(); err != nil {
		return err
	}
	if g.pulse != nil {
		pop := g.engine.Current().Population()
		g.pulse.Play(float64(pop) / float64(g.width*g.height))
	}
	return nil
}

func (g *Game) render() error {
	return g.renderer.Render(g.engine.Current())
}

// handleEvent processes one input or lifecycle event. Keys: q, Escape,
// and Ctrl-C quit; space pauses; n steps once while paused; r reseeds a
// fresh random field at the current dimensions.
func (g *Game) handleEvent(ev terminal.Event) (quit bool, err error) {
	switch ev.Type {
	case terminal.EventClosed:
		return true, nil
	case terminal.EventError:
		return true, fmt.Errorf("terminal backend reported an error")
	case terminal.EventResize:
		return false, g.handleResize(ev.Width, ev.Height)
	case terminal.EventKey:
		switch ev.Key {
		case terminal.KeyEscape, terminal.KeyCtrlC:
			return true, nil
		case terminal.KeyRune:
			return g.handleRune(ev.Rune)
		}
	}
	return false, nil
}

func (g *Game) handleRune(r rune) (quit bool, err error) {
	switch r {
	case 'q':
		return true, nil
	case ' ':
		g.paused = !g.paused
		log.Printf("game: paused=%v at generation %d", g.paused, g.engine.Generation())
	case 'n':
		if g.paused {
			return false, g.step()
		}
	case 'r':
		if err := g.reseed(g.width, g.height, life.RandomPattern); err != nil {
			return false, err
		}
		log.Printf("game: reseeded %dx%d", g.width, g.height)
		return false, g.render()
	}
	return false, nil
}

// handleResize follows the terminal when the grid is screen-sized; a
// smaller terminal around an explicit grid just clips.
func (g *Game) handleResize(cols, rows int) error {
	if g.screenSized {
		w, h := g.renderer.GridSize(cols, rows)
		if w > 0 && h > 0 && (w != g.width || h != g.height) {
			if err := g.reseed(w, h, g.cfg.Pattern); err != nil {
				return err
			}
			log.Printf("game: resized to %dx%d", w, h)
		}
	}
	return g.render()
}
