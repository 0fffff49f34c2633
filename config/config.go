// Package config resolves the startup configuration: built-in defaults,
// optionally overridden by a TOML file, optionally overridden again by
// command-line flags (applied by the cmd layer). Everything is read once
// at startup; there is no runtime reconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/maxcabrajac/game-of-life/constant"
	"github.com/maxcabrajac/game-of-life/life"
	"github.com/maxcabrajac/game-of-life/render"
)

// Config is the full startup configuration, handed to the core as plain
// values.
type Config struct {
	// Width and Height are the simulation grid dimensions in cells.
	// Zero means derive both from the terminal size.
	Width  int
	Height int

	// AliveProb is the chance a cell starts alive under random seeding.
	AliveProb float64

	// Interval is the delay between generations.
	Interval time.Duration

	// Mode is the render mode name, per render.ParseMode.
	Mode string

	// Pattern names the starting pattern, per life.SeedGrid.
	Pattern string

	// Color is the live-cell color (name or #rrggbb); empty keeps the
	// terminal default.
	Color string

	// Seed feeds the random source; zero means time-derived.
	Seed int64

	// Sound enables the generation pulse.
	Sound bool

	// Debug enables file logging.
	Debug bool
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		AliveProb: constant.DefaultAliveProbability,
		Interval:  constant.DefaultTickInterval,
		Mode:      "block",
		Pattern:   life.RandomPattern,
	}
}

// fileConfig mirrors Config for TOML decoding. Pointer fields distinguish
// absent keys from zero values, so a file only overrides what it names.
type fileConfig struct {
	Width     *int     `toml:"width"`
	Height    *int     `toml:"height"`
	AliveProb *float64 `toml:"alive_prob"`
	Interval  *string  `toml:"interval"`
	Mode      *string  `toml:"mode"`
	Pattern   *string  `toml:"pattern"`
	Color     *string  `toml:"color"`
	Seed      *int64   `toml:"seed"`
	Sound     *bool    `toml:"sound"`
	Debug     *bool    `toml:"debug"`
}

// LoadFile overlays the TOML file at path onto c. Unknown keys are an
// error, so a typoed option fails loudly instead of silently keeping the
// default.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}

	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.AliveProb != nil {
		c.AliveProb = *fc.AliveProb
	}
	if fc.Interval != nil {
		d, err := time.ParseDuration(*fc.Interval)
		if err != nil {
			return fmt.Errorf("config: %s: interval: %w", path, err)
		}
		c.Interval = d
	}
	if fc.Mode != nil {
		c.Mode = *fc.Mode
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.Color != nil {
		c.Color = *fc.Color
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Sound != nil {
		c.Sound = *fc.Sound
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	return nil
}

// Validate rejects user input the rest of the program treats as
// impossible. Braille alignment of explicit dimensions is checked later,
// in the cmd layer, after dimension resolution; color names are checked
// by the terminal backend, which owns the color table.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: dimensions must be non-negative, got %dx%d", c.Width, c.Height)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("config: width and height must both be set or both be zero, got %dx%d", c.Width, c.Height)
	}
	if c.AliveProb < 0 || c.AliveProb > 1 {
		return fmt.Errorf("config: alive probability must be in [0, 1], got %v", c.AliveProb)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("config: interval must be positive, got %v", c.Interval)
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !life.KnownPattern(c.Pattern) {
		return fmt.Errorf("config: unknown pattern %q (have %s)",
			c.Pattern, strings.Join(life.PatternNames(), ", "))
	}
	return nil
}
