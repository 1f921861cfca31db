// Package config provides YAML-based configuration loading and the
// difficulty table for Pong.
package config

import (
	"fmt"
	"time"
)

// Config is the complete runtime configuration.
// Physics constants are fixed by the game and intentionally absent here.
type Config struct {
	Loop  LoopConfig  `yaml:"loop"`
	Match MatchConfig `yaml:"match"`
	Input InputConfig `yaml:"input"`
	Audio AudioConfig `yaml:"audio"`

	// Source records where the configuration was read from.
	Source string `yaml:"-"`
}

// LoopConfig defines the fixed-timestep loop parameters.
type LoopConfig struct {
	TickRate   int  `yaml:"tick_rate"`    // Simulation steps per second
	MaxCatchUp int  `yaml:"max_catch_up"` // Steps allowed per poll before surplus time is dropped
	ShowFPS    bool `yaml:"show_fps"`
}

// MatchConfig defines scoring and pacing of a match.
type MatchConfig struct {
	WinScore   int           `yaml:"win_score"` // 0 = unbounded
	ServeDelay time.Duration `yaml:"serve_delay"`
	StartDelay time.Duration `yaml:"start_delay"`
	Mode       Mode          `yaml:"mode"`
}

// InputConfig defines key latch timing.
type InputConfig struct {
	// HoldWindow is how long a key press counts as held. Terminals only
	// report presses, so key repeat refreshes it.
	HoldWindow time.Duration `yaml:"hold_window"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// Mode selects who drives the right paddle.
type Mode string

const (
	ModeAI     Mode = "ai"
	ModeVersus Mode = "versus"
)

// Validate reports the first setting that cannot drive a game.
func (c Config) Validate() error {
	switch {
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("config: loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	case c.Loop.MaxCatchUp <= 0:
		return fmt.Errorf("config: loop.max_catch_up must be positive, got %d", c.Loop.MaxCatchUp)
	case c.Match.WinScore < 0:
		return fmt.Errorf("config: match.win_score must not be negative, got %d", c.Match.WinScore)
	case c.Match.ServeDelay < 0 || c.Match.StartDelay < 0:
		return fmt.Errorf("config: match delays must not be negative")
	case c.Match.Mode != ModeAI && c.Match.Mode != ModeVersus:
		return fmt.Errorf("config: match.mode must be %q or %q, got %q", ModeAI, ModeVersus, c.Match.Mode)
	case c.Input.HoldWindow < 0:
		return fmt.Errorf("config: input.hold_window must not be negative")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("config: audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}
