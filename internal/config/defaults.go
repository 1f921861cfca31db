package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Loop: LoopConfig{
			TickRate:   60,
			MaxCatchUp: 5,
		},
		Match: MatchConfig{
			WinScore:   12,
			ServeDelay: time.Second,
			StartDelay: 1500 * time.Millisecond,
			Mode:       ModeAI,
		},
		Input: InputConfig{
			HoldWindow: 220 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
