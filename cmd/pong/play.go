package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the title screen and play",
	Long: `Start Pong on the title screen. Press 1-4 to pick a level or any
other key to play on Easy. The first side to reach the win score takes
the match.

Examples:
  pong play
  pong play --versus --win-score 7
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	difficulty := config.DifficultyEasy
	if flagDifficulty != "" {
		difficulty, err = config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Info("config loaded", "source", cfg.Source, "mode", cfg.Match.Mode, "tick_rate", cfg.Loop.TickRate)

	// Terminal size before the first resize message
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}.ResolveSeed()

	var player audio.Sequencer = audio.Silent{}
	if cfg.Audio.Enabled {
		engine := audio.NewEngine(cfg.Audio)
		if err := engine.Init(); err != nil {
			logger.Error("audio init failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run with --mute to play without sound.")
			closeLog()
			os.Exit(1)
		}
		defer engine.Close()
		player = engine
		logger.Info("audio ready", "sample_rate", cfg.Audio.SampleRate, "volume", cfg.Audio.Volume)
	} else {
		logger.Info("audio muted")
	}

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rt,
		Difficulty: difficulty,
		Audio:      player,
		Logger:     logger,
	})
	if runErr != nil {
		logger.Error("terminal program failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
