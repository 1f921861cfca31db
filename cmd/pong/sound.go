package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/audio"
)

var soundCmd = &cobra.Command{
	Use:   "sound [name]",
	Short: "Play a sound effect",
	Long: `Play one sound effect to check the audio device, or every effect in
turn when no name is given.

Sounds: ` + strings.Join(soundNames(), ", ") + `

Examples:
  pong sound
  pong sound bounce`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSound,
}

func soundNames() []string {
	ids := audio.Sounds()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	return names
}

func runSound(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ids := audio.Sounds()
	if len(args) == 1 {
		ids = nil
		for _, id := range audio.Sounds() {
			if id.String() == args[0] {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown sound %q\n", args[0])
			fmt.Fprintf(os.Stderr, "Available: %s\n", strings.Join(soundNames(), ", "))
			os.Exit(1)
		}
	}

	if !cfg.Audio.Enabled {
		fmt.Fprintln(os.Stderr, "Audio is disabled (--mute or audio.enabled: false).")
		return
	}

	engine := audio.NewEngine(cfg.Audio)
	if err := engine.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for _, id := range ids {
		fmt.Printf("%-12s %v\n", id, audio.Duration(id))
		if err := engine.PlayAndWait(ctx, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}
