// pong is a terminal Pong game against an AI opponent or a second player.
//
// Usage:
//
//	pong                   - Open the title screen and play
//	pong play              - Same as above
//	pong config            - Print the effective configuration as YAML
//	pong config --defaults - Print the built-in config file
//	pong sound [name]      - Play one sound effect, or all of them
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--fps <rate>          - Simulation steps per second
//	--seed <value>        - RNG seed for reproducible matches
//	--difficulty <level>  - Highlight a level on the title screen
//	--versus              - Two players on one keyboard
//	--win-score <n>       - Points needed to win (0 = endless)
//	--mute                - Disable sound
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDifficulty string
	flagVersus     bool
	flagWinScore   int
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong in your terminal, against an AI opponent or a friend.

Controls:
  1-4          - Pick a level on the title screen
  W/S, Up/Down - Move your paddle
  R            - Restart the match
  Esc          - Back to the title screen
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Levels:
  1 easy       - Sloppy and slow opponent
  2 normal     - Half a paddle of aim error
  3 hard       - Quarter paddle error, re-aims, ball speeds up per point
  4 impossible - Perfect aim at double speed

Examples:
  pong
  pong --versus
  pong --difficulty hard --win-score 5
  pong --mute --seed 42
  pong config > ~/.pong/config.yaml`,
	Run: runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.IntVar(&flagFPS, "fps", 0, "Simulation steps per second (default from config: 60)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Level highlighted on the title screen: easy, normal, hard, impossible")
	flags.BoolVar(&flagVersus, "versus", false, "Two players: W/S against the arrow keys")
	flags.IntVar(&flagWinScore, "win-score", 0, "Points needed to win, 0 = endless (default from config: 12)")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(soundCmd)
}
