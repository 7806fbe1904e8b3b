// conga is a terminal chase game: steer the zombie with the mouse or the
// arrow keys, eat the cats and dodge the cat ladies.
//
// Usage:
//
//	conga play              - Play in this terminal
//	conga serve             - Start SSH server for remote play
//	conga config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible spawns
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/conga/internal/config"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64

	// Game config flags shared by play, serve and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "conga",
	Short: "Zombie Conga - a chase game for your terminal",
	Long: `Zombie Conga is a real-time chase game played in the terminal.

Steer the zombie toward the pointer, eat the cats that pop up and
stay clear of the cat ladies sweeping across the screen.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  conga play
  conga play --difficulty hard
  conga serve --ssh :2222
  conga config --config ./chase.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadChase resolves the game config from --config and --difficulty.
func loadChase() (config.Chase, error) {
	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return config.Chase{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.Chase{}, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyChasePreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return config.Chase{}, err
	}
	return cfg, nil
}
