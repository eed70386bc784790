// shmup is a side-scrolling shoot-em-up that runs in the terminal.
//
// Usage:
//
//	shmup list                            - List available scenarios
//	shmup play [scenario]                 - Play a scenario, or pick one from the menu
//	shmup simulate <scenario> --ticks N   - Run a scenario headless with an autopilot
//	shmup scores [scenario]               - Show stored runs
//	shmup config dump                     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 40)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.shmup/scores.db)
//	--config <path>       - Load tuning from a YAML or TOML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var (
	logger   = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "shmup"})
	shmupCfg = config.DefaultShmupConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shmup",
	Short: "Shmup - a side-scrolling shooter in your terminal",
	Long: `Shmup is a side-scrolling shoot-em-up played in the terminal.
Fly the ship, dodge enemy fire and shoot down the waves of aliens.

Available commands:
  list      - Show all scenarios
  play      - Play a scenario (menu when none is given)
  simulate  - Run a scenario headless with an autopilot
  scores    - View stored runs
  config    - Inspect the effective configuration

Examples:
  shmup list
  shmup play classic
  shmup play boss --difficulty hard
  shmup simulate swarm --ticks 2000 --seed 42
  shmup scores classic`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 40, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shmup/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging, loads the tuning file and registers the
// scenarios it defines.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	shmupCfg = cfg

	shmup.SetConfigPath(flagConfig)
	shmup.SetDifficultyPreset(flagDifficulty)
	shmup.SetLogger(logger)

	if added := shmup.RegisterScenarios(cfg); len(added) > 0 {
		logger.Debug("registered scenarios from config", "ids", added)
	}
	return nil
}
