package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Start playing the specified scenario. Without one, a menu lists
every scenario with its best score.

Controls:
  Arrows/WASD    - Move
  Shift+Arrows   - Move and dash
  X              - Dash
  Space/Z        - Shoot
  P              - Pause
  R              - Restart (after game over)
  Q/Esc/Ctrl+C   - Quit

Menu:
  Up/Down/j/k    - Navigate
  Enter          - Select scenario
  Tab            - Scoreboard

Examples:
  shmup play
  shmup play classic
  shmup play boss --difficulty easy
  shmup play swarm --config ./my-shmup.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.shmup/shmup.log", "Log file used while the game owns the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'shmup list' to see available scenarios.")
		os.Exit(1)
	}

	if err := play(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(args []string) error {
	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// stderr is hidden behind the alternate screen
	gameLog, closeLog, err := tui.OpenLogFile(flagLogFile, logger.GetLevel())
	if err != nil {
		logger.Warn("file logging disabled", "err", err)
	} else {
		defer closeLog()
	}
	shmup.SetLogger(gameLog)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	if len(args) == 1 {
		return playScenario(args[0], store, cfg, gameLog)
	}
	return menuLoop(store, cfg, gameLog)
}

// menuLoop alternates between the scenario menu, the scoreboard and runs
// until the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, gameLog *log.Logger) error {
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		// Update config with any size changes
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		case res.ScenarioID != "":
			if err := playScenario(res.ScenarioID, store, cfg, gameLog); err != nil {
				logger.Error("run failed", "scenario", res.ScenarioID, "err", err)
			}
		default:
			return nil
		}
	}
}

func playScenario(id string, store *storage.Store, cfg core.RuntimeConfig, gameLog *log.Logger) error {
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	state, err := tui.Run(game, store, cfg, gameLog)
	if err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	logger.Info("run ended", "scenario", id, "score", state.Score, "kills", state.Kills, "deaths", state.Deaths)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
