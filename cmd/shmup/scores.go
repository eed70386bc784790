package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [scenario]",
	Short: "Show stored runs",
	Long: `Display the best runs for a scenario, or a summary of every
scenario played so far.

Examples:
  shmup scores
  shmup scores classic --limit 20
  shmup scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	var scenarioID string
	if len(args) == 1 {
		scenarioID = args[0]
		if !registry.Exists(scenarioID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
			fmt.Fprintln(os.Stderr, "Run 'shmup list' to see available scenarios.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScoresTUI:
		width, height := terminalSize()
		_, err = tui.RunScoreboard(store, scenarioID, width, height)
	case scenarioID != "":
		err = printScenarioRuns(store, scenarioID)
	default:
		err = printSummary(store)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenarioRuns(store *storage.Store, scenarioID string) error {
	runs, err := store.TopRuns(scenarioID, flagScoresLimit)
	if err != nil {
		return err
	}

	title := scenarioID
	for _, s := range registry.List() {
		if s.ID == scenarioID {
			title = s.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shmup play %s' to set the first high score!\n", scenarioID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Kills", "Deaths", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-8d  %s\n", i+1, r.Score, r.Kills, r.Deaths, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(scenarioID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Avg: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-12s  %-6s  %-10s  %-10s  %-6s  %s\n", "Scenario", "Runs", "Best", "Avg", "Kills", "Last played")
	fmt.Printf("  %-12s  %-6s  %-10s  %-10s  %-6s  %s\n", "--------", "----", "----", "---", "-----", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-12s  %-6d  %-10d  %-10.0f  %-6d  %s\n", id, st.Runs, st.HighScore, st.AvgScore, st.TotalKills, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
