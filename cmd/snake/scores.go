package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hunting-snake/internal/platform/tui"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs from the run log.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --store file
  snake scores --tui
  snake scores --clear         # Forget every run and the high score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	store, err := openStore(cfg)
	if err != nil {
		fatalf("opening run log: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fatalf("clearing run log: %v", err)
		}
		fmt.Println("Run log cleared.")
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatalf("%v", err)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Hunting Snake")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %10s  %5s  %s\n", "Rank", "Player", "Score", "Level", "When")
	fmt.Printf("  %-4s  %-14s  %10s  %5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-14s  %10s  %5d  %s\n",
			i+1, r.Player, humanize.Comma(int64(r.Score)), r.Level, humanize.Time(r.CreatedAt))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Runs: %s  Average: %.1f  Highest level: %d\n",
			humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.Runs)), stats.AvgScore, stats.BestLevel)
	}
}
