package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [puzzle]",
	Short: "Show best times",
	Long: `Display the fastest completions of a puzzle, or a summary of every
solved puzzle when no puzzle is given.

Examples:
  wordsearch scores
  wordsearch scores silly-wishes
  wordsearch scores random-hard --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of times to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening completions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printBestTimes(store, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
		os.Exit(1)
	}
}

func printBestTimes(store *storage.Store, puzzleID string) error {
	title := puzzleID
	if p, err := wordsearch.PuzzleLoader().LoadByID(puzzleID); err == nil {
		title = p.Name
	}

	times, err := store.BestTimes(puzzleID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordsearch play %s' to set the first time!\n", puzzleID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Time", "Player", "When")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "----", "------", "----")
	for i, c := range times {
		fmt.Printf("  %-4d  %-8s  %-12s  %s\n", i+1, wordsearch.FormatElapsed(c.Duration), c.Player, humanize.Time(c.CreatedAt))
	}

	stats, err := store.PuzzleStats(puzzleID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Solved %s, average %s\n",
		humanize.Plural(stats.Plays, "time", "times"),
		wordsearch.FormatElapsed(stats.AvgTime),
	)
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllPuzzleStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No puzzles solved yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-6s  %-8s  %-8s  %s\n", "Puzzle", "Solved", "Best", "Average", "Last played")
	fmt.Printf("  %-20s  %-6s  %-8s  %-8s  %s\n", "------", "------", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-20s  %-6s  %-8s  %-8s  %s\n",
			id,
			humanize.Comma(int64(s.Plays)),
			wordsearch.FormatElapsed(s.BestTime),
			wordsearch.FormatElapsed(s.AvgTime),
			humanize.Time(s.LastPlayed),
		)
	}
	return nil
}
