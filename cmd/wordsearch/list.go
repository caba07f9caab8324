package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzles, word decks and game modes",
	Long: `Shows the built-in puzzles, puzzles found in the --puzzles directory,
the word decks used for generated puzzles, and the registered game modes.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	list, err := wordsearch.PuzzleLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range list {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Words", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, p := range list {
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, p.ID, p.Size(), len(p.Words), p.Name)
	}

	fmt.Println()
	fmt.Println("Word decks:")
	fmt.Println()
	cfg := wordsearch.Config()
	for _, name := range cfg.DeckNames() {
		words, err := cfg.Deck(name)
		if err != nil {
			fmt.Printf("  %-16s  (%v)\n", name, err)
			continue
		}
		fmt.Printf("  %-16s  %d words\n", name, len(words))
	}

	fmt.Println()
	fmt.Println("Game modes:")
	fmt.Println()
	for _, g := range registry.List() {
		fmt.Printf("  %-18s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wordsearch play <id>' to play a puzzle.")
}
