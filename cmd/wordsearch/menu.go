package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// runMenu is the local menu loop: pick a puzzle, play, come back.
func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open completions database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sink, closeSink := newSink(gameCfg.Feedback)
	opts := tui.Options{Store: store, Sink: sink, Logger: tuiLogger()}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, ok := menuGame(menuResult.Item, cfg)
		if !ok {
			continue
		}

		// Fresh seed for each generated puzzle unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	closeSink()
	if store != nil {
		store.Close()
	}
}

// menuGame creates the game for a menu entry. Generated puzzles ask for a
// difficulty and deck first; backing out returns false.
func menuGame(item tui.MenuItem, cfg core.RuntimeConfig) (*wordsearch.Game, bool) {
	if !item.Random() {
		game := wordsearch.New()
		if err := game.SetPuzzle(item.PuzzleID); err != nil {
			logger.Error("cannot load puzzle", "puzzle", item.PuzzleID, "error", err)
			return nil, false
		}
		return game, true
	}

	sel, err := tui.RunRandomSelector(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}
	if sel == nil {
		return nil, false
	}

	game := wordsearch.NewRandom()
	if err := game.SetDifficulty(sel.Difficulty); err != nil {
		logger.Error("bad difficulty", "difficulty", sel.Difficulty, "error", err)
		return nil, false
	}
	if sel.Deck != "" {
		if err := game.SetDeck(sel.Deck); err != nil {
			logger.Error("bad deck", "deck", sel.Deck, "error", err)
			return nil, false
		}
	}
	return game, true
}
