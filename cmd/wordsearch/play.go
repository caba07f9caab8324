package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzles"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var (
	flagRandom     bool
	flagDifficulty string
	flagDeck       string
	flagZoom       int
)

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Start playing a puzzle. Without an argument the default puzzle is played.

Controls:
  Mouse drag        - Select a line of letters
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Start and finish a keyboard selection
  +/-/0             - Zoom in, out, reset
  P                 - Pause
  R                 - Replay the puzzle
  N                 - New puzzle (generated puzzles)
  Esc               - Leave
  Q/Ctrl+C          - Quit

Difficulty options (generated puzzles):
  easy   - Right and down only
  normal - Adds diagonals
  hard   - All eight directions

Examples:
  wordsearch play
  wordsearch play forest-food
  wordsearch play --random
  wordsearch play --random --difficulty hard --deck forest-food
  wordsearch play --random --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Generate a puzzle instead of loading one")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for generated puzzles: easy, normal, hard")
	playCmd.Flags().StringVar(&flagDeck, "deck", "", "Word deck for generated puzzles")
	playCmd.Flags().IntVar(&flagZoom, "zoom", 0, "Cell width in columns (0 = saved or default)")
}

func runPlay(_ *cobra.Command, args []string) {
	random := flagRandom || flagDifficulty != "" || flagDeck != ""
	if random && len(args) > 0 {
		fmt.Fprintln(os.Stderr, "Error: a puzzle name cannot be combined with --random")
		os.Exit(1)
	}

	game := wordsearch.New()
	if random {
		game = wordsearch.NewRandom()
		if flagDifficulty != "" {
			if err := game.SetDifficulty(flagDifficulty); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if flagDeck != "" {
			if err := game.SetDeck(flagDeck); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintln(os.Stderr, "Run 'wordsearch list' to see available decks.")
				os.Exit(1)
			}
		}
	} else {
		id := puzzles.DefaultID
		if len(args) > 0 {
			id = args[0]
		}
		if err := game.SetPuzzle(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'wordsearch list' to see available puzzles.")
			os.Exit(1)
		}
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Zoom:     flagZoom,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open completions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sink, closeSink := newSink(gameCfg.Feedback)
	_, runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sink:   sink,
		Logger: tuiLogger(),
	})
	closeSink()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
