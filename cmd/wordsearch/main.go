// wordsearch is a terminal word search game, playable locally or over SSH.
//
// Usage:
//
//	wordsearch                      - Pick a puzzle from the menu
//	wordsearch play [puzzle]        - Play a puzzle directly
//	wordsearch play --random        - Play a generated puzzle
//	wordsearch list                 - List puzzles and word decks
//	wordsearch scores [puzzle]      - Show best times
//	wordsearch serve                - Start SSH server for remote play
//	wordsearch config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible generated puzzles
//	--db <path>       - Set database path (default: ~/.wordsearch/wordsearch.db)
//	--config <path>   - Use a specific config file
//	--puzzles <dir>   - Load extra puzzle files from a directory
//	--log-file <path> - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/audio"
	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzles"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagPuzzlesDir string
	flagLogFile    string
	flagVerbose    bool
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "wordsearch"})
	logFile *os.File
	gameCfg config.WordSearchConfig
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Word Search - find the hidden words in your terminal",
	Long: `Word Search is a terminal puzzle game. Drag across the grid with the
mouse, or use the arrow keys and Space, to select the hidden words.

Available commands:
  play     - Play a puzzle directly
  list     - Show puzzles and word decks
  scores   - View best times
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Run without a command to pick a puzzle from the menu.

Examples:
  wordsearch
  wordsearch play silly-wishes
  wordsearch play --random --difficulty hard
  wordsearch serve --ssh :2222
  wordsearch scores forest-food`,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for generated puzzles (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordsearch/wordsearch.db", "Path to completions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPuzzlesDir, "puzzles", defaultPuzzlesDir(), "Directory with extra puzzle files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultPuzzlesDir is ~/.wordsearch/puzzles, or empty without a home.
func defaultPuzzlesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsearch", "puzzles")
}

// setup configures logging, loads the configuration and installs the
// puzzle loader before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
		logger.SetReportTimestamp(true)
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	gameCfg = cfg
	wordsearch.SetConfig(cfg)

	loader := puzzles.NewLoader(flagPuzzlesDir)
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping puzzle file", "path", path, "error", err)
	}
	wordsearch.SetLoader(loader)

	logger.Debug("ready", "puzzles", flagPuzzlesDir, "db", flagDBPath, "decks", len(cfg.Decks))
	return nil
}

// newSink builds the local feedback output: synthesized tones when an audio
// device is available, otherwise the terminal bell.
func newSink(fb config.FeedbackConfig) (audio.Sink, func()) {
	var sinks audio.Multi
	closeFn := func() {}
	bell := fb.Bell

	if fb.Sound {
		sp, err := audio.NewSpeaker(fb.Volume)
		if err != nil {
			logger.Debug("no audio device, using the terminal bell", "error", err)
			bell = true
		} else {
			sinks = append(sinks, sp)
			closeFn = sp.Close
		}
	}
	if bell {
		sinks = append(sinks, audio.NewBell(os.Stderr))
	}

	if len(sinks) == 0 {
		return audio.Nop{}, closeFn
	}
	return sinks, closeFn
}

// tuiLogger returns the logger for code running under the TUI. Without a
// log file, messages would corrupt the alternate screen, so they are dropped.
func tuiLogger() *log.Logger {
	if logFile != nil {
		return logger
	}
	return log.New(io.Discard)
}
