// Package config provides YAML-based configuration loading and difficulty
// presets for the word search game.
package config

// WordSearchConfig contains all configuration for the word search game.
type WordSearchConfig struct {
	Layout     LayoutConfig                      `yaml:"layout"`
	Zoom       ZoomConfig                        `yaml:"zoom"`
	Animation  AnimationConfig                   `yaml:"animation"`
	Feedback   FeedbackConfig                    `yaml:"feedback"`
	Generator  GeneratorConfig                   `yaml:"generator"`
	Difficulty map[DifficultyPreset]PresetConfig `yaml:"difficulty"`
	Decks      map[string][]string               `yaml:"decks"`
}

// LayoutConfig controls how the grid and word list share the screen.
type LayoutConfig struct {
	WordListGap      int  `yaml:"word_list_gap"`       // Columns between grid and word list
	MinWordListWidth int  `yaml:"min_word_list_width"` // Below this the list moves under the grid
	ShowTimer        bool `yaml:"show_timer"`
	ShowCursor       bool `yaml:"show_cursor"` // Draw the keyboard cursor when no pointer is used
}

// ZoomConfig bounds the cell width in terminal columns.
type ZoomConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// AnimationConfig times the letter flights and miss flash, in ticks.
type AnimationConfig struct {
	FlightTicks  int `yaml:"flight_ticks"`  // Travel time of one letter
	StaggerTicks int `yaml:"stagger_ticks"` // Delay between consecutive letters
	MissTicks    int `yaml:"miss_ticks"`    // How long a rejected selection stays red
}

// FeedbackConfig selects the sound outputs.
type FeedbackConfig struct {
	Sound  bool    `yaml:"sound"`  // Synthesized tones through the speaker
	Bell   bool    `yaml:"bell"`   // Terminal bell on miss and completion
	Volume float64 `yaml:"volume"` // 0..1, scales the tone gain
}

// GeneratorConfig configures random puzzles.
type GeneratorConfig struct {
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	MaxAttempts int    `yaml:"max_attempts"`
	MaxRestarts int    `yaml:"max_restarts"`
	Deck        string `yaml:"deck"`       // Key into Decks
	Difficulty  string `yaml:"difficulty"` // Default preset name
}

// PresetConfig is what a difficulty preset changes for generated puzzles.
type PresetConfig struct {
	Directions []string `yaml:"directions"`     // Names: right, left, down, up, down_right, ...
	Rows       int      `yaml:"rows,omitempty"` // 0 keeps the generator default
	Cols       int      `yaml:"cols,omitempty"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
