package config

import (
	_ "embed"
)

//go:embed defaults/wordsearch.yaml
var defaultWordSearchYAML []byte

// DefaultWordSearchConfig returns the hardcoded configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultWordSearchConfig() WordSearchConfig {
	return WordSearchConfig{
		Layout: LayoutConfig{
			WordListGap:      4,
			MinWordListWidth: 16,
			ShowTimer:        true,
			ShowCursor:       true,
		},
		Zoom: ZoomConfig{
			Min:     2,
			Max:     5,
			Default: 3,
		},
		Animation: AnimationConfig{
			FlightTicks:  30,
			StaggerTicks: 4,
			MissTicks:    18,
		},
		Feedback: FeedbackConfig{
			Sound:  true,
			Volume: 0.8,
		},
		Generator: GeneratorConfig{
			Rows:        12,
			Cols:        12,
			MaxAttempts: 200,
			MaxRestarts: 50,
			Deck:        "forest-food",
			Difficulty:  string(DifficultyNormal),
		},
		Difficulty: map[DifficultyPreset]PresetConfig{
			DifficultyEasy:   {Directions: []string{"right", "down"}, Rows: 10, Cols: 10},
			DifficultyNormal: {Directions: []string{"right", "down", "down_right", "up_right"}},
			DifficultyHard: {
				Directions: []string{"right", "left", "down", "up", "down_right", "down_left", "up_right", "up_left"},
				Rows:       14,
				Cols:       14,
			},
		},
		Decks: map[string][]string{
			"forest-food": {"Honey", "Can of Beans", "Mushrooms", "Fruit", "Sausages", "Almonds", "Cookies"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for
// "wordsearch config" style dumps and tests.
func DefaultYAML() []byte {
	return defaultWordSearchYAML
}
