package config

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ParsePreset validates a difficulty preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// Preset returns the settings for a preset, falling back to normal and then
// to the hardcoded defaults.
func (c WordSearchConfig) Preset(p DifficultyPreset) PresetConfig {
	if pc, ok := c.Difficulty[p]; ok && len(pc.Directions) > 0 {
		return pc
	}
	if pc, ok := c.Difficulty[DifficultyNormal]; ok && len(pc.Directions) > 0 {
		return pc
	}
	return DefaultWordSearchConfig().Difficulty[DifficultyNormal]
}

// GridSize returns the generator grid size for a preset.
func (c WordSearchConfig) GridSize(p DifficultyPreset) (rows, cols int) {
	pc := c.Preset(p)
	rows, cols = c.Generator.Rows, c.Generator.Cols
	if pc.Rows > 0 {
		rows = pc.Rows
	}
	if pc.Cols > 0 {
		cols = pc.Cols
	}
	return rows, cols
}

// Deck returns the normalized words of a named deck.
func (c WordSearchConfig) Deck(name string) ([]string, error) {
	raw, ok := c.Decks[name]
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("config: unknown deck %q", name)
	}

	seen := make(map[string]bool, len(raw))
	words := make([]string, 0, len(raw))
	for _, entry := range raw {
		w := NormalizeWord(entry)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("config: deck %q has no usable words", name)
	}
	return words, nil
}

// DeckNames returns the configured deck names in sorted order.
func (c WordSearchConfig) DeckNames() []string {
	names := make([]string, 0, len(c.Decks))
	for name := range c.Decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeWord turns a vocabulary entry such as "Can of Beans" into the
// grid form "CANOFBEANS".
func NormalizeWord(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}
