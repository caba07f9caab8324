package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "wordsearch.yaml"

// Load loads the word search configuration.
// Search order: customPath -> ~/.wordsearch/configs/wordsearch.yaml ->
// ./configs/wordsearch.yaml -> embedded default -> hardcoded default.
// Files only need to set the keys they change.
func Load(customPath string) (WordSearchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WordSearchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return WordSearchConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOverDefaults(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parseOverDefaults(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefaults(), nil
}

// embeddedDefaults parses the embedded YAML, falling back to the hardcoded
// configuration if the embed is broken.
func embeddedDefaults() WordSearchConfig {
	cfg := DefaultWordSearchConfig()
	if err := yaml.Unmarshal(defaultWordSearchYAML, &cfg); err != nil {
		return DefaultWordSearchConfig()
	}
	cfg.normalize()
	return cfg
}

// parseOverDefaults decodes data on top of the embedded defaults.
func parseOverDefaults(data []byte) (WordSearchConfig, error) {
	cfg := embeddedDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WordSearchConfig{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsearch", "configs", filename)
}

// normalize repairs values that would break layout or generation.
func (c *WordSearchConfig) normalize() {
	def := DefaultWordSearchConfig()

	if c.Zoom.Min < 1 {
		c.Zoom.Min = def.Zoom.Min
	}
	if c.Zoom.Max < c.Zoom.Min {
		c.Zoom.Max = c.Zoom.Min
	}
	if c.Zoom.Default < c.Zoom.Min || c.Zoom.Default > c.Zoom.Max {
		c.Zoom.Default = c.Zoom.Min
	}

	if c.Animation.FlightTicks <= 0 {
		c.Animation.FlightTicks = def.Animation.FlightTicks
	}
	if c.Animation.StaggerTicks < 0 {
		c.Animation.StaggerTicks = 0
	}
	if c.Animation.MissTicks < 0 {
		c.Animation.MissTicks = 0
	}

	if c.Feedback.Volume < 0 {
		c.Feedback.Volume = 0
	}
	if c.Feedback.Volume > 1 {
		c.Feedback.Volume = 1
	}

	if c.Generator.Rows <= 0 {
		c.Generator.Rows = def.Generator.Rows
	}
	if c.Generator.Cols <= 0 {
		c.Generator.Cols = def.Generator.Cols
	}
	if c.Generator.MaxAttempts <= 0 {
		c.Generator.MaxAttempts = def.Generator.MaxAttempts
	}
	if c.Generator.MaxRestarts <= 0 {
		c.Generator.MaxRestarts = def.Generator.MaxRestarts
	}
}
