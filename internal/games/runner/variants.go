package runner

import (
	"fmt"

	"github.com/vovakirdan/forest-run/internal/config"
	"github.com/vovakirdan/forest-run/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// config's own tiers.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// NewForest creates the single-level variant: winning level one ends the run.
func NewForest(opts ...Option) *Game {
	return New(append([]Option{WithIdentity("forest", "Forest Run"), WithLevels(1)}, opts...)...)
}

// NewForestNight creates the campaign variant that continues into the night level.
func NewForestNight(opts ...Option) *Game {
	return New(append([]Option{WithIdentity("forest-night", "Forest Run: Night")}, opts...)...)
}

var variants = map[string]func(...Option) *Game{
	"forest":       NewForest,
	"forest-night": NewForestNight,
}

// Variant creates the variant registered under id with extra options, for
// callers that need the concrete game rather than the registry interface.
func Variant(id string, opts ...Option) (*Game, error) {
	ctor, ok := variants[id]
	if !ok {
		return nil, fmt.Errorf("runner: unknown variant %q", id)
	}
	return ctor(opts...), nil
}

// Register the variants with the registry
func init() {
	for id, ctor := range variants {
		registry.Register(id, func() registry.Game {
			return ctor()
		})
	}
}
