package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in rule set. It mirrors the embedded
// defaults/runner.yaml and is used when that file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: Playfield{Width: 800, Height: 400, GroundHeight: 50},
		Player:    PlayerConfig{X: 50, Width: 40, Height: 60, MoveSpeed: 5},
		Physics: Physics{
			Gravity:            0.6,
			JumpImpulse:        -12,
			PoweredJumpImpulse: -18,
		},
		Obstacles: Obstacles{
			CullMargin:           100,
			BackgroundCullMargin: 50,
			Normal:               NormalObstacle{Width: 60, MinHeight: 40, HeightSpread: 20, Variants: 3},
			Giant:                Size{Width: 300, Height: 250},
			Miniboss:             MinibossGroup{Width: 100, Height: 70, GroupSize: 3, Spacing: 350, Cooldown: 150},
			Mushroom:             Size{Width: 40, Height: 40},
		},
		Spawn: Spawn{
			Chance:   0.02,
			Mushroom: MushroomSpawn{MinScore: 25, Chance: 0.10},
			Background: BackgroundSpawn{
				Chance:   0.01,
				Size:     100,
				MinScale: 0.5,
				MaxScale: 1.0,
				Sink:     10,
				Types:    2,
				Parallax: 0.5,
			},
		},
		PowerUp: PowerUp{DurationPasses: 5},
		Scoring: Scoring{PointsPerPass: 1},
		Cheat:   Cheat{Code: "1345", Multiplier: 50},
		Timing:  Timing{WarningTicks: 180, NextLevelDelay: 3 * time.Second},
		Levels: []LevelConfig{
			{
				Name:        "Forest Edge",
				WinScore:    50,
				DangerScore: 25,
				GiantChance: 0.02,
				Miniboss:    MinibossPolicy{Chance: 0.25, Once: true, RequireArmed: true},
				Tiers: []Tier{
					{Score: 0, Speed: 6, Dwell: 60},
					{Score: 25, Speed: 7, Dwell: 40},
					{Score: 40, Speed: 8, Dwell: 40},
				},
			},
			{
				Name:        "Night Forest",
				WinScore:    100,
				DangerScore: 25,
				GiantChance: 0.01,
				FogRadius:   120,
				DoubleJump:  true,
				Miniboss: MinibossPolicy{
					Chance: 0.05,
					Bands:  []Band{{Min: 50, Max: 55, Chance: 0.50}},
				},
				Branches: BranchConfig{
					Enabled:     true,
					Interval:    100,
					Chance:      0.3,
					Width:       20,
					Height:      60,
					SpawnY:      -50,
					MinSpeed:    5,
					SpeedSpread: 3,
				},
				Tiers: []Tier{{Score: 0, Speed: 8, Dwell: 40}},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
