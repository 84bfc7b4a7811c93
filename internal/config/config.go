// Package config provides YAML-based configuration loading, difficulty tiers
// and presets for the runner.
package config

import "time"

// RunnerConfig contains the complete rule set of the runner.
type RunnerConfig struct {
	Playfield Playfield     `yaml:"playfield"`
	Player    PlayerConfig  `yaml:"player"`
	Physics   Physics       `yaml:"physics"`
	Obstacles Obstacles     `yaml:"obstacles"`
	Spawn     Spawn         `yaml:"spawn"`
	PowerUp   PowerUp       `yaml:"power_up"`
	Scoring   Scoring       `yaml:"scoring"`
	Cheat     Cheat         `yaml:"cheat"`
	Timing    Timing        `yaml:"timing"`
	Levels    []LevelConfig `yaml:"levels"`
}

// Playfield defines the fixed logical coordinate system in pixels.
type Playfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundLine returns the top edge of the ground band.
func (p Playfield) GroundLine() float64 {
	return p.Height - p.GroundHeight
}

// PlayerConfig defines the player's body and horizontal movement.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// Physics defines vertical integration parameters.
type Physics struct {
	Gravity            float64 `yaml:"gravity"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	PoweredJumpImpulse float64 `yaml:"powered_jump_impulse"`
}

// Obstacles defines the size of each obstacle kind and the cull margins.
type Obstacles struct {
	CullMargin           float64        `yaml:"cull_margin"`
	BackgroundCullMargin float64        `yaml:"background_cull_margin"`
	Normal               NormalObstacle `yaml:"normal"`
	Giant                Size           `yaml:"giant"`
	Miniboss             MinibossGroup  `yaml:"miniboss"`
	Mushroom             Size           `yaml:"mushroom"`
}

// Size is a fixed width and height.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// NormalObstacle is a bed whose height varies in [MinHeight, MinHeight+HeightSpread).
type NormalObstacle struct {
	Width        float64 `yaml:"width"`
	MinHeight    float64 `yaml:"min_height"`
	HeightSpread int     `yaml:"height_spread"`
	Variants     int     `yaml:"variants"`
}

// MinibossGroup defines the miniboss formation.
type MinibossGroup struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	GroupSize int     `yaml:"group_size"`
	Spacing   float64 `yaml:"spacing"`
	Cooldown  int     `yaml:"cooldown"` // frames; the spawn counter is set to -Cooldown
}

// Spawn defines the per-tick Bernoulli trials shared by all levels.
type Spawn struct {
	Chance     float64         `yaml:"chance"`
	Mushroom   MushroomSpawn   `yaml:"mushroom"`
	Background BackgroundSpawn `yaml:"background"`
}

// MushroomSpawn gates the single power-up spawn of a session.
type MushroomSpawn struct {
	MinScore int     `yaml:"min_score"` // eligible once score is strictly greater
	Chance   float64 `yaml:"chance"`
}

// BackgroundSpawn defines decorative tree generation.
type BackgroundSpawn struct {
	Chance   float64 `yaml:"chance"`
	Size     float64 `yaml:"size"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	Sink     float64 `yaml:"sink"` // pixels the tree base sits below the ground line
	Types    int     `yaml:"types"`
	Parallax float64 `yaml:"parallax"`
}

// PowerUp defines how long the mushroom buff lasts.
type PowerUp struct {
	DurationPasses int `yaml:"duration_passes"`
}

// Scoring defines the per-obstacle award.
type Scoring struct {
	PointsPerPass int `yaml:"points_per_pass"`
}

// Cheat is the developer-mode toggle. The code is a convenience gate for a
// scoring multiplier and is not a security control.
type Cheat struct {
	Code       string `yaml:"code"`
	Multiplier int    `yaml:"multiplier"`
}

// Timing holds presentation-facing durations that the simulation tracks.
type Timing struct {
	WarningTicks   int           `yaml:"warning_ticks"`
	NextLevelDelay time.Duration `yaml:"next_level_delay"`
}

// LevelConfig is the rule set of one level.
type LevelConfig struct {
	Name        string         `yaml:"name"`
	WinScore    int            `yaml:"win_score"`
	DangerScore int            `yaml:"danger_score"` // warning banner + miniboss arming
	GiantChance float64        `yaml:"giant_chance"`
	FogRadius   float64        `yaml:"fog_radius"` // 0 disables fog-of-war
	DoubleJump  bool           `yaml:"double_jump"`
	Miniboss    MinibossPolicy `yaml:"miniboss"`
	Branches    BranchConfig   `yaml:"branches"`
	Tiers       []Tier         `yaml:"tiers"`
}

// MinibossPolicy decides when a miniboss group may be rolled.
type MinibossPolicy struct {
	Chance       float64 `yaml:"chance"`
	Once         bool    `yaml:"once"`          // at most one group per level
	RequireArmed bool    `yaml:"require_armed"` // only after DangerScore is crossed
	Bands        []Band  `yaml:"bands"`
}

// Band overrides the miniboss chance for scores in [Min, Max].
type Band struct {
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Chance float64 `yaml:"chance"`
}

// ChanceAt returns the miniboss probability for a score.
func (m MinibossPolicy) ChanceAt(score int) float64 {
	for _, b := range m.Bands {
		if score >= b.Min && score <= b.Max {
			return b.Chance
		}
	}
	return m.Chance
}

// BranchConfig defines falling branches.
type BranchConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Interval    int     `yaml:"interval"` // frames between spawn trials
	Chance      float64 `yaml:"chance"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnY      float64 `yaml:"spawn_y"`
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedSpread float64 `yaml:"speed_spread"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
