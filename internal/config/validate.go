package config

import (
	"errors"
	"fmt"
)

// Validate reports every rule that makes the config unplayable.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield: size must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Playfield.GroundHeight >= 0 && c.Playfield.GroundHeight < c.Playfield.Height, "playfield: ground_height %v out of range", c.Playfield.GroundHeight)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.Height <= c.Playfield.GroundLine(), "player: height %v exceeds ground line", c.Player.Height)
	check(c.Physics.Gravity > 0, "physics: gravity must be positive")
	check(c.Physics.JumpImpulse < 0, "physics: jump_impulse must be negative (up)")
	check(c.Physics.PoweredJumpImpulse < 0, "physics: powered_jump_impulse must be negative (up)")
	check(c.Obstacles.Normal.Variants > 0, "obstacles: normal.variants must be positive")
	check(c.Obstacles.Normal.HeightSpread > 0, "obstacles: normal.height_spread must be positive")
	check(c.Obstacles.Miniboss.GroupSize > 0, "obstacles: miniboss.group_size must be positive")
	check(probability(c.Spawn.Chance), "spawn: chance %v not in [0,1]", c.Spawn.Chance)
	check(probability(c.Spawn.Mushroom.Chance), "spawn: mushroom.chance %v not in [0,1]", c.Spawn.Mushroom.Chance)
	check(probability(c.Spawn.Background.Chance), "spawn: background.chance %v not in [0,1]", c.Spawn.Background.Chance)
	check(c.Spawn.Background.Types > 0, "spawn: background.types must be positive")
	check(c.Spawn.Background.MinScale <= c.Spawn.Background.MaxScale, "spawn: background scale range is inverted")
	check(c.PowerUp.DurationPasses > 0, "power_up: duration_passes must be positive")
	check(c.Cheat.Multiplier >= 1, "cheat: multiplier must be at least 1")
	check(c.Timing.NextLevelDelay >= 0, "timing: next_level_delay must not be negative")
	check(len(c.Levels) > 0, "levels: at least one level is required")

	for i, lvl := range c.Levels {
		prefix := fmt.Sprintf("levels[%d]", i)
		check(lvl.WinScore > 0, "%s: win_score must be positive", prefix)
		check(len(lvl.Tiers) > 0, "%s: at least one tier is required", prefix)
		check(probability(lvl.GiantChance), "%s: giant_chance %v not in [0,1]", prefix, lvl.GiantChance)
		check(probability(lvl.Miniboss.Chance), "%s: miniboss.chance %v not in [0,1]", prefix, lvl.Miniboss.Chance)
		for _, t := range lvl.Tiers {
			check(t.Speed > 0, "%s: tier at score %d has non-positive speed", prefix, t.Score)
			check(t.Dwell >= 0, "%s: tier at score %d has negative dwell", prefix, t.Score)
		}
		if lvl.Branches.Enabled {
			check(lvl.Branches.Interval > 0, "%s: branches.interval must be positive", prefix)
			check(probability(lvl.Branches.Chance), "%s: branches.chance not in [0,1]", prefix)
			check(lvl.Branches.MinSpeed > 0, "%s: branches.min_speed must be positive", prefix)
		}
	}

	return errors.Join(errs...)
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
