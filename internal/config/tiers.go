package config

import "sort"

// Tier is one step of the difficulty table: from Score onward obstacles
// scroll at Speed and spawn trials wait at least Dwell frames.
type Tier struct {
	Score int     `yaml:"score"`
	Speed float64 `yaml:"speed"`
	Dwell int     `yaml:"dwell"`
}

// TierTable resolves the active tier for a score with a single lookup.
type TierTable struct {
	tiers []Tier
}

// NewTierTable builds a table from tiers in any order.
func NewTierTable(tiers []Tier) TierTable {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})
	return TierTable{tiers: sorted}
}

// Index returns the position of the highest tier whose threshold is <= score.
// Scores below the first threshold resolve to the first tier.
func (t TierTable) Index(score int) int {
	i := sort.Search(len(t.tiers), func(i int) bool {
		return t.tiers[i].Score > score
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// Resolve returns the active tier for a score.
func (t TierTable) Resolve(score int) Tier {
	if len(t.tiers) == 0 {
		return Tier{}
	}
	return t.tiers[t.Index(score)]
}

// Len returns the number of tiers.
func (t TierTable) Len() int {
	return len(t.tiers)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy and hard shift every tier speed by one pixel per frame; fixed keeps
// only the first tier of each level so the speed never steps up.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	var delta float64
	switch preset {
	case DifficultyEasy:
		delta = -1
	case DifficultyHard:
		delta = 1
	case DifficultyFixed:
		for i := range cfg.Levels {
			if len(cfg.Levels[i].Tiers) > 1 {
				first := NewTierTable(cfg.Levels[i].Tiers).Resolve(0)
				first.Score = 0
				cfg.Levels[i].Tiers = []Tier{first}
			}
		}
		return
	default:
		return
	}

	for i := range cfg.Levels {
		tiers := make([]Tier, len(cfg.Levels[i].Tiers))
		copy(tiers, cfg.Levels[i].Tiers)
		for j := range tiers {
			tiers[j].Speed += delta
			if tiers[j].Speed < 1 {
				tiers[j].Speed = 1
			}
		}
		cfg.Levels[i].Tiers = tiers
	}
}
