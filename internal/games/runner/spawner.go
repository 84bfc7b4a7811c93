package runner

import "github.com/vovakirdan/forest-run/internal/config"

// Flags are the at-most-once spawn events. They live together so that a
// session reset and a level reset each clear exactly the set they own.
type Flags struct {
	// Level scoped.
	MinibossArmed   bool // danger score crossed; the warning banner was raised
	MinibossSpawned bool

	// Session scoped.
	MushroomSpawned bool
}

func (f *Flags) resetLevel() {
	f.MinibossArmed = false
	f.MinibossSpawned = false
}

func (f *Flags) resetSession() {
	*f = Flags{}
}

// Spawner decides each tick whether new entities enter the playfield.
type Spawner struct {
	src    Source
	cfg    *config.RunnerConfig
	nextID uint64
	frame  int // spawn gate; negative while a miniboss cooldown runs
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src Source, cfg *config.RunnerConfig) *Spawner {
	return &Spawner{src: src, cfg: cfg}
}

// Frame returns the spawn gate counter.
func (s *Spawner) Frame() int {
	return s.frame
}

// reset rewinds the gate. IDs keep counting so they are never reused.
func (s *Spawner) reset() {
	s.frame = 0
}

func (s *Spawner) id() uint64 {
	s.nextID++
	return s.nextID
}

// spawnState is the per-tick input to the spawner.
type spawnState struct {
	level *config.LevelConfig
	tier  config.Tier
	score int
	flags *Flags
}

// step runs the spawn trials for one tick and reports whether a miniboss
// group entered.
func (s *Spawner) step(w *World, st spawnState) (miniboss bool) {
	s.frame++

	if s.frame > st.tier.Dwell && chance(s.src, s.cfg.Spawn.Chance) {
		miniboss = s.spawnObstacle(w, st)
		if s.frame > 0 {
			s.frame = 0
		}
	}

	s.spawnBackground(w)

	if st.level.Branches.Enabled {
		s.spawnBranch(w, st.level.Branches)
	}
	return miniboss
}

// spawnObstacle resolves the kind by layered trials: giant, then miniboss,
// then mushroom, then a normal bed.
func (s *Spawner) spawnObstacle(w *World, st spawnState) bool {
	cfg := s.cfg
	lvl := st.level

	if chance(s.src, lvl.GiantChance) {
		w.Obstacles = append(w.Obstacles, s.ground(KindGiant, s.src.Intn(cfg.Obstacles.Normal.Variants),
			0, cfg.Obstacles.Giant.Width, cfg.Obstacles.Giant.Height))
		return false
	}

	if s.minibossEligible(lvl, st.flags) && chance(s.src, lvl.Miniboss.ChanceAt(st.score)) {
		group := cfg.Obstacles.Miniboss
		for i := 0; i < group.GroupSize; i++ {
			w.Obstacles = append(w.Obstacles, s.ground(KindMiniboss, 0,
				float64(i)*group.Spacing, group.Width, group.Height))
		}
		st.flags.MinibossSpawned = true
		s.frame = -group.Cooldown
		return true
	}

	mush := cfg.Spawn.Mushroom
	if st.score > mush.MinScore && !st.flags.MushroomSpawned && chance(s.src, mush.Chance) {
		w.Obstacles = append(w.Obstacles, s.ground(KindMushroom, 0,
			0, cfg.Obstacles.Mushroom.Width, cfg.Obstacles.Mushroom.Height))
		st.flags.MushroomSpawned = true
		return false
	}

	normal := cfg.Obstacles.Normal
	h := normal.MinHeight + float64(s.src.Intn(normal.HeightSpread))
	w.Obstacles = append(w.Obstacles, s.ground(KindNormal, s.src.Intn(normal.Variants), 0, normal.Width, h))
	return false
}

func (s *Spawner) minibossEligible(lvl *config.LevelConfig, flags *Flags) bool {
	if lvl.Miniboss.RequireArmed && !flags.MinibossArmed {
		return false
	}
	if lvl.Miniboss.Once && flags.MinibossSpawned {
		return false
	}
	return true
}

// ground builds an obstacle standing on the ground at the right edge.
func (s *Spawner) ground(kind ObstacleKind, variant int, offset, w, h float64) Obstacle {
	return Obstacle{
		ID:      s.id(),
		Kind:    kind,
		Variant: variant,
		X:       s.cfg.Playfield.Width + offset,
		Y:       s.cfg.Playfield.GroundLine() - h,
		W:       w,
		H:       h,
	}
}

func (s *Spawner) spawnBackground(w *World) {
	bg := s.cfg.Spawn.Background
	if !chance(s.src, bg.Chance) {
		return
	}
	scale := between(s.src, bg.MinScale, bg.MaxScale-bg.MinScale)
	size := bg.Size * scale
	w.Backgrounds = append(w.Backgrounds, Background{
		ID:   s.id(),
		Type: s.src.Intn(bg.Types),
		X:    s.cfg.Playfield.Width,
		Y:    s.cfg.Playfield.GroundLine() - size + bg.Sink,
		W:    size,
		H:    size,
	})
}

func (s *Spawner) spawnBranch(w *World, br config.BranchConfig) {
	if s.frame%br.Interval != 0 || !chance(s.src, br.Chance) {
		return
	}
	w.Branches = append(w.Branches, Branch{
		ID:    s.id(),
		X:     s.src.Float64() * (s.cfg.Playfield.Width - br.Width),
		Y:     br.SpawnY,
		W:     br.Width,
		H:     br.Height,
		Speed: between(s.src, br.MinSpeed, br.SpeedSpread),
	})
}
