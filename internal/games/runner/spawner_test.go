package runner

import (
	"testing"

	"github.com/vovakirdan/forest-run/internal/config"
)

// constant passes every trial and picks index 0.
type constant float64

func (c constant) Float64() float64 { return float64(c) }
func (constant) Intn(int) int       { return 0 }

func newTestSpawner(src Source) (*Spawner, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewSpawner(src, &cfg), &cfg
}

func TestSpawnPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		score  int
		flags  Flags
		floats []float64
		ints   []int
		want   []ObstacleKind
		height float64
	}{
		{
			name:   "giant first",
			floats: []float64{0, 0.01},
			ints:   []int{1},
			want:   []ObstacleKind{KindGiant},
			height: 250,
		},
		{
			name:   "armed miniboss group",
			flags:  Flags{MinibossArmed: true},
			floats: []float64{0, 0.5, 0.2},
			want:   []ObstacleKind{KindMiniboss, KindMiniboss, KindMiniboss},
			height: 70,
		},
		{
			name:   "unarmed miniboss falls through to normal",
			floats: []float64{0, 0.5},
			ints:   []int{5, 2},
			want:   []ObstacleKind{KindNormal},
			height: 45,
		},
		{
			name:   "miniboss once per level",
			flags:  Flags{MinibossArmed: true, MinibossSpawned: true},
			floats: []float64{0, 0.5},
			ints:   []int{19, 0},
			want:   []ObstacleKind{KindNormal},
			height: 59,
		},
		{
			name:   "mushroom above threshold",
			score:  26,
			floats: []float64{0, 0.5, 0.05},
			want:   []ObstacleKind{KindMushroom},
			height: 40,
		},
		{
			name:   "mushroom needs score strictly above 25",
			score:  25,
			floats: []float64{0, 0.5},
			want:   []ObstacleKind{KindNormal},
			height: 40,
		},
		{
			name:   "mushroom once per session",
			score:  30,
			flags:  Flags{MushroomSpawned: true},
			floats: []float64{0, 0.5},
			want:   []ObstacleKind{KindNormal},
			height: 40,
		},
		{
			name:   "night band raises miniboss chance",
			level:  1,
			score:  52,
			floats: []float64{0, 0.5, 0.4},
			want:   []ObstacleKind{KindMiniboss, KindMiniboss, KindMiniboss},
			height: 70,
		},
		{
			name:   "night miniboss outside band",
			level:  1,
			score:  60,
			flags:  Flags{MushroomSpawned: true},
			floats: []float64{0, 0.5, 0.4},
			want:   []ObstacleKind{KindNormal},
			height: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, cfg := newTestSpawner(&scripted{floats: tt.floats, ints: tt.ints})
			sp.frame = 1000
			var w World
			flags := tt.flags

			sp.step(&w, spawnState{
				level: &cfg.Levels[tt.level],
				tier:  config.Tier{Speed: 6, Dwell: 0},
				score: tt.score,
				flags: &flags,
			})

			if len(w.Obstacles) != len(tt.want) {
				t.Fatalf("expected %d obstacles, got %+v", len(tt.want), w.Obstacles)
			}
			for i, o := range w.Obstacles {
				if o.Kind != tt.want[i] {
					t.Errorf("obstacle %d: kind %v, want %v", i, o.Kind, tt.want[i])
				}
				if o.H != tt.height {
					t.Errorf("obstacle %d: height %v, want %v", i, o.H, tt.height)
				}
				if o.Y+o.H != cfg.Playfield.GroundLine() {
					t.Errorf("obstacle %d does not stand on the ground: y=%v h=%v", i, o.Y, o.H)
				}
			}
		})
	}
}

func TestMinibossGroupLayoutAndCooldown(t *testing.T) {
	sp, cfg := newTestSpawner(&scripted{floats: []float64{0, 0.5, 0.1}})
	sp.frame = 100
	var w World
	flags := Flags{MinibossArmed: true}

	got := sp.step(&w, spawnState{level: &cfg.Levels[0], tier: config.Tier{Dwell: 40}, flags: &flags})

	if !got {
		t.Error("expected miniboss to be reported")
	}
	for i, o := range w.Obstacles {
		want := 800 + float64(i)*350
		if o.X != want {
			t.Errorf("miniboss %d at x=%v, want %v", i, o.X, want)
		}
	}
	if !flags.MinibossSpawned {
		t.Error("expected spawned flag")
	}
	if sp.Frame() != -150 {
		t.Errorf("expected cooldown counter -150, got %d", sp.Frame())
	}
}

func TestSpawnDwellGate(t *testing.T) {
	sp, cfg := newTestSpawner(constant(0))
	var w World
	var flags Flags
	st := spawnState{level: &cfg.Levels[0], tier: config.Tier{Speed: 6, Dwell: 60}, flags: &flags}

	for tick := 1; tick <= 60; tick++ {
		sp.step(&w, st)
		if len(w.Obstacles) != 0 {
			t.Fatalf("tick %d: spawned before the dwell elapsed", tick)
		}
	}
	sp.step(&w, st)
	if len(w.Obstacles) != 1 {
		t.Fatalf("expected a spawn on tick 61, got %d obstacles", len(w.Obstacles))
	}
	if sp.Frame() != 0 {
		t.Errorf("expected counter reset after spawn, got %d", sp.Frame())
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	sp, cfg := newTestSpawner(constant(0))
	var w World
	var flags Flags
	st := spawnState{level: &cfg.Levels[1], tier: config.Tier{Speed: 8, Dwell: 0}, flags: &flags}

	for i := 0; i < 50; i++ {
		sp.step(&w, st)
	}
	if len(w.Obstacles) == 0 || len(w.Backgrounds) == 0 || len(w.Branches) == 0 {
		t.Fatalf("expected every collection to fill: %d/%d/%d", len(w.Obstacles), len(w.Backgrounds), len(w.Branches))
	}

	seen := make(map[uint64]bool)
	increasing := func(what string, ids []uint64) {
		for i, id := range ids {
			if seen[id] {
				t.Fatalf("%s: id %d reused", what, id)
			}
			seen[id] = true
			if i > 0 && id <= ids[i-1] {
				t.Errorf("%s: id %d not after %d", what, id, ids[i-1])
			}
		}
	}

	increasing("obstacles", ids(w.Obstacles))
	bg := make([]uint64, len(w.Backgrounds))
	for i, b := range w.Backgrounds {
		bg[i] = b.ID
	}
	increasing("backgrounds", bg)
	br := make([]uint64, len(w.Branches))
	for i, b := range w.Branches {
		br[i] = b.ID
	}
	increasing("branches", br)
}

func TestBackgroundSpawn(t *testing.T) {
	// Spawn trial fails, background trial passes at scale 0.5 + 0.5*0.5.
	sp, cfg := newTestSpawner(&scripted{floats: []float64{0.9, 0.005, 0.5}, ints: []int{1}})
	var w World
	var flags Flags

	sp.step(&w, spawnState{level: &cfg.Levels[0], tier: config.Tier{Dwell: 0}, flags: &flags})

	if len(w.Backgrounds) != 1 {
		t.Fatalf("expected one tree, got %d", len(w.Backgrounds))
	}
	b := w.Backgrounds[0]
	if b.W != 75 || b.H != 75 || b.Type != 1 {
		t.Errorf("unexpected tree %+v", b)
	}
	if b.Y != 350-75+10 {
		t.Errorf("tree should sink 10px into the ground, y=%v", b.Y)
	}
}

func TestBranchSpawnInterval(t *testing.T) {
	sp, cfg := newTestSpawner(&scripted{floats: []float64{0.9, 0.9, 0.1, 0.5, 0.5}})
	sp.frame = 99
	var w World
	var flags Flags

	sp.step(&w, spawnState{level: &cfg.Levels[1], tier: config.Tier{Dwell: 40}, flags: &flags})

	if len(w.Branches) != 1 {
		t.Fatalf("expected a branch on frame 100, got %d", len(w.Branches))
	}
	b := w.Branches[0]
	if b.X != 0.5*(800-20) || b.Y != -50 || b.Speed != 6.5 {
		t.Errorf("unexpected branch %+v", b)
	}

	// Off-interval frames never roll.
	sp2, cfg2 := newTestSpawner(constant(0))
	sp2.frame = 10
	var w2 World
	sp2.step(&w2, spawnState{level: &cfg2.Levels[1], tier: config.Tier{Dwell: 40}, flags: &flags})
	if len(w2.Branches) != 0 {
		t.Errorf("branch spawned on frame 11")
	}

	// Levels without branches never roll.
	sp3, cfg3 := newTestSpawner(constant(0))
	sp3.frame = 99
	var w3 World
	sp3.step(&w3, spawnState{level: &cfg3.Levels[0], tier: config.Tier{Dwell: 400}, flags: &flags})
	if len(w3.Branches) != 0 {
		t.Errorf("branch spawned on level one")
	}
}
