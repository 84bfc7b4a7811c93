package runner

import (
	"slices"

	"github.com/vovakirdan/forest-run/internal/config"
)

// World holds the live entity collections, each in spawn order.
type World struct {
	Obstacles   []Obstacle
	Backgrounds []Background
	Branches    []Branch
}

func (w *World) clear() {
	w.Obstacles = w.Obstacles[:0]
	w.Backgrounds = w.Backgrounds[:0]
	w.Branches = w.Branches[:0]
}

// scroll moves everything by one tick and drops what left the playfield.
func (w *World) scroll(speed float64, cfg *config.RunnerConfig) {
	for i := range w.Obstacles {
		w.Obstacles[i].X -= speed
	}
	bgSpeed := speed * cfg.Spawn.Background.Parallax
	for i := range w.Backgrounds {
		w.Backgrounds[i].X -= bgSpeed
	}
	for i := range w.Branches {
		w.Branches[i].Y += w.Branches[i].Speed
	}
	w.cull(cfg)
}

// cull removes off-screen entities. A second call with no movement in
// between removes nothing.
func (w *World) cull(cfg *config.RunnerConfig) {
	margin := cfg.Obstacles.CullMargin
	w.Obstacles = slices.DeleteFunc(w.Obstacles, func(o Obstacle) bool {
		return o.X <= -max(o.W, margin)
	})
	bgMargin := cfg.Obstacles.BackgroundCullMargin
	w.Backgrounds = slices.DeleteFunc(w.Backgrounds, func(b Background) bool {
		return b.X+b.W <= -bgMargin
	})
	bottom := cfg.Playfield.Height
	w.Branches = slices.DeleteFunc(w.Branches, func(b Branch) bool {
		return b.Y >= bottom
	})
}

// removeObstacle deletes the obstacle at index i, keeping spawn order.
func (w *World) removeObstacle(i int) {
	w.Obstacles = slices.Delete(w.Obstacles, i, i+1)
}
