package runner

import "github.com/vovakirdan/forest-run/internal/core"

// Direction is the way the player faces.
type Direction int

const (
	FacingRight Direction = iota
	FacingLeft
)

func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the single controllable body. Y is the top edge; the body rests
// on the ground when Y equals the ground line minus its height.
type Player struct {
	X, Y          float64
	W, H          float64
	VY            float64
	Facing        Direction
	Jumping       bool
	CanDoubleJump bool
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// ObstacleKind decides an obstacle's size, lethality and spawn policy.
type ObstacleKind int

const (
	KindNormal ObstacleKind = iota
	KindGiant
	KindMiniboss
	KindMushroom
)

// String returns the kind name, which doubles as the loss reason.
func (k ObstacleKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindGiant:
		return "giant"
	case KindMiniboss:
		return "miniboss"
	case KindMushroom:
		return "mushroom"
	default:
		return "unknown"
	}
}

// Lethal reports whether touching this kind ends the run.
func (k ObstacleKind) Lethal() bool {
	return k != KindMushroom
}

// ReasonBranch is the loss reason for a falling branch hit.
const ReasonBranch = "branch"

// Obstacle is a ground object scrolling in from the right edge.
// Only X changes after creation; Passed never goes back to false.
type Obstacle struct {
	ID      uint64
	Kind    ObstacleKind
	Variant int
	X, Y    float64
	W, H    float64
	Passed  bool
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Background is a decorative tree. It has no gameplay effect.
type Background struct {
	ID   uint64
	Type int
	X, Y float64
	W, H float64
}

// Branch falls from above the playfield in levels that enable it.
type Branch struct {
	ID    uint64
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the branch's bounding box.
func (b Branch) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}
