package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/forest-run/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	BedChar      = '▄'
	GiantChar    = '█'
	MinibossChar = '▓'
	MushroomChar = '●'
	TreeChar     = '♣'
	TrunkChar    = '│'
	BranchChar   = '║'
	GroundChar   = '▒'
	GroundTop    = '═'
	FogChar      = '░'
)

var lossText = map[string]string{
	KindNormal.String():   "You tripped over a bed",
	KindGiant.String():    "The giant bed got you",
	KindMiniboss.String(): "The miniboss caught you",
	ReasonBranch:          "A falling branch hit you",
}

// Render draws the current state. Row 0 is the HUD; the playfield is scaled
// into the rows below it.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg.Playfield.Width, g.cfg.Playfield.Height, g.cfg.Playfield.GroundLine())
}

// viewport maps playfield pixels to screen cells.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// fill paints a playfield rectangle, always covering at least one cell.
func (v viewport) fill(dst *core.Screen, x, y, w, h float64, r rune, c core.Color) {
	x0, y0 := v.col(x), v.row(y)
	x1 := max(x0+1, int(math.Ceil((x+w)*v.sx)))
	y1 := max(y0+1, v.top+int(math.Ceil((y+h)*v.sy)))
	for yy := max(y0, v.top); yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			dst.SetCell(xx, yy, r, c)
		}
	}
}

// RenderSnapshot draws snap into dst for a playfield of fieldW x fieldH.
func RenderSnapshot(dst *core.Screen, snap Snapshot, fieldW, fieldH, groundLine float64) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	v := viewport{
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(dst.Height()-1) / fieldH,
		top: 1,
		w:   dst.Width(),
		h:   dst.Height(),
	}

	for _, b := range snap.Backgrounds {
		drawTree(dst, v, b)
	}

	groundRow := v.row(groundLine)
	dst.DrawHLine(0, groundRow, v.w, GroundTop, core.ColorGround)
	dst.FillRect(0, groundRow+1, v.w, v.h-groundRow-1, GroundChar, core.ColorGround)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	for _, b := range snap.Branches {
		v.fill(dst, b.X, b.Y, b.W, b.H, BranchChar, core.ColorBranch)
	}

	p := snap.Player
	pc := core.ColorPlayer
	if snap.PowerUp {
		pc = core.ColorPlayerPowered
	}
	v.fill(dst, p.X, p.Y, p.W, p.H, PlayerChar, pc)

	if snap.FogRadius > 0 {
		drawFog(dst, v, p, snap.FogRadius)
	}

	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawTree(dst *core.Screen, v viewport, b Background) {
	crown := b.H * 0.6
	v.fill(dst, b.X, b.Y, b.W, crown, TreeChar, core.ColorTree)
	trunkW := b.W * 0.2
	v.fill(dst, b.X+(b.W-trunkW)/2, b.Y+crown, trunkW, b.H-crown, TrunkChar, core.ColorTree)
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	switch o.Kind {
	case KindGiant:
		v.fill(dst, o.X, o.Y, o.W, o.H, GiantChar, core.ColorGiant)
	case KindMiniboss:
		v.fill(dst, o.X, o.Y, o.W, o.H, MinibossChar, core.ColorMiniboss)
	case KindMushroom:
		v.fill(dst, o.X, o.Y, o.W, o.H, MushroomChar, core.ColorMushroom)
	default:
		r := BedChar
		if o.Variant == 1 {
			r = '▀'
		} else if o.Variant == 2 {
			r = '■'
		}
		v.fill(dst, o.X, o.Y, o.W, o.H, r, core.ColorBed)
	}
}

// drawFog hides every playfield cell farther than radius from the player's center.
func drawFog(dst *core.Screen, v viewport, p Player, radius float64) {
	cx, cy := p.Rect().Center()
	for y := v.top; y < v.h; y++ {
		py := (float64(y-v.top) + 0.5) / v.sy
		for x := 0; x < v.w; x++ {
			px := (float64(x) + 0.5) / v.sx
			if math.Hypot(px-cx, py-cy) > radius {
				dst.SetCell(x, y, FogChar, core.ColorFog)
			}
		}
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.FillRect(0, 0, dst.Width(), 1, ' ', core.ColorHUD)
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(0, 0, left, core.ColorHUD)

	right := fmt.Sprintf(" L%d/%d Spd %.0f ", snap.Level, snap.Levels, snap.Speed)
	if snap.PowerUp {
		right = " POWER" + right
	}
	if snap.DevMode {
		right = " DEV" + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorHUD)

	if snap.Warning && snap.Phase == core.PhasePlaying {
		dst.DrawTextCentered(2, " !! Danger ahead: the miniboss is coming !! ", core.ColorWarning)
	}
}

func drawOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case core.PhaseMenu:
		drawCenteredMessage(dst, "FOREST RUN", "Enter to start  |  ←/→ move  Space jump")
	case core.PhasePaused:
		drawCenteredMessage(dst, fmt.Sprintf("Level %d: %s", snap.Level, snap.LevelName), "Enter to begin")
	case core.PhaseWon:
		sub := fmt.Sprintf("Score: %d  |  R to restart", snap.Score)
		switch {
		case snap.CanAdvance:
			sub = fmt.Sprintf("Score: %d  |  N next level  R restart", snap.Score)
		case snap.Level < snap.Levels:
			sub = fmt.Sprintf("Score: %d  |  next level unlocking...", snap.Score)
		}
		drawCenteredMessage(dst, "YOU WIN!", sub)
	case core.PhaseLost:
		title := "GAME OVER"
		if text, ok := lossText[snap.LossReason]; ok {
			title = text
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  R to restart", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorBanner)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBanner)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBanner)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorBanner)
}
