package runner

import (
	"github.com/vovakirdan/forest-run/internal/config"
	"github.com/vovakirdan/forest-run/internal/core"
)

// Intents are the per-tick control inputs the integrator reads.
// Jump is a press edge, not a hold.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
}

// motion is the slice of the rule set the integrator needs for one tick.
type motion struct {
	physics    config.Physics
	moveSpeed  float64
	fieldW     float64
	groundLine float64
	doubleJump bool
	powered    bool
}

// integrate advances the player by one tick.
//
// Order: horizontal move, jump, velocity += gravity, y += velocity, ground
// clamp, horizontal clamp. Left and right apply independently, so holding
// both nets zero and leaves the player facing left.
func (p *Player) integrate(in Intents, m motion) {
	if in.Right {
		p.X += m.moveSpeed
		p.Facing = FacingRight
	}
	if in.Left {
		p.X -= m.moveSpeed
		p.Facing = FacingLeft
	}

	if in.Jump {
		impulse := m.physics.JumpImpulse
		if m.powered {
			impulse = m.physics.PoweredJumpImpulse
		}
		switch {
		case !p.Jumping:
			p.VY = impulse
			p.Jumping = true
			p.CanDoubleJump = m.doubleJump
		case p.CanDoubleJump:
			p.VY = impulse
			p.CanDoubleJump = false
		}
	}

	p.VY += m.physics.Gravity
	p.Y += p.VY

	if rest := m.groundLine - p.H; p.Y >= rest {
		p.Y = rest
		p.VY = 0
		p.Jumping = false
		p.CanDoubleJump = false
	}

	p.X = core.ClampF(p.X, 0, m.fieldW-p.W)
}
