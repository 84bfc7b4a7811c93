package runner

import (
	"github.com/vovakirdan/forest-run/internal/config"
	"github.com/vovakirdan/forest-run/internal/core"
)

// contact is the outcome of one collision and scoring pass.
type contact struct {
	lost   bool
	reason string
	events []core.Event
}

// resolveContacts scans obstacles then branches in spawn order.
//
// A mushroom overlap removes the mushroom and grants the power-up. The first
// lethal overlap ends the scan. Obstacles the player has fully cleared are
// marked passed and scored once.
func resolveContacts(w *World, p Player, s *Session, cfg *config.RunnerConfig) contact {
	var out contact
	body := p.Rect()

	for i := 0; i < len(w.Obstacles); i++ {
		obs := &w.Obstacles[i]
		if body.Intersects(obs.Rect()) {
			if !obs.Kind.Lethal() {
				w.removeObstacle(i)
				i--
				s.Powered = true
				s.PoweredPasses = 0
				out.events = append(out.events, s.event(core.EventPowerUp, ""))
				continue
			}
			out.lost = true
			out.reason = obs.Kind.String()
			return out
		}

		if !obs.Passed && p.X > obs.X+obs.W {
			obs.Passed = true
			s.Score += s.award(cfg)
			if s.Powered && obs.Kind != KindMushroom {
				s.PoweredPasses++
				if s.PoweredPasses >= cfg.PowerUp.DurationPasses {
					s.Powered = false
					out.events = append(out.events, s.event(core.EventPowerDown, ""))
				}
			}
		}
	}

	for _, br := range w.Branches {
		if body.Intersects(br.Rect()) {
			out.lost = true
			out.reason = ReasonBranch
			return out
		}
	}
	return out
}
