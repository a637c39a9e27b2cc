package entity

import (
	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/grid"
)

// Hero is the player's reaper.
type Hero struct {
	Actor
}

// NewHero creates the hero at the origin facing down.
func NewHero(h anim.Handle) *Hero {
	return &Hero{Actor: newActor(h, grid.Origin, grid.Down)}
}

// Move steps the hero by dir. A zero dir is a confirm: it completes at once
// without animating.
func (h *Hero) Move(dir grid.Vec, an anim.Animator, onComplete func()) bool {
	if h.IsMoving() {
		return false
	}
	if dir.IsZero() {
		if onComplete != nil {
			onComplete()
		}
		return true
	}
	return h.Actor.Move(dir, an, onComplete)
}
