package entity

import (
	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/grid"
)

// Zombie shambles toward the hero one axis at a time and strikes when adjacent.
type Zombie struct {
	mobBase
}

// NewZombie creates a zombie at pos facing dir.
func NewZombie(h anim.Handle, name string, pos, dir grid.Vec) *Zombie {
	return &Zombie{mobBase{Actor: newActor(h, pos, dir), name: name}}
}

// Decision is what a zombie chose to do with its turn.
type Decision int

const (
	DecidePass Decision = iota
	DecideChase
	DecideTurn
	DecideAttack
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case DecidePass:
		return "pass"
	case DecideChase:
		return "chase"
	case DecideTurn:
		return "turn"
	case DecideAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Decide picks the zombie's action without applying it. For DecideTurn the
// returned vector is the new facing.
//
// Priority: walk forward if already facing the hero with a clear path, then
// turn vertically, then turn horizontally, then strike if adjacent.
func (z *Zombie) Decide(w World) (Decision, grid.Vec) {
	hero := w.HeroPosition()
	dx := hero.X - z.Position.X
	dy := hero.Y - z.Position.Y
	dist := z.Position.Manhattan(hero)

	facingHero := (dy != 0 && grid.Sign(dy) == z.Direction.Y) ||
		(dx != 0 && grid.Sign(dx) == z.Direction.X)
	if dist > 1 && facingHero {
		ahead := z.Position.Add(z.Direction)
		if w.Bounds().Contains(ahead) && !w.Blocked(ahead) {
			return DecideChase, z.Direction
		}
	}

	switch {
	case dy != 0 && grid.Sign(dy) != z.Direction.Y:
		return DecideTurn, grid.Vec{Y: grid.Sign(dy)}
	case dx != 0 && grid.Sign(dx) != z.Direction.X:
		return DecideTurn, grid.Vec{X: grid.Sign(dx)}
	case dist == 1:
		return DecideAttack, z.Direction
	default:
		return DecidePass, grid.Vec{}
	}
}

// TakeTurn applies the zombie's decision. done reports true only after a
// strike animation lands.
func (z *Zombie) TakeTurn(w World, an anim.Animator, done func(hitHero bool)) {
	report := func(hit bool) {
		if done != nil {
			done(hit)
		}
	}

	decision, v := z.Decide(w)
	switch decision {
	case DecideChase:
		if z.Move(v, an, func() { report(false) }) {
			return
		}
	case DecideTurn:
		z.Rotate(v, an)
	case DecideAttack:
		if z.Attack(v, an, func() { report(true) }) {
			return
		}
	}
	report(false)
}
