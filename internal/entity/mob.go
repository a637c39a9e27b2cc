package entity

import (
	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/grid"
)

// World is the read-only view a mob decides against.
type World interface {
	Bounds() grid.Bounds
	HeroPosition() grid.Vec
	// Blocked returns true if a mob or a prop stands on the cell.
	Blocked(c grid.Vec) bool
}

// Mob is an enemy that acts once per mobs turn.
type Mob interface {
	Body() *Actor
	Name() string
	// TakeTurn makes one decision and calls done exactly once, possibly later.
	TakeTurn(w World, an anim.Animator, done func(hitHero bool))
}

type mobBase struct {
	Actor
	name string
}

// Body returns the mob's actor.
func (m *mobBase) Body() *Actor { return &m.Actor }

// Name is used to attribute the hero's death.
func (m *mobBase) Name() string { return m.name }

// Idle is a mob that never acts.
type Idle struct {
	mobBase
}

// NewIdle creates an inert mob.
func NewIdle(h anim.Handle, name string, pos, dir grid.Vec) *Idle {
	return &Idle{mobBase{Actor: newActor(h, pos, dir), name: name}}
}

// TakeTurn passes.
func (m *Idle) TakeTurn(_ World, _ anim.Animator, done func(hitHero bool)) {
	if done != nil {
		done(false)
	}
}

var (
	_ Mob = (*Idle)(nil)
	_ Mob = (*Zombie)(nil)
)
