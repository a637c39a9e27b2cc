// Package entity provides the hero, the mobs that hunt it, and static props.
package entity

import (
	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/grid"
)

// State is an actor's animation state.
type State int

const (
	// StateIdle accepts new actions.
	StateIdle State = iota
	// StateMoving is a move in flight. Position already points at the destination.
	StateMoving
	// StateAttacking is a strike in flight.
	StateAttacking
	// StateDead is terminal.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateAttacking:
		return "attacking"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Actor is the shared body of the hero and every mob.
type Actor struct {
	Handle    anim.Handle
	Position  grid.Vec
	Direction grid.Vec // Always a cardinal unit vector
	state     State
}

func newActor(h anim.Handle, pos, dir grid.Vec) Actor {
	a := Actor{Handle: h, Position: pos, Direction: grid.Down}
	a.face(dir)
	return a
}

// State returns the current animation state.
func (a *Actor) State() State { return a.state }

// IsAlive returns false once the actor has died.
func (a *Actor) IsAlive() bool { return a.state != StateDead }

// IsMoving returns true while a move or attack is in flight.
func (a *Actor) IsMoving() bool {
	return a.state == StateMoving || a.state == StateAttacking
}

// face points the actor along the sign of dir. A zero dir keeps the old facing.
func (a *Actor) face(dir grid.Vec) {
	if s := dir.Sign(); !s.IsZero() {
		a.Direction = s
	}
}

// Rotate turns the actor in place.
func (a *Actor) Rotate(dir grid.Vec, an anim.Animator) {
	a.face(dir)
	an.Play(anim.KindRotate, a.Handle, a.Direction, nil)
}

// Move steps the actor by dir. The position changes immediately; onComplete
// runs when the animation ends. Returns false if the actor is busy or dead.
func (a *Actor) Move(dir grid.Vec, an anim.Animator, onComplete func()) bool {
	if !a.IsAlive() || a.IsMoving() {
		return false
	}
	a.state = StateMoving
	a.face(dir)
	a.Position = a.Position.Add(dir)
	an.Play(anim.KindMove, a.Handle, dir, a.settle(onComplete))
	return true
}

// Attack strikes toward dir without moving. Returns false if busy or dead.
func (a *Actor) Attack(dir grid.Vec, an anim.Animator, onComplete func()) bool {
	if !a.IsAlive() || a.IsMoving() {
		return false
	}
	a.state = StateAttacking
	a.face(dir)
	an.Play(anim.KindAttack, a.Handle, dir, a.settle(onComplete))
	return true
}

// Die kills the actor and plays its fall toward dir. Returns false if already dead.
func (a *Actor) Die(dir grid.Vec, an anim.Animator, onComplete func()) bool {
	if !a.IsAlive() {
		return false
	}
	a.state = StateDead
	an.Play(anim.KindDeath, a.Handle, dir, onComplete)
	return true
}

func (a *Actor) settle(onComplete func()) func() {
	return func() {
		if a.state != StateDead {
			a.state = StateIdle
		}
		if onComplete != nil {
			onComplete()
		}
	}
}
