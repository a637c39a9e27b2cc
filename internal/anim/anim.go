// Package anim models presentation-side transitions as pending continuations.
//
// Game code starts an animation and hands over a completion callback. The
// Scheduler holds the callback until the transition's duration has elapsed on
// the render clock and then fires it exactly once. Nothing here runs on its
// own goroutine; the owner advances the scheduler once per tick.
package anim

import "github.com/samdwyer/gravewalk/internal/grid"

// Kind identifies a visual transition.
type Kind int

const (
	// KindMove slides an entity one cell.
	KindMove Kind = iota
	// KindAttack plays a strike toward a neighbor.
	KindAttack
	// KindDeath topples an entity.
	KindDeath
	// KindRotate turns an entity in place. It completes synchronously.
	KindRotate
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindAttack:
		return "attack"
	case KindDeath:
		return "death"
	case KindRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Handle refers to an entity's visual representation.
type Handle uint32

// Animator plays transitions and reports completion.
// onComplete is invoked exactly once, after the transition finishes.
type Animator interface {
	Play(kind Kind, h Handle, v grid.Vec, onComplete func())
}
