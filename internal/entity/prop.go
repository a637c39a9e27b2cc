package entity

import (
	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/grid"
)

// Prop is a static obstacle such as a grave or a dead tree.
type Prop struct {
	Handle    anim.Handle
	Type      int // Index into the props catalog
	Position  grid.Vec
	Direction grid.Vec
}

// NewProp creates a prop. A zero dir faces down.
func NewProp(h anim.Handle, propType int, pos, dir grid.Vec) *Prop {
	if dir.IsZero() {
		dir = grid.Down
	}
	return &Prop{
		Handle:    h,
		Type:      propType,
		Position:  pos,
		Direction: dir,
	}
}
