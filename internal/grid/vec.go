// Package grid provides integer coordinates and occupancy over the bounded play field.
package grid

// Vec is an integer grid coordinate or offset.
type Vec struct {
	X, Y int
}

// Cardinal directions.
var (
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
	Up    = Vec{X: 0, Y: 1}
	Down  = Vec{X: 0, Y: -1}
)

// Directions lists the four cardinal unit vectors in spawn-roll order.
var Directions = [4]Vec{Left, Right, Up, Down}

// Origin is the hero's spawn cell.
var Origin = Vec{}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether v is (0,0).
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Sign returns v with each component reduced to -1, 0 or 1.
func (v Vec) Sign() Vec {
	return Vec{X: Sign(v.X), Y: Sign(v.Y)}
}

// Manhattan returns |dx| + |dy| between v and o.
func (v Vec) Manhattan(o Vec) int {
	return abs(v.X-o.X) + abs(v.Y-o.Y)
}

// Sign returns -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
