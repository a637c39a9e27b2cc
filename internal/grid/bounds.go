package grid

// Bounds is the closed square [-H, H] x [-H, H].
type Bounds struct {
	HalfSize int
}

// NewBounds creates bounds with the given half-extent.
func NewBounds(halfSize int) Bounds {
	return Bounds{HalfSize: halfSize}
}

// Contains returns true if the cell lies on the grid.
func (b Bounds) Contains(c Vec) bool {
	h := b.HalfSize
	return c.X >= -h && c.X <= h && c.Y >= -h && c.Y <= h
}

// Side returns the number of cells along one axis (2H+1).
func (b Bounds) Side() int {
	return b.HalfSize*2 + 1
}

// Key returns the occupancy key y*(2H+1)+x for a cell.
func (b Bounds) Key(c Vec) int {
	return c.Y*b.Side() + c.X
}

// EdgeCapacity is the soft cap on live mobs, 8H-4.
// It approximates the perimeter cell count and is kept as-is on purpose.
func (b Bounds) EdgeCapacity() int {
	return b.HalfSize*8 - 4
}
