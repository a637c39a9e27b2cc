package grid

// Occupancy records which cells are taken, keyed by Bounds.Key.
type Occupancy struct {
	bounds Bounds
	cells  map[int]bool
}

// NewOccupancy creates an empty occupancy set over bounds.
func NewOccupancy(bounds Bounds) *Occupancy {
	return &Occupancy{
		bounds: bounds,
		cells:  make(map[int]bool),
	}
}

// Reserve marks a cell as taken.
func (o *Occupancy) Reserve(c Vec) {
	o.cells[o.bounds.Key(c)] = true
}

// Taken returns true if the cell has been reserved.
func (o *Occupancy) Taken(c Vec) bool {
	return o.cells[o.bounds.Key(c)]
}

// Len returns the number of reserved cells.
func (o *Occupancy) Len() int {
	return len(o.cells)
}
