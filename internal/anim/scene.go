package anim

// Scene tracks which handles are visible. Detaching has no gameplay effect.
type Scene struct {
	next    Handle
	present map[Handle]bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{present: make(map[Handle]bool)}
}

// NewHandle allocates a handle that has not been used in this scene.
func (s *Scene) NewHandle() Handle {
	s.next++
	return s.next
}

// Attach makes h visible.
func (s *Scene) Attach(h Handle) {
	s.present[h] = true
}

// Detach hides h.
func (s *Scene) Detach(h Handle) {
	delete(s.present, h)
}

// Present returns true if h is attached.
func (s *Scene) Present(h Handle) bool {
	return s.present[h]
}

// Len returns the number of attached handles.
func (s *Scene) Len() int {
	return len(s.present)
}

// Clear detaches everything. Handles keep increasing so stale ones never alias.
func (s *Scene) Clear() {
	s.present = make(map[Handle]bool)
}
