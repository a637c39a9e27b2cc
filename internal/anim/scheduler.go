package anim

import (
	"time"

	"github.com/samdwyer/gravewalk/internal/grid"
)

// Durations maps transition kinds to their play time.
type Durations map[Kind]time.Duration

// DefaultDurations are tuned for a 60Hz terminal loop.
var DefaultDurations = Durations{
	KindMove:   180 * time.Millisecond,
	KindAttack: 240 * time.Millisecond,
	KindDeath:  450 * time.Millisecond,
}

type pending struct {
	kind      Kind
	handle    Handle
	vec       grid.Vec
	remaining time.Duration
	done      func()
}

// Scheduler is a tick-driven Animator.
type Scheduler struct {
	durations Durations
	pending   []*pending
}

// NewScheduler creates a scheduler. A nil durations map uses DefaultDurations.
func NewScheduler(durations Durations) *Scheduler {
	if durations == nil {
		durations = DefaultDurations
	}
	return &Scheduler{durations: durations}
}

// Play starts a transition. Rotations and zero-length kinds complete before Play returns.
func (s *Scheduler) Play(kind Kind, h Handle, v grid.Vec, onComplete func()) {
	d := s.durations[kind]
	if kind == KindRotate || d <= 0 {
		if onComplete != nil {
			onComplete()
		}
		return
	}
	s.pending = append(s.pending, &pending{
		kind:      kind,
		handle:    h,
		vec:       v,
		remaining: d,
		done:      onComplete,
	})
}

// Advance moves every in-flight transition forward by dt and fires the ones
// that finished, in the order they were started. Transitions started by those
// callbacks begin on the next Advance. Returns the number fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if len(s.pending) == 0 {
		return 0
	}

	current := s.pending
	s.pending = nil

	var due []*pending
	kept := make([]*pending, 0, len(current))
	for _, p := range current {
		p.remaining -= dt
		if p.remaining <= 0 {
			due = append(due, p)
		} else {
			kept = append(kept, p)
		}
	}
	s.pending = kept

	for _, p := range due {
		if p.done != nil {
			p.done()
		}
	}
	return len(due)
}

// Flush completes everything in flight, including transitions chained from
// completion callbacks.
func (s *Scheduler) Flush() {
	for len(s.pending) > 0 {
		var longest time.Duration
		for _, p := range s.pending {
			if p.remaining > longest {
				longest = p.remaining
			}
		}
		s.Advance(longest)
	}
}

// Reset drops every in-flight transition without firing it.
func (s *Scheduler) Reset() {
	s.pending = nil
}

// Pending returns the number of transitions in flight.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Active reports the kind of the first in-flight transition for h.
func (s *Scheduler) Active(h Handle) (Kind, bool) {
	for _, p := range s.pending {
		if p.handle == h {
			return p.kind, true
		}
	}
	return 0, false
}

var _ Animator = (*Scheduler)(nil)
