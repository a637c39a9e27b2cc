package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gravewalk/internal/entity"
	"github.com/samdwyer/gravewalk/internal/grid"
)

const (
	// spawnEvery is how many hero actions pass between reinforcement waves.
	spawnEvery = 10
	// waveMin is the smallest reinforcement wave.
	waveMin = 5
	// waveGrowth is how many actions add one mob of spread to each wave.
	waveGrowth = 25
)

// waveVariance is the random spread of a reinforcement wave at the given action count.
func waveVariance(action int) float64 {
	return waveMin + float64(action)/waveGrowth
}

// Move resolves one hero input. dir is a cardinal unit vector, or zero to
// pass the turn. Untimely or impossible requests are ignored.
func (s *Session) Move(ctx context.Context, dir grid.Vec) {
	if s.phase != PhaseHeroTurn || s.heroPending || !s.hero.IsAlive() || s.hero.IsMoving() {
		return
	}

	target := s.hero.Position.Add(dir)
	if !s.bounds.Contains(target) || s.propAt(target) != nil {
		return
	}

	s.action++
	if s.action%spawnEvery == 0 {
		s.SpawnMobs(waveMin, waveVariance(s.action))
	}

	if mob := s.mobAt(target); mob != nil {
		s.heroAttack(ctx, mob, dir)
		return
	}

	_, span := s.tracer.Start(ctx, "hero.move")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("action", s.action),
		attribute.Int("target_x", target.X),
		attribute.Int("target_y", target.Y),
	)
	span.End()

	s.heroPending = true
	s.hero.Move(dir, s.anim, s.endHeroTurn)
}

// heroAttack swings at mob, then plays its death, then removes it.
func (s *Session) heroAttack(ctx context.Context, mob entity.Mob, dir grid.Vec) {
	_, span := s.tracer.Start(ctx, "hero.attack")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("action", s.action),
		attribute.String("target", mob.Name()),
	)
	span.End()

	s.heroPending = true
	s.hero.Attack(dir, s.anim, func() {
		mob.Body().Die(dir, s.anim, func() {
			s.removeMob(mob)
			s.scene.Detach(mob.Body().Handle)
			s.score++
			s.log.WithFields(logrus.Fields{
				"mob":   mob.Name(),
				"score": s.score,
			}).Debug("Mob killed")
			s.endHeroTurn()
		})
	})
}

// removeMob drops m by moving the last mob into its slot.
func (s *Session) removeMob(m entity.Mob) bool {
	for i, other := range s.mobs {
		if other != m {
			continue
		}
		last := len(s.mobs) - 1
		s.mobs[i] = s.mobs[last]
		s.mobs[last] = nil
		s.mobs = s.mobs[:last]
		return true
	}
	return false
}

func (s *Session) endHeroTurn() {
	s.heroPending = false
	if s.phase == PhaseHeroTurn {
		s.phase = PhaseMobsTurn
		s.mobsStarted = false
	}
}

func (s *Session) beginHeroTurn() {
	if s.phase == PhaseMobsTurn {
		s.phase = PhaseHeroTurn
	}
}

// RunMobsTurn asks every living mob for one decision. The hero's turn starts
// again once each of them has reported back. Only the first run per mobs phase
// has any effect.
func (s *Session) RunMobsTurn(ctx context.Context) {
	if s.phase != PhaseMobsTurn || s.mobsStarted || !s.hero.IsAlive() {
		return
	}
	s.mobsStarted = true

	ctx, span := s.tracer.Start(ctx, "mobs.turn")
	defer span.End()

	live := len(s.mobs)
	for _, mob := range s.mobs {
		if !mob.Body().IsAlive() {
			live--
			continue
		}
		mob.TakeTurn(s, s.anim, func(hitHero bool) {
			if hitHero && s.hero.IsAlive() {
				s.resolveHeroDeath(ctx, mob)
				return
			}
			live--
			if live <= 0 {
				s.beginHeroTurn()
			}
		})
	}

	if live <= 0 {
		s.beginHeroTurn()
	}

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("mobs", len(s.mobs)),
		attribute.Int("pending", live),
	)
}

// resolveHeroDeath ends the run. killer is credited in LastKilledBy.
func (s *Session) resolveHeroDeath(ctx context.Context, killer entity.Mob) {
	_, span := s.tracer.Start(ctx, "hero.death")
	defer span.End()

	s.lastKilledBy = killer.Name()
	s.phase = PhaseGameOver

	hero := s.hero
	hero.Die(killer.Body().Direction, s.anim, func() {
		s.scene.Detach(hero.Handle)
	})
	s.clock.Stop()

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("killed_by", s.lastKilledBy),
		attribute.Int("score", s.score),
		attribute.Int("actions", s.action),
		attribute.Int64("survived_ms", s.clock.Elapsed().Milliseconds()),
	)
	s.log.WithFields(logrus.Fields{
		"killed_by": s.lastKilledBy,
		"score":     s.score,
		"elapsed":   s.clock.Elapsed().String(),
	}).Info("Hero died")
}
