package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/entity"
	"github.com/samdwyer/gravewalk/internal/gamedata"
	"github.com/samdwyer/gravewalk/internal/grid"
	"github.com/samdwyer/gravewalk/internal/logger"
	"github.com/samdwyer/gravewalk/internal/telemetry"
)

const (
	// defaultKiller is reported when the hero died to an unnamed mob.
	defaultKiller = "mob"
	// zombieID is the mob catalog entry every spawn uses.
	zombieID = "zombie"
)

// signpost is the fixed prop every session starts with, just below the hero.
var signpost = grid.Vec{X: 0, Y: -1}

// Session holds the state of one run, from spawn until the hero dies.
// It is not safe for concurrent use; the game loop owns it.
type Session struct {
	id      string
	cfg     Config
	bounds  grid.Bounds
	rng     *rand.Rand
	catalog *gamedata.PropRegistry
	zombie  *gamedata.MobDef
	anim    *anim.Scheduler
	scene   *anim.Scene
	tracer  trace.Tracer
	log     *logrus.Entry

	hero      *entity.Hero
	mobs      []entity.Mob
	props     []*entity.Prop
	propCells *grid.Occupancy

	action       int
	score        int
	phase        Phase
	heroPending  bool // Accepted hero action still animating
	mobsStarted  bool // Mob decisions already issued for this phase
	lastKilledBy string
	clock        Clock
}

// New creates a session and sets up the first scene.
func New(ctx context.Context, cfg Config) (*Session, error) {
	catalog, err := gamedata.LoadPropRegistry()
	if err != nil {
		return nil, fmt.Errorf("load props: %w", err)
	}
	mobs, err := gamedata.LoadMobRegistry()
	if err != nil {
		return nil, fmt.Errorf("load mobs: %w", err)
	}
	zombie := mobs.GetByID(zombieID)
	if zombie == nil {
		return nil, fmt.Errorf("mob catalog has no %q entry", zombieID)
	}

	if cfg.HalfSize <= 0 {
		cfg.HalfSize = DefaultHalfSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		bounds:  grid.NewBounds(cfg.HalfSize),
		rng:     rand.New(rand.NewSource(seed)),
		catalog: catalog,
		zombie:  zombie,
		anim:    anim.NewScheduler(cfg.Animations),
		scene:   anim.NewScene(),
		tracer:  telemetry.Tracer("game"),
	}
	s.initScene(ctx)
	return s, nil
}

// initScene discards all entities and lays out a fresh board.
func (s *Session) initScene(ctx context.Context) {
	s.id = uuid.New().String()
	s.log = logger.Log.WithField("session_id", s.id)

	_, span := s.tracer.Start(ctx, "session.init")
	defer span.End()

	s.anim.Reset()
	s.scene.Clear()

	s.action = 1
	s.score = 0
	s.phase = PhaseHeroTurn
	s.heroPending = false
	s.mobsStarted = false
	s.lastKilledBy = defaultKiller

	sign := entity.NewProp(s.scene.NewHandle(), 0, signpost, grid.Vec{})
	s.scene.Attach(sign.Handle)
	s.props = []*entity.Prop{sign}

	s.hero = entity.NewHero(s.scene.NewHandle())
	s.scene.Attach(s.hero.Handle)

	s.mobs = nil
	s.SpawnProps(30, 20)
	s.SpawnMobs(5, 5)

	s.clock.Start()

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("grid.half_size", s.bounds.HalfSize),
		attribute.Int("props", len(s.props)),
		attribute.Int("mobs", len(s.mobs)),
	)
	s.log.WithFields(logrus.Fields{
		"props": len(s.props),
		"mobs":  len(s.mobs),
	}).Info("Session started")
}

// Restart throws the current run away and starts a new one.
func (s *Session) Restart(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.restart")
	span.SetAttributes(
		attribute.String("session.previous_id", s.id),
		attribute.Int("score", s.score),
		attribute.String("phase", s.phase.String()),
	)
	defer span.End()

	s.log.WithField("score", s.score).Info("Session restarted")
	s.initScene(ctx)
}

// Tick advances the session by dt: clock, animations, then the mobs turn if due.
func (s *Session) Tick(ctx context.Context, dt time.Duration) {
	s.clock.Advance(dt)
	s.anim.Advance(dt)

	if s.phase == PhaseMobsTurn && !s.mobsStarted && s.hero.IsAlive() {
		s.RunMobsTurn(ctx)
	}
}

// =============================================================================
// entity.World implementation
// =============================================================================

// Bounds returns the grid extent.
func (s *Session) Bounds() grid.Bounds { return s.bounds }

// HeroPosition returns the hero's cell.
func (s *Session) HeroPosition() grid.Vec { return s.hero.Position }

// Blocked returns true if any mob or prop stands on c.
func (s *Session) Blocked(c grid.Vec) bool {
	return s.mobAt(c) != nil || s.propAt(c) != nil
}

func (s *Session) mobAt(c grid.Vec) entity.Mob {
	for _, m := range s.mobs {
		if m.Body().Position == c {
			return m
		}
	}
	return nil
}

func (s *Session) propAt(c grid.Vec) *entity.Prop {
	for _, p := range s.props {
		if p.Position == c {
			return p
		}
	}
	return nil
}

var _ entity.World = (*Session)(nil)

// =============================================================================
// Read accessors
// =============================================================================

// ID returns the run's unique identifier.
func (s *Session) ID() string { return s.id }

// Hero returns the hero.
func (s *Session) Hero() *entity.Hero { return s.hero }

// Mobs returns the live mob collection. Callers must not modify it.
func (s *Session) Mobs() []entity.Mob { return s.mobs }

// Props returns the props on the board. Callers must not modify it.
func (s *Session) Props() []*entity.Prop { return s.props }

// Score returns the number of mobs the hero has killed.
func (s *Session) Score() int { return s.score }

// Action returns the resolved hero action counter.
func (s *Session) Action() int { return s.action }

// Phase returns whose turn it is.
func (s *Session) Phase() Phase { return s.phase }

// LastKilledBy names the mob that killed the hero.
func (s *Session) LastKilledBy() string { return s.lastKilledBy }

// Elapsed returns the session clock.
func (s *Session) Elapsed() time.Duration { return s.clock.Elapsed() }

// Scene returns the visibility table.
func (s *Session) Scene() *anim.Scene { return s.scene }

// Animating reports the transition in flight for h, if any.
func (s *Session) Animating(h anim.Handle) (anim.Kind, bool) {
	return s.anim.Active(h)
}
