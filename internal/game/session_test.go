package game

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/samdwyer/gravewalk/internal/anim"
	"github.com/samdwyer/gravewalk/internal/entity"
	"github.com/samdwyer/gravewalk/internal/grid"
	"github.com/samdwyer/gravewalk/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(io.Discard, "error", "text")
	os.Exit(m.Run())
}

func newTestSession(t *testing.T, half int) *Session {
	t.Helper()
	s, err := New(context.Background(), Config{Seed: 1, HalfSize: half})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

// clearBoard removes every mob and prop, leaving only the hero.
func clearBoard(s *Session) {
	s.mobs = nil
	s.props = nil
	s.scene.Clear()
	s.scene.Attach(s.hero.Handle)
}

func placeZombie(s *Session, pos, dir grid.Vec) *entity.Zombie {
	z := entity.NewZombie(s.scene.NewHandle(), "Zombie", pos, dir)
	s.scene.Attach(z.Handle)
	s.mobs = append(s.mobs, z)
	return z
}

func placeProp(s *Session, pos grid.Vec) *entity.Prop {
	p := entity.NewProp(s.scene.NewHandle(), 1, pos, grid.Down)
	s.scene.Attach(p.Handle)
	s.props = append(s.props, p)
	return p
}

// finishRound completes the hero's action and the mobs turn that follows.
func finishRound(s *Session) {
	ctx := context.Background()
	s.anim.Flush()
	s.Tick(ctx, 0)
	s.anim.Flush()
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseHeroTurn, "hero_turn"},
		{PhaseMobsTurn, "mobs_turn"},
		{PhaseGameOver, "game_over"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestNewSessionLayout(t *testing.T) {
	s := newTestSession(t, 10)

	if s.Phase() != PhaseHeroTurn {
		t.Errorf("Phase() = %v, want hero_turn", s.Phase())
	}
	if s.Action() != 1 || s.Score() != 0 {
		t.Errorf("Action()=%d Score()=%d, want 1 and 0", s.Action(), s.Score())
	}
	if s.Hero().Position != grid.Origin || s.Hero().Direction != grid.Down {
		t.Errorf("hero at %v facing %v, want origin facing down", s.Hero().Position, s.Hero().Direction)
	}
	if s.LastKilledBy() != "mob" {
		t.Errorf("LastKilledBy() = %q, want %q", s.LastKilledBy(), "mob")
	}
	if s.ID() == "" {
		t.Error("ID() should not be empty")
	}
	if p := s.propAt(signpost); p == nil || p.Type != 0 {
		t.Errorf("expected type-0 signpost at %v", signpost)
	}

	n := len(s.Mobs())
	if n < 5 || n > 10 {
		t.Errorf("initial mob count = %d, want 5..10", n)
	}

	seen := map[grid.Vec]string{s.Hero().Position: "hero"}
	for _, p := range s.Props() {
		if !s.Bounds().Contains(p.Position) {
			t.Errorf("prop out of bounds at %v", p.Position)
		}
		if prev, ok := seen[p.Position]; ok {
			t.Errorf("prop at %v overlaps %s", p.Position, prev)
		}
		seen[p.Position] = "prop"
	}
	for _, m := range s.Mobs() {
		pos := m.Body().Position
		if !s.Bounds().Contains(pos) {
			t.Errorf("mob out of bounds at %v", pos)
		}
		if prev, ok := seen[pos]; ok {
			t.Errorf("mob at %v overlaps %s", pos, prev)
		}
		seen[pos] = "mob"
	}

	if want := len(s.Props()) + 1 + len(s.Mobs()); s.Scene().Len() != want {
		t.Errorf("Scene().Len() = %d, want %d", s.Scene().Len(), want)
	}
}

func TestSessionsWithSameSeedMatch(t *testing.T) {
	a := newTestSession(t, 8)
	b := newTestSession(t, 8)

	if len(a.Props()) != len(b.Props()) || len(a.Mobs()) != len(b.Mobs()) {
		t.Fatalf("layout mismatch: props %d/%d mobs %d/%d",
			len(a.Props()), len(b.Props()), len(a.Mobs()), len(b.Mobs()))
	}
	for i := range a.Mobs() {
		if a.Mobs()[i].Body().Position != b.Mobs()[i].Body().Position {
			t.Errorf("mob %d at %v vs %v", i, a.Mobs()[i].Body().Position, b.Mobs()[i].Body().Position)
		}
	}
}

func TestMoveOntoPropNeverMovesHero(t *testing.T) {
	s := newTestSession(t, 3)
	h := s.Bounds().HalfSize

	for y := -h; y <= h; y++ {
		for x := -h; x <= h; x++ {
			start := grid.Vec{X: x, Y: y}
			for _, dir := range grid.Directions {
				target := start.Add(dir)
				if !s.Bounds().Contains(target) {
					continue
				}
				clearBoard(s)
				s.hero.Position = start
				placeProp(s, target)
				action := s.Action()

				s.Move(context.Background(), dir)

				if s.Hero().Position != start {
					t.Fatalf("hero moved from %v into prop at %v", start, target)
				}
				if s.Action() != action || s.Phase() != PhaseHeroTurn {
					t.Fatalf("blocked move changed action %d->%d phase %v", action, s.Action(), s.Phase())
				}
			}
		}
	}
}

func TestMoveIgnoredOutsideHeroTurn(t *testing.T) {
	for _, phase := range []Phase{PhaseMobsTurn, PhaseGameOver} {
		s := newTestSession(t, 5)
		clearBoard(s)
		s.phase = phase

		s.Move(context.Background(), grid.Right)

		if s.Hero().Position != grid.Origin {
			t.Errorf("%v: hero moved to %v", phase, s.Hero().Position)
		}
		if s.Action() != 1 {
			t.Errorf("%v: Action() = %d, want 1", phase, s.Action())
		}
	}
}

func TestMoveOutOfBoundsIgnored(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	s.hero.Position = grid.Vec{X: 5, Y: 0}

	s.Move(context.Background(), grid.Right)

	if s.Hero().Position != (grid.Vec{X: 5, Y: 0}) || s.Action() != 1 {
		t.Errorf("out-of-bounds move changed hero=%v action=%d", s.Hero().Position, s.Action())
	}
}

func TestMoveOntoEmptyCell(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()

	s.Move(ctx, grid.Up)

	if s.Hero().Position != grid.Up {
		t.Errorf("hero at %v, want %v", s.Hero().Position, grid.Up)
	}
	if s.Action() != 2 {
		t.Errorf("Action() = %d, want 2", s.Action())
	}
	if s.Phase() != PhaseHeroTurn {
		t.Errorf("phase flipped before the animation finished")
	}

	// A second request while the first is in flight does nothing.
	s.Move(ctx, grid.Up)
	if s.Hero().Position != grid.Up || s.Action() != 2 {
		t.Errorf("overlapping move accepted: hero=%v action=%d", s.Hero().Position, s.Action())
	}

	s.anim.Flush()
	if s.Phase() != PhaseMobsTurn {
		t.Errorf("Phase() = %v, want mobs_turn", s.Phase())
	}

	s.Tick(ctx, 0)
	if s.Phase() != PhaseHeroTurn {
		t.Errorf("empty mobs turn should hand back at once, got %v", s.Phase())
	}
}

func TestZeroMovePassesTurn(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)

	s.Move(context.Background(), grid.Vec{})

	if s.Hero().Position != grid.Origin {
		t.Errorf("zero move changed hero to %v", s.Hero().Position)
	}
	if s.Phase() != PhaseMobsTurn {
		t.Errorf("Phase() = %v, want mobs_turn", s.Phase())
	}
	if s.Action() != 2 {
		t.Errorf("Action() = %d, want 2", s.Action())
	}
}

func TestAttackKillsMob(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()
	z := placeZombie(s, grid.Right, grid.Up)

	s.Move(ctx, grid.Right)

	if s.Hero().Position != grid.Origin {
		t.Errorf("attack moved hero to %v", s.Hero().Position)
	}
	if s.Hero().State() != entity.StateAttacking || s.Hero().Direction != grid.Right {
		t.Errorf("hero state=%v dir=%v, want attacking right", s.Hero().State(), s.Hero().Direction)
	}

	s.anim.Advance(anim.DefaultDurations[anim.KindAttack])
	if z.IsAlive() {
		t.Error("mob should be dying once the swing lands")
	}
	if len(s.Mobs()) != 1 || s.Phase() != PhaseHeroTurn {
		t.Errorf("mob removed before its death animation: mobs=%d phase=%v", len(s.Mobs()), s.Phase())
	}

	// The hero is idle again but the kill has not resolved yet.
	s.Move(ctx, grid.Right)
	if s.Action() != 2 {
		t.Errorf("Move during death animation accepted, Action() = %d", s.Action())
	}

	s.anim.Flush()
	if len(s.Mobs()) != 0 {
		t.Errorf("len(Mobs()) = %d, want 0", len(s.Mobs()))
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, want 1", s.Score())
	}
	if s.Phase() != PhaseMobsTurn {
		t.Errorf("Phase() = %v, want mobs_turn", s.Phase())
	}
	if s.Scene().Present(z.Handle) {
		t.Error("dead mob should be detached")
	}
}

func TestAttackSwapPopRemoval(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	a := placeZombie(s, grid.Right, grid.Up)
	b := placeZombie(s, grid.Vec{X: -4, Y: 4}, grid.Down)
	c := placeZombie(s, grid.Vec{X: 4, Y: -4}, grid.Up)

	s.Move(context.Background(), grid.Right)
	s.anim.Flush()

	mobs := s.Mobs()
	if len(mobs) != 2 {
		t.Fatalf("len(Mobs()) = %d, want 2", len(mobs))
	}
	if mobs[0] != entity.Mob(c) || mobs[1] != entity.Mob(b) {
		t.Errorf("Mobs() = [%v %v], want last mob swapped into slot 0", mobs[0].Body().Position, mobs[1].Body().Position)
	}
	for _, m := range mobs {
		if m == entity.Mob(a) {
			t.Error("killed mob still present")
		}
	}
}

func TestRemoveMobMiddle(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	a := placeZombie(s, grid.Vec{X: 1, Y: 5}, grid.Down)
	b := placeZombie(s, grid.Vec{X: 2, Y: 5}, grid.Down)
	c := placeZombie(s, grid.Vec{X: 3, Y: 5}, grid.Down)

	if !s.removeMob(b) {
		t.Fatal("removeMob() should find the mob")
	}
	if len(s.mobs) != 2 || s.mobs[0] != entity.Mob(a) || s.mobs[1] != entity.Mob(c) {
		t.Errorf("mobs after removing index 1 = %v", s.mobs)
	}
	if s.removeMob(b) {
		t.Error("removeMob() twice should report false")
	}
}

func TestWaveVariance(t *testing.T) {
	if got := waveVariance(10); got != 5+10.0/25 {
		t.Errorf("waveVariance(10) = %v, want %v", got, 5+10.0/25)
	}
	if got := waveVariance(50); got != 7 {
		t.Errorf("waveVariance(50) = %v, want 7", got)
	}
}

func TestEveryTenthActionSpawnsOneWave(t *testing.T) {
	s := newTestSession(t, 10)
	clearBoard(s)
	ctx := context.Background()

	waves := 0
	prev := 0
	for i := 0; i < 10; i++ {
		dir := grid.Right
		if i%2 == 1 {
			dir = grid.Left
		}
		s.Move(ctx, dir)
		if n := len(s.Mobs()); n > prev {
			waves++
			if added := n - prev; added < 5 || added > 10 {
				t.Errorf("wave added %d mobs, want 5..10", added)
			}
			if s.Action() != 10 {
				t.Errorf("wave spawned at action %d, want 10", s.Action())
			}
		}
		prev = len(s.Mobs())
		finishRound(s)
		if s.Phase() != PhaseHeroTurn {
			t.Fatalf("round %d ended in %v", i, s.Phase())
		}
	}

	if waves != 1 {
		t.Errorf("waves = %d, want exactly 1", waves)
	}
	if s.Action() != 11 {
		t.Errorf("Action() = %d, want 11", s.Action())
	}
}

func TestZombieWalksUpAndKillsHero(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()
	z := placeZombie(s, grid.Vec{Y: 3}, grid.Down)

	s.Move(ctx, grid.Vec{})
	finishRound(s)
	if z.Position != (grid.Vec{Y: 2}) {
		t.Fatalf("zombie at %v, want (0,2)", z.Position)
	}
	if s.Phase() != PhaseHeroTurn {
		t.Fatalf("Phase() = %v, want hero_turn", s.Phase())
	}

	s.Move(ctx, grid.Vec{})
	finishRound(s)
	if z.Position != (grid.Vec{Y: 1}) {
		t.Fatalf("zombie at %v, want (0,1)", z.Position)
	}

	s.Move(ctx, grid.Vec{})
	finishRound(s)

	if s.Hero().IsAlive() {
		t.Fatal("adjacent zombie should have killed the hero")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, want game_over", s.Phase())
	}
	if s.LastKilledBy() != "Zombie" {
		t.Errorf("LastKilledBy() = %q, want Zombie", s.LastKilledBy())
	}
	if s.Scene().Present(s.Hero().Handle) {
		t.Error("dead hero should be detached after its death animation")
	}

	action := s.Action()
	s.Move(ctx, grid.Left)
	s.Tick(ctx, time.Second)
	if s.Hero().Position != grid.Origin || s.Action() != action {
		t.Error("moves after death should be ignored")
	}
}

func TestCorneredHeroDiesOnce(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()
	first := placeZombie(s, grid.Right, grid.Left)
	placeZombie(s, grid.Left, grid.Right)

	s.Move(ctx, grid.Vec{})
	finishRound(s)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want game_over", s.Phase())
	}
	if s.LastKilledBy() != first.Name() {
		t.Errorf("LastKilledBy() = %q, want %q", s.LastKilledBy(), first.Name())
	}
	if s.Hero().Direction != grid.Down {
		t.Errorf("death changed hero facing to %v", s.Hero().Direction)
	}
}

func TestMobsTurnWaitsForEveryMob(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()
	walker := placeZombie(s, grid.Vec{Y: 4}, grid.Down)
	placeZombie(s, grid.Vec{X: 4}, grid.Up) // turns this round

	s.Move(ctx, grid.Vec{})
	s.Tick(ctx, 0)

	if s.Phase() != PhaseMobsTurn {
		t.Fatalf("phase returned to %v while a mob is still moving", s.Phase())
	}

	// Repeat runs in the same phase are ignored.
	s.RunMobsTurn(ctx)
	s.Tick(ctx, 0)
	if walker.Position != (grid.Vec{Y: 3}) {
		t.Errorf("walker at %v, want (0,3)", walker.Position)
	}

	s.anim.Flush()
	if s.Phase() != PhaseHeroTurn {
		t.Errorf("Phase() = %v, want hero_turn", s.Phase())
	}
}

func TestDeadMobsSkippedInMobsTurn(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()
	dead := placeZombie(s, grid.Right, grid.Left)
	dead.Die(grid.Left, s.anim, nil)
	s.anim.Flush()

	s.phase = PhaseMobsTurn
	s.RunMobsTurn(ctx)

	if !s.Hero().IsAlive() {
		t.Error("dead mob should not act")
	}
	if s.Phase() != PhaseHeroTurn {
		t.Errorf("Phase() = %v, want hero_turn", s.Phase())
	}
}

func TestClockStopsOnDeath(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()

	s.Tick(ctx, 2*time.Second)
	if s.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %s, want 2s", s.Elapsed())
	}

	placeZombie(s, grid.Up, grid.Down)
	s.Move(ctx, grid.Vec{})
	finishRound(s)

	s.Tick(ctx, time.Minute)
	if s.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %s after death, want 2s", s.Elapsed())
	}
}

func TestRestart(t *testing.T) {
	s := newTestSession(t, 5)
	clearBoard(s)
	ctx := context.Background()
	oldID := s.ID()
	oldHero := s.Hero()

	placeZombie(s, grid.Up, grid.Down)
	s.Move(ctx, grid.Vec{})
	finishRound(s)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("setup: Phase() = %v, want game_over", s.Phase())
	}

	s.Restart(ctx)

	if s.ID() == oldID {
		t.Error("Restart() should assign a new session ID")
	}
	if s.Hero() == oldHero || !s.Hero().IsAlive() {
		t.Error("Restart() should create a fresh hero")
	}
	if s.Phase() != PhaseHeroTurn || s.Score() != 0 || s.Action() != 1 {
		t.Errorf("after Restart phase=%v score=%d action=%d", s.Phase(), s.Score(), s.Action())
	}
	if s.LastKilledBy() != "mob" || s.Elapsed() != 0 {
		t.Errorf("after Restart killedBy=%q elapsed=%s", s.LastKilledBy(), s.Elapsed())
	}
	if !s.Scene().Present(s.Hero().Handle) {
		t.Error("new hero should be attached")
	}
}
