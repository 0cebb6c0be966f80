package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestScheduler(cfg Config, seed int64, w, h float64) (*Arena, *SpawnScheduler) {
	arena := NewArena(cfg.InitialDifficulty)
	rng := rand.New(rand.NewSource(seed))
	bounds := func() (float64, float64) { return w, h }
	return arena, NewSpawnScheduler(arena, cfg, rng, bounds, SpriteEnemy)
}

// fireOnce advances by exactly the current delay, which triggers
// exactly one tick.
func fireOnce(s *SpawnScheduler) {
	s.Advance(s.Delay())
}

func TestFirstSpawnConsumesFullInitialDelay(t *testing.T) {
	cfg := DefaultConfig()
	arena, s := newTestScheduler(cfg, 1, 800, 600)

	s.Advance(999.0)
	if arena.TargetCount() != 0 {
		t.Fatalf("spawned %d targets before the initial delay elapsed", arena.TargetCount())
	}
	s.Advance(1.0)
	if arena.TargetCount() != 1 {
		t.Fatalf("TargetCount = %d after initial delay, want 1", arena.TargetCount())
	}
}

func TestInitialDelayScalesWithDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialDifficulty = 2.0
	arena, s := newTestScheduler(cfg, 1, 800, 600)

	if s.Delay() != 2000.0 {
		t.Fatalf("initial delay = %v, want 2000", s.Delay())
	}
	s.Advance(1999.0)
	if arena.TargetCount() != 0 {
		t.Fatal("spawned before the scaled initial delay elapsed")
	}
	s.Advance(1.0)
	if arena.TargetCount() != 1 {
		t.Fatal("no spawn after the scaled initial delay")
	}
}

func TestPlacementStaysWithinCanvas(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"exact fit", 50, 50},
		{"narrow", 100, 500},
		{"scenario canvas", 500, 500},
		{"default window", 800, 600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SpawnCap = 100
			arena, s := newTestScheduler(cfg, 42, tc.w, tc.h)

			for !s.Stopped() {
				fireOnce(s)
			}
			if arena.TargetCount() != cfg.SpawnCap {
				t.Fatalf("TargetCount = %d, want %d", arena.TargetCount(), cfg.SpawnCap)
			}
			for _, target := range arena.Targets() {
				r := target.Rect
				if r.X < 0 || r.X > tc.w-cfg.TargetWidth {
					t.Errorf("target %d x=%v outside [0, %v]", target.ID, r.X, tc.w-cfg.TargetWidth)
				}
				if r.Y < 0 || r.Y > tc.h-cfg.TargetHeight {
					t.Errorf("target %d y=%v outside [0, %v]", target.ID, r.Y, tc.h-cfg.TargetHeight)
				}
			}
		})
	}
}

func TestDelayDecaySequence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnCap = 1000
	arena, s := newTestScheduler(cfg, 7, 800, 600)

	// d0=1000 -> 980 -> 960.4 -> 941.192 after the first three spawns.
	want := []float64{980.0, 960.4, 941.192}
	for i, w := range want {
		fireOnce(s)
		if math.Abs(s.Delay()-w) > 1e-9 {
			t.Fatalf("delay after spawn %d = %v, want %v", i+1, s.Delay(), w)
		}
	}

	// Non-increasing all the way down, and the arena's difficulty
	// factor mirrors delay/base while the delay is still decaying.
	prev := s.Delay()
	for i := 0; i < 150; i++ {
		fireOnce(s)
		if s.Delay() > prev {
			t.Fatalf("delay increased from %v to %v", prev, s.Delay())
		}
		prev = s.Delay()
	}
	if got, want := arena.Difficulty(), s.Delay()/cfg.BaseDelayMillis; math.Abs(got-want) > 1e-9 {
		t.Errorf("difficulty = %v, want %v", got, want)
	}

	// By now one more decay step would cross the floor: the delay must
	// hold its last value >= 100 forever.
	final := s.Delay()
	if final <= cfg.MinDelayMillis {
		t.Fatalf("delay %v dropped to or below the %v floor", final, cfg.MinDelayMillis)
	}
	if final*cfg.DelayDecay > cfg.MinDelayMillis {
		t.Fatalf("delay %v still above the decay cutoff after 153 spawns", final)
	}
	for i := 0; i < 50; i++ {
		fireOnce(s)
		if s.Delay() != final {
			t.Fatalf("delay changed from %v to %v after reaching the floor", final, s.Delay())
		}
	}
}

func TestCapEndsGameAndLatchesForever(t *testing.T) {
	cfg := DefaultConfig()
	arena, s := newTestScheduler(cfg, 3, 800, 600)

	for i := 0; i < cfg.SpawnCap; i++ {
		fireOnce(s)
	}
	if arena.TargetCount() != cfg.SpawnCap {
		t.Fatalf("TargetCount = %d, want %d", arena.TargetCount(), cfg.SpawnCap)
	}
	if arena.IsRunning() {
		t.Fatal("arena still running at the spawn cap")
	}
	if !s.Stopped() {
		t.Fatal("scheduler did not cancel its recurrence at the cap")
	}

	// No further spawns regardless of how much time passes, and direct
	// spawn attempts are dropped.
	s.Advance(60 * 1000)
	if arena.TargetCount() != cfg.SpawnCap {
		t.Errorf("TargetCount = %d after end, want %d", arena.TargetCount(), cfg.SpawnCap)
	}
	if arena.Spawn(mustRect(t, 0, 0, 50, 50), SpriteEnemy) != nil {
		t.Error("Spawn accepted after game end")
	}
}

func TestExternalEndCancelsRecurrence(t *testing.T) {
	cfg := DefaultConfig()
	arena, s := newTestScheduler(cfg, 5, 800, 600)

	arena.End()
	s.Advance(5000)

	if arena.TargetCount() != 0 {
		t.Errorf("spawned %d targets after external end", arena.TargetCount())
	}
	if !s.Stopped() {
		t.Error("scheduler still armed after the arena ended")
	}
}

func TestBoundsQueriedFreshEachTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnCap = 100
	arena := NewArena(cfg.InitialDifficulty)
	rng := rand.New(rand.NewSource(11))

	w, h := 50.0, 50.0
	s := NewSpawnScheduler(arena, cfg, rng, func() (float64, float64) { return w, h }, SpriteEnemy)

	// On a canvas that exactly fits one target the only valid origin
	// is (0,0).
	fireOnce(s)
	if got := arena.Targets()[0].Rect; got.X != 0 || got.Y != 0 {
		t.Fatalf("spawn on exact-fit canvas at (%v,%v), want origin", got.X, got.Y)
	}

	// Grow the canvas; later ticks must see the new range.
	w, h = 1050.0, 1050.0
	spread := false
	for i := 0; i < 30; i++ {
		fireOnce(s)
		last := arena.Targets()[arena.TargetCount()-1].Rect
		if last.X > 50 || last.Y > 50 {
			spread = true
		}
		if last.X > 1000 || last.Y > 1000 {
			t.Fatalf("spawn at (%v,%v) outside the grown canvas range", last.X, last.Y)
		}
	}
	if !spread {
		t.Error("placement never used the grown canvas range")
	}
}

func TestUndersizedCanvasSkipsSpawnButKeepsRunning(t *testing.T) {
	cfg := DefaultConfig()
	arena, s := newTestScheduler(cfg, 9, 40, 40)

	s.Advance(3000)

	if arena.TargetCount() != 0 {
		t.Errorf("spawned %d targets on a canvas smaller than a target", arena.TargetCount())
	}
	if s.Stopped() || !arena.IsRunning() {
		t.Error("undersized canvas stopped the game")
	}
}

func TestLargeAdvanceFiresMultipleTicks(t *testing.T) {
	cfg := DefaultConfig()
	arena, s := newTestScheduler(cfg, 13, 800, 600)

	// 1000 + 980 + 960.4 fits three full delays inside 3000 ms.
	s.Advance(3000)
	if arena.TargetCount() != 3 {
		t.Errorf("TargetCount = %d after 3000 ms, want 3", arena.TargetCount())
	}
}
