package game

import (
	"math/rand"
)

// BoundsFunc reports the current canvas size in pixels. The scheduler
// queries it fresh on every tick, so a window resize changes the
// placement range immediately.
type BoundsFunc func() (w, h float64)

// SpawnScheduler is a cancellable, self-rearming spawn task. The delay
// between spawns shrinks geometrically after every spawn until it would
// cross the floor, so this is a variable-rate process: each tick re-arms
// itself with the possibly shorter delay. A fixed-period timer cannot
// express that.
//
// It is advanced from the host update loop via Advance rather than by
// its own goroutine, which keeps every mutation of the arena on the one
// serialized event loop.
type SpawnScheduler struct {
	arena  *Arena
	cfg    Config
	rng    *rand.Rand
	bounds BoundsFunc
	asset  string

	delay   float64 // current inter-spawn delay in milliseconds
	elapsed float64 // time accumulated toward the next tick
	stopped bool
}

// NewSpawnScheduler creates a scheduler whose first tick fires after
// BaseDelayMillis scaled by the arena's initial difficulty, so the game
// starts empty and the first target appears after one full delay.
func NewSpawnScheduler(arena *Arena, cfg Config, rng *rand.Rand, bounds BoundsFunc, asset string) *SpawnScheduler {
	return &SpawnScheduler{
		arena:  arena,
		cfg:    cfg,
		rng:    rng,
		bounds: bounds,
		asset:  asset,
		delay:  cfg.BaseDelayMillis * arena.Difficulty(),
	}
}

// Delay returns the current inter-spawn delay in milliseconds.
func (s *SpawnScheduler) Delay() float64 {
	return s.delay
}

// Stopped reports whether the recurrence has been cancelled. Once
// stopped, the scheduler never fires again.
func (s *SpawnScheduler) Stopped() bool {
	return s.stopped
}

// Advance accumulates host time in milliseconds and fires the spawn
// tick each time the current delay has fully elapsed. A large dt can
// fire several ticks; the leftover time carries into the next delay.
func (s *SpawnScheduler) Advance(dt float64) {
	if s.stopped {
		return
	}
	s.elapsed += dt
	for !s.stopped && s.elapsed >= s.delay {
		s.elapsed -= s.delay
		s.tick()
	}
}

// tick is a single firing of the recurring spawn action.
func (s *SpawnScheduler) tick() {
	if !s.arena.IsRunning() {
		// The game ended between ticks: cancel the recurrence.
		s.stopped = true
		return
	}

	w, h := s.bounds()
	maxX := w - s.cfg.TargetWidth
	maxY := h - s.cfg.TargetHeight
	if maxX < 0 || maxY < 0 {
		// Canvas currently smaller than a target (mid-resize). Skip
		// this spawn; the next tick queries fresh bounds.
		return
	}

	rect, err := NewRect(s.rng.Float64()*maxX, s.rng.Float64()*maxY, s.cfg.TargetWidth, s.cfg.TargetHeight)
	if err != nil {
		// The origin is derived from validated bounds and a [0,1)
		// sample; an error here is a scheduler bug, not a game state.
		panic(err)
	}
	s.arena.Spawn(rect, s.asset)

	// Geometric decay toward the floor: the delay keeps its last value
	// once one more step would cross MinDelayMillis.
	if next := s.delay * s.cfg.DelayDecay; next > s.cfg.MinDelayMillis {
		s.delay = next
		s.arena.SetDifficulty(s.delay / s.cfg.BaseDelayMillis)
	}

	if s.arena.TargetCount() >= s.cfg.SpawnCap {
		s.arena.End()
		s.stopped = true
	}
}
