package game

// Arena is the aggregate root of a running game: the live targets in
// spawn order, the score, the current difficulty factor, and the
// running flag. The running flag flips one way; there is no restart.
//
// All mutation happens on the Ebiten update pass, which is a single
// serialized event loop, so the arena carries no lock. A host that
// drives it from parallel goroutines must add its own synchronization.
type Arena struct {
	targets    []*Target
	nextID     int64
	score      int
	difficulty float64
	running    bool
}

// NewArena creates an empty, running arena with the given initial
// difficulty factor.
func NewArena(difficulty float64) *Arena {
	return &Arena{
		targets:    make([]*Target, 0, 32),
		nextID:     1,
		difficulty: difficulty,
		running:    true,
	}
}

// Spawn appends a new target with the next ID and returns it. Spawn
// attempts after the game has ended are dropped and return nil; that is
// the documented behavior for a scheduler tick racing the end of the
// game, not an error.
func (a *Arena) Spawn(rect Rect, asset string) *Target {
	if !a.running {
		return nil
	}
	t := &Target{ID: a.nextID, Rect: rect, Asset: asset}
	a.nextID++
	a.targets = append(a.targets, t)
	return t
}

// RemoveFirstMatch scans the live targets in spawn order, removes the
// first one satisfying pred, and reports whether a removal happened.
// Oldest-first resolution is what makes overlapping targets
// deterministic: the earliest spawn wins the click.
func (a *Arena) RemoveFirstMatch(pred func(*Target) bool) bool {
	for i, t := range a.targets {
		if pred(t) {
			a.targets = append(a.targets[:i], a.targets[i+1:]...)
			return true
		}
	}
	return false
}

// AwardPoint increments the score by exactly one. There is no cap.
func (a *Arena) AwardPoint() {
	a.score++
}

// End stops the game. Idempotent.
func (a *Arena) End() {
	a.running = false
}

// SetDifficulty replaces the difficulty factor. The spawn scheduler
// calls this as the inter-spawn delay decays.
func (a *Arena) SetDifficulty(d float64) {
	a.difficulty = d
}

// Score returns the current score.
func (a *Arena) Score() int {
	return a.score
}

// Difficulty returns the current difficulty factor.
func (a *Arena) Difficulty() float64 {
	return a.difficulty
}

// IsRunning reports whether the game is still accepting spawns and hits.
func (a *Arena) IsRunning() bool {
	return a.running
}

// TargetCount returns the number of live targets.
func (a *Arena) TargetCount() int {
	return len(a.targets)
}

// Targets returns the live targets in spawn order. The slice is shared
// with the arena; callers read it and must not mutate it.
func (a *Arena) Targets() []*Target {
	return a.targets
}
