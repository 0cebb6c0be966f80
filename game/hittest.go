package game

// HitTester resolves pointer clicks against the arena's live targets.
// Coordinates are canvas-local; translating from window or page space
// is the input layer's job.
type HitTester struct {
	arena *Arena
}

// NewHitTester creates a hit-tester bound to an arena.
func NewHitTester(arena *Arena) *HitTester {
	return &HitTester{arena: arena}
}

// Hit resolves a click. The first target in spawn order whose rectangle
// contains the point (edges inclusive) is removed and scores one point;
// at most one target is removed per click even when rectangles overlap.
// Clicks after the game has ended, and clicks that hit nothing, change
// no state. Reports whether a target was hit.
func (h *HitTester) Hit(x, y float64) bool {
	if !h.arena.IsRunning() {
		return false
	}
	if h.arena.RemoveFirstMatch(func(t *Target) bool { return t.Rect.Contains(x, y) }) {
		h.arena.AwardPoint()
		return true
	}
	return false
}
