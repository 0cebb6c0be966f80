package game

// Target is a live enemy: a hit rectangle plus the sprite key the
// renderer resolves to draw it. The game logic never interprets the key.
// IDs are assigned by the arena at spawn time and strictly increase, so
// spawn order can always be recovered from them.
type Target struct {
	ID    int64
	Rect  Rect
	Asset string
}
