package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the arena, the spawn scheduler, and the hit-tester to the
// Ebiten loop. Update and Draw run on the engine's single update
// goroutine, so every arena mutation stays serialized.
type Game struct {
	arena     *Arena
	scheduler *SpawnScheduler
	hitTester *HitTester
	renderer  *Renderer
	config    Config

	// Current canvas size; tracks window resizes via Layout
	canvasW int
	canvasH int

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(config Config, rng *rand.Rand, renderer *Renderer) *Game {
	arena := NewArena(config.InitialDifficulty)
	g := &Game{
		arena:          arena,
		renderer:       renderer,
		config:         config,
		canvasW:        config.ScreenWidth,
		canvasH:        config.ScreenHeight,
		lastUpdateTime: time.Now(),
	}
	g.scheduler = NewSpawnScheduler(arena, config, rng, g.canvasBounds, SpriteEnemy)
	g.hitTester = NewHitTester(arena)
	return g
}

// canvasBounds reports the live canvas size for target placement.
func (g *Game) canvasBounds() (float64, float64) {
	return float64(g.canvasW), float64(g.canvasH)
}

// Update updates the game state
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// CursorPosition is already canvas-local in Ebiten's logical
		// coordinate space, the same space targets are placed in.
		cx, cy := ebiten.CursorPosition()
		g.hitTester.Hit(float64(cx), float64(cy))
	}

	// The scheduler's time base is milliseconds.
	g.scheduler.Advance(deltaTime * 1000.0)

	return nil
}

// Draw renders the current arena state
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.arena)
}

// Layout returns the game's logical screen size. It follows the window
// size so the placement range grows and shrinks with the canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvasW = outsideWidth
	g.canvasH = outsideHeight
	return outsideWidth, outsideHeight
}
