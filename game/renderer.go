package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// SpriteEnemy is the sprite key carried by spawned targets.
const SpriteEnemy = "enemy"

var (
	colorBackground = color.NRGBA{R: 16, G: 18, B: 30, A: 255}
	colorHUD        = color.NRGBA{R: 230, G: 232, B: 240, A: 255}
	colorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	colorFallback   = color.NRGBA{R: 200, G: 60, B: 60, A: 255}
)

// Renderer paints the arena state each frame: one sprite per live
// target, the score HUD, and the end screen once the game is over. It
// only reads the arena; all mutation belongs to the scheduler and the
// hit-tester.
type Renderer struct {
	sprites map[string]*ebiten.Image
	hudFace font.Face
	bigFace font.Face
}

// NewRenderer creates a renderer with an empty sprite registry and the
// HUD font faces ready.
func NewRenderer() (*Renderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	hudFace, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create hud face: %w", err)
	}
	bigFace, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 42, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create title face: %w", err)
	}
	return &Renderer{
		sprites: make(map[string]*ebiten.Image),
		hudFace: hudFace,
		bigFace: bigFace,
	}, nil
}

// RegisterSprite binds an image to a sprite key. Targets whose asset
// key has no registered sprite are drawn as flat rectangles.
func (r *Renderer) RegisterSprite(name string, img *ebiten.Image) {
	r.sprites[name] = img
}

// Render paints one frame of the arena
func (r *Renderer) Render(screen *ebiten.Image, arena *Arena) {
	screen.Fill(colorBackground)

	for _, t := range arena.Targets() {
		r.renderTarget(screen, t)
	}

	hud := fmt.Sprintf("Score: %d   Targets: %d", arena.Score(), arena.TargetCount())
	text.Draw(screen, hud, r.hudFace, 12, 26, colorHUD)

	if !arena.IsRunning() {
		r.renderGameOver(screen, arena)
	}
}

// renderTarget draws one target, scaling its sprite to the hit
// rectangle so pixels and hitbox always agree.
func (r *Renderer) renderTarget(screen *ebiten.Image, t *Target) {
	sprite := r.sprites[t.Asset]
	if sprite == nil {
		vector.DrawFilledRect(screen, float32(t.Rect.X), float32(t.Rect.Y), float32(t.Rect.W), float32(t.Rect.H), colorFallback, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	bounds := sprite.Bounds()
	op.GeoM.Scale(t.Rect.W/float64(bounds.Dx()), t.Rect.H/float64(bounds.Dy()))
	op.GeoM.Translate(t.Rect.X, t.Rect.Y)
	screen.DrawImage(sprite, op)
}

// renderGameOver dims the frame and shows the final score.
func (r *Renderer) renderGameOver(screen *ebiten.Image, arena *Arena) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	title := "GAME OVER"
	final := fmt.Sprintf("Final score: %d", arena.Score())

	tb := text.BoundString(r.bigFace, title)
	text.Draw(screen, title, r.bigFace, (w-tb.Dx())/2, h/2-12, colorHUD)

	fb := text.BoundString(r.hudFace, final)
	text.Draw(screen, final, r.hudFace, (w-fb.Dx())/2, h/2+28, colorHUD)
}
