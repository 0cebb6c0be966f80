package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"clickstorm/game"
)

func main() {
	config := game.DefaultConfig()

	if err := initSprites(); err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	renderer, err := game.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	renderer.RegisterSprite(game.SpriteEnemy, enemySprite)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.NewGame(config, rng, renderer)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Click Storm")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
