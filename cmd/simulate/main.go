package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"clickstorm/game"
)

// Headless run of the core: drives the spawn scheduler with a fixed
// time step until the target cap ends the game, printing each spawn
// with its delay and difficulty. Useful for eyeballing the difficulty
// curve without a display.
func main() {
	seed := flag.Int64("seed", 1, "rng seed for target placement")
	width := flag.Float64("width", 800, "canvas width in pixels")
	height := flag.Float64("height", 600, "canvas height in pixels")
	flag.Parse()

	config := game.DefaultConfig()
	arena := game.NewArena(config.InitialDifficulty)
	rng := rand.New(rand.NewSource(*seed))
	bounds := func() (float64, float64) { return *width, *height }
	scheduler := game.NewSpawnScheduler(arena, config, rng, bounds, game.SpriteEnemy)

	log.Printf("Simulating %vx%v canvas, seed %d", *width, *height, *seed)

	const step = 10.0 // milliseconds per simulation step
	elapsed := 0.0
	seen := 0
	for !scheduler.Stopped() {
		scheduler.Advance(step)
		elapsed += step

		for _, t := range arena.Targets()[seen:] {
			seen++
			fmt.Printf("%9.0f ms  spawn #%-3d at (%6.1f, %6.1f)  delay %7.1f ms  difficulty %.4f\n",
				elapsed, seen, t.Rect.X, t.Rect.Y, scheduler.Delay(), arena.Difficulty())
		}

		if elapsed > 10*60*1000 {
			log.Fatal("simulation did not terminate within 10 minutes of game time")
		}
	}

	fmt.Printf("game over after %.1f s: %d live targets, final difficulty %.4f\n",
		elapsed/1000.0, arena.TargetCount(), arena.Difficulty())
}
