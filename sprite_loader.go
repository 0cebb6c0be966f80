package main

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/enemy.svg
var enemySVGData []byte

var (
	enemySprite       *ebiten.Image
	enemySpriteWidth  = 50
	enemySpriteHeight = 50
)

// initSprites loads and converts SVG assets to PNG sprites
func initSprites() error {
	enemyPNG, err := svgToPNG(enemySVGData, enemySpriteWidth, enemySpriteHeight)
	if err != nil {
		return err
	}

	enemySprite = ebiten.NewImageFromImage(enemyPNG)

	// Optionally save PNG for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(enemyPNG, "debug_enemy.png")
	}

	return nil
}

// svgToPNG converts SVG data to a PNG image
func svgToPNG(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG saves a PNG image for debugging purposes
func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
