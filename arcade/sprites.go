package arcade

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"invaders/game"
)

var (
	//go:embed assets/player.svg
	playerSVG []byte

	//go:embed assets/alien_a.svg
	alienASVG []byte

	//go:embed assets/alien_b.svg
	alienBSVG []byte
)

// Sprites holds the rasterized scene images; nil entries fall back to rectangles
type Sprites struct {
	Player *ebiten.Image
	Aliens [2]*ebiten.Image
}

// LoadSprites rasterizes the embedded SVGs at their on-screen size
func LoadSprites(cfg game.Config, zoom float64) (*Sprites, error) {
	pw, ph := int(cfg.PlayerSize.X*zoom), int(cfg.PlayerSize.Y*zoom)
	aw, ah := int(cfg.AlienSize.X*zoom), int(cfg.AlienSize.Y*zoom)

	player, err := svgToPNG(playerSVG, pw, ph)
	if err != nil {
		return nil, fmt.Errorf("player sprite: %w", err)
	}
	alienA, err := svgToPNG(alienASVG, aw, ah)
	if err != nil {
		return nil, fmt.Errorf("alien sprite: %w", err)
	}
	alienB, err := svgToPNG(alienBSVG, aw, ah)
	if err != nil {
		return nil, fmt.Errorf("alien sprite: %w", err)
	}

	// Optionally save PNGs for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(player, "debug_player.png")
		saveDebugPNG(alienA, "debug_alien_a.png")
		saveDebugPNG(alienB, "debug_alien_b.png")
	}

	return &Sprites{
		Player: ebiten.NewImageFromImage(player),
		Aliens: [2]*ebiten.Image{
			ebiten.NewImageFromImage(alienA),
			ebiten.NewImageFromImage(alienB),
		},
	}, nil
}

// Alien returns the pose for an animation frame
func (s *Sprites) Alien(frame int) *ebiten.Image {
	return s.Aliens[(frame/2)%len(s.Aliens)]
}

// svgToPNG converts SVG data to an RGBA image of the given size
func svgToPNG(svgData []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid sprite size %dx%d", width, height)
	}

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

	if err := png.Encode(f, img); err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
