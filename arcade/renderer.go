package arcade

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"invaders/game"
)

var (
	colorPlayer = color.RGBA{60, 255, 90, 255}
	colorAlien  = color.RGBA{240, 240, 255, 255}
	colorLazer  = color.RGBA{120, 220, 255, 255}
	colorBullet = color.RGBA{255, 90, 60, 255}

	// Bunker cells darken with each hit
	colorCells = [...]color.RGBA{
		{60, 255, 90, 255},
		{40, 180, 60, 255},
		{25, 110, 40, 255},
	}
)

// Renderer draws a snapshot of the scene
type Renderer struct {
	camera  *Camera
	sprites *Sprites
	cfg     game.Config
}

// NewRenderer creates a renderer; sprites may be nil
func NewRenderer(camera *Camera, sprites *Sprites, cfg game.Config) *Renderer {
	return &Renderer{
		camera:  camera,
		sprites: sprites,
		cfg:     cfg,
	}
}

// Render draws every live entity in the snapshot
func (r *Renderer) Render(screen *ebiten.Image, snap *game.Snapshot) {
	for _, c := range snap.Cells {
		clr := colorCells[len(colorCells)-1]
		if int(c.Damage) < len(colorCells) {
			clr = colorCells[c.Damage]
		}
		r.fillBox(screen, c.Pos, r.cfg.BunkerCellSize, clr)
	}

	for _, pos := range snap.Aliens {
		if r.sprites != nil {
			r.drawSprite(screen, r.sprites.Alien(snap.AlienFrame), pos, r.cfg.AlienSize)
			continue
		}
		r.fillBox(screen, pos, r.cfg.AlienSize, colorAlien)
	}

	if snap.PlayerVisible && snap.State.InGame() {
		if r.sprites != nil {
			r.drawSprite(screen, r.sprites.Player, snap.Player, r.cfg.PlayerSize)
		} else {
			r.fillBox(screen, snap.Player, r.cfg.PlayerSize, colorPlayer)
		}
	}

	if snap.Lazer == game.LazerFired {
		r.fillBox(screen, snap.LazerPos, r.cfg.LazerSize, colorLazer)
	}

	for _, pos := range snap.Bullets {
		r.fillBox(screen, pos, r.cfg.BulletSize, colorBullet)
	}
}

// fillBox draws a centered world box as a filled rectangle
func (r *Renderer) fillBox(screen *ebiten.Image, pos, size game.Vec2, clr color.Color) {
	if !r.camera.Visible(pos, size.X+size.Y) {
		return
	}
	x, y, w, h := r.camera.RectToScreen(pos, size)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// drawSprite draws an image so that it covers a centered world box
func (r *Renderer) drawSprite(screen *ebiten.Image, img *ebiten.Image, pos, size game.Vec2) {
	x, y, w, h := r.camera.RectToScreen(pos, size)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
