package arcade

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"invaders/game"
)

type star struct {
	pos   game.Vec2
	speed float64 // world units per second, nearer stars are faster
}

// StarField is the slow parallax backdrop
type StarField struct {
	stars  []star
	width  float64
	height float64
}

// NewStarField scatters count stars over the scene
func NewStarField(rng *rand.Rand, cfg game.Config, count int) *StarField {
	sf := &StarField{width: cfg.SceneWidth * 2, height: cfg.SceneHeight * 2}
	for i := 0; i < count; i++ {
		sf.stars = append(sf.stars, star{
			pos: game.Vec2{
				X: (rng.Float64() - 0.5) * sf.width,
				Y: (rng.Float64() - 0.5) * sf.height,
			},
			speed: 5 + rng.Float64()*25,
		})
	}
	return sf
}

// Update drifts the stars down, wrapping at the bottom of the scene
func (sf *StarField) Update(dt float64) {
	half := sf.height / 2
	for i := range sf.stars {
		sf.stars[i].pos.Y -= sf.stars[i].speed * dt
		if sf.stars[i].pos.Y < -half {
			sf.stars[i].pos.Y += sf.height
		}
	}
}

// Draw plots each star with a brightness that follows its speed
func (sf *StarField) Draw(screen *ebiten.Image, cam *Camera) {
	for _, s := range sf.stars {
		x, y := cam.WorldToScreen(s.pos.X, s.pos.Y)
		v := uint8(60 + s.speed*6)
		vector.DrawFilledRect(screen, float32(x), float32(y), 2, 2, color.RGBA{v, v, v, 255}, false)
	}
}
