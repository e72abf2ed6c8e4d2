package arcade

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"invaders/game"
)

// Particle is a single explosion fragment
type Particle struct {
	pos      game.Vec2 // world position
	vel      game.Vec2 // velocity vector
	age      float64   // age in seconds
	lifetime float64   // total lifetime in seconds
	color    color.NRGBA
	size     game.Vec2
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem spawns bursts for ExplosionSpawned events
type ParticleSystem struct {
	particles      []Particle
	maxParticles   int
	rng            *rand.Rand
	lifetimeMin    float64
	lifetimeMax    float64
	drag           float64 // fraction of velocity kept per second
	colorBase      color.NRGBA
	colorVariation color.NRGBA
}

// NewExplosionParticles creates the particle system used for every hit
func NewExplosionParticles(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   2000,
		rng:            rng,
		lifetimeMin:    0.3,
		lifetimeMax:    0.9,
		drag:           0.05,
		colorBase:      color.NRGBA{R: 255, G: 200, B: 60, A: 255},
		colorVariation: color.NRGBA{R: 0, G: 80, B: 60, A: 0},
	}
}

// Emit spawns one burst; particles beyond the cap are dropped
func (ps *ParticleSystem) Emit(ex game.Explosion) {
	for i := 0; i < ex.Count && len(ps.particles) < ps.maxParticles; i++ {
		// Full circle unless the burst names a spread
		spread := ex.Spread
		if spread <= 0 {
			spread = math.Pi
		}
		angle := math.Pi/2 + (ps.rng.Float64()*2-1)*spread
		speed := ps.rng.Float64() * ex.Speed

		lifetime := ps.lifetimeMin + ps.rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin)

		ps.particles = append(ps.particles, Particle{
			pos:      ex.Pos,
			vel:      game.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			lifetime: lifetime,
			color:    ps.varyColor(),
			size:     ex.Size,
		})
	}
}

func (ps *ParticleSystem) varyColor() color.NRGBA {
	vary := func(base, variation uint8) uint8 {
		v := float64(base) + (ps.rng.Float64()*2-1)*float64(variation)
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return color.NRGBA{
		R: vary(ps.colorBase.R, ps.colorVariation.R),
		G: vary(ps.colorBase.G, ps.colorVariation.G),
		B: vary(ps.colorBase.B, ps.colorVariation.B),
		A: ps.colorBase.A,
	}
}

// Update ages and moves every particle, removing the dead ones in place
func (ps *ParticleSystem) Update(dt float64) {
	keep := math.Pow(ps.drag, dt)
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		if !p.IsAlive() {
			continue
		}
		p.pos.X += p.vel.X * dt
		p.pos.Y += p.vel.Y * dt
		p.vel.X *= keep
		p.vel.Y *= keep
		live = append(live, p)
	}
	ps.particles = live
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops every particle
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Draw renders all particles, fading them out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image, cam *Camera) {
	for _, p := range ps.particles {
		if !cam.Visible(p.pos, 16) {
			continue
		}
		fade := 1.0 - p.age/p.lifetime
		fade = math.Max(0, math.Min(1, fade))
		clr := p.color
		clr.A = uint8(float64(clr.A) * fade)

		// Fragments shrink as they fade
		size := game.Vec2{X: p.size.X * (0.3 + 0.7*fade), Y: p.size.Y * (0.3 + 0.7*fade)}
		x, y, w, h := cam.RectToScreen(p.pos, size)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
	}
}
