// Package arcade hosts the simulation in an ebiten window: it turns keyboard
// and gamepad state into intents, steps the game once per update and draws
// the resulting snapshot with sprites, particles and a HUD.
package arcade

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders/autopilot"
	"invaders/game"
	"invaders/sound"
)

// Logical screen size; ebiten scales it to the window
const (
	ScreenWidth  = 1440
	ScreenHeight = 1080
)

// maxDeltaTime bounds a single step after a stall
const maxDeltaTime = 0.1

// Options wires the optional collaborators of the App
type Options struct {
	Pilot       *autopilot.Pilot // drives the game instead of the keyboard when set
	Sound       *sound.Manager
	ProfilesDir string // empty disables FPS-drop profiling
	Seed        int64
}

// App implements ebiten.Game around a game.Game
type App struct {
	game      *game.Game
	cfg       game.Config
	pilot     *autopilot.Pilot
	sound     *sound.Manager
	profiler  *Profiler
	camera    *Camera
	renderer  *Renderer
	particles *ParticleSystem
	stars     *StarField
	hud       *HUD

	snap       game.Snapshot
	gamepads   []ebiten.GamepadID
	lastUpdate time.Time
}

// NewApp prepares the window resources for g
func NewApp(g *game.Game, opts Options) *App {
	cfg := g.Config()
	rng := rand.New(rand.NewSource(opts.Seed))

	camera := NewCamera(ScreenWidth, ScreenHeight)
	camera.FitScene(cfg, 40)

	sprites, err := LoadSprites(cfg, camera.Zoom)
	if err != nil {
		log.Printf("Failed to load sprites, drawing boxes: %v", err)
	}

	a := &App{
		game:      g,
		cfg:       cfg,
		pilot:     opts.Pilot,
		sound:     opts.Sound,
		camera:    camera,
		renderer:  NewRenderer(camera, sprites, cfg),
		particles: NewExplosionParticles(rng),
		stars:     NewStarField(rng, cfg, 150),
		hud:       NewHUD(),
		snap:      g.Snapshot(),
	}
	if opts.ProfilesDir != "" {
		a.profiler = NewProfiler(opts.ProfilesDir, 30)
	}
	return a
}

// Update advances the game by the wall time since the previous update
func (a *App) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !a.lastUpdate.IsZero() {
		dt = now.Sub(a.lastUpdate).Seconds()
	}
	a.lastUpdate = now
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.handleToggles()

	for _, e := range a.intents(dt) {
		a.game.Push(e)
	}
	a.game.Tick(dt)

	events := a.game.DrainEvents()
	for _, e := range events {
		if e.Type == game.EventExplosionSpawned {
			a.particles.Emit(e.Explosion)
		}
	}
	if a.sound != nil {
		a.sound.Handle(events)
	}

	a.particles.Update(dt)
	a.stars.Update(dt)
	a.snap = a.game.Snapshot()

	if a.profiler != nil {
		a.profiler.Observe(ebiten.ActualFPS(), now)
	}
	return nil
}

func (a *App) intents(dt float64) []game.Event {
	if a.pilot != nil {
		return a.pilot.Intents(a.snap, dt)
	}
	a.gamepads = ebiten.AppendGamepadIDs(a.gamepads[:0])
	return Translate(PollInput(a.gamepads), a.snap.State, a.cfg.PlayerSlow)
}

// handleToggles processes keys that act on the window rather than the game
func (a *App) handleToggles() {
	debug := GetDebugState()
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug.ShowHitboxes = !debug.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debug.ShowStats = !debug.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && a.sound != nil {
		a.sound.SetMuted(!a.sound.Muted())
	}
	a.toggleFullscreen()
}

// Draw renders the latest snapshot
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	a.stars.Draw(screen, a.camera)
	a.renderer.Render(screen, &a.snap)
	a.particles.Draw(screen, a.camera)
	a.hud.Draw(screen, &a.snap)

	debug := GetDebugState()
	if debug.ShowHitboxes {
		drawHitboxes(screen, a.camera, &a.snap, a.cfg)
	}
	if debug.ShowStats {
		drawStats(screen, &a.snap, a.particles.Len())
	}
}

// Layout keeps a fixed logical resolution
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
