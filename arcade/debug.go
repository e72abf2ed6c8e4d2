package arcade

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"invaders/game"
)

// DebugState holds debug flags that persist across rounds
type DebugState struct {
	ShowHitboxes bool // Outline every collision box
	ShowStats    bool // Print tick, FPS and arena sizes
}

// Global debug state instance (persists across rounds)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

var colorHitbox = color.RGBA{255, 0, 255, 255}

// drawHitboxes outlines the collision box of every entity
func drawHitboxes(screen *ebiten.Image, cam *Camera, snap *game.Snapshot, cfg game.Config) {
	box := func(pos, size game.Vec2) {
		x, y, w, h := cam.RectToScreen(pos, size)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorHitbox, false)
	}

	for _, pos := range snap.Aliens {
		box(pos, cfg.AlienSize)
	}
	for _, pos := range snap.Bullets {
		box(pos, cfg.BulletSize)
	}
	for _, c := range snap.Cells {
		box(c.Pos, cfg.BunkerCellSize)
	}
	if snap.State.InGame() {
		box(snap.Player, cfg.PlayerSize)
	}
	if snap.Lazer == game.LazerFired {
		box(snap.LazerPos, cfg.LazerSize)
	}

	// Scene bounds and descent floor
	x0, y0 := cam.WorldToScreen(-cfg.SceneWidth, cfg.SceneHeight)
	x1, y1 := cam.WorldToScreen(cfg.SceneWidth, -cfg.SceneHeight)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, colorHitbox, false)
	_, fy := cam.WorldToScreen(0, cfg.DescentFloor())
	vector.StrokeLine(screen, float32(x0), float32(fy), float32(x1), float32(fy), 1, colorHitbox, false)
}

// drawStats prints the live counters in the top-left corner
func drawStats(screen *ebiten.Image, snap *game.Snapshot, particles int) {
	msg := fmt.Sprintf("tick %d  fps %.0f  tps %.0f\naliens %d  bullets %d  cells %d  particles %d\nspeed %.1f  killed %d",
		snap.Tick, ebiten.ActualFPS(), ebiten.ActualTPS(),
		len(snap.Aliens), len(snap.Bullets), len(snap.Cells), particles,
		snap.AlienSpeed, snap.AliensKilled)
	ebitenutil.DebugPrintAt(screen, msg, 8, 40)
}
