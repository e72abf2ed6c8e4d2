package autopilot

import "invaders/game"

// Context is passed to pilot scripts as input
type Context struct {
	State string `json:"state"`
	Tick  uint64 `json:"tick"`

	// Player and lazer
	PlayerX    float64 `json:"playerX"`
	PlayerY    float64 `json:"playerY"`
	LazerReady bool    `json:"lazerReady"`

	// Scene half extents
	SceneWidth  float64 `json:"sceneWidth"`
	SceneHeight float64 `json:"sceneHeight"`

	// Threats and targets
	Aliens  []Point `json:"aliens"`
	Bullets []Point `json:"bullets"`

	DeltaTime float64 `json:"deltaTime"`
}

// Point is a world position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Decision is returned from pilot scripts
type Decision struct {
	// Move is the horizontal intent in [-1, 1]
	Move float64 `json:"move"`

	// Fire asks for a lazer shot
	Fire bool `json:"fire"`

	// Play inserts a coin on the attract screens
	Play bool `json:"play"`
}

// BuildContext creates a Context from a frame snapshot
func BuildContext(snap game.Snapshot, cfg game.Config, dt float64) Context {
	ctx := Context{
		State:       snap.State.String(),
		Tick:        snap.Tick,
		PlayerX:     snap.Player.X,
		PlayerY:     snap.Player.Y,
		LazerReady:  snap.Lazer == game.LazerIdle,
		SceneWidth:  cfg.SceneWidth,
		SceneHeight: cfg.SceneHeight,
		Aliens:      toPoints(snap.Aliens),
		Bullets:     toPoints(snap.Bullets),
		DeltaTime:   dt,
	}
	return ctx
}

func toPoints(in []game.Vec2) []Point {
	out := make([]Point, len(in))
	for i, v := range in {
		out[i] = Point{X: v.X, Y: v.Y}
	}
	return out
}
