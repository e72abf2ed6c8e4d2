package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by NewGame when the configuration cannot drive a game
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds every tunable of the simulation.
// World coordinates are centered on the origin with y pointing up, so the
// player sits near -SceneHeight and the swarm starts near +SceneHeight.
type Config struct {
	// SceneWidth is the horizontal half-extent of the play area
	SceneWidth float64

	// SceneHeight is the vertical half-extent of the play area
	SceneHeight float64

	// Alien grid shape and layout
	AlienCols    int
	AlienRows    int
	AlienSpacing float64 // Horizontal distance between columns, rows use 3/4 of it
	AlienSize    Vec2    // Hit box

	// Alien speed ramp (units per second)
	AlienSpeedStart float64
	AlienSpeedKill  float64 // Added for every alien killed
	AlienSpeedWave  float64 // Added to the wave start speed on every new wave
	AlienSpeedMax   float64 // Cap applied to the wave start speed

	// Alien animation (frames cycle while the swarm is alive)
	AlienFrames        int
	AlienFrameInterval float64

	// Alien bullets
	BulletSpeed        float64
	BulletSize         Vec2
	BulletInterval     float64 // Cooldown between drops
	BulletIntervalWave float64 // Grace cooldown armed when a grid is spawned

	// Player
	PlayerSpeed      float64
	PlayerSlow       float64 // Move intent scale when the slow modifier is held
	PlayerSize       Vec2
	PlayerHeight     float64 // Muzzle offset above the player position
	PlayerSpawnTicks uint8   // Length of the respawn blink, in ticks, so it follows the frame rate
	PlayerBlinkTicks uint8   // Blink half-period, in ticks

	// Lazer
	LazerSpeed float64
	LazerSize  Vec2

	// Bunkers
	Bunkers         int
	BunkersY        float64 // Height of the bunker line above the bottom of the scene
	BunkerCellSize  Vec2
	BunkerMaxDamage uint8
	BunkerLayout    []string // '#' marks a cell, rows listed top to bottom

	// State machine timers (seconds)
	TransitionMenu    float64
	TransitionStart   float64
	TransitionNewWave float64

	// Scoring
	ScoreAlien   uint32
	ScoreNewLife uint32
	ScoreScale   float64
	Lives        uint8
	LeaderBoard  int // Number of entries kept in the in-process leader board

	// Seed for the bullet-drop RNG, 0 picks a time based seed
	Seed int64

	// Debug turns invariant violations into panics
	Debug bool
}

// DefaultConfig returns the classic arcade tuning on a 1440x1080 scene
func DefaultConfig() Config {
	const resY = 1080.0
	const resX = resY * 4.0 / 3.0

	return Config{
		SceneWidth:  resX/2 - 100,
		SceneHeight: resY/2 - 50,

		AlienCols:    11,
		AlienRows:    5,
		AlienSpacing: 80,
		AlienSize:    Vec2{64, 40},

		AlienSpeedStart: 30,
		AlienSpeedKill:  2,
		AlienSpeedWave:  10,
		AlienSpeedMax:   100,

		AlienFrames:        4,
		AlienFrameInterval: 0.05,

		BulletSpeed:        300,
		BulletSize:         Vec2{8, 16},
		BulletInterval:     0.25,
		BulletIntervalWave: 0.75,

		PlayerSpeed:      500,
		PlayerSlow:       1.0 / 5.0,
		PlayerSize:       Vec2{64, 40},
		PlayerHeight:     50,
		PlayerSpawnTicks: 20,
		PlayerBlinkTicks: 3,

		LazerSpeed: 1250,
		LazerSize:  Vec2{8, 16},

		Bunkers:         5,
		BunkersY:        100,
		BunkerCellSize:  Vec2{16, 16},
		BunkerMaxDamage: 2,
		BunkerLayout: []string{
			".######.",
			"########",
			"########",
			"##....##",
		},

		TransitionMenu:    6.0,
		TransitionStart:   2.0,
		TransitionNewWave: 1.5,

		ScoreAlien:   10,
		ScoreNewLife: 1000,
		ScoreScale:   1.5,
		Lives:        3,
		LeaderBoard:  5,
	}
}

// AliensTotal returns the number of aliens in a full grid
func (c Config) AliensTotal() int {
	return c.AlienCols * c.AlienRows
}

// PlayerY returns the fixed height of the player line
func (c Config) PlayerY() float64 {
	return -c.SceneHeight
}

// DescentFloor returns the y the lowest alien row must stay above to keep descending
func (c Config) DescentFloor() float64 {
	return c.BunkersY - c.SceneHeight
}

// Validate checks that the configuration can drive a game
func (c Config) Validate() error {
	switch {
	case c.SceneWidth <= 0 || c.SceneHeight <= 0:
		return fmt.Errorf("%w: scene %vx%v", ErrInvalidConfig, c.SceneWidth, c.SceneHeight)
	case c.AlienCols <= 0 || c.AlienRows <= 0:
		return fmt.Errorf("%w: alien grid %dx%d", ErrInvalidConfig, c.AlienCols, c.AlienRows)
	case c.AliensTotal() > 255:
		// AliensKilled is a uint8
		return fmt.Errorf("%w: %d aliens exceed the kill counter range", ErrInvalidConfig, c.AliensTotal())
	case c.AlienSpeedStart <= 0 || c.AlienSpeedMax < c.AlienSpeedStart:
		return fmt.Errorf("%w: alien speed start %v max %v", ErrInvalidConfig, c.AlienSpeedStart, c.AlienSpeedMax)
	case c.BulletSpeed <= 0 || c.LazerSpeed <= 0 || c.PlayerSpeed <= 0:
		return fmt.Errorf("%w: projectile and player speeds must be positive", ErrInvalidConfig)
	case c.BulletInterval <= 0:
		return fmt.Errorf("%w: bullet interval %v", ErrInvalidConfig, c.BulletInterval)
	case c.Lives == 0:
		return fmt.Errorf("%w: no lives", ErrInvalidConfig)
	case c.PlayerSpawnTicks == 0:
		return fmt.Errorf("%w: player spawn ticks must be positive", ErrInvalidConfig)
	case c.TransitionMenu <= 0 || c.TransitionStart <= 0 || c.TransitionNewWave <= 0:
		return fmt.Errorf("%w: transition durations must be positive", ErrInvalidConfig)
	case c.Bunkers < 0:
		return fmt.Errorf("%w: %d bunkers", ErrInvalidConfig, c.Bunkers)
	}

	width := -1
	for i, row := range c.BunkerLayout {
		if width >= 0 && len(row) != width {
			return fmt.Errorf("%w: bunker layout row %d has width %d, want %d", ErrInvalidConfig, i, len(row), width)
		}
		width = len(row)
	}
	return nil
}
