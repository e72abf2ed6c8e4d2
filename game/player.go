package game

// Player is the cannon at the bottom of the scene
type Player struct {
	Pos Vec2

	// Move is the signed intent accumulated for the current tick, clamped to [-1, 1]
	Move float64

	// SpawnCounter counts down once per tick after a respawn.
	// While it runs the player blinks and bullets pass through.
	SpawnCounter uint8
}

// NewPlayer places the player at the center of its line
func NewPlayer(cfg Config) *Player {
	return &Player{Pos: Vec2{0, cfg.PlayerY()}}
}

// AddMove accumulates a move intent, opposite intents cancel out
func (p *Player) AddMove(magnitude float64) {
	p.Move += magnitude
	if p.Move > 1 {
		p.Move = 1
	} else if p.Move < -1 {
		p.Move = -1
	}
}

// Update applies the move intent and runs the spawn countdown.
// The intent is consumed whether or not movement was allowed.
func (p *Player) Update(dt float64, cfg Config, state GameState) {
	if canMove(state) && p.Move != 0 {
		p.Pos.X += p.Move * cfg.PlayerSpeed * dt

		// Keep the whole cannon on screen
		limit := cfg.SceneWidth - cfg.PlayerSize.X/2
		if p.Pos.X < -limit {
			p.Pos.X = -limit
		} else if p.Pos.X > limit {
			p.Pos.X = limit
		}
	}
	p.Move = 0

	if p.SpawnCounter > 0 {
		p.SpawnCounter--
	}
}

// Respawn recenters the player and starts the blink countdown
func (p *Player) Respawn(cfg Config) {
	p.Pos = Vec2{0, cfg.PlayerY()}
	p.Move = 0
	p.SpawnCounter = cfg.PlayerSpawnTicks
}

// Invulnerable reports whether bullets currently pass through the player
func (p *Player) Invulnerable() bool {
	return p.SpawnCounter > 0
}

// Visible reports whether the player is drawn this tick.
// During the spawn countdown it alternates every PlayerBlinkTicks ticks.
func (p *Player) Visible(cfg Config) bool {
	if p.SpawnCounter == 0 || cfg.PlayerBlinkTicks == 0 {
		return true
	}
	return (p.SpawnCounter/cfg.PlayerBlinkTicks)%2 == 0
}

// Muzzle returns where a new lazer appears
func (p *Player) Muzzle(cfg Config) Vec2 {
	return Vec2{p.Pos.X, p.Pos.Y + cfg.PlayerHeight}
}

func canMove(state GameState) bool {
	return state == StatePlay || state == StatePlayerSpawn || state == StateNewWave
}

func canFire(state GameState) bool {
	return state == StatePlay || state == StatePlayerSpawn
}
