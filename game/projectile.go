package game

// LazerState is the life cycle of the player's single shot
type LazerState int

const (
	LazerIdle  LazerState = iota // Hidden, ready to fire
	LazerFire                    // Requested, placed at the muzzle on the next update
	LazerFired                   // In flight and collidable
)

func (s LazerState) String() string {
	switch s {
	case LazerIdle:
		return "Idle"
	case LazerFire:
		return "Fire"
	case LazerFired:
		return "Fired"
	}
	return "Unknown"
}

// Lazer is the player's shot. There is exactly one per game.
type Lazer struct {
	State LazerState
	Pos   Vec2 // Only meaningful while Fired
}

// Fire requests a shot. Requests are ignored unless the lazer is idle.
func (l *Lazer) Fire() bool {
	if l.State != LazerIdle {
		return false
	}
	l.State = LazerFire
	return true
}

// Update advances the lazer state machine by one tick
func (l *Lazer) Update(dt float64, muzzle Vec2, cfg Config) {
	switch l.State {
	case LazerIdle:
	case LazerFire:
		l.Pos = muzzle
		l.State = LazerFired
	case LazerFired:
		if l.Pos.Y > cfg.SceneHeight {
			l.State = LazerIdle
			return
		}
		l.Pos.Y += cfg.LazerSpeed * dt
	default:
		assertInvariant(cfg.Debug, false, "lazer state %d outside the enum", int(l.State))
		l.State = LazerIdle
	}
}

// Collidable reports whether the lazer takes part in the collision pass
func (l *Lazer) Collidable() bool {
	return l.State == LazerFired
}

// Stop returns the lazer to Idle
func (l *Lazer) Stop() {
	l.State = LazerIdle
}

// AlienBullet is a shot dropped by the swarm
type AlienBullet struct {
	Pos   Vec2
	Alive bool
}

// Bullets is the pool of alien bullets in flight.
// Dead bullets stay in place until Compact so indices are stable within a tick.
type Bullets struct {
	items []AlienBullet
}

// Spawn adds a bullet at pos
func (b *Bullets) Spawn(pos Vec2) {
	b.items = append(b.items, AlienBullet{Pos: pos, Alive: true})
}

// Update moves every live bullet down and kills the ones that left the scene
func (b *Bullets) Update(dt float64, cfg Config) {
	for i := range b.items {
		bullet := &b.items[i]
		if !bullet.Alive {
			continue
		}
		bullet.Pos.Y -= cfg.BulletSpeed * dt
		if bullet.Pos.Y < -cfg.SceneHeight {
			bullet.Alive = false
		}
	}
}

// Compact drops dead bullets, keeping the storage order of the survivors
func (b *Bullets) Compact() {
	n := 0
	for _, bullet := range b.items {
		if bullet.Alive {
			b.items[n] = bullet
			n++
		}
	}
	b.items = b.items[:n]
}

// Clear removes every bullet
func (b *Bullets) Clear() {
	b.items = b.items[:0]
}

// Len returns the number of live bullets
func (b *Bullets) Len() int {
	n := 0
	for _, bullet := range b.items {
		if bullet.Alive {
			n++
		}
	}
	return n
}

// Items exposes the pool in storage order
func (b *Bullets) Items() []AlienBullet {
	return b.items
}
