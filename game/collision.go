package game

// CollisionSystem resolves every hit of a tick in a fixed order.
// Each object takes part in at most one hit per pass and the first match wins.
type CollisionSystem struct {
	cfg     Config
	player  *Player
	lazer   *Lazer
	swarm   *Swarm
	bullets *Bullets
	bunkers *Bunkers
}

// NewCollisionSystem creates a collision system over the game arenas
func NewCollisionSystem(cfg Config, player *Player, lazer *Lazer, swarm *Swarm, bullets *Bullets, bunkers *Bunkers) *CollisionSystem {
	return &CollisionSystem{
		cfg:     cfg,
		player:  player,
		lazer:   lazer,
		swarm:   swarm,
		bullets: bullets,
		bunkers: bunkers,
	}
}

// CollisionResult collects what a pass produced
type CollisionResult struct {
	Events   []Event        // Outbound events in the order they happened
	Messages []StateMessage // Requests for the state machine
}

// Resolve runs the collision pass and compacts dead entities afterwards
func (c *CollisionSystem) Resolve(shared *SharedState) CollisionResult {
	var res CollisionResult
	cfg := c.cfg

	lostLife := false
	items := c.bullets.items
	for i := range items {
		bullet := &items[i]
		if !bullet.Alive {
			continue
		}

		// Bullet meets the lazer in flight
		if c.lazer.Collidable() && Overlaps(bullet.Pos, cfg.BulletSize, c.lazer.Pos, cfg.LazerSize) {
			bullet.Alive = false
			c.lazer.Stop()
			res.Events = append(res.Events, explosionAt(explosionBulletLazer, bullet.Pos))
			continue
		}

		// Bullet hits the player
		if !c.player.Invulnerable() && Overlaps(bullet.Pos, cfg.BulletSize, c.player.Pos, cfg.PlayerSize) {
			bullet.Alive = false
			if !lostLife {
				lostLife = true
				res.Messages = append(res.Messages, MsgLoseLife)
			}
			// An outstanding lazer must not score after the player died
			c.lazer.Stop()
			res.Events = append(res.Events, explosionAt(explosionBulletPlayer, bullet.Pos))
			continue
		}

		// Bullet hits a bunker, damage only counts during play
		if cell := c.bunkers.FirstOverlap(bullet.Pos, cfg.BulletSize); cell >= 0 {
			bullet.Alive = false
			if shared.State == StatePlay {
				c.bunkers.Hit(cell)
			}
			res.Events = append(res.Events, explosionAt(explosionBulletBunker, bullet.Pos))
		}
	}

	if c.lazer.Collidable() {
		c.resolveLazer(shared, &res)
	}

	c.bullets.Compact()
	c.swarm.Compact()
	c.bunkers.Compact()
	return res
}

func (c *CollisionSystem) resolveLazer(shared *SharedState, res *CollisionResult) {
	cfg := c.cfg
	pos := c.lazer.Pos

	if cell := c.bunkers.FirstOverlap(pos, cfg.LazerSize); cell >= 0 {
		c.bunkers.Hit(cell)
		c.lazer.Stop()
		res.Events = append(res.Events, explosionAt(explosionLazerBunker, pos))
		return
	}

	alien := c.swarm.FirstOverlap(pos, cfg.LazerSize)
	if alien < 0 || !c.swarm.Kill(alien) {
		return
	}
	c.lazer.Stop()

	total := cfg.AliensTotal()
	counted := int(shared.AliensKilled) < total
	assertInvariant(cfg.Debug, counted, "kill %d of %d aliens", int(shared.AliensKilled)+1, total)
	if counted {
		shared.AliensKilled++
	}
	shared.AlienSpeed += cfg.AlienSpeedKill
	shared.Score += cfg.ScoreAlien

	res.Events = append(res.Events,
		Event{Type: EventAlienHitSound},
		explosionAt(explosionAlien, pos),
	)

	if counted && int(shared.AliensKilled) == total {
		res.Events = append(res.Events, Event{Type: EventNewWave})
		res.Messages = append(res.Messages, MsgNewWave)
	}
}
