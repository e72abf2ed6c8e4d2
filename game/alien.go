package game

import (
	"math/rand"
)

// Alien is one member of the swarm
type Alien struct {
	Pos   Vec2
	Dir   Direction
	Alive bool
}

// Swarm owns the alien grid and its bullet-drop policy.
// All live aliens share one direction at every tick boundary.
type Swarm struct {
	aliens []Alien
	cfg    Config
	rng    *rand.Rand

	// Time since the last drop, measured in tick deltas
	cooldown Timer

	// Sprite animation, presentation only
	frame      int
	frameTimer Timer

	// Scratch space reused by the drop policy
	columns map[int]float64
}

// NewSwarm creates a full grid moving right
func NewSwarm(cfg Config, rng *rand.Rand) *Swarm {
	s := &Swarm{
		cfg:        cfg,
		rng:        rng,
		frameTimer: NewTimer(cfg.AlienFrameInterval),
		columns:    make(map[int]float64, cfg.AlienCols),
	}
	s.Reset()
	return s
}

// Reset clears the aliens, then respawns the grid moving right with the
// grace cooldown before the first drop. Bullets are owned by the caller.
func (s *Swarm) Reset() {
	cfg := s.cfg
	s.aliens = s.aliens[:0]

	stepX := cfg.AlienSpacing
	stepY := cfg.AlienSpacing * 0.75
	for row := 0; row < cfg.AlienRows; row++ {
		for col := 0; col < cfg.AlienCols; col++ {
			s.aliens = append(s.aliens, Alien{
				Pos: Vec2{
					X: (float64(col) - float64(cfg.AlienCols)/2) * stepX,
					Y: cfg.SceneHeight - 100 - float64(row)*stepY,
				},
				Dir:   DirRight,
				Alive: true,
			})
		}
	}

	s.cooldown.Rearm(cfg.BulletIntervalWave)
	s.frame = 0
	s.frameTimer.Rearm(cfg.AlienFrameInterval)
}

// Update moves the swarm and decides bounce and descent, then moves the
// bullets already in flight and finally rolls the bullet drop
func (s *Swarm) Update(dt float64, shared *SharedState, bullets *Bullets) {
	s.cooldown.Elapsed += dt
	if s.cfg.AlienFrames > 0 && s.frameTimer.Duration > 0 && s.frameTimer.Tick(dt) {
		s.frame = (s.frame + 1) % s.cfg.AlienFrames
	}

	alive := s.Len() > 0
	if alive {
		s.move(dt, shared)
	}
	bullets.Update(dt, s.cfg)
	if alive {
		s.drop(bullets)
	}
}

func (s *Swarm) move(dt float64, shared *SharedState) {
	cfg := s.cfg
	step := shared.AlienSpeed * dt

	bounce := false
	yMin := 0.0
	first := true
	for i := range s.aliens {
		a := &s.aliens[i]
		if !a.Alive {
			continue
		}

		// Horizontal motion never changes y, so this is the pre-move minimum
		if first || a.Pos.Y < yMin {
			yMin = a.Pos.Y
			first = false
		}

		a.Pos.X += a.Dir.Sign() * step
		if (a.Dir == DirLeft && a.Pos.X < -cfg.SceneWidth) || (a.Dir == DirRight && a.Pos.X > cfg.SceneWidth) {
			bounce = true
		}
	}

	if !bounce {
		return
	}

	descend := shared.State == StatePlay && yMin > cfg.DescentFloor()
	dir := s.Direction().Flip()
	for i := range s.aliens {
		a := &s.aliens[i]
		if !a.Alive {
			continue
		}
		a.Dir = dir
		if descend {
			a.Pos.Y -= cfg.AlienSize.Y
		}
	}
}

// drop lets the lowest alien of a column fire.
// Every candidate rolls 1/columns in storage order until one succeeds or the
// cooldown is consumed, so a tick drops at most one bullet.
func (s *Swarm) drop(bullets *Bullets) {
	if !s.cooldown.Ready() {
		return
	}

	clear(s.columns)
	for _, a := range s.aliens {
		if !a.Alive {
			continue
		}
		x := int(a.Pos.X)
		if y, ok := s.columns[x]; !ok || a.Pos.Y < y {
			s.columns[x] = a.Pos.Y
		}
	}

	chance := 1.0 / float64(len(s.columns))
	for _, a := range s.aliens {
		if !a.Alive || a.Pos.Y != s.columns[int(a.Pos.X)] {
			continue
		}
		if s.rng.Float64() < chance {
			bullets.Spawn(a.Pos)
			s.cooldown.Rearm(s.cfg.BulletInterval)
			return
		}
	}
}

// Kill marks alien i dead. Returns false if it was already dead.
func (s *Swarm) Kill(i int) bool {
	if i < 0 || i >= len(s.aliens) || !s.aliens[i].Alive {
		return false
	}
	s.aliens[i].Alive = false
	return true
}

// FirstOverlap returns the index of the first live alien overlapping the box, or -1
func (s *Swarm) FirstOverlap(pos, size Vec2) int {
	box := RectFromCenter(pos, size)
	for i := range s.aliens {
		if !s.aliens[i].Alive {
			continue
		}
		if box.Intersects(RectFromCenter(s.aliens[i].Pos, s.cfg.AlienSize)) {
			return i
		}
	}
	return -1
}

// Compact drops dead aliens, keeping storage order
func (s *Swarm) Compact() {
	n := 0
	for _, a := range s.aliens {
		if a.Alive {
			s.aliens[n] = a
			n++
		}
	}
	s.aliens = s.aliens[:n]
}

// Direction returns the shared heading of the live aliens
func (s *Swarm) Direction() Direction {
	for _, a := range s.aliens {
		if a.Alive {
			return a.Dir
		}
	}
	return DirRight
}

// Len returns the number of live aliens
func (s *Swarm) Len() int {
	n := 0
	for _, a := range s.aliens {
		if a.Alive {
			n++
		}
	}
	return n
}

// Aliens exposes the arena in storage order
func (s *Swarm) Aliens() []Alien {
	return s.aliens
}

// Frame returns the current animation frame
func (s *Swarm) Frame() int {
	return s.frame
}
