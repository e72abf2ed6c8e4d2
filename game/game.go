package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Game owns the whole simulation and advances it one tick at a time.
// Only Push may be called from other goroutines.
type Game struct {
	cfg    Config
	shared SharedState

	machine    *StateMachine
	player     *Player
	lazer      Lazer
	swarm      *Swarm
	bullets    Bullets
	bunkers    *Bunkers
	collisions *CollisionSystem
	board      *LeaderBoard

	// Inbound intents from front-ends
	inbox EventQueue

	// Outbound events produced since the last drain
	outbox []Event

	// State messages collected during a tick, handled before the timers
	pending []StateMessage

	ticks uint64
}

// NewGame validates the configuration and builds a game waiting in InsertCoin
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:     cfg,
		shared:  NewSharedState(cfg),
		player:  NewPlayer(cfg),
		swarm:   NewSwarm(cfg, rng),
		bunkers: NewBunkers(cfg),
		board:   NewLeaderBoard(cfg.LeaderBoard),
	}
	g.machine = NewStateMachine(cfg, &g.shared)
	g.collisions = NewCollisionSystem(cfg, g.player, &g.lazer, g.swarm, &g.bullets, g.bunkers)

	log.Printf("game ready: %dx%d aliens, %d bunker cells, seed %d",
		cfg.AlienCols, cfg.AlienRows, len(g.bunkers.Cells()), seed)
	return g, nil
}

// Push queues an inbound intent for the next tick
func (g *Game) Push(e Event) {
	g.inbox.Push(e)
}

// DrainEvents returns the outbound events produced since the previous call
func (g *Game) DrainEvents() []Event {
	out := g.outbox
	g.outbox = nil
	return out
}

// Config returns the configuration the game was built with
func (g *Game) Config() Config {
	return g.cfg
}

// State returns the active top-level mode
func (g *Game) State() GameState {
	return g.shared.State
}

// Tick advances the simulation by dt seconds.
// Order: intents, player and lazer, swarm and bullets, collisions, state machine.
func (g *Game) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.ticks++

	g.handleIntents()

	// Player and lazer
	g.player.Update(dt, g.cfg, g.shared.State)
	g.lazer.Update(dt, g.player.Muzzle(g.cfg), g.cfg)

	// Swarm, bullets and the drop policy
	g.swarm.Update(dt, &g.shared, &g.bullets)

	// Hits
	res := g.collisions.Resolve(&g.shared)
	g.outbox = append(g.outbox, res.Events...)
	g.pending = append(g.pending, res.Messages...)

	if g.shared.State.InGame() {
		for n := g.shared.AwardBonusLives(g.cfg); n > 0; n-- {
			g.emit(Event{Type: EventBonusLife})
		}
	}

	// State machine, messages first then timers
	for _, msg := range g.pending {
		from := g.shared.State
		effect, changed := g.machine.Handle(msg, &g.shared)
		if msg == MsgLoseLife && changed {
			g.emit(Event{Type: EventLoseLife})
		}
		g.transition(from, effect, changed)
	}
	g.pending = g.pending[:0]

	from := g.shared.State
	effect, changed := g.machine.Advance(dt, &g.shared)
	g.transition(from, effect, changed)
}

func (g *Game) handleIntents() {
	for _, e := range g.inbox.Drain() {
		switch e.Type {
		case EventFireIntent:
			if canFire(g.shared.State) {
				g.lazer.Fire()
			}
		case EventMoveIntent:
			g.player.AddMove(e.Magnitude)
		case EventRequestPlay:
			g.pending = append(g.pending, MsgPressPlay)
		case EventRequestInfo:
			g.pending = append(g.pending, MsgInfo)
		default:
			log.Printf("ignoring non-intent event %s", e.Type)
		}
	}
}

// transition applies the reset hooks of an effect and reports the state change
func (g *Game) transition(from GameState, effect TransitionEffect, changed bool) {
	switch effect {
	case EffectFullReset:
		g.resetSwarm()
		g.bunkers.Reset()
		g.shared.ResetRound(g.cfg)
		g.player.Respawn(g.cfg)
		g.lazer.Stop()
	case EffectNextWave:
		g.resetSwarm()
		g.shared.NextWave(g.cfg)
		log.Printf("wave %d at speed %.0f", g.shared.Wave, g.shared.AlienSpeed)
	case EffectRespawnPlayer:
		g.player.Respawn(g.cfg)
	}

	if !changed {
		return
	}
	to := g.shared.State
	if to == StateGameOver && from.InGame() {
		if rank := g.board.Record(g.shared.Score, g.shared.Wave); rank >= 0 {
			log.Printf("score %d ranked #%d", g.shared.Score, rank+1)
		}
	}
	g.emit(Event{Type: EventStateChanged, From: from, To: to})
}

// resetSwarm respawns the grid and removes the bullets in flight
func (g *Game) resetSwarm() {
	g.swarm.Reset()
	g.bullets.Clear()
}

func (g *Game) emit(e Event) {
	g.outbox = append(g.outbox, e)
}
