package game

// CellView is the drawable part of a bunker cell
type CellView struct {
	Pos    Vec2
	Damage uint8
}

// Snapshot is a read-only copy of everything a front-end draws.
// It shares no memory with the game, so it may be handed to another goroutine.
type Snapshot struct {
	Tick uint64

	State        GameState
	Score        uint32
	Lives        uint8
	Wave         uint8
	AliensKilled uint8
	AlienSpeed   float64
	NextLifeAt   uint32
	HighScore    uint32

	Player        Vec2
	PlayerVisible bool

	Lazer    LazerState
	LazerPos Vec2

	Aliens     []Vec2
	AlienDir   Direction
	AlienFrame int

	Bullets []Vec2
	Cells   []CellView

	LeaderBoard []ScoreEntry
}

// Snapshot captures the current frame for presentation
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.ticks,
		State:        g.shared.State,
		Score:        g.shared.Score,
		Lives:        g.shared.Lives,
		Wave:         g.shared.Wave,
		AliensKilled: g.shared.AliensKilled,
		AlienSpeed:   g.shared.AlienSpeed,
		NextLifeAt:   g.shared.NextLifeAt,
		HighScore:    g.board.Best(),

		Player:        g.player.Pos,
		PlayerVisible: g.player.Visible(g.cfg),

		Lazer:    g.lazer.State,
		LazerPos: g.lazer.Pos,

		AlienDir:   g.swarm.Direction(),
		AlienFrame: g.swarm.Frame(),

		LeaderBoard: g.board.Entries(),
	}

	aliens := g.swarm.Aliens()
	snap.Aliens = make([]Vec2, 0, len(aliens))
	for _, a := range aliens {
		if a.Alive {
			snap.Aliens = append(snap.Aliens, a.Pos)
		}
	}

	bullets := g.bullets.Items()
	snap.Bullets = make([]Vec2, 0, len(bullets))
	for _, b := range bullets {
		if b.Alive {
			snap.Bullets = append(snap.Bullets, b.Pos)
		}
	}

	cells := g.bunkers.Cells()
	snap.Cells = make([]CellView, 0, len(cells))
	for _, c := range cells {
		if c.Alive {
			snap.Cells = append(snap.Cells, CellView{Pos: c.Pos, Damage: c.Damage})
		}
	}

	return snap
}
