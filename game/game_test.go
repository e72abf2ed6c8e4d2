package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.AlienRows = 0

	g, err := NewGame(cfg)
	assert.Nil(t, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewGameWaitsForCoin(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, StateInsertCoin, g.State())
	snap := g.Snapshot()
	assert.Len(t, snap.Aliens, 55)
	assert.Len(t, snap.Cells, 5*26)
	assert.Equal(t, LazerIdle, snap.Lazer)
}

func TestStartRoundFullReset(t *testing.T) {
	g := newTestGame(t)

	// Leftovers from the attract demo and a previous round
	g.shared.Score = 500
	g.shared.Lives = 0
	g.shared.Wave = 4
	g.shared.AliensKilled = 12
	g.shared.AlienSpeed = 77
	g.swarm.Kill(0)
	g.swarm.Compact()
	for i := 0; i < 3; i++ {
		g.bunkers.Hit(0)
	}
	g.bunkers.Hit(1)
	g.bunkers.Compact()

	g.Push(RequestPlay())
	g.Tick(0.01)
	require.Equal(t, StateStart, g.State())
	changes := eventsOfType(g.DrainEvents(), EventStateChanged)
	require.Len(t, changes, 1)
	assert.Equal(t, StateInsertCoin, changes[0].From)
	assert.Equal(t, StateStart, changes[0].To)

	g.Tick(g.cfg.TransitionStart)
	require.Equal(t, StatePlay, g.State())

	assert.Zero(t, g.shared.Score)
	assert.Equal(t, uint8(3), g.shared.Lives)
	assert.Equal(t, uint8(1), g.shared.Wave)
	assert.Zero(t, g.shared.AliensKilled)
	assert.Equal(t, 30.0, g.shared.AlienSpeed)
	assert.Equal(t, 55, g.swarm.Len())
	assert.Equal(t, 5*26, g.bunkers.Len())
	for _, c := range g.bunkers.Cells() {
		assert.Zero(t, c.Damage)
	}
	assert.Zero(t, g.bullets.Len())
	assert.Equal(t, g.cfg.PlayerSpawnTicks, g.player.SpawnCounter)
}

func TestFireIntentGatedByState(t *testing.T) {
	g := newTestGame(t)

	g.Push(FireIntent())
	g.Tick(0.001)
	assert.Equal(t, LazerIdle, g.lazer.State, "no firing on the attract screens")

	startRound(t, g)

	g.Push(FireIntent())
	g.Tick(0.001)
	require.Equal(t, LazerFired, g.lazer.State)
	assert.Equal(t, Vec2{0, -440}, g.lazer.Pos)

	// Firing again while in flight changes nothing
	g.Push(FireIntent())
	g.Tick(0.001)
	assert.Equal(t, LazerFired, g.lazer.State)
	assert.Equal(t, 0.0, g.lazer.Pos.X)
	assert.InDelta(t, -440+1.25, g.lazer.Pos.Y, 1e-9)
}

func TestMoveIntent(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)

	g.Push(MoveIntent(1))
	g.Tick(0.1)
	assert.InDelta(t, 50, g.player.Pos.X, 1e-9)

	// Opposite intents cancel
	g.Push(MoveIntent(-1))
	g.Push(MoveIntent(1))
	g.Tick(0.1)
	assert.InDelta(t, 50, g.player.Pos.X, 1e-9)

	// The intent lasts one tick only
	g.Tick(0.1)
	assert.InDelta(t, 50, g.player.Pos.X, 1e-9)

	g.Push(MoveIntent(-g.cfg.PlayerSlow))
	g.Tick(0.1)
	assert.InDelta(t, 40, g.player.Pos.X, 1e-9)
}

func TestBulletCostsALife(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	g.player.SpawnCounter = 0
	g.player.Pos.X = 200

	g.bullets.Spawn(g.player.Pos)
	g.Tick(0)

	assert.Equal(t, uint8(2), g.shared.Lives)
	assert.Equal(t, StatePlayerSpawn, g.State())
	assert.Equal(t, 0.0, g.player.Pos.X, "the player respawns at the center")
	assert.Equal(t, g.cfg.PlayerSpawnTicks, g.player.SpawnCounter)

	events := g.DrainEvents()
	assert.Len(t, eventsOfType(events, EventLoseLife), 1)
	changes := eventsOfType(events, EventStateChanged)
	require.Len(t, changes, 1)
	assert.Equal(t, StatePlay, changes[0].From)
	assert.Equal(t, StatePlayerSpawn, changes[0].To)

	for i := 0; i < int(g.cfg.PlayerSpawnTicks); i++ {
		g.Tick(0)
	}
	assert.Equal(t, StatePlay, g.State())
}

func TestGameOverRecordsScore(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	g.player.SpawnCounter = 0
	g.shared.Lives = 1
	g.shared.Score = 120

	g.bullets.Spawn(g.player.Pos)
	g.Tick(0)

	assert.Equal(t, StateGameOver, g.State())
	assert.Zero(t, g.shared.Lives)
	assert.Equal(t, []ScoreEntry{{Score: 120, Wave: 1}}, g.Snapshot().LeaderBoard)
	assert.Equal(t, uint32(120), g.Snapshot().HighScore)
	assert.Len(t, eventsOfType(g.DrainEvents(), EventLoseLife), 1)

	// Further hits on the game over screen cost nothing
	g.bullets.Spawn(g.player.Pos)
	g.Tick(0)
	assert.Empty(t, eventsOfType(g.DrainEvents(), EventLoseLife))
	assert.Zero(t, g.shared.Lives)
}

func TestClearingTheGridStartsNextWave(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)

	for i := 1; i < 55; i++ {
		g.swarm.Kill(i)
	}
	g.swarm.Compact()
	g.shared.AliensKilled = 54
	g.shared.AlienSpeed = 30 + 54*2

	g.lazer = Lazer{State: LazerFired, Pos: g.swarm.Aliens()[0].Pos}
	g.Tick(0)

	require.Equal(t, StateNewWave, g.State())
	events := g.DrainEvents()
	assert.Len(t, eventsOfType(events, EventNewWave), 1)
	assert.Len(t, eventsOfType(events, EventAlienHitSound), 1)

	g.Tick(g.cfg.TransitionNewWave)
	require.Equal(t, StatePlay, g.State())

	assert.Equal(t, uint8(2), g.shared.Wave)
	assert.Equal(t, 40.0, g.shared.AlienSpeed, "the wave speed ramps from the previous wave start")
	assert.Zero(t, g.shared.AliensKilled)
	assert.Equal(t, 55, g.swarm.Len())
	assert.Equal(t, uint32(10), g.shared.Score, "score carries over between waves")
}

func TestWaveSpeedIsCapped(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	g.shared.WaveSpeed = 95

	g.shared.NextWave(g.cfg)
	assert.Equal(t, 100.0, g.shared.AlienSpeed)
	g.shared.NextWave(g.cfg)
	assert.Equal(t, 100.0, g.shared.AlienSpeed)
}

func TestBonusLife(t *testing.T) {
	g := newTestGame(t)
	startRound(t, g)
	g.shared.Score = 995

	g.lazer = Lazer{State: LazerFired, Pos: g.swarm.Aliens()[0].Pos}
	g.Tick(0)

	assert.Equal(t, uint32(1005), g.shared.Score)
	assert.Equal(t, uint8(4), g.shared.Lives)
	assert.Equal(t, uint32(2500), g.shared.NextLifeAt)
	assert.Len(t, eventsOfType(g.DrainEvents(), EventBonusLife), 1)
}

func TestRequestInfoShowsLeaderBoard(t *testing.T) {
	g := newTestGame(t)

	g.Push(RequestInfo())
	g.Tick(0.01)
	assert.Equal(t, StateLeaderBoard, g.State())

	g.Push(RequestInfo())
	g.Tick(0.01)
	assert.Equal(t, StateInsertCoin, g.State())
}

func TestAttractDemoRuns(t *testing.T) {
	g := newTestGame(t)

	// Two minutes of attract mode at 60 ticks per second
	for i := 0; i < 60*120; i++ {
		g.Tick(1.0 / 60)
		require.True(t, g.State().Attract(), "attract mode never starts a round on its own")

		dirs := map[Direction]bool{}
		for _, a := range g.swarm.Aliens() {
			dirs[a.Dir] = true
		}
		require.Len(t, dirs, 1, "swarm direction must be uniform at tick boundaries")
	}

	// Aliens never descend outside of play
	assert.Equal(t, 150.0, g.swarm.Aliens()[44].Pos.Y)
	assert.Equal(t, 5*26, g.bunkers.Len(), "bunkers are not damaged by the demo")
}

func TestDrainEventsEmpties(t *testing.T) {
	g := newTestGame(t)
	g.Push(RequestPlay())
	g.Tick(0.01)

	assert.NotEmpty(t, g.DrainEvents())
	assert.Empty(t, g.DrainEvents())
}
