package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedStateResetRound(t *testing.T) {
	cfg := testConfig()
	s := NewSharedState(cfg)

	assert.Equal(t, StateInsertCoin, s.State)
	assert.Zero(t, s.Score)
	assert.Equal(t, uint8(3), s.Lives)
	assert.Equal(t, uint8(1), s.Wave)
	assert.Equal(t, 30.0, s.AlienSpeed)
	assert.Equal(t, uint32(1000), s.NextLifeAt)
}

func TestBonusLifeGapGrows(t *testing.T) {
	cfg := testConfig()
	s := NewSharedState(cfg)

	s.Score = 999
	assert.Zero(t, s.AwardBonusLives(cfg))

	s.Score = 1000
	assert.Equal(t, 1, s.AwardBonusLives(cfg))
	assert.Equal(t, uint8(4), s.Lives)
	assert.Equal(t, uint32(2500), s.NextLifeAt)

	// Crossing two thresholds at once grants two lives
	s.Score = 5000
	assert.Equal(t, 2, s.AwardBonusLives(cfg))
	assert.Equal(t, uint8(6), s.Lives)
	assert.Equal(t, uint32(2500+2250+3375), s.NextLifeAt)
}

func TestGameStateNames(t *testing.T) {
	assert.Equal(t, "PlayerSpawn", StatePlayerSpawn.String())
	assert.Equal(t, "Unknown", GameState(42).String())
	assert.True(t, StateLeaderBoard.Attract())
	assert.False(t, StateStart.Attract())
	assert.False(t, StateStart.InGame())
	assert.True(t, StateNewWave.InGame())
}

func TestEventQueueConcurrentPush(t *testing.T) {
	var q EventQueue
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(MoveIntent(1))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, q.Len())
	assert.Len(t, q.Drain(), 800)
	assert.Nil(t, q.Drain())
}

func TestEventQueueKeepsOrder(t *testing.T) {
	var q EventQueue
	q.Push(FireIntent())
	q.Push(MoveIntent(-0.2))
	q.Push(RequestPlay())

	events := q.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, EventFireIntent, events[0].Type)
	assert.Equal(t, -0.2, events[1].Magnitude)
	assert.Equal(t, EventRequestPlay, events[2].Type)
	assert.Equal(t, "RequestPlay", events[2].Type.String())
}

func TestLeaderBoardKeepsBestScores(t *testing.T) {
	b := NewLeaderBoard(3)

	assert.Equal(t, 0, b.Record(100, 1))
	assert.Equal(t, 0, b.Record(300, 3))
	assert.Equal(t, 1, b.Record(200, 2))
	assert.Equal(t, 2, b.Record(150, 2))
	assert.Equal(t, -1, b.Record(50, 1), "too low for a full board")

	// Ties keep arrival order
	assert.Equal(t, 2, b.Record(200, 4))

	assert.Equal(t, []ScoreEntry{
		{Score: 300, Wave: 3},
		{Score: 200, Wave: 2},
		{Score: 200, Wave: 4},
	}, b.Entries())
	assert.Equal(t, uint32(300), b.Best())
}

func TestPlayerBlinkAndClamp(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	p.Respawn(cfg)
	require.True(t, p.Invulnerable())

	hidden := 0
	for p.SpawnCounter > 0 {
		if !p.Visible(cfg) {
			hidden++
		}
		p.Update(0, cfg, StatePlay)
	}
	assert.Positive(t, hidden)
	assert.True(t, p.Visible(cfg))
	assert.False(t, p.Invulnerable())

	p.AddMove(3)
	assert.Equal(t, 1.0, p.Move, "intent is clamped")
	p.Update(10, cfg, StatePlay)
	assert.Equal(t, cfg.SceneWidth-cfg.PlayerSize.X/2, p.Pos.X)

	p.AddMove(-1)
	p.Update(1, cfg, StateInsertCoin)
	assert.Equal(t, cfg.SceneWidth-cfg.PlayerSize.X/2, p.Pos.X, "no movement on the attract screens")
	assert.Zero(t, p.Move)
}
