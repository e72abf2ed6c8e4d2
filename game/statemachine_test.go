package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) (*StateMachine, *SharedState) {
	t.Helper()
	cfg := testConfig()
	shared := NewSharedState(cfg)
	m := NewStateMachine(cfg, &shared)
	require.Equal(t, StateInsertCoin, shared.State)
	return m, &shared
}

func TestAttractCycle(t *testing.T) {
	m, shared := newTestMachine(t)

	effect, changed := m.Advance(5, shared)
	assert.False(t, changed)
	assert.Equal(t, EffectNone, effect)

	_, changed = m.Advance(1, shared)
	assert.True(t, changed)
	assert.Equal(t, StateLeaderBoard, shared.State)

	m.Advance(6, shared)
	assert.Equal(t, StateGameOver, shared.State)

	m.Advance(6, shared)
	assert.Equal(t, StateInsertCoin, shared.State)
}

func TestPressPlayStartsRound(t *testing.T) {
	m, shared := newTestMachine(t)

	_, changed := m.Handle(MsgPressPlay, shared)
	require.True(t, changed)
	assert.Equal(t, StateStart, shared.State)

	_, changed = m.Advance(1.5, shared)
	assert.False(t, changed)

	effect, changed := m.Advance(0.5, shared)
	assert.True(t, changed)
	assert.Equal(t, EffectFullReset, effect)
	assert.Equal(t, StatePlay, shared.State)
}

func TestPressPlayIgnoredOutsideAttract(t *testing.T) {
	m, shared := newTestMachine(t)
	for _, s := range []GameState{StateGameOver, StateStart, StatePlay, StatePlayerSpawn, StateNewWave} {
		shared.State = s
		_, changed := m.Handle(MsgPressPlay, shared)
		assert.False(t, changed, s.String())
		assert.Equal(t, s, shared.State)
	}
}

func TestPlayTimerIsANoOp(t *testing.T) {
	m, shared := newTestMachine(t)
	m.Handle(MsgPressPlay, shared)
	m.Advance(2, shared)
	require.Equal(t, StatePlay, shared.State)

	for i := 0; i < 3; i++ {
		effect, changed := m.Advance(6, shared)
		assert.False(t, changed)
		assert.Equal(t, EffectNone, effect)
		assert.Equal(t, StatePlay, shared.State)
	}
}

func TestLoseLifeRespawnsThenPlays(t *testing.T) {
	m, shared := newTestMachine(t)
	shared.State = StatePlay
	shared.Lives = 3

	effect, changed := m.Handle(MsgLoseLife, shared)
	require.True(t, changed)
	assert.Equal(t, EffectRespawnPlayer, effect)
	assert.Equal(t, uint8(2), shared.Lives)
	assert.Equal(t, StatePlayerSpawn, shared.State)
	assert.Equal(t, uint8(20), m.SpawnRemaining)

	// One tick per count, independent of dt
	for i := 0; i < 19; i++ {
		_, changed = m.Advance(10, shared)
		assert.False(t, changed)
		assert.Equal(t, StatePlayerSpawn, shared.State)
	}
	_, changed = m.Advance(0.001, shared)
	assert.True(t, changed)
	assert.Equal(t, StatePlay, shared.State)
}

func TestLoseLastLifeEndsGame(t *testing.T) {
	m, shared := newTestMachine(t)
	shared.State = StatePlayerSpawn
	shared.Lives = 1

	effect, changed := m.Handle(MsgLoseLife, shared)
	assert.True(t, changed)
	assert.Equal(t, EffectNone, effect)
	assert.Zero(t, shared.Lives)
	assert.Equal(t, StateGameOver, shared.State)

	// Lives saturate at zero outside of play
	_, changed = m.Handle(MsgLoseLife, shared)
	assert.False(t, changed)
	assert.Zero(t, shared.Lives)
}

func TestLoseLifeWithNoLivesPanicsInDebug(t *testing.T) {
	m, shared := newTestMachine(t)
	shared.State = StatePlay
	shared.Lives = 0

	assert.Panics(t, func() { m.Handle(MsgLoseLife, shared) })
}

func TestNewWaveCycle(t *testing.T) {
	m, shared := newTestMachine(t)
	shared.State = StatePlay

	_, changed := m.Handle(MsgNewWave, shared)
	require.True(t, changed)
	assert.Equal(t, StateNewWave, shared.State)

	effect, changed := m.Advance(1.5, shared)
	assert.True(t, changed)
	assert.Equal(t, EffectNextWave, effect)
	assert.Equal(t, StatePlay, shared.State)
}

func TestInfoTogglesLeaderBoard(t *testing.T) {
	m, shared := newTestMachine(t)

	m.Handle(MsgInfo, shared)
	assert.Equal(t, StateLeaderBoard, shared.State)

	m.Handle(MsgInfo, shared)
	assert.Equal(t, StateInsertCoin, shared.State)

	shared.State = StateGameOver
	m.Handle(MsgInfo, shared)
	assert.Equal(t, StateLeaderBoard, shared.State)

	shared.State = StatePlay
	_, changed := m.Handle(MsgInfo, shared)
	assert.False(t, changed)
	assert.Equal(t, StatePlay, shared.State)
}

func TestMessageTransitionRearmsTimer(t *testing.T) {
	m, shared := newTestMachine(t)

	m.Advance(5, shared)
	m.Handle(MsgInfo, shared)
	require.Equal(t, StateLeaderBoard, shared.State)

	// The menu timer starts over on entry
	_, changed := m.Advance(5, shared)
	assert.False(t, changed)
	_, changed = m.Advance(1, shared)
	assert.True(t, changed)
	assert.Equal(t, StateGameOver, shared.State)
}
