package game

import "log"

// StateMessage is a request handled by the state machine outside of its timer
type StateMessage int

const (
	MsgPressPlay StateMessage = iota
	MsgInfo
	MsgLoseLife
	MsgNewWave
)

func (m StateMessage) String() string {
	switch m {
	case MsgPressPlay:
		return "PressPlay"
	case MsgInfo:
		return "Info"
	case MsgLoseLife:
		return "LoseLife"
	case MsgNewWave:
		return "NewWave"
	}
	return "Unknown"
}

// TransitionEffect tells the Game which reset hooks a transition needs
type TransitionEffect int

const (
	EffectNone TransitionEffect = iota

	// EffectFullReset respawns the grid, repairs the bunkers, resets the round
	// counters and arms the player spawn blink
	EffectFullReset

	// EffectNextWave respawns the grid and ramps the wave speed
	EffectNextWave

	// EffectRespawnPlayer recenters the player and starts the blink
	EffectRespawnPlayer
)

func (e TransitionEffect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectFullReset:
		return "FullReset"
	case EffectNextWave:
		return "NextWave"
	case EffectRespawnPlayer:
		return "RespawnPlayer"
	}
	return "Unknown"
}

// StateMachine drives the top-level mode.
// It writes SharedState.State and SharedState.Lives and never reads entity positions.
type StateMachine struct {
	cfg   Config
	timer Timer

	// SpawnRemaining is the tick countdown of PlayerSpawn
	SpawnRemaining uint8
}

// NewStateMachine creates a machine in InsertCoin with its timer armed
func NewStateMachine(cfg Config, shared *SharedState) *StateMachine {
	m := &StateMachine{cfg: cfg}
	shared.State = StateInsertCoin
	m.timer = NewTimer(m.duration(StateInsertCoin))
	return m
}

// duration returns how long a state lasts before its timer transition
func (m *StateMachine) duration(s GameState) float64 {
	switch s {
	case StateStart:
		return m.cfg.TransitionStart
	case StateNewWave:
		return m.cfg.TransitionNewWave
	}
	return m.cfg.TransitionMenu
}

// enter switches state and re-arms the timer with the new state's duration
func (m *StateMachine) enter(shared *SharedState, next GameState) {
	log.Printf("state %s -> %s", shared.State, next)
	shared.State = next
	m.timer.Rearm(m.duration(next))
}

// Advance runs the tick-driven transitions.
// The bool reports whether the state changed.
func (m *StateMachine) Advance(dt float64, shared *SharedState) (TransitionEffect, bool) {
	if shared.State == StatePlayerSpawn {
		if m.SpawnRemaining > 0 {
			m.SpawnRemaining--
		}
		if m.SpawnRemaining == 0 {
			m.enter(shared, StatePlay)
			return EffectNone, true
		}
		return EffectNone, false
	}

	if !m.timer.Tick(dt) {
		return EffectNone, false
	}

	switch shared.State {
	case StateGameOver:
		m.enter(shared, StateInsertCoin)
	case StateInsertCoin:
		m.enter(shared, StateLeaderBoard)
	case StateLeaderBoard:
		m.enter(shared, StateGameOver)
	case StateStart:
		m.enter(shared, StatePlay)
		return EffectFullReset, true
	case StateNewWave:
		m.enter(shared, StatePlay)
		return EffectNextWave, true
	case StatePlay:
		// Stays in Play, the timer has already re-armed itself
		return EffectNone, false
	}
	return EffectNone, true
}

// Handle applies a message.
// Messages that do not apply to the current state are ignored.
func (m *StateMachine) Handle(msg StateMessage, shared *SharedState) (TransitionEffect, bool) {
	switch msg {
	case MsgPressPlay:
		if shared.State == StateInsertCoin || shared.State == StateLeaderBoard {
			m.enter(shared, StateStart)
			return EffectNone, true
		}

	case MsgInfo:
		switch shared.State {
		case StateGameOver, StateInsertCoin:
			m.enter(shared, StateLeaderBoard)
			return EffectNone, true
		case StateLeaderBoard:
			m.enter(shared, StateInsertCoin)
			return EffectNone, true
		}

	case MsgLoseLife:
		if shared.State != StatePlay && shared.State != StatePlayerSpawn {
			return EffectNone, false
		}
		assertInvariant(m.cfg.Debug, shared.Lives > 0, "losing a life with %d lives", shared.Lives)
		if shared.Lives > 0 {
			shared.Lives--
		}
		if shared.Lives == 0 {
			m.SpawnRemaining = 0
			m.enter(shared, StateGameOver)
			return EffectNone, true
		}
		m.SpawnRemaining = m.cfg.PlayerSpawnTicks
		m.enter(shared, StatePlayerSpawn)
		return EffectRespawnPlayer, true

	case MsgNewWave:
		// The last alien can fall while the player is still blinking
		if shared.State == StatePlay || shared.State == StatePlayerSpawn {
			m.SpawnRemaining = 0
			m.enter(shared, StateNewWave)
			return EffectNone, true
		}
	}
	return EffectNone, false
}
