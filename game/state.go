package game

import "log"

// GameState is the top-level mode of the game
type GameState int

const (
	StateGameOver GameState = iota
	StateInsertCoin
	StateLeaderBoard
	StateStart
	StatePlayerSpawn
	StatePlay
	StateNewWave
)

var stateNames = [...]string{
	StateGameOver:    "GameOver",
	StateInsertCoin:  "InsertCoin",
	StateLeaderBoard: "LeaderBoard",
	StateStart:       "Start",
	StatePlayerSpawn: "PlayerSpawn",
	StatePlay:        "Play",
	StateNewWave:     "NewWave",
}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Attract reports whether the state is one of the idle attract screens
func (s GameState) Attract() bool {
	return s == StateGameOver || s == StateInsertCoin || s == StateLeaderBoard
}

// InGame reports whether a round is in progress
func (s GameState) InGame() bool {
	return s == StatePlay || s == StatePlayerSpawn || s == StateNewWave
}

// SharedState is the cross-cutting game context passed to every subsystem.
// Each field has a single writer, noted next to it.
type SharedState struct {
	Score        uint32    // collision pass (kills), Game (reset)
	Lives        uint8     // state machine
	Wave         uint8     // Game (effects)
	AliensKilled uint8     // collision pass, Game (effects)
	AlienSpeed   float64   // collision pass, Game (effects)
	State        GameState // state machine

	WaveSpeed  float64 // Alien speed at the start of the current wave, Game (effects)
	NextLifeAt uint32  // Score that grants the next bonus life, Game
	lifeGap    float64 // Points between the last two bonus-life thresholds
}

// NewSharedState returns the context of a fresh round
func NewSharedState(cfg Config) SharedState {
	s := SharedState{State: StateInsertCoin}
	s.ResetRound(cfg)
	return s
}

// ResetRound restores score, lives, wave and the speed ramp
func (s *SharedState) ResetRound(cfg Config) {
	s.Score = 0
	s.Lives = cfg.Lives
	s.Wave = 1
	s.AliensKilled = 0
	s.AlienSpeed = cfg.AlienSpeedStart
	s.WaveSpeed = cfg.AlienSpeedStart
	s.lifeGap = float64(cfg.ScoreNewLife)
	s.NextLifeAt = cfg.ScoreNewLife
}

// NextWave advances the wave counter and ramps the wave start speed
func (s *SharedState) NextWave(cfg Config) {
	if s.Wave < 255 {
		s.Wave++
	}
	s.WaveSpeed += cfg.AlienSpeedWave
	if s.WaveSpeed > cfg.AlienSpeedMax {
		s.WaveSpeed = cfg.AlienSpeedMax
	}
	s.AlienSpeed = s.WaveSpeed
	s.AliensKilled = 0
}

// AwardBonusLives grants a life for each threshold the score has passed.
// Returns the number of lives granted.
func (s *SharedState) AwardBonusLives(cfg Config) int {
	if cfg.ScoreNewLife == 0 {
		return 0
	}

	granted := 0
	for s.Score >= s.NextLifeAt {
		if s.Lives < 255 {
			s.Lives++
		}
		granted++

		s.lifeGap *= cfg.ScoreScale
		if s.lifeGap < 1 {
			s.lifeGap = 1
		}
		s.NextLifeAt += uint32(s.lifeGap)
	}
	return granted
}

// assertInvariant reports a broken invariant.
// With debug set the game panics, otherwise the violation is logged and play continues.
func assertInvariant(debug, ok bool, format string, args ...any) {
	if ok {
		return
	}
	if debug {
		log.Panicf("invariant violated: "+format, args...)
	}
	log.Printf("invariant violated: "+format, args...)
}
