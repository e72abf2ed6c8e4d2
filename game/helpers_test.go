package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSeed = 12345

// testConfig returns the default tuning with a fixed seed and panicking invariants
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = testSeed
	cfg.Debug = true
	return cfg
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(testSeed))
}

// fixedSource makes every Float64 roll return the same value
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (s fixedSource) Seed(int64)   {}

// alwaysRNG rolls 0 so every drop attempt succeeds
func alwaysRNG() *rand.Rand { return rand.New(fixedSource(0)) }

// neverRNG rolls 0.5 so no drop attempt succeeds with more than two columns
func neverRNG() *rand.Rand { return rand.New(fixedSource(1 << 62)) }

func newTestGame(t *testing.T, mutate ...func(*Config)) *Game {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	g, err := NewGame(cfg)
	require.NoError(t, err)
	return g
}

// startRound drives the game from InsertCoin into Play and discards the events
func startRound(t *testing.T, g *Game) {
	t.Helper()
	g.Push(RequestPlay())
	g.Tick(0.01)
	require.Equal(t, StateStart, g.State())

	g.Tick(g.cfg.TransitionStart)
	require.Equal(t, StatePlay, g.State())
	g.DrainEvents()
}

func eventsOfType(events []Event, typ EventType) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
