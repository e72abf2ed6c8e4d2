package sound

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/game"
)

// drain streams s to the end and returns the samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("cue never ended")
	return nil
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		event game.EventType
		want  int
	}{
		{game.EventAlienHitSound, sampleRate.N(zapDuration)},
		{game.EventLoseLife, sampleRate.N(blastDuration)},
		{game.EventNewWave, 4 * sampleRate.N(waveNoteDuration)},
		{game.EventBonusLife, 4 * sampleRate.N(bonusNoteDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			cue := Cue(game.Event{Type: tt.event})
			require.NotNil(t, cue)
			assert.Len(t, drain(t, cue), tt.want)
		})
	}
}

func TestSilentEvents(t *testing.T) {
	for _, typ := range []game.EventType{game.EventStateChanged, game.EventExplosionSpawned, game.EventFireIntent} {
		assert.Nil(t, Cue(game.Event{Type: typ}), typ.String())
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"zap":   beep.Take(sampleRate.N(zapDuration), NewZapGenerator(sampleRate, 1400, 300)),
		"blast": beep.Take(sampleRate.N(blastDuration), NewBlastGenerator(sampleRate, 12345)),
	} {
		samples := drain(t, s)
		peak := 0.0
		for _, smp := range samples {
			assert.Equal(t, smp[0], smp[1], "%s must be mono", name)
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		assert.LessOrEqual(t, peak, 1.0, name)
		assert.Positive(t, peak, name)
	}
}

func TestHandleWithoutDeviceIsSilent(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() {
		m.Handle([]game.Event{{Type: game.EventAlienHitSound}})
		m.Cleanup()
	})
}
