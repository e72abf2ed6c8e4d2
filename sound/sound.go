// Package sound plays synthesized cues for outbound game events
package sound

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"invaders/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue durations
const (
	zapDuration       = 120 * time.Millisecond
	blastDuration     = 600 * time.Millisecond
	waveNoteDuration  = 90 * time.Millisecond
	bonusNoteDuration = 70 * time.Millisecond
)

// Manager mixes the game cues into the speaker
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewManager creates a manager; nothing is played until Initialize
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences every active cue
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// SetMuted turns playback off without closing the device
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Muted reports whether playback is off
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Handle plays the cue of every event that has one
func (m *Manager) Handle(events []game.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	for _, e := range events {
		cue := Cue(e)
		if cue == nil {
			continue
		}
		speaker.Lock()
		m.mixer.Add(cue)
		speaker.Unlock()
	}
}

// Cue returns the finite streamer for an event, or nil when the event is silent
func Cue(e game.Event) beep.Streamer {
	switch e.Type {
	case game.EventAlienHitSound:
		return beep.Take(sampleRate.N(zapDuration), NewZapGenerator(sampleRate, 1400, 300))
	case game.EventLoseLife:
		return beep.Take(sampleRate.N(blastDuration), NewBlastGenerator(sampleRate, rand.Int63()))
	case game.EventNewWave:
		return notes(waveNoteDuration, 262, 330, 392, 523)
	case game.EventBonusLife:
		return notes(bonusNoteDuration, 784, 1047, 784, 1047)
	}
	return nil
}

// notes plays pure tones back to back
func notes(d time.Duration, freqs ...float64) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sampleRate, f)
		if err != nil {
			// Only frequencies above the Nyquist limit fail
			continue
		}
		streamers = append(streamers, beep.Take(sampleRate.N(d), quiet(tone, 0.2)))
	}
	return beep.Seq(streamers...)
}

// quiet scales a streamer by a constant gain
func quiet(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}

// ZapGenerator sweeps a square-ish tone down, the classic hit sound
type ZapGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	length   int
	phase    float64
}

// NewZapGenerator creates a zap that sweeps from one frequency to another over zapDuration
func NewZapGenerator(sr beep.SampleRate, from, to float64) *ZapGenerator {
	return &ZapGenerator{sr: sr, from: from, to: to, length: sr.N(zapDuration)}
}

func (g *ZapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)

		sample := 0.25 * math.Sin(2*math.Pi*g.phase)
		sample += 0.08 * math.Sin(6*math.Pi*g.phase)
		sample *= 1 - progress

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ZapGenerator) Err() error {
	return nil
}

// BlastGenerator produces decaying low-passed noise for the player explosion
type BlastGenerator struct {
	sr   beep.SampleRate
	rng  *rand.Rand
	pos  int
	last float64
}

// NewBlastGenerator creates a noise burst with a deterministic seed
func NewBlastGenerator(sr beep.SampleRate, seed int64) *BlastGenerator {
	return &BlastGenerator{sr: sr, rng: rand.New(rand.NewSource(seed))}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		noise := g.rng.Float64()*2 - 1

		// One-pole low pass keeps the rumble
		g.last += 0.08 * (noise - g.last)
		sample := 0.6 * g.last * math.Exp(-4*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
