package arcade

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate
// stays below a threshold for a while
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	minFPS   float64       // FPS below this counts as a drop
	sustain  time.Duration // how long a drop must last before capturing
	lowSince time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, minFPS float64) *Profiler {
	return &Profiler{
		captureCooldown: 30 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		minFPS:          minFPS,
		sustain:         2 * time.Second,
	}
}

// Observe feeds the current FPS; it returns true when a capture was started
func (p *Profiler) Observe(fps float64, now time.Time) bool {
	// The first frames report 0 while ebiten warms up
	if fps <= 0 || fps >= p.minFPS {
		p.lowSince = time.Time{}
		return false
	}
	if p.lowSince.IsZero() {
		p.lowSince = now
		return false
	}
	if now.Sub(p.lowSince) < p.sustain {
		return false
	}

	p.lowSince = time.Time{}
	reason := fmt.Sprintf("fps%.0f", fps)
	if err := p.CaptureProfile(reason, now); err != nil {
		return false
	}
	log.Printf("fps dropped to %.1f, capturing profile", fps)
	return true
}

// CaptureProfile starts an asynchronous CPU profile and trace capture
func (p *Profiler) CaptureProfile(reason string, now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", now.Sub(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = now
	baseName := fmt.Sprintf("fps-drop-%s-%s", now.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		p.logMemStats(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to %s (go tool pprof -http=:8080 %s)", profilePath, profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to %s", tracePath)
	return nil
}

// logMemStats records the heap at the end of a capture
func (p *Profiler) logMemStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("%s: alloc %d KB, sys %d KB, gc %d, heap objects %d",
		baseName, m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
