// Package autopilot drives the player from a JavaScript decide(ctx) script.
// Front-ends use it for unattended demo play and for testing bot strategies.
package autopilot

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"invaders/game"
)

//go:embed scripts/hunter.js
var hunterScript string

// Builtin is the name that selects the embedded script
const Builtin = "builtin"

// Pilot turns script decisions into game intents
type Pilot struct {
	runner *Runner
	cfg    game.Config

	failures int
}

// New creates a pilot from script source
func New(name, code string, cfg game.Config) (*Pilot, error) {
	runner, err := NewRunner(name, code)
	if err != nil {
		return nil, err
	}
	return &Pilot{runner: runner, cfg: cfg}, nil
}

// Load creates a pilot from a script file, or from the embedded hunter script
// when path is Builtin
func Load(path string, cfg game.Config) (*Pilot, error) {
	if path == Builtin {
		return New("hunter.js", hunterScript, cfg)
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pilot script: %w", err)
	}
	return New(path, string(code), cfg)
}

// Intents asks the script what to do in this frame.
// Script errors are logged and the frame is skipped.
func (p *Pilot) Intents(snap game.Snapshot, dt float64) []game.Event {
	decision, err := p.runner.Decide(BuildContext(snap, p.cfg, dt))
	if err != nil {
		p.failures++
		// Log the first failure and then every 600th so a broken script does not flood the log
		if p.failures%600 == 1 {
			log.Printf("pilot %s: %v (%d failures)", p.runner.Name(), err, p.failures)
		}
		return nil
	}

	var events []game.Event
	if decision.Play && (snap.State == game.StateInsertCoin || snap.State == game.StateLeaderBoard) {
		events = append(events, game.RequestPlay())
	}
	if decision.Move != 0 {
		move := decision.Move
		if move > 1 {
			move = 1
		} else if move < -1 {
			move = -1
		}
		events = append(events, game.MoveIntent(move))
	}
	if decision.Fire {
		events = append(events, game.FireIntent())
	}
	return events
}

// Failures returns how many frames the script failed to decide
func (p *Pilot) Failures() int {
	return p.failures
}
