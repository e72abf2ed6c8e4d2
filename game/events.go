package game

import (
	"fmt"
	"sync"
)

// EventType identifies an inbound intent or an outbound outcome
type EventType int

const (
	// Inbound intents, pushed by front-ends
	EventFireIntent EventType = iota
	EventMoveIntent
	EventRequestPlay
	EventRequestInfo

	// Outbound outcomes, drained by front-ends once per tick
	EventLoseLife
	EventNewWave
	EventAlienHitSound
	EventExplosionSpawned
	EventBonusLife
	EventStateChanged
)

var eventNames = [...]string{
	EventFireIntent:       "FireIntent",
	EventMoveIntent:       "MoveIntent",
	EventRequestPlay:      "RequestPlay",
	EventRequestInfo:      "RequestInfo",
	EventLoseLife:         "LoseLife",
	EventNewWave:          "NewWave",
	EventAlienHitSound:    "AlienHitSound",
	EventExplosionSpawned: "ExplosionSpawned",
	EventBonusLife:        "BonusLife",
	EventStateChanged:     "StateChanged",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return fmt.Sprintf("EventType(%d)", int(t))
	}
	return eventNames[t]
}

// Explosion describes particles a front-end should spawn
type Explosion struct {
	Count  int
	Pos    Vec2
	Speed  float64
	Spread float64
	Size   Vec2
}

// Event is a tagged message; only the payload matching Type is meaningful
type Event struct {
	Type EventType

	Magnitude float64   // MoveIntent
	Explosion Explosion // ExplosionSpawned
	From, To  GameState // StateChanged
}

// FireIntent asks the player to shoot
func FireIntent() Event { return Event{Type: EventFireIntent} }

// MoveIntent sets the signed horizontal move intent for the next tick
func MoveIntent(magnitude float64) Event {
	return Event{Type: EventMoveIntent, Magnitude: magnitude}
}

// RequestPlay asks to start a round from the attract screens
func RequestPlay() Event { return Event{Type: EventRequestPlay} }

// RequestInfo toggles the leader board on the attract screens
func RequestInfo() Event { return Event{Type: EventRequestInfo} }

// Explosion presets, count and speed per hit kind
var (
	explosionBulletLazer  = Explosion{Count: 10, Speed: 150, Size: Vec2{10, 10}}
	explosionBulletPlayer = Explosion{Count: 100, Speed: 1000, Size: Vec2{10, 10}}
	explosionBulletBunker = Explosion{Count: 10, Speed: 150, Size: Vec2{10, 10}}
	explosionLazerBunker  = Explosion{Count: 5, Speed: 50, Size: Vec2{10, 10}}
	explosionAlien        = Explosion{Count: 10, Speed: 500, Size: Vec2{10, 10}}
)

func explosionAt(preset Explosion, pos Vec2) Event {
	preset.Pos = pos
	return Event{Type: EventExplosionSpawned, Explosion: preset}
}

// EventQueue is a FIFO of events.
// Push is safe from any goroutine so input callbacks can feed the tick loop.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain removes and returns every queued event in push order
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
