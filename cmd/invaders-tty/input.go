package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"invaders/game"
)

// Terminals report key presses and auto-repeats, never releases, so a held
// direction is kept alive for holdTime after its last event
const holdTime = 150 * time.Millisecond

type keyLatch struct {
	until time.Time
}

func (k *keyLatch) press(now time.Time) {
	k.until = now.Add(holdTime)
}

func (k *keyLatch) active(now time.Time) bool {
	return now.Before(k.until)
}

func (k *keyLatch) release() {
	k.until = time.Time{}
}

// controls turns tcell key events into game intents
type controls struct {
	left, right keyLatch
	slow        bool
	fire        bool
	play        bool
	info        bool
	mute        bool
}

// handleKey records a key event; it returns false when the player asked to quit
func (c *controls) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		c.left.press(now)
		c.right.release()
		c.slow = ev.Modifiers()&tcell.ModShift != 0
	case tcell.KeyRight:
		c.right.press(now)
		c.left.release()
		c.slow = ev.Modifiers()&tcell.ModShift != 0
	case tcell.KeyUp:
		c.fire = true
	case tcell.KeyEnter:
		c.play = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			c.left.press(now)
			c.right.release()
			c.slow = false
		case 'A':
			c.left.press(now)
			c.right.release()
			c.slow = true
		case 'd':
			c.right.press(now)
			c.left.release()
			c.slow = false
		case 'D':
			c.right.press(now)
			c.left.release()
			c.slow = true
		case ' ':
			c.fire = true
		case 'i', 'I':
			c.info = true
		case 'm', 'M':
			c.mute = true
		case 'q':
			return false
		}
	}
	return true
}

// intents returns the events for this tick and clears the one-shot keys
func (c *controls) intents(state game.GameState, slow float64, now time.Time) []game.Event {
	var events []game.Event

	speed := 1.0
	if c.slow {
		speed = slow
	}
	if c.left.active(now) {
		events = append(events, game.MoveIntent(-speed))
	}
	if c.right.active(now) {
		events = append(events, game.MoveIntent(speed))
	}
	if c.info {
		events = append(events, game.RequestInfo())
	}

	switch state {
	case game.StateInsertCoin, game.StateLeaderBoard:
		if c.play {
			events = append(events, game.RequestPlay())
		}
	case game.StatePlayerSpawn, game.StatePlay:
		if c.fire {
			events = append(events, game.FireIntent())
		}
	}

	c.fire, c.play, c.info = false, false, false
	return events
}

// toggleMute reports and clears a pending mute toggle
func (c *controls) toggleMute() bool {
	m := c.mute
	c.mute = false
	return m
}
