package arcade

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders/game"
)

// stickHysteresis keeps a resting stick from drifting the player
const stickHysteresis = 0.01

// InputFrame is the device state sampled once per update
type InputFrame struct {
	Left, Right bool
	Slow        bool
	Fire        bool // edge-triggered, or held for the up arrow
	Play        bool
	Info        bool
	Stick       float64
}

// Translate turns one input frame into game intents
func Translate(in InputFrame, state game.GameState, slow float64) []game.Event {
	var events []game.Event

	speed := 1.0
	if in.Slow {
		speed = slow
	}
	if in.Left {
		events = append(events, game.MoveIntent(-speed))
	}
	if in.Right {
		events = append(events, game.MoveIntent(speed))
	}
	if math.Abs(in.Stick) > stickHysteresis {
		events = append(events, game.MoveIntent(in.Stick))
	}

	if in.Info {
		events = append(events, game.RequestInfo())
	}

	switch state {
	case game.StateInsertCoin, game.StateLeaderBoard:
		if in.Play {
			events = append(events, game.RequestPlay())
		}
	case game.StatePlayerSpawn, game.StatePlay:
		if in.Fire {
			events = append(events, game.FireIntent())
		}
	}

	return events
}

// PollInput samples the keyboard and every standard gamepad
func PollInput(gamepads []ebiten.GamepadID) InputFrame {
	in := InputFrame{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Slow:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Fire:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Play:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !altPressed(),
		Info:  inpututil.IsKeyJustPressed(ebiten.KeyI),
	}

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// South both fires and inserts a coin, the state decides which
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.Fire = true
			in.Play = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop) {
			in.Info = true
		}
		in.Stick += ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	}

	return in
}

func altPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

// toggleFullscreen flips fullscreen on Alt+Enter
func (a *App) toggleFullscreen() {
	if !altPressed() || !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}
