package input

import (
	"math"

	cfg "github.com/automoto/space-kitsune/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard samples keyboard and standard-layout gamepads through ebiten,
// merging every device into one Sample.
type Keyboard struct {
	gamepadIDs []ebiten.GamepadID
}

// NewKeyboard creates a keyboard/gamepad source using cfg.Input bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Sample(float64) Sample {
	var pressed [cfg.ActionCount]bool

	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	s := Sample{
		Horizontal: digitalAxis(pressed[cfg.ActionAimLeft], pressed[cfg.ActionAimRight]),
		Vertical:   digitalAxis(pressed[cfg.ActionAimDown], pressed[cfg.ActionAimUp]),
		Boost:      pressed[cfg.ActionBoost],
		Brake:      pressed[cfg.ActionBrake],
		Fire:       pressed[cfg.ActionFire],
	}

	// Analog stick overrides the digital axes when pushed past the deadzone
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) > cfg.Input.AnalogDeadzone {
			s.Horizontal = h
		}
		if math.Abs(v) > cfg.Input.AnalogDeadzone {
			// Stick up is negative in the standard layout
			s.Vertical = -v
		}
	}

	return s
}

func digitalAxis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	default:
		return 0
	}
}
