// Package input reads the keyboard and gamepads into held button state.
package input

import (
	"github.com/automoto/cross/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll returns the buttons held right now across the keyboard and every
// gamepad with a standard layout.
func Poll() components.ButtonsData {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var held [ButtonCount]bool
	for button, binding := range Bindings {
		held[button] = pressed(binding)
	}

	return components.ButtonsData{
		Left:  held[ButtonLeft],
		Right: held[ButtonRight],
		Up:    held[ButtonUp],
		Down:  held[ButtonDown],
		A:     held[ButtonA],
		B:     held[ButtonB],
	}
}

func pressed(binding Binding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// OutlineToggled reports a press of the outline toggle this frame.
func OutlineToggled() bool {
	return inpututil.IsKeyJustPressed(KeyToggleOutline)
}

// ProfileToggled reports a press of the profile toggle this frame.
func ProfileToggled() bool {
	return inpututil.IsKeyJustPressed(KeyToggleProfile)
}
