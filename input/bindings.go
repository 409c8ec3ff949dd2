package input

import "github.com/hajimehoshi/ebiten/v2"

// Button is one of the six held pad buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonCount // Must be last - used for array sizing
)

// Binding represents the keys and pad buttons that hold one Button
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Toggle keys, checked on press only
const (
	KeyToggleOutline = ebiten.KeyF1
	KeyToggleProfile = ebiten.KeyF2
)

// Bindings maps every Button to its keys and pad buttons
var Bindings = [ButtonCount]Binding{
	ButtonLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	ButtonRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	ButtonUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	ButtonDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	// Jump
	ButtonA: {
		Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	// Dash
	ButtonB: {
		Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
}
