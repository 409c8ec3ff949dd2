package systems

import (
	"github.com/automoto/cross/components"
)

// MapButtons turns held buttons into one tick's intent. Right overrides
// left, up overrides down and B (dash) overrides A (jump).
func MapButtons(b components.ButtonsData) components.IntentData {
	var in components.IntentData

	if b.Left {
		in.Horizontal = components.HorizontalLeft
	}
	if b.Right {
		in.Horizontal = components.HorizontalRight
	}

	if b.Down {
		in.Vertical = components.VerticalDown
	}
	if b.Up {
		in.Vertical = components.VerticalUp
	}

	if b.A {
		in.Action = components.ActionJump
	}
	if b.B {
		in.Action = components.ActionDash
	}

	return in
}

// Facing follows the held horizontal direction and keeps the previous
// value while none is held.
func Facing(in components.IntentData, facingLeft bool) bool {
	switch in.Horizontal {
	case components.HorizontalLeft:
		return true
	case components.HorizontalRight:
		return false
	}
	return facingLeft
}
