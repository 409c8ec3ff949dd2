package components

import (
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the player's simulated body. Position is always integral;
// velocity is truncated toward zero only when added to the position.
type BodyData struct {
	X, Y int
	W, H int

	VX, VY float64

	// Ticks since last grounded or jumped; a jump buffer window, not a flag.
	GroundedTicks int
	DashReady     bool
	FacingLeft    bool

	// Written by the integrator as a guess, overwritten by the resolver on
	// landing and by the animation system with the pose actually playing.
	Pose config.PoseID
}

// Rect returns the body's world-space bounding box.
func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

var Body = donburi.NewComponentType[BodyData]()
