package systems

import (
	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the player's velocity and position by one tick
// using the session's physics profile.
func UpdatePhysics(ecs *ecs.ECS) {
	w := ecs.World
	profile := currentSettings(w).Profile
	tags.Player.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		intent := components.Intent.Get(e)
		Integrate(body, *intent, profile)
	})
}

// Integrate applies one tick of the given profile to body.
func Integrate(body *components.BodyData, in components.IntentData, profile cfg.PhysicsProfile) {
	switch profile {
	case cfg.ProfileFreeFly:
		integrateFreeFly(body, in)
	default:
		integratePlatformer(body, in)
	}
}

func integratePlatformer(body *components.BodyData, in components.IntentData) {
	p := cfg.Physics

	// Tentative pose; moving, falling, landing and dashing overwrite it.
	body.Pose = cfg.Idle

	// Honored for a short window after leaving the ground.
	if in.Action == components.ActionJump && body.GroundedTicks < p.CoyoteTicks {
		body.Y -= p.JumpNudge
		body.VY = -p.JumpSpeed
		body.VX *= p.JumpCarry
	}

	switch in.Horizontal {
	case components.HorizontalLeft:
		body.VX -= p.Acceleration
		body.Pose = cfg.Walk
	case components.HorizontalRight:
		body.VX += p.Acceleration
		body.Pose = cfg.Walk
	}

	body.VY = gamemath.ClampMax(body.VY+p.Gravity, p.MaxFallSpeed)
	body.VX *= p.Damping

	body.GroundedTicks++

	// Baseline plane, checked before this tick's position update.
	if floor := p.FloorY - body.H; body.Y >= floor {
		body.Y = floor
		body.VY = 0
		body.GroundedTicks = 0
	} else if body.VY > 0 {
		body.Pose = cfg.Fall
	} else if body.VY < 0 {
		body.Pose = cfg.Jump
	}

	applyDash(body, in)

	body.X += gamemath.TruncateTowardZero(body.VX)
	body.Y += gamemath.TruncateTowardZero(body.VY)
}

// applyDash sets the dash velocity on every held axis and consumes the dash.
// It needs at least one direction held.
func applyDash(body *components.BodyData, in components.IntentData) {
	if in.Action != components.ActionDash || !body.DashReady {
		return
	}
	if in.Horizontal == components.HorizontalNone && in.Vertical == components.VerticalNone {
		return
	}

	p := cfg.Physics
	switch in.Vertical {
	case components.VerticalUp:
		body.VY = -p.DashSpeedY
	case components.VerticalDown:
		body.VY = p.DashSpeedY
	}
	switch in.Horizontal {
	case components.HorizontalRight:
		body.VX = p.DashSpeedX
	case components.HorizontalLeft:
		body.VX = -p.DashSpeedX
	}

	body.Pose = cfg.Spin
	body.DashReady = false
}

// integrateFreeFly follows input with damped velocity on both axes. Pose
// and the grounded counter are left as they were.
func integrateFreeFly(body *components.BodyData, in components.IntentData) {
	p := cfg.FreeFly

	switch in.Horizontal {
	case components.HorizontalLeft:
		body.VX -= p.Acceleration
	case components.HorizontalRight:
		body.VX += p.Acceleration
	}
	switch in.Vertical {
	case components.VerticalUp:
		body.VY = -p.RiseSpeed
	case components.VerticalDown:
		body.VY += p.SinkAccel
	}

	body.VX *= p.Damping
	body.VY *= p.Damping

	body.X += gamemath.TruncateTowardZero(body.VX)
	body.Y += gamemath.TruncateTowardZero(body.VY)
}

// RearmDash re-arms the dash when the pose drawn last frame is known and is
// not Spin. This couples dash availability to what was displayed, not to
// landing or a cooldown.
func RearmDash(body *components.BodyData, lastDisplayed cfg.PoseID) {
	if lastDisplayed != cfg.PoseNone && lastDisplayed != cfg.Spin {
		body.DashReady = true
	}
}
