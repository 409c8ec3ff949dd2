package systems

import (
	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Contact classifies how a body touches one solid.
type Contact int

const (
	ContactNone Contact = iota
	ContactFeet
	ContactHead
	ContactLeft
	ContactRight
)

func (c Contact) String() string {
	switch c {
	case ContactFeet:
		return "feet"
	case ContactHead:
		return "head"
	case ContactLeft:
		return "left"
	case ContactRight:
		return "right"
	}
	return "none"
}

// Classify returns the single contact between body and solid, checked in
// priority order feet, head, left, right. Touching edges count as overlap.
func Classify(body, solid gamemath.Rect) Contact {
	bl, br, bt, bb := body.Left(), body.Right(), body.Top(), body.Bottom()
	sl, sr, st, sb := solid.Left(), solid.Right(), solid.Top(), solid.Bottom()

	if !body.Touches(solid) {
		return ContactNone
	}

	overlapX := br > sl && bl < sr

	// Bottom edge at or below the solid's top, top edge still above it.
	if bb >= st && bt < st && overlapX {
		return ContactFeet
	}
	// Top edge at or above the solid's bottom, bottom edge below it.
	if bt <= sb && bb > sb && overlapX {
		return ContactHead
	}

	if overlapX {
		if bl < sl && br > sl {
			return ContactLeft
		}
		if br > sr && bl < sr {
			return ContactRight
		}
	}

	return ContactNone
}

// UpdateCollisions corrects the player against every solid of the level.
func UpdateCollisions(ecs *ecs.ECS) {
	w := ecs.World
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	tags.Player.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		intent := components.Intent.Get(e)
		Resolve(body, *intent, level.Solids)
	})
}

// Resolve walks solids in list order, reclassifying against the body's
// current box each time. Corrections are not accumulated: a later solid
// overwrites what an earlier one wrote on the same axis.
func Resolve(body *components.BodyData, in components.IntentData, solids []gamemath.Rect) {
	for _, solid := range solids {
		switch Classify(body.Rect(), solid) {
		case ContactFeet:
			landOn(body, in, solid)
		case ContactHead:
			body.Y = solid.Bottom()
			body.VY = 0
		case ContactLeft:
			body.X = gamemath.TruncateTowardZero(float64(solid.Left()-body.W) - cfg.Resolver.SideGap)
			body.VX = 0
		case ContactRight:
			body.X = gamemath.TruncateTowardZero(float64(solid.Right()) + cfg.Resolver.SideGap)
			body.VX = 0
		}
	}
}

func landOn(body *components.BodyData, in components.IntentData, solid gamemath.Rect) {
	body.Y = solid.Top() - body.H
	body.VY = cfg.Resolver.LandingSpeed
	body.GroundedTicks = 0
	if in.Horizontal == components.HorizontalNone {
		body.Pose = cfg.Idle
	} else {
		body.Pose = cfg.Walk
	}
}
