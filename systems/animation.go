package systems

import (
	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation plays the pose the integrator and resolver requested and
// writes the pose actually playing back to the body.
func UpdateAnimation(ecs *ecs.ECS) {
	w := ecs.World
	tags.Player.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		anim := components.Animation.Get(e)
		body.Pose = Animate(anim, body.Pose)
	})
}

// Animate advances anim by one tick toward requested and returns the pose
// that is playing afterwards.
//
// A lock freezes transitions: while Lock >= 1 the request is replaced by the
// playing pose, so a Spin always runs its locked loops before anything can
// pre-empt it. Lock is decremented on every completed loop and never
// floored; it only resets when a transition commits.
func Animate(anim *components.AnimationData, requested cfg.PoseID) cfg.PoseID {
	if anim.Lock >= 1 {
		requested = anim.Playing
	}

	if requested == anim.Playing && anim.Profile.FrameCount != 0 {
		if anim.Counter >= anim.Profile.TicksPerFrame {
			anim.Frame++
			anim.Counter = 0
			if anim.Frame >= anim.Profile.FrameCount {
				anim.Frame = 0
				anim.Lock--
			}
		}
		anim.Counter++
		return anim.Playing
	}

	if (requested == cfg.Spin || anim.Playing == cfg.Spin) && anim.Lock >= 1 {
		return anim.Playing
	}

	// Static poses (no frames) come through here every tick and simply
	// reload their own profile.
	profile := cfg.Animations[requested]
	anim.Playing = requested
	anim.Frame = 0
	anim.Counter = 0
	anim.Profile = profile
	anim.Lock = profile.Lock
	return anim.Playing
}
