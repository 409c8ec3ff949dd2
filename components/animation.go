package components

import (
	"github.com/automoto/cross/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Playing config.PoseID
	Frame   int
	Counter int
	// Lock can go negative: every completed loop decrements it, and only a
	// committed transition reloads it.
	Lock    int
	Profile config.AnimationProfile
}

var Animation = donburi.NewComponentType[AnimationData]()
