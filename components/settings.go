package components

import (
	"github.com/automoto/cross/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds per-session options the systems consult every tick.
type SettingsData struct {
	Profile config.PhysicsProfile
	Outline bool
}

var Settings = donburi.NewComponentType[SettingsData]()
