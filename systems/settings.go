package systems

import (
	"github.com/automoto/cross/components"
	"github.com/yohamta/donburi"
)

// currentSettings returns the world's settings, or the zero settings
// (platformer profile, no outline) when none were spawned.
func currentSettings(w donburi.World) components.SettingsData {
	if entry, ok := components.Settings.First(w); ok {
		return *components.Settings.Get(entry)
	}
	return components.SettingsData{}
}
