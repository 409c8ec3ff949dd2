package components

import (
	"github.com/yohamta/donburi"
)

// CameraData is the screen-space offset added to world positions.
// Screen = world + offset.
type CameraData struct {
	X, Y int
}

var Camera = donburi.NewComponentType[CameraData]()
