// Package leveldata provides the static level geometry shared by the game
// and the headless runner. Pure data, no engine imports.
package leveldata

import "github.com/automoto/cross/shared/gamemath"

// CollisionData holds all collision-relevant data for a level.
type CollisionData struct {
	// SolidRects is resolved in order; a later rect can overwrite the
	// correction of an earlier one in the same tick.
	SolidRects []gamemath.Rect
	Spawn      SpawnPoint
}

// SpawnPoint is the player's start position and the initial camera offset.
type SpawnPoint struct {
	X, Y             int
	CameraX, CameraY int
}
