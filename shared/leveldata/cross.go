package leveldata

import (
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
)

// crossSolids is the fixed compiled level: a ledge, a pillar, the main
// ground strip, a staircase of 5x5 steps and a block on the far left.
var crossSolids = [...]gamemath.Rect{
	{X: 20, Y: 20, W: 30, H: 5},
	{X: 40, Y: 22, W: 10, H: 18},
	{X: -10, Y: 30, W: 60, H: 5},
	{X: 60, Y: 30, W: 5, H: 5},
	{X: 65, Y: 25, W: 5, H: 5},
	{X: 70, Y: 20, W: 5, H: 5},
	{X: 75, Y: 15, W: 5, H: 5},
	{X: 80, Y: 10, W: 5, H: 5},
	{X: 85, Y: 5, W: 5, H: 5},
	{X: 90, Y: 0, W: 5, H: 5},
	{X: -50, Y: 10, W: 20, H: 30},
}

// Cross returns a fresh copy of the built-in level so callers cannot mutate
// the shared definition.
func Cross() *CollisionData {
	solids := make([]gamemath.Rect, len(crossSolids))
	copy(solids, crossSolids[:])
	return &CollisionData{
		SolidRects: solids,
		Spawn: SpawnPoint{
			X:       config.Player.SpawnX,
			Y:       config.Player.SpawnY,
			CameraX: config.Player.CameraX,
			CameraY: config.Player.CameraY,
		},
	}
}

// Empty returns a level with no solids, only the baseline floor plane.
func Empty() *CollisionData {
	data := Cross()
	data.SolidRects = nil
	return data
}

// Bounds returns the rectangle enclosing every solid, or the zero Rect when
// there are none.
func (d *CollisionData) Bounds() gamemath.Rect {
	if len(d.SolidRects) == 0 {
		return gamemath.Rect{}
	}
	b := d.SolidRects[0]
	for _, r := range d.SolidRects[1:] {
		b = b.Union(r)
	}
	return b
}
