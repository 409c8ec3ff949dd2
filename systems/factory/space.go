package factory

import (
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/shared/leveldata"
	"github.com/solarlune/resolv"
)

const (
	spaceMargin = 128
	spaceCell   = 16
)

// spaceOrigin returns the world rectangle the resolv space covers: every
// solid and the spawn box, padded so the body can leave the level a little
// and still be indexed.
func spaceOrigin(data *leveldata.CollisionData, spawn gamemath.Rect) gamemath.Rect {
	b := spawn
	if len(data.SolidRects) > 0 {
		b = b.Union(data.Bounds())
	}
	return gamemath.Rect{
		X: b.X - spaceMargin,
		Y: b.Y - spaceMargin,
		W: b.W + 2*spaceMargin,
		H: b.H + 2*spaceMargin,
	}
}

func newSpace(origin gamemath.Rect) *resolv.Space {
	return resolv.NewSpace(origin.W, origin.H, spaceCell, spaceCell)
}
