package components

import (
	"github.com/automoto/cross/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	// Solids is immutable for the lifetime of the session and resolved in
	// order.
	Solids []gamemath.Rect

	// Space indexes Solids for debug queries. resolv cells start at 0,0 so
	// objects are stored relative to Origin.
	Space   *resolv.Space
	Origin  gamemath.Rect
	Objects []*resolv.Object
}

// ToSpace converts world coordinates to space coordinates.
func (l *LevelData) ToSpace(x, y int) (float64, float64) {
	return float64(x - l.Origin.X), float64(y - l.Origin.Y)
}

var Level = donburi.NewComponentType[LevelData]()
