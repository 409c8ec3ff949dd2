package factory

import (
	"github.com/automoto/cross/archetypes"
	"github.com/automoto/cross/components"
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel builds the level entity and one wall entity per solid, in
// list order.
func CreateLevel(w donburi.World, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	spawn := gamemath.Rect{X: data.Spawn.X, Y: data.Spawn.Y, W: config.Player.Width, H: config.Player.Height}
	origin := spaceOrigin(data, spawn)

	solids := make([]gamemath.Rect, len(data.SolidRects))
	copy(solids, data.SolidRects)

	components.Level.SetValue(level, components.LevelData{
		Solids: solids,
		Space:  newSpace(origin),
		Origin: origin,
	})

	levelData := components.Level.Get(level)
	for i, r := range solids {
		CreateWall(w, levelData, i, r)
	}

	return level
}
