package factory

import (
	"github.com/automoto/cross/archetypes"
	"github.com/automoto/cross/components"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall spawns one solid of the level and indexes it in the level's
// space. index is the solid's position in the ordered geometry list.
func CreateWall(w donburi.World, level *components.LevelData, index int, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	x, y := level.ToSpace(r.X, r.Y)
	obj := resolv.NewObject(x, y, float64(r.W), float64(r.H), tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(r.W), float64(r.H)))
	obj.Data = index // Link back to the ordered list

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	level.Space.Add(obj)
	level.Objects = append(level.Objects, obj)

	return wall
}
