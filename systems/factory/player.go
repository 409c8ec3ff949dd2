package factory

import (
	"github.com/automoto/cross/archetypes"
	"github.com/automoto/cross/components"
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/leveldata"
	"github.com/automoto/cross/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a width x height player at the level's spawn point.
// The dash starts unarmed; it is armed by the first rendered frame.
func CreatePlayer(w donburi.World, level *components.LevelData, spawn leveldata.SpawnPoint, width, height int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		X:    spawn.X,
		Y:    spawn.Y,
		W:    width,
		H:    height,
		Pose: config.Idle,
	})
	components.Camera.SetValue(player, components.CameraData{
		X: spawn.CameraX,
		Y: spawn.CameraY,
	})
	// No profile loaded yet, so the first tick always commits a pose.
	components.Animation.SetValue(player, components.AnimationData{
		Playing: config.Idle,
	})

	x, y := level.ToSpace(spawn.X, spawn.Y)
	obj := resolv.NewObject(x, y, float64(width), float64(height), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(width), float64(height)))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	level.Space.Add(obj)

	return player
}
