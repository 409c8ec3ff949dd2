package systems

import (
	"sort"

	"github.com/automoto/cross/components"
	"github.com/automoto/cross/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves the player's resolv object to the body's resolved
// position so space queries see this tick's state.
func UpdateObjects(ecs *ecs.ECS) {
	w := ecs.World
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	tags.Player.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		obj.X, obj.Y = level.ToSpace(body.X, body.Y)
		obj.Update()
	})
}

// TouchingSolids returns the indices, in level order, of the solids the
// player currently overlaps or touches. Used by the debug overlay only;
// the resolver walks the full list itself.
func TouchingSolids(w donburi.World) []int {
	player, ok := tags.Player.First(w)
	if !ok {
		return nil
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	body := components.Body.Get(player).Rect()
	obj := components.Object.Get(player)

	// The space only narrows the candidates down to shared cells.
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var touching []int
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		index, ok := solid.Data.(int)
		if !ok || index >= len(level.Solids) {
			continue
		}
		if body.Touches(level.Solids[index]) {
			touching = append(touching, index)
		}
	}
	sort.Ints(touching)
	return touching
}
