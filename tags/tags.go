package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the level's spatial index
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
