package tags

import "github.com/yohamta/donburi"

var (
	Actor          = donburi.NewTag().SetName("Actor")
	Player         = donburi.NewTag().SetName("Player")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Hitbox         = donburi.NewTag().SetName("Hitbox")
)

// Spatial index tags.
const (
	IndexPlatform = "platform"
	IndexActor    = "actor"
)
