package factory

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/leveldata"
)

// BuildLevel creates the spatial index sized to the level and populates it
// with the level's static and moving platform entities. The level-loading
// collaborator populates these once; the per-pass index rebuild treats them
// as the default obstacle set.
func BuildLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	space := CreateSpace(ecs, 0, 0, lvl.Width, lvl.Height)

	for _, p := range lvl.Platforms {
		CreatePlatform(ecs, p.Name, p.X, p.Y, p.HalfW, p.HalfH)
	}
	for _, mp := range lvl.MovingPlatforms {
		CreateMovingPlatform(ecs, mp.Name, mp.X, mp.Y, mp.HalfW, mp.HalfH,
			components.Vector{X: mp.DirX, Y: mp.DirY}, mp.Distance, mp.Duration, mp.Sticky)
	}

	log.Printf("Built level %s: %d platforms, %d moving, %d player spawns, %.0fx%.0f world",
		lvl.Name, len(lvl.Platforms), len(lvl.MovingPlatforms), len(lvl.PlayerSpawns), lvl.Width, lvl.Height)

	return space
}
