package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/tags"
)

// UpdateMovingPlatforms advances each moving platform along its tween and
// records the per-step delta. The delta is what sticky riders inherit, so
// this runs before the collision passes see the new platform positions.
func UpdateMovingPlatforms(e *ecs.ECS) {
	dt := float32(cfg.Physics.DeltaTime)
	tags.MovingPlatform.Each(e.World, func(entry *donburi.Entry) {
		plat := components.Platform.Get(entry)
		pos := components.Position.Get(entry)
		seq := components.Tween.Get(entry)

		travel, _, done := seq.Update(dt)
		if done {
			seq.Reset()
		}

		next := plat.Origin.Add(plat.Dir.Scale(float64(travel)))
		plat.Delta = next.Sub(pos.Vec)
		pos.Vec = next
	})
}
