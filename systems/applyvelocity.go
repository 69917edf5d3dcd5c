package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/tags"
)

// UpdateApplyVelocity integrates actor positions on the axes the narrow phase
// left free. Blocked axes were already placed by apply-collision, so moving
// them again would double the correction.
func UpdateApplyVelocity(e *ecs.ECS) {
	dt := cfg.Physics.DeltaTime
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		vel := components.Velocity.Get(entry)
		collidee := components.Collidee.Get(entry)

		delta := vel.ProjectMove(dt)
		if collidee.Horizontal == nil {
			pos.Vec.X += delta.X
		}
		if collidee.Vertical == nil {
			pos.Vec.Y += delta.Y
		}
	})
}
