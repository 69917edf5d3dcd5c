package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/tags"
)

// UpdateApplyCollisions commits the corrections the narrow phase reported:
// each blocked axis snaps to the corrected coordinate and zeroes its velocity
// component, leaving the free axis untouched. Grounded is refreshed here with
// one step of hysteresis so a single missed contact does not flicker it off.
func UpdateApplyCollisions(e *ecs.ECS) {
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		vel := components.Velocity.Get(entry)
		collidee := components.Collidee.Get(entry)
		gdir := components.GravityDirection.Get(entry).Dir

		if det := collidee.Horizontal; det != nil {
			pos.Vec.SetAlong(components.AxisX, det.NewColliderPos.Along(components.AxisX))
			vel.Vec.SetAlong(components.AxisX, det.NewColliderVel.Along(components.AxisX))
		}
		if det := collidee.Vertical; det != nil {
			pos.Vec.SetAlong(components.AxisY, det.NewColliderPos.Along(components.AxisY))
			vel.Vec.SetAlong(components.AxisY, det.NewColliderVel.Along(components.AxisY))
		}

		grounded := components.Grounded.Get(entry)
		grounded.Value = collidee.BlockedToward(gdir) || collidee.PrevBlockedToward(gdir)
	})
}
