package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/tags"
)

// UpdateGravity accelerates each actor along its gravity axis, clamped to the
// max fall speed. Actors resting against ground on that axis (this step or
// the previous one) are skipped so rest stays at rest.
func UpdateGravity(e *ecs.ECS) {
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		vel := components.Velocity.Get(entry)
		collidee := components.Collidee.Get(entry)
		grounded := components.Grounded.Get(entry)
		gdir := components.GravityDirection.Get(entry).Dir

		if grounded.Value && (collidee.BlockedToward(gdir) || collidee.PrevBlockedToward(gdir)) {
			return
		}

		axis, sign := gdir.DownAxis()
		v := vel.Vec.Along(axis) + sign*cfg.Physics.Gravity
		if sign*v > cfg.Physics.MaxFallSpeed {
			v = sign * cfg.Physics.MaxFallSpeed
		}
		vel.Vec.SetAlong(axis, v)
	})
}
