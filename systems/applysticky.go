package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/tags"
)

// UpdateApplySticky carries riders along with the moving platform under them:
// the platform's delta for this step is added to the rider's position after
// integration, so they track the platform without sliding off it. An actor
// rides when it is flagged Sticky or the platform itself is sticky.
func UpdateApplySticky(e *ecs.ECS) {
	components.Sticky.Each(e.World, func(entry *donburi.Entry) {
		if !components.Grounded.Get(entry).Value {
			return
		}

		collidee := components.Collidee.Get(entry)
		gdir := components.GravityDirection.Get(entry).Dir
		det := collidee.GroundDetails(gdir)
		if det == nil || !e.World.Valid(det.Entity) {
			return
		}
		ground := e.World.Entry(det.Entity)
		if !ground.HasComponent(tags.MovingPlatform) {
			return
		}

		plat := components.Platform.Get(ground)
		if !components.Sticky.Get(entry).Value && !plat.Sticky {
			return
		}

		// When the snap already tracked the surface this step, only the
		// perpendicular share of the delta is owed; adding the gravity-axis
		// share too would park the rider one step ahead of the surface. With
		// no current contact (the platform outran the snap tolerance) the
		// full delta keeps the rider attached.
		delta := plat.Delta
		if collidee.BlockedToward(gdir) {
			axis, _ := gdir.DownAxis()
			delta.SetAlong(axis, 0)
		}

		pos := components.Position.Get(entry)
		pos.Vec = pos.Vec.Add(delta)
	})
}
