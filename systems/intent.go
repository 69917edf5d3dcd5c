package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/gamemath"
)

// UpdateIntent folds MoveIntent into Velocity on the gravity-relative
// horizontal axis: accelerate toward the intent, apply friction when grounded
// with no intent, clamp to the max speed. Input and AI collaborators write
// MoveIntent before the step.
func UpdateIntent(e *ecs.ECS) {
	components.MoveIntent.Each(e.World, func(entry *donburi.Entry) {
		intent := components.MoveIntent.Get(entry)
		vel := components.Velocity.Get(entry)
		grounded := components.Grounded.Get(entry)
		gdir := components.GravityDirection.Get(entry).Dir

		down, _ := gdir.DownAxis()
		move := down.Other()

		in := intent.Vec.Along(move)
		v := vel.Vec.Along(move)
		if in != 0 {
			v += in * cfg.Physics.Acceleration

			orientation := components.Orientation.Get(entry)
			facing := components.Vector{}
			if in > 0 {
				facing.SetAlong(move, 1)
			} else {
				facing.SetAlong(move, -1)
			}
			orientation.Vec = facing
		} else if grounded.Value {
			v = gamemath.ApplyFriction(v, cfg.Physics.Friction)
		}
		vel.Vec.SetAlong(move, gamemath.ClampSpeed(v, cfg.Physics.MaxSpeed))
	})
}
