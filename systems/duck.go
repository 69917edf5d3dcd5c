package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
)

// UpdateDucking applies pending crouch resizes. It runs strictly before the
// platform collision pass so a shrink requested this step is what collides
// this step.
func UpdateDucking(e *ecs.ECS) {
	components.Ducking.Each(e.World, func(entry *donburi.Entry) {
		duck := components.Ducking.Get(entry)
		if duck.Applied {
			return
		}
		points := components.PlatformCollisionPoints.Get(entry)
		duck.OldHalfHeight = points.HalfSize.Y
		points.ShrinkHeight(duck.NewHalfHeight)
		duck.Applied = true
	})
}

// StartDucking requests a crouch resize for the next ducking pass. Callers
// must invoke it between steps, never mid-resolution. A non-positive
// newHalfHeight uses the configured duck height.
func StartDucking(entry *donburi.Entry, newHalfHeight float64) {
	if entry.HasComponent(components.Ducking) {
		return
	}
	if newHalfHeight <= 0 {
		newHalfHeight = cfg.Player.DuckHalfHeight
	}
	entry.AddComponent(components.Ducking)
	components.Ducking.SetValue(entry, components.DuckingData{NewHalfHeight: newHalfHeight})
}

// StopDucking restores the full probe pattern and clears the request.
func StopDucking(entry *donburi.Entry) {
	if !entry.HasComponent(components.Ducking) {
		return
	}
	duck := components.Ducking.Get(entry)
	if duck.Applied {
		components.PlatformCollisionPoints.Get(entry).Reset()
	}
	entry.RemoveComponent(components.Ducking)
}
