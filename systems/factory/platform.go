package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/archetypes"
	"github.com/molehill-games/burrow/components"
)

// CreatePlatform creates a static platform collider centered at (x, y).
func CreatePlatform(ecs *ecs.ECS, name string, x, y, halfW, halfH float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Position.SetValue(platform, components.PositionData{Vec: components.Vector{X: x, Y: y}})
	components.PlatformCuboid.SetValue(platform, components.NewPlatformCuboid(halfW, halfH))
	components.Platform.SetValue(platform, components.PlatformData{
		Name:   name,
		Origin: components.Vector{X: x, Y: y},
	})
	return platform
}

// CreateMovingPlatform creates a platform that travels distance units along
// dir and back, each leg taking duration steps. Riders flagged Sticky inherit
// its per-step delta; a sticky platform carries every grounded rider.
func CreateMovingPlatform(ecs *ecs.ECS, name string, x, y, halfW, halfH float64, dir components.Vector, distance, duration float64, sticky bool) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	components.Position.SetValue(platform, components.PositionData{Vec: components.Vector{X: x, Y: y}})
	components.PlatformCuboid.SetValue(platform, components.NewPlatformCuboid(halfW, halfH))
	components.Platform.SetValue(platform, components.PlatformData{
		Name:   name,
		Origin: components.Vector{X: x, Y: y},
		Dir:    dir,
		Sticky: sticky,
	})

	// The platform travels using a sequence of tweens, moving out and back.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(distance), float32(duration), ease.Linear),
		gween.New(float32(distance), 0, float32(duration), ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
