package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/tags"
)

// An entity entering the physics pipeline must carry the full component set
// of its archetype; the passes never default-construct missing components.
var (
	Player = newArchetype(
		tags.Actor,
		tags.Player,
		components.Position,
		components.Velocity,
		components.Orientation,
		components.MoveIntent,
		components.GravityDirection,
		components.PlatformCollisionPoints,
		components.Collidee,
		components.Grounded,
		components.Sticky,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Actor,
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Velocity,
		components.Orientation,
		components.MoveIntent,
		components.GravityDirection,
		components.PlatformCollisionPoints,
		components.Collidee,
		components.Grounded,
		components.Sticky,
		components.Health,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Position,
		components.PlatformCuboid,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.MovingPlatform,
		components.Platform,
		components.Position,
		components.PlatformCuboid,
		components.Tween,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Position,
		components.PlatformCuboid,
		components.ChildTo,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
