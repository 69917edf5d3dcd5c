package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/archetypes"
	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
)

// CreatePlayer creates a player actor at (x, y) with the full component set
// the physics pipeline requires.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initActor(player, x, y, cfg.Player.HalfWidth, cfg.Player.HalfHeight)
	components.Health.SetValue(player, components.HealthData{Current: 100, Max: 100})
	return player
}

// CreateEnemy creates an enemy actor dealing the given contact damage.
func CreateEnemy(ecs *ecs.ECS, x, y float64, contactDamage int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	initActor(enemy, x, y, cfg.Player.HalfWidth, cfg.Player.HalfHeight)
	components.Enemy.SetValue(enemy, components.EnemyData{ContactDamage: contactDamage})
	components.Health.SetValue(enemy, components.HealthData{Current: 50, Max: 50})
	return enemy
}

// CreateHitbox creates an entity rigidly offset from parent, e.g. an attack
// hitbox or shield. Its position is derived by the parenting pass each step.
func CreateHitbox(ecs *ecs.ECS, parent *donburi.Entry, offset components.Vector, halfW, halfH float64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)
	parentPos := components.Position.Get(parent).Vec
	components.Position.SetValue(hitbox, components.PositionData{Vec: parentPos.Add(offset)})
	components.PlatformCuboid.SetValue(hitbox, components.NewPlatformCuboid(halfW, halfH))
	components.ChildTo.SetValue(hitbox, components.ChildToData{
		Parent: parent.Entity(),
		Offset: offset,
	})
	return hitbox
}

func initActor(actor *donburi.Entry, x, y, halfW, halfH float64) {
	components.Position.SetValue(actor, components.PositionData{Vec: components.Vector{X: x, Y: y}})
	components.Velocity.SetValue(actor, components.VelocityData{})
	components.Orientation.SetValue(actor, components.OrientationData{Vec: components.Vector{X: 1}})
	components.GravityDirection.SetValue(actor, components.GravityDirectionData{Dir: components.FromTop})
	components.PlatformCollisionPoints.SetValue(actor, components.NewPlusPattern(halfW, halfH))
	components.Collidee.SetValue(actor, components.CollideeData{})
	components.Grounded.SetValue(actor, components.GroundedData{})
	components.Sticky.SetValue(actor, components.StickyData{})
}
