package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/events"
	"github.com/molehill-games/burrow/tags"
)

// UpdateActorCollisions is the broad-phase actor-vs-actor pass. It rebuilds
// the index with actor boxes and publishes contact events for player/enemy
// overlap. It never moves entities; gameplay collaborators consume the events
// after the step.
func UpdateActorCollisions(e *ecs.ECS) {
	ix := spaceIndex(e)
	ix.Clear()

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry).Vec
		half := components.PlatformCollisionPoints.Get(entry).HalfSize
		ix.Insert(entry.Entity(), pos.X, pos.Y, half.X, half.Y, tags.IndexActor)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry).Vec
		half := components.PlatformCollisionPoints.Get(entry).HalfSize
		for _, other := range ix.Query(pos.X-half.X, pos.Y-half.Y, pos.X+half.X, pos.Y+half.Y, tags.IndexActor) {
			if other == entry.Entity() {
				continue
			}
			otherEntry := e.World.Entry(other)
			if !otherEntry.HasComponent(components.Enemy) {
				continue
			}
			events.EnemyContactEvent.Publish(e.World, events.EnemyContact{
				Actor:  entry.Entity(),
				Enemy:  other,
				Damage: components.Enemy.Get(otherEntry).ContactDamage,
			})
		}
	})
}
