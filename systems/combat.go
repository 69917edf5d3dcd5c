package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/events"
)

// OnEnemyContact applies contact damage to the touched actor. Health never
// drops below zero; death handling is left to gameplay collaborators reading
// Health after the step.
func OnEnemyContact(w donburi.World, ev events.EnemyContact) {
	if !w.Valid(ev.Actor) {
		return
	}
	entry := w.Entry(ev.Actor)
	if !entry.HasComponent(components.Health) {
		return
	}

	health := components.Health.Get(entry)
	health.Current -= ev.Damage
	if health.Current < 0 {
		health.Current = 0
	}
	log.Printf("enemy contact: actor %v took %d damage, %d/%d remaining",
		ev.Actor, ev.Damage, health.Current, health.Max)
}

// FlushEvents drains the event queues at the end of the step so subscribers
// observe a settled world.
func FlushEvents(e *ecs.ECS) {
	devents.ProcessAllEvents(e.World)
}
