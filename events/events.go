// Package events defines the game-level events the detection passes publish.
// Delivery is deferred to the end of the step so gameplay subscribers never
// observe mid-pipeline state.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// EnemyContact is published by the actor-vs-actor pass when a player actor's
// box overlaps an enemy's box. It reports contact only; no entity is moved.
type EnemyContact struct {
	Actor  donburi.Entity
	Enemy  donburi.Entity
	Damage int
}

var EnemyContactEvent = devents.NewEventType[EnemyContact]()
