package components

import (
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// EnemyData carries the contact damage reported by the actor-vs-actor pass.
type EnemyData struct {
	ContactDamage int
}

var Enemy = donburi.NewComponentType[EnemyData]()
