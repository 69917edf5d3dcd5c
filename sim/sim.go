package sim

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/events"
	"github.com/molehill-games/burrow/systems"
	"github.com/molehill-games/burrow/tags"
)

// Simulation owns the ECS world and runs the fixed-step physics pipeline.
// The pass order is load-bearing: intent and resizes settle before motion,
// platforms move before actors collide with them, detection precedes
// application, and parenting runs last so attachments see final positions.
type Simulation struct {
	ecs *ecs.ECS
}

func NewSimulation() *Simulation {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateIntent)
	e.AddSystem(systems.UpdateDucking)
	e.AddSystem(systems.UpdateMovingPlatforms)
	e.AddSystem(systems.UpdateGravity)
	e.AddSystem(systems.UpdateActorCollisions)
	e.AddSystem(systems.UpdatePlatformCollisions)
	e.AddSystem(systems.UpdateApplyCollisions)
	e.AddSystem(systems.UpdateApplyVelocity)
	e.AddSystem(systems.UpdateApplySticky)
	e.AddSystem(systems.UpdateChildren)
	e.AddSystem(systems.FlushEvents)

	events.EnemyContactEvent.Subscribe(e.World, systems.OnEnemyContact)

	return &Simulation{ecs: e}
}

// Step advances the world by one fixed tick.
func (s *Simulation) Step() {
	s.ecs.Update()
}

// ECS exposes the underlying ECS for spawning and inspection.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// World exposes the underlying world.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// LogPlayerState registers a diagnostic system logging each player's state
// every n steps. It runs at the end of the step on the stepping goroutine,
// so it reads settled state without racing the pipeline.
func (s *Simulation) LogPlayerState(n int) {
	step := 0
	s.ecs.AddSystem(func(e *ecs.ECS) {
		step++
		if step%n != 0 {
			return
		}
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			pos := components.Position.Get(entry).Vec
			vel := components.Velocity.Get(entry).Vec
			grounded := components.Grounded.Get(entry).Value
			health := components.Health.Get(entry)
			log.Printf("player: pos=(%.1f, %.1f) vel=(%.2f, %.2f) grounded=%v health=%d/%d",
				pos.X, pos.Y, vel.X, vel.Y, grounded, health.Current, health.Max)
		})
	})
}
