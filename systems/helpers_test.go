package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/systems/factory"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, -500, -500, 1000, 1000)
	return e
}

// newSmallActor creates a player-shaped actor resized to 4x4 half extents,
// the size most scenario numbers below are written for.
func newSmallActor(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	actor := factory.CreatePlayer(e, x, y)
	components.PlatformCollisionPoints.SetValue(actor, components.NewPlusPattern(4, 4))
	return actor
}

func setVelocity(entry *donburi.Entry, x, y float64) {
	components.Velocity.Get(entry).Vec = components.Vector{X: x, Y: y}
}

func position(entry *donburi.Entry) components.Vector {
	return components.Position.Get(entry).Vec
}

func velocity(entry *donburi.Entry) components.Vector {
	return components.Velocity.Get(entry).Vec
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
