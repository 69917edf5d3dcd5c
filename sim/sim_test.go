package sim

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/systems/factory"
)

func TestPlayerFallsAndRestsOnFloor(t *testing.T) {
	s := NewSimulation()
	factory.CreateSpace(s.ECS(), -400, -400, 800, 800)
	factory.CreatePlatform(s.ECS(), "floor", 0, -100, 320, 8)
	player := factory.CreatePlayer(s.ECS(), 0, 0)

	for i := 0; i < 60; i++ {
		s.Step()
	}

	pos := components.Position.Get(player).Vec
	// Floor top at -92, player half height 20.
	if math.Abs(pos.Y-(-72)) > 1e-9 {
		t.Errorf("resting Y = %v, want -72", pos.Y)
	}
	if vel := components.Velocity.Get(player).Vec; vel.Y != 0 {
		t.Errorf("resting vertical velocity = %v, want 0", vel.Y)
	}
	if !components.Grounded.Get(player).Value {
		t.Error("player should be grounded at rest")
	}

	// Another long run must not drift the resting position.
	for i := 0; i < 120; i++ {
		s.Step()
	}
	if pos := components.Position.Get(player).Vec; math.Abs(pos.Y-(-72)) > 1e-9 {
		t.Errorf("rest drifted to Y = %v after further steps", pos.Y)
	}
}

func TestPlayerRidesStickyPlatform(t *testing.T) {
	s := NewSimulation()
	factory.CreateSpace(s.ECS(), -400, -400, 800, 800)
	// +1 per step on X, flagged sticky.
	platform := factory.CreateMovingPlatform(s.ECS(), "ferry", 0, 0, 16, 4,
		components.Vector{X: 1}, 30, 30, true)
	player := factory.CreatePlayer(s.ECS(), 0, 24)

	for i := 0; i < 15; i++ {
		s.Step()
	}

	platX := components.Position.Get(platform).Vec.X
	playerPos := components.Position.Get(player).Vec
	if math.Abs(playerPos.X-platX) > 1e-6 {
		t.Errorf("player X = %v, platform X = %v; rider should track", playerPos.X, platX)
	}
	if math.Abs(playerPos.Y-24) > 1e-9 {
		t.Errorf("rider Y = %v, want steady 24", playerPos.Y)
	}
	if !components.Grounded.Get(player).Value {
		t.Error("rider should stay grounded")
	}
}

// A rider on a slowly ascending platform stays flush with the surface every
// step instead of hovering a step-delta above it.
func TestRiderStaysFlushOnAscendingPlatform(t *testing.T) {
	s := NewSimulation()
	factory.CreateSpace(s.ECS(), -400, -400, 800, 800)
	// +1 per step on Y, within the snap tolerance.
	platform := factory.CreateMovingPlatform(s.ECS(), "elevator", 0, 0, 16, 4,
		components.Vector{Y: 1}, 10, 10, true)
	player := factory.CreatePlayer(s.ECS(), 0, 24)

	for i := 0; i < 5; i++ {
		s.Step()
		platTop := components.Position.Get(platform).Vec.Y + 4
		playerY := components.Position.Get(player).Vec.Y
		if math.Abs(playerY-(platTop+20)) > 1e-6 {
			t.Fatalf("step %d: rider Y = %v, platform top = %v; want flush at %v",
				i, playerY, platTop, platTop+20)
		}
	}
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	s := NewSimulation()
	factory.CreateSpace(s.ECS(), -400, -400, 800, 800)
	factory.CreatePlatform(s.ECS(), "floor", 0, -28, 320, 8)
	player := factory.CreatePlayer(s.ECS(), 0, 0)
	factory.CreateEnemy(s.ECS(), 6, 0, 10)

	s.Step()

	if health := components.Health.Get(player); health.Current != 90 {
		t.Errorf("player health = %d, want 90 after one contact step", health.Current)
	}
}

// The player state log runs inside Step at the configured cadence, never
// from a goroutine of its own.
func TestLogPlayerStateCadence(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	s := NewSimulation()
	factory.CreateSpace(s.ECS(), -400, -400, 800, 800)
	factory.CreatePlatform(s.ECS(), "floor", 0, -28, 320, 8)
	factory.CreatePlayer(s.ECS(), 0, 0)
	s.LogPlayerState(3)

	s.Step()
	s.Step()
	if strings.Contains(buf.String(), "player:") {
		t.Fatal("log fired before the cadence elapsed")
	}

	s.Step()
	if got := strings.Count(buf.String(), "player:"); got != 1 {
		t.Errorf("after 3 steps: %d player log lines, want 1", got)
	}
}

func TestHitboxFollowsPlayerThroughStep(t *testing.T) {
	s := NewSimulation()
	factory.CreateSpace(s.ECS(), -400, -400, 800, 800)
	factory.CreatePlatform(s.ECS(), "floor", 0, -28, 320, 8)
	player := factory.CreatePlayer(s.ECS(), 0, 0)
	hitbox := factory.CreateHitbox(s.ECS(), player, components.Vector{X: 12}, 4, 4)

	for i := 0; i < 30; i++ {
		s.Step()
	}

	playerPos := components.Position.Get(player).Vec
	hitboxPos := components.Position.Get(hitbox).Vec
	want := playerPos.Add(components.Vector{X: 12})
	if hitboxPos != want {
		t.Errorf("hitbox at %+v, want %+v", hitboxPos, want)
	}
}
