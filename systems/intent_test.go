package systems

import (
	"testing"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
)

func TestIntentAcceleratesAndClamps(t *testing.T) {
	e := newTestECS(t)
	actor := newSmallActor(t, e, 0, 0)
	components.MoveIntent.Get(actor).Vec = components.Vector{X: 1}

	UpdateIntent(e)
	if v := velocity(actor); v.X != cfg.Physics.Acceleration {
		t.Errorf("first step speed = %v, want %v", v.X, cfg.Physics.Acceleration)
	}

	for i := 0; i < 30; i++ {
		UpdateIntent(e)
	}
	if v := velocity(actor); v.X != cfg.Physics.MaxSpeed {
		t.Errorf("sustained intent speed = %v, want clamped to %v", v.X, cfg.Physics.MaxSpeed)
	}
}

func TestIntentSetsOrientation(t *testing.T) {
	e := newTestECS(t)
	actor := newSmallActor(t, e, 0, 0)

	components.MoveIntent.Get(actor).Vec = components.Vector{X: -1}
	UpdateIntent(e)
	if o := components.Orientation.Get(actor).Vec; o.X != -1 {
		t.Errorf("orientation after leftward intent = %+v, want X -1", o)
	}

	components.MoveIntent.Get(actor).Vec = components.Vector{X: 1}
	UpdateIntent(e)
	if o := components.Orientation.Get(actor).Vec; o.X != 1 {
		t.Errorf("orientation after rightward intent = %+v, want X 1", o)
	}
}

func TestFrictionOnlyWhenGroundedAndIdle(t *testing.T) {
	e := newTestECS(t)
	actor := newSmallActor(t, e, 0, 0)
	setVelocity(actor, 4, 0)
	components.Grounded.Get(actor).Value = true

	UpdateIntent(e)
	if v := velocity(actor); v.X != 4-cfg.Physics.Friction {
		t.Errorf("grounded idle speed = %v, want %v", v.X, 4-cfg.Physics.Friction)
	}

	// Airborne actors keep their momentum.
	e2 := newTestECS(t)
	actor2 := newSmallActor(t, e2, 0, 0)
	setVelocity(actor2, 4, 0)

	UpdateIntent(e2)
	if v := velocity(actor2); v.X != 4 {
		t.Errorf("airborne idle speed = %v, want unchanged 4", v.X)
	}
}

// Under sideways gravity the movement axis is vertical.
func TestIntentFollowsGravityAxis(t *testing.T) {
	e := newTestECS(t)
	actor := newSmallActor(t, e, 0, 0)
	components.GravityDirection.SetValue(actor, components.GravityDirectionData{Dir: components.FromLeft})
	components.MoveIntent.Get(actor).Vec = components.Vector{Y: 1}

	UpdateIntent(e)
	v := velocity(actor)
	if v.Y != cfg.Physics.Acceleration {
		t.Errorf("movement speed = %v, want %v on Y", v.Y, cfg.Physics.Acceleration)
	}
	if v.X != 0 {
		t.Errorf("gravity-axis speed = %v, want untouched 0", v.X)
	}
}
