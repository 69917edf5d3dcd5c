package components

import (
	"github.com/yohamta/donburi"
)

// ChildToData rigidly offsets an entity from a parent entity. The child's
// Position is derived every step from the parent's finalized position plus
// Offset; it is never independently authoritative while the relation holds.
// The reference is one-way (child to parent) and resolved by handle lookup;
// a despawned parent cascade-removes the child.
type ChildToData struct {
	Parent donburi.Entity
	Offset Vector
}

var ChildTo = donburi.NewComponentType[ChildToData]()

// DuckingData requests a crouch resize. The ducking pass applies the shrink
// exactly once, strictly before platform collision detection, and restores
// the plus pattern when the request is cleared. It is never toggled
// mid-resolution.
type DuckingData struct {
	NewHalfHeight float64
	OldHalfHeight float64
	Applied       bool
}

var Ducking = donburi.NewComponentType[DuckingData]()
