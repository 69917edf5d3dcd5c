package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	"github.com/molehill-games/burrow/spatial"
)

// spaceIndex returns the singleton spatial index. A missing Space entity is a
// construction bug upstream; MustFirst fails fast on it.
func spaceIndex(e *ecs.ECS) *spatial.Index {
	return components.Space.Get(components.Space.MustFirst(e.World))
}
