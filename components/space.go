package components

import (
	"github.com/yohamta/donburi"

	"github.com/molehill-games/burrow/spatial"
)

// Space holds the singleton spatial index shared by the collision passes.
var Space = donburi.NewComponentType[spatial.Index]()
