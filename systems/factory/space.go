package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/archetypes"
	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/spatial"
)

// CreateSpace creates the singleton spatial index covering the given world
// rectangle, widened by the configured margin.
func CreateSpace(ecs *ecs.ECS, minX, minY, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	m := cfg.Space.Margin
	ix := spatial.NewIndex(minX-m, minY-m, width+2*m, height+2*m, cfg.Space.CellWidth, cfg.Space.CellHeight)
	components.Space.Set(space, ix)
	return space
}
