// Package leveldata provides TMX level parsing for the physics core. It has
// no dependency on the ECS or the spatial index, pure data only. Rectangles
// are converted to center-based, Y-up world coordinates to match the
// simulation's conventions.
package leveldata

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name            string
	Platforms       []PlatformRect
	MovingPlatforms []MovingPlatformDef
	PlayerSpawns    []SpawnPoint
	EnemySpawns     []SpawnPoint
	Width           float64
	Height          float64
}

// PlatformRect is a static platform collider: world center plus half extents.
type PlatformRect struct {
	X, Y         float64
	HalfW, HalfH float64
	Name         string
}

// MovingPlatformDef describes a platform that travels back and forth along
// one axis from its starting position.
type MovingPlatformDef struct {
	PlatformRect
	DirX, DirY float64
	Distance   float64
	// Duration of one leg of the travel, in simulation steps.
	Duration float64
	Sticky   bool
}

// SpawnPoint is an actor spawn location in world coordinates.
type SpawnPoint struct {
	X, Y float64
}
