package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every simulation entity lives on.
const Default = ecs.LayerDefault

// PhysicsConfig contains the per-step physics tuning values. Velocities are
// per-step displacements; DeltaTime scales them when projected and stays 1.0
// under the fixed-step loop.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	MaxSpeed     float64 `yaml:"max_speed"`

	// SnapTolerance widens gravity-axis surface tests so a near-miss landing
	// snaps to the surface. ContactEpsilon is the same widening for the other
	// axis, kept tiny so walls do not attract.
	SnapTolerance  float64 `yaml:"snap_tolerance"`
	ContactEpsilon float64 `yaml:"contact_epsilon"`

	// TieEpsilon bounds "equal penetration" when two platforms compete on the
	// same axis; within it the larger probe count wins.
	TieEpsilon float64 `yaml:"tie_epsilon"`

	DeltaTime float64 `yaml:"delta_time"`
}

// PlayerConfig contains the default actor dimensions.
type PlayerConfig struct {
	HalfWidth      float64 `yaml:"half_width"`
	HalfHeight     float64 `yaml:"half_height"`
	DuckHalfHeight float64 `yaml:"duck_half_height"`
}

// SpaceConfig controls the spatial index partitioning. Margin widens the
// indexed area beyond the level bounds so actors leaving the level stay
// indexed.
type SpaceConfig struct {
	CellWidth  int     `yaml:"cell_width"`
	CellHeight int     `yaml:"cell_height"`
	Margin     float64 `yaml:"margin"`
}

type SimConfig struct {
	TickRate int `yaml:"tick_rate"`
}

var Physics = PhysicsConfig{
	Gravity:        0.75,
	MaxFallSpeed:   10.0,
	Acceleration:   0.75,
	Friction:       0.5,
	MaxSpeed:       6.0,
	SnapTolerance:  1.0,
	ContactEpsilon: 1e-4,
	TieEpsilon:     1e-6,
	DeltaTime:      1.0,
}

var Player = PlayerConfig{
	HalfWidth:      8,
	HalfHeight:     20,
	DuckHalfHeight: 10,
}

var Space = SpaceConfig{
	CellWidth:  16,
	CellHeight: 16,
	Margin:     64,
}

var Sim = SimConfig{
	TickRate: 60,
}
