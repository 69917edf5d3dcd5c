package components

import (
	"github.com/yohamta/donburi"
)

// CollisionPoint is a probe offset from Position used to sample the
// environment. Reach is the probe's half-extent along its perpendicular
// axis. Horizontal probes (left/right) test vertical surfaces; the others
// (top/bottom) test horizontal surfaces.
type CollisionPoint struct {
	Offset     Vector
	Reach      float64
	Horizontal bool
}

// PlatformCollisionPointsData holds an actor's probe points in the plus
// pattern, plus the actor's half size. The offsets always bound the current
// collision volume; resizing goes through Reset/ShrinkHeight only.
type PlatformCollisionPointsData struct {
	Points   []CollisionPoint
	HalfSize Vector
}

var PlatformCollisionPoints = donburi.NewComponentType[PlatformCollisionPointsData]()

// NewPlusPattern builds the default four-probe plus pattern for the given
// half extents.
func NewPlusPattern(halfWidth, halfHeight float64) PlatformCollisionPointsData {
	p := PlatformCollisionPointsData{
		HalfSize: Vector{X: halfWidth, Y: halfHeight},
	}
	p.Reset()
	return p
}

// Reset restores the full plus pattern: left, right, top, bottom.
func (p *PlatformCollisionPointsData) Reset() {
	p.Points = p.Points[:0]
	p.Points = append(p.Points,
		CollisionPoint{Offset: Vector{X: -p.HalfSize.X}, Reach: p.HalfSize.Y, Horizontal: true},
		CollisionPoint{Offset: Vector{X: p.HalfSize.X}, Reach: p.HalfSize.Y, Horizontal: true},
		CollisionPoint{Offset: Vector{Y: p.HalfSize.Y}, Reach: p.HalfSize.X, Horizontal: false},
		CollisionPoint{Offset: Vector{Y: -p.HalfSize.Y}, Reach: p.HalfSize.X, Horizontal: false},
	)
}

// ShrinkHeight collapses the pattern to a reduced vertical profile for
// crouching. The bottom probe stays anchored to the original bottom edge and
// the remaining probes recenter around the new half height.
func (p *PlatformCollisionPointsData) ShrinkHeight(newHalfHeight float64) {
	center := -p.HalfSize.Y + newHalfHeight
	p.Points = p.Points[:0]
	p.Points = append(p.Points,
		CollisionPoint{Offset: Vector{X: -p.HalfSize.X, Y: center}, Reach: newHalfHeight, Horizontal: true},
		CollisionPoint{Offset: Vector{X: p.HalfSize.X, Y: center}, Reach: newHalfHeight, Horizontal: true},
		CollisionPoint{Offset: Vector{Y: center + newHalfHeight}, Reach: p.HalfSize.X, Horizontal: false},
		CollisionPoint{Offset: Vector{Y: -p.HalfSize.Y}, Reach: p.HalfSize.X, Horizontal: false},
	)
}

// PlatformCuboidData is a static collider: half extents anchored at the
// owning entity's Position.
type PlatformCuboidData struct {
	HalfWidth  float64
	HalfHeight float64
}

var PlatformCuboid = donburi.NewComponentType[PlatformCuboidData]()

func NewPlatformCuboid(halfWidth, halfHeight float64) PlatformCuboidData {
	return PlatformCuboidData{HalfWidth: halfWidth, HalfHeight: halfHeight}
}

func (c *PlatformCuboidData) HalfSize() Vector {
	return Vector{X: c.HalfWidth, Y: c.HalfHeight}
}

// Half returns the half extent along the given axis.
func (c *PlatformCuboidData) Half(a Axis) float64 {
	if a == AxisX {
		return c.HalfWidth
	}
	return c.HalfHeight
}

// Degenerate reports whether the cuboid has no usable volume. Degenerate
// colliders are skipped by detection and treated as no-collision.
func (c *PlatformCuboidData) Degenerate() bool {
	return c.HalfWidth <= 0 || c.HalfHeight <= 0
}

// IntersectsPoint reports whether point lies inside the cuboid at pos.
func (c *PlatformCuboidData) IntersectsPoint(point, pos Vector) bool {
	return c.WithinRangeX(point, pos, 0) && c.WithinRangeY(point, pos, 0)
}

// WithinRangeX reports whether point is inside the cuboid's X range at pos,
// widened by delta on both sides. Delta is used for near-miss/snap tests and
// for probe reach.
func (c *PlatformCuboidData) WithinRangeX(point, pos Vector, delta float64) bool {
	return point.X <= pos.X+c.HalfWidth+delta && point.X >= pos.X-c.HalfWidth-delta
}

// WithinRangeY is WithinRangeX for the Y range.
func (c *PlatformCuboidData) WithinRangeY(point, pos Vector, delta float64) bool {
	return point.Y <= pos.Y+c.HalfHeight+delta && point.Y >= pos.Y-c.HalfHeight-delta
}
