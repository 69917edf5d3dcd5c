package components

import (
	"github.com/yohamta/donburi"
)

// CollisionSide names the side of the block that was hit, in world axes.
// Gravity direction decides which of these counts as "ground".
type CollisionSide int

const (
	SideTop CollisionSide = iota
	SideBottom
	SideLeft
	SideRight
)

func (s CollisionSide) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return "Unknown"
}

// IsHorizontal reports whether the side blocks horizontal movement.
func (s CollisionSide) IsHorizontal() bool {
	return s == SideLeft || s == SideRight
}

// IsVertical reports whether the side blocks vertical movement.
func (s CollisionSide) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Axis returns the movement axis the side blocks.
func (s CollisionSide) Axis() Axis {
	if s.IsHorizontal() {
		return AxisX
	}
	return AxisY
}

// CollideeDetails describes one resolved axis of a platform collision.
type CollideeDetails struct {
	Name     string
	Entity   donburi.Entity
	Position Vector
	HalfSize Vector

	// Actor position and velocity before and after correction. The "old"
	// values are the uncorrected projection for this step.
	OldColliderPos Vector
	NewColliderPos Vector
	OldColliderVel Vector
	NewColliderVel Vector

	NumPointsOfCollision int
	Correction           float64
	Distance             float64
	Side                 CollisionSide
}

// CollideeData is the per-actor per-step collision report. A non-nil slot
// always carries fully populated details. The previous step's slots are kept
// for one-step hysteresis.
type CollideeData struct {
	Horizontal     *CollideeDetails
	Vertical       *CollideeDetails
	PrevHorizontal *CollideeDetails
	PrevVertical   *CollideeDetails
}

var Collidee = donburi.NewComponentType[CollideeData]()

// Advance shifts the current slots into the previous slots and clears the
// current ones. Detection calls this before writing new results.
func (c *CollideeData) Advance() {
	c.PrevHorizontal = c.Horizontal
	c.PrevVertical = c.Vertical
	c.Horizontal = nil
	c.Vertical = nil
}

// Both reports whether both axes are blocked this step.
func (c *CollideeData) Both() bool {
	return c.Horizontal != nil && c.Vertical != nil
}

// CurrentCollisionPoints sums the probe counts across this step's slots.
func (c *CollideeData) CurrentCollisionPoints() int {
	result := 0
	if c.Horizontal != nil {
		result += c.Horizontal.NumPointsOfCollision
	}
	if c.Vertical != nil {
		result += c.Vertical.NumPointsOfCollision
	}
	return result
}

// PrevCollisionPoints sums the probe counts across the previous step's slots.
func (c *CollideeData) PrevCollisionPoints() int {
	result := 0
	if c.PrevHorizontal != nil {
		result += c.PrevHorizontal.NumPointsOfCollision
	}
	if c.PrevVertical != nil {
		result += c.PrevVertical.NumPointsOfCollision
	}
	return result
}

func (c *CollideeData) slotToward(d Direction) (*CollideeDetails, *CollideeDetails) {
	axis, _ := d.DownAxis()
	if axis == AxisY {
		return c.Vertical, c.PrevVertical
	}
	return c.Horizontal, c.PrevHorizontal
}

// BlockedToward reports whether this step blocked the entity along its
// gravity direction (it is resting against ground).
func (c *CollideeData) BlockedToward(d Direction) bool {
	cur, _ := c.slotToward(d)
	return cur != nil && cur.Side == d.GroundSide()
}

// GroundDetails returns the details of the platform currently serving as
// ground for gravity direction d, preferring this step's slot over the
// previous one. Nil when nothing blocks the gravity side.
func (c *CollideeData) GroundDetails(d Direction) *CollideeDetails {
	cur, prev := c.slotToward(d)
	if cur != nil && cur.Side == d.GroundSide() {
		return cur
	}
	if prev != nil && prev.Side == d.GroundSide() {
		return prev
	}
	return nil
}

// PrevBlockedToward is BlockedToward for the previous step.
func (c *CollideeData) PrevBlockedToward(d Direction) bool {
	_, prev := c.slotToward(d)
	return prev != nil && prev.Side == d.GroundSide()
}

// GroundedData is true while the entity's gravity-relative bottom is (or was
// very recently) blocked. Output only; animation and AI collaborators read it.
type GroundedData struct {
	Value bool
}

var Grounded = donburi.NewComponentType[GroundedData]()

// StickyData marks an actor that inherits a platform's per-step delta while
// grounded on it.
type StickyData struct {
	Value bool
}

var Sticky = donburi.NewComponentType[StickyData]()
