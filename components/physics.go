package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Axis identifies one of the two world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Along returns the component of v on the given axis.
func (v Vector) Along(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// SetAlong overwrites the component of v on the given axis.
func (v *Vector) SetAlong(a Axis, f float64) {
	if a == AxisX {
		v.X = f
	} else {
		v.Y = f
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// PositionData is the world-space coordinate of an entity's logical center.
// Only apply-collision, apply-velocity, apply-sticky and parenting write it.
type PositionData struct {
	Vec Vector
}

var Position = donburi.NewComponentType[PositionData]()

// VelocityData is the current per-step displacement of an entity.
type VelocityData struct {
	Vec Vector
}

// ProjectMove returns the displacement this velocity produces over dt.
func (v *VelocityData) ProjectMove(dt float64) Vector {
	return v.Vec.Scale(dt)
}

var Velocity = donburi.NewComponentType[VelocityData]()

// OrientationData is the facing direction. Informational only; it does not
// participate in collision math.
type OrientationData struct {
	Vec Vector
}

var Orientation = donburi.NewComponentType[OrientationData](OrientationData{Vec: Vector{X: 1}})

// MoveIntentData is the movement input/AI collaborators want this step. The
// intent pass folds it into Velocity before gravity runs.
type MoveIntentData struct {
	Vec Vector
}

var MoveIntent = donburi.NewComponentType[MoveIntentData]()
