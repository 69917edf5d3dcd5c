package components

import (
	"github.com/yohamta/donburi"
)

// Direction is a cardinal gravity direction. FromTop is conventional
// gravity: the pull is toward -Y, so the entity's geometric bottom is its
// gravity-relative bottom.
type Direction int

const (
	FromTop Direction = iota
	FromBottom
	FromLeft
	FromRight
)

func (d Direction) String() string {
	switch d {
	case FromTop:
		return "FromTop"
	case FromBottom:
		return "FromBottom"
	case FromLeft:
		return "FromLeft"
	case FromRight:
		return "FromRight"
	}
	return "Unknown"
}

// DownAxis returns the axis gravity pulls along and the sign of the pull.
// All "top/bottom" semantics in the pipeline consult this table instead of
// assuming -Y.
func (d Direction) DownAxis() (Axis, float64) {
	switch d {
	case FromBottom:
		return AxisY, 1
	case FromLeft:
		return AxisX, -1
	case FromRight:
		return AxisX, 1
	default:
		return AxisY, -1
	}
}

// GroundSide returns the side of a block an entity rests on under this
// gravity. Falling toward -Y lands on a block's Top, falling toward -X lands
// on a block's Right, and so on.
func (d Direction) GroundSide() CollisionSide {
	switch d {
	case FromBottom:
		return SideBottom
	case FromLeft:
		return SideRight
	case FromRight:
		return SideLeft
	default:
		return SideTop
	}
}

// GravityDirectionData stores an entity's gravity direction. It is never
// absent on an actor; archetypes attach it with the FromTop default.
type GravityDirectionData struct {
	Dir Direction
}

var GravityDirection = donburi.NewComponentType[GravityDirectionData]()
