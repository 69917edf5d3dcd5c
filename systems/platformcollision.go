package systems

import (
	"log"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/gamemath"
	"github.com/molehill-games/burrow/spatial"
	"github.com/molehill-games/burrow/tags"
)

// UpdatePlatformCollisions is the narrow phase. For every actor it sweeps
// each probe point from the current to the projected position against the
// platform index and fills the Collidee report: per axis the
// minimum-penetration platform wins, ties going to the platform more probes
// touched. Detection only; apply-collision performs the correction.
func UpdatePlatformCollisions(e *ecs.ECS) {
	ix := spaceIndex(e)
	ix.Clear()

	tags.Platform.Each(e.World, func(p *donburi.Entry) {
		pos := components.Position.Get(p).Vec
		cuboid := components.PlatformCuboid.Get(p)
		if cuboid.Degenerate() {
			log.Printf("platform collision: skipping degenerate cuboid %q", components.Platform.Get(p).Name)
			return
		}
		ix.Insert(p.Entity(), pos.X, pos.Y, cuboid.HalfWidth, cuboid.HalfHeight, tags.IndexPlatform)
	})

	dt := cfg.Physics.DeltaTime
	tags.Actor.Each(e.World, func(a *donburi.Entry) {
		pos := components.Position.Get(a).Vec
		vel := components.Velocity.Get(a)
		points := components.PlatformCollisionPoints.Get(a)
		collidee := components.Collidee.Get(a)
		gdir := components.GravityDirection.Get(a).Dir

		collidee.Advance()
		resolveActor(e.World, ix, pos, vel.Vec, vel.ProjectMove(dt), points, collidee, gdir)
	})
}

// axisCandidate accumulates the probes that hit one platform on one axis.
// Candidates keep discovery order so exact ties resolve deterministically.
type axisCandidate struct {
	det    components.CollideeDetails
	points int
}

func resolveActor(w donburi.World, ix *spatial.Index, pos, vel, delta components.Vector, points *components.PlatformCollisionPointsData, collidee *components.CollideeData, gdir components.Direction) {
	projected := pos.Add(delta)
	gravityAxis, _ := gdir.DownAxis()

	var candidates [2][]axisCandidate

	for i := range points.Points {
		cp := &points.Points[i]
		axis := components.AxisY
		if cp.Horizontal {
			axis = components.AxisX
		}

		off := cp.Offset.Along(axis)
		var lead float64
		switch {
		case off > 0:
			lead = 1
		case off < 0:
			lead = -1
		default:
			// A probe centered on its axis (the crouched top probe at half
			// the original height) has no fixed side; it leads in the
			// direction of travel and rest-tests nothing.
			switch d := delta.Along(axis); {
			case d > 0:
				lead = 1
			case d < 0:
				lead = -1
			default:
				continue
			}
		}

		// A probe only participates in the direction it leads; with zero
		// displacement both side probes rest-test within the tolerance.
		if delta.Along(axis)*lead < 0 {
			continue
		}

		tol := cfg.Physics.ContactEpsilon
		if axis == gravityAxis {
			tol = cfg.Physics.SnapTolerance
		}

		oldPt := pos.Add(cp.Offset)
		newPt := projected.Add(cp.Offset)
		qMin, qMax := sweptBounds(oldPt, newPt, axis, cp.Reach, tol)

		for _, pe := range ix.Query(qMin.X, qMin.Y, qMax.X, qMax.Y, tags.IndexPlatform) {
			pEntry := w.Entry(pe)
			platPos := components.Position.Get(pEntry).Vec
			cuboid := components.PlatformCuboid.Get(pEntry)

			// Strict overlap on the perpendicular axis: flush corner contact
			// does not count.
			perp := axis.Other()
			if !gamemath.SpanOverlap(newPt.Along(perp), platPos.Along(perp), cuboid.Half(perp)+cp.Reach) {
				continue
			}

			surface := platPos.Along(axis) - lead*cuboid.Half(axis)
			pen, ok := gamemath.SweepCross(oldPt.Along(axis), newPt.Along(axis), surface, lead, tol)
			if !ok {
				continue
			}

			newPos := projected
			newPos.SetAlong(axis, surface-off)
			newVel := vel
			newVel.SetAlong(axis, 0)

			det := components.CollideeDetails{
				Name:           components.Platform.Get(pEntry).Name,
				Entity:         pe,
				Position:       platPos,
				HalfSize:       cuboid.HalfSize(),
				OldColliderPos: projected,
				NewColliderPos: newPos,
				OldColliderVel: vel,
				NewColliderVel: newVel,
				Correction:     math.Abs(newPos.Along(axis) - projected.Along(axis)),
				Distance:       pen,
				Side:           sideOf(axis, lead),
			}
			candidates[axis] = accumulate(candidates[axis], pe, det)
		}
	}

	collidee.Horizontal = pickWinner(candidates[components.AxisX])
	collidee.Vertical = pickWinner(candidates[components.AxisY])
}

func accumulate(list []axisCandidate, pe donburi.Entity, det components.CollideeDetails) []axisCandidate {
	for i := range list {
		if list[i].det.Entity != pe {
			continue
		}
		list[i].points++
		if det.Correction < list[i].det.Correction {
			list[i].det = det
		}
		return list
	}
	return append(list, axisCandidate{det: det, points: 1})
}

// pickWinner selects the representative collision for one axis: minimum
// penetration first, then (within the tie epsilon) the larger probe count,
// then discovery order. Straddling a seam between two platforms therefore
// resolves to the smallest correction, never a sum.
func pickWinner(list []axisCandidate) *components.CollideeDetails {
	var best *axisCandidate
	for i := range list {
		c := &list[i]
		if best == nil || gamemath.PreferCandidate(c.det.Distance, c.points, best.det.Distance, best.points, cfg.Physics.TieEpsilon) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	det := best.det
	det.NumPointsOfCollision = best.points
	return &det
}

func sweptBounds(oldPt, newPt components.Vector, axis components.Axis, reach, tol float64) (components.Vector, components.Vector) {
	min := components.Vector{X: math.Min(oldPt.X, newPt.X), Y: math.Min(oldPt.Y, newPt.Y)}
	max := components.Vector{X: math.Max(oldPt.X, newPt.X), Y: math.Max(oldPt.Y, newPt.Y)}
	perp := axis.Other()
	min.SetAlong(perp, min.Along(perp)-reach)
	max.SetAlong(perp, max.Along(perp)+reach)
	min.SetAlong(axis, min.Along(axis)-tol)
	max.SetAlong(axis, max.Along(axis)+tol)
	return min, max
}

// sideOf names the side of the block a leading probe hits: a probe leading
// +X strikes the block's Left side, a probe leading -Y strikes its Top.
func sideOf(axis components.Axis, lead float64) components.CollisionSide {
	if axis == components.AxisX {
		if lead > 0 {
			return components.SideLeft
		}
		return components.SideRight
	}
	if lead > 0 {
		return components.SideBottom
	}
	return components.SideTop
}
