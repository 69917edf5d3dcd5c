// Package spatial maintains the bounding-box index used by the collision
// passes. It wraps a resolv cell space behind a center-based, world-coordinate
// API: entries can live at negative world coordinates, and queries return
// every entry whose box intersects the query box (equal boxes included, order
// unspecified).
package spatial

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Index is rebuilt (Clear + Insert) once per pass that needs it and treated
// as a read-only snapshot for the duration of that pass.
type Index struct {
	space   *resolv.Space
	originX float64
	originY float64
	objects []*resolv.Object
}

// NewIndex creates an index covering the world rectangle starting at
// (minX, minY) with the given extent, partitioned into cells.
func NewIndex(minX, minY, width, height float64, cellWidth, cellHeight int) *Index {
	return &Index{
		space:   resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellWidth, cellHeight),
		originX: minX,
		originY: minY,
	}
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.objects)
}

// Clear removes every entry. Transient entries never survive a pass.
func (ix *Index) Clear() {
	if len(ix.objects) == 0 {
		return
	}
	ix.space.Remove(ix.objects...)
	ix.objects = ix.objects[:0]
}

// Insert adds the entity's box, given as center plus half extents, under the
// given tag.
func (ix *Index) Insert(e donburi.Entity, centerX, centerY, halfW, halfH float64, tag string) {
	obj := resolv.NewObject(
		centerX-halfW-ix.originX,
		centerY-halfH-ix.originY,
		2*halfW,
		2*halfH,
		tag,
	)
	obj.Data = e
	ix.space.Add(obj)
	ix.objects = append(ix.objects, obj)
}

// Query returns the entities whose boxes intersect the query box. The cell
// space narrows candidates; an exact box test filters them, so touching
// counts as intersecting but sharing a cell alone does not.
func (ix *Index) Query(minX, minY, maxX, maxY float64, tags ...string) []donburi.Entity {
	x := minX - ix.originX
	y := minY - ix.originY
	w := maxX - minX
	h := maxY - minY
	// Degenerate query boxes still need to occupy a cell.
	if w <= 0 {
		w = 1e-3
	}
	if h <= 0 {
		h = 1e-3
	}

	probe := resolv.NewObject(x, y, w, h)
	ix.space.Add(probe)
	check := probe.Check(0, 0, tags...)
	ix.space.Remove(probe)
	if check == nil {
		return nil
	}

	var out []donburi.Entity
	seen := map[donburi.Entity]struct{}{}
	for _, obj := range check.Objects {
		if obj.X > x+w || obj.X+obj.W < x || obj.Y > y+h || obj.Y+obj.H < y {
			continue
		}
		e, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
