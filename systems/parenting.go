package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/molehill-games/burrow/components"
)

// UpdateChildren pins every parented entity to its parent's position plus the
// stored offset. Children whose parent is gone are removed after the sweep,
// so hitboxes and similar attachments never outlive their owner. Removal
// cascades through grandchildren on later steps.
func UpdateChildren(e *ecs.ECS) {
	var orphans []donburi.Entity

	components.ChildTo.Each(e.World, func(entry *donburi.Entry) {
		child := components.ChildTo.Get(entry)
		if !e.World.Valid(child.Parent) {
			orphans = append(orphans, entry.Entity())
			return
		}
		parent := e.World.Entry(child.Parent)
		pos := components.Position.Get(entry)
		pos.Vec = components.Position.Get(parent).Vec.Add(child.Offset)
	})

	for _, orphan := range orphans {
		if e.World.Valid(orphan) {
			e.World.Remove(orphan)
		}
	}
}
