package systems

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/events"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func isDoomed(e *donburi.Entry) bool {
	return e.HasComponent(components.Death)
}

// markDead flags e for removal at the end of the frame. Returns false if it
// was already flagged.
func markDead(e *donburi.Entry, cause components.DeathCause) bool {
	if isDoomed(e) {
		return false
	}
	donburi.Add(e, components.Death, &components.DeathData{Cause: cause})
	return true
}

// UpdateRemovals removes every entity marked during the frame, then
// delivers the frame's notifications.
func UpdateRemovals(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	for _, e := range toRemove {
		if !e.Valid() {
			continue
		}
		if space != nil && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				space.Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}

	events.ProcessAll(ecs.World)
}
