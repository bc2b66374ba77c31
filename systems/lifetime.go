package systems

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutoDestroy marks entities whose lifetime deadline has passed.
// Entities already marked by a contact are left alone.
func UpdateAutoDestroy(ecs *ecs.ECS) {
	now := elapsed(ecs.World)

	var expired []*donburi.Entry
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		if isDoomed(e) {
			return
		}
		if components.AutoDestroy.Get(e).ExpiresAt <= now {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(tags.Enemy) {
			destroyEnemy(ecs.World, e, components.DeathExpired)
			continue
		}
		markDead(e, components.DeathExpired)
	}
}
