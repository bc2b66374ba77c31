package archetypes

import (
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Transform,
		components.Physics,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Health,
		components.Transform,
		components.Physics,
		components.Object,
		components.AutoDestroy,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Physics,
		components.Object,
		components.AutoDestroy,
	)
	Director = newArchetype(
		tags.Director,
		components.Director,
	)
	Space = newArchetype(
		components.Space,
		components.Integrator,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
