package factory

import (
	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase grid and integrator state. The grid spans
// WindowWidth on X and WindowBehind+WindowAhead on Z and scrolls with the player.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	p := cfg.Physics
	spaceData := resolv.NewSpace(p.WindowWidth, p.WindowBehind+p.WindowAhead, p.CellSize, p.CellSize)
	components.Space.Set(space, spaceData)
	components.Integrator.SetValue(space, components.IntegratorData{
		OriginX:  -float64(p.WindowWidth) / 2,
		OriginZ:  -float64(p.WindowBehind),
		Touching: make(map[components.ContactPair]struct{}),
	})
	return space
}

// attachBody gives e a broadphase object at its current transform.
func attachBody(ecs *ecs.ECS, e *donburi.Entry, half mgl64.Vec3, tag string) {
	spaceEntry := components.Space.MustFirst(ecs.World)
	integrator := components.Integrator.Get(spaceEntry)

	pos := components.Transform.Get(e).Position
	components.Physics.Get(e).Previous = pos
	x, y, w, h := integrator.Project(pos, pos, half)
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Space.Get(spaceEntry).Add(obj)
}
