package factory

import (
	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

// now returns the elapsed scene time, or 0 before a clock exists.
func now(ecs *ecs.ECS) float64 {
	if e, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(e).Elapsed
	}
	return 0
}
