package systems

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetFrameDelta records the length of the frame about to be simulated.
func SetFrameDelta(w donburi.World, dt float64) {
	if e, ok := components.Clock.First(w); ok {
		components.Clock.Get(e).Delta = dt
	}
}

func UpdateClock(ecs *ecs.ECS) {
	e, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	clock.Elapsed += clock.Delta
	clock.Frame++
}

func deltaTime(w donburi.World) float64 {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Delta
	}
	return 0
}

func elapsed(w donburi.World) float64 {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Elapsed
	}
	return 0
}
