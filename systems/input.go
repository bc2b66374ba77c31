package systems

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples each player's source once per frame, keeping the
// previous sample for edge detection.
func UpdateInput(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
		in := components.PlayerInput.Get(e)
		in.Previous = in.Current
		if in.Source == nil {
			in.Current = input.Sample{}
			return
		}
		in.Current = in.Source.Sample(dt)
	})
}
