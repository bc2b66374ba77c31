package factory

import (
	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the chase camera already settled on the origin.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{LookAhead: cfg.Camera.LookAheadMin}
	data.Position.Y = data.LookAhead
	components.Camera.SetValue(camera, data)
	return camera
}
