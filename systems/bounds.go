package systems

import (
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerBounds keeps the ship inside the play area after integration.
func UpdatePlayerBounds(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Position = ClampShipPosition(t.Position)
	})
}

// ClampShipPosition clamps X to ±ShipScreenBounds.X and Y to
// [-ShipScreenBounds.Y+FloorMargin, ShipScreenBounds.Y]. Z is untouched.
func ClampShipPosition(pos mgl64.Vec3) mgl64.Vec3 {
	b := cfg.Player.ShipScreenBounds
	pos[0] = mgl64.Clamp(pos[0], -b.X, b.X)
	pos[1] = mgl64.Clamp(pos[1], -b.Y+cfg.Player.FloorMargin, b.Y)
	return pos
}
