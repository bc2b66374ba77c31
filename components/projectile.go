package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ProjectileData is fixed at creation.
type ProjectileData struct {
	FromPlayer bool
	Direction  mgl64.Vec3 // Unit vector
	Speed      float64
	Damage     int
	Tint       color.RGBA
}

var Projectile = donburi.NewComponentType[ProjectileData]()
