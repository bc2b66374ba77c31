package components

import (
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the world-space pose of an entity.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func (t *TransformData) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(gamemath.Forward)
}

func (t *TransformData) Right() mgl64.Vec3 {
	return t.Rotation.Rotate(gamemath.Right)
}

func (t *TransformData) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(gamemath.Up)
}

// Point transforms a local offset into world space.
func (t *TransformData) Point(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(local))
}

// Translate moves the entity along its local axes.
func (t *TransformData) Translate(local mgl64.Vec3) {
	t.Position = t.Point(local)
}

var Transform = donburi.NewComponentType[TransformData]()
