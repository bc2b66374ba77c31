package gamemath

import (
	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

// ConstrainAim limits an aim direction to a cone of halfAngleDeg around forward.
// Both vectors are normalized first; the result is a unit vector.
func ConstrainAim(forward, aim mgl64.Vec3, halfAngleDeg float64) mgl64.Vec3 {
	f := Normalize(forward)
	a := Normalize(aim)
	if f.Len() == 0 {
		return a
	}
	if a.Len() == 0 {
		return f
	}
	return RotateToward(f, a, halfAngleDeg)
}

// MoveReticle adds delta to a reticle offset and clamps each axis to ±bounds.
func MoveReticle(offset, delta, bounds dmath.Vec2) dmath.Vec2 {
	return dmath.NewVec2(
		mgl64.Clamp(offset.X+delta.X, -bounds.X, bounds.X),
		mgl64.Clamp(offset.Y+delta.Y, -bounds.Y, bounds.Y),
	)
}

// ReticlePoint places a reticle offset on the plane distance ahead of
// position along the rail. The offset is measured on the world X/Y axes, so
// the point does not follow the ship's rotation.
func ReticlePoint(position mgl64.Vec3, distance float64, offset dmath.Vec2) mgl64.Vec3 {
	return position.
		Add(Forward.Mul(distance)).
		Add(Right.Mul(offset.X)).
		Add(Up.Mul(offset.Y))
}

// Tilt returns the visual roll/pitch for a reticle offset. Full deflection
// on an axis produces tiltAmount degrees.
func Tilt(offset, bounds dmath.Vec2, tiltAmount float64) mgl64.Quat {
	var pitch, roll float64
	if bounds.Y != 0 {
		pitch = -offset.Y / bounds.Y * tiltAmount
	}
	if bounds.X != 0 {
		roll = -offset.X / bounds.X * tiltAmount
	}
	return Euler(pitch, 0, roll)
}
