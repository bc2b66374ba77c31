package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. X is right, Y is up and Z is forward along the rail.
var (
	Right   = mgl64.Vec3{1, 0, 0}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

const epsilon = 1e-9

// Normalize returns v scaled to unit length, or the zero vector when v has none.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// LookRotation returns the rotation whose forward axis points along forward
// and whose up axis is as close to up as possible. A zero forward yields the identity.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	f := Normalize(forward)
	if f.Len() == 0 {
		return mgl64.QuatIdent()
	}

	r := up.Cross(f)
	if r.Len() < epsilon {
		// Looking straight along up; borrow the rail axis as the reference
		r = Forward.Cross(f)
		if r.Len() < epsilon {
			r = Right
		}
	}
	r = r.Normalize()
	u := f.Cross(r)

	m := mgl64.Mat3FromCols(r, u, f)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// Euler builds a rotation from degrees, applied Z first, then X, then Y.
func Euler(xDeg, yDeg, zDeg float64) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(xDeg), Right)
	qy := mgl64.QuatRotate(mgl64.DegToRad(yDeg), Up)
	qz := mgl64.QuatRotate(mgl64.DegToRad(zDeg), Forward)
	return qy.Mul(qx).Mul(qz)
}

// Slerp interpolates from a to b along the shorter arc. t is clamped to [0, 1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

// AngleDegrees returns the unsigned angle between two vectors.
func AngleDegrees(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < epsilon || lb < epsilon {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// RotateToward turns unit vector from toward unit vector to by at most maxDeg degrees.
func RotateToward(from, to mgl64.Vec3, maxDeg float64) mgl64.Vec3 {
	angle := AngleDegrees(from, to)
	if angle <= maxDeg {
		return to
	}

	axis := from.Cross(to)
	if axis.Len() < epsilon {
		// Opposite vectors: any perpendicular axis works
		axis = from.Cross(Up)
		if axis.Len() < epsilon {
			axis = from.Cross(Right)
		}
	}
	return mgl64.QuatRotate(mgl64.DegToRad(maxDeg), axis.Normalize()).Rotate(from)
}
