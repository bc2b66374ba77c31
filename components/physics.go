package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PhysicsData is what the integrator needs to move a body and test overlap.
type PhysicsData struct {
	Velocity    mgl64.Vec3 // World units per second, applied every fixed step
	HalfExtents mgl64.Vec3 // Axis-aligned box around Transform.Position
	Previous    mgl64.Vec3 // Position at the start of the current fixed step
}

var Physics = donburi.NewComponentType[PhysicsData]()
