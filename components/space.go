package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// ContactPair identifies two touching bodies, A always the lower entity.
type ContactPair struct {
	A, B donburi.Entity
}

func NewContactPair(a, b donburi.Entity) ContactPair {
	if b < a {
		a, b = b, a
	}
	return ContactPair{A: a, B: b}
}

// IntegratorData holds the fixed-step state shared by all bodies.
type IntegratorData struct {
	Accumulator float64 // Unsimulated time carried into the next frame
	OriginX     float64 // World X of the broadphase window's left edge
	OriginZ     float64 // World Z of the broadphase window's near edge
	Steps       int     // Fixed steps taken since creation
	Touching    map[ContactPair]struct{}
}

var Integrator = donburi.NewComponentType[IntegratorData]()

// Project maps the box a body sweeps from prev to pos into window
// coordinates for the broadphase. A resting body passes the same point twice.
func (i *IntegratorData) Project(prev, pos, half mgl64.Vec3) (x, y, w, h float64) {
	minX, maxX := min(prev.X(), pos.X()), max(prev.X(), pos.X())
	minZ, maxZ := min(prev.Z(), pos.Z()), max(prev.Z(), pos.Z())
	return minX - half.X() - i.OriginX,
		minZ - half.Z() - i.OriginZ,
		maxX - minX + half.X()*2,
		maxZ - minZ + half.Z()*2
}
