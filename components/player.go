package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpeedMode is the player's speed state. Exactly one is active per frame.
type SpeedMode int

const (
	SpeedCruise SpeedMode = iota
	SpeedBoost
	SpeedBrake
)

func (m SpeedMode) String() string {
	switch m {
	case SpeedBoost:
		return "Boost"
	case SpeedBrake:
		return "Brake"
	default:
		return "Cruise"
	}
}

type PlayerData struct {
	ReticleOffset dmath.Vec2 // World X/Y offset from the point ReticleDistance ahead on the rail
	ReticleTarget mgl64.Vec3 // World point the ship aims at, derived from ReticleOffset
	Speed         float64
	Mode          SpeedMode
	Energy        float64
	ShootCooldown float64     // Seconds until the next shot is allowed
	FirePoint     *mgl64.Vec3 // Local offset, nil disables shooting

	firePointWarned bool
}

// WarnFirePoint reports whether the missing fire point still needs a warning,
// and records that it has been given.
func (p *PlayerData) WarnFirePoint() bool {
	if p.firePointWarned {
		return false
	}
	p.firePointWarned = true
	return true
}

var Player = donburi.NewComponentType[PlayerData]()
