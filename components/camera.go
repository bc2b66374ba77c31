package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the debug view's chase camera. Position.X follows the ship
// laterally and Position.Y follows it along the rail (world Z).
type CameraData struct {
	Position  math.Vec2
	LookAhead float64   // Current smoothed offset along the rail
	Shake     math.Vec2 // Offset added at draw time, in pixels
}

// ScreenShakeData tracks an active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // Pixels
	Duration  int     // Frames
	Elapsed   int
}

var (
	Camera      = donburi.NewComponentType[CameraData]()
	ScreenShake = donburi.NewComponentType[ScreenShakeData]()
)
