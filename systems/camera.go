package systems

import (
	"math"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the ship. The look-ahead grows with
// the speed ratio so boosting shows more of what is coming.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	// Ending a shake changes the entry's archetype, so read the camera after it
	updateScreenShake(cameraEntry)
	camera := components.Camera.Get(cameraEntry)

	view, ok := ReadPlayerView(ecs.World)
	if !ok {
		return // no player, hold position
	}

	c := cfg.Camera
	targetLookAhead := c.LookAheadMin + (c.LookAheadMax-c.LookAheadMin)*view.SpeedRatio
	camera.LookAhead += (targetLookAhead - camera.LookAhead) * c.LookAheadSmoothing

	targetX := view.Position.X()
	targetY := view.Position.Z() + camera.LookAhead

	camera.Position.X += (targetX - camera.Position.X) * c.FollowSmoothing
	// The rail never stops, so the camera keeps pace along it and only smooths the look-ahead
	camera.Position.Y = targetY
}

// updateScreenShake sets the decaying shake offset and removes the shake once it has run out
func updateScreenShake(cameraEntry *donburi.Entry) {
	camera := components.Camera.Get(cameraEntry)
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never cuts a
// stronger one short.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ShakeOnPlayerHit subscribes to player hits.
func ShakeOnPlayerHit(w donburi.World, _ events.PlayerHitEvent) {
	TriggerScreenShake(w, cfg.Camera.HitShakeIntensity, cfg.Camera.HitShakeDuration)
}
