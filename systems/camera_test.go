package systems

import (
	"math"
	"testing"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraFollowsPlayer(t *testing.T) {
	e := newTestECS(t)
	player := playerWith(e, input.Idle)
	camera := components.Camera.Get(factory.CreateCamera(e))

	components.Transform.Get(player).Position = mgl64.Vec3{10, 0, 100}
	for i := 0; i < 200; i++ {
		run(e, 1.0/60, UpdateCamera)
	}

	if math.Abs(camera.Position.X-10) > 1e-3 {
		t.Fatalf("camera x = %v, want it settled on 10", camera.Position.X)
	}
	if camera.Position.Y <= 100 {
		t.Fatalf("camera focus z = %v, want ahead of the ship at 100", camera.Position.Y)
	}
}

func TestCameraLooksFurtherWhenBoosting(t *testing.T) {
	e := newTestECS(t)
	player := components.Player.Get(playerWith(e, input.Idle))
	camera := components.Camera.Get(factory.CreateCamera(e))

	settle := func(speed float64) float64 {
		player.Speed = speed
		for i := 0; i < 300; i++ {
			run(e, 1.0/60, UpdateCamera)
		}
		return camera.LookAhead
	}

	slow := settle(cfg.Player.SlowSpeed)
	fast := settle(cfg.Player.BoostSpeed)
	if math.Abs(slow-cfg.Camera.LookAheadMin) > 0.1 || math.Abs(fast-cfg.Camera.LookAheadMax) > 0.1 {
		t.Fatalf("look-ahead %v at brake and %v at boost, want about %v and %v",
			slow, fast, cfg.Camera.LookAheadMin, cfg.Camera.LookAheadMax)
	}
}

func TestScreenShakeDecays(t *testing.T) {
	e := newTestECS(t)
	cameraEntry := factory.CreateCamera(e)
	shake := func() components.CameraData {
		return *components.Camera.Get(cameraEntry)
	}

	TriggerScreenShake(e.World, 4, 10)
	// A weaker shake does not replace the active one
	TriggerScreenShake(e.World, 1, 100)
	if d := components.ScreenShake.Get(cameraEntry).Duration; d != 10 {
		t.Fatalf("shake duration = %d, want 10", d)
	}

	shook := false
	for i := 0; i < 10; i++ {
		run(e, 1.0/60, UpdateCamera)
		if c := shake(); c.Shake.X != 0 || c.Shake.Y != 0 {
			shook = true
		}
	}
	if !shook {
		t.Fatal("camera never shook")
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Fatal("shake still active after its duration")
	}

	run(e, 1.0/60, UpdateCamera)
	if c := shake(); c.Shake.X != 0 || c.Shake.Y != 0 {
		t.Fatalf("shake offset %v after the shake ended", c.Shake)
	}
}
