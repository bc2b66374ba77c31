package systems

import (
	"math"
	"testing"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/input"
)

func TestReadPlayerViewWithoutPlayer(t *testing.T) {
	e := newTestECS(t)
	if _, ok := ReadPlayerView(e.World); ok {
		t.Fatal("ReadPlayerView reported a player in an empty world")
	}
}

func TestReadPlayerViewRatios(t *testing.T) {
	e := newTestECS(t)
	player := components.Player.Get(playerWith(e, input.Idle))

	tests := []struct {
		name   string
		speed  float64
		energy float64
		speedR float64
		energR float64
	}{
		{"brake empty", cfg.Player.SlowSpeed, 0, 0, 0},
		{"boost full", cfg.Player.BoostSpeed, cfg.Player.MaxEnergy, 1, 1},
		{"cruise half", cfg.Player.ForwardSpeed, cfg.Player.MaxEnergy / 2,
			(cfg.Player.ForwardSpeed - cfg.Player.SlowSpeed) / (cfg.Player.BoostSpeed - cfg.Player.SlowSpeed), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player.Speed = tt.speed
			player.Energy = tt.energy

			view, ok := ReadPlayerView(e.World)
			if !ok {
				t.Fatal("no player view")
			}
			if math.Abs(view.SpeedRatio-tt.speedR) > 1e-9 {
				t.Fatalf("speed ratio = %v, want %v", view.SpeedRatio, tt.speedR)
			}
			if math.Abs(view.EnergyRatio-tt.energR) > 1e-9 {
				t.Fatalf("energy ratio = %v, want %v", view.EnergyRatio, tt.energR)
			}
		})
	}
}

func TestReadPlayerViewPose(t *testing.T) {
	e := newTestECS(t)
	playerWith(e, input.Idle)

	view, ok := ReadPlayerView(e.World)
	if !ok {
		t.Fatal("no player view")
	}
	if view.Forward.Z() < 1-1e-9 {
		t.Fatalf("initial forward = %v, want +Z", view.Forward)
	}
	if view.Reticle.Z() <= view.Position.Z() {
		t.Fatalf("reticle %v not ahead of ship %v", view.Reticle, view.Position)
	}
	if view.Mode != components.SpeedCruise {
		t.Fatalf("mode = %s, want cruise", view.Mode)
	}
}
