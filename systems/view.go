package systems

import (
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerView is the read-only state a camera follows.
type PlayerView struct {
	Position    mgl64.Vec3
	Forward     mgl64.Vec3
	Orientation mgl64.Quat
	Reticle     mgl64.Vec3
	Mode        components.SpeedMode
	SpeedRatio  float64 // 0 at brake speed, 1 at boost speed
	EnergyRatio float64 // energy / maxEnergy
}

// ReadPlayerView snapshots the player. Returns false when there is no player.
func ReadPlayerView(w donburi.World) (PlayerView, bool) {
	e, ok := components.Player.First(w)
	if !ok {
		return PlayerView{}, false
	}
	player := components.Player.Get(e)
	t := components.Transform.Get(e)

	view := PlayerView{
		Position:    t.Position,
		Forward:     t.Forward(),
		Orientation: t.Rotation,
		Reticle:     player.ReticleTarget,
		Mode:        player.Mode,
		SpeedRatio:  gamemath.SpeedRatio(player.Speed, cfg.Player.SlowSpeed, cfg.Player.BoostSpeed),
	}
	if cfg.Player.MaxEnergy > 0 {
		view.EnergyRatio = player.Energy / cfg.Player.MaxEnergy
	}
	return view, true
}
