package factory

import (
	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player ship at the origin facing +Z, with full
// energy, cruise speed and the reticle centered ahead of it.
func CreatePlayer(ecs *ecs.ECS, src input.Source) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	if src == nil {
		src = input.Idle
	}

	transform := components.TransformData{
		Position: mgl64.Vec3{},
		Rotation: mgl64.QuatIdent(),
	}
	components.Transform.SetValue(player, transform)

	firePoint := cfg.Player.FirePoint
	components.Player.SetValue(player, components.PlayerData{
		ReticleTarget: transform.Position.Add(transform.Forward().Mul(cfg.Player.ReticleDistance)),
		Speed:         cfg.Player.ForwardSpeed,
		Mode:          components.SpeedCruise,
		Energy:        cfg.Player.MaxEnergy,
		FirePoint:     &firePoint,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		Source: src,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		HalfExtents: cfg.Player.HalfExtents,
	})

	attachBody(ecs, player, cfg.Player.HalfExtents, tags.ResolvPlayer)

	return player
}
