package systems

import (
	"log"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/automoto/space-kitsune/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdatePlayer(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(ecs, e, dt)
	})
}

func updatePlayer(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	in := components.PlayerInput.Get(e)
	transform := components.Transform.Get(e)

	moveReticle(player, transform, in.Current, dt)
	aimShip(player, transform)
	if in.JustFired() {
		shoot(ecs, player, transform)
	}
	updateSpeed(player, in.Current, dt)
	regenerateEnergy(player, dt)

	if player.ShootCooldown > 0 {
		player.ShootCooldown = max(0, player.ShootCooldown-dt)
	}

	// Handed to the integrator for every fixed step until next frame
	components.Physics.Get(e).Velocity = transform.Forward().Mul(player.Speed)
}

// reticleCenter is the point reticleDistance ahead of the ship along the rail.
func reticleCenter(t *components.TransformData) mgl64.Vec3 {
	return gamemath.ReticlePoint(t.Position, cfg.Player.ReticleDistance, dmath.Vec2{})
}

// moveReticle displaces the reticle offset and clamps it to the reticle box.
// The offset lives on the rail's axes, so the heading it produces is bounded
// however long an input is held.
func moveReticle(player *components.PlayerData, t *components.TransformData, sample input.Sample, dt float64) {
	vertical := sample.Vertical
	if cfg.Player.InvertYAxis {
		vertical = -vertical
	}

	step := cfg.Player.MoveSpeed * dt
	delta := dmath.NewVec2(sample.Horizontal*step, vertical*step)
	player.ReticleOffset = gamemath.MoveReticle(player.ReticleOffset, delta, cfg.Player.ReticleBounds)
	player.ReticleTarget = gamemath.ReticlePoint(t.Position, cfg.Player.ReticleDistance, player.ReticleOffset)
}

// aimShip points the ship at the reticle, never past the aim cone, and
// composes the visual tilt on top of the look rotation.
func aimShip(player *components.PlayerData, t *components.TransformData) {
	aim := gamemath.ConstrainAim(t.Forward(), player.ReticleTarget.Sub(t.Position), cfg.Player.AimConeDegrees)
	tilt := gamemath.Tilt(player.ReticleOffset, cfg.Player.ReticleBounds, cfg.Player.TiltAmount)
	t.Rotation = gamemath.LookRotation(aim, gamemath.Up).Mul(tilt).Normalize()
}

func shoot(ecs *ecs.ECS, player *components.PlayerData, t *components.TransformData) {
	if player.ShootCooldown > 0 {
		return
	}
	if player.FirePoint == nil {
		if player.WarnFirePoint() {
			log.Printf("Warning: Player has no fire point, shooting disabled")
		}
		return
	}

	origin := t.Point(*player.FirePoint)
	dir := player.ReticleTarget.Sub(origin)
	if dir.Len() == 0 {
		dir = t.Forward()
	}
	factory.CreateProjectile(ecs, true, origin, dir)
	player.ShootCooldown = cfg.Player.ShootCooldown
}

// updateSpeed picks this frame's speed mode. Boost is checked before brake;
// both need at least MinEnergy, otherwise the ship cruises.
func updateSpeed(player *components.PlayerData, sample input.Sample, dt float64) {
	p := cfg.Player
	switch {
	case sample.Boost && player.Energy >= p.MinEnergy:
		player.Mode = components.SpeedBoost
		player.Speed = p.BoostSpeed
		player.Energy = gamemath.Drain(player.Energy, p.BoostCost*dt)
	case sample.Brake && player.Energy >= p.MinEnergy:
		player.Mode = components.SpeedBrake
		player.Speed = p.SlowSpeed
		player.Energy = gamemath.Drain(player.Energy, p.BrakeCost*dt)
	default:
		player.Mode = components.SpeedCruise
		player.Speed = p.ForwardSpeed
	}
}

func regenerateEnergy(player *components.PlayerData, dt float64) {
	if player.Mode != components.SpeedCruise {
		return
	}
	if player.Energy < cfg.Player.MaxEnergy {
		player.Energy = min(cfg.Player.MaxEnergy, player.Energy+cfg.Player.EnergyRegenRate*dt)
	}
}
