package systems

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/automoto/space-kitsune/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startSniper desynchronizes salvos and creates a fire point at the local
// origin when none is configured.
func startSniper(_ *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	sniper := enemy.Sniper
	if sniper == nil {
		return
	}

	sniper.ShootTimer = enemy.Rand.Float64() * sniper.ShootInterval
	if sniper.FirePoint == nil {
		sniper.FirePoint = &mgl64.Vec3{}
	}
}

func updateSniper(ecs *ecs.ECS, e, player *donburi.Entry, dt float64) {
	sniperMovement(ecs, e, player, dt)

	sniper := components.Enemy.Get(e).Sniper
	if sniper == nil {
		return
	}
	// The countdown pauses on the frame it fires
	if sniper.ShootTimer <= 0 {
		sniperFire(ecs, e, player)
		sniper.ShootTimer = sniper.ShootInterval
	} else {
		sniper.ShootTimer -= dt
	}
}

// sniperMovement backs away inside the preferred distance, otherwise holds
// position and turns level toward the player.
func sniperMovement(_ *ecs.ECS, e, player *donburi.Entry, dt float64) {
	if player == nil {
		return
	}
	enemy := components.Enemy.Get(e)
	if enemy.Sniper == nil {
		return
	}

	t := components.Transform.Get(e)
	target := components.Transform.Get(player).Position

	if t.Position.Sub(target).Len() < enemy.Sniper.PreferredDistance {
		t.Translate(gamemath.Forward.Mul(-enemy.MoveSpeed * dt))
		return
	}

	look := target.Sub(t.Position)
	look[1] = 0
	if look.Len() > 0 {
		t.Rotation = gamemath.LookRotation(look, gamemath.Up)
	}
}

func sniperFire(ecs *ecs.ECS, e, player *donburi.Entry) {
	sniper := components.Enemy.Get(e).Sniper
	if player == nil || sniper.FirePoint == nil {
		return
	}

	origin := components.Transform.Get(e).Point(*sniper.FirePoint)
	dir := components.Transform.Get(player).Position.Sub(origin)
	if dir.Len() == 0 {
		return
	}
	factory.CreateProjectile(ecs, false, origin, dir)
}
