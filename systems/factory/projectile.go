package factory

import (
	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/automoto/space-kitsune/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at origin travelling along direction.
// Speed and tint follow the allegiance.
func CreateProjectile(ecs *ecs.ECS, fromPlayer bool, origin, direction mgl64.Vec3) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	dir := gamemath.Normalize(direction)

	speed := cfg.Projectile.EnemySpeed
	tint := cfg.Projectile.EnemyTint
	if fromPlayer {
		speed = cfg.Projectile.PlayerSpeed
		tint = cfg.Projectile.PlayerTint
	}

	components.Transform.SetValue(p, components.TransformData{
		Position: origin,
		Rotation: gamemath.LookRotation(dir, gamemath.Up),
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		FromPlayer: fromPlayer,
		Direction:  dir,
		Speed:      speed,
		Damage:     cfg.Projectile.Damage,
		Tint:       tint,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		Velocity:    dir.Mul(speed),
		HalfExtents: cfg.Projectile.HalfExtents,
	})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{
		ExpiresAt: now(ecs) + cfg.Lifetime.Projectile,
	})

	attachBody(ecs, p, cfg.Projectile.HalfExtents, tags.ResolvProjectile)

	return p
}
