package factory

import (
	"math/rand/v2"

	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind. The seeds drive its own
// generator so that its variance does not depend on other enemies.
// Kind-specific setup that needs the world (timers, fire point) is left to
// the enemy's Start on its first update.
func CreateEnemy(ecs *ecs.ECS, kind config.EnemyKind, pos mgl64.Vec3, rot mgl64.Quat, seed1, seed2 uint64) *donburi.Entry {
	e := archetypes.Enemy.Spawn(ecs)

	if kind < 0 || kind >= config.EnemyKindCount {
		kind = config.EnemyBasic
	}
	enemyType := config.Enemy.Type(kind)

	components.Transform.SetValue(e, components.TransformData{
		Position: pos,
		Rotation: rot,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		HalfExtents: enemyType.HalfExtents,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	data := components.EnemyData{
		Kind:       kind,
		MoveSpeed:  enemyType.MoveSpeed,
		PointValue: enemyType.PointValue,
		Rand:       rand.New(rand.NewPCG(seed1, seed2)),
	}

	switch kind {
	case config.EnemySniper:
		var firePoint *mgl64.Vec3
		if enemyType.FirePoint != nil {
			fp := *enemyType.FirePoint
			firePoint = &fp
		}
		data.Sniper = &components.SniperState{
			ShootInterval:     enemyType.ShootInterval,
			PreferredDistance: enemyType.PreferredDistance,
			FirePoint:         firePoint,
		}
	case config.EnemyZippy:
		data.Zippy = &components.ZippyState{
			DirectionChangeInterval: enemyType.DirectionChangeInterval,
			ZipSpeedMultiplier:      enemyType.ZipSpeedMultiplier,
			MovementRange:           enemyType.MovementRange,
			TurnRate:                enemyType.TurnRate,
			CatchUpFactor:           enemyType.CatchUpFactor,
		}
	}
	components.Enemy.SetValue(e, data)

	// Leak guard, independent of gameplay destruction
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{
		ExpiresAt: now(ecs) + config.Lifetime.Enemy,
	})

	attachBody(ecs, e, enemyType.HalfExtents, tags.ResolvEnemy)

	return e
}
