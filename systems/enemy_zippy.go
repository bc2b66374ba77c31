package systems

import (
	"math/rand/v2"

	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func startZippy(_ *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	zippy := enemy.Zippy
	if zippy == nil {
		return
	}

	zippy.DirectionTimer = enemy.Rand.Float64() * zippy.DirectionChangeInterval
	zippy.Direction = randomLateral(enemy.Rand)
}

func updateZippy(ecs *ecs.ECS, e, player *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(e)
	zippy := enemy.Zippy
	if zippy == nil {
		return
	}

	zippy.DirectionTimer -= dt
	if zippy.DirectionTimer <= 0 {
		zippy.Direction = randomLateral(enemy.Rand)
		zippy.DirectionTimer = zippy.DirectionChangeInterval
	}

	zippyMovement(ecs, e, player, dt)
	clampToSpawnVolume(e, player)
}

// zippyMovement drifts toward the player along Z while strafing, turns to
// face away from its motion and nudges forward to keep pace with the rail.
func zippyMovement(_ *ecs.ECS, e, player *donburi.Entry, dt float64) {
	if player == nil {
		return
	}
	enemy := components.Enemy.Get(e)
	zippy := enemy.Zippy
	if zippy == nil {
		return
	}
	t := components.Transform.Get(e)

	speed := enemy.MoveSpeed
	if zippy.Zipping {
		speed *= zippy.ZipSpeedMultiplier
	}

	total := mgl64.Vec3{0, 0, -enemy.MoveSpeed * dt}.Add(zippy.Direction.Mul(speed * dt))
	t.Position = t.Position.Add(total)

	if total.Len() > 0 {
		heading := gamemath.LookRotation(total.Mul(-1), gamemath.Up)
		t.Rotation = gamemath.Slerp(t.Rotation, heading, dt*zippy.TurnRate)
	}

	t.Translate(gamemath.Forward.Mul(enemy.MoveSpeed * zippy.CatchUpFactor * dt))
}

// clampToSpawnVolume keeps the enemy inside the director's spawn box on X and Y.
func clampToSpawnVolume(e, player *donburi.Entry) {
	if player == nil {
		return
	}
	directorEntry, ok := components.Director.First(e.World)
	if !ok {
		return
	}
	director := components.Director.Get(directorEntry)
	halfW := director.Config.SpawnAreaWidth / 2
	halfH := director.Config.SpawnAreaHeight / 2

	t := components.Transform.Get(e)
	t.Position[0] = mgl64.Clamp(t.Position[0], -halfW, halfW)
	t.Position[1] = mgl64.Clamp(t.Position[1], -halfH, halfH)
}

// randomLateral returns a unit vector in the world XY plane.
func randomLateral(r *rand.Rand) mgl64.Vec3 {
	for range 8 {
		v := mgl64.Vec3{r.Float64()*2 - 1, r.Float64()*2 - 1, 0}
		if v.Len() > 1e-6 {
			return v.Normalize()
		}
	}
	return gamemath.Right
}
