package systems

import (
	"log"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/automoto/space-kitsune/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDirector counts down to the next spawn. At most one enemy spawns per
// frame however far the countdown overshoots.
func UpdateDirector(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Director.Each(ecs.World, func(e *donburi.Entry) {
		director := components.Director.Get(e)
		director.Timer -= dt
		if director.Timer > 0 {
			return
		}
		spawnEnemy(ecs, director)
		director.Timer = director.Config.SpawnInterval
	})
}

// chooseEnemyKind maps one uniform draw in [0, 1) onto cumulative thresholds.
func chooseEnemyKind(roll, sniperProbability, zippyProbability float64) cfg.EnemyKind {
	switch {
	case roll < sniperProbability:
		return cfg.EnemySniper
	case roll < sniperProbability+zippyProbability:
		return cfg.EnemyZippy
	default:
		return cfg.EnemyBasic
	}
}

func spawnEnemy(ecs *ecs.ECS, director *components.DirectorData) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		// Player may appear later, try again next interval
		if director.WarnMissingPlayer() {
			log.Printf("Warning: Director found no player, skipping spawn")
		}
		return
	}
	director.PlayerFound()

	c := director.Config
	kind := chooseEnemyKind(director.Rand.Float64(), c.SniperProbability, c.ZippyProbability)
	if !director.Available[kind] {
		kind = cfg.EnemyBasic
	}
	if !director.Available[kind] {
		log.Printf("Warning: No enemy prototype available, skipping spawn")
		return
	}

	playerPos := components.Transform.Get(playerEntry).Position
	pos := mgl64.Vec3{
		(director.Rand.Float64()*2 - 1) * c.SpawnAreaWidth / 2,
		(director.Rand.Float64()*2 - 1) * c.SpawnAreaHeight / 2,
		playerPos.Z() + c.SpawnDistance,
	}
	rot := gamemath.LookRotation(playerPos.Sub(pos), gamemath.Up)

	factory.CreateEnemy(ecs, kind, pos, rot, director.Rand.Uint64(), director.Rand.Uint64())
	director.Spawned[kind]++
}
