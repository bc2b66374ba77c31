package systems

import (
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemyBehavior is the per-kind function set. Nil start or update fall back
// to doing nothing and to calling movement.
type enemyBehavior struct {
	start     func(ecs *ecs.ECS, e *donburi.Entry)
	update    func(ecs *ecs.ECS, e, player *donburi.Entry, dt float64)
	movement  func(ecs *ecs.ECS, e, player *donburi.Entry, dt float64)
	onContact func(w donburi.World, e, other *donburi.Entry)
}

var enemyBehaviors = [cfg.EnemyKindCount]enemyBehavior{
	cfg.EnemyBasic: {
		movement:  basicMovement,
		onContact: enemyContact,
	},
	cfg.EnemySniper: {
		start:     startSniper,
		update:    updateSniper,
		movement:  sniperMovement,
		onContact: enemyContact,
	},
	cfg.EnemyZippy: {
		start:     startZippy,
		update:    updateZippy,
		movement:  zippyMovement,
		onContact: enemyContact,
	},
}

func behaviorFor(kind cfg.EnemyKind) enemyBehavior {
	if kind < 0 || kind >= cfg.EnemyKindCount {
		return enemyBehaviors[cfg.EnemyBasic]
	}
	return enemyBehaviors[kind]
}

// UpdateEnemies runs each enemy's Start once, then its per-frame update.
// The player is looked up once per frame and may be missing.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	player, _ := components.Player.First(ecs.World)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if isDoomed(e) {
			return
		}
		enemy := components.Enemy.Get(e)
		b := behaviorFor(enemy.Kind)

		if !enemy.Started {
			enemy.Started = true
			if b.start != nil {
				b.start(ecs, e)
			}
		}

		if b.update != nil {
			b.update(ecs, e, player, dt)
		} else if b.movement != nil {
			b.movement(ecs, e, player, dt)
		}
	})
}
