package systems

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// basicMovement flies straight along the enemy's own forward axis, which
// faces the player's rail from spawn. It does not need the player.
func basicMovement(_ *ecs.ECS, e, _ *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(e)
	components.Transform.Get(e).Translate(gamemath.Forward.Mul(enemy.MoveSpeed * dt))
}
