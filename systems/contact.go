package systems

import (
	"log"

	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/events"
	"github.com/automoto/space-kitsune/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts resolves the contacts published by the last physics pass.
func UpdateContacts(ecs *ecs.ECS) {
	events.Contact.ProcessEvents(ecs.World)
}

// OnContact resolves one first-touch pair. Each pair is handled from one
// side only, so damage lands once. Pairs with an entity already marked for
// removal are ignored.
func OnContact(w donburi.World, ev events.ContactEvent) {
	a, b := ev.A, ev.B
	if a == nil || b == nil || !a.Valid() || !b.Valid() {
		return
	}
	if isDoomed(a) || isDoomed(b) {
		return
	}

	aProjectile := a.HasComponent(tags.Projectile)
	bProjectile := b.HasComponent(tags.Projectile)

	switch {
	case aProjectile && bProjectile:
		// Regardless of allegiance
		markDead(a, components.DeathConsumed)
		markDead(b, components.DeathConsumed)
	case a.HasComponent(tags.Enemy):
		behaviorFor(components.Enemy.Get(a).Kind).onContact(w, a, b)
	case b.HasComponent(tags.Enemy):
		behaviorFor(components.Enemy.Get(b).Kind).onContact(w, b, a)
	case aProjectile:
		projectileContact(w, a, b)
	case bProjectile:
		projectileContact(w, b, a)
	}
}

// enemyContact is the collision response shared by every enemy kind.
func enemyContact(w donburi.World, e, other *donburi.Entry) {
	switch {
	case other.HasComponent(tags.Projectile):
		projectile := *components.Projectile.Get(other)
		if !projectile.FromPlayer {
			// Enemy fire passes through enemies
			return
		}
		markDead(other, components.DeathConsumed)
		TakeDamage(w, e, projectile.Damage)
	case other.HasComponent(tags.Player):
		destroyEnemy(w, e, components.DeathCollided)
		events.PlayerHit.Publish(w, events.PlayerHitEvent{
			Player: other.Entity(),
			Source: e.Entity(),
			ByKind: components.Enemy.Get(e).Kind.String(),
		})
	}
}

// projectileContact handles a projectile touching a non-projectile, non-enemy body.
func projectileContact(w donburi.World, p, other *donburi.Entry) {
	projectile := components.Projectile.Get(p)
	if projectile.FromPlayer || !other.HasComponent(tags.Player) {
		return
	}

	markDead(p, components.DeathConsumed)
	// Player damage is not implemented
	log.Println("Player hit by enemy projectile")
	events.PlayerHit.Publish(w, events.PlayerHitEvent{
		Player: other.Entity(),
		Source: p.Entity(),
		ByKind: "Projectile",
	})
}

// TakeDamage subtracts amount from an enemy's health and marks it destroyed
// once health reaches zero. Enemies already marked take no further damage.
func TakeDamage(w donburi.World, e *donburi.Entry, amount int) {
	if isDoomed(e) || !e.HasComponent(components.Health) {
		return
	}
	health := components.Health.Get(e)
	health.Current -= amount
	if health.Current <= 0 {
		destroyEnemy(w, e, components.DeathKilled)
	}
}

// destroyEnemy marks an enemy for removal and announces it once.
func destroyEnemy(w donburi.World, e *donburi.Entry, cause components.DeathCause) {
	if !markDead(e, cause) {
		return
	}
	enemy := components.Enemy.Get(e)
	events.EnemyDestroyed.Publish(w, events.EnemyDestroyedEvent{
		Entity:     e.Entity(),
		Kind:       enemy.Kind,
		PointValue: enemy.PointValue,
		Position:   components.Transform.Get(e).Position,
		Cause:      cause,
	})
}
