// Package events declares the notifications exchanged between systems.
// They are queued with donburi's event feature and delivered when the
// owning system processes them.
package events

import (
	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// ContactEvent is published once when two bodies first touch.
// A is always the lower entity.
type ContactEvent struct {
	A, B *donburi.Entry
}

// EnemyDestroyedEvent is published once when an enemy is marked for removal.
type EnemyDestroyedEvent struct {
	Entity     donburi.Entity
	Kind       config.EnemyKind
	PointValue int
	Position   mgl64.Vec3
	Cause      components.DeathCause
}

// PlayerHitEvent is published when an enemy or enemy projectile reaches the player.
// The player takes no damage.
type PlayerHitEvent struct {
	Player donburi.Entity
	Source donburi.Entity
	ByKind string // "Projectile" or the enemy kind
}

var (
	Contact        = devents.NewEventType[ContactEvent]()
	EnemyDestroyed = devents.NewEventType[EnemyDestroyedEvent]()
	PlayerHit      = devents.NewEventType[PlayerHitEvent]()
)

// ProcessAll delivers every queued notification to its subscribers.
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}
