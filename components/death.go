package components

import "github.com/yohamta/donburi"

// DeathCause records why an entity was marked for removal.
type DeathCause int

const (
	DeathKilled   DeathCause = iota // Health reached zero
	DeathCollided                   // Touched the player
	DeathExpired                    // Lifetime deadline passed
	DeathConsumed                   // Projectile spent on a contact
)

func (c DeathCause) String() string {
	switch c {
	case DeathKilled:
		return "Killed"
	case DeathCollided:
		return "Collided"
	case DeathExpired:
		return "Expired"
	case DeathConsumed:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// DeathData marks an entity for removal at the end of the frame.
// Marked entities are ignored by contacts and lifetime checks.
type DeathData struct {
	Cause DeathCause
}

var Death = donburi.NewComponentType[DeathData]()
