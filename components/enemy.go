package components

import (
	"math/rand/v2"

	"github.com/automoto/space-kitsune/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// EnemyData is shared by every enemy kind. Kind selects the behavior set and
// which of the variant payloads is populated.
type EnemyData struct {
	Kind       config.EnemyKind
	MoveSpeed  float64
	PointValue int
	Started    bool       // Kind-specific Start has run
	Rand       *rand.Rand // Per-enemy variance, seeded by the director

	Sniper *SniperState
	Zippy  *ZippyState
}

type SniperState struct {
	ShootTimer        float64
	ShootInterval     float64
	PreferredDistance float64
	FirePoint         *mgl64.Vec3 // Local offset
}

type ZippyState struct {
	DirectionTimer          float64
	DirectionChangeInterval float64
	Direction               mgl64.Vec3 // Lateral, world XY plane
	Zipping                 bool       // Enables ZipSpeedMultiplier, never set by the built-in behaviors
	ZipSpeedMultiplier      float64
	MovementRange           dmath.Vec2
	TurnRate                float64
	CatchUpFactor           float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
