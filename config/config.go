package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Reticle
	MoveSpeed       float64    `json:"moveSpeed"`       // Reticle travel speed per unit of axis input
	ReticleDistance float64    `json:"reticleDistance"` // Distance of the reticle plane ahead of the ship
	ReticleBounds   dmath.Vec2 `json:"reticleBounds"`   // Max reticle offset from center on local X/Y
	InvertYAxis     bool       `json:"invertYAxis"`

	// Aiming
	TiltAmount     float64 `json:"tiltAmount"`     // Degrees of roll/pitch at full reticle deflection
	AimConeDegrees float64 `json:"aimConeDegrees"` // Half-angle of the forward aim cone

	// Shooting
	ShootCooldown float64   `json:"shootCooldown"` // Seconds between shots
	FirePoint     mgl64.Vec3 `json:"firePoint"`     // Local offset projectiles spawn from

	// Speed
	ForwardSpeed float64 `json:"forwardSpeed"` // Cruise
	BoostSpeed   float64 `json:"boostSpeed"`
	SlowSpeed    float64 `json:"slowSpeed"` // Brake

	// Energy
	MaxEnergy       float64 `json:"maxEnergy"`
	MinEnergy       float64 `json:"minEnergy"` // Energy required to engage boost or brake
	EnergyRegenRate float64 `json:"energyRegenRate"`
	BoostCost       float64 `json:"boostCost"` // Per second
	BrakeCost       float64 `json:"brakeCost"` // Per second

	// Play area
	ShipScreenBounds dmath.Vec2 `json:"shipScreenBounds"` // Max X/Y deviation of the ship from center
	FloorMargin      float64    `json:"floorMargin"`      // Raises the lower Y bound to keep the ship visible

	// Dimensions
	HalfExtents mgl64.Vec3 `json:"halfExtents"`
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	PlayerSpeed float64    `json:"playerSpeed"`
	EnemySpeed  float64    `json:"enemySpeed"`
	Damage      int        `json:"damage"`
	HalfExtents mgl64.Vec3 `json:"halfExtents"`
	PlayerTint  color.RGBA `json:"playerTint"`
	EnemyTint   color.RGBA `json:"enemyTint"`
}

// EnemyTypeConfig contains configuration for a specific enemy kind.
// Fields only some kinds read are grouped at the bottom.
type EnemyTypeConfig struct {
	Name        string     `json:"name"`
	Health      int        `json:"health"`
	PointValue  int        `json:"pointValue"`
	MoveSpeed   float64    `json:"moveSpeed"`
	HalfExtents mgl64.Vec3 `json:"halfExtents"`

	// Sniper
	ShootInterval     float64     `json:"shootInterval,omitempty"`
	PreferredDistance float64     `json:"preferredDistance,omitempty"`
	FirePoint         *mgl64.Vec3 `json:"firePoint,omitempty"` // nil = created at the local origin on Start

	// Zippy
	DirectionChangeInterval float64    `json:"directionChangeInterval,omitempty"`
	ZipSpeedMultiplier      float64    `json:"zipSpeedMultiplier,omitempty"`
	MovementRange           dmath.Vec2 `json:"movementRange,omitempty"`
	TurnRate                float64    `json:"turnRate,omitempty"`      // Slerp factor per second toward the movement heading
	CatchUpFactor           float64    `json:"catchUpFactor,omitempty"` // Fraction of MoveSpeed nudged along local forward
}

// EnemyConfig contains the per-kind enemy configurations
type EnemyConfig struct {
	Basic  EnemyTypeConfig `json:"basic"`
	Sniper EnemyTypeConfig `json:"sniper"`
	Zippy  EnemyTypeConfig `json:"zippy"`
}

// DirectorConfig contains spawn director configuration
type DirectorConfig struct {
	SpawnInterval     float64 `json:"spawnInterval"`
	SpawnDistance     float64 `json:"spawnDistance"` // Ahead of the player along Z
	SpawnAreaWidth    float64 `json:"spawnAreaWidth"`
	SpawnAreaHeight   float64 `json:"spawnAreaHeight"`
	SniperProbability float64 `json:"sniperProbability"`
	ZippyProbability  float64 `json:"zippyProbability"`
}

// LifetimeConfig contains forced removal timeouts in seconds
type LifetimeConfig struct {
	Projectile float64 `json:"projectile"`
	Enemy      float64 `json:"enemy"`
}

// PhysicsConfig contains kinematic integrator configuration
type PhysicsConfig struct {
	FixedStep   float64 `json:"fixedStep"`   // Seconds per integration step
	MaxSubSteps int     `json:"maxSubSteps"` // Per frame, excess time is dropped

	// Broadphase window (world units), re-centered on the player every step
	WindowWidth  int `json:"windowWidth"`
	WindowBehind int `json:"windowBehind"`
	WindowAhead  int `json:"windowAhead"`
	CellSize     int `json:"cellSize"`
}

// CameraConfig contains the debug view's chase camera configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast the camera follows the player (0.0-1.0)
	LookAheadMin       float64 // Look-ahead along the rail at brake speed
	LookAheadMax       float64 // Look-ahead along the rail at boost speed
	LookAheadSmoothing float64 // How fast look-ahead changes (0.0-1.0)
	Anchor             float64 // Screen height fraction the camera focus is drawn at

	// Screen shake when the player is hit
	HitShakeIntensity float64 // Pixels
	HitShakeDuration  int     // Frames
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Default is the only render layer.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Player PlayerConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Director DirectorConfig
var Lifetime LifetimeConfig
var Physics PhysicsConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed:       10.0,
		ReticleDistance: 15.0,
		ReticleBounds:   dmath.NewVec2(40, 22),
		InvertYAxis:     true,

		TiltAmount:     30.0,
		AimConeDegrees: 80.0,

		ShootCooldown: 0.25,
		FirePoint:     mgl64.Vec3{0, 0, 1.5},

		ForwardSpeed: 5.0,
		BoostSpeed:   10.0,
		SlowSpeed:    2.5,

		MaxEnergy:       100.0,
		MinEnergy:       75.0,
		EnergyRegenRate: 5.0,
		BoostCost:       10.0,
		BrakeCost:       10.0,

		ShipScreenBounds: dmath.NewVec2(18, 10),
		FloorMargin:      1.0,

		HalfExtents: mgl64.Vec3{1, 0.5, 1.5},
	}

	Projectile = ProjectileConfig{
		PlayerSpeed: 60.0, // Fast enough to make hitting enemies easy
		EnemySpeed:  15.0,
		Damage:      1,
		HalfExtents: mgl64.Vec3{0.25, 0.25, 0.25},
		PlayerTint:  Blue,
		EnemyTint:   Red,
	}

	Enemy = EnemyConfig{
		Basic: EnemyTypeConfig{
			Name:        "Basic",
			Health:      1,
			PointValue:  100,
			MoveSpeed:   5.0,
			HalfExtents: mgl64.Vec3{1, 1, 1},
		},
		Sniper: EnemyTypeConfig{
			Name:              "Sniper",
			Health:            2,
			PointValue:        200,
			MoveSpeed:         5.0,
			HalfExtents:       mgl64.Vec3{1, 1, 1},
			ShootInterval:     2.0,
			PreferredDistance: 30.0,
		},
		Zippy: EnemyTypeConfig{
			Name:                    "Zippy",
			Health:                  1,
			PointValue:              150,
			MoveSpeed:               5.0,
			HalfExtents:             mgl64.Vec3{0.75, 0.75, 0.75},
			DirectionChangeInterval: 1.0,
			ZipSpeedMultiplier:      2.5,
			MovementRange:           dmath.NewVec2(10, 6),
			TurnRate:                5.0,
			CatchUpFactor:           0.5,
		},
	}

	Director = DirectorConfig{
		SpawnInterval:     2.0,
		SpawnDistance:     50.0,
		SpawnAreaWidth:    36.0, // Matches 2 * ShipScreenBounds.X
		SpawnAreaHeight:   20.0, // Matches 2 * ShipScreenBounds.Y
		SniperProbability: 0.2,
		ZippyProbability:  0.3,
	}

	Lifetime = LifetimeConfig{
		Projectile: 5.0,
		Enemy:      15.0,
	}

	Physics = PhysicsConfig{
		FixedStep:    0.02,
		MaxSubSteps:  8,
		WindowWidth:  160,
		WindowBehind: 40,
		WindowAhead:  120,
		CellSize:     4,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadMin:       10.0,
		LookAheadMax:       40.0,
		LookAheadSmoothing: 0.05, // Slower than follow for smooth feel
		Anchor:             0.8,
		HitShakeIntensity:  4.0,
		HitShakeDuration:   12,
	}
}
