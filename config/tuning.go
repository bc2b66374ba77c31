package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

// tuningKey is the storage item holding the active tuning profile.
const tuningKey = "tuning"

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// TuningStore is the subset of *gdata.Manager used for tuning profiles.
type TuningStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Tuning aggregates every tunable section for storage on disk.
type Tuning struct {
	Player     PlayerConfig     `json:"player"`
	Projectile ProjectileConfig `json:"projectile"`
	Enemy      EnemyConfig      `json:"enemy"`
	Director   DirectorConfig   `json:"director"`
	Lifetime   LifetimeConfig   `json:"lifetime"`
	Physics    PhysicsConfig    `json:"physics"`
}

// OpenTuningStore opens the gdata manager for the given application name.
func OpenTuningStore(appName string) (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{
		AppName: appName,
	})
}

// CurrentTuning snapshots the global configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Player:     Player,
		Projectile: Projectile,
		Enemy:      Enemy,
		Director:   Director,
		Lifetime:   Lifetime,
		Physics:    Physics,
	}
}

// ApplyTuning validates t and replaces the global configuration with it.
func ApplyTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	Player = t.Player
	Projectile = t.Projectile
	Enemy = t.Enemy
	Director = t.Director
	Lifetime = t.Lifetime
	Physics = t.Physics
	return nil
}

// Validate reports the first inconsistency found in t.
func (t Tuning) Validate() error {
	p := t.Player
	switch {
	case p.MaxEnergy <= 0:
		return fmt.Errorf("%w: maxEnergy must be positive, got %v", ErrInvalidTuning, p.MaxEnergy)
	case p.MinEnergy < 0 || p.MinEnergy > p.MaxEnergy:
		return fmt.Errorf("%w: minEnergy %v outside [0, %v]", ErrInvalidTuning, p.MinEnergy, p.MaxEnergy)
	case p.BoostSpeed == p.SlowSpeed:
		return fmt.Errorf("%w: boostSpeed and slowSpeed must differ", ErrInvalidTuning)
	case p.ReticleBounds.X <= 0 || p.ReticleBounds.Y <= 0:
		return fmt.Errorf("%w: reticleBounds must be positive", ErrInvalidTuning)
	case p.AimConeDegrees <= 0 || p.AimConeDegrees > 180:
		return fmt.Errorf("%w: aimConeDegrees %v outside (0, 180]", ErrInvalidTuning, p.AimConeDegrees)
	case p.ShootCooldown < 0:
		return fmt.Errorf("%w: shootCooldown must not be negative", ErrInvalidTuning)
	}

	d := t.Director
	switch {
	case d.SniperProbability < 0 || d.ZippyProbability < 0:
		return fmt.Errorf("%w: spawn probabilities must not be negative", ErrInvalidTuning)
	case d.SniperProbability+d.ZippyProbability > 1:
		return fmt.Errorf("%w: sniper+zippy probability %v exceeds 1", ErrInvalidTuning, d.SniperProbability+d.ZippyProbability)
	case d.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawnInterval must be positive", ErrInvalidTuning)
	case d.SpawnAreaWidth < 0 || d.SpawnAreaHeight < 0:
		return fmt.Errorf("%w: spawn area must not be negative", ErrInvalidTuning)
	}

	for _, et := range []EnemyTypeConfig{t.Enemy.Basic, t.Enemy.Sniper, t.Enemy.Zippy} {
		if et.Health <= 0 {
			return fmt.Errorf("%w: %s health must be positive", ErrInvalidTuning, et.Name)
		}
	}
	if t.Enemy.Sniper.ShootInterval <= 0 {
		return fmt.Errorf("%w: sniper shootInterval must be positive", ErrInvalidTuning)
	}
	if t.Enemy.Zippy.DirectionChangeInterval <= 0 {
		return fmt.Errorf("%w: zippy directionChangeInterval must be positive", ErrInvalidTuning)
	}

	if t.Lifetime.Projectile <= 0 || t.Lifetime.Enemy <= 0 {
		return fmt.Errorf("%w: lifetimes must be positive", ErrInvalidTuning)
	}
	if t.Physics.FixedStep <= 0 || t.Physics.MaxSubSteps <= 0 || t.Physics.CellSize <= 0 {
		return fmt.Errorf("%w: physics step, sub-steps and cell size must be positive", ErrInvalidTuning)
	}
	return nil
}

// LoadTuning applies the stored tuning profile, if any.
// Returns false when the store holds no profile.
func LoadTuning(store TuningStore) (bool, error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return false, nil
	}
	if len(data) == 0 {
		// No saved tuning yet, keep defaults
		return false, nil
	}

	// Start from the current values so partial profiles only override what they name
	t := CurrentTuning()
	if err := json.Unmarshal(data, &t); err != nil {
		return false, fmt.Errorf("parse tuning: %w", err)
	}
	if err := ApplyTuning(t); err != nil {
		return false, err
	}
	return true, nil
}

// SaveTuning writes the current global configuration to the store.
func SaveTuning(store TuningStore) error {
	if store == nil {
		return nil
	}

	data, err := json.MarshalIndent(CurrentTuning(), "", "  ")
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := store.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}
