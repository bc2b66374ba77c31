package config

// EnemyKind discriminates the enemy variants.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemySniper
	EnemyZippy
	EnemyKindCount // Must be last - used for array sizing
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "Basic"
	case EnemySniper:
		return "Sniper"
	case EnemyZippy:
		return "Zippy"
	default:
		return "Unknown"
	}
}

// Type returns the configuration for the given kind, falling back to Basic.
func (c *EnemyConfig) Type(kind EnemyKind) *EnemyTypeConfig {
	switch kind {
	case EnemySniper:
		return &c.Sniper
	case EnemyZippy:
		return &c.Zippy
	default:
		return &c.Basic
	}
}
