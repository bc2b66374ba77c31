package components

import (
	"math/rand/v2"

	"github.com/automoto/space-kitsune/config"
	"github.com/yohamta/donburi"
)

type DirectorData struct {
	Timer     float64 // Seconds until the next spawn
	Config    config.DirectorConfig
	Rand      *rand.Rand
	Available [config.EnemyKindCount]bool // Kinds that can be spawned
	Spawned   [config.EnemyKindCount]int

	playerWarned bool
}

// WarnMissingPlayer reports whether the missing player still needs a warning.
func (d *DirectorData) WarnMissingPlayer() bool {
	if d.playerWarned {
		return false
	}
	d.playerWarned = true
	return true
}

// PlayerFound re-arms the missing player warning.
func (d *DirectorData) PlayerFound() {
	d.playerWarned = false
}

var Director = donburi.NewComponentType[DirectorData]()
