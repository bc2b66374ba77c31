package factory

import (
	"math/rand/v2"

	"github.com/automoto/space-kitsune/archetypes"
	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDirector spawns the spawn director with its first spawn one interval away.
// All kinds start available.
func CreateDirector(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	director := archetypes.Director.Spawn(ecs)

	data := components.DirectorData{
		Timer:  cfg.Director.SpawnInterval,
		Config: cfg.Director,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for i := range data.Available {
		data.Available[i] = true
	}
	components.Director.SetValue(director, data)

	return director
}
