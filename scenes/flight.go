package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/events"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/systems"
	"github.com/automoto/space-kitsune/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightScene runs the on-rails flight: one player, the spawn director and
// whatever they create. It is driven either by ebiten through Update or
// directly with Step.
type FlightScene struct {
	ecs    *ecs.ECS
	source input.Source
	seed   uint64
	once   sync.Once
}

// NewFlightScene creates a scene whose player reads src. The seed drives
// every random draw, so equal seeds and inputs give equal runs.
func NewFlightScene(src input.Source, seed uint64) *FlightScene {
	return &FlightScene{source: src, seed: seed}
}

// Update advances one frame at the configured tick rate.
func (fs *FlightScene) Update() {
	fs.Step(1 / float64(cfg.C.TPS))
}

// Step advances the simulation by dt seconds.
func (fs *FlightScene) Step(dt float64) {
	fs.once.Do(fs.configure)
	systems.SetFrameDelta(fs.ecs.World, dt)
	fs.ecs.Update()
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// World returns the scene's world, configuring the scene on first use.
func (fs *FlightScene) World() donburi.World {
	return fs.ECS().World
}

func (fs *FlightScene) ECS() *ecs.ECS {
	fs.once.Do(fs.configure)
	return fs.ecs
}

func (fs *FlightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Each system runs to completion before the next one reads its results
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateDirector)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateContacts)
	ecs.AddSystem(systems.UpdatePlayerBounds)
	ecs.AddSystem(systems.UpdateAutoDestroy)
	ecs.AddSystem(systems.UpdateRemovals)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	events.Contact.Subscribe(ecs.World, systems.OnContact)
	events.PlayerHit.Subscribe(ecs.World, systems.ShakeOnPlayerHit)

	fs.ecs = ecs

	// The space must exist before any body is created
	factory.CreateClock(fs.ecs)
	factory.CreateSpace(fs.ecs)
	factory.CreatePlayer(fs.ecs, fs.source)
	factory.CreateDirector(fs.ecs, fs.seed)
	factory.CreateCamera(fs.ecs)
}
