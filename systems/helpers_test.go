package systems

import (
	"testing"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/events"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// newTestECS builds a world with a clock and a space, and wires contacts
// the way the flight scene does.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateSpace(e)
	events.Contact.Subscribe(e.World, OnContact)
	return e
}

// restoreConfig puts every tuning section back after the test.
func restoreConfig(t *testing.T) {
	t.Helper()
	saved := cfg.CurrentTuning()
	t.Cleanup(func() {
		if err := cfg.ApplyTuning(saved); err != nil {
			t.Fatalf("restore tuning: %v", err)
		}
	})
}

// run sets the frame delta and runs the given systems in order.
func run(e *ecs.ECS, dt float64, fns ...func(*ecs.ECS)) {
	SetFrameDelta(e.World, dt)
	for _, fn := range fns {
		fn(e)
	}
}

// physicsFrame integrates one fixed step and resolves its contacts.
func physicsFrame(e *ecs.ECS) {
	run(e, cfg.Physics.FixedStep, UpdateClock, UpdatePhysics, UpdateContacts)
}

func count(w donburi.World, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func entries(w donburi.World, tag donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func projectileAt(e *ecs.ECS, fromPlayer bool, pos, dir mgl64.Vec3) *donburi.Entry {
	return factory.CreateProjectile(e, fromPlayer, pos, dir)
}

func enemyAt(e *ecs.ECS, kind cfg.EnemyKind, pos mgl64.Vec3) *donburi.Entry {
	// Facing -Z, toward the player's rail
	rot := mgl64.QuatRotate(mgl64.DegToRad(180), mgl64.Vec3{0, 1, 0})
	return factory.CreateEnemy(e, kind, pos, rot, 1, 2)
}

func playerWith(e *ecs.ECS, src input.Source) *donburi.Entry {
	return factory.CreatePlayer(e, src)
}

func causeOf(e *donburi.Entry) (components.DeathCause, bool) {
	if !e.Valid() || !e.HasComponent(components.Death) {
		return 0, false
	}
	return components.Death.Get(e).Cause, true
}
