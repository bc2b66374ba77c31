package systems

import (
	"cmp"
	"math"
	"slices"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/events"
	"github.com/automoto/space-kitsune/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances every body in fixed steps. Each step integrates
// velocities, re-projects bodies into the broadphase window and publishes
// pairs that started touching during that step. Time beyond MaxSubSteps
// steps is dropped.
func UpdatePhysics(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	integrator := components.Integrator.Get(spaceEntry)
	step := cfg.Physics.FixedStep
	if step <= 0 {
		return
	}

	integrator.Accumulator += deltaTime(ecs.World)
	for n := 0; integrator.Accumulator >= step; n++ {
		if n == cfg.Physics.MaxSubSteps {
			integrator.Accumulator = math.Mod(integrator.Accumulator, step)
			break
		}
		integrate(ecs.World, step)
		syncBodies(ecs.World, integrator)
		detectContacts(ecs.World, integrator)
		integrator.Accumulator -= step
		integrator.Steps++
	}
}

func integrate(w donburi.World, step float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		t := components.Transform.Get(e)
		body.Previous = t.Position
		if body.Velocity.Len() == 0 {
			return
		}
		t.Position = t.Position.Add(body.Velocity.Mul(step))
	})
}

// syncBodies scrolls the window to the player and moves every broadphase
// object to the projected box its body swept this step. Bodies outside the window occupy no
// cells and therefore never touch.
func syncBodies(w donburi.World, integrator *components.IntegratorData) {
	if player, ok := components.Player.First(w); ok {
		integrator.OriginZ = components.Transform.Get(player).Position.Z() - float64(cfg.Physics.WindowBehind)
	}

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		body := components.Physics.Get(e)
		pos := components.Transform.Get(e).Position
		obj.X, obj.Y, obj.W, obj.H = integrator.Project(body.Previous, pos, body.HalfExtents)
		obj.Update()
	})
}

func detectContacts(w donburi.World, integrator *components.IntegratorData) {
	current := make(map[components.ContactPair]struct{}, len(integrator.Touching))

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || isDoomed(e) {
			return
		}
		check := obj.Check(0, 0, tags.ResolvPlayer, tags.ResolvEnemy, tags.ResolvProjectile)
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			other, ok := o.Data.(*donburi.Entry)
			if !ok || other == nil || !other.Valid() || isDoomed(other) {
				continue
			}
			if !overlaps(e, other) {
				continue
			}
			current[components.NewContactPair(e.Entity(), other.Entity())] = struct{}{}
		}
	})

	var started []components.ContactPair
	for pair := range current {
		if _, touching := integrator.Touching[pair]; !touching {
			started = append(started, pair)
		}
	}
	integrator.Touching = current

	// Map order is random; publish in entity order for repeatable runs
	slices.SortFunc(started, func(a, b components.ContactPair) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		return cmp.Compare(a.B, b.B)
	})
	for _, pair := range started {
		events.Contact.Publish(w, events.ContactEvent{
			A: w.Entry(pair.A),
			B: w.Entry(pair.B),
		})
	}
}

// overlaps is the 3D box test behind the planar broadphase. It sweeps both
// boxes across the step so fast bodies cannot skip over each other.
func overlaps(a, b *donburi.Entry) bool {
	ba := components.Physics.Get(a)
	bb := components.Physics.Get(b)
	return sweptOverlap(
		ba.Previous, components.Transform.Get(a).Position, ba.HalfExtents,
		bb.Previous, components.Transform.Get(b).Position, bb.HalfExtents,
	)
}

// sweptOverlap reports whether box a moving from prevA to posA and box b
// moving from prevB to posB share any point during the step. Touching faces
// do not count.
func sweptOverlap(prevA, posA, halfA, prevB, posB, halfB mgl64.Vec3) bool {
	// Work in b's frame: a starts at gap and moves by rel
	gap := prevA.Sub(prevB)
	rel := posA.Sub(prevA).Sub(posB.Sub(prevB))
	reach := halfA.Add(halfB)

	enter, exit := 0.0, 1.0
	for i := 0; i < 3; i++ {
		if rel[i] == 0 {
			if math.Abs(gap[i]) >= reach[i] {
				return false
			}
			continue
		}
		t1 := (-reach[i] - gap[i]) / rel[i]
		t2 := (reach[i] - gap[i]) / rel[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		enter = max(enter, t1)
		exit = min(exit, t2)
		if enter >= exit {
			return false
		}
	}
	return true
}
