package systems

import (
	"testing"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// advance moves the clock forward without running any physics.
func advance(e *ecs.ECS, dt float64) {
	run(e, dt, UpdateClock, UpdateAutoDestroy)
}

func TestProjectileExpires(t *testing.T) {
	e := newTestECS(t)
	shot := projectileAt(e, true, mgl64.Vec3{0, 0, 10}, forward)

	advance(e, cfg.Lifetime.Projectile-0.1)
	if _, ok := causeOf(shot); ok {
		t.Fatalf("projectile marked before its deadline")
	}

	advance(e, 0.2)
	if cause, ok := causeOf(shot); !ok || cause != components.DeathExpired {
		t.Fatalf("projectile not expired: cause %v marked %v", cause, ok)
	}
	UpdateRemovals(e)
	if shot.Valid() {
		t.Fatalf("expired projectile still in the world")
	}
}

func TestEnemyExpires(t *testing.T) {
	e := newTestECS(t)
	destroyed := collectDestroyed(t, e.World)
	zippy := enemyAt(e, cfg.EnemyZippy, mgl64.Vec3{0, 0, 50})

	advance(e, cfg.Lifetime.Enemy)
	if cause, ok := causeOf(zippy); !ok || cause != components.DeathExpired {
		t.Fatalf("enemy not expired: cause %v marked %v", cause, ok)
	}
	UpdateRemovals(e)

	if len(*destroyed) != 1 || (*destroyed)[0].Cause != components.DeathExpired {
		t.Fatalf("destroyed events = %+v, want one Expired", *destroyed)
	}
}

func TestDeadlineAfterContactIsNoop(t *testing.T) {
	e := newTestECS(t)
	destroyed := collectDestroyed(t, e.World)

	pos := mgl64.Vec3{0, 0, 20}
	basic := enemyAt(e, cfg.EnemyBasic, pos)
	shot := projectileAt(e, true, pos, forward)

	physicsFrame(e)

	// Both deadlines pass in the same frame as the contact removal
	advance(e, cfg.Lifetime.Enemy)
	if cause, _ := causeOf(shot); cause != components.DeathConsumed {
		t.Fatalf("projectile cause = %v, want Consumed", cause)
	}
	if cause, _ := causeOf(basic); cause != components.DeathKilled {
		t.Fatalf("enemy cause = %v, want Killed", cause)
	}

	UpdateRemovals(e)
	advance(e, 1)
	UpdateRemovals(e)

	if len(*destroyed) != 1 {
		t.Fatalf("%d destroyed events, want 1", len(*destroyed))
	}
}
