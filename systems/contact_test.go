package systems

import (
	"testing"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/events"
	"github.com/automoto/space-kitsune/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func collectDestroyed(t *testing.T, w donburi.World) *[]events.EnemyDestroyedEvent {
	t.Helper()
	var got []events.EnemyDestroyedEvent
	events.EnemyDestroyed.Subscribe(w, func(_ donburi.World, ev events.EnemyDestroyedEvent) {
		got = append(got, ev)
	})
	return &got
}

func collectPlayerHits(t *testing.T, w donburi.World) *[]events.PlayerHitEvent {
	t.Helper()
	var got []events.PlayerHitEvent
	events.PlayerHit.Subscribe(w, func(_ donburi.World, ev events.PlayerHitEvent) {
		got = append(got, ev)
	})
	return &got
}

var forward = mgl64.Vec3{0, 0, 1}

func TestPlayerProjectileDealsOneDamage(t *testing.T) {
	e := newTestECS(t)
	destroyed := collectDestroyed(t, e.World)

	pos := mgl64.Vec3{0, 0, 20}
	sniper := enemyAt(e, cfg.EnemySniper, pos)
	shot := projectileAt(e, true, pos, forward)

	physicsFrame(e)

	if got := components.Health.Get(sniper).Current; got != 1 {
		t.Fatalf("sniper health = %d, want 1", got)
	}
	if cause, ok := causeOf(shot); !ok || cause != components.DeathConsumed {
		t.Fatalf("projectile not consumed: cause %v marked %v", cause, ok)
	}

	UpdateRemovals(e)
	if shot.Valid() {
		t.Fatalf("projectile still in the world after removal")
	}
	if !sniper.Valid() {
		t.Fatalf("sniper removed after one hit")
	}
	if len(*destroyed) != 0 {
		t.Fatalf("%d destroyed events after one hit, want 0", len(*destroyed))
	}

	// Second hit kills it
	projectileAt(e, true, components.Transform.Get(sniper).Position, forward)
	physicsFrame(e)
	if cause, ok := causeOf(sniper); !ok || cause != components.DeathKilled {
		t.Fatalf("sniper not killed by second hit: cause %v marked %v", cause, ok)
	}

	UpdateRemovals(e)
	if sniper.Valid() {
		t.Fatalf("sniper still in the world")
	}
	if len(*destroyed) != 1 {
		t.Fatalf("%d destroyed events, want 1", len(*destroyed))
	}
	ev := (*destroyed)[0]
	if ev.Kind != cfg.EnemySniper || ev.PointValue != 200 || ev.Cause != components.DeathKilled {
		t.Fatalf("destroyed event = %+v, want Sniper 200 Killed", ev)
	}
}

func TestBasicDiesFromOneHit(t *testing.T) {
	e := newTestECS(t)
	destroyed := collectDestroyed(t, e.World)

	pos := mgl64.Vec3{3, -2, 30}
	basic := enemyAt(e, cfg.EnemyBasic, pos)
	projectileAt(e, true, pos, forward)

	physicsFrame(e)
	if cause, ok := causeOf(basic); !ok || cause != components.DeathKilled {
		t.Fatalf("basic not killed: cause %v marked %v", cause, ok)
	}
	UpdateRemovals(e)

	if basic.Valid() {
		t.Fatalf("basic still in the world")
	}
	if len(*destroyed) != 1 || (*destroyed)[0].PointValue != 100 {
		t.Fatalf("destroyed events = %+v, want one worth 100", *destroyed)
	}
}

func TestProjectilesDestroyEachOther(t *testing.T) {
	tests := []struct {
		name   string
		aFrom  bool
		bFrom  bool
		aDir   mgl64.Vec3
		bDir   mgl64.Vec3
		offset float64
	}{
		{"player vs enemy", true, false, forward, forward.Mul(-1), 0.3},
		{"enemy vs enemy", false, false, forward, mgl64.Vec3{1, 0, 0}, 0},
		{"player vs player", true, true, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{-1, 0, 0}, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			a := projectileAt(e, tt.aFrom, mgl64.Vec3{0, 0, 10}, tt.aDir)
			b := projectileAt(e, tt.bFrom, mgl64.Vec3{0, 0, 10 + tt.offset}, tt.bDir)
			// Hold them still so the overlap does not depend on speed
			components.Physics.Get(a).Velocity = mgl64.Vec3{}
			components.Physics.Get(b).Velocity = mgl64.Vec3{}

			physicsFrame(e)

			for _, p := range []*donburi.Entry{a, b} {
				if cause, ok := causeOf(p); !ok || cause != components.DeathConsumed {
					t.Fatalf("projectile not consumed: cause %v marked %v", cause, ok)
				}
			}
			UpdateRemovals(e)
			if a.Valid() || b.Valid() {
				t.Fatalf("projectiles still in the world")
			}
		})
	}
}

func TestFastProjectilesCannotPassEachOther(t *testing.T) {
	e := newTestECS(t)
	// Closing at PlayerSpeed+EnemySpeed covers more than both boxes in one step
	mine := projectileAt(e, true, mgl64.Vec3{0, 0, 10}, forward)
	theirs := projectileAt(e, false, mgl64.Vec3{0, 0, 11}, forward.Mul(-1))

	for i := 0; i < 3 && (mine.Valid() || theirs.Valid()); i++ {
		physicsFrame(e)
		UpdateRemovals(e)
	}

	if mine.Valid() || theirs.Valid() {
		t.Fatalf("projectiles crossed without colliding: player shot valid %v, enemy shot valid %v", mine.Valid(), theirs.Valid())
	}
}

func TestEnemyFirePassesThroughEnemies(t *testing.T) {
	e := newTestECS(t)
	pos := mgl64.Vec3{0, 0, 40}
	basic := enemyAt(e, cfg.EnemyBasic, pos)
	shot := projectileAt(e, false, pos, forward.Mul(-1))

	physicsFrame(e)

	if _, ok := causeOf(basic); ok {
		t.Fatalf("enemy marked by its own side's fire")
	}
	if _, ok := causeOf(shot); ok {
		t.Fatalf("enemy projectile consumed by an enemy")
	}
	if got := components.Health.Get(basic).Current; got != 1 {
		t.Fatalf("health = %d, want 1", got)
	}
}

func TestEnemyFireHitsPlayer(t *testing.T) {
	e := newTestECS(t)
	hits := collectPlayerHits(t, e.World)

	player := playerWith(e, input.Idle)
	shot := projectileAt(e, false, mgl64.Vec3{0, 0, 0.5}, forward.Mul(-1))

	physicsFrame(e)
	if cause, ok := causeOf(shot); !ok || cause != components.DeathConsumed {
		t.Fatalf("enemy projectile not consumed: cause %v marked %v", cause, ok)
	}
	UpdateRemovals(e)

	if !player.Valid() {
		t.Fatalf("player removed")
	}
	if len(*hits) != 1 || (*hits)[0].ByKind != "Projectile" {
		t.Fatalf("player hits = %+v, want one by Projectile", *hits)
	}
}

func TestPlayerFireIgnoresPlayer(t *testing.T) {
	e := newTestECS(t)
	playerWith(e, input.Idle)
	shot := projectileAt(e, true, mgl64.Vec3{0, 0, 0.5}, forward)
	components.Physics.Get(shot).Velocity = mgl64.Vec3{}

	physicsFrame(e)
	if _, ok := causeOf(shot); ok {
		t.Fatalf("player projectile consumed by the player")
	}
}

func TestEnemyRammingPlayerIsDestroyed(t *testing.T) {
	e := newTestECS(t)
	destroyed := collectDestroyed(t, e.World)
	hits := collectPlayerHits(t, e.World)

	player := playerWith(e, input.Idle)
	zippy := enemyAt(e, cfg.EnemyZippy, mgl64.Vec3{0.5, 0, 1})

	physicsFrame(e)
	if cause, ok := causeOf(zippy); !ok || cause != components.DeathCollided {
		t.Fatalf("enemy not destroyed on ramming: cause %v marked %v", cause, ok)
	}
	UpdateRemovals(e)

	if !player.Valid() {
		t.Fatalf("player removed")
	}
	if len(*destroyed) != 1 || (*destroyed)[0].Cause != components.DeathCollided {
		t.Fatalf("destroyed events = %+v, want one Collided", *destroyed)
	}
	if len(*hits) != 1 || (*hits)[0].ByKind != "Zippy" {
		t.Fatalf("player hits = %+v, want one by Zippy", *hits)
	}
}

func TestContactPublishedOncePerTouch(t *testing.T) {
	e := newTestECS(t)
	contacts := 0
	events.Contact.Subscribe(e.World, func(donburi.World, events.ContactEvent) {
		contacts++
	})

	pos := mgl64.Vec3{0, 0, 40}
	enemyAt(e, cfg.EnemyBasic, pos)
	shot := projectileAt(e, false, pos, forward)
	components.Physics.Get(shot).Velocity = mgl64.Vec3{}

	for i := 0; i < 5; i++ {
		physicsFrame(e)
	}
	if contacts != 1 {
		t.Fatalf("%d contacts while touching, want 1", contacts)
	}

	// Separate, then touch again
	components.Transform.Get(shot).Position = mgl64.Vec3{0, 0, 60}
	physicsFrame(e)
	components.Transform.Get(shot).Position = pos
	physicsFrame(e)
	if contacts != 2 {
		t.Fatalf("%d contacts after touching again, want 2", contacts)
	}
}

func TestTakeDamageOnlyOnce(t *testing.T) {
	e := newTestECS(t)
	destroyed := collectDestroyed(t, e.World)

	basic := enemyAt(e, cfg.EnemyBasic, mgl64.Vec3{0, 0, 40})
	TakeDamage(e.World, basic, 1)
	TakeDamage(e.World, basic, 1)

	if got := components.Health.Get(basic).Current; got != 0 {
		t.Fatalf("health = %d, want 0", got)
	}
	UpdateRemovals(e)
	if len(*destroyed) != 1 {
		t.Fatalf("%d destroyed events, want 1", len(*destroyed))
	}
}

func TestShotHitsOnlyOneOfTwoEnemies(t *testing.T) {
	e := newTestECS(t)
	pos := mgl64.Vec3{0, 0, 40}
	a := enemyAt(e, cfg.EnemySniper, pos)
	b := enemyAt(e, cfg.EnemySniper, pos.Add(mgl64.Vec3{0.5, 0, 0}))
	projectileAt(e, true, pos, forward)

	physicsFrame(e)

	total := components.Health.Get(a).Current + components.Health.Get(b).Current
	if total != 3 {
		t.Fatalf("combined health = %d, want 3", total)
	}
}
