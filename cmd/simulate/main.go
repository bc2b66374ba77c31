// Command simulate flies a seeded, autopilot-driven run without a window and
// logs what happened. Equal flags give equal runs.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/space-kitsune/components"
	"github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/events"
	"github.com/automoto/space-kitsune/input"
	"github.com/automoto/space-kitsune/scenes"
	"github.com/automoto/space-kitsune/systems"
	"github.com/oklog/ulid/v2"
	"github.com/yohamta/donburi"
)

type tally struct {
	destroyed [config.EnemyKindCount]int
	causes    map[components.DeathCause]int
	points    int
	playerHit int
}

func main() {
	seed := flag.Uint64("seed", 1, "Random seed for the spawn director")
	seconds := flag.Float64("seconds", 60, "Simulated duration in seconds")
	tps := flag.Int("tps", config.C.TPS, "Simulation ticks per second")
	sniper := flag.Float64("sniper", config.Director.SniperProbability, "Sniper spawn probability (overrides the profile)")
	zippy := flag.Float64("zippy", config.Director.ZippyProbability, "Zippy spawn probability (overrides the profile)")
	realtime := flag.Bool("realtime", false, "Pace ticks at wall-clock speed")
	app := flag.String("app", "", "Load the tuning profile stored under this app name")
	writeTuning := flag.Bool("write-tuning", false, "Save the effective tuning back to the app store")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}

	store := openStore(*app)

	// Only flags given on the command line override a loaded profile
	tuning := config.CurrentTuning()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sniper":
			tuning.Director.SniperProbability = *sniper
		case "zippy":
			tuning.Director.ZippyProbability = *zippy
		}
	})
	if err := config.ApplyTuning(tuning); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if *writeTuning {
		if store == nil {
			log.Fatalf("-write-tuning needs -app")
		}
		if err := config.SaveTuning(store); err != nil {
			log.Fatalf("Failed to save tuning: %v", err)
		}
	}

	runID := ulid.Make()
	scene := scenes.NewFlightScene(input.NewAutopilot(), *seed)

	t := &tally{causes: make(map[components.DeathCause]int)}
	events.EnemyDestroyed.Subscribe(scene.World(), func(_ donburi.World, ev events.EnemyDestroyedEvent) {
		t.destroyed[ev.Kind]++
		t.causes[ev.Cause]++
		if ev.Cause == components.DeathKilled {
			t.points += ev.PointValue
		}
	})
	events.PlayerHit.Subscribe(scene.World(), func(_ donburi.World, _ events.PlayerHitEvent) {
		t.playerHit++
	})

	log.Printf("Run %s: seed %d, %.1fs at %d ticks/second", runID, *seed, *seconds, *tps)

	frames := int(*seconds * float64(*tps))
	dt := 1 / float64(*tps)
	if *realtime {
		runRealtime(scene, frames, *tps)
	} else {
		for i := 0; i < frames; i++ {
			scene.Step(dt)
		}
	}

	report(runID, scene, t)
}

func openStore(app string) config.TuningStore {
	if app == "" {
		return nil
	}
	manager, err := config.OpenTuningStore(app)
	if err != nil {
		log.Printf("Warning: Could not open tuning store: %v", err)
		return nil
	}
	if loaded, err := config.LoadTuning(manager); err != nil {
		log.Printf("Warning: Could not apply tuning: %v", err)
	} else if loaded {
		log.Printf("Loaded tuning profile for %q", app)
	}
	return manager
}

// runRealtime paces the run with a ticker and stops early on SIGINT/SIGTERM.
func runRealtime(scene *scenes.FlightScene, frames, tps int) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	dt := 1 / float64(tps)
	for i := 0; i < frames; i++ {
		select {
		case <-sigChan:
			log.Println("Interrupted, stopping run...")
			return
		case <-ticker.C:
			scene.Step(dt)
		}
	}
}

func report(runID ulid.ULID, scene *scenes.FlightScene, t *tally) {
	w := scene.World()
	if view, ok := systems.ReadPlayerView(w); ok {
		log.Printf("Run %s: player at z=%.1f, speed %s, energy %.0f%%",
			runID, view.Position.Z(), view.Mode, view.EnergyRatio*100)
	}

	directorEntry, ok := components.Director.First(w)
	if ok {
		director := components.Director.Get(directorEntry)
		for kind := config.EnemyKind(0); kind < config.EnemyKindCount; kind++ {
			log.Printf("Run %s: %-6s spawned %3d destroyed %3d",
				runID, kind, director.Spawned[kind], t.destroyed[kind])
		}
	}
	for _, cause := range []components.DeathCause{components.DeathKilled, components.DeathCollided, components.DeathExpired} {
		log.Printf("Run %s: %d enemies %s", runID, t.causes[cause], cause)
	}
	log.Printf("Run %s: %d points, player hit %d times", runID, t.points, t.playerHit)
}
