package chase

import (
	"math"
	"testing"

	"github.com/vovakirdan/conga/internal/config"
	"github.com/vovakirdan/conga/internal/core"
)

func newTestSpawner(rng RandSource) (*Spawner, config.Chase, core.RectF) {
	cfg := config.DefaultChase()
	area := PlayableArea(cfg.World.Width, cfg.World.Height, cfg.World.MaxAspectRatio)
	return NewSpawner(cfg, area, rng), cfg, area
}

func TestSpawnerTimers(t *testing.T) {
	sp, _, _ := newTestSpawner(constRand(0.5))
	var arena Arena

	steps := []struct {
		dt                    float64
		hazards, collectibles int
	}{
		{0, 1, 1}, // both due at session start
		{0.5, 0, 0},
		{0.5, 0, 1},
		{1.0, 1, 1},
		{4.0, 2, 4}, // a long frame catches up on missed spawns that are still live
	}

	for i, st := range steps {
		h, c := sp.Update(st.dt, &arena)
		if h != st.hazards || c != st.collectibles {
			t.Errorf("step %d (dt=%v): spawned %d hazards %d collectibles, expected %d and %d",
				i, st.dt, h, c, st.hazards, st.collectibles)
		}
	}
	if arena.Count(KindHazard) != 4 || arena.Count(KindCollectible) != 7 {
		t.Errorf("arena holds %d hazards %d collectibles, expected 4 and 7",
			arena.Count(KindHazard), arena.Count(KindCollectible))
	}
}

func TestSpawnerLongStallDropsExpiredBacklog(t *testing.T) {
	sp, cfg, _ := newTestSpawner(constRand(0.5))
	var arena Arena

	sp.Update(0, &arena)
	arena.Clear()

	// An hour-long frame: only spawns younger than traversal or lifetime survive.
	h, c := sp.Update(3600, &arena)
	if h != 2 || c != 10 {
		t.Fatalf("spawned %d hazards %d collectibles, expected 2 and 10", h, c)
	}
	if arena.Count(KindHazard) != 2 || arena.Count(KindCollectible) != 10 {
		t.Fatalf("arena holds %d hazards %d collectibles, expected 2 and 10",
			arena.Count(KindHazard), arena.Count(KindCollectible))
	}

	spawnX := cfg.World.Width + cfg.Hazard.Width/2
	speed := cfg.HazardSpeed()
	hazardAges := map[float64]bool{}
	itemAges := map[float64]bool{}
	arena.Each(func(e *Entity) {
		if e.expired() {
			t.Errorf("inserted an entity that is already expired: %+v", *e)
		}
		switch e.Kind {
		case KindHazard:
			hazardAges[e.Age] = true
			if want := spawnX - speed*e.Age; math.Abs(e.Pos.X-want) > 1e-9 {
				t.Errorf("hazard aged %v at X = %v, expected %v", e.Age, e.Pos.X, want)
			}
		case KindCollectible:
			itemAges[e.Age] = true
		}
	})
	if !hazardAges[0] || !hazardAges[2] {
		t.Errorf("hazard ages = %v, expected 0 and 2", hazardAges)
	}
	for age := range 10 {
		if !itemAges[float64(age)] {
			t.Errorf("no collectible aged %d in %v", age, itemAges)
		}
	}

	// The timers keep their phase after the stall.
	if h, c := sp.Update(1, &arena); h != 0 || c != 1 {
		t.Errorf("after the stall spawned %d hazards %d collectibles, expected 0 and 1", h, c)
	}
}

func TestSpawnerStop(t *testing.T) {
	sp, _, _ := newTestSpawner(constRand(0.5))
	var arena Arena

	sp.Stop()
	if h, c := sp.Update(10, &arena); h != 0 || c != 0 || arena.Len() != 0 {
		t.Errorf("stopped spawner produced %d hazards %d collectibles", h, c)
	}
}

func TestHazardSpawnPlacement(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		y    func(area core.RectF, h float64) float64
	}{
		{"low end", 0, func(a core.RectF, h float64) float64 { return a.MinY() + h/2 }},
		{"midpoint", 0.5, func(a core.RectF, h float64) float64 { return a.Center().Y }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sp, cfg, area := newTestSpawner(constRand(tc.r))
			var arena Arena
			sp.Update(0, &arena)

			var hz Entity
			arena.Each(func(e *Entity) {
				if e.Kind == KindHazard {
					hz = *e
				}
			})

			if hz.Pos.X != cfg.World.Width+cfg.Hazard.Width/2 {
				t.Errorf("X = %v, expected just past the right edge", hz.Pos.X)
			}
			if want := tc.y(area, cfg.Hazard.Height); math.Abs(hz.Pos.Y-want) > 1e-9 {
				t.Errorf("Y = %v, expected %v", hz.Pos.Y, want)
			}
			if hz.Vel.X >= 0 || hz.Vel.Y != 0 {
				t.Errorf("Vel = %v, expected leftward", hz.Vel)
			}
			if hz.ExitX != -cfg.Hazard.Width/2 {
				t.Errorf("ExitX = %v, expected %v", hz.ExitX, -cfg.Hazard.Width/2)
			}
		})
	}
}

func TestHazardStaysInsideBand(t *testing.T) {
	sp, cfg, area := newTestSpawner(&seqRand{vals: []float64{0, 0.999999, 0.25, 0.75}})
	var arena Arena

	for i := 0; i < 20; i++ {
		sp.Update(cfg.Hazard.SpawnInterval, &arena)
	}
	arena.Each(func(e *Entity) {
		if e.Kind != KindHazard {
			return
		}
		if e.Pos.Y-e.H/2 < area.MinY()-1e-9 || e.Pos.Y+e.H/2 > area.MaxY()+1e-9 {
			t.Errorf("hazard at y=%v pokes out of the playable band", e.Pos.Y)
		}
	})
}

func TestCollectibleSpawnPlacement(t *testing.T) {
	sp, cfg, area := newTestSpawner(&seqRand{vals: []float64{0.5, 0.25, 0.75}})
	var arena Arena

	// First draw goes to the hazard, then x and y for the collectible.
	sp.Update(0, &arena)

	var item Entity
	arena.Each(func(e *Entity) {
		if e.Kind == KindCollectible {
			item = *e
		}
	})
	want := core.V(area.MinX()+0.25*area.W, area.MinY()+0.75*area.H)
	if math.Abs(item.Pos.X-want.X) > 1e-9 || math.Abs(item.Pos.Y-want.Y) > 1e-9 {
		t.Errorf("Pos = %v, expected %v", item.Pos, want)
	}
	if item.Lifetime != cfg.Collectible.Lifetime || item.Rotation != cfg.Collectible.Rotation {
		t.Errorf("lifetime %v rotation %v, expected %v and %v",
			item.Lifetime, item.Rotation, cfg.Collectible.Lifetime, cfg.Collectible.Rotation)
	}
	if !item.Vel.IsZero() {
		t.Errorf("collectibles should not move, Vel = %v", item.Vel)
	}
}

func TestCollectibleExpiresAfterLifetime(t *testing.T) {
	sp, cfg, _ := newTestSpawner(constRand(0.5))
	var arena Arena
	id := arena.Insert(sp.collectibleAt(core.V(100, 300)))

	arena.Advance(cfg.Collectible.Lifetime - 0.5)
	if _, ok := arena.Get(id); !ok {
		t.Fatal("collectible removed before its lifetime")
	}
	arena.Advance(0.5)
	if _, ok := arena.Get(id); ok {
		t.Error("collectible should be removed once its lifetime elapsed")
	}
}
