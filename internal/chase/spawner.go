package chase

import (
	"github.com/vovakirdan/conga/internal/config"
	"github.com/vovakirdan/conga/internal/core"
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// interval fires every period seconds, starting immediately.
type interval struct {
	period    float64
	untilNext float64
}

// advance consumes dt and returns how many times the interval fired.
func (iv *interval) advance(dt float64) int {
	iv.untilNext -= dt
	fired := 0
	for iv.untilNext <= 0 {
		fired++
		iv.untilNext += iv.period
	}
	return fired
}

// Spawner emits hazards and collectibles on two independent timers.
type Spawner struct {
	rng         RandSource
	area        core.RectF
	screenW     float64
	hazardCfg   config.Hazard
	itemCfg     config.Collectible
	hazardSpeed float64

	hazards     interval
	collectible interval
	stopped     bool
}

// NewSpawner creates a spawner for the given area. Both timers are due on
// the first Update.
func NewSpawner(cfg config.Chase, area core.RectF, rng RandSource) *Spawner {
	return &Spawner{
		rng:         rng,
		area:        area,
		screenW:     cfg.World.Width,
		hazardCfg:   cfg.Hazard,
		itemCfg:     cfg.Collectible,
		hazardSpeed: cfg.HazardSpeed(),
		hazards:     interval{period: cfg.Hazard.SpawnInterval},
		collectible: interval{period: cfg.Collectible.SpawnInterval},
	}
}

// Stop halts both timers for good.
func (s *Spawner) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Spawner) Stopped() bool {
	return s.stopped
}

// Update advances both timers by dt and inserts whatever came due into
// arena. It returns the number of hazards and collectibles spawned.
//
// When dt spans several periods, each backlogged spawn is aged by the time
// since it came due, and spawns that would already have left or expired are
// dropped.
func (s *Spawner) Update(dt float64, arena *Arena) (hazards, collectibles int) {
	if s.stopped {
		return 0, 0
	}

	fired := s.hazards.advance(dt)
	for k := range fired {
		e := s.hazardAt(s.uniform(
			s.area.MinY()+s.hazardCfg.Height/2,
			s.area.MaxY()-s.hazardCfg.Height/2,
		))
		if backdate(&e, float64(fired-1-k)*s.hazards.period) {
			arena.Insert(e)
			hazards++
		}
	}

	fired = s.collectible.advance(dt)
	for k := range fired {
		x := s.uniform(s.area.MinX(), s.area.MaxX())
		y := s.uniform(s.area.MinY(), s.area.MaxY())
		e := s.collectibleAt(core.V(x, y))
		if backdate(&e, float64(fired-1-k)*s.collectible.period) {
			arena.Insert(e)
			collectibles++
		}
	}

	return hazards, collectibles
}

// backdate moves e forward by late seconds of its own motion and reports
// whether it is still live.
func backdate(e *Entity, late float64) bool {
	if late > 0 {
		e.Age += late
		e.Pos = e.Pos.Add(e.Vel.Scale(late))
	}
	return !e.expired()
}

// hazardAt builds a hazard just past the right edge at height y, heading left.
func (s *Spawner) hazardAt(y float64) Entity {
	halfW := s.hazardCfg.Width / 2
	return Entity{
		Kind:  KindHazard,
		Pos:   core.V(s.screenW+halfW, y),
		Vel:   core.V(-s.hazardSpeed, 0),
		W:     s.hazardCfg.Width,
		H:     s.hazardCfg.Height,
		ExitX: -halfW,
	}
}

// collectibleAt builds a collectible centered on p.
func (s *Spawner) collectibleAt(p core.Vec) Entity {
	return Entity{
		Kind:     KindCollectible,
		Pos:      p,
		W:        s.itemCfg.Width,
		H:        s.itemCfg.Height,
		Rotation: s.itemCfg.Rotation,
		Lifetime: s.itemCfg.Lifetime,
	}
}

// uniform draws from [lo, hi]. An inverted range collapses to its midpoint.
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + s.rng.Float64()*(hi-lo)
}
