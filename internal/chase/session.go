package chase

import (
	"fmt"
	"time"

	"github.com/vovakirdan/conga/internal/config"
	"github.com/vovakirdan/conga/internal/core"
)

// ErrInvalidConfiguration is returned by Configure for unusable settings.
var ErrInvalidConfiguration = config.ErrInvalidConfiguration

// Session is one play-through, from Configure until Won or Lost.
// It is not safe for concurrent use; a single driver calls SetMoveTarget
// and Step from its frame loop.
type Session struct {
	cfg     config.Chase
	area    core.RectF
	bounds  Bounds
	clock   Clock
	mover   Mover
	char    Character
	arena   Arena
	spawner *Spawner
	machine *GameStateMachine
	elapsed float64
	last    Snapshot
}

// Configure validates cfg and starts an Active session.
// rng drives spawn positions; pass a seeded *rand.Rand for reproducible runs.
func Configure(cfg config.Chase, rng RandSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chase: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("chase: %w: random source is required", ErrInvalidConfiguration)
	}

	area := PlayableArea(cfg.World.Width, cfg.World.Height, cfg.World.MaxAspectRatio)
	s := &Session{
		cfg:     cfg,
		area:    area,
		bounds:  CharacterBounds(area, cfg.World.Width),
		mover:   Mover{Speed: cfg.Character.Speed},
		spawner: NewSpawner(cfg, area, rng),
		machine: NewGameStateMachine(cfg.Rules.Lives, cfg.Rules.WinThreshold),
		char: Character{
			Pos: core.V(cfg.Character.StartX, cfg.Character.StartY),
			W:   cfg.Character.Width,
			H:   cfg.Character.Height,
		},
	}
	s.last = s.snapshot(0, 0)
	return s, nil
}

// Area returns the playable area computed at configuration time.
func (s *Session) Area() core.RectF {
	return s.area
}

// Config returns the configuration the session was started with.
func (s *Session) Config() config.Chase {
	return s.cfg
}

// State returns the current outcome.
func (s *Session) State() State {
	return s.machine.State()
}

// Last returns a copy of the most recent snapshot.
func (s *Session) Last() Snapshot {
	return s.last.Clone()
}

// SetMoveTarget points the character at p. Last write wins.
// Ignored once the session is over.
func (s *Session) SetMoveTarget(p core.Vec) {
	if s.machine.State().Terminal() {
		return
	}
	s.mover.SetTarget(p)
}

// MoveTarget returns the current move target, if one was set.
func (s *Session) MoveTarget() (core.Vec, bool) {
	return s.mover.Target()
}

// Step advances the simulation to now and returns the resulting frame.
// After the session ends Step is a no-op that returns the final snapshot.
func (s *Session) Step(now time.Time) Snapshot {
	if s.machine.State().Terminal() {
		return s.last.Clone()
	}

	dt := s.clock.Tick(now)
	s.elapsed += dt

	s.mover.Move(&s.char, dt)
	s.bounds.Clamp(&s.char)
	s.char.tickFlag(dt)

	s.arena.Advance(dt)
	s.spawner.Update(dt, &s.arena)

	hits := DetectCollisions(s.char.Bounds(), &s.arena, s.cfg.Hazard.Inset)
	collected, hit := 0, 0
	for range hits.Collected {
		if s.machine.Collect() {
			collected++
		}
	}
	for range hits.Hits {
		if s.machine.Hit() {
			hit++
		}
	}
	if hit > 0 {
		s.char.flag(s.cfg.Character.FlagDuration)
	}

	if s.machine.Evaluate().Terminal() {
		s.spawner.Stop()
	}

	s.last = s.snapshot(collected, hit)
	return s.last.Clone()
}

func (s *Session) snapshot(collected, hit int) Snapshot {
	snap := Snapshot{
		Character: Pose{
			Pos:           s.char.Pos,
			Vel:           s.char.Vel,
			Angle:         s.char.Angle,
			W:             s.char.W,
			H:             s.char.H,
			Flagged:       s.char.Flagged(),
			FlagRemaining: s.char.flagRemaining,
		},
		Entities:       make([]EntityView, 0, s.arena.Len()),
		CollectedDelta: collected,
		HitDelta:       hit,
		Collected:      s.machine.Collected(),
		Lives:          s.machine.Lives(),
		State:          s.machine.State(),
		Elapsed:        s.elapsed,
	}
	s.arena.Each(func(e *Entity) {
		snap.Entities = append(snap.Entities, EntityView{
			ID:       e.ID,
			Kind:     e.Kind,
			Pos:      e.Pos,
			Rotation: e.Rotation,
			W:        e.W,
			H:        e.H,
		})
	})
	return snap
}
