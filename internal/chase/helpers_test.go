package chase

import (
	"testing"
	"time"

	"github.com/vovakirdan/conga/internal/config"
	"github.com/vovakirdan/conga/internal/core"
)

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// seqRand replays vals in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var epoch = time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

// at returns the timestamp sec seconds after epoch.
func at(sec float64) time.Time {
	return epoch.Add(time.Duration(sec * float64(time.Second)))
}

// newQuietSession returns a session whose spawner never fires, so tests
// control every entity.
func newQuietSession(t *testing.T, mutate func(*config.Chase)) *Session {
	t.Helper()
	cfg := config.DefaultChase()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := Configure(cfg, constRand(0.5))
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	s.spawner.Stop()
	return s
}

func injectCollectible(s *Session, p core.Vec) EntityID {
	return s.arena.Insert(s.spawner.collectibleAt(p))
}

func injectHazard(s *Session, p core.Vec) EntityID {
	e := s.spawner.hazardAt(p.Y)
	e.Pos = p
	return s.arena.Insert(e)
}

func hasEntity(snap Snapshot, id EntityID) bool {
	for _, e := range snap.Entities {
		if e.ID == id {
			return true
		}
	}
	return false
}
