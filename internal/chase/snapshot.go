package chase

import (
	"slices"

	"github.com/vovakirdan/conga/internal/core"
)

// Pose is the character as seen by the presentation layer.
type Pose struct {
	Pos           core.Vec
	Vel           core.Vec
	Angle         float64
	W, H          float64
	Flagged       bool
	FlagRemaining float64 // seconds
}

// EntityView is a read-only copy of a live entity.
type EntityView struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec
	Rotation float64
	W, H     float64
}

// Snapshot is everything a driver needs to present one frame.
// CollectedDelta and HitDelta count the events of the step that produced it.
type Snapshot struct {
	Character      Pose
	Entities       []EntityView
	CollectedDelta int
	HitDelta       int
	Collected      int
	Lives          int
	State          State
	Elapsed        float64 // seconds of simulated time
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	s.Entities = slices.Clone(s.Entities)
	return s
}

// Count returns how many entities of kind k the snapshot holds.
func (s Snapshot) Count(k Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}
