// Package chase implements the real-time simulation of the chase game:
// a character steered toward a pointer target collects roaming targets
// while dodging hazards that sweep across the screen.
//
// The package is pure logic. It never renders, plays audio or reads input
// devices; a driver calls Session.Step once per frame and presents the
// returned Snapshot.
package chase

import (
	"github.com/vovakirdan/conga/internal/core"
)

// Kind identifies what an entity is.
type Kind uint8

const (
	KindCollectible Kind = iota + 1 // scores on contact
	KindHazard                      // costs a life on contact
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// exitEpsilon absorbs float drift when a hazard lands exactly on its exit line.
const exitEpsilon = 1e-9

// Entity is a spawned collectible or hazard.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec // center
	Vel      core.Vec // units per second
	W, H     float64
	Rotation float64 // radians
	Age      float64 // seconds since spawn
	Lifetime float64 // seconds; 0 means no expiry
	ExitX    float64 // hazards are removed once Pos.X reaches this
}

// Bounds returns the entity's axis-aligned bounding box.
func (e Entity) Bounds() core.RectF {
	return core.CenteredRect(e.Pos, e.W, e.H)
}

// expired reports whether the entity has outlived its lifetime or left the screen.
func (e Entity) expired() bool {
	if e.Lifetime > 0 && e.Age >= e.Lifetime-exitEpsilon {
		return true
	}
	if e.Kind == KindHazard && e.Pos.X <= e.ExitX+exitEpsilon {
		return true
	}
	return false
}
