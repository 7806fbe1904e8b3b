package chase

import (
	"github.com/vovakirdan/conga/internal/core"
)

// Collisions lists the entities the character touched during one step.
// Every entry has already been removed from the arena.
type Collisions struct {
	Collected []Entity
	Hits      []Entity
}

// DetectCollisions tests the character box against every live entity.
// Collectibles use their full box; hazards are shrunk by hazardInset on
// each side so grazing a hazard's edge is forgiven. Collectibles are
// resolved before hazards. Each overlapping entity is reported once and
// removed.
func DetectCollisions(character core.RectF, arena *Arena, hazardInset float64) Collisions {
	var out Collisions
	var touched []EntityID

	arena.Each(func(e *Entity) {
		if e.Kind == KindCollectible && character.Intersects(e.Bounds()) {
			out.Collected = append(out.Collected, *e)
			touched = append(touched, e.ID)
		}
	})
	arena.Each(func(e *Entity) {
		if e.Kind == KindHazard && character.Intersects(e.Bounds().Inset(hazardInset, hazardInset)) {
			out.Hits = append(out.Hits, *e)
			touched = append(touched, e.ID)
		}
	})

	for _, id := range touched {
		arena.Remove(id)
	}
	return out
}
