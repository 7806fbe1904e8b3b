package chase

import (
	"testing"

	"github.com/vovakirdan/conga/internal/core"
)

func TestArenaInsertGetRemove(t *testing.T) {
	var a Arena

	id1 := a.Insert(Entity{Kind: KindCollectible, Pos: core.V(1, 1)})
	id2 := a.Insert(Entity{Kind: KindHazard, Pos: core.V(2, 2)})

	if id1 == 0 || id2 == 0 || id1 == id2 {
		t.Fatalf("expected distinct non-zero IDs, got %d and %d", id1, id2)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}
	if e, ok := a.Get(id2); !ok || e.Pos != core.V(2, 2) || e.ID != id2 {
		t.Errorf("Get(id2) = %+v, %v", e, ok)
	}

	if !a.Remove(id1) {
		t.Fatal("Remove(id1) should succeed")
	}
	if a.Remove(id1) {
		t.Error("second Remove(id1) should fail")
	}
	if _, ok := a.Get(id1); ok {
		t.Error("Get after Remove should fail")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", a.Len())
	}
}

func TestArenaRecycledSlotRejectsStaleID(t *testing.T) {
	var a Arena

	old := a.Insert(Entity{Kind: KindCollectible})
	a.Remove(old)
	fresh := a.Insert(Entity{Kind: KindHazard})

	if old.index() != fresh.index() {
		t.Fatalf("expected slot reuse, got indexes %d and %d", old.index(), fresh.index())
	}
	if old == fresh {
		t.Fatal("recycled slot should get a new generation")
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale ID resolved to the slot's new occupant")
	}
	if a.Remove(old) {
		t.Error("stale ID removed the slot's new occupant")
	}
	if _, ok := a.Get(fresh); !ok {
		t.Error("fresh ID should resolve")
	}
}

func TestArenaAdvanceRemovesExitedHazards(t *testing.T) {
	var a Arena
	id := a.Insert(Entity{Kind: KindHazard, Pos: core.V(100, 0), Vel: core.V(-100, 0), ExitX: -50})

	if removed := a.Advance(1); removed != 0 {
		t.Fatalf("Advance(1) removed %d, expected 0", removed)
	}
	if e, _ := a.Get(id); e.Pos.X != 0 || e.Age != 1 {
		t.Errorf("after 1s: x=%v age=%v, expected 0 and 1", e.Pos.X, e.Age)
	}
	if removed := a.Advance(0.5); removed != 1 {
		t.Errorf("Advance(0.5) removed %d, expected 1", removed)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", a.Len())
	}
}

func TestArenaClear(t *testing.T) {
	var a Arena
	ids := []EntityID{
		a.Insert(Entity{Kind: KindCollectible}),
		a.Insert(Entity{Kind: KindHazard}),
	}
	a.Clear()

	if a.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", a.Len())
	}
	for _, id := range ids {
		if _, ok := a.Get(id); ok {
			t.Errorf("ID %d survived Clear", id)
		}
	}
	if id := a.Insert(Entity{}); id == ids[0] || id == ids[1] {
		t.Error("Insert after Clear reissued an old ID")
	}
}
