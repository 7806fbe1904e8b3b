package chase

import (
	"testing"

	"github.com/vovakirdan/conga/internal/core"
)

func TestDetectCollisions(t *testing.T) {
	character := core.CenteredRect(core.V(500, 500), 160, 100) // x 420..580, y 450..550

	tests := []struct {
		name      string
		entities  []Entity
		collected int
		hits      int
	}{
		{
			name:     "empty arena",
			entities: nil,
		},
		{
			name:      "collectible overlapping",
			entities:  []Entity{{Kind: KindCollectible, Pos: core.V(600, 500), W: 100, H: 100}},
			collected: 1,
		},
		{
			name:     "collectible touching edge only",
			entities: []Entity{{Kind: KindCollectible, Pos: core.V(630, 500), W: 100, H: 100}},
		},
		{
			name: "hazard graze forgiven by inset",
			// Full box spans x 570..750 and overlaps; inset box starts at 590.
			entities: []Entity{{Kind: KindHazard, Pos: core.V(660, 500), W: 180, H: 200}},
		},
		{
			name:     "hazard inside inset box",
			entities: []Entity{{Kind: KindHazard, Pos: core.V(640, 500), W: 180, H: 200}},
			hits:     1,
		},
		{
			name: "two collectibles and a far hazard",
			entities: []Entity{
				{Kind: KindCollectible, Pos: core.V(450, 480), W: 100, H: 100},
				{Kind: KindCollectible, Pos: core.V(550, 520), W: 100, H: 100},
				{Kind: KindHazard, Pos: core.V(1500, 500), W: 180, H: 200},
			},
			collected: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a Arena
			for _, e := range tc.entities {
				a.Insert(e)
			}

			got := DetectCollisions(character, &a, 20)

			if len(got.Collected) != tc.collected || len(got.Hits) != tc.hits {
				t.Fatalf("collected %d hits %d, expected %d and %d",
					len(got.Collected), len(got.Hits), tc.collected, tc.hits)
			}
			if want := len(tc.entities) - tc.collected - tc.hits; a.Len() != want {
				t.Errorf("arena holds %d entities, expected %d", a.Len(), want)
			}
			for _, e := range append(got.Collected, got.Hits...) {
				if _, ok := a.Get(e.ID); ok {
					t.Errorf("entity %d reported but not removed", e.ID)
				}
			}
		})
	}
}

func TestGameStateMachine(t *testing.T) {
	m := NewGameStateMachine(2, 3)

	m.Collect()
	m.Hit()
	if s := m.Evaluate(); s != StateActive {
		t.Fatalf("State = %v, expected active", s)
	}
	if m.Lives() != 1 || m.Collected() != 1 {
		t.Fatalf("counters = lives %d collected %d", m.Lives(), m.Collected())
	}

	m.Collect()
	m.Collect()
	m.Collect() // overshoot in one step still wins
	if s := m.Evaluate(); s != StateWon {
		t.Fatalf("State = %v, expected won", s)
	}

	if m.Collect() || m.Hit() {
		t.Error("events after the session ended should be rejected")
	}
	if m.Collected() != 4 || m.Lives() != 1 {
		t.Errorf("terminal counters changed: lives %d collected %d", m.Lives(), m.Collected())
	}
	if s := m.Evaluate(); s != StateWon {
		t.Errorf("re-evaluating changed the outcome to %v", s)
	}
}

func TestGameStateMachineLivesFloorAtZero(t *testing.T) {
	m := NewGameStateMachine(1, 10)
	m.Hit()
	m.Hit()
	m.Hit()

	if m.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", m.Lives())
	}
	if m.Evaluate() != StateLost {
		t.Error("expected lost")
	}
}

func TestStateStrings(t *testing.T) {
	for s, want := range map[State]string{StateActive: "active", StateWon: "won", StateLost: "lost"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, expected %q", s, s.String(), want)
		}
	}
	if StateActive.Terminal() || !StateWon.Terminal() || !StateLost.Terminal() {
		t.Error("only won and lost are terminal")
	}
	if KindHazard.String() != "hazard" || KindCollectible.String() != "collectible" {
		t.Error("kind names wrong")
	}
}
