package chase

// State is the session outcome.
type State uint8

const (
	StateActive State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session is over.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// GameStateMachine owns the lives and collected counters and decides when
// the session ends. Won and Lost are absorbing.
type GameStateMachine struct {
	state        State
	lives        int
	collected    int
	winThreshold int
}

// NewGameStateMachine starts an Active machine.
func NewGameStateMachine(lives, winThreshold int) *GameStateMachine {
	return &GameStateMachine{
		state:        StateActive,
		lives:        lives,
		winThreshold: winThreshold,
	}
}

// Collect records one collectible. It reports false once the session is over.
func (m *GameStateMachine) Collect() bool {
	if m.state.Terminal() {
		return false
	}
	m.collected++
	return true
}

// Hit records one hazard contact. It reports false once the session is over.
func (m *GameStateMachine) Hit() bool {
	if m.state.Terminal() {
		return false
	}
	if m.lives > 0 {
		m.lives--
	}
	return true
}

// Evaluate runs once per step after all events were applied.
// Loss is checked before the win, so a step that satisfies both is Lost.
func (m *GameStateMachine) Evaluate() State {
	if m.state.Terminal() {
		return m.state
	}
	if m.lives <= 0 {
		m.state = StateLost
	} else if m.collected >= m.winThreshold {
		m.state = StateWon
	}
	return m.state
}

// State returns the current state.
func (m *GameStateMachine) State() State { return m.state }

// Lives returns the remaining attempts.
func (m *GameStateMachine) Lives() int { return m.lives }

// Collected returns the number of collectibles reached.
func (m *GameStateMachine) Collected() int { return m.collected }
