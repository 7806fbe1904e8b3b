// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the chase game.
package config

// Chase contains all configuration for a chase session.
type Chase struct {
	World       World       `yaml:"world"`
	Character   Character   `yaml:"character"`
	Collectible Collectible `yaml:"collectible"`
	Hazard      Hazard      `yaml:"hazard"`
	Rules       Rules       `yaml:"rules"`
}

// World defines the design canvas the playable area is carved from.
type World struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MaxAspectRatio float64 `yaml:"max_aspect_ratio"` // width / height of the playable band
}

// Character defines the controlled character.
type Character struct {
	Speed        float64 `yaml:"speed"` // units per second
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FlagDuration float64 `yaml:"flag_duration"` // seconds flagged after a hit
}

// Collectible defines the roaming targets.
type Collectible struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Lifetime      float64 `yaml:"lifetime"`
	Rotation      float64 `yaml:"rotation"` // radians
}

// Hazard defines the enemies crossing the screen right to left.
type Hazard struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Traversal     float64 `yaml:"traversal"` // seconds to cross from spawn to exit
	Inset         float64 `yaml:"inset"`     // hit box shrink per side
}

// Rules defines the scoring and termination thresholds.
type Rules struct {
	Lives        int `yaml:"lives"`
	WinThreshold int `yaml:"win_threshold"`
}

// HazardSpeed returns the horizontal speed needed to cross the world,
// from fully off the right edge to fully off the left edge, in Traversal seconds.
func (c Chase) HazardSpeed() float64 {
	return (c.World.Width + c.Hazard.Width) / c.Hazard.Traversal
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
