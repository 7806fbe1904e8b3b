package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when a configuration cannot start a session.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Validate checks that every dimension, speed, duration and threshold is
// positive and finite.
// The returned error wraps ErrInvalidConfiguration and names the first bad field.
func (c Chase) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.max_aspect_ratio", c.World.MaxAspectRatio},
		{"character.speed", c.Character.Speed},
		{"character.width", c.Character.Width},
		{"character.height", c.Character.Height},
		{"character.flag_duration", c.Character.FlagDuration},
		{"collectible.width", c.Collectible.Width},
		{"collectible.height", c.Collectible.Height},
		{"collectible.spawn_interval", c.Collectible.SpawnInterval},
		{"collectible.lifetime", c.Collectible.Lifetime},
		{"hazard.width", c.Hazard.Width},
		{"hazard.height", c.Hazard.Height},
		{"hazard.spawn_interval", c.Hazard.SpawnInterval},
		{"hazard.traversal", c.Hazard.Traversal},
		{"rules.lives", float64(c.Rules.Lives)},
		{"rules.win_threshold", float64(c.Rules.WinThreshold)},
	}
	for _, p := range positive {
		// !(x > 0) also rejects NaN
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidConfiguration, p.name, p.val)
		}
	}
	if c.Hazard.Inset < 0 {
		return fmt.Errorf("%w: hazard.inset must not be negative, got %v", ErrInvalidConfiguration, c.Hazard.Inset)
	}
	return nil
}
