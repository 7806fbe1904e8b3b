package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChase returns the default chase configuration.
// It mirrors defaults/chase.yaml and is used if the embedded file fails to parse.
func DefaultChase() Chase {
	return Chase{
		World: World{
			Width:          2048,
			Height:         1536,
			MaxAspectRatio: 16.0 / 9.0,
		},
		Character: Character{
			Speed:        1000,
			StartX:       400,
			StartY:       400,
			Width:        160,
			Height:       100,
			FlagDuration: 1.5,
		},
		Collectible: Collectible{
			Width:         100,
			Height:        100,
			SpawnInterval: 1.0,
			Lifetime:      10.0,
			Rotation:      -math.Pi / 16,
		},
		Hazard: Hazard{
			Width:         180,
			Height:        200,
			SpawnInterval: 2.0,
			Traversal:     3.0,
			Inset:         20,
		},
		Rules: Rules{
			Lives:        5,
			WinThreshold: 10,
		},
	}
}
