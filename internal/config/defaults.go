package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: Board{Size: 4},
		Rules: Rules{
			WinTile:         2048,
			SpawnFourChance: 0.1,
		},
		Undo: Undo{
			HistorySize: 5,
			Budget:      5,
		},
		UI: UI{
			DarkMode:  true,
			Animate:   true,
			FrameRate: 60,
		},
	}
}
