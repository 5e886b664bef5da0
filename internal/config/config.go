// Package config provides YAML-based game configuration loading with
// embedded defaults.
package config

// Config contains all tunable game parameters.
type Config struct {
	Board Board `yaml:"board"`
	Rules Rules `yaml:"rules"`
	Undo  Undo  `yaml:"undo"`
	UI    UI    `yaml:"ui"`
}

// Board defines the playing grid.
type Board struct {
	Size int `yaml:"size"` // Cells per side
}

// Rules defines win condition and tile spawning.
type Rules struct {
	WinTile         int     `yaml:"win_tile"`
	SpawnFourChance float64 `yaml:"spawn_four_chance"`
}

// Undo defines the snapshot history.
type Undo struct {
	HistorySize int `yaml:"history_size"` // Snapshots retained
	Budget      int `yaml:"budget"`       // Undos allowed per game
}

// UI defines presentation preferences.
type UI struct {
	DarkMode  bool `yaml:"dark_mode"`
	Animate   bool `yaml:"animate"`
	FrameRate int  `yaml:"frame_rate"`
}

// normalize clamps out-of-range values back to usable defaults.
func (c *Config) normalize() {
	if c.Board.Size < 2 {
		c.Board.Size = 4
	}
	if c.Board.Size > 8 {
		c.Board.Size = 8
	}
	if c.Rules.WinTile < 8 {
		c.Rules.WinTile = 2048
	}
	if c.Rules.SpawnFourChance < 0 || c.Rules.SpawnFourChance > 1 {
		c.Rules.SpawnFourChance = 0.1
	}
	if c.Undo.HistorySize < 1 {
		c.Undo.HistorySize = 5
	}
	if c.Undo.Budget < 0 {
		c.Undo.Budget = 5
	}
	if c.UI.FrameRate < 1 {
		c.UI.FrameRate = 60
	}
}
