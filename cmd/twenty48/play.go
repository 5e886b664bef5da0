package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSize int
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  U                - Undo last move
  N                - New game
  M                - Toggle sound
  T                - Toggle theme
  C                - Keep playing after winning
  R                - Restart (after game over)
  V                - High scores
  Q/Ctrl+C         - Quit

The board is also mouse-aware: click the buttons under the board.

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 play --mute
  twenty48 play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size override (0 = from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSize > 1 {
		if flagSize > 8 {
			flagSize = 8
		}
		cfg.Board.Size = flagSize
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: cfg.UI.FrameRate,
		Seed:      seed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Audio is optional; headless systems play silently.
	var sound tui.SoundControl
	sm := audio.NewSoundManager()
	if initErr := sm.Initialize(); initErr == nil {
		sound = sm
	} else {
		sound = tui.NopSound()
	}
	if flagMute {
		sound.SetMuted(true)
	}

	rules := game.Rules{
		Size:            cfg.Board.Size,
		WinTile:         cfg.Rules.WinTile,
		SpawnFourChance: cfg.Rules.SpawnFourChance,
		HistorySize:     cfg.Undo.HistorySize,
		UndoBudget:      cfg.Undo.Budget,
	}

	var kv game.KeyValueStore
	if store != nil {
		kv = store
	}
	engine := game.NewEngine(rules, seed, kv, sound)

	runErr := tui.Run(tui.NewModel(engine, store, sound, rt, cfg.UI.Animate))

	sm.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
