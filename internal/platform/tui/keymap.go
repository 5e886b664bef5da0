package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	}

	switch key {
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "n":
		return core.ActionNew, false
	case "u":
		return core.ActionUndo, false
	case "m":
		return core.ActionSound, false
	case "t":
		return core.ActionTheme, false
	case "c":
		return core.ActionContinue, false
	case "r":
		return core.ActionRestart, false
	case "v":
		return core.ActionScores, false
	}

	return core.ActionNone, false
}

// Direction converts a direction action to the engine's direction type.
// The second return is false for non-direction actions.
func Direction(a core.Action) (game.Direction, bool) {
	switch a {
	case core.ActionUp:
		return game.DirUp, true
	case core.ActionDown:
		return game.DirDown, true
	case core.ActionLeft:
		return game.DirLeft, true
	case core.ActionRight:
		return game.DirRight, true
	}
	return 0, false
}
