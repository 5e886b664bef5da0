package tui

import (
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Cell dimensions in terminal characters, grid lines included.
const (
	cellWidth  = 7
	cellHeight = 3
	hudHeight  = 3
)

// Button is a clickable control below the board.
type Button struct {
	Action core.Action
	Label  string
	Rect   core.Rect
}

// Layout computes where everything sits on screen. The same geometry
// drives both drawing and mouse hit-testing, so clicks always land on
// what the player sees.
type Layout struct {
	screenW int
	screenH int
	size    int
	buttons []Button
}

// NewLayout creates a layout for the given screen and board size.
func NewLayout(screenW, screenH, size int) *Layout {
	l := &Layout{
		screenW: screenW,
		screenH: screenH,
		size:    size,
	}
	l.placeButtons()
	return l
}

// TooSmall reports whether the screen cannot fit the board and controls.
func (l *Layout) TooSmall() bool {
	board := l.BoardRect()
	return board.X < 0 || board.Bottom()+2 >= l.screenH
}

// BoardRect returns the board area including its outer border,
// horizontally centered below the HUD.
func (l *Layout) BoardRect() core.Rect {
	w := l.size*cellWidth + 1
	h := l.size*cellHeight + 1
	return core.NewRect((l.screenW-w)/2, hudHeight+1, w, h)
}

// CellRect returns the interior of a board cell, grid lines excluded.
func (l *Layout) CellRect(row, col int) core.Rect {
	board := l.BoardRect()
	return core.NewRect(
		board.X+col*cellWidth+1,
		board.Y+row*cellHeight+1,
		cellWidth-1,
		cellHeight-1,
	)
}

// HUDRect returns the area above the board for title and scores.
func (l *Layout) HUDRect() core.Rect {
	board := l.BoardRect()
	return core.NewRect(board.X, 0, board.W, hudHeight)
}

// placeButtons lays the control row out left to right under the board.
func (l *Layout) placeButtons() {
	defs := []struct {
		action core.Action
		label  string
	}{
		{core.ActionNew, "New"},
		{core.ActionUndo, "Undo"},
		{core.ActionSound, "Sound"},
		{core.ActionTheme, "Theme"},
		{core.ActionScores, "Scores"},
	}

	board := l.BoardRect()
	y := board.Bottom() + 1
	x := board.X
	l.buttons = l.buttons[:0]
	for _, d := range defs {
		// Label plus surrounding brackets: [New]
		w := len(d.label) + 2
		l.buttons = append(l.buttons, Button{
			Action: d.action,
			Label:  d.label,
			Rect:   core.NewRect(x, y, w, 1),
		})
		x += w + 2
	}
}

// Buttons returns the control row.
func (l *Layout) Buttons() []Button {
	return l.buttons
}

// HelpY returns the row for the key hint line.
func (l *Layout) HelpY() int {
	return l.BoardRect().Bottom() + 3
}

// HitTest maps a click position to the action it triggers.
// Clicks outside any control return core.ActionNone.
func (l *Layout) HitTest(x, y int) core.Action {
	for _, b := range l.buttons {
		if b.Rect.Contains(x, y) {
			return b.Action
		}
	}
	return core.ActionNone
}
