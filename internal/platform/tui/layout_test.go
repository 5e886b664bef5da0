package tui

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestLayoutCellRectsInsideBoard(t *testing.T) {
	l := NewLayout(80, 24, 4)
	board := l.BoardRect()

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r := l.CellRect(row, col)
			if r.X <= board.X || r.Y <= board.Y {
				t.Errorf("cell (%d,%d) rect %+v overlaps border of %+v", row, col, r, board)
			}
			if r.Right() > board.Right() || r.Bottom() > board.Bottom() {
				t.Errorf("cell (%d,%d) rect %+v exceeds board %+v", row, col, r, board)
			}
		}
	}
}

func TestLayoutCellRectsDisjoint(t *testing.T) {
	l := NewLayout(80, 24, 4)

	r1 := l.CellRect(0, 0)
	r2 := l.CellRect(0, 1)
	if r1.Right() > r2.X {
		t.Errorf("adjacent cells overlap: %+v and %+v", r1, r2)
	}

	r3 := l.CellRect(1, 0)
	if r1.Bottom() > r3.Y {
		t.Errorf("vertically adjacent cells overlap: %+v and %+v", r1, r3)
	}
}

// Clicks must resolve against the same rects the buttons are drawn
// with, so a button's rect always hit-tests to its own action.
func TestLayoutHitTestMatchesButtons(t *testing.T) {
	l := NewLayout(80, 24, 4)

	for _, b := range l.Buttons() {
		got := l.HitTest(b.Rect.X, b.Rect.Y)
		if got != b.Action {
			t.Errorf("HitTest at %q origin = %v, want %v", b.Label, got, b.Action)
		}
		// Last cell of the label is still the same button.
		got = l.HitTest(b.Rect.Right()-1, b.Rect.Y)
		if got != b.Action {
			t.Errorf("HitTest at %q end = %v, want %v", b.Label, got, b.Action)
		}
	}
}

func TestLayoutHitTestMisses(t *testing.T) {
	l := NewLayout(80, 24, 4)

	if got := l.HitTest(0, 0); got != core.ActionNone {
		t.Errorf("HitTest(0, 0) = %v, want ActionNone", got)
	}

	board := l.BoardRect()
	if got := l.HitTest(board.X+1, board.Y+1); got != core.ActionNone {
		t.Errorf("HitTest inside board = %v, want ActionNone", got)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	if NewLayout(80, 24, 4).TooSmall() {
		t.Error("80x24 should fit a 4x4 board")
	}
	if !NewLayout(20, 10, 4).TooSmall() {
		t.Error("20x10 should be too small for a 4x4 board")
	}
}

func TestLayoutButtonsBelowBoard(t *testing.T) {
	l := NewLayout(80, 30, 5)
	board := l.BoardRect()

	for _, b := range l.Buttons() {
		if b.Rect.Y <= board.Bottom() {
			t.Errorf("button %q at y=%d not below board bottom %d", b.Label, b.Rect.Y, board.Bottom())
		}
	}
}
