package tui

import (
	"github.com/vovakirdan/tui-2048/internal/game"
)

// Animation durations in frames at 60fps.
const (
	slideFrames = 8 // ~133ms
	popFrames   = 6 // ~100ms
)

// AnimationPhase is the current stage of a move animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnim is one tile in flight during the slide phase.
type TileAnim struct {
	Value    int
	From     game.Cell
	To       game.Cell
	Merged   bool
	Progress float64 // 0.0 to 1.0
}

// Animator turns a move result into a slide-then-pop animation.
// The board itself already holds the post-move state; the animator
// only decides which cells to hide and where to draw tiles in flight.
type Animator struct {
	phase  AnimationPhase
	frames int
	anims  []TileAnim
	spawn  *game.SpawnEvent
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Start begins animating the given move. A move without tile events
// leaves the animator idle.
func (a *Animator) Start(result game.MoveResult) {
	a.anims = a.anims[:0]
	for _, ev := range result.Events {
		a.anims = append(a.anims, TileAnim{
			Value:  ev.Value,
			From:   ev.From,
			To:     ev.To,
			Merged: ev.Merged,
		})
	}
	a.spawn = result.Spawn

	if len(a.anims) == 0 {
		a.phase = PhaseNone
		return
	}
	a.phase = PhaseSlide
	a.frames = 0
}

// Advance moves the animation forward one frame.
// Returns true while the animation is still in progress.
func (a *Animator) Advance() bool {
	if a.phase == PhaseNone {
		return false
	}

	a.frames++

	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideFrames
	case PhasePop:
		duration = popFrames
	}

	progress := float64(a.frames) / float64(duration)
	if progress > 1.0 {
		progress = 1.0
	}
	for i := range a.anims {
		a.anims[i].Progress = progress
	}

	if a.frames >= duration {
		a.finishPhase()
	}
	return a.phase != PhaseNone
}

// finishPhase transitions slide into pop, or ends the animation.
func (a *Animator) finishPhase() {
	if a.phase == PhaseSlide && a.spawn != nil {
		a.phase = PhasePop
		a.frames = 0
		a.anims = a.anims[:0]
		return
	}
	a.phase = PhaseNone
	a.spawn = nil
	a.anims = a.anims[:0]
}

// Active reports whether an animation is running.
func (a *Animator) Active() bool {
	return a.phase != PhaseNone
}

// Skip ends the animation immediately. Used when input arrives mid-flight.
func (a *Animator) Skip() {
	a.phase = PhaseNone
	a.spawn = nil
	a.anims = a.anims[:0]
}

// Tiles returns the tiles in flight for the slide phase.
func (a *Animator) Tiles() []TileAnim {
	if a.phase != PhaseSlide {
		return nil
	}
	return a.anims
}

// Hidden reports whether the board cell should be suppressed in the
// static render because an animation covers it.
func (a *Animator) Hidden(cell game.Cell) bool {
	switch a.phase {
	case PhaseSlide:
		if a.spawn != nil && a.spawn.Cell == cell {
			return true
		}
		for _, an := range a.anims {
			if an.To == cell {
				return true
			}
		}
	case PhasePop:
		// The spawned tile blinks in halfway through the pop.
		if a.spawn != nil && a.spawn.Cell == cell {
			return float64(a.frames) < float64(popFrames)/2
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for the slide.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// InterpolateCell returns the fractional board position of a tile in flight.
func (an *TileAnim) InterpolateCell() (row, col float64) {
	t := easeOutQuad(an.Progress)
	row = float64(an.From.Row) + (float64(an.To.Row)-float64(an.From.Row))*t
	col = float64(an.From.Col) + (float64(an.To.Col)-float64(an.From.Col))*t
	return row, col
}
