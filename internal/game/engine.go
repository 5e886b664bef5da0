package game

import (
	"fmt"
	"math/rand"
)

// Rules holds the tunable engine parameters.
type Rules struct {
	Size            int     // Board side length
	WinTile         int     // Tile value that latches the won flag
	SpawnFourChance float64 // Probability a spawned tile is a 4
	HistorySize     int     // Undo snapshot capacity
	UndoBudget      int     // Undos allowed per game
}

// DefaultRules returns the classic 2048 rule set.
func DefaultRules() Rules {
	return Rules{
		Size:            DefaultSize,
		WinTile:         2048,
		SpawnFourChance: 0.1,
		HistorySize:     DefaultHistorySize,
		UndoBudget:      5,
	}
}

// normalize clamps nonsense values back to the defaults.
func (r Rules) normalize() Rules {
	def := DefaultRules()
	if r.Size < 2 {
		r.Size = def.Size
	}
	if r.WinTile < 4 {
		r.WinTile = def.WinTile
	}
	if r.SpawnFourChance < 0 || r.SpawnFourChance > 1 {
		r.SpawnFourChance = def.SpawnFourChance
	}
	if r.HistorySize < 1 {
		r.HistorySize = def.HistorySize
	}
	if r.UndoBudget < 0 {
		r.UndoBudget = def.UndoBudget
	}
	return r
}

// TileEvent records one tile relocation during a move. When Merged is true
// the tile landed on an equal tile at To and the pair became a tile of
// doubled value. Value is the tile's value before any merge.
type TileEvent struct {
	From   Cell
	To     Cell
	Value  int
	Merged bool
}

// SpawnEvent records the tile inserted after a successful move.
type SpawnEvent struct {
	Cell  Cell
	Value int
}

// MoveResult is the outcome of one Move call. When Moved is false nothing
// was mutated and every other field is zero.
type MoveResult struct {
	Moved       bool
	Events      []TileEvent
	Spawn       *SpawnEvent
	ScoreGained int
	Won         bool // True only on the move that first produced the win tile
	GameOver    bool
}

// Engine owns the grid, score, win/over flags, and undo history. It is not
// safe for concurrent use; callers serialize turns, which matches the
// one-input-one-turn model of the game.
type Engine struct {
	rules   Rules
	rng     *rand.Rand
	grid    *Grid
	tracker *ScoreTracker
	history *HistoryStack
	audio   AudioSink

	won         bool
	keepPlaying bool
	over        bool
	undosLeft   int
}

// NewEngine creates an engine with two starting tiles already spawned.
// A nil store or sink falls back to in-memory / no-op collaborators.
func NewEngine(rules Rules, seed int64, store KeyValueStore, audio AudioSink) *Engine {
	rules = rules.normalize()
	if audio == nil {
		audio = NopSink{}
	}
	e := &Engine{
		rules:   rules,
		rng:     rand.New(rand.NewSource(seed)),
		tracker: NewScoreTracker(store),
		audio:   audio,
	}
	e.reset()
	return e
}

// reset clears the board state for a fresh game.
func (e *Engine) reset() {
	e.grid = NewGrid(e.rules.Size)
	e.tracker.Reset()
	e.history = NewHistoryStack(e.rules.HistorySize)
	e.won = false
	e.keepPlaying = false
	e.over = false
	e.undosLeft = e.rules.UndoBudget
	e.addRandomTile()
	e.addRandomTile()
}

// Restart begins a new game: fresh grid with two tiles, score zero, history
// cleared, and the undo budget replenished. The best score is untouched.
func (e *Engine) Restart() {
	e.reset()
}

// Move attempts to relocate and merge every tile as far as possible in the
// given direction. It returns an error only for an illegal direction value;
// a move that changes nothing reports Moved == false and mutates nothing.
func (e *Engine) Move(dir Direction) (MoveResult, error) {
	dRow, dCol, ok := dir.Vector()
	if !ok {
		return MoveResult{}, fmt.Errorf("game: invalid direction %d", int(dir))
	}
	if e.over {
		return MoveResult{}, nil
	}

	// Speculative snapshot, pushed only if the move changes the grid.
	snap := e.snapshot()

	merged := make(map[Cell]bool)
	var events []TileEvent
	gained := 0
	wonNow := false
	anyMerge := false

	for _, src := range traversal(e.grid.Size(), dir) {
		v := e.grid.At(src)
		if v == 0 {
			continue
		}

		farthest, next := e.findFarthest(src, dRow, dCol)

		if e.grid.Within(next) && e.grid.At(next) == v && !merged[next] {
			doubled := v * 2
			e.grid.Set(next, doubled)
			e.grid.Set(src, 0)
			merged[next] = true
			gained += doubled
			anyMerge = true
			events = append(events, TileEvent{From: src, To: next, Value: v, Merged: true})
			if doubled >= e.rules.WinTile && !e.won {
				e.won = true
				wonNow = true
			}
		} else if farthest != src {
			e.grid.Set(farthest, v)
			e.grid.Set(src, 0)
			events = append(events, TileEvent{From: src, To: farthest, Value: v})
		}
	}

	if len(events) == 0 {
		return MoveResult{}, nil
	}

	e.history.Push(snap)
	e.tracker.Add(gained)
	spawn := e.addRandomTile()
	if !e.MovesAvailable() {
		e.over = true
	}

	e.playCues(anyMerge, wonNow)

	return MoveResult{
		Moved:       true,
		Events:      events,
		Spawn:       spawn,
		ScoreGained: gained,
		Won:         wonNow,
		GameOver:    e.over,
	}, nil
}

// findFarthest walks from src along the direction vector while the next cell
// is empty. It returns the farthest empty cell reached and the first blocking
// cell beyond it (occupied or out of bounds).
func (e *Engine) findFarthest(src Cell, dRow, dCol int) (farthest, next Cell) {
	farthest = src
	next = Cell{Row: src.Row + dRow, Col: src.Col + dCol}
	for e.grid.Within(next) && e.grid.At(next) == 0 {
		farthest = next
		next = Cell{Row: next.Row + dRow, Col: next.Col + dCol}
	}
	return farthest, next
}

// playCues fires the audio notifications for a successful move. The sink
// never blocks and its failures never reach the engine.
func (e *Engine) playCues(anyMerge, wonNow bool) {
	switch {
	case wonNow:
		e.audio.PlayWin()
	case e.over:
		e.audio.PlayGameOver()
	case anyMerge:
		e.audio.PlayMerge()
	default:
		e.audio.PlayMove()
	}
}

// addRandomTile inserts a 2 (or, with the configured chance, a 4) into a
// uniformly chosen empty cell. Returns nil when the grid is full.
func (e *Engine) addRandomTile() *SpawnEvent {
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return nil
	}
	cell := empty[e.rng.Intn(len(empty))]
	value := 2
	if e.rng.Float64() < e.rules.SpawnFourChance {
		value = 4
	}
	e.grid.Set(cell, value)
	return &SpawnEvent{Cell: cell, Value: value}
}

// Undo restores the most recent snapshot, consuming one unit of the undo
// budget. Returns false when the history is empty or the budget is spent.
func (e *Engine) Undo() bool {
	if e.undosLeft <= 0 {
		return false
	}
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.grid = snap.Grid.Clone()
	e.tracker.restore(snap.Score)
	e.won = snap.Won
	e.keepPlaying = snap.KeepPlaying
	e.over = false
	e.undosLeft--
	return true
}

// snapshot deep-copies the current state for the history stack.
func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Grid:        e.grid.Clone(),
		Score:       e.tracker.Score(),
		Won:         e.won,
		KeepPlaying: e.keepPlaying,
	}
}

// MovesAvailable reports whether any move can still change the grid: an
// empty cell exists or two equal tiles are orthogonal neighbors.
func (e *Engine) MovesAvailable() bool {
	return e.grid.HasEmptyCell() || e.grid.HasAdjacentPair()
}

// ContinuePlaying acknowledges the win notification and keeps the game
// accepting moves.
func (e *Engine) ContinuePlaying() {
	if e.won {
		e.keepPlaying = true
	}
}

// HasWon reports whether the win tile was ever produced this game.
func (e *Engine) HasWon() bool {
	return e.won
}

// KeepPlaying reports whether the player chose to continue after winning.
func (e *Engine) KeepPlaying() bool {
	return e.keepPlaying
}

// GameOver reports whether no moves remain.
func (e *Engine) GameOver() bool {
	return e.over
}

// Score returns the running score.
func (e *Engine) Score() int {
	return e.tracker.Score()
}

// Best returns the best score ever achieved.
func (e *Engine) Best() int {
	return e.tracker.Best()
}

// UndosLeft returns the remaining undo budget.
func (e *Engine) UndosLeft() int {
	return e.undosLeft
}

// HistoryLen returns the number of retained undo snapshots.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// Grid returns a read-only copy of the board contents.
func (e *Engine) Grid() [][]int {
	return e.grid.Rows()
}

// Size returns the board side length.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// MaxTile returns the largest tile on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules {
	return e.rules
}
