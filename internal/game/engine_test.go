package game

import "testing"

// recordingSink counts audio cues for verifying cue selection.
type recordingSink struct {
	moves, merges, wins, overs int
}

func (r *recordingSink) PlayMove()     { r.moves++ }
func (r *recordingSink) PlayMerge()    { r.merges++ }
func (r *recordingSink) PlayWin()      { r.wins++ }
func (r *recordingSink) PlayGameOver() { r.overs++ }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(DefaultRules(), 42, NewMemStore(), nil)
}

// setBoard replaces the engine's grid with the given arrangement.
func setBoard(e *Engine, rows [][]int) {
	e.grid = newGridFrom(rows)
}

func TestNewEngineSpawnsTwoTiles(t *testing.T) {
	e := newTestEngine(t)

	if got := e.grid.TileCount(); got != 2 {
		t.Errorf("fresh engine tile count = %d, want 2", got)
	}
	if e.Score() != 0 {
		t.Errorf("fresh engine score = %d, want 0", e.Score())
	}
	if e.HasWon() || e.GameOver() {
		t.Error("fresh engine must not be won or over")
	}
}

func TestDeterministicSeed(t *testing.T) {
	e1 := NewEngine(DefaultRules(), 12345, NewMemStore(), nil)
	e2 := NewEngine(DefaultRules(), 12345, NewMemStore(), nil)

	g1, g2 := e1.Grid(), e2.Grid()
	for r := range g1 {
		for c := range g1[r] {
			if g1[r][c] != g2[r][c] {
				t.Fatalf("same seed produced different boards at (%d,%d): %d vs %d",
					r, c, g1[r][c], g2[r][c])
			}
		}
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.Move(Direction(99)); err == nil {
		t.Error("Move with an illegal direction must return an error")
	}
}

func TestMoveSimpleMerge(t *testing.T) {
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if !res.Moved {
		t.Fatal("merge move must report Moved")
	}
	if res.ScoreGained != 4 {
		t.Errorf("ScoreGained = %d, want 4", res.ScoreGained)
	}
	if e.grid.At(Cell{Row: 0, Col: 0}) != 4 {
		t.Errorf("cell (0,0) = %d, want 4", e.grid.At(Cell{Row: 0, Col: 0}))
	}
	if res.Spawn == nil {
		t.Error("successful move must spawn a tile")
	}
	if e.Score() != 4 {
		t.Errorf("Score = %d, want 4", e.Score())
	}
}

func TestMoveRelocatesWithoutMerge(t *testing.T) {
	// Two lone tiles slide to the left wall without merging.
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{0, 2, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if e.grid.At(Cell{Row: 0, Col: 0}) != 2 {
		t.Errorf("cell (0,0) = %d, want 2", e.grid.At(Cell{Row: 0, Col: 0}))
	}
	if e.grid.At(Cell{Row: 1, Col: 0}) != 4 {
		t.Errorf("cell (1,0) = %d, want 4", e.grid.At(Cell{Row: 1, Col: 0}))
	}
	if res.ScoreGained != 0 {
		t.Errorf("ScoreGained = %d, want 0 for a pure slide", res.ScoreGained)
	}
	if got := e.grid.TileCount(); got != 3 {
		t.Errorf("tile count = %d, want 3 (two moved + one spawned)", got)
	}
}

func TestNoOpMoveChangesNothing(t *testing.T) {
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	scoreBefore := e.Score()
	undosBefore := e.UndosLeft()
	countBefore := e.grid.TileCount()

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if res.Moved {
		t.Error("left-packed row moved left must be a no-op")
	}
	if e.Score() != scoreBefore {
		t.Error("no-op move must not change the score")
	}
	if e.HistoryLen() != 0 {
		t.Error("no-op move must not push history")
	}
	if e.UndosLeft() != undosBefore {
		t.Error("no-op move must not touch the undo budget")
	}
	if e.grid.TileCount() != countBefore {
		t.Error("no-op move must not spawn a tile")
	}
}

func TestMergeChainBound(t *testing.T) {
	// [2,2,2,2] moved left merges into exactly [4,4] - two independent
	// pairs, never a chain collapse.
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if e.grid.At(Cell{Row: 0, Col: 0}) != 4 || e.grid.At(Cell{Row: 0, Col: 1}) != 4 {
		t.Errorf("row 0 = %v, want [4 4 ...]", e.Grid()[0])
	}
	if res.ScoreGained != 8 {
		t.Errorf("ScoreGained = %d, want 8", res.ScoreGained)
	}

	merges := 0
	for _, ev := range res.Events {
		if ev.Merged {
			merges++
		}
	}
	if merges != 2 {
		t.Errorf("merge events = %d, want 2", merges)
	}
}

func TestMergedTileNotRemergedSamePass(t *testing.T) {
	// [2,2,4] left: the 2s merge into a 4 and the trailing 4 must slide
	// beside it, not merge with the freshly made tile.
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if e.grid.At(Cell{Row: 0, Col: 0}) != 4 || e.grid.At(Cell{Row: 0, Col: 1}) != 4 {
		t.Errorf("row 0 = %v, want [4 4 ...]", e.Grid()[0])
	}
	if res.ScoreGained != 4 {
		t.Errorf("ScoreGained = %d, want 4 (only the 2+2 merge scores)", res.ScoreGained)
	}
}

func TestTraversalOrderAtEdges(t *testing.T) {
	// Column [4,_,4,8] moving down: the top 4 merges onto the stationary
	// middle 4; the 8 at the bottom edge stays put and the two resulting
	// 8s stay separate within the same pass.
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 0},
	})

	res, err := e.Move(DirDown)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if e.grid.At(Cell{Row: 2, Col: 0}) != 8 {
		t.Errorf("cell (2,0) = %d, want 8 from merge", e.grid.At(Cell{Row: 2, Col: 0}))
	}
	if e.grid.At(Cell{Row: 3, Col: 0}) != 8 {
		t.Errorf("cell (3,0) = %d, want the preexisting 8", e.grid.At(Cell{Row: 3, Col: 0}))
	}
	if res.ScoreGained != 8 {
		t.Errorf("ScoreGained = %d, want 8", res.ScoreGained)
	}
}

func TestTileConservation(t *testing.T) {
	// After any successful move: count = before - merges + 1 (the spawn).
	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		e := NewEngine(DefaultRules(), int64(17+dir), NewMemStore(), nil)

		for i := 0; i < 20; i++ {
			before := e.grid.TileCount()
			res, err := e.Move(dir)
			if err != nil {
				t.Fatalf("Move(%v) failed: %v", dir, err)
			}
			if !res.Moved {
				break
			}

			merges := 0
			for _, ev := range res.Events {
				if ev.Merged {
					merges++
				}
			}
			want := before - merges
			if res.Spawn != nil {
				want++
			}
			if got := e.grid.TileCount(); got != want {
				t.Fatalf("dir %v move %d: tile count = %d, want %d (before %d, merges %d)",
					dir, i, got, want, before, merges)
			}
		}
	}
}

func TestWinLatch(t *testing.T) {
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if !res.Won {
		t.Error("merging to 2048 must report Won on that move")
	}
	if !e.HasWon() {
		t.Error("HasWon must latch true")
	}

	e.ContinuePlaying()
	if !e.KeepPlaying() {
		t.Error("ContinuePlaying after a win must set KeepPlaying")
	}

	// Further moves keep the 2048 tile but must not re-fire the win.
	res, err = e.Move(DirDown)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if res.Moved && res.Won {
		t.Error("win notification fired twice")
	}
	if !e.HasWon() {
		t.Error("HasWon must stay true")
	}
}

func TestMovesAvailable(t *testing.T) {
	e := newTestEngine(t)

	// Full grid, no equal orthogonal neighbors.
	setBoard(e, [][]int{
		{2, 4, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 8, 16},
		{16, 8, 4, 2},
	})
	if e.MovesAvailable() {
		t.Error("deadlocked grid must report no moves available")
	}

	// One empty cell flips it.
	e.grid.Set(Cell{Row: 2, Col: 2}, 0)
	if !e.MovesAvailable() {
		t.Error("grid with an empty cell must report moves available")
	}

	// Full again, but with one equal neighbor pair.
	e.grid.Set(Cell{Row: 2, Col: 2}, 4)
	if !e.MovesAvailable() {
		t.Error("grid with a mergeable pair must report moves available")
	}
}

func TestMoveOnDeadGridIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 4, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 8, 16},
		{16, 8, 4, 2},
	})
	e.over = true

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if res.Moved {
		t.Error("move after game over must be a no-op")
	}
}

func TestUndoRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := e.Grid()
	scoreBefore := e.Score()
	undosBefore := e.UndosLeft()

	res, err := e.Move(DirLeft)
	if err != nil || !res.Moved {
		t.Fatalf("Move = (%+v, %v), want a successful move", res, err)
	}

	if !e.Undo() {
		t.Fatal("Undo after a successful move must succeed")
	}

	after := e.Grid()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Errorf("cell (%d,%d) = %d after undo, want %d", r, c, after[r][c], before[r][c])
			}
		}
	}
	if e.Score() != scoreBefore {
		t.Errorf("Score after undo = %d, want %d", e.Score(), scoreBefore)
	}
	if e.UndosLeft() != undosBefore-1 {
		t.Errorf("UndosLeft = %d, want %d (one consumed, never restored)", e.UndosLeft(), undosBefore-1)
	}
}

func TestUndoBudgetExhaustion(t *testing.T) {
	e := newTestEngine(t)

	// Budget is spent one unit per successful undo and never replenished
	// within a game.
	budget := e.UndosLeft()
	performed := 0
	for i := 0; i < budget*3; i++ {
		res, err := e.Move([]Direction{DirLeft, DirDown, DirRight, DirUp}[i%4])
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if !res.Moved {
			continue
		}
		if e.Undo() {
			performed++
		}
	}

	if performed != budget {
		t.Errorf("successful undos = %d, want the full budget %d", performed, budget)
	}
	if e.UndosLeft() != 0 {
		t.Errorf("UndosLeft = %d, want 0", e.UndosLeft())
	}
	if e.Undo() {
		t.Error("undo with an exhausted budget must fail")
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	e := newTestEngine(t)

	if e.Undo() {
		t.Error("undo with empty history must fail")
	}
	if e.UndosLeft() != DefaultRules().UndoBudget {
		t.Error("failed undo must not consume budget")
	}
}

func TestHistoryBoundAcrossMoves(t *testing.T) {
	e := newTestEngine(t)

	var preMoveScores []int
	dirs := []Direction{DirLeft, DirDown, DirRight, DirUp}
	for i := 0; len(preMoveScores) < 8 && i < 60; i++ {
		score := e.Score()
		res, err := e.Move(dirs[i%4])
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if res.Moved {
			preMoveScores = append(preMoveScores, score)
		}
	}
	if len(preMoveScores) < 8 {
		t.Fatalf("only %d successful moves, need 8", len(preMoveScores))
	}

	if e.HistoryLen() != 5 {
		t.Fatalf("HistoryLen = %d, want 5 after more than 5 moves", e.HistoryLen())
	}

	// Draining the budget walks back exactly 5 moves: the oldest retained
	// snapshot is the state before move N-4.
	for i := 0; i < 5; i++ {
		if !e.Undo() {
			t.Fatalf("undo %d failed with non-empty history", i+1)
		}
	}
	if e.Score() != preMoveScores[3] {
		t.Errorf("score after 5 undos = %d, want %d (state before move 4)",
			e.Score(), preMoveScores[3])
	}
}

func TestRestartResetsEverything(t *testing.T) {
	e := newTestEngine(t)

	// Play and undo a bit to dirty every piece of state.
	for i := 0; i < 6; i++ {
		e.Move([]Direction{DirLeft, DirDown, DirRight, DirUp}[i%4]) //nolint:errcheck
	}
	e.Undo()
	best := e.Best()

	e.Restart()

	if e.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", e.Score())
	}
	if e.HistoryLen() != 0 {
		t.Errorf("history after restart = %d, want 0", e.HistoryLen())
	}
	if e.UndosLeft() != DefaultRules().UndoBudget {
		t.Errorf("undo budget after restart = %d, want %d", e.UndosLeft(), DefaultRules().UndoBudget)
	}
	if e.grid.TileCount() != 2 {
		t.Errorf("tile count after restart = %d, want 2", e.grid.TileCount())
	}
	if e.Best() != best {
		t.Error("restart must not touch the best score")
	}
}

func TestAudioCueSelection(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(DefaultRules(), 42, NewMemStore(), sink)

	// Pure slide: move cue.
	setBoard(e, [][]int{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	e.Move(DirLeft) //nolint:errcheck
	if sink.moves != 1 || sink.merges != 0 {
		t.Errorf("slide cues = %+v, want one move cue", *sink)
	}

	// Merge: merge cue.
	setBoard(e, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	e.Move(DirLeft) //nolint:errcheck
	if sink.merges != 1 {
		t.Errorf("merge cues = %d, want 1", sink.merges)
	}

	// Winning merge: win cue beats merge cue.
	setBoard(e, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	e.Move(DirLeft) //nolint:errcheck
	if sink.wins != 1 {
		t.Errorf("win cues = %d, want 1", sink.wins)
	}
}

func TestCustomBoardSize(t *testing.T) {
	rules := DefaultRules()
	rules.Size = 5

	e := NewEngine(rules, 7, NewMemStore(), nil)

	if e.Size() != 5 {
		t.Errorf("Size = %d, want 5", e.Size())
	}
	if e.grid.TileCount() != 2 {
		t.Errorf("tile count = %d, want 2", e.grid.TileCount())
	}

	res, err := e.Move(DirLeft)
	if err != nil {
		t.Fatalf("Move on 5x5 failed: %v", err)
	}
	_ = res
}

func TestSpawnDistribution(t *testing.T) {
	// With the default 0.1 chance, spawned fours should be rare but present
	// over many spawns.
	e := NewEngine(DefaultRules(), 99, NewMemStore(), nil)
	twos, fours := 0, 0
	for i := 0; i < 500; i++ {
		setBoard(e, [][]int{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		sp := e.addRandomTile()
		if sp == nil {
			t.Fatal("spawn on empty board returned nil")
		}
		switch sp.Value {
		case 2:
			twos++
		case 4:
			fours++
		default:
			t.Fatalf("spawned value %d, want 2 or 4", sp.Value)
		}
	}
	if fours == 0 || fours > 150 {
		t.Errorf("fours = %d of 500, want roughly 10%%", fours)
	}
	if twos+fours != 500 {
		t.Errorf("spawn total = %d, want 500", twos+fours)
	}
}

func TestSpawnOnFullGridIsNil(t *testing.T) {
	e := newTestEngine(t)
	setBoard(e, [][]int{
		{2, 4, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 8, 16},
		{16, 8, 4, 2},
	})

	if sp := e.addRandomTile(); sp != nil {
		t.Errorf("spawn on full grid = %+v, want nil", sp)
	}
}
