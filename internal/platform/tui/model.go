package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// SoundControl is the audio surface the UI needs: the engine's cue
// sink plus a mute toggle.
type SoundControl interface {
	game.AudioSink
	SetMuted(muted bool)
	IsMuted() bool
}

// nopSound is used when no audio device is available.
type nopSound struct {
	game.NopSink
	muted bool
}

func (n *nopSound) SetMuted(muted bool) { n.muted = muted }
func (n *nopSound) IsMuted() bool       { return n.muted }

// NopSound returns a SoundControl that plays nothing.
func NopSound() SoundControl {
	return &nopSound{}
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	engine  *game.Engine
	screen  *core.Screen
	store   *storage.Store
	sound   SoundControl
	rt      core.RuntimeConfig
	animate bool

	layout *Layout
	anim   *Animator
	keys   *KeyMapper

	dark       bool
	quitting   bool
	scoreSaved bool

	scores *ScoreboardModel
}

// NewModel creates the game model. store and sound may be nil, in which
// case scores are not persisted and cues are silent.
func NewModel(engine *game.Engine, store *storage.Store, sound SoundControl, rt core.RuntimeConfig, animate bool) Model {
	if sound == nil {
		sound = NopSound()
	}

	m := Model{
		engine:  engine,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   store,
		sound:   sound,
		rt:      rt,
		animate: animate,
		layout:  NewLayout(rt.ScreenW, rt.ScreenH, engine.Size()),
		anim:    NewAnimator(),
		keys:    NewKeyMapper(),
	}

	// Presentation preferences survive restarts.
	if store != nil {
		m.dark = store.Get(game.KeyDarkMode, "true") == "true"
		sound.SetMuted(store.Get(game.KeySoundMuted, "false") == "true")
	} else {
		m.dark = true
	}

	return m
}

// Init starts the model. The game is event-driven; no tick loop runs
// until an animation needs one.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m.dispatch(action)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.dispatch(m.layout.HitTest(msg.X, msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.layout = NewLayout(msg.Width, msg.Height, m.engine.Size())
		return m, nil

	case FrameMsg:
		if m.anim.Advance() {
			return m, frameCmd(m.rt.FrameRate)
		}
		return m, nil
	}

	return m, nil
}

// updateScores routes messages to the scoreboard overlay.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b", "v":
			m.scores = nil
			return m, nil
		}
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW = wsm.Width
		m.rt.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
		m.layout = NewLayout(wsm.Width, wsm.Height, m.engine.Size())
	}

	updated, cmd := m.scores.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scores = &sb
	}
	return m, cmd
}

// dispatch applies a game action.
func (m Model) dispatch(action core.Action) (tea.Model, tea.Cmd) {
	if action.IsDirection() {
		return m.handleMove(action)
	}

	switch action {
	case core.ActionNew:
		m.anim.Skip()
		m.engine.Restart()
		m.scoreSaved = false

	case core.ActionUndo:
		m.anim.Skip()
		if m.engine.Undo() {
			m.scoreSaved = false
		}

	case core.ActionSound:
		m.sound.SetMuted(!m.sound.IsMuted())
		m.persistSetting(game.KeySoundMuted, strconv.FormatBool(m.sound.IsMuted()))

	case core.ActionTheme:
		m.dark = !m.dark
		m.persistSetting(game.KeyDarkMode, strconv.FormatBool(m.dark))

	case core.ActionContinue:
		m.engine.ContinuePlaying()

	case core.ActionRestart:
		if m.engine.GameOver() {
			m.anim.Skip()
			m.engine.Restart()
			m.scoreSaved = false
		}

	case core.ActionScores:
		sb := NewScoreboardModel(m.store, m.rt.ScreenW, m.rt.ScreenH)
		m.scores = &sb
	}

	return m, nil
}

// handleMove feeds a direction to the engine.
func (m Model) handleMove(action core.Action) (tea.Model, tea.Cmd) {
	// The win banner blocks play until dismissed.
	if m.engine.HasWon() && !m.engine.KeepPlaying() && !m.engine.GameOver() {
		return m, nil
	}

	// A new move cuts the previous animation short.
	if m.anim.Active() {
		m.anim.Skip()
	}

	dir, ok := Direction(action)
	if !ok {
		return m, nil
	}

	result, err := m.engine.Move(dir)
	if err != nil || !result.Moved {
		return m, nil
	}

	if result.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	if m.animate {
		m.anim.Start(result)
		if m.anim.Active() {
			return m, frameCmd(m.rt.FrameRate)
		}
	}
	return m, nil
}

// saveScore records the finished game, best effort.
func (m *Model) saveScore() {
	if m.store != nil && m.engine.Score() > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.engine.Score(), m.engine.MaxTile(), m.engine.HasWon())
	}
	m.scoreSaved = true
}

// persistSetting stores a preference, best effort.
func (m *Model) persistSetting(key, value string) {
	if m.store != nil {
		m.store.Set(key, value)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.draw()
	return RenderScreen(m.screen)
}

// draw renders the full game screen into the buffer.
func (m *Model) draw() {
	m.screen.Clear()

	if m.layout.TooSmall() {
		m.drawTooSmall()
		return
	}

	m.drawHUD()
	m.drawBoard()
	m.drawButtons()
	m.drawHelp()
	m.drawOverlays()
}

// drawTooSmall shows a "window too small" message.
func (m *Model) drawTooSmall() {
	msg := "Window too small"
	x := (m.rt.ScreenW - len(msg)) / 2
	y := m.rt.ScreenH / 2
	m.screen.DrawText(x, y, msg)

	hint := "Please resize terminal"
	m.screen.DrawText((m.rt.ScreenW-len(hint))/2, y+1, hint)
}

// drawHUD draws the title, score, best score and undo budget.
func (m *Model) drawHUD() {
	hud := m.layout.HUDRect()

	title := "2048"
	m.screen.DrawTextColored(hud.X+(hud.W-len(title))/2, hud.Y, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", m.engine.Score())
	m.screen.DrawText(hud.X, hud.Y+1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", m.engine.Best())
	bestX := hud.Right() - len(bestStr)
	m.screen.DrawText(bestX, hud.Y+1, bestStr)

	undoStr := fmt.Sprintf("Undos: %d", m.engine.UndosLeft())
	m.screen.DrawTextColored(hud.X+(hud.W-len(undoStr))/2, hud.Y+2, undoStr, core.ColorGray)
}

// drawBoard draws the grid and all tiles, deferring to the animator
// for tiles in flight.
func (m *Model) drawBoard() {
	board := m.layout.BoardRect()
	size := m.engine.Size()
	gc := gridColor(m.dark)

	// Grid lines with intersections.
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			m.screen.SetCell(px, py, corner, gc)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					m.screen.SetCell(px+i, py, '─', gc)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					m.screen.SetCell(px, py+i, '│', gc)
				}
			}
		}
	}

	// Static tiles.
	rows := m.engine.Grid()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			val := rows[r][c]
			if val == 0 || m.anim.Hidden(game.Cell{Row: r, Col: c}) {
				continue
			}
			m.drawTileAt(m.layout.CellRect(r, c), val)
		}
	}

	// Tiles in flight.
	for _, an := range m.anim.Tiles() {
		rowF, colF := an.InterpolateCell()
		rect := core.NewRect(
			board.X+int(colF*cellWidth+0.5)+1,
			board.Y+int(rowF*cellHeight+0.5)+1,
			cellWidth-1,
			cellHeight-1,
		)
		m.drawTileAt(rect, an.Value)
	}
}

// drawTileAt centers a tile value inside a cell rect.
func (m *Model) drawTileAt(rect core.Rect, value int) {
	valStr := strconv.Itoa(value)
	if len(valStr) > rect.W {
		valStr = valStr[:rect.W]
	}
	x := rect.X + (rect.W-len(valStr))/2
	y := rect.Y + rect.H/2
	m.screen.DrawTextColored(x, y, valStr, tileColor(value, m.dark))
}

// drawButtons draws the clickable control row.
func (m *Model) drawButtons() {
	for _, b := range m.layout.Buttons() {
		color := core.ColorDefault
		label := b.Label

		switch b.Action {
		case core.ActionUndo:
			if m.engine.UndosLeft() == 0 || m.engine.HistoryLen() == 0 {
				color = core.ColorGray
			}
		case core.ActionSound:
			if m.sound.IsMuted() {
				color = core.ColorGray
			}
		}

		m.screen.DrawTextColored(b.Rect.X, b.Rect.Y, "["+label+"]", color)
	}
}

// drawHelp draws the key hint line.
func (m *Model) drawHelp() {
	help := "arrows/wasd move · u undo · n new · m sound · t theme · v scores · q quit"
	x := (m.rt.ScreenW - len([]rune(help))) / 2
	if x < 0 {
		x = 0
	}
	m.screen.DrawTextColored(x, m.layout.HelpY(), help, core.ColorGray)
}

// drawOverlays draws the win and game over banners.
func (m *Model) drawOverlays() {
	board := m.layout.BoardRect()
	cx, cy := board.Center()

	if m.engine.GameOver() {
		m.drawOverlay(cx, cy,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", m.engine.MaxTile()),
			"R restart · U undo")
		return
	}

	if m.engine.HasWon() && !m.engine.KeepPlaying() {
		m.drawOverlay(cx, cy,
			"YOU WIN!",
			"C keep playing · N new game")
	}
}

// drawOverlay draws a centered boxed message.
func (m *Model) drawOverlay(centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	m.screen.Fill(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorBrightYellow)

	for i, line := range lines {
		m.screen.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
