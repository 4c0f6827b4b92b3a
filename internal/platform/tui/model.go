package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/gemfall/internal/board"
	"github.com/dkotenko/gemfall/internal/core"
	"github.com/dkotenko/gemfall/internal/registry"
	"github.com/dkotenko/gemfall/internal/storage"
)

// replaySource is implemented by games whose finished runs can be persisted
// and replayed from the seed and the move list alone.
type replaySource interface {
	Seed() int64
	AppliedMoves() []int
	Board() *board.Board
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	quitting    bool
	resultSaved bool // Whether score/replay have been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new dimensions; mid-game resizes lose progress.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score and replay on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished run. Saves are best-effort: the game keeps
// running with or without storage.
func (m *Model) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveScore(m.game.ID(), m.gameState.Score)

	src, ok := m.game.(replaySource)
	if !ok {
		return
	}
	b := src.Board()
	if b == nil || len(src.AppliedMoves()) == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveReplay(storage.Replay{
		GameID:    m.game.ID(),
		Seed:      src.Seed(),
		Rows:      b.Rows(),
		Cols:      b.Cols(),
		CellTypes: b.NumCellTypes(),
		Moves:     src.AppliedMoves(),
		Score:     m.gameState.Score,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
