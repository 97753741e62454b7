package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emily-flambe/pong/internal/core"
	"github.com/emily-flambe/pong/internal/sim"
	"github.com/emily-flambe/pong/internal/storage"
)

// maxFrameDelta caps the simulation step fed to the match. A stalled
// terminal or a debugger pause would otherwise produce one huge step and
// let the ball tunnel through paddles.
const maxFrameDelta = 1.0 / 30

// Model is the Bubble Tea model for playing one match.
type Model struct {
	match      *sim.Match
	modeID     string
	title      string
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	frame      InputFrame
	lastTick   time.Time
	startedAt  time.Time
	highScore  int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given match.
func NewModel(match *sim.Match, modeID, title string, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		match:     match,
		modeID:    modeID,
		title:     title,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if high, err := store.HighScore(modeID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == ActionBack {
		switch m.match.Phase() {
		case sim.PhaseGameOver, sim.PhasePaused, sim.PhaseNotStarted:
			m.backToMenu = true
		}
		return m, nil
	}

	m.frame.Set(action)
	return m, nil
}

// handleResize processes window resize events. Only the projection
// changes; the match keeps its fixed field coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the match by the elapsed frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := maxFrameDelta
	if !m.lastTick.IsZero() {
		if elapsed := now.Sub(m.lastTick).Seconds(); elapsed < dt {
			dt = elapsed
		}
	}
	m.lastTick = now

	m.applyControlKeys()

	m.match.Update(dt, m.frame.SimInput())
	m.frame.Clear()

	if m.match.GameOver() && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// applyControlKeys handles the lifecycle keys collected since the last tick.
func (m *Model) applyControlKeys() {
	switch {
	case m.frame.restart && m.match.GameOver():
		m.match.Reseed(time.Now().UnixNano())
		m.match.Start()
		m.startedAt = time.Now()
		m.scoreSaved = false

	case m.frame.accept:
		m.match.ActivateReserve()

	case m.frame.decline:
		m.match.DeclineReserve()

	case m.frame.pause:
		switch m.match.Phase() {
		case sim.PhaseRunning:
			m.match.Pause()
		case sim.PhaseNotStarted, sim.PhasePaused:
			if m.startedAt.IsZero() {
				m.startedAt = time.Now()
			}
			m.match.Start()
		}
	}
}

// saveResult persists the finished match. Best effort: play continues even
// if the database is unavailable.
func (m *Model) saveResult() {
	score := m.match.FinalScore()
	if score > m.highScore {
		m.highScore = score
	}
	if m.store == nil || score <= 0 {
		return
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveScore(m.modeID, score)

	duration := 0
	if !m.startedAt.IsZero() {
		duration = int(time.Since(m.startedAt).Seconds())
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveMatchResult(storage.MatchResult{
		ModeID:       m.modeID,
		Score:        score,
		ReserveUsed:  m.match.ReserveUsed(),
		DurationSecs: duration,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawMatch(m.screen, m.match, m.title, m.highScore)

	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.modeID, timestamp))

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawMatch(m.screen, m.match, m.title, m.highScore)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single local match.
func Run(match *sim.Match, modeID, title string, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(match, modeID, title, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
