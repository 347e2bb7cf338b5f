package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickstorm/internal/config"
	"github.com/vovakirdan/brickstorm/internal/endgame"
	"github.com/vovakirdan/brickstorm/internal/game"
	"github.com/vovakirdan/brickstorm/internal/levelpack"
	"github.com/vovakirdan/brickstorm/internal/storage"
)

// paddleKeyStep is how many seconds of paddle travel one key event buys.
// Terminals deliver a held arrow key as repeated presses, not a held state,
// so each press has to move the paddle a readable distance.
const paddleKeyStep = 0.06

// statusDuration is how long a transient status message stays visible.
const statusDuration = 3 * time.Second

// Options bundles everything a play session needs besides the engine itself.
type Options struct {
	Config   config.Config    // Profile the engine was configured from
	Store    *storage.Store   // Score storage; nil disables recording
	Saves    *endgame.Manager // Endgame saves; nil disables the save key
	SaveName string           // Name the save key writes to; default "quicksave"
	FPS      int
	ScreenW  int
	ScreenH  int
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	engine *game.Engine
	canvas *Canvas
	store  *storage.Store
	saves  *endgame.Manager
	cfg    config.Config

	keys  *KeyMapper
	input InputFrame

	fps      int
	saveName string

	paused     bool
	quitting   bool
	scoreSaved bool // Whether the score has been recorded for this run

	status      string // Transient message shown in the hint row
	statusTicks int
}

// NewModel creates a Bubble Tea model around a configured engine.
func NewModel(engine *game.Engine, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.SaveName == "" {
		opts.SaveName = "quicksave"
	}
	if opts.ScreenW <= 0 {
		opts.ScreenW = 80
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = 24
	}

	return Model{
		engine:   engine,
		canvas:   NewCanvas(opts.ScreenW, opts.ScreenH),
		store:    opts.Store,
		saves:    opts.Saves,
		cfg:      opts.Config,
		keys:     NewKeyMapper(),
		input:    NewInputFrame(),
		fps:      opts.FPS,
		saveName: opts.SaveName,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// finished reports whether the run has ended, by losing the last life or by
// clearing the final level.
func (m Model) finished() bool {
	return m.engine.GameOver() || (m.engine.LevelComplete() && !m.engine.HasNextLevel())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Pause and save act immediately; the rest feed the input frame and are
	// consumed on the next tick.
	switch action {
	case ActionPause:
		if !m.finished() {
			m.paused = !m.paused
		}
		return m, nil

	case ActionSave:
		if m.paused {
			m.saveEndgame()
		}
		return m, nil

	case ActionNone:
		return m, nil
	}

	m.input.Set(action)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	// Check for restart
	if m.input.Has(ActionRestart) && m.finished() {
		m.restart()
		m.input.Clear()
		return m, tickCmd(m.fps)
	}

	if m.paused {
		m.input.Clear()
		return m, tickCmd(m.fps)
	}

	if m.input.Has(ActionLeft) {
		m.engine.MovePaddleLeft(paddleKeyStep)
	}
	if m.input.Has(ActionRight) {
		m.engine.MovePaddleRight(paddleKeyStep)
	}
	if m.input.Has(ActionLaunch) {
		switch {
		case m.engine.LevelComplete() && m.engine.HasNextLevel():
			m.engine.AdvanceLevel()
		case !m.engine.LevelComplete():
			m.engine.LaunchBall()
		}
	}

	m.engine.Update(1.0 / float64(m.fps))

	// Record the score once per run
	if m.finished() && !m.scoreSaved && m.engine.Score() > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.cfg.PlayerName, m.engine.Score(), m.engine.Level())
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.fps)
}

// restart begins a fresh run. A pinned seed replays identically; a negative
// configured seed rolls a new one from the clock.
func (m *Model) restart() {
	seed := m.cfg.RandomSeed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	m.engine.SetRandomSeed(seed)
	m.engine.NewGame()
	m.scoreSaved = false
	m.paused = false
}

// saveEndgame snapshots the paused game under the configured save name.
func (m *Model) saveEndgame() {
	if m.saves == nil {
		m.setStatus("saving not available")
		return
	}

	snap := m.engine.Snapshot(m.saveName, m.cfg.Name)
	if err := m.saves.Save(snap, m.cfg, true); err != nil {
		m.setStatus("save failed: " + err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("saved endgame %q", m.saveName))
}

// setStatus shows a transient message in the hint row.
func (m *Model) setStatus(text string) {
	m.status = text
	m.statusTicks = int(statusDuration.Seconds() * float64(m.fps))
}

// saveScreenshot dumps the current frame to a text file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.drawFrame()

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".brickstorm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("brickstorm_%s.txt", timestamp))

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.canvas.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawFrame()
	return RenderCanvas(m.canvas)
}

// BuildEngine constructs an engine configured from a profile. A negative
// seed rolls a fresh one from the clock.
func BuildEngine(cfg config.Config) (*game.Engine, error) {
	pack, err := levelpack.Get(cfg.LevelPack)
	if err != nil {
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	eng := game.New(seed)
	eng.SetBallSpeed(config.MapBallSpeed(cfg.BallSpeed))
	eng.SetStartingLevel(cfg.StartingLevel)
	eng.SetLevels(pack.Levels)
	eng.NewGame()
	return eng, nil
}

// Run starts the Bubble Tea program for a configured engine.
func Run(engine *game.Engine, opts Options) error {
	model := NewModel(engine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
