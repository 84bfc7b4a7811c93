package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forest-run/internal/core"
	"github.com/vovakirdan/forest-run/internal/registry"
	"github.com/vovakirdan/forest-run/internal/storage"
)

// Options carries the platform services a game model uses.
type Options struct {
	// Store receives every finished run. Nil disables history.
	Store *storage.Store

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// Player names the session in logs (the SSH user, or "local").
	Player string

	// DevMode starts the variant with the scoring multiplier on.
	DevMode bool

	// HoldWindow overrides DefaultHoldWindow; Now overrides the wall clock
	// used for key holds.
	HoldWindow time.Duration
	Now        func() time.Time
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// levelCounter is implemented by variants that know how many levels they play.
type levelCounter interface {
	Levels() int
}

// GameModel is the Bubble Tea model that drives one variant.
//
// Key presses become held intents or discrete actions; frames are only
// scheduled while the variant's frame clock runs, and every frame carries
// the clock generation it was requested under.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	player string

	keys  *KeyMapper
	holds *HoldTracker
	help  help.Model
	cheat cheatPrompt

	state      core.GameState
	notice     string
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game and resets it into its menu.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game.Reset(cfg)
	if opts.DevMode {
		game.SetDeveloperMode(true)
	}

	player := opts.Player
	if player == "" {
		player = "local"
	}

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH)),
		store:  opts.Store,
		logger: opts.logger().With("game", game.ID(), "player", player),
		config: cfg,
		player: player,
		keys:   NewKeyMapper(),
		holds:  NewHoldTracker(opts.HoldWindow, opts.Now),
		help:   help.New(),
		cheat:  newCheatPrompt(),
		state:  game.State(),
	}
}

// Init implements tea.Model. The variant waits in its menu, so no frame is
// scheduled until it starts playing.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case RefreshMsg:
		m.state = m.game.State()
		return m, m.refreshIfWaiting()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cheat.active {
		res, code, cmd := m.cheat.update(msg)
		if res == cheatSubmitted {
			if m.game.UnlockDeveloperMode(code) {
				m.notice = "developer mode on"
				m.logger.Info("developer mode unlocked")
			} else {
				m.notice = "wrong code"
			}
			m.state = m.game.State()
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.IsCheat(msg) && !m.state.Running() {
		m.notice = ""
		return m, m.cheat.open()
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.game.Clock().Stop()
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action)
	case core.ActionJump:
		m.holds.Pulse(action)
	case core.ActionConfirm, core.ActionRestart, core.ActionNextLevel:
		m.notice = ""
		m.holds.Release()
		return m.afterResult(m.game.Dispatch(action))
	case core.ActionBack:
		if m.state.Running() {
			return m, nil
		}
		m.game.Clock().Stop()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

// handleTick runs one simulation frame if its generation is still current.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	clock := m.game.Clock()
	if !clock.Accept(msg.Gen) {
		return m, nil
	}

	next, cmd := m.afterResult(m.game.Step(m.holds.Frame()))
	if clock.Running() && clock.Generation() == msg.Gen {
		cmd = tea.Batch(cmd, tickCmd(next.config.TickRate, msg.Gen))
	}
	return next, cmd
}

// afterResult logs events, records finished runs and schedules the first
// frame of a new clock generation.
func (m GameModel) afterResult(res core.StepResult) (GameModel, tea.Cmd) {
	m.state = res.State

	var cmds []tea.Cmd
	for _, ev := range res.Events {
		m.logEvent(ev)
		switch ev.Kind {
		case core.EventWon:
			m.saveRun(ev, storage.OutcomeWon)
			cmds = append(cmds, m.refreshIfWaiting())
		case core.EventLost:
			m.saveRun(ev, storage.OutcomeLost)
		}
	}

	if gen, ok := m.game.Clock().Pending(); ok {
		cmds = append(cmds, tickCmd(m.config.TickRate, gen))
	}
	return m, tea.Batch(cmds...)
}

// refreshIfWaiting polls for the next-level prompt after a level is won.
func (m GameModel) refreshIfWaiting() tea.Cmd {
	if m.state.Phase != core.PhaseWon || m.state.CanAdvance {
		return nil
	}
	if lc, ok := m.game.(levelCounter); ok && m.state.Level >= lc.Levels() {
		return nil
	}
	return refreshCmd(250 * time.Millisecond)
}

func (m GameModel) logEvent(ev core.Event) {
	kv := []any{"event", ev.Kind.String(), "score", ev.Score, "level", ev.Level}
	if ev.Detail != "" {
		kv = append(kv, "detail", ev.Detail)
	}
	switch ev.Kind {
	case core.EventWon, core.EventLost, core.EventStarted, core.EventLevelStarted:
		m.logger.Info("run", kv...)
	default:
		m.logger.Debug("run", kv...)
	}
}

func (m GameModel) saveRun(ev core.Event, outcome storage.Outcome) {
	if m.store == nil {
		return
	}
	rec := storage.RunRecord{
		GameID:  m.game.ID(),
		Score:   ev.Score,
		Level:   ev.Level,
		Outcome: outcome,
		DevMode: m.state.DevMode,
	}
	if outcome == storage.OutcomeLost {
		rec.LossReason = ev.Detail
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Error("cannot save run", "err", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".forestrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// fieldRows leaves the bottom terminal row for help and prompts.
func fieldRows(h int) int {
	if h > 2 {
		return h - 1
	}
	return h
}

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	switch {
	case m.cheat.active:
		view += "\n" + m.cheat.view()
	case m.notice != "":
		view += "\n" + noticeStyle.Render(m.notice)
	case !m.state.Running():
		view += "\n" + m.help.View(m.keys.Keys())
	}
	return view
}

// State returns the last state reported by the variant.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single variant in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
