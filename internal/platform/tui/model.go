package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stadium/internal/camera"
	"github.com/vovakirdan/tui-stadium/internal/commentary"
	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/core"
	"github.com/vovakirdan/tui-stadium/internal/race"
	"github.com/vovakirdan/tui-stadium/internal/scene"
	"github.com/vovakirdan/tui-stadium/internal/sprite"
	"github.com/vovakirdan/tui-stadium/internal/track"
)

// Options configures a race view.
type Options struct {
	Config  config.StadiumConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Provider overrides the commentator named in Config.Commentary.
	Provider commentary.Provider
	// Sprites overrides the ASCII sprite provider.
	Sprites sprite.Provider

	// Context bounds every race of the view. SSH sessions pass the session
	// context so background work stops when the client disconnects.
	Context context.Context
	// DisableScreenshots turns the screenshot key off.
	DisableScreenshots bool
}

// Model is the Bubble Tea model for one stadium: a race engine, the stage and
// camera that present it, and the commentary feed that narrates it.
type Model struct {
	cfg      config.StadiumConfig
	runtime  core.RuntimeConfig
	engine   *race.Engine
	stage    *scene.Stage
	director *camera.Director
	feed     *commentary.Feed
	logger   *log.Logger

	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	results table.Model

	gen        int // race generation, see tick.go
	parentCtx  context.Context
	raceCtx    context.Context
	raceCancel context.CancelFunc

	frame    camera.Frame
	now      time.Time
	line     string
	notice   string
	editing  bool
	quitting bool
}

// NewModel creates a race view with runners lined up.
func NewModel(opts Options) Model {
	cfg := opts.Config
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.FrameRate <= 0 {
		rt.FrameRate = cfg.Camera.FrameRate
	}
	if rt.Runners > 0 {
		cfg.Race.Runners = rt.Runners
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	provider := opts.Provider
	if provider == nil {
		p, err := commentary.Create(cfg.Commentary.Provider, rt.Seed)
		if err != nil {
			logger.Warn("falling back to broadcast commentary", "err", err)
			p = commentary.NewBroadcast(rt.Seed)
		}
		provider = p
	}

	trk := track.New(cfg.Track)
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("%d-%d", config.MinRunners, config.MaxRunners)
	input.CharLimit = 3
	input.Width = 5
	input.Prompt = "Runners: "

	h := help.New()
	h.ShowAll = false

	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	keys := DefaultKeyMap()
	if opts.DisableScreenshots {
		keys.Screenshot.SetEnabled(false)
	}

	ctx, cancel := context.WithCancel(parent)
	m := Model{
		cfg:        cfg,
		runtime:    rt,
		engine:     race.New(cfg.Race, race.WithSeed(rt.Seed)),
		stage:      scene.NewStage(trk, opts.Sprites, cfg.Camera.MarkerBlend),
		director:   camera.NewDirector(cfg.Camera, trk),
		feed:       commentary.NewFeed(provider, cfg.Commentary, logger),
		logger:     logger,
		screen:     core.NewScreen(rt.ScreenW, sceneHeight(rt.ScreenH, false)),
		keys:       keys,
		help:       h,
		input:      input,
		results:    newResultsTable(rt.ScreenH),
		parentCtx:  parent,
		raceCtx:    ctx,
		raceCancel: cancel,
		line:       commentary.WelcomeLine,
	}
	m.help.Width = rt.ScreenW
	return m
}

const startPrompt = "Press S to start"

// sceneHeight is the terminal height left after the HUD, banner and help.
func sceneHeight(height int, fullHelp bool) int {
	chrome := 3
	if fullHelp {
		chrome = 5
	}
	return core.Max(height-chrome, 1)
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.gen, m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.results = newResultsTable(msg.Height)
		m.results.SetRows(resultRows(m.engine.Snapshot()))
		return m, nil

	case SimTickMsg:
		return m.handleSimTick(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case CommentaryTickMsg:
		if msg.Gen != m.gen || m.engine.Status() != race.StatusRacing {
			return m, nil
		}
		return m, tea.Batch(m.fetchCommentary(), commentaryTickCmd(m.gen, m.cfg.Commentary.Interval))

	case CommentaryMsg:
		if msg.Gen == m.gen && msg.Text != "" {
			m.line = msg.Text
		}
		return m, nil
	}

	if m.engine.Status() == race.StatusFinished {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.raceCancel()
		return m, tea.Quit

	case core.ActionStart:
		return m.start()

	case core.ActionReset:
		return m.reset()

	case core.ActionMore:
		return m.setRunners(m.engine.RunnerCount() + 1)

	case core.ActionFewer:
		return m.setRunners(m.engine.RunnerCount() - 1)

	case core.ActionEdit:
		if m.engine.Status() != race.StatusIdle {
			return m, nil
		}
		m.editing = true
		m.input.SetValue(strconv.Itoa(m.engine.RunnerCount()))
		m.input.CursorEnd()
		return m, m.input.Focus()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Arrow keys scroll the results once the race is over.
	if m.engine.Status() == race.StatusFinished {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEditKey routes keys to the runner count editor.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.notice = fmt.Sprintf("not a number: %q", m.input.Value())
			return m, nil
		}
		return m.setRunners(n)

	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil

	case tea.KeyCtrlC:
		m.quitting = true
		m.raceCancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// start begins the race and its clocks.
func (m Model) start() (tea.Model, tea.Cmd) {
	now := time.Now()
	if !m.engine.Start(now) {
		return m, nil
	}

	m.gen++
	m.notice = ""
	m.line = commentary.StartLine
	m.logger.Info("race started", "runners", m.engine.RunnerCount(), "seed", m.runtime.Seed)

	return m, tea.Batch(
		simTickCmd(m.gen, m.engine.TickInterval()),
		frameCmd(m.gen, m.runtime.FrameRate),
		commentaryTickCmd(m.gen, m.cfg.Commentary.Interval),
	)
}

// reset lines the runners up again and drops every clock of the old race.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.raceCancel()
	m.raceCtx, m.raceCancel = context.WithCancel(m.parentCtx)

	m.engine.Reset()
	m.gen++
	m.notice = ""
	m.line = commentary.LinedUpLine
	m.results.SetRows(nil)
	m.logger.Debug("race reset", "runners", m.engine.RunnerCount())

	return m, frameCmd(m.gen, m.runtime.FrameRate)
}

// setRunners changes the field size. Only an idle race can be resized.
func (m Model) setRunners(n int) (tea.Model, tea.Cmd) {
	if m.engine.Status() != race.StatusIdle {
		return m, nil
	}

	clamped := config.ClampRunners(n)
	if clamped != n {
		m.notice = fmt.Sprintf("runner count must be %d-%d", config.MinRunners, config.MaxRunners)
	} else {
		m.notice = ""
	}
	if clamped == m.engine.RunnerCount() {
		return m, nil
	}

	m.engine.SetRunnerCount(clamped)
	m.line = commentary.LinedUpLine
	return m, nil
}

// handleSimTick advances the engine by one step.
func (m Model) handleSimTick(msg SimTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.engine.Status() != race.StatusRacing {
		return m, nil
	}

	res := m.engine.Tick(msg.At)
	for _, id := range res.Finishers {
		snap := m.engine.Snapshot()
		if r, ok := snap.Runner(id); ok {
			m.logger.Debug("runner finished", "runner", r.Label(), "rank", r.Rank)
			if r.Rank == 1 {
				m.line = fmt.Sprintf("%s takes the win!", r.Label())
			}
		}
	}

	if res.RaceFinished {
		snap := m.engine.Snapshot()
		m.results.SetRows(resultRows(snap))
		m.results.GotoTop()
		m.logger.Info("race finished", "elapsed", snap.Elapsed.Round(time.Millisecond), "ticks", snap.Ticks)
		return m, nil
	}

	return m, simTickCmd(m.gen, m.engine.TickInterval())
}

// handleFrame syncs the stage and moves the camera.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	snap := m.engine.Snapshot()
	m.stage.Sync(snap)
	m.frame = m.director.Update(snap, m.stage.Anchor)
	m.now = msg.At

	return m, frameCmd(m.gen, m.runtime.FrameRate)
}

// fetchCommentary asks the feed for a line off the update loop.
func (m Model) fetchCommentary() tea.Cmd {
	feed := m.feed
	ctx := m.raceCtx
	gen := m.gen
	snap := m.engine.Snapshot()

	return func() tea.Msg {
		return CommentaryMsg{Gen: gen, Text: feed.Next(ctx, snap)}
	}
}

// saveScreenshot writes the current scene as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	dir := filepath.Join(home, ".stadium", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("race_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.notice = "saved " + path
}

// Engine returns the race engine driven by the model.
func (m Model) Engine() *race.Engine {
	return m.engine
}

// Commentary returns the current commentary line.
func (m Model) Commentary() string {
	return m.line
}

// View renders the HUD, the scene, the commentary banner and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := core.Max(m.runtime.ScreenW, 1)
	snap := m.engine.Snapshot()
	showResults := snap.Status == race.StatusFinished && len(snap.Ledger) > 0

	sceneW := width
	if showResults {
		sceneW = width - resultsWidth
	}
	sceneH := sceneHeight(m.runtime.ScreenH, m.help.ShowAll)

	var body string
	if sceneW >= minSceneWidth || !showResults {
		m.screen.Resize(core.Max(sceneW, 1), sceneH)
		m.screen.Clear()
		m.stage.Draw(m.screen, m.frame, m.now)
		if snap.Status == race.StatusIdle {
			m.screen.DrawTextCentered(1, startPrompt)
		}
		body = RenderScreen(m.screen)
		if showResults {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, renderResults(m.results))
		}
	} else {
		body = lipgloss.NewStyle().Height(sceneH).Render(renderResults(m.results))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHUD(snap, width),
		body,
		m.renderBanner(width),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program with a new race view.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
