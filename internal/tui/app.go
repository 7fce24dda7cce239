package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sitstand/internal/store"
)

const (
	frameTitle = " Sit stand timer "
	frameHint  = " q to quit "

	// tickInterval paces the loop and so the redraw rate.
	tickInterval = 5 * time.Millisecond
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	cfg    Config
	width  int
	height int

	timer     intervalTimer
	display   time.Duration // remaining as of the last tick
	started   bool
	quitting  bool
	showStats bool
	showHelp  bool

	setup setupModel
	stats statsModel

	help   help.Model
	status string
	isErr  bool

	now func() time.Time
}

// NewApp builds the root model. Without setup the clock starts immediately.
func NewApp(s *store.Store, cfg Config) App {
	h := help.New()
	h.ShowAll = true

	a := App{
		store: s,
		cfg:   cfg,
		setup: newSetupModel(cfg),
		stats: newStatsModel(s),
		help:  h,
		now:   time.Now,
	}
	if !cfg.Setup {
		a.start(a.now())
	}
	return a
}

// start anchors the clock at now in the Sit phase.
func (a *App) start(now time.Time) {
	a.timer = newIntervalTimer(a.cfg.Sit, a.cfg.Stand, now)
	a.display = a.timer.remaining(now)
	a.started = true
	log.Printf("timer started: sit=%s stand=%s", a.cfg.Sit, a.cfg.Stand)
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.setup.init(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width - 4
		a.stats.setSize(a.width-4, a.height-4)
		if a.setup.active {
			return a.updateSetup(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if a.setup.active {
			return a.updateSetup(msg)
		}
		return a.handleKey(msg)

	case tickMsg:
		return a.tick(time.Time(msg))

	case statusMsg:
		a.status = msg.text
		a.isErr = msg.isError
		return a, nil

	case statsDataMsg:
		var cmd tea.Cmd
		a.stats, cmd = a.stats.update(msg)
		return a, cmd
	}

	if a.setup.active {
		return a.updateSetup(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, keys.Export):
		a.status = "export is not yet supported"
		a.isErr = false
		return a, nil
	case key.Matches(msg, keys.Stats):
		a.showStats = !a.showStats
		if a.showStats {
			return a, a.stats.refresh()
		}
		return a, nil
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		return a, nil
	}
	return a, nil
}

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, forceQuit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, keys.Skip):
			a.finishSetup(a.now())
			return a, nil
		}
	}

	var (
		cmd  tea.Cmd
		done bool
	)
	a.setup, cmd, done = a.setup.update(msg)
	if done {
		a.finishSetup(a.now())
		return a, nil
	}
	return a, cmd
}

func (a *App) finishSetup(now time.Time) {
	a.setup.active = false
	a.cfg.Sit, a.cfg.Stand = a.setup.durations(a.cfg)
	a.start(now)
}

// tick advances the phase before the frame is drawn so a negative reading
// never reaches the screen.
func (a App) tick(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}
	if !a.started {
		return a, tea.Batch(cmds...)
	}

	startedAt := a.timer.lastSwitch
	if ended, switched := a.timer.advance(now); switched {
		next := a.timer.currentPhase()
		a.status = fmt.Sprintf("Time to %s", next)
		a.isErr = false
		// Zero-length phases flip on every tick; they are not logged.
		if planned := a.timer.durationFor(ended); planned > 0 {
			log.Printf("phase %s finished after %s, now %s", ended, now.Sub(startedAt), next)
			if _, err := a.store.RecordPhase(ended.String(), startedAt, now, planned); err != nil {
				a.status = fmt.Sprintf("Session log error: %v", err)
				a.isErr = true
			}
			if a.showStats {
				cmds = append(cmds, a.stats.refresh())
			}
		}
	}
	a.display = a.timer.remaining(now)
	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 {
		return "Loading..."
	}

	var extras []string
	if a.status != "" {
		style := mutedStyle
		if a.isErr {
			style = errorStyle
		}
		extras = append(extras, style.Render(a.status))
	}
	if a.showHelp {
		extras = append(extras, a.help.View(keys))
	}

	// The clock needs at least two lines; drop extras from the end until it fits.
	budget := a.height - 2 - extrasHeight(extras)
	for budget < 2 && len(extras) > 0 {
		extras = extras[:len(extras)-1]
		budget = a.height - 2 - extrasHeight(extras)
	}

	var body string
	switch {
	case a.setup.active:
		body = a.setup.view()
	case a.showStats:
		body = a.stats.view()
	default:
		body = a.renderClock(budget)
	}

	parts := []string{body}
	for _, e := range extras {
		parts = append(parts, "", e)
	}

	return renderFrame(a.width, a.height, frameTitle, frameHint,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// extrasHeight counts the lines taken by the status and help blocks,
// including the blank line above each.
func extrasHeight(extras []string) int {
	h := 0
	for _, e := range extras {
		h += 1 + lipgloss.Height(e)
	}
	return h
}

func (a App) clockText() string {
	return formatClock(a.display)
}

// renderClock draws the countdown and phase label within maxHeight lines,
// using the big font when the frame has room for it.
func (a App) renderClock(maxHeight int) string {
	p := a.timer.currentPhase()
	style := phaseStyle(p)
	clock := a.clockText()
	label := p.String()

	innerW := a.width - 2
	bigClock := bigText(clock)
	bigLabel := bigText(label)
	fitsWidth := lipgloss.Width(bigClock) <= innerW && lipgloss.Width(bigLabel) <= innerW
	fitsHeight := lipgloss.Height(bigClock)+1+lipgloss.Height(bigLabel) <= maxHeight
	if fitsWidth && fitsHeight {
		return lipgloss.JoinVertical(lipgloss.Center,
			style.Render(bigClock),
			"",
			style.Render(bigLabel),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(clock),
		style.Render(label),
	)
}
