package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// setupModel asks for the two phase lengths before the clock starts.
type setupModel struct {
	active bool
	form   *huh.Form

	// Form values as pointers (survive value copies)
	sitMinutes   *string
	standMinutes *string
}

func newSetupModel(cfg Config) setupModel {
	sit := strconv.FormatInt(int64(cfg.Sit/time.Minute), 10)
	stand := strconv.FormatInt(int64(cfg.Stand/time.Minute), 10)
	m := setupModel{
		active:       cfg.Setup,
		sitMinutes:   &sit,
		standMinutes: &stand,
	}
	if m.active {
		m.form = m.buildForm()
	}
	return m
}

func (m setupModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sit time (min)").
				Validate(validateMinutes("sit time")).
				Value(m.sitMinutes),
			huh.NewInput().
				Title("Stand time (min)").
				Validate(validateMinutes("stand time")).
				Value(m.standMinutes),
		).Title("Sit stand timer"),
	).WithShowHelp(true).WithShowErrors(true)
}

func validateMinutes(name string) func(string) error {
	return func(s string) error {
		_, err := parseMinutes(name, s)
		return err
	}
}

func (m setupModel) init() tea.Cmd {
	if !m.active || m.form == nil {
		return nil
	}
	return m.form.Init()
}

// update feeds msg to the form. done is true once the form completed.
func (m setupModel) update(msg tea.Msg) (setupModel, tea.Cmd, bool) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.active = false
		return m, nil, true
	}
	return m, cmd, false
}

// durations returns the entered lengths, falling back to cfg for anything
// that does not parse.
func (m setupModel) durations(cfg Config) (time.Duration, time.Duration) {
	sit, err := parseMinutes("sit time", *m.sitMinutes)
	if err != nil {
		sit = cfg.Sit
	}
	stand, err := parseMinutes("stand time", *m.standMinutes)
	if err != nil {
		stand = cfg.Stand
	}
	return sit, stand
}

func (m setupModel) view() string {
	if m.form == nil {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.form.View(),
		"",
		mutedStyle.Render("esc: keep these values  ctrl+c: quit"),
	)
}
