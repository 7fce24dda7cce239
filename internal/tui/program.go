package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/sitstand/internal/store"
)

// NewProgram wires an App into a full-screen Bubble Tea program. The
// program owns the terminal: raw mode and the alternate screen are
// released on every exit path of Run.
func NewProgram(s *store.Store, cfg Config, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(NewApp(s, cfg), opts...)
}

// Run blocks until the user quits or the terminal fails.
func Run(s *store.Store, cfg Config, opts ...tea.ProgramOption) error {
	_, err := NewProgram(s, cfg, opts...).Run()
	return err
}
