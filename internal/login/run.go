package login

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/simplelogin/internal/errors"
)

// Run shows the full-screen login screen until the user quits.
func Run(opts Options, in io.Reader, out io.Writer) error {
	m := NewModel(opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"Login screen failed",
			"Try again, or run with --accessible for line-based prompts.")
	}
	return nil
}
