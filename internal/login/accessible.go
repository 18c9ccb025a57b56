package login

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/simplelogin/internal/errors"
	"github.com/rileyhilliard/simplelogin/internal/logger"
	"github.com/rileyhilliard/simplelogin/internal/ui"
)

// accessibleSession runs the login form as plain line prompts. It keeps the
// same inputs, callbacks, and Form as the full-screen Model, so login is gated
// by the same flags.
type accessibleSession struct {
	opts     Options
	actions  Actions
	log      logger.Logger
	form     Form
	username ui.TextInput
	password ui.TextInput
}

func newAccessibleSession(opts Options) *accessibleSession {
	s := &accessibleSession{
		opts:    opts,
		actions: opts.Actions.withDefaults(),
		log:     opts.Logger,
	}
	if s.log == nil {
		s.log = logger.Default()
	}
	s.username = ui.NewTextInput(opts.usernameInput(), func(text string, valid bool) {
		s.form.SetUsernameValid(valid)
	})
	s.password = ui.NewTextInput(opts.passwordInput(), func(text string, valid bool) {
		s.form.SetPasswordValid(valid)
	})
	return s
}

// validator adapts a TextInput to a huh validation func. Only a changed value
// reaches the input, so an untouched empty answer leaves its flag false.
func validator(in *ui.TextInput) func(string) error {
	return func(s string) error {
		if s != in.Value() {
			in.OnTextChanged(s)
		}
		if in.IsError() {
			return fmt.Errorf("%s contains characters that aren't allowed", in.Label())
		}
		return nil
	}
}

// finish runs the login action if the user confirmed and the form allows it.
// It reports whether the action ran.
func (s *accessibleSession) finish(confirmed bool) bool {
	if !confirmed {
		return false
	}
	if !s.form.LoginEnabled() {
		s.log.Debug("login unavailable: username valid=%v password valid=%v",
			s.form.UsernameValid(), s.form.PasswordValid())
		return false
	}
	s.log.Debug("login pressed for %q", s.username.Value())
	s.actions.OnLogin()
	return true
}

// RunAccessible collects the two inputs with line-based huh prompts, for
// terminals that can't host the full-screen screen. It returns the final Form.
func RunAccessible(opts Options, in io.Reader, out io.Writer) (Form, error) {
	s := newAccessibleSession(opts)

	var username, password string
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Welcome to %s!", opts.AppName)).
				Description(opts.Tagline),
			huh.NewInput().
				Title(opts.UsernameLabel).
				Value(&username).
				Validate(validator(&s.username)),
			huh.NewInput().
				Title(opts.PasswordLabel).
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(validator(&s.password)),
			huh.NewConfirm().
				Title(labelLogin).
				Affirmative(labelLogin).
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithAccessible(true).
		WithInput(in).
		WithOutput(out)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return s.form, nil
		}
		return s.form, errors.Wrap(err, "Login prompt failed")
	}

	if confirmed && !s.finish(confirmed) {
		fmt.Fprintln(out, ui.ErrorStyle().Render("Login is unavailable until both fields hold valid input."))
	}

	return s.form, nil
}
