package login

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/simplelogin/internal/config"
	"github.com/rileyhilliard/simplelogin/internal/logger"
	"github.com/rileyhilliard/simplelogin/internal/ui"
)

// Control identifies a focusable element of the screen, in focus order.
type Control int

const (
	ControlUsername Control = iota
	ControlPassword
	ControlLogin
	ControlForgotPassword
	ControlRegister
	controlCount
)

// String returns a human-readable control name.
func (c Control) String() string {
	switch c {
	case ControlUsername:
		return "username"
	case ControlPassword:
		return "password"
	case ControlLogin:
		return "login"
	case ControlForgotPassword:
		return "forgot-password"
	case ControlRegister:
		return "register"
	default:
		return "unknown"
	}
}

func (c Control) isInput() bool {
	return c == ControlUsername || c == ControlPassword
}

// Actions are the callbacks behind the three buttons. Nil entries do nothing.
type Actions struct {
	OnLogin          func()
	OnForgotPassword func()
	OnRegister       func()
}

func (a Actions) withDefaults() Actions {
	noop := func() {}
	if a.OnLogin == nil {
		a.OnLogin = noop
	}
	if a.OnForgotPassword == nil {
		a.OnForgotPassword = noop
	}
	if a.OnRegister == nil {
		a.OnRegister = noop
	}
	return a
}

// Options configures the login screen.
type Options struct {
	AppName         string
	Tagline         string
	UsernameLabel   string
	UsernamePattern string
	PasswordLabel   string
	PasswordPattern string
	ShowLogo        bool
	Actions         Actions
	Logger          logger.Logger
}

// OptionsFromConfig maps a loaded config onto screen options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		AppName:         cfg.AppName,
		Tagline:         cfg.Tagline,
		UsernameLabel:   cfg.Username.Label,
		UsernamePattern: cfg.Username.Pattern,
		PasswordLabel:   cfg.Password.Label,
		PasswordPattern: cfg.Password.Pattern,
		ShowLogo:        cfg.Output.Logo,
	}
}

// DefaultOptions returns the built-in screen.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

func (o Options) usernameInput() ui.TextInputConfig {
	return ui.TextInputConfig{
		Label:   o.UsernameLabel,
		Kind:    ui.InputPlain,
		Submit:  ui.SubmitNext,
		Pattern: o.UsernamePattern,
	}
}

func (o Options) passwordInput() ui.TextInputConfig {
	return ui.TextInputConfig{
		Label:   o.PasswordLabel,
		Kind:    ui.InputSecret,
		Submit:  ui.SubmitDefault,
		Pattern: o.PasswordPattern,
	}
}

// Model is the Bubble Tea model for the login screen.
type Model struct {
	opts    Options
	actions Actions
	log     logger.Logger

	form     Form
	username ui.TextInput
	password ui.TextInput
	focus    Control

	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a login screen with empty inputs, the username focused,
// and the login button disabled.
func NewModel(opts Options) *Model {
	m := &Model{
		opts:    opts,
		actions: opts.Actions.withDefaults(),
		log:     opts.Logger,
		focus:   ControlUsername,
		help:    help.New(),
	}
	if m.log == nil {
		m.log = logger.Default()
	}

	// Each input reports only into its own flag.
	m.username = ui.NewTextInput(opts.usernameInput(), func(text string, valid bool) {
		m.form.SetUsernameValid(valid)
	})
	m.password = ui.NewTextInput(opts.passwordInput(), func(text string, valid bool) {
		m.form.SetPasswordValid(valid)
	})

	m.username.Focus()
	m.resize()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, keys.Activate):
			return m, m.activate()
		case key.Matches(msg, keys.Press) && !m.focus.isInput():
			return m, m.activate()
		}
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards msg to the inputs. Only the focused one reacts.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var userCmd, passCmd tea.Cmd
	m.username, userCmd = m.username.Update(msg)
	m.password, passCmd = m.password.Update(msg)
	return tea.Batch(userCmd, passCmd)
}

// moveFocus steps focus by dir, wrapping around and skipping a disabled
// login button.
func (m *Model) moveFocus(dir int) tea.Cmd {
	next := m.focus
	for i := 0; i < int(controlCount); i++ {
		next = Control((int(next) + dir + int(controlCount)) % int(controlCount))
		if next == ControlLogin && !m.form.LoginEnabled() {
			continue
		}
		break
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(c Control) tea.Cmd {
	if c == m.focus {
		return nil
	}
	m.username.Blur()
	m.password.Blur()
	m.focus = c

	switch c {
	case ControlUsername:
		return m.username.Focus()
	case ControlPassword:
		return m.password.Focus()
	}
	return nil
}

// activate handles enter (and space on buttons) for the focused control.
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case ControlUsername:
		return m.submitInput(m.username)
	case ControlPassword:
		return m.submitInput(m.password)
	case ControlLogin:
		if !m.form.LoginEnabled() {
			return nil
		}
		m.log.Debug("login pressed for %q", m.username.Value())
		m.actions.OnLogin()
	case ControlForgotPassword:
		m.log.Debug("forgot password pressed")
		m.actions.OnForgotPassword()
	case ControlRegister:
		m.log.Debug("register pressed")
		m.actions.OnRegister()
	}
	return nil
}

func (m *Model) submitInput(in ui.TextInput) tea.Cmd {
	if in.Submit() == ui.SubmitNext {
		return m.moveFocus(1)
	}
	return nil
}

// Focus returns the focused control.
func (m *Model) Focus() Control {
	return m.focus
}

// Form returns the mirrored validity flags.
func (m *Model) Form() Form {
	return m.form
}

// LoginEnabled reports whether the login button is enabled.
func (m *Model) LoginEnabled() bool {
	return m.form.LoginEnabled()
}

// Username returns the username input.
func (m *Model) Username() ui.TextInput {
	return m.username
}

// Password returns the password input.
func (m *Model) Password() ui.TextInput {
	return m.password
}
