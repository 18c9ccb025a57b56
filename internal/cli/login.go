package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/simplelogin/internal/config"
	"github.com/rileyhilliard/simplelogin/internal/errors"
	"github.com/rileyhilliard/simplelogin/internal/logger"
	"github.com/rileyhilliard/simplelogin/internal/login"
	"github.com/rileyhilliard/simplelogin/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DebugLogFile receives debug logs while the full-screen form owns the terminal.
const DebugLogFile = "simplelogin-debug.log"

var loginAccessible bool

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

// loginCmd shows the login screen
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Show the login screen",
	Long: `Show the login form.

The full-screen form needs an interactive terminal. Use --accessible for
line-based prompts that work with screen readers and piped input.

Keys:
  tab / shift+tab   Move between controls
  enter / space     Press the focused button
  ctrl+r            Show or hide the password
  esc               Quit

Examples:
  simplelogin login
  simplelogin login --accessible`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return loginCommand(cmd, loginAccessible)
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginAccessible, "accessible", false, "use line-based prompts instead of the full-screen form")
	rootCmd.AddCommand(loginCmd)
}

func loginCommand(cmd *cobra.Command, accessible bool) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	log := logger.Default()
	if path != "" {
		log.Debug("loaded config from %s", path)
	} else {
		log.Debug("no config file found, using defaults")
	}

	applyColorMode(cfg.Output.Color)
	opts := login.OptionsFromConfig(cfg)

	if accessible {
		opts.Logger = log
		opts.Actions = stubActions(log)
		_, err := login.RunAccessible(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		return err
	}

	if !isTerminal(int(os.Stdin.Fd())) {
		return errors.NewNoTerminal()
	}

	screenLog, closeLog, err := screenLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	opts.Logger = screenLog
	opts.Actions = stubActions(screenLog)

	return login.Run(opts, os.Stdin, cmd.OutOrStdout())
}

// stubActions stand in for a backend. Each button only records that it ran.
func stubActions(log logger.Logger) login.Actions {
	return login.Actions{
		OnLogin:          func() { log.Debug("no login backend configured") },
		OnForgotPassword: func() { log.Debug("no password reset backend configured") },
		OnRegister:       func() { log.Debug("no registration backend configured") },
	}
}

// screenLogger returns the logger to use while the TUI owns the terminal.
// Debug output goes to DebugLogFile; otherwise nothing is logged.
func screenLogger() (logger.Logger, func(), error) {
	if os.Getenv(logger.DebugEnv) == "" {
		return logger.Noop(), func() {}, nil
	}

	f, err := tea.LogToFile(DebugLogFile, "simplelogin")
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't open the debug log "+DebugLogFile,
			"Check you can write to the current directory, or unset "+logger.DebugEnv)
	}

	return logger.NewEnvLoggerWithOutput("simplelogin", f), func() { f.Close() }, nil
}

// applyColorMode applies output.color from config. --no-color always wins.
func applyColorMode(mode string) {
	switch {
	case noColor || mode == "never":
		ui.DisableColors()
	case mode == "always":
		ui.ForceColors()
	}
}
