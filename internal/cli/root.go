package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/simplelogin/internal/logger"
	"github.com/rileyhilliard/simplelogin/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
	verbose bool

	rootAccessible bool
)

// rootCmd shows the login screen when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "simplelogin",
	Short: "SimpleLogin - a single-screen terminal login form",
	Long: `SimpleLogin shows a login form with a username and password input.

Each input checks its text against a pattern as you type. The Login button
unlocks once both inputs hold valid text.

Examples:
  simplelogin
  simplelogin login --accessible
  simplelogin --config ./simplelogin.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyGlobalFlags()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return loginCommand(cmd, rootAccessible)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./simplelogin.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVar(&rootAccessible, "accessible", false, "use line-based prompts instead of the full-screen form")
}

// applyGlobalFlags turns the persistent flags into process-wide settings.
func applyGlobalFlags() {
	if verbose {
		os.Setenv(logger.DebugEnv, "1")
	}
	if noColor {
		ui.DisableColors()
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommandError(err) {
			if name := extractUnknownCommand(err); name != "" {
				fmt.Fprintf(os.Stderr, "\n'%s' isn't a simplelogin command.\n", name)
			}
			fmt.Fprintln(os.Stderr, "Run 'simplelogin --help' to see available commands.")
		}
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "simplelogin"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
