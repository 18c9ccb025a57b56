// Package cli implements the simplelogin command-line interface.
//
// Each Cobra command loads config and hands off to the packages that do the
// work: internal/config for files and overrides, internal/login for the
// screen itself.
//
// # Command Structure
//
//	simplelogin                  - Show the login screen
//	simplelogin login            - Same, with --accessible for line prompts
//	simplelogin config init      - Write simplelogin.yaml with defaults
//	simplelogin config show      - Print the resolved config
//	simplelogin version          - Print build info
//	simplelogin completion       - Generate shell completions
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and apply to every subcommand. --verbose sets SIMPLELOGIN_DEBUG for
// the process. While the full-screen form is up, debug logs go to
// simplelogin-debug.log instead of the terminal.
package cli
