package cli

import (
	"fmt"

	"github.com/rileyhilliard/simplelogin/internal/config"
	"github.com/rileyhilliard/simplelogin/internal/errors"
	"github.com/spf13/cobra"
)

var configForce bool

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage simplelogin.yaml",
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create simplelogin.yaml with defaults",
	Long: `Write a simplelogin.yaml with the built-in defaults.

The file goes to the --config path if given, otherwise the current directory.

Examples:
  simplelogin config init
  simplelogin config init --force
  simplelogin --config ~/.config/simplelogin/config.yaml config init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInitCommand(cmd, configForce)
	},
}

// configShowCmd prints the resolved config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the login screen would use, after applying
the config file, .env, and SIMPLELOGIN_* environment overrides.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd)
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite existing config")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func configInitCommand(cmd *cobra.Command, force bool) error {
	path := cfgFile
	if path == "" {
		path = config.ConfigFileName
	}

	if err := config.Write(path, config.DefaultConfig(), force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func configShowCommand(cmd *cobra.Command) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to render config",
			"This is a bug, please report it")
	}

	source := path
	if source == "" {
		source = "built-in defaults"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
