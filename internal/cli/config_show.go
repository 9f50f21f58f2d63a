package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MrOrz/git-commit-aider/internal/config"
	"github.com/MrOrz/git-commit-aider/internal/errors"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	root.AddCommand(cmd)
}

// newConfigShowCmd creates the `config show` command, printing the
// effective configuration after all layers are merged.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := GetLogger()

			cfg, err := config.Load(logger.WithContext(cmd.Context()))
			if err != nil {
				return errors.Wrap(err, "loading configuration")
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "rendering configuration")
			}

			if path, err := config.GlobalConfigPath(); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "# global config file: %s\n", path)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
