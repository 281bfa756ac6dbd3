package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCmd(c *cli) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after defaults, the config file, .env and
CASESTUDY_* overrides have been applied. With --write the result is saved to
the --config path so it can be edited by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				if err := c.cfg.Save(c.configPath); err != nil {
					c.logger.Error("cannot save config", zap.Error(err))
					return err
				}
				c.logger.Info("config saved", zap.String("path", c.configPath))
				fmt.Fprintf(cmd.OutOrStdout(), "# written to %s\n", c.configPath)
			}
			return printYAML(cmd, c.cfg)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Save the effective configuration to the --config path")
	return cmd
}
