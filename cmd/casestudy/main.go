// Command casestudy runs the offline data tools behind the MyPick case study:
// workbook conversion, exploratory analysis and the sales model fit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/config"
	"github.com/promaxdigital/casestudy/internal/logging"
)

// cli carries the state shared by every subcommand once the persistent
// flags have been applied
type cli struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "casestudy",
		Short: "Offline data tools for the MyPick case study",
		Long: `Prepares the data and charts shown by the case-study presentation.

  convert  flattens the source workbook into one CSV per sheet
  eda      summarizes the CSVs and renders the exploratory charts
  fit      fits the base sales model and prints the simulator coefficients
  config   prints or saves the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging, c.verbose)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = logger.With(zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultConfigFile, "Path to the YAML config file")

	root.AddCommand(
		newConvertCmd(c),
		newEDACmd(c),
		newFitCmd(c),
		newConfigCmd(c),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
