package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/promaxdigital/casestudy/internal/analysis"
)

func newEDACmd(c *cli) *cobra.Command {
	var skipCharts bool

	cmd := &cobra.Command{
		Use:   "eda",
		Short: "Summarize the converted CSVs and render the exploratory charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := c.logger.With(zap.String("run_id", uuid.NewString()))

			sales, ratings, err := loadSourceData(c.cfg.SourceDataDir)
			if err != nil {
				log.Error("cannot load source data", zap.Error(err))
				return err
			}
			log.Info("source data loaded",
				zap.Int("sales_rows", sales.Len()),
				zap.Int("respondents", ratings.Respondents()),
			)

			report, err := analysis.RunEDA(sales, ratings)
			if err != nil {
				log.Error("analysis failed", zap.Error(err))
				return err
			}
			for _, imp := range report.Imputations {
				log.Debug("imputed sales",
					zap.Int("row", imp.Row),
					zap.String("location", imp.Location),
					zap.String("type", imp.Type),
					zap.Float64("value", imp.Value),
				)
			}

			if !skipCharts {
				paths, err := analysis.WriteEDACharts(c.cfg.ChartDir, sales, report)
				if err != nil {
					log.Error("chart rendering failed", zap.Error(err))
					return err
				}
				report.Charts = paths
				log.Info("charts written", zap.String("dir", c.cfg.ChartDir), zap.Int("count", len(paths)))
			}

			return printYAML(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&skipCharts, "no-charts", false, "Print the summary without rendering charts")
	return cmd
}

// loadSourceData reads the two CSVs written by convert
func loadSourceData(dir string) (*analysis.SalesData, *analysis.BrandRatings, error) {
	sales, err := analysis.LoadSalesFile(filepath.Join(dir, analysis.SalesFileName))
	if err != nil {
		return nil, nil, err
	}
	ratings, err := analysis.LoadRatingsFile(filepath.Join(dir, analysis.RatingsFileName))
	if err != nil {
		return nil, nil, err
	}
	return sales, ratings, nil
}

func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
