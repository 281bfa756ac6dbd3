package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/analysis"
	"github.com/promaxdigital/casestudy/internal/model"
	"github.com/promaxdigital/casestudy/internal/platform"
)

// fitReport is what the fit command prints
type fitReport struct {
	Fit             *analysis.OLSResult     `yaml:"fit"`
	PredictionModel model.PredictionModel   `yaml:"prediction_model"`
	Equation        string                  `yaml:"equation"`
	PerceptualMap   *analysis.PerceptualMap `yaml:"perceptual_map"`
	Charts          []string                `yaml:"charts,omitempty"`
}

func newFitCmd(c *cli) *cobra.Command {
	var skipCharts bool

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit the base sales model and print the simulator coefficients",
		Long: `Fits ` + analysis.SalesFormula + `
by ordinary least squares on SalesData.csv (missing Sales imputed with the
mean of its Location/Type group) and prints the coefficients the simulator
uses. The Type term is reported but not carried into the simulator.

Also scales the brand similarity ratings into a two-dimensional perceptual
map and renders the residual, Q-Q and perceptual map charts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := c.logger.With(zap.String("run_id", uuid.NewString()))

			sales, ratings, err := loadSourceData(c.cfg.SourceDataDir)
			if err != nil {
				log.Error("cannot load source data", zap.Error(err))
				return err
			}
			imputed, err := analysis.ImputeGroupMean(sales)
			if err != nil {
				log.Error("imputation failed", zap.Error(err))
				return err
			}
			log.Debug("imputed missing sales", zap.Int("count", len(imputed)))

			fit, err := analysis.FitSalesModel(sales)
			if err != nil {
				log.Error("model fit failed", zap.Error(err))
				return err
			}
			pm, err := analysis.PredictionModelFrom(fit)
			if err != nil {
				log.Error("cannot derive prediction model", zap.Error(err))
				return err
			}
			log.Info("model fitted",
				zap.Int("observations", fit.Observations),
				zap.Float64("r_squared", fit.RSquared),
				zap.Float64("adj_r_squared", fit.AdjRSquared),
			)

			pmap, err := analysis.ScalePerceptualMap(ratings)
			if err != nil {
				log.Error("perceptual map failed", zap.Error(err))
				return fmt.Errorf("fit: perceptual map: %w", err)
			}
			log.Info("perceptual map scaled",
				zap.Int("brands", len(pmap.Brands)),
				zap.Float64("stress", pmap.Stress),
			)

			report := fitReport{
				Fit:             fit,
				PredictionModel: pm,
				Equation:        pm.Equation(),
				PerceptualMap:   pmap,
			}
			if !skipCharts {
				paths, err := writeFitCharts(c.cfg.ChartDir, fit, pmap)
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

	cmd.Flags().BoolVar(&skipCharts, "no-charts", false, "Print the fit without rendering charts")
	return cmd
}

// writeFitCharts renders the model diagnostics and the perceptual map into dir
func writeFitCharts(dir string, fit *analysis.OLSResult, pmap *analysis.PerceptualMap) ([]string, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("fit: create chart dir: %w", err)
	}

	jobs := []struct {
		name   string
		render func(path string) error
	}{
		{analysis.ResidualsChart, func(p string) error { return analysis.WriteResidualChart(p, fit) }},
		{analysis.QQChart, func(p string) error { return analysis.WriteQQChart(p, fit) }},
		{analysis.PerceptualMapChart, func(p string) error { return analysis.WritePerceptualMap(p, pmap) }},
	}

	paths := make([]string, 0, len(jobs))
	for _, job := range jobs {
		path := filepath.Join(dir, job.name)
		if err := job.render(path); err != nil {
			return nil, fmt.Errorf("fit: %s: %w", job.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
