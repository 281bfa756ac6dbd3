package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promaxdigital/casestudy/internal/model"
)

func TestDefault_UsesPresentedModel(t *testing.T) {
	cs := Default(model.DefaultPredictionModel())

	assert.Equal(t, "Sales = 81.13 + 103.12*(Loc=Residential) + 1.88*(SPDisc) + 0.42*(SPMore)", cs.Modeling.Equation)
	assert.Equal(t, "Impact: +1.88x ROI", cs.Simulator.DiscountImpact)
	assert.Equal(t, "Impact: +0.42x (Inefficient)", cs.Simulator.VolumeImpact)
	assert.Equal(t, "+103L", cs.Modeling.Stats[1].Value)
	assert.Equal(t, "1.88x", cs.Modeling.Stats[2].Value)
	assert.Contains(t, cs.Conclusion.Verdicts[0].Body, "103 Lakhs/year")
}

func TestDefault_InitialPanelsExist(t *testing.T) {
	cs := Default(model.DefaultPredictionModel())

	tests := []struct {
		name     string
		findings []Finding
		initial  model.PanelKey
	}{
		{"framing evidence", cs.Framing.Findings, cs.Framing.DefaultFinding},
		{"modeling assumptions", cs.Modeling.Assumptions, cs.Modeling.DefaultAssumption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[model.PanelKey]bool)
			found := false
			for _, f := range tt.findings {
				require.NotEqual(t, model.NoPanel, f.Key)
				require.False(t, seen[f.Key], "duplicate key %q", f.Key)
				seen[f.Key] = true
				if f.Key == tt.initial {
					found = true
				}
			}
			assert.True(t, found, "initial key %q must name an item", tt.initial)
		})
	}
}

func TestDefault_AuditStatuses(t *testing.T) {
	cs := Default(model.DefaultPredictionModel())

	statuses := make(map[model.PanelKey]model.AuditStatus)
	for _, f := range cs.Modeling.Assumptions {
		statuses[f.Key] = f.Status
	}
	assert.Equal(t, model.AuditPassed, statuses[AssumptionNormality])
	assert.Equal(t, model.AuditPassed, statuses[AssumptionMulticollinearity])
	assert.Equal(t, model.AuditFailed, statuses[AssumptionHomoscedasticity])
}

func TestDefault_SingleSimulatorLink(t *testing.T) {
	cs := Default(model.DefaultPredictionModel())

	links := 0
	for _, v := range cs.Conclusion.Verdicts {
		if v.OpensSimulator {
			links++
			assert.Equal(t, "Pivot to Residential", v.Title)
		}
	}
	assert.Equal(t, 1, links)
}

func TestFigures(t *testing.T) {
	cs := Default(model.DefaultPredictionModel())

	var assets []string
	for _, f := range cs.Figures() {
		assert.NotEmpty(t, f.Caption, f.Asset)
		assets = append(assets, f.Asset)
	}
	assert.Equal(t, []string{
		AssetContextPhoto,
		AssetUnivariate,
		AssetRespondentVariance,
		AssetIdealProximity,
		AssetTopPairs,
		AssetQQPlot,
		AssetResidualsVsFitted,
		AssetPerceptualMap,
	}, assets)
}

func TestRegressionEquation_FollowsModel(t *testing.T) {
	m := model.PredictionModel{Intercept: 80, LocationResidential: 100.5, Discount: 2, Volume: 0.125}
	assert.Equal(t, "Sales = 80.00 + 100.50*(Loc=Residential) + 2.00*(SPDisc) + 0.12*(SPMore)", RegressionEquation(m))
}
