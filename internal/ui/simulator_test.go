package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/model"
)

func newTestSimulator(t *testing.T) *SimulatorPanel {
	t.Helper()
	test.NewApp()
	m := model.DefaultPredictionModel()
	return NewSimulatorPanel(m, content.Default(m).Simulator, zap.NewNop())
}

func TestSimulatorPanel_Defaults(t *testing.T) {
	s := newTestSimulator(t)

	assert.Equal(t, model.DefaultSimulatorInput(), s.Input())
	assert.Equal(t, int64(196), s.Projected())
	assert.Equal(t, "196", s.result.Text)
	assert.Equal(t, "Residential (+103.12L)", s.locationBtn.Text)
	assert.Equal(t, "5 L", s.discountValue.Text)
	assert.Equal(t, 5.0, s.discountSlider.Value)
}

func TestSimulatorPanel_ToggleLocation(t *testing.T) {
	s := newTestSimulator(t)

	test.Tap(s.locationBtn)
	assert.False(t, s.Input().IsResidential)
	assert.Equal(t, "Commercial (Baseline)", s.locationBtn.Text)
	// 81.13 + 9.40 + 2.10 = 92.63
	assert.Equal(t, "93", s.result.Text)

	test.Tap(s.locationBtn)
	assert.Equal(t, "196", s.result.Text)
}

func TestSimulatorPanel_Spends(t *testing.T) {
	s := newTestSimulator(t)

	tests := []struct {
		name       string
		disc, vol  int
		wantDisc   int
		wantVol    int
		wantResult string
	}{
		{"max both", 20, 20, 20, 20, "230"},
		{"min both", 0, 0, 0, 0, "184"},
		{"clamped", 25, -3, 20, 0, "222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetDiscount(tt.disc)
			s.SetVolume(tt.vol)
			assert.Equal(t, tt.wantDisc, s.Input().DiscountSpend)
			assert.Equal(t, tt.wantVol, s.Input().VolumeSpend)
			assert.Equal(t, float64(tt.wantDisc), s.discountSlider.Value)
			assert.Equal(t, float64(tt.wantVol), s.volumeSlider.Value)
			assert.Equal(t, tt.wantResult, s.result.Text)
		})
	}
}
