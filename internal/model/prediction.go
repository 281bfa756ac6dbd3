package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Spend slider bounds, in lakhs
const (
	MinSpend = 0
	MaxSpend = 20
)

// Default simulator state shown when the panel opens
const (
	DefaultDiscountSpend = 5
	DefaultVolumeSpend   = 5
	DefaultResidential   = true
)

// PredictionModel holds the coefficients of the base OLS sales model
type PredictionModel struct {
	Intercept           float64 `yaml:"intercept" json:"intercept"`
	LocationResidential float64 `yaml:"location_residential" json:"location_residential"`
	Discount            float64 `yaml:"discount" json:"discount"`
	Volume              float64 `yaml:"volume" json:"volume"`
}

// DefaultPredictionModel returns the model presented in the case study:
// Sales = 81.13 + 103.12(Loc) + 1.88(Disc) + 0.42(More)
func DefaultPredictionModel() PredictionModel {
	return PredictionModel{
		Intercept:           81.13,
		LocationResidential: 103.12,
		Discount:            1.88,
		Volume:              0.42,
	}
}

// Equation renders the model the way the presentation prints it
func (m PredictionModel) Equation() string {
	return fmt.Sprintf("%s + %s(Loc) + %s(Disc) + %s(More)",
		formatCoefficient(m.Intercept),
		formatCoefficient(m.LocationResidential),
		formatCoefficient(m.Discount),
		formatCoefficient(m.Volume),
	)
}

// SimulatorInput is the user-adjustable part of a forecast
type SimulatorInput struct {
	IsResidential bool `yaml:"is_residential" json:"is_residential"`
	DiscountSpend int  `yaml:"discount_spend" json:"discount_spend"`
	VolumeSpend   int  `yaml:"volume_spend" json:"volume_spend"`
}

// DefaultSimulatorInput returns the initial slider and toggle positions
func DefaultSimulatorInput() SimulatorInput {
	return SimulatorInput{
		IsResidential: DefaultResidential,
		DiscountSpend: DefaultDiscountSpend,
		VolumeSpend:   DefaultVolumeSpend,
	}
}

// Clamped returns a copy with both spends limited to [MinSpend, MaxSpend]
func (in SimulatorInput) Clamped() SimulatorInput {
	in.DiscountSpend = clampSpend(in.DiscountSpend)
	in.VolumeSpend = clampSpend(in.VolumeSpend)
	return in
}

// LocationLabel returns the label shown on the location toggle
func (in SimulatorInput) LocationLabel(m PredictionModel) string {
	if in.IsResidential {
		return fmt.Sprintf("Residential (+%sL)", formatCoefficient(m.LocationResidential))
	}
	return "Commercial (Baseline)"
}

// Breakdown is the per-term contribution of a forecast before rounding
type Breakdown struct {
	Base     decimal.Decimal
	Location decimal.Decimal
	Discount decimal.Decimal
	Volume   decimal.Decimal
}

// Total returns the unrounded forecast
func (b Breakdown) Total() decimal.Decimal {
	return b.Base.Add(b.Location).Add(b.Discount).Add(b.Volume)
}

// Explain evaluates every term of the model for the given input
func Explain(m PredictionModel, in SimulatorInput) Breakdown {
	b := Breakdown{
		Base:     decimal.NewFromFloat(m.Intercept),
		Location: decimal.Zero,
		Discount: decimal.NewFromFloat(m.Discount).Mul(decimal.NewFromInt(int64(in.DiscountSpend))),
		Volume:   decimal.NewFromFloat(m.Volume).Mul(decimal.NewFromInt(int64(in.VolumeSpend))),
	}
	if in.IsResidential {
		b.Location = decimal.NewFromFloat(m.LocationResidential)
	}
	return b
}

// Predict returns the projected annual sales in lakhs, rounded to the nearest
// whole unit (halves round away from zero)
func Predict(m PredictionModel, in SimulatorInput) int64 {
	return Explain(m, in).Total().Round(0).IntPart()
}

func clampSpend(v int) int {
	if v < MinSpend {
		return MinSpend
	}
	if v > MaxSpend {
		return MaxSpend
	}
	return v
}

func formatCoefficient(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
