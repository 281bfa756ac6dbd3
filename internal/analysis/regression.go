package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/promaxdigital/casestudy/internal/model"
)

// Term names follow treatment coding: the alphabetically first level of each
// factor is the baseline and every other level gets an indicator column.
const (
	TermIntercept = "Intercept"
	// ResidentialLevel is the Location level whose effect the simulator uses
	ResidentialLevel = "Residential"
)

// SalesFormula describes the base model fitted by FitSalesModel
const SalesFormula = "Sales ~ C(Location) + C(Type) + SPDisc + SPMore"

// ErrTooFewObservations is returned when the model has no residual degrees of
// freedom
var ErrTooFewObservations = errors.New("not enough observations for the model")

// Coefficient is one fitted model term
type Coefficient struct {
	Term     string  `yaml:"term"`
	Estimate float64 `yaml:"estimate"`
}

// OLSResult is a fitted ordinary least squares model
type OLSResult struct {
	Formula      string        `yaml:"formula"`
	Observations int           `yaml:"observations"`
	Coefficients []Coefficient `yaml:"coefficients"`
	RSquared     float64       `yaml:"r_squared"`
	AdjRSquared  float64       `yaml:"adj_r_squared"`
	Fitted       []float64     `yaml:"-"`
	Residuals    []float64     `yaml:"-"`
}

// Coefficient returns the estimate for term
func (r *OLSResult) Coefficient(term string) (float64, bool) {
	for _, c := range r.Coefficients {
		if c.Term == term {
			return c.Estimate, true
		}
	}
	return 0, false
}

// FactorTerm names the indicator column of one factor level
func FactorTerm(factor, level string) string {
	return fmt.Sprintf("C(%s)[T.%s]", factor, level)
}

// designMatrix builds X for SalesFormula and returns it with the term names
func designMatrix(d *SalesData) (*mat.Dense, []string) {
	locLevels := Levels(d, ColumnLocation)
	typeLevels := Levels(d, ColumnType)

	terms := []string{TermIntercept}
	for _, l := range locLevels[1:] {
		terms = append(terms, FactorTerm(ColumnLocation, l))
	}
	for _, l := range typeLevels[1:] {
		terms = append(terms, FactorTerm(ColumnType, l))
	}
	terms = append(terms, ColumnSPDisc, ColumnSPMore)

	x := mat.NewDense(d.Len(), len(terms), nil)
	for i, r := range d.Records {
		col := 0
		x.Set(i, col, 1)
		col++
		for _, l := range locLevels[1:] {
			if r.Location == l {
				x.Set(i, col, 1)
			}
			col++
		}
		for _, l := range typeLevels[1:] {
			if r.Type == l {
				x.Set(i, col, 1)
			}
			col++
		}
		x.Set(i, col, r.SPDisc)
		x.Set(i, col+1, r.SPMore)
	}
	return x, terms
}

// FitSalesModel fits SalesFormula by least squares. Sales must not contain
// missing values; run ImputeGroupMean first.
func FitSalesModel(d *SalesData) (*OLSResult, error) {
	if d.Len() == 0 {
		return nil, fmt.Errorf("fit: %w", ErrTooFewObservations)
	}
	if missing := d.MissingSales(); len(missing) > 0 {
		return nil, fmt.Errorf("fit: %d missing sales values", len(missing))
	}

	x, terms := designMatrix(d)
	n, p := x.Dims()
	if n <= p {
		return nil, fmt.Errorf("fit: %d rows for %d terms: %w", n, p, ErrTooFewObservations)
	}

	sales, err := d.Column(ColumnSales)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	y := mat.NewVecDense(n, sales)

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return nil, fmt.Errorf("fit: solve least squares: %w", err)
	}

	var fittedVec mat.VecDense
	fittedVec.MulVec(x, &beta)
	fitted := make([]float64, n)
	residuals := make([]float64, n)
	for i := 0; i < n; i++ {
		fitted[i] = fittedVec.AtVec(i)
		residuals[i] = sales[i] - fitted[i]
	}

	mean := stat.Mean(sales, nil)
	var sst float64
	for _, v := range sales {
		sst += (v - mean) * (v - mean)
	}
	ssr := floats.Dot(residuals, residuals)

	r2 := 0.0
	if sst > 0 {
		r2 = 1 - ssr/sst
	}
	adj := 1 - (1-r2)*float64(n-1)/float64(n-p)

	coefs := make([]Coefficient, p)
	for i, t := range terms {
		coefs[i] = Coefficient{Term: t, Estimate: beta.AtVec(i)}
	}

	return &OLSResult{
		Formula:      SalesFormula,
		Observations: n,
		Coefficients: coefs,
		RSquared:     r2,
		AdjRSquared:  adj,
		Fitted:       fitted,
		Residuals:    residuals,
	}, nil
}

// PredictionModelFrom extracts the simulator coefficients from a fitted base
// model. The Type effect is left out, matching the presented equation.
func PredictionModelFrom(r *OLSResult) (model.PredictionModel, error) {
	lookup := func(term string) (float64, error) {
		v, ok := r.Coefficient(term)
		if !ok {
			return 0, fmt.Errorf("prediction model: term %s not in fit", term)
		}
		return v, nil
	}

	var (
		m   model.PredictionModel
		err error
	)
	if m.Intercept, err = lookup(TermIntercept); err != nil {
		return m, err
	}
	if m.LocationResidential, err = lookup(FactorTerm(ColumnLocation, ResidentialLevel)); err != nil {
		return m, err
	}
	if m.Discount, err = lookup(ColumnSPDisc); err != nil {
		return m, err
	}
	if m.Volume, err = lookup(ColumnSPMore); err != nil {
		return m, err
	}
	return m, nil
}
