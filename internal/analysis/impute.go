package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptyGroup is returned when a missing value has no observed peers
var ErrEmptyGroup = errors.New("no observed values in group")

// Imputation records one filled-in Sales value
type Imputation struct {
	Row      int     `yaml:"row"`
	Location string  `yaml:"location"`
	Type     string  `yaml:"type"`
	Value    float64 `yaml:"value"`
}

// ImputeGroupMean replaces every missing Sales value with the mean Sales of
// the observed records sharing its Location and Type. Means are computed from
// the observed values only, before any replacement.
func ImputeGroupMean(d *SalesData) ([]Imputation, error) {
	missing := d.MissingSales()
	if len(missing) == 0 {
		return nil, nil
	}

	type group struct{ location, kind string }
	observed := make(map[group][]float64)
	for _, r := range d.Records {
		if r.SalesMissing() {
			continue
		}
		g := group{r.Location, r.Type}
		observed[g] = append(observed[g], r.Sales)
	}

	out := make([]Imputation, 0, len(missing))
	for _, i := range missing {
		r := d.Records[i]
		values := observed[group{r.Location, r.Type}]
		if len(values) == 0 {
			return nil, fmt.Errorf("impute row %d (%s, %s): %w", i, r.Location, r.Type, ErrEmptyGroup)
		}
		out = append(out, Imputation{
			Row:      i,
			Location: r.Location,
			Type:     r.Type,
			Value:    stat.Mean(values, nil),
		})
	}

	for _, imp := range out {
		d.Records[imp.Row].Sales = imp.Value
	}
	return out, nil
}
