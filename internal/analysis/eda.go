package analysis

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// StraightLinerThreshold is the respondent standard deviation below which a
// respondent is treated as not discriminating between brands
const StraightLinerThreshold = 0.5

// TopPairCount is the number of brand pairs kept in the clumping ranking
const TopPairCount = 15

// IdealBrandCode is the survey code of the hypothetical ideal brand
const IdealBrandCode = "7"

// BrandNames maps survey brand codes to names
var BrandNames = map[string]string{
	"1": "MDH",
	"2": "Priya",
	"3": "MyPick",
	"4": "Ruchi",
	"5": "Nolin",
	"6": "Mother",
	"7": "Ideal",
}

// BrandName returns the name for a survey code, or "Brand <code>"
func BrandName(code string) string {
	if name, ok := BrandNames[code]; ok {
		return name
	}
	return "Brand " + code
}

// RespondentSpread is the rating dispersion of one respondent
type RespondentSpread struct {
	Case   string  `yaml:"case"`
	StdDev float64 `yaml:"std_dev"`
}

// BrandSimilarity is a mean similarity rating (7 = identical)
type BrandSimilarity struct {
	Label string  `yaml:"label"`
	Mean  float64 `yaml:"mean"`
}

// CorrelationMatrix holds pairwise Pearson correlations
type CorrelationMatrix struct {
	Names  []string    `yaml:"names"`
	Values [][]float64 `yaml:"values"`
}

// At returns the correlation between the named variables
func (c CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, n := range c.Names {
		if n == a {
			i = k
		}
		if n == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return c.Values[i][j], true
}

// RespondentStdDevs returns the sample standard deviation of each respondent's
// ratings across all rating columns
func RespondentStdDevs(b *BrandRatings) []RespondentSpread {
	out := make([]RespondentSpread, b.Respondents())
	for i, row := range b.Ratings {
		out[i] = RespondentSpread{Case: b.Cases[i], StdDev: stat.StdDev(row, nil)}
	}
	return out
}

// StraightLiners filters respondents whose spread is below threshold
func StraightLiners(spreads []RespondentSpread, threshold float64) []RespondentSpread {
	var out []RespondentSpread
	for _, s := range spreads {
		if s.StdDev < threshold {
			out = append(out, s)
		}
	}
	return out
}

// IdealProximity ranks every brand by its mean similarity to the ideal brand,
// most similar first. Only pair columns of the form B<x>7 or B7<x> count.
func IdealProximity(b *BrandRatings) []BrandSimilarity {
	var out []BrandSimilarity
	for j, col := range b.Columns {
		codes, ok := pairCodes(col)
		if !ok {
			continue
		}
		var other string
		switch IdealBrandCode {
		case codes[0]:
			other = codes[1]
		case codes[1]:
			other = codes[0]
		default:
			continue
		}
		out = append(out, BrandSimilarity{
			Label: BrandName(other),
			Mean:  stat.Mean(b.ColumnValues(j), nil),
		})
	}
	sortDescending(out)
	return out
}

// TopPairs returns the n brand pairs with the highest mean similarity
func TopPairs(b *BrandRatings, n int) []BrandSimilarity {
	out := make([]BrandSimilarity, 0, len(b.Columns))
	for j, col := range b.Columns {
		label := col
		if codes, ok := pairCodes(col); ok {
			label = fmt.Sprintf("%s - %s", pairName(codes[0]), pairName(codes[1]))
		}
		out = append(out, BrandSimilarity{
			Label: label,
			Mean:  stat.Mean(b.ColumnValues(j), nil),
		})
	}
	sortDescending(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Correlations computes the Pearson matrix of Sales, SPDisc and SPMore.
// Sales must already be imputed.
func Correlations(d *SalesData) (CorrelationMatrix, error) {
	names := []string{ColumnSales, ColumnSPDisc, ColumnSPMore}
	cols := make([][]float64, len(names))
	for i, n := range names {
		c, err := d.Column(n)
		if err != nil {
			return CorrelationMatrix{}, err
		}
		cols[i] = c
	}
	if len(d.MissingSales()) > 0 {
		return CorrelationMatrix{}, fmt.Errorf("correlations: sales has missing values")
	}

	m := CorrelationMatrix{Names: names, Values: make([][]float64, len(names))}
	for i := range names {
		m.Values[i] = make([]float64, len(names))
		for j := range names {
			if i == j {
				m.Values[i][j] = 1
				continue
			}
			m.Values[i][j] = stat.Correlation(cols[i], cols[j], nil)
		}
	}
	return m, nil
}

// EDAReport is the printable summary of the exploratory analysis
type EDAReport struct {
	SalesRows      int                `yaml:"sales_rows"`
	Respondents    int                `yaml:"respondents"`
	Imputations    []Imputation       `yaml:"imputations"`
	LocationLevels []string           `yaml:"location_levels"`
	TypeLevels     []string           `yaml:"type_levels"`
	StraightLiners []RespondentSpread `yaml:"straight_liners"`
	IdealProximity []BrandSimilarity  `yaml:"ideal_proximity"`
	TopPairs       []BrandSimilarity  `yaml:"top_pairs"`
	Correlation    CorrelationMatrix  `yaml:"correlation"`
	Charts         []string           `yaml:"charts,omitempty"`
	spreads        []RespondentSpread
}

// Spreads returns every respondent's spread, for charting
func (r *EDAReport) Spreads() []RespondentSpread {
	return r.spreads
}

// RunEDA imputes missing sales in place and summarizes both data sets
func RunEDA(sales *SalesData, ratings *BrandRatings) (*EDAReport, error) {
	imputed, err := ImputeGroupMean(sales)
	if err != nil {
		return nil, fmt.Errorf("eda: %w", err)
	}
	corr, err := Correlations(sales)
	if err != nil {
		return nil, fmt.Errorf("eda: %w", err)
	}
	spreads := RespondentStdDevs(ratings)

	return &EDAReport{
		SalesRows:      sales.Len(),
		Respondents:    ratings.Respondents(),
		Imputations:    imputed,
		LocationLevels: Levels(sales, ColumnLocation),
		TypeLevels:     Levels(sales, ColumnType),
		StraightLiners: StraightLiners(spreads, StraightLinerThreshold),
		IdealProximity: IdealProximity(ratings),
		TopPairs:       TopPairs(ratings, TopPairCount),
		Correlation:    corr,
		spreads:        spreads,
	}, nil
}

// Levels returns the sorted distinct values of a categorical column.
// Only Location and Type are categorical; any other column yields nil.
func Levels(d *SalesData, column string) []string {
	var value func(SalesRecord) string
	switch column {
	case ColumnLocation:
		value = func(r SalesRecord) string { return r.Location }
	case ColumnType:
		value = func(r SalesRecord) string { return r.Type }
	default:
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Records {
		v := value(r)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// pairCodes splits a column name like B37 into its two brand codes
func pairCodes(col string) ([2]string, bool) {
	rest := strings.TrimPrefix(col, RatingColumnPrefix)
	if len(col) != 3 || len(rest) != 2 {
		return [2]string{}, false
	}
	return [2]string{rest[:1], rest[1:]}, true
}

// pairName falls back to the bare code for pair labels
func pairName(code string) string {
	if name, ok := BrandNames[code]; ok {
		return name
	}
	return code
}

func sortDescending(s []BrandSimilarity) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Mean > s[j].Mean
	})
}
