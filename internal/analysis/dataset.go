package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column names of SalesData.csv
const (
	ColumnLocation = "Location"
	ColumnType     = "Type"
	ColumnSales    = "Sales"
	ColumnSPDisc   = "SPDisc"
	ColumnSPMore   = "SPMore"
)

// Column names of BrandRatings.csv
const (
	ColumnCase         = "Case"
	RatingColumnPrefix = "B"
)

// Source file names inside the source-data directory
const (
	SalesFileName   = "SalesData.csv"
	RatingsFileName = "BrandRatings.csv"
)

// ErrMissingColumn is returned when a required header is absent
var ErrMissingColumn = errors.New("missing column")

// SalesRecord is one store observation
type SalesRecord struct {
	Location string
	Type     string
	// Sales is NaN when the source cell was not numeric
	Sales  float64
	SPDisc float64
	SPMore float64
}

// SalesMissing reports whether the Sales cell could not be parsed
func (r SalesRecord) SalesMissing() bool {
	return math.IsNaN(r.Sales)
}

// SalesData is the parsed SalesData sheet
type SalesData struct {
	Records []SalesRecord
}

// Len returns the number of observations
func (d *SalesData) Len() int {
	return len(d.Records)
}

// Column extracts one numeric column by name
func (d *SalesData) Column(name string) ([]float64, error) {
	out := make([]float64, len(d.Records))
	for i, r := range d.Records {
		switch name {
		case ColumnSales:
			out[i] = r.Sales
		case ColumnSPDisc:
			out[i] = r.SPDisc
		case ColumnSPMore:
			out[i] = r.SPMore
		default:
			return nil, fmt.Errorf("%w: %s is not numeric", ErrMissingColumn, name)
		}
	}
	return out, nil
}

// MissingSales returns the indexes of records without a Sales value
func (d *SalesData) MissingSales() []int {
	var idx []int
	for i, r := range d.Records {
		if r.SalesMissing() {
			idx = append(idx, i)
		}
	}
	return idx
}

// LoadSales parses SalesData CSV. Non-numeric Sales cells (the source uses
// ".") become missing values; promotion spends must be numeric.
func LoadSales(r io.Reader) (*SalesData, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	idx, err := columnIndex(header, ColumnLocation, ColumnType, ColumnSales, ColumnSPDisc, ColumnSPMore)
	if err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}

	data := &SalesData{Records: make([]SalesRecord, 0, len(rows))}
	for line, row := range rows {
		disc, err := parseNumber(row[idx[ColumnSPDisc]])
		if err != nil {
			return nil, fmt.Errorf("sales: row %d %s: %w", line+2, ColumnSPDisc, err)
		}
		more, err := parseNumber(row[idx[ColumnSPMore]])
		if err != nil {
			return nil, fmt.Errorf("sales: row %d %s: %w", line+2, ColumnSPMore, err)
		}
		sales, err := parseNumber(row[idx[ColumnSales]])
		if err != nil {
			sales = math.NaN()
		}
		data.Records = append(data.Records, SalesRecord{
			Location: strings.TrimSpace(row[idx[ColumnLocation]]),
			Type:     strings.TrimSpace(row[idx[ColumnType]]),
			Sales:    sales,
			SPDisc:   disc,
			SPMore:   more,
		})
	}
	return data, nil
}

// LoadSalesFile opens path and parses it with LoadSales
func LoadSalesFile(path string) (*SalesData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	defer f.Close()
	return LoadSales(f)
}

// BrandRatings is the pairwise brand-similarity survey. Ratings is indexed
// [respondent][column] in the order of Columns.
type BrandRatings struct {
	Cases   []string
	Columns []string
	Ratings [][]float64
}

// Respondents returns the number of survey rows
func (b *BrandRatings) Respondents() int {
	return len(b.Ratings)
}

// ColumnValues returns every respondent's rating for column j
func (b *BrandRatings) ColumnValues(j int) []float64 {
	out := make([]float64, len(b.Ratings))
	for i, row := range b.Ratings {
		out[i] = row[j]
	}
	return out
}

// LoadRatings parses BrandRatings CSV. Every column whose name starts with
// "B" is a rating column.
func LoadRatings(r io.Reader) (*BrandRatings, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("ratings: %w", err)
	}

	caseIdx := -1
	var ratingIdx []int
	out := &BrandRatings{}
	for i, name := range header {
		switch {
		case name == ColumnCase:
			caseIdx = i
		case strings.HasPrefix(name, RatingColumnPrefix):
			ratingIdx = append(ratingIdx, i)
			out.Columns = append(out.Columns, name)
		}
	}
	if len(ratingIdx) == 0 {
		return nil, fmt.Errorf("ratings: %w: no %s* columns", ErrMissingColumn, RatingColumnPrefix)
	}

	for line, row := range rows {
		values := make([]float64, len(ratingIdx))
		for k, col := range ratingIdx {
			v, err := parseNumber(row[col])
			if err != nil {
				return nil, fmt.Errorf("ratings: row %d %s: %w", line+2, header[col], err)
			}
			values[k] = v
		}
		caseID := strconv.Itoa(line + 1)
		if caseIdx >= 0 {
			caseID = strings.TrimSpace(row[caseIdx])
		}
		out.Cases = append(out.Cases, caseID)
		out.Ratings = append(out.Ratings, values)
	}
	return out, nil
}

// LoadRatingsFile opens path and parses it with LoadRatings
func LoadRatingsFile(path string) (*BrandRatings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ratings: %w", err)
	}
	defer f.Close()
	return LoadRatings(f)
}

func readTable(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("read csv: empty file")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, h := range header {
		idx[h] = i
	}
	out := make(map[string]int, len(names))
	for _, n := range names {
		i, ok := idx[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, n)
		}
		out[n] = i
	}
	return out, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
