package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondentStdDevs(t *testing.T) {
	spreads := RespondentStdDevs(mustLoadRatings(t))
	require.Len(t, spreads, 4)

	assert.Equal(t, "2", spreads[1].Case)
	assert.InDelta(t, 0, spreads[1].StdDev, 1e-12)
	assert.InDelta(t, math.Sqrt(0.3), spreads[2].StdDev, 1e-12)
	assert.InDelta(t, math.Sqrt(0.2), spreads[3].StdDev, 1e-12)
}

func TestStraightLiners(t *testing.T) {
	spreads := RespondentStdDevs(mustLoadRatings(t))
	flagged := StraightLiners(spreads, StraightLinerThreshold)

	var cases []string
	for _, s := range flagged {
		cases = append(cases, s.Case)
	}
	assert.Equal(t, []string{"2", "4"}, cases)
}

func TestIdealProximity(t *testing.T) {
	got := IdealProximity(mustLoadRatings(t))

	require.Len(t, got, 3)
	assert.Equal(t, "MyPick", got[0].Label)
	assert.InDelta(t, 4.5, got[0].Mean, 1e-12)
	assert.Equal(t, "Priya", got[1].Label)
	assert.InDelta(t, 4.0, got[1].Mean, 1e-12)
	assert.Equal(t, "MDH", got[2].Label)
	assert.InDelta(t, 3.5, got[2].Mean, 1e-12)
}

func TestTopPairs(t *testing.T) {
	b := mustLoadRatings(t)

	got := TopPairs(b, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "MyPick - Ideal", got[0].Label)
	assert.Equal(t, "Priya - Ideal", got[1].Label)

	all := TopPairs(b, TopPairCount)
	assert.Len(t, all, 5, "fewer columns than requested returns them all")
	assert.Equal(t, "MDH - Priya", all[4].Label)
}

func TestBrandName(t *testing.T) {
	assert.Equal(t, "Mother", BrandName("6"))
	assert.Equal(t, "Brand 9", BrandName("9"))
}

func TestCorrelations(t *testing.T) {
	d := mustLoadSales(t, exactSales)
	m, err := Correlations(d)
	require.NoError(t, err)

	for i := range m.Names {
		assert.InDelta(t, 1, m.Values[i][i], 1e-12)
		for j := range m.Names {
			assert.InDelta(t, m.Values[i][j], m.Values[j][i], 1e-12)
		}
	}
	r, ok := m.At(ColumnSPDisc, ColumnSPMore)
	require.True(t, ok)
	assert.Greater(t, r, 0.0)

	_, ok = m.At(ColumnSales, "Price")
	assert.False(t, ok)
}

func TestCorrelations_RequiresImputation(t *testing.T) {
	_, err := Correlations(mustLoadSales(t, salesWithGap))
	require.Error(t, err)
}

func TestRunEDA(t *testing.T) {
	sales := mustLoadSales(t, salesWithGap)
	report, err := RunEDA(sales, mustLoadRatings(t))
	require.NoError(t, err)

	assert.Equal(t, 9, report.SalesRows)
	assert.Equal(t, 4, report.Respondents)
	assert.Len(t, report.Imputations, 1)
	assert.Equal(t, []string{"Commercial", "Residential"}, report.LocationLevels)
	assert.Equal(t, []string{"Multi-Product", "Provision"}, report.TypeLevels)
	assert.Len(t, report.StraightLiners, 2)
	assert.Len(t, report.Spreads(), 4)
	assert.Equal(t, "MyPick", report.IdealProximity[0].Label)
}

func TestLevels(t *testing.T) {
	d := mustLoadSales(t, exactSales)

	tests := []struct {
		column string
		want   []string
	}{
		{ColumnLocation, []string{"Commercial", "Residential"}},
		{ColumnType, []string{"Multi-Product", "Provision"}},
		{ColumnSales, nil},
		{"Unknown", nil},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, Levels(d, tt.column))
		})
	}
}
