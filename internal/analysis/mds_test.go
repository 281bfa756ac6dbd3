package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDissimilarities(t *testing.T) {
	codes, dis, err := Dissimilarities(mustLoadRatings(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "7"}, codes)

	tests := []struct {
		name string
		i, j int
		want float64
	}{
		{"MDH-Priya", 0, 1, 5},
		{"MDH-MyPick", 0, 2, 4.5},
		{"MDH-Ideal", 0, 3, 4.5},
		{"Priya-Ideal", 1, 3, 4},
		{"MyPick-Ideal", 2, 3, 3.5},
		{"unrated pair", 1, 2, 0},
		{"diagonal", 3, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, dis.At(tt.i, tt.j), 1e-12)
			assert.InDelta(t, tt.want, dis.At(tt.j, tt.i), 1e-12)
		})
	}
}

func TestDissimilarities_NoPairs(t *testing.T) {
	b, err := LoadRatings(strings.NewReader("Case,B1\n1,4\n"))
	require.NoError(t, err)

	_, _, err = Dissimilarities(b)
	assert.ErrorIs(t, err, ErrNoBrandPairs)
}

func TestScalePerceptualMap(t *testing.T) {
	m, err := ScalePerceptualMap(mustLoadRatings(t))
	require.NoError(t, err)

	require.Len(t, m.Brands, 4)
	assert.GreaterOrEqual(t, m.Dimensions, 1)
	assert.False(t, math.IsNaN(m.Stress))
	assert.GreaterOrEqual(t, m.Stress, 0.0)

	mine, ok := m.Point(MyPickBrandCode)
	require.True(t, ok)
	assert.Equal(t, "MyPick", mine.Name)

	// Classical scaling centres the configuration
	var sx, sy float64
	for _, b := range m.Brands {
		sx += b.X
		sy += b.Y
	}
	assert.InDelta(t, 0, sx, 1e-6)
	assert.InDelta(t, 0, sy, 1e-6)

	_, ok = m.Point("9")
	assert.False(t, ok)
}

func TestScalePerceptualMap_RecoversLine(t *testing.T) {
	// Distances 1, 1 and 2 place the three brands on a line
	b, err := LoadRatings(strings.NewReader("Case,B12,B13,B23\n1,7,6,7\n2,7,6,7\n"))
	require.NoError(t, err)

	m, err := ScalePerceptualMap(b)
	require.NoError(t, err)
	require.Len(t, m.Brands, 3)

	assert.InDelta(t, 0, m.Stress, 1e-6)
	assert.InDelta(t, 2, math.Abs(m.Brands[0].X-m.Brands[2].X), 1e-6)
	assert.InDelta(t, 1, math.Abs(m.Brands[0].X-m.Brands[1].X), 1e-6)
}
