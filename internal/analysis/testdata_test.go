package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// exactSales satisfies Sales = 80 + 100*Residential - 10*Provision + 2*SPDisc + 0.5*SPMore
const exactSales = `ID,Location,Type,Sales,SPDisc,SPMore
1,Commercial,Multi-Product,83.5,1,3
2,Commercial,Provision,74.5,2,1
3,Residential,Multi-Product,188,3,4
4,Residential,Provision,179,4,2
5,Commercial,Multi-Product,93.5,5,7
6,Residential,Provision,184.5,6,5
7,Commercial,Provision,88.5,7,9
8,Residential,Multi-Product,199,8,6
`

// salesWithGap adds a row whose Sales cell is "." like the source workbook
const salesWithGap = exactSales + "9,Residential,Multi-Product,.,2,2\n"

const ratingsCSV = `Case,B12,B13,B17,B37,B27
1,1,2,3,6,4
2,4,4,4,4,4
3,4,5,4,4,5
4,3,3,3,4,3
`

func mustLoadSales(t *testing.T, data string) *SalesData {
	t.Helper()
	d, err := LoadSales(strings.NewReader(data))
	require.NoError(t, err)
	return d
}

func mustLoadRatings(t *testing.T) *BrandRatings {
	t.Helper()
	b, err := LoadRatings(strings.NewReader(ratingsCSV))
	require.NoError(t, err)
	return b
}
