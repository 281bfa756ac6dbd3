package analysis

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/mds"
)

// dissimilarityBase turns a mean similarity rating into a distance:
// distance = dissimilarityBase - similarity
const dissimilarityBase = identicalScore + 1

// MyPickBrandCode is the survey code of the client brand
const MyPickBrandCode = "3"

// ErrNoBrandPairs is returned when the ratings hold no Bxy pair columns
var ErrNoBrandPairs = errors.New("no brand pair columns")

// BrandPoint is one brand placed on the perceptual map
type BrandPoint struct {
	Code string  `yaml:"code"`
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// PerceptualMap is a two-dimensional embedding of the brand dissimilarities
type PerceptualMap struct {
	Brands []BrandPoint `yaml:"brands"`
	// Stress is Kruskal's stress-1 of the 2-D embedding
	Stress float64 `yaml:"stress"`
	// Dimensions is the number of positive eigenvalues found by the scaling
	Dimensions int `yaml:"dimensions"`
}

// Point returns the brand with the given code
func (m *PerceptualMap) Point(code string) (BrandPoint, bool) {
	for _, b := range m.Brands {
		if b.Code == code {
			return b, true
		}
	}
	return BrandPoint{}, false
}

// Dissimilarities builds the symmetric brand distance matrix from the pair
// columns. Brands are the codes that occur in at least one pair, sorted.
// Pairs never rated keep a zero distance.
func Dissimilarities(b *BrandRatings) ([]string, *mat.SymDense, error) {
	type pair struct {
		codes [2]string
		mean  float64
	}
	var pairs []pair
	seen := make(map[string]bool)
	for j, col := range b.Columns {
		codes, ok := pairCodes(col)
		if !ok || codes[0] == codes[1] {
			continue
		}
		pairs = append(pairs, pair{codes: codes, mean: stat.Mean(b.ColumnValues(j), nil)})
		seen[codes[0]] = true
		seen[codes[1]] = true
	}
	if len(pairs) == 0 {
		return nil, nil, ErrNoBrandPairs
	}

	codes := make([]string, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	index := make(map[string]int, len(codes))
	for i, c := range codes {
		index[c] = i
	}

	dis := mat.NewSymDense(len(codes), nil)
	for _, p := range pairs {
		dis.SetSym(index[p.codes[0]], index[p.codes[1]], dissimilarityBase-p.mean)
	}
	return codes, dis, nil
}

// ScalePerceptualMap embeds the brand dissimilarities in two dimensions with
// classical (Torgerson) multidimensional scaling
func ScalePerceptualMap(b *BrandRatings) (*PerceptualMap, error) {
	codes, dis, err := Dissimilarities(b)
	if err != nil {
		return nil, err
	}

	var coords mat.Dense
	k, _ := mds.TorgersonScaling(&coords, nil, dis)
	if k == 0 {
		return nil, errors.New("scaling found no positive eigenvalues")
	}
	_, cols := coords.Dims()

	m := &PerceptualMap{Dimensions: k, Brands: make([]BrandPoint, len(codes))}
	for i, c := range codes {
		p := BrandPoint{Code: c, Name: BrandName(c), X: coords.At(i, 0)}
		if cols > 1 {
			p.Y = coords.At(i, 1)
		}
		m.Brands[i] = p
	}
	m.Stress = kruskalStress(dis, m.Brands)
	return m, nil
}

// kruskalStress compares the embedded distances with the input distances
func kruskalStress(dis mat.Symmetric, points []BrandPoint) float64 {
	var num, den float64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := dis.At(i, j)
			e := math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			num += (d - e) * (d - e)
			den += d * d
		}
	}
	if den == 0 {
		return 0
	}
	return math.Sqrt(num / den)
}
