package analysis

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart file names written next to the presentation assets
const (
	UnivariateChart         = "univariate_distributions.png"
	RespondentVarianceChart = "respondent_variance.png"
	IdealProximityChart     = "ideal_proximity_bar.png"
	TopPairsChart           = "top_pairs_bar.png"
	ResidualsChart          = "residuals_vs_fitted.png"
	QQChart                 = "qq_plot.png"
	PerceptualMapChart      = "perceptual_map.png"
)

const (
	histogramBins  = 10
	identicalScore = 7
)

var (
	barColor      = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	accentColor   = color.RGBA{R: 147, G: 51, B: 234, A: 255}
	referenceLine = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	idealColor    = color.RGBA{R: 22, G: 163, B: 74, A: 255}
	axisColor     = color.Gray{Y: 128}
)

// WriteEDACharts renders every exploratory chart into dir and returns the
// written paths
func WriteEDACharts(dir string, sales *SalesData, report *EDAReport) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("charts: %w", err)
	}

	jobs := []struct {
		name   string
		render func(path string) error
	}{
		{UnivariateChart, func(p string) error { return WriteUnivariateChart(p, sales) }},
		{RespondentVarianceChart, func(p string) error { return WriteRespondentVarianceChart(p, report.Spreads()) }},
		{IdealProximityChart, func(p string) error {
			return WriteSimilarityChart(p, "Similarity to Brand 'Ideal' (Raw Ratings)", report.IdealProximity, identicalScore)
		}},
		{TopPairsChart, func(p string) error {
			return WriteSimilarityChart(p, "Top 15 Most Similar Brand Pairs (Market Clumping)", report.TopPairs, 0)
		}},
	}

	paths := make([]string, 0, len(jobs))
	for _, job := range jobs {
		path := filepath.Join(dir, job.name)
		if err := job.render(path); err != nil {
			return nil, fmt.Errorf("charts: %s: %w", job.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteUnivariateChart draws the Sales, SPDisc and SPMore histograms side by side
func WriteUnivariateChart(path string, d *SalesData) error {
	titles := map[string]string{
		ColumnSales:  "Sales Distribution",
		ColumnSPDisc: "Discount Promotion Distribution",
		ColumnSPMore: "Volume Promotion Distribution",
	}
	columns := []string{ColumnSales, ColumnSPDisc, ColumnSPMore}

	plots := make([]*plot.Plot, 0, len(columns))
	for _, c := range columns {
		values, err := d.Column(c)
		if err != nil {
			return err
		}
		p, err := histogramPlot(values, titles[c], c, barColor)
		if err != nil {
			return err
		}
		plots = append(plots, p)
	}

	img := vgimg.New(12*vg.Inch, 4*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// WriteRespondentVarianceChart draws the distribution of respondent spreads
func WriteRespondentVarianceChart(path string, spreads []RespondentSpread) error {
	values := make([]float64, len(spreads))
	for i, s := range spreads {
		values[i] = s.StdDev
	}
	p, err := histogramPlot(values,
		"Witness Credibility: Respondent Variance (incl. Brand 'Ideal')",
		"Standard Deviation of Ratings (Higher = More Discriminating)",
		accentColor)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// WriteSimilarityChart draws a horizontal bar per item, highest at the top.
// A positive marker adds a dashed reference line at that score.
func WriteSimilarityChart(path, title string, items []BrandSimilarity, marker float64) error {
	if len(items) == 0 {
		return fmt.Errorf("no bars to draw")
	}

	n := len(items)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i, it := range items {
		values[n-1-i] = it.Mean
		labels[n-1-i] = it.Label
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Mean Similarity Rating (7 = Identical)"

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalY(labels...)
	p.X.Min = 0

	if marker > 0 {
		line, err := plotter.NewLine(plotter.XYs{{X: marker, Y: -0.5}, {X: marker, Y: float64(n) - 0.5}})
		if err != nil {
			return err
		}
		line.Color = referenceLine
		line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(line)
		p.Legend.Add("Identical to Brand 'Ideal'", line)
		p.X.Max = marker + 0.5
	}

	p.Add(plotter.NewGrid())
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// WriteResidualChart draws residuals against fitted values with a zero line
func WriteResidualChart(path string, r *OLSResult) error {
	if len(r.Fitted) == 0 {
		return fmt.Errorf("fit has no observations")
	}

	points := make(plotter.XYs, len(r.Fitted))
	for i := range r.Fitted {
		points[i].X = r.Fitted[i]
		points[i].Y = r.Residuals[i]
	}

	p := plot.New()
	p.Title.Text = "Residuals vs Fitted"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Fitted Sales"
	p.Y.Label.Text = "Residual"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = barColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = referenceLine
	zero.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(zero)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// WriteQQChart draws the standardized residuals against normal quantiles with
// a 45 degree reference line
func WriteQQChart(path string, r *OLSResult) error {
	points, err := qqPoints(r.Residuals)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Q-Q Plot of Residuals"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Theoretical Quantiles"
	p.Y.Label.Text = "Standardized Residuals"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = barColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	diagonal := plotter.NewFunction(func(x float64) float64 { return x })
	diagonal.Color = referenceLine
	p.Add(diagonal)
	p.Add(plotter.NewGrid())

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// qqPoints pairs the i-th smallest standardized residual with the normal
// quantile at (i+0.5)/n
func qqPoints(residuals []float64) (plotter.XYs, error) {
	n := len(residuals)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 residuals, got %d", n)
	}

	sorted := make([]float64, n)
	copy(sorted, residuals)
	sort.Float64s(sorted)

	mean, sd := stat.MeanStdDev(sorted, nil)
	points := make(plotter.XYs, n)
	for i, v := range sorted {
		points[i].X = distuv.UnitNormal.Quantile((float64(i) + 0.5) / float64(n))
		if sd > 0 {
			points[i].Y = (v - mean) / sd
		}
	}
	return points, nil
}

// WritePerceptualMap draws every brand at its scaled position, with the
// client brand and the ideal brand highlighted
func WritePerceptualMap(path string, m *PerceptualMap) error {
	if len(m.Brands) == 0 {
		return fmt.Errorf("perceptual map has no brands")
	}

	var others, mine, ideal plotter.XYs
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(m.Brands)),
		Labels: make([]string, len(m.Brands)),
	}
	for i, b := range m.Brands {
		pt := plotter.XY{X: b.X, Y: b.Y}
		labels.XYs[i] = pt
		labels.Labels[i] = b.Name
		switch b.Code {
		case MyPickBrandCode:
			mine = append(mine, pt)
		case IdealBrandCode:
			ideal = append(ideal, pt)
		default:
			others = append(others, pt)
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Perceptual Map (MDS) - Stress: %.2f", m.Stress)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Dim 1: Heritage/Emotional <--- vs ---> Functional/Utility"
	p.Y.Label.Text = "Dim 2: Low Perception <--- vs ---> Ideal Quality"
	p.Add(plotter.NewGrid())

	groups := []struct {
		xys    plotter.XYs
		color  color.Color
		radius vg.Length
		legend string
	}{
		{others, barColor, vg.Points(5), ""},
		{mine, referenceLine, vg.Points(7), BrandName(MyPickBrandCode)},
		{ideal, idealColor, vg.Points(7), "Brand " + BrandName(IdealBrandCode)},
	}
	for _, g := range groups {
		if len(g.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(g.xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = g.color
		sc.GlyphStyle.Radius = g.radius
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		if g.legend != "" {
			p.Legend.Add(g.legend, sc)
		}
	}

	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	lbl.Offset = vg.Point{X: vg.Points(8)}
	p.Add(lbl)

	span := 0.0
	for _, b := range m.Brands {
		span = math.Max(span, math.Max(math.Abs(b.X), math.Abs(b.Y)))
	}
	span = span*1.2 + 0.1
	p.X.Min, p.X.Max = -span, span
	p.Y.Min, p.Y.Max = -span, span

	hAxis := plotter.NewFunction(func(float64) float64 { return 0 })
	hAxis.Color = axisColor
	hAxis.Width = vg.Points(0.5)
	vAxis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: -span}, {X: 0, Y: span}})
	if err != nil {
		return err
	}
	vAxis.Color = axisColor
	vAxis.Width = vg.Points(0.5)
	p.Add(hAxis, vAxis)

	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}

func histogramPlot(values []float64, title, xLabel string, fill color.Color) (*plot.Plot, error) {
	h, err := plotter.NewHist(plotter.Values(values), histogramBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = fill
	h.LineStyle.Width = vg.Points(0.5)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Count"
	p.Add(h)
	p.Add(plotter.NewGrid())
	return p, nil
}
