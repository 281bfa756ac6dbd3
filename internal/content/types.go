package content

import "github.com/promaxdigital/casestudy/internal/model"

// Figure is a zoomable chart or photo
type Figure struct {
	Asset   string
	Caption string
}

// Bullet is a labelled line with a short explanation
type Bullet struct {
	Label  string
	Detail string
}

// Stat is a headline number on a metric tile
type Stat struct {
	Label   string
	Value   string
	Caption string
}

// Finding is one accordion item with an audit verdict
type Finding struct {
	Key        model.PanelKey
	Title      string
	Subtitle   string
	Status     model.AuditStatus
	Figures    []Figure
	Paragraphs []string
	Checks     []string
	Callout    *Callout
}

// Callout is a highlighted insight inside a finding
type Callout struct {
	Kicker string
	Title  string
	Body   string
	Quote  string
	Figure Figure
}

// Hypothesis is a numbered research hypothesis
type Hypothesis struct {
	Code      string
	Statement string
}

// Segment is a consumer cluster from the segmentation analysis
type Segment struct {
	Name    string
	Summary string
}

// Verdict is a numbered recommendation on the conclusion page
type Verdict struct {
	Number int
	Title  string
	Body   string
	// OpensSimulator adds a control that jumps to the simulator phase
	OpensSimulator bool
}

// Framing is phase 1: context, evidence audit and hypotheses
type Framing struct {
	Heading        string
	Lede           string
	ContextImage   Figure
	ContextTagline string
	ContextTitle   string
	ContextBody    string
	Objectives     []Bullet
	Operations     []Bullet
	Findings       []Finding
	DefaultFinding model.PanelKey
	Hypotheses     []Hypothesis
	Limitations    []Bullet
}

// Modeling is phase 2: regression results, assumption audit and MDS map
type Modeling struct {
	Heading           string
	Lede              string
	Stats             []Stat
	Equation          string
	Assumptions       []Finding
	DefaultAssumption model.PanelKey
	PerceptualMap     Figure
	Stress            string
	MapFinding        string
}

// Strategy is phase 3: segments and strategy cards
type Strategy struct {
	Heading    string
	Lede       string
	Segments   []Segment
	Silhouette string
	Actions    []Bullet
}

// Conclusion is phase 4: verdicts and follow-up research
type Conclusion struct {
	Heading  string
	Quote    string
	Verdicts []Verdict
	NextCase []Bullet
}

// Simulator is the copy around the interactive forecast
type Simulator struct {
	Heading        string
	Lede           string
	CardTitle      string
	LocationLabel  string
	DiscountLabel  string
	DiscountImpact string
	VolumeLabel    string
	VolumeImpact   string
	ResultLabel    string
	Unit           string
}

// CaseStudy is the complete presentation
type CaseStudy struct {
	Brand      string
	Tagline    string
	Appendix   []string
	Model      model.PredictionModel
	Framing    Framing
	Modeling   Modeling
	Strategy   Strategy
	Conclusion Conclusion
	Simulator  Simulator
}

// Figures lists every figure referenced by the presentation, in page order
func (c *CaseStudy) Figures() []Figure {
	figs := []Figure{c.Framing.ContextImage}
	collect := func(fs []Finding) {
		for _, f := range fs {
			figs = append(figs, f.Figures...)
			if f.Callout != nil && f.Callout.Figure.Asset != "" {
				figs = append(figs, f.Callout.Figure)
			}
		}
	}
	collect(c.Framing.Findings)
	collect(c.Modeling.Assumptions)
	figs = append(figs, c.Modeling.PerceptualMap)
	return figs
}
