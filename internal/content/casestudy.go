package content

import (
	"fmt"

	"github.com/promaxdigital/casestudy/internal/model"
)

// Accordion keys
const (
	FindingSales model.PanelKey = "sales"
	FindingBrand model.PanelKey = "brand"

	AssumptionNormality         model.PanelKey = "normality"
	AssumptionMulticollinearity model.PanelKey = "multicollinearity"
	AssumptionHomoscedasticity  model.PanelKey = "homoscedasticity"
)

// Figure assets
const (
	AssetContextPhoto       = "pickles-closeup.jpg"
	AssetUnivariate         = "univariate_distributions.png"
	AssetRespondentVariance = "respondent_variance.png"
	AssetIdealProximity     = "ideal_proximity_bar.png"
	AssetTopPairs           = "top_pairs_bar.png"
	AssetQQPlot             = "qq_plot.png"
	AssetResidualsVsFitted  = "residuals_vs_fitted.png"
	AssetPerceptualMap      = "perceptual_map.png"
)

// Default returns the MyPick case study presented with model m
func Default(m model.PredictionModel) *CaseStudy {
	return &CaseStudy{
		Brand:    "Promax Digital",
		Tagline:  "MyPick Transformation Plan",
		Appendix: []string{"OLS Reg", "MDS", "HC3"},
		Model:    m,
		Framing:  framing(),
		Modeling: modeling(m),
		Strategy: strategy(),
		Conclusion: Conclusion{
			Heading: "Case Closed",
			Quote:   "\"MyPick is a Residential-First brand trapped in a Commodity perception. We have the map to get out.\"",
			Verdicts: []Verdict{
				{
					Number:         1,
					Title:          "Pivot to Residential",
					Body:           fmt.Sprintf("Commercial stores are underperforming by **%.0f Lakhs/year**. Residential presence is our primary engine for immediate growth.", m.LocationResidential),
					OpensSimulator: true,
				},
				{
					Number: 2,
					Title:  "Optimize Marketing ROI",
					Body:   fmt.Sprintf("Discounts work (%.2fx ROI), Volume deals don't. Shift budget to price-based promotions to maximize conversion.", m.Discount),
				},
				{
					Number: 3,
					Title:  "Chase the Ideal Point",
					Body:   "MyPick is far from \"Ideal\". Launch a premium sub-brand to capture **Cluster 2 (The Opportunity)** while pivoting the core brand to Value Leader.",
				},
			},
			NextCase: []Bullet{
				{"Profitability Audit", "Need COGS data to calculate true ROI, not just Revenue Lift."},
				{"Linked Loyalty Data", "Connect Perception to Purchase history to validate Segment behavior."},
				{"Customer Profiles", "Collect demographics to predict exactly where the segments live."},
				{"Longitudinal Tracking", "Biannual Perceptual Mapping to track movement towards \"Ideal\"."},
			},
		},
		Simulator: Simulator{
			Heading:        "Sales Simulator",
			Lede:           "Test the strategy with the Regression Model.",
			CardTitle:      "Interactive Sales Forecast",
			LocationLabel:  "Store Location",
			DiscountLabel:  "Discount Spend (SPDisc)",
			DiscountImpact: fmt.Sprintf("Impact: +%.2fx ROI", m.Discount),
			VolumeLabel:    "Volume Spend (SPMore)",
			VolumeImpact:   fmt.Sprintf("Impact: +%.2fx (Inefficient)", m.Volume),
			ResultLabel:    "Projected Annual Sales",
			Unit:           "Lakhs",
		},
	}
}

func framing() Framing {
	return Framing{
		Heading:        "Phase 1: Framing & Forensics",
		Lede:           "Defining the problem and auditing the evidence.",
		ContextImage:   Figure{Asset: AssetContextPhoto, Caption: "Indian Pickles Context"},
		ContextTagline: "Since 1996",
		ContextTitle:   "1.1 Business Context",
		ContextBody:    "MyPick, a 30-year-old family legacy in pickles and condiments, is at a critical inflection point. The mandate: **Transition from intuition-based to data-driven decision making.**",
		Objectives: []Bullet{
			{"Maximize Sales Revenue", "Top-line growth optimization"},
			{"Brand Positioning", "Closing the gap to the 'Ideal' brand"},
			{"Market Segmentation", "Unlocking hidden consumer clusters"},
		},
		Operations: []Bullet{
			{"Location Optimization", "Residential vs Commercial focus"},
			{"Promotion Efficiency", "Discount vs Volume ROI Audit"},
		},
		Findings: []Finding{
			{
				Key:      FindingSales,
				Title:    "Evidence A: Sales Data Forensic Audit",
				Subtitle: "Distribution Analysis & Outlier Detection",
				Status:   model.AuditPassed,
				Figures:  []Figure{{Asset: AssetUnivariate, Caption: "Sales Distribution"}},
				Paragraphs: []string{
					"**The \"Bimodal\" Performance Signature**",
					"Distribution reveals a critical bifurcation, suggesting store location/type are the primary drivers of performance variance.",
				},
				Checks: []string{
					"**Imputation:** Row 47 forensic fix using subgroup mean (93.28L).",
					"**Validity:** Linearity confirmed OLS as the correct analytical path.",
				},
			},
			{
				Key:      FindingBrand,
				Title:    "Evidence B: Brand Perception Audit",
				Subtitle: "Respondent Quality & Market Texture",
				Status:   model.AuditPassed,
				Figures: []Figure{
					{Asset: AssetRespondentVariance, Caption: "Variance analysis showing zero straight-liners"},
					{Asset: AssetIdealProximity, Caption: "Ideal Proximity Bar Chart"},
				},
				Paragraphs: []string{
					"**Witness Credibility:** 0 Straight-liners detected. High-quality, discriminative data confirmed.",
					"**The \"Ideal\" Gap (H2):** MDH (4.37) leads. MyPick (2.56) lags in the commodity cluster.",
				},
				Callout: &Callout{
					Kicker: "Critical Forensic Finding",
					Title:  "The \"Commodity Trap\"",
					Body:   "High similarity (5.70) between **MyPick and Ruchi** confirms consumers perceive the brand as undifferentiated.",
					Quote:  "\"Breaking this perception is the prerequisite for premiumization.\"",
					Figure: Figure{Asset: AssetTopPairs, Caption: "Similarity analysis showing top brand pairs"},
				},
			},
		},
		DefaultFinding: FindingSales,
		Hypotheses: []Hypothesis{
			{"H1", "\"Buy-More\" (Volume) promotions exhibit higher elasticity than \"Discount\" (Price)."},
			{"H2", "MyPick is perceived as \"Traditional\" and is significantly distant from the \"Ideal\" brand."},
			{"H3", "The market is heterogeneous; Cluster Analysis will reveal distinct customer segments."},
			{"H4", "Multi-Product/Commercial stores yield higher sales than Provision/Residential ones."},
		},
		Limitations: []Bullet{
			{"Snapshot Data constraints", "Cross-sectional data for 2023. Insights are powerful for the current state but lack longitudinal seasonality trends."},
			{"Revenue-Focused Lens", "Maximizing **Revenue**, not Margin. Current dataset excludes COGS, directing our focus to top-line performance."},
		},
	}
}

func modeling(m model.PredictionModel) Modeling {
	return Modeling{
		Heading: "Phase 2: Quantitative Ballistics",
		Lede:    "Building the \"Legal Case\" with Regression and MDS.",
		Stats: []Stat{
			{Label: "Model Fit", Value: "89%", Caption: "Adj. R-Squared"},
			{Label: "Res. Lift", Value: fmt.Sprintf("+%.0fL", m.LocationResidential), Caption: "Location Impact"},
			{Label: "Disc. ROI", Value: fmt.Sprintf("%.2fx", m.Discount), Caption: "Sales per 1L Spend"},
		},
		Equation: RegressionEquation(m),
		Assumptions: []Finding{
			{
				Key:        AssumptionNormality,
				Title:      "Normality of Errors",
				Subtitle:   "Shapiro-Wilk Test (p=0.086)",
				Status:     model.AuditPassed,
				Figures:    []Figure{{Asset: AssetQQPlot, Caption: "Q-Q Plot"}},
				Paragraphs: []string{"The points hug the diagonal line, confirming that the model's errors are normally distributed. We can trust the p-values and confidence intervals."},
			},
			{
				Key:      AssumptionMulticollinearity,
				Title:    "Multicollinearity Check",
				Subtitle: "Variance Inflation Factor (VIF < 3.0)",
				Status:   model.AuditPassed,
				Paragraphs: []string{
					"**Confirmed:** The \"Discount\" and \"Volume\" variables are statistically distinct. There is no \"conspiracy\" or overlap between these two strategies in the data. All VIF scores are well below the threshold of 5.0.",
				},
			},
			{
				Key:      AssumptionHomoscedasticity,
				Title:    "Homoscedasticity",
				Subtitle: "Breusch-Pagan Test (p=0.000)",
				Status:   model.AuditFailed,
				Figures:  []Figure{{Asset: AssetResidualsVsFitted, Caption: "Residuals"}},
				Paragraphs: []string{
					"**The Problem:** The error variance increases as Sales increase (funnel shape). Large stores have more volatile sales than small ones, violating the constant variance assumption.",
				},
				Checks: []string{
					"**The Forensic Fix:** We re-validated all drivers using **HC3 Robust Standard Errors**. The results remained significant, confirming our strategy is mathematically bulletproof.",
				},
			},
		},
		DefaultAssumption: AssumptionNormality,
		PerceptualMap:     Figure{Asset: AssetPerceptualMap, Caption: "Perceptual Map"},
		Stress:            "Goodness of Fit: Stress Value = 10.95 (Acceptable)",
		MapFinding:        "**Strategic Finding:** MyPick (Red) is trapped in the bottom-right \"Commodity\" cluster with Ruchi/Priya. It is significantly distant from **Brand \"Ideal\"** (Green) and the market leader **MDH**.",
	}
}

func strategy() Strategy {
	return Strategy{
		Heading: "Phase 3: Strategic Interpretation",
		Lede:    "Turning Coefficients into Cash Flow.",
		Segments: []Segment{
			{"Cluster 0: \"Traditionalists\"", "Largest group. They view **MDH as Ideal**. Hard to convert."},
			{"Cluster 1: \"The Believers\"", "High-value niche. **MyPick is Ideal**. Retain & Clone."},
			{"Cluster 2: \"The Opportunity\"", "They rate MDH poorly. The \"Gap\" in the market. **Prime Target**."},
		},
		Silhouette: "Silhouette Score = 0.52 (Meaningful Separation)",
		Actions: []Bullet{
			{"Store Strategy: \"Residential First\"", "**Action:** De-prioritize Commercial expansion. The data proves Residential locations are the sole driver of store performance (p=0.000)."},
			{"Promo Strategy: \"Phased Reduction\"", "**Action:** Stop the cash bleed. \"Buy-More\" offers have no significant impact (p=0.53). Reallocate budget to Discounts."},
			{"Brand Strategy: \"Dual-Track\"", "**Innovation:** Don't force MyPick up-market.\n\n1. **Legacy MyPick:** Pivot to \"Value Leader\" (Price Fighter).\n2. **New Sub-Brand:** Launch a premium brand to chase \"Ideal\" (Cluster 2)."},
		},
	}
}

// RegressionEquation renders the fitted base model the way phase 2 prints it
func RegressionEquation(m model.PredictionModel) string {
	return fmt.Sprintf("Sales = %.2f + %.2f*(Loc=Residential) + %.2f*(SPDisc) + %.2f*(SPMore)",
		m.Intercept, m.LocationResidential, m.Discount, m.Volume)
}
