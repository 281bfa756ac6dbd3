package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/model"
)

// Accordion group names, used in logs
const (
	GroupFindings    = "findings"
	GroupAssumptions = "assumptions"
)

// phasePage is one rendered phase. Pages are rebuilt on every phase change,
// so their accordion and simulator state starts fresh each visit.
type phasePage struct {
	root        fyne.CanvasObject
	groups      map[string]*AccordionGroup
	images      []*ZoomableImage
	simulator   *SimulatorPanel
	simulateBtn *widget.Button
}

// pageBuilder renders phase content
type pageBuilder struct {
	cs            *content.CaseStudy
	assets        Assets
	logger        *zap.Logger
	openImage     func(model.FocusedImage)
	goToSimulator func()
}

func (b *pageBuilder) build(id model.PhaseID) *phasePage {
	page := &phasePage{groups: make(map[string]*AccordionGroup)}
	switch id {
	case model.PhaseFraming:
		page.root = b.framing(page)
	case model.PhaseModeling:
		page.root = b.modeling(page)
	case model.PhaseStrategy:
		page.root = b.strategy()
	case model.PhaseConclusion:
		page.root = b.conclusion(page)
	case model.PhaseSimulator:
		page.simulator = NewSimulatorPanel(b.cs.Model, b.cs.Simulator, b.logger)
		page.root = page.simulator.Container()
	default:
		page.root = widget.NewLabel(fmt.Sprintf("Unknown phase %q", id))
	}
	return page
}

func (b *pageBuilder) framing(page *phasePage) fyne.CanvasObject {
	f := b.cs.Framing

	photo := b.assets.Image(f.ContextImage.Asset)
	photo.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	photo.FillMode = canvas.ImageFillStretch
	tagline := widget.NewLabelWithStyle(f.ContextTagline, fyne.TextAlignLeading, fyne.TextStyle{Bold: true, Italic: true})

	contextCard := widget.NewCard(f.ContextTitle, "", container.NewGridWithColumns(PageMaxColumns,
		container.NewBorder(nil, tagline, nil, nil, photo),
		container.NewVBox(
			markdown(f.ContextBody),
			sectionTitle("Primary Objectives"),
			bulletList(f.Objectives),
			sectionTitle("Operational Strategy"),
			bulletList(f.Operations),
		),
	))

	findings := NewAccordionGroup(GroupFindings, f.DefaultFinding, b.logger)
	for _, fd := range f.Findings {
		findings.Add(fd.Key, NewAccordionItem(fd.Title, fd.Subtitle, fd.Status, b.findingBody(page, fd)))
	}
	page.groups[GroupFindings] = findings

	hypotheses := make([]fyne.CanvasObject, 0, len(f.Hypotheses))
	for _, h := range f.Hypotheses {
		hypotheses = append(hypotheses, markdown(fmt.Sprintf("**%s** %s", h.Code, h.Statement)))
	}

	return container.NewVBox(
		pageHeading(f.Heading, f.Lede),
		contextCard,
		sectionTitle("1.2 Forensic Findings (EDA)"),
		findings.Container(),
		widget.NewCard("1.3 Research Hypotheses", "", container.NewGridWithColumns(PageMaxColumns, hypotheses...)),
		widget.NewCard("1.4 Data Limitations", "", bulletList(f.Limitations)),
	)
}

func (b *pageBuilder) modeling(page *phasePage) fyne.CanvasObject {
	m := b.cs.Modeling

	tiles := make([]fyne.CanvasObject, 0, len(m.Stats))
	for _, s := range m.Stats {
		tiles = append(tiles, statTile(s))
	}

	equation := widget.NewLabelWithStyle(m.Equation, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	equation.Wrapping = fyne.TextWrapWord

	assumptions := NewAccordionGroup(GroupAssumptions, m.DefaultAssumption, b.logger)
	for _, a := range m.Assumptions {
		assumptions.Add(a.Key, NewAccordionItem(a.Title, a.Subtitle, a.Status, b.findingBody(page, a)))
	}
	page.groups[GroupAssumptions] = assumptions

	regression := widget.NewCard("Sales Drivers (Regression Analysis)", "", container.NewVBox(
		container.NewGridWithColumns(len(tiles), tiles...),
		lowLabel("Equation (Base Model):"),
		equation,
		sectionTitle("Model Assumptions (Audit)"),
		assumptions.Container(),
	))

	mds := widget.NewCard("The Perceptual Map (MDS)", "", container.NewGridWithColumns(PageMaxColumns,
		b.thumbnail(page, m.PerceptualMap),
		container.NewVBox(lowLabel(m.Stress), markdown(m.MapFinding)),
	))

	return container.NewVBox(pageHeading(m.Heading, m.Lede), regression, mds)
}

func (b *pageBuilder) strategy() fyne.CanvasObject {
	s := b.cs.Strategy

	segments := make([]fyne.CanvasObject, 0, len(s.Segments))
	for _, seg := range s.Segments {
		segments = append(segments, widget.NewCard("", "", container.NewVBox(
			container.NewHBox(widget.NewIcon(theme.AccountIcon()), widget.NewLabelWithStyle(seg.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})),
			markdown(seg.Summary),
		)))
	}

	actions := make([]fyne.CanvasObject, 0, len(s.Actions))
	for _, a := range s.Actions {
		actions = append(actions, widget.NewCard(a.Label, "", markdown(a.Detail)))
	}

	return container.NewVBox(
		pageHeading(s.Heading, s.Lede),
		widget.NewCard("Market Segmentation (H3 Verified)", "", container.NewVBox(
			container.NewGridWithColumns(len(segments), segments...),
			container.NewHBox(widget.NewIcon(theme.InfoIcon()), lowLabel(s.Silhouette)),
		)),
		container.NewGridWithColumns(len(actions), actions...),
	)
}

func (b *pageBuilder) conclusion(page *phasePage) fyne.CanvasObject {
	c := b.cs.Conclusion

	verdicts := container.NewVBox()
	for _, v := range c.Verdicts {
		body := container.NewVBox(
			widget.NewLabelWithStyle(v.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			markdown(v.Body),
		)
		if v.OpensSimulator {
			btn := widget.NewButtonWithIcon(SimulateLabel, theme.MediaPlayIcon(), func() {
				if b.goToSimulator != nil {
					b.goToSimulator()
				}
			})
			btn.Importance = widget.HighImportance
			page.simulateBtn = btn
			body.Add(container.NewHBox(btn))
		}
		number := canvas.NewText(fmt.Sprintf("%d", v.Number), ColorBrandBlue)
		number.TextSize = theme.TextHeadingSize()
		number.TextStyle = fyne.TextStyle{Bold: true}
		verdicts.Add(container.NewBorder(nil, nil, container.NewPadded(number), nil, body))
		verdicts.Add(widget.NewSeparator())
	}

	next := make([]fyne.CanvasObject, 0, len(c.NextCase))
	for _, n := range c.NextCase {
		next = append(next, widget.NewCard(n.Label, "", markdown(n.Detail)))
	}

	heading := container.NewHBox(widget.NewIcon(theme.ConfirmIcon()), widget.NewLabelWithStyle(c.Heading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	return container.NewVBox(
		heading,
		markdown("*"+strings.Trim(c.Quote, "\"")+"*"),
		widget.NewCard("The Strategic Verdict", "", verdicts),
		widget.NewCard("The Next Case", "", container.NewGridWithColumns(PageMaxColumns, next...)),
	)
}

// findingBody lays out figures, text, checks and an optional callout
func (b *pageBuilder) findingBody(page *phasePage, f content.Finding) fyne.CanvasObject {
	body := container.NewVBox()

	if len(f.Figures) > 0 {
		thumbs := make([]fyne.CanvasObject, 0, len(f.Figures))
		for _, fig := range f.Figures {
			thumbs = append(thumbs, b.thumbnail(page, fig))
		}
		body.Add(container.NewGridWithColumns(len(thumbs), thumbs...))
	}
	for _, p := range f.Paragraphs {
		body.Add(markdown(p))
	}
	for _, c := range f.Checks {
		body.Add(container.NewBorder(nil, nil, widget.NewIcon(theme.ConfirmIcon()), nil, markdown(c)))
	}
	if co := f.Callout; co != nil {
		kicker := canvas.NewText(strings.ToUpper(co.Kicker), ColorFailed)
		kicker.TextStyle = fyne.TextStyle{Bold: true}
		kicker.TextSize = BadgeTextSize
		text := container.NewVBox(kicker, markdown("**"+co.Title+"**"), markdown(co.Body), markdown("*"+co.Quote+"*"))
		var callout fyne.CanvasObject = text
		if co.Figure.Asset != "" {
			callout = container.NewGridWithColumns(PageMaxColumns, b.thumbnail(page, co.Figure), text)
		}
		body.Add(widget.NewCard("", "", callout))
	}
	return body
}

func (b *pageBuilder) thumbnail(page *phasePage, fig content.Figure) fyne.CanvasObject {
	z := NewZoomableImage(b.assets, fig, b.openImage)
	page.images = append(page.images, z)
	return z
}

func pageHeading(title, lede string) fyne.CanvasObject {
	heading := widget.NewRichTextFromMarkdown("# " + title)
	sub := widget.NewLabel(lede)
	sub.Importance = widget.LowImportance
	return container.NewVBox(heading, sub)
}

func sectionTitle(text string) fyne.CanvasObject {
	return widget.NewRichTextFromMarkdown("## " + text)
}

func markdown(text string) *widget.RichText {
	rt := widget.NewRichTextFromMarkdown(text)
	rt.Wrapping = fyne.TextWrapWord
	return rt
}

func bulletList(items []content.Bullet) fyne.CanvasObject {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", it.Label, it.Detail))
	}
	return markdown(strings.Join(lines, "\n"))
}

func statTile(s content.Stat) fyne.CanvasObject {
	value := canvas.NewText(s.Value, ColorBrandBlue)
	value.TextSize = theme.TextHeadingSize()
	value.TextStyle = fyne.TextStyle{Bold: true}
	value.Alignment = fyne.TextAlignCenter

	label := lowLabel(strings.ToUpper(s.Label))
	label.Alignment = fyne.TextAlignCenter
	caption := lowLabel(s.Caption)
	caption.Alignment = fyne.TextAlignCenter
	return widget.NewCard("", "", container.NewVBox(label, value, caption))
}
