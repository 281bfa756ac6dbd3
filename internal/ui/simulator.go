package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/model"
)

// SimulatorPanel is the interactive sales forecast. Every control change
// recomputes the projection synchronously.
type SimulatorPanel struct {
	model  model.PredictionModel
	input  model.SimulatorInput
	text   content.Simulator
	logger *zap.Logger

	// UI components
	locationBtn    *widget.Button
	discountSlider *widget.Slider
	volumeSlider   *widget.Slider
	discountValue  *widget.Label
	volumeValue    *widget.Label
	result         *canvas.Text
	root           fyne.CanvasObject
}

// NewSimulatorPanel creates the panel in its default state
func NewSimulatorPanel(m model.PredictionModel, text content.Simulator, logger *zap.Logger) *SimulatorPanel {
	s := &SimulatorPanel{
		model:  m,
		input:  model.DefaultSimulatorInput(),
		text:   text,
		logger: logger,
	}
	s.createUI()
	s.update()
	return s
}

func (s *SimulatorPanel) createUI() {
	s.locationBtn = widget.NewButton("", s.ToggleLocation)

	s.discountValue = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
	s.discountSlider = newSpendSlider(s.input.DiscountSpend, func(v int) { s.SetDiscount(v) })

	s.volumeValue = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
	s.volumeSlider = newSpendSlider(s.input.VolumeSpend, func(v int) { s.SetVolume(v) })

	s.result = canvas.NewText("", ColorBrandBlue)
	s.result.TextSize = ResultTextSize
	s.result.TextStyle = fyne.TextStyle{Bold: true}
	s.result.Alignment = fyne.TextAlignCenter

	equation := canvas.NewText("Equation: "+s.model.Equation(), ColorSlate)
	equation.TextSize = EquationTextSize
	equation.TextStyle = fyne.TextStyle{Monospace: true}
	equation.Alignment = fyne.TextAlignCenter

	location := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle(s.text.LocationLabel, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		s.locationBtn,
	)

	controls := container.NewVBox(
		location,
		widget.NewSeparator(),
		sliderBlock(s.text.DiscountLabel, s.discountValue, s.discountSlider, s.text.DiscountImpact),
		sliderBlock(s.text.VolumeLabel, s.volumeValue, s.volumeSlider, s.text.VolumeImpact),
	)

	unit := canvas.NewText(s.text.Unit, ColorSlate)
	unit.Alignment = fyne.TextAlignCenter
	resultLabel := widget.NewLabelWithStyle(s.text.ResultLabel, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	output := container.NewVBox(layout.NewSpacer(), resultLabel, s.result, unit, equation, layout.NewSpacer())

	card := widget.NewCard(s.text.CardTitle, "", container.NewGridWithColumns(PageMaxColumns, controls, output))
	s.root = container.NewVBox(
		pageHeading(s.text.Heading, s.text.Lede),
		card,
	)
}

func newSpendSlider(initial int, onChanged func(int)) *widget.Slider {
	slider := widget.NewSlider(model.MinSpend, model.MaxSpend)
	slider.Step = 1
	slider.SetValue(float64(initial))
	slider.OnChanged = func(v float64) {
		onChanged(int(v + 0.5))
	}
	return slider
}

func sliderBlock(label string, value *widget.Label, slider *widget.Slider, impact string) fyne.CanvasObject {
	scale := container.NewBorder(nil, nil,
		lowLabel(strconv.Itoa(model.MinSpend)+"L"),
		lowLabel(strconv.Itoa(model.MaxSpend)+"L"),
		container.NewCenter(lowLabel(impact)),
	)
	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabelWithStyle(label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), value),
		slider,
		scale,
	)
}

func lowLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Importance = widget.LowImportance
	return l
}

// ToggleLocation flips between residential and commercial
func (s *SimulatorPanel) ToggleLocation() {
	s.input.IsResidential = !s.input.IsResidential
	s.update()
}

// SetDiscount sets the discount spend, clamped to the slider range
func (s *SimulatorPanel) SetDiscount(v int) {
	s.input.DiscountSpend = v
	s.update()
}

// SetVolume sets the volume spend, clamped to the slider range
func (s *SimulatorPanel) SetVolume(v int) {
	s.input.VolumeSpend = v
	s.update()
}

// Input returns the current simulator state
func (s *SimulatorPanel) Input() model.SimulatorInput {
	return s.input
}

// Projected returns the forecast currently displayed
func (s *SimulatorPanel) Projected() int64 {
	return model.Predict(s.model, s.input)
}

// Container returns the panel content
func (s *SimulatorPanel) Container() fyne.CanvasObject {
	return s.root
}

func (s *SimulatorPanel) update() {
	s.input = s.input.Clamped()

	s.locationBtn.SetText(s.input.LocationLabel(s.model))
	if s.input.IsResidential {
		s.locationBtn.Importance = widget.HighImportance
		s.locationBtn.SetIcon(theme.HomeIcon())
	} else {
		s.locationBtn.Importance = widget.MediumImportance
		s.locationBtn.SetIcon(theme.StorageIcon())
	}
	s.locationBtn.Refresh()

	syncSlider(s.discountSlider, s.input.DiscountSpend)
	syncSlider(s.volumeSlider, s.input.VolumeSpend)
	s.discountValue.SetText(strconv.Itoa(s.input.DiscountSpend) + ValueSuffix)
	s.volumeValue.SetText(strconv.Itoa(s.input.VolumeSpend) + ValueSuffix)

	projected := model.Predict(s.model, s.input)
	s.result.Text = fmt.Sprintf("%d", projected)
	s.result.Refresh()

	s.logger.Debug("forecast updated",
		zap.Bool("residential", s.input.IsResidential),
		zap.Int("discount_spend", s.input.DiscountSpend),
		zap.Int("volume_spend", s.input.VolumeSpend),
		zap.Int64("projected", projected),
	)
}

// syncSlider moves slider to v without firing OnChanged
func syncSlider(slider *widget.Slider, v int) {
	if slider.Value == float64(v) {
		return
	}
	slider.Value = float64(v)
	slider.Refresh()
}
