package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/model"
)

// ZoomableImage is a thumbnail that asks the root view to focus its figure
// when tapped
type ZoomableImage struct {
	widget.BaseWidget

	figure content.Figure
	image  *canvas.Image
	onOpen func(model.FocusedImage)
}

// NewZoomableImage creates a thumbnail for fig
func NewZoomableImage(assets Assets, fig content.Figure, onOpen func(model.FocusedImage)) *ZoomableImage {
	z := &ZoomableImage{
		figure: fig,
		image:  assets.Image(fig.Asset),
		onOpen: onOpen,
	}
	z.image.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	z.ExtendBaseWidget(z)
	return z
}

// Figure returns the figure this thumbnail shows
func (z *ZoomableImage) Figure() content.Figure {
	return z.figure
}

// Tapped opens the figure in the overlay
func (z *ZoomableImage) Tapped(*fyne.PointEvent) {
	if z.onOpen != nil {
		z.onOpen(model.FocusedImage{Source: z.figure.Asset, Caption: z.figure.Caption})
	}
}

// Cursor shows a pointer over the thumbnail
func (z *ZoomableImage) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (z *ZoomableImage) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	bg.CornerRadius = theme.InputRadiusSize()
	hint := container.NewBorder(nil,
		container.NewHBox(layout.NewSpacer(), widget.NewIcon(theme.ZoomInIcon())),
		nil, nil)
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(z.image), hint))
}

// ZoomOverlay is the full-window layer showing the focused image over a
// dimmed backdrop. It only reports taps; the owner decides whether to hide.
type ZoomOverlay struct {
	assets Assets
	onTap  func(model.OverlayTarget)

	backdrop  *TapArea
	panel     *TapArea
	closeBtn  *widget.Button
	imageHost *fyne.Container
	caption   *canvas.Text
	root      *fyne.Container
}

// NewZoomOverlay creates a hidden overlay
func NewZoomOverlay(assets Assets, onTap func(model.OverlayTarget)) *ZoomOverlay {
	o := &ZoomOverlay{assets: assets, onTap: onTap}

	o.backdrop = NewTapArea(canvas.NewRectangle(ColorBackdrop), func() {
		o.report(model.TargetBackdrop)
	})

	o.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		o.report(model.TargetCloseButton)
	})
	o.closeBtn.Importance = widget.LowImportance

	o.imageHost = container.NewStack()
	o.caption = canvas.NewText("", color.White)
	o.caption.Alignment = fyne.TextAlignCenter
	o.caption.TextStyle = fyne.TextStyle{Bold: true}

	o.panel = NewTapArea(container.NewBorder(nil, o.caption, nil, nil, o.imageHost), func() {
		o.report(model.TargetImage)
	})

	framed := container.New(
		layout.NewCustomPaddedLayout(OverlayMargin, OverlayMargin, OverlayMargin, OverlayMargin),
		o.panel,
	)
	closeRow := container.NewHBox(layout.NewSpacer(), o.closeBtn)

	o.root = container.NewStack(o.backdrop, framed, container.NewBorder(closeRow, nil, nil, nil))
	o.root.Hide()
	return o
}

// Show displays img
func (o *ZoomOverlay) Show(img model.FocusedImage) {
	large := o.assets.Image(img.Source)
	o.imageHost.Objects = []fyne.CanvasObject{large}
	o.imageHost.Refresh()
	o.caption.Text = img.Caption
	o.caption.Refresh()
	o.root.Show()
}

// Hide removes the overlay
func (o *ZoomOverlay) Hide() {
	o.root.Hide()
	o.imageHost.Objects = nil
}

// Visible reports whether the overlay is shown
func (o *ZoomOverlay) Visible() bool {
	return o.root.Visible()
}

// Caption returns the caption currently shown
func (o *ZoomOverlay) Caption() string {
	return o.caption.Text
}

// Container returns the overlay layer
func (o *ZoomOverlay) Container() fyne.CanvasObject {
	return o.root
}

func (o *ZoomOverlay) report(target model.OverlayTarget) {
	if o.onTap != nil {
		o.onTap(target)
	}
}
