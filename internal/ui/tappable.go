package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// TapArea makes any canvas object tappable. Tappable children such as
// buttons still receive their own taps; a tap handled here never propagates
// to objects underneath.
type TapArea struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	OnTapped func()
}

// NewTapArea wraps content; a nil onTapped swallows taps
func NewTapArea(content fyne.CanvasObject, onTapped func()) *TapArea {
	t := &TapArea{content: content, OnTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

// Tapped handles tap events
func (t *TapArea) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

// Cursor shows a pointer when the area does something
func (t *TapArea) Cursor() desktop.Cursor {
	if t.OnTapped == nil {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (t *TapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}
