package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SwipeDirection is the dominant direction of a completed drag
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// classifySwipe returns the dominant direction of a drag of (dx, dy), or
// SwipeNone if it is shorter than threshold
func classifySwipe(dx, dy, threshold float32) SwipeDirection {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < threshold && absDy < threshold {
		return SwipeNone
	}

	if absDx > absDy {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}

// SwipeArea reports horizontal and vertical swipes over its content. It is
// driven by drag events so it works with a mouse as well as touch.
type SwipeArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onSwipe   func(SwipeDirection)
	threshold float32

	dx, dy    float32
	lastSwipe time.Time
}

// NewSwipeArea wraps content and calls onSwipe after each recognised swipe
func NewSwipeArea(content fyne.CanvasObject, onSwipe func(SwipeDirection)) *SwipeArea {
	s := &SwipeArea{
		content:   content,
		onSwipe:   onSwipe,
		threshold: DefaultSwipeThreshold,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Dragged accumulates drag movement
func (s *SwipeArea) Dragged(e *fyne.DragEvent) {
	s.dx += e.Dragged.DX
	s.dy += e.Dragged.DY
}

// DragEnd classifies the finished drag
func (s *SwipeArea) DragEnd() {
	dir := classifySwipe(s.dx, s.dy, s.threshold)
	s.dx, s.dy = 0, 0

	if dir == SwipeNone || s.onSwipe == nil {
		return
	}
	if time.Since(s.lastSwipe) < SwipeDebounce {
		return
	}
	s.lastSwipe = time.Now()
	s.onSwipe(dir)
}

// CreateRenderer creates the widget renderer
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}
