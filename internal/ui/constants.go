package ui

import "time"

// Text fragments
const (
	AppTitle      = "MyPick Case Study"
	ValueSuffix   = " L"
	PreviousLabel = "Previous"
	NextLabel     = "Next Phase"
	SimulateLabel = "Simulate Scenario"
	AppendixLabel = "Technical Appendix"
)

// Menu labels
const (
	MenuFile          = "File"
	MenuRevealData    = "Reveal data folder"
	MenuRevealAssets  = "Reveal assets folder"
	MenuNavigate      = "Navigate"
	MenuToggleSidebar = "Toggle sidebar"
	MenuCloseImage    = "Close image"
	MenuPreviousPhase = "Previous phase"
	MenuNextPhase     = "Next phase"
)

// Layout sizing
const (
	SidebarWidth     float32 = 260
	ThumbnailHeight  float32 = 180
	ThumbnailWidth   float32 = 320
	OverlayMargin    float32 = 48
	ProgressDotSize  float32 = 8
	ResultTextSize   float32 = 48
	EquationTextSize float32 = 11
	BadgeTextSize    float32 = 10
	PageMaxColumns           = 2
)

// Swipe navigation
const (
	DefaultSwipeThreshold float32 = 80
	SwipeDebounce                 = 300 * time.Millisecond
)
