package ui

// Package ui contains the Fyne desktop presentation: the phase sidebar and
// footer, accordion panels, the image zoom overlay and the sales simulator.
// All view state lives in RootUI and the widgets it builds; nothing persists.
