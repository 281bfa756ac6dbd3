package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette shared by the theme and hand-drawn canvas objects
var (
	ColorBrandBlue  = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	ColorSlate      = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	ColorSlateLight = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	ColorPassed     = color.RGBA{R: 22, G: 163, B: 74, A: 255}
	ColorFailed     = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	ColorBackdrop   = color.NRGBA{R: 15, G: 23, B: 42, A: 230}
)

// PresentationTheme is a light slate theme with blue accents and roomier
// headings than the Fyne default
type PresentationTheme struct{}

// NewPresentationTheme creates the presentation theme
func NewPresentationTheme() fyne.Theme {
	return &PresentationTheme{}
}

// Color returns theme colors
func (t *PresentationTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorBrandBlue
	case theme.ColorNameSuccess:
		return ColorPassed
	case theme.ColorNameError:
		return ColorFailed
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 15, G: 23, B: 42, A: 255}
		}
		return color.RGBA{R: 248, G: 250, B: 252, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 241, G: 245, B: 249, A: 255}
		}
		return color.RGBA{R: 30, G: 41, B: 59, A: 255}
	case theme.ColorNameSeparator:
		if variant == theme.VariantDark {
			return ColorSlate
		}
		return ColorSlateLight
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PresentationTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PresentationTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *PresentationTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameScrollBar:
		return 10
	}

	return theme.DefaultTheme().Size(name)
}

// statusColor maps an audit verdict to its badge color
func statusColor(passed bool) color.Color {
	if passed {
		return ColorPassed
	}
	return ColorFailed
}
