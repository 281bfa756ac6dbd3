package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/promaxdigital/casestudy/internal/model"
)

// phaseIcon returns the sidebar icon for a phase
func phaseIcon(id model.PhaseID) fyne.Resource {
	switch id {
	case model.PhaseFraming:
		return theme.SearchIcon()
	case model.PhaseModeling:
		return theme.ListIcon()
	case model.PhaseStrategy:
		return theme.RadioButtonCheckedIcon()
	case model.PhaseConclusion:
		return theme.DocumentIcon()
	case model.PhaseSimulator:
		return theme.GridIcon()
	default:
		return theme.QuestionIcon()
	}
}

// fixedWidth pins obj to at least w using a transparent spacer underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// Sidebar renders phase navigation in two forms: the full panel and the
// collapsed icon rail
type Sidebar struct {
	nav *model.Navigator

	buttons     []*widget.Button
	checks      []*widget.Icon
	railButtons []*widget.Button
	collapseBtn *widget.Button
	expandBtn   *widget.Button

	expanded fyne.CanvasObject
	rail     fyne.CanvasObject
}

// NewSidebar creates both sidebar forms for the phases of nav
func NewSidebar(brand, tagline string, appendix []string, nav *model.Navigator, onSelect func(int), onCollapse, onExpand func()) *Sidebar {
	s := &Sidebar{nav: nav}

	entries := container.NewVBox()
	rail := container.NewVBox()
	for i, p := range nav.Phases() {
		idx := i // Capture for closure
		btn := widget.NewButtonWithIcon(p.Title, phaseIcon(p.ID), func() { onSelect(idx) })
		btn.Alignment = widget.ButtonAlignLeading
		check := widget.NewIcon(theme.ConfirmIcon())
		check.Hide()
		s.buttons = append(s.buttons, btn)
		s.checks = append(s.checks, check)
		entries.Add(container.NewBorder(nil, nil, nil, check, btn))

		railBtn := widget.NewButtonWithIcon("", phaseIcon(p.ID), func() { onSelect(idx) })
		s.railButtons = append(s.railButtons, railBtn)
		rail.Add(railBtn)
	}

	s.collapseBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), onCollapse)
	s.collapseBtn.Importance = widget.LowImportance
	s.expandBtn = widget.NewButtonWithIcon("", theme.MenuIcon(), onExpand)
	s.expandBtn.Importance = widget.LowImportance

	brandLabel := widget.NewLabelWithStyle(brand, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	taglineLabel := lowLabel(tagline)
	header := container.NewBorder(nil, nil, nil, s.collapseBtn, container.NewVBox(brandLabel, taglineLabel))

	tags := container.NewHBox()
	for _, tag := range appendix {
		t := canvas.NewText(tag, ColorSlate)
		t.TextSize = BadgeTextSize
		t.TextStyle = fyne.TextStyle{Monospace: true}
		tags.Add(t)
	}
	footer := container.NewVBox(widget.NewSeparator(), lowLabel(AppendixLabel), tags)

	s.expanded = fixedWidth(SidebarWidth, container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		footer, nil, nil,
		container.NewVBox(entries, layout.NewSpacer()),
	))
	s.rail = container.NewVBox(s.expandBtn, widget.NewSeparator(), rail)

	s.Refresh()
	return s
}

// Refresh updates highlight and completion marks from the navigator
func (s *Sidebar) Refresh() {
	current := s.nav.Current()
	for i, btn := range s.buttons {
		imp := widget.LowImportance
		if i == current {
			imp = widget.HighImportance
		}
		btn.Importance = imp
		btn.Refresh()
		s.railButtons[i].Importance = imp
		s.railButtons[i].Refresh()

		if s.nav.Completed(i) {
			s.checks[i].Show()
		} else {
			s.checks[i].Hide()
		}
	}
}

// Expanded returns the full sidebar
func (s *Sidebar) Expanded() fyne.CanvasObject {
	return s.expanded
}

// Rail returns the collapsed icon rail
func (s *Sidebar) Rail() fyne.CanvasObject {
	return s.rail
}

// Footer is the previous / progress / next bar under each phase
type Footer struct {
	prevBtn *widget.Button
	nextBtn *widget.Button
	dots    []*canvas.Circle
	root    fyne.CanvasObject
}

// NewFooter creates the footer for n phases
func NewFooter(n int, onPrevious, onNext func(), onSwipe func(SwipeDirection)) *Footer {
	f := &Footer{}
	f.prevBtn = widget.NewButton(PreviousLabel, onPrevious)
	f.nextBtn = widget.NewButtonWithIcon(NextLabel, theme.NavigateNextIcon(), onNext)
	f.nextBtn.IconPlacement = widget.ButtonIconTrailingText
	f.nextBtn.Importance = widget.HighImportance

	dots := container.NewHBox()
	for i := 0; i < n; i++ {
		dot := canvas.NewCircle(ColorSlateLight)
		dot.Resize(fyne.NewSize(ProgressDotSize, ProgressDotSize))
		f.dots = append(f.dots, dot)
		dots.Add(container.NewGridWrap(fyne.NewSize(ProgressDotSize, ProgressDotSize), dot))
	}

	f.root = container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, f.prevBtn, f.nextBtn, NewSwipeArea(container.NewCenter(dots), onSwipe)),
	)
	return f
}

// Refresh updates button state and the active dot
func (f *Footer) Refresh(nav *model.Navigator) {
	if nav.CanPrevious() {
		f.prevBtn.Enable()
	} else {
		f.prevBtn.Disable()
	}
	if nav.CanNext() {
		f.nextBtn.Enable()
	} else {
		f.nextBtn.Disable()
	}
	for i, dot := range f.dots {
		if i == nav.Current() {
			dot.FillColor = ColorBrandBlue
		} else {
			dot.FillColor = ColorSlateLight
		}
		dot.Refresh()
	}
}

// Container returns the footer bar
func (f *Footer) Container() fyne.CanvasObject {
	return f.root
}
