package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/model"
)

// AccordionItem is a collapsible panel with a status badge in its header.
// The open state is set by its AccordionGroup; tapping the header only
// reports the tap through OnToggle.
type AccordionItem struct {
	widget.BaseWidget

	status model.AuditStatus
	open   bool

	// UI components
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	badge         *canvas.Text
	chevron       *widget.Icon
	header        *TapArea
	body          *fyne.Container

	// Callbacks
	OnToggle func()
}

// NewAccordionItem creates a closed accordion item
func NewAccordionItem(title, subtitle string, status model.AuditStatus, body fyne.CanvasObject) *AccordionItem {
	item := &AccordionItem{status: status}
	item.ExtendBaseWidget(item)

	item.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	item.subtitleLabel = widget.NewLabel(subtitle)
	item.subtitleLabel.Importance = widget.LowImportance

	item.badge = canvas.NewText(status.String(), statusColor(status.IsPassed()))
	item.badge.TextStyle = fyne.TextStyle{Bold: true}
	item.badge.TextSize = BadgeTextSize

	item.chevron = widget.NewIcon(theme.MenuDropDownIcon())

	headerContent := container.NewBorder(nil, nil, nil,
		container.NewHBox(container.NewCenter(item.badge), item.chevron),
		container.NewVBox(item.titleLabel, item.subtitleLabel),
	)
	item.header = NewTapArea(headerContent, func() {
		if item.OnToggle != nil {
			item.OnToggle()
		}
	})

	item.body = container.NewPadded(body)
	item.body.Hide()
	return item
}

// SetOpen shows or hides the body
func (a *AccordionItem) SetOpen(open bool) {
	if a.open == open {
		return
	}
	a.open = open
	if open {
		a.body.Show()
		a.chevron.SetResource(theme.MenuDropUpIcon())
	} else {
		a.body.Hide()
		a.chevron.SetResource(theme.MenuDropDownIcon())
	}
	a.Refresh()
}

// IsOpen reports whether the body is visible
func (a *AccordionItem) IsOpen() bool {
	return a.open
}

// Status returns the audit verdict shown in the badge
func (a *AccordionItem) Status() model.AuditStatus {
	return a.status
}

// CreateRenderer creates the widget renderer
func (a *AccordionItem) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = theme.InputRadiusSize()
	bg.StrokeColor = ColorSlateLight
	bg.StrokeWidth = 1
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewVBox(a.header, a.body)))
}

// AccordionGroup keeps at most one of its items open
type AccordionGroup struct {
	name   string
	state  model.Disclosure
	keys   []model.PanelKey
	items  map[model.PanelKey]*AccordionItem
	box    *fyne.Container
	logger *zap.Logger
}

// NewAccordionGroup creates an empty group with initial open (or NoPanel)
func NewAccordionGroup(name string, initial model.PanelKey, logger *zap.Logger) *AccordionGroup {
	return &AccordionGroup{
		name:   name,
		state:  model.NewDisclosure(initial),
		items:  make(map[model.PanelKey]*AccordionItem),
		box:    container.NewVBox(),
		logger: logger,
	}
}

// Add appends item under key
func (g *AccordionGroup) Add(key model.PanelKey, item *AccordionItem) {
	g.keys = append(g.keys, key)
	g.items[key] = item
	item.OnToggle = func() { g.Toggle(key) }
	item.SetOpen(g.state.IsOpen(key))
	g.box.Add(item)
}

// Toggle applies a header tap on key
func (g *AccordionGroup) Toggle(key model.PanelKey) {
	g.state.Toggle(key)
	open, anyOpen := g.state.Open()
	g.logger.Debug("accordion toggled",
		zap.String("group", g.name),
		zap.String("key", string(key)),
		zap.String("open", string(open)),
		zap.Bool("any_open", anyOpen),
	)
	for _, k := range g.keys {
		g.items[k].SetOpen(g.state.IsOpen(k))
	}
}

// State returns the current disclosure state
func (g *AccordionGroup) State() model.Disclosure {
	return g.state
}

// Item returns the item registered under key
func (g *AccordionGroup) Item(key model.PanelKey) *AccordionItem {
	return g.items[key]
}

// Container returns the stacked items
func (g *AccordionGroup) Container() *fyne.Container {
	return g.box
}
