package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/config"
	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/model"
	"github.com/promaxdigital/casestudy/internal/platform"
)

// RootUI owns all view state: the active phase, the focused image and the
// sidebar mode. Child widgets receive plain data and callbacks.
type RootUI struct {
	window fyne.Window
	cfg    *config.Config
	cs     *content.CaseStudy
	logger *zap.Logger
	assets Assets

	nav         *model.Navigator
	focus       model.ImageFocus
	sidebarOpen bool

	sidebar  *Sidebar
	footer   *Footer
	overlay  *ZoomOverlay
	pages    *pageBuilder
	page     *phasePage
	pageHost *container.Scroll
	sideHost *fyne.Container
}

// NewRootUI builds the presentation into window. The caller owns the window
// title.
func NewRootUI(window fyne.Window, cfg *config.Config, cs *content.CaseStudy, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		window:      window,
		cfg:         cfg,
		cs:          cs,
		logger:      logger,
		assets:      NewAssets(cfg.AssetPath),
		nav:         model.NewNavigator(model.DefaultPhases()),
		sidebarOpen: true,
	}

	ui.setupUI()
	ui.reportMissingAssets()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.pages = &pageBuilder{
		cs:            ui.cs,
		assets:        ui.assets,
		logger:        ui.logger,
		openImage:     ui.OpenImage,
		goToSimulator: ui.GoToSimulator,
	}

	ui.sidebar = NewSidebar(ui.cs.Brand, ui.cs.Tagline, ui.cs.Appendix, ui.nav,
		ui.SelectPhase,
		func() { ui.SetSidebarOpen(false) },
		func() { ui.SetSidebarOpen(true) },
	)
	ui.sideHost = container.NewStack(ui.sidebar.Expanded())

	ui.footer = NewFooter(ui.nav.Len(), ui.PreviousPhase, ui.NextPhase, ui.onSwipe)
	ui.overlay = NewZoomOverlay(ui.assets, ui.onOverlayTap)
	ui.pageHost = container.NewVScroll(container.NewVBox())

	body := container.NewBorder(nil, ui.footer.Container(), nil, nil, container.NewPadded(ui.pageHost))
	shell := container.NewBorder(nil, nil, ui.sideHost, nil, body)

	ui.window.SetContent(container.NewStack(shell, ui.overlay.Container()))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.showPhase()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	revealData := fyne.NewMenuItem(MenuRevealData, func() {
		ui.revealFolder(ui.cfg.SourceDataDir)
	})
	revealAssets := fyne.NewMenuItem(MenuRevealAssets, func() {
		ui.revealFolder(ui.cfg.AssetPath)
	})

	navigate := fyne.NewMenu(MenuNavigate,
		fyne.NewMenuItem(MenuPreviousPhase, ui.PreviousPhase),
		fyne.NewMenuItem(MenuNextPhase, ui.NextPhase),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(MenuToggleSidebar, func() { ui.SetSidebarOpen(!ui.sidebarOpen) }),
		fyne.NewMenuItem(MenuCloseImage, ui.CloseImage),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(MenuFile, revealData, revealAssets),
		navigate,
	))
}

// SelectPhase jumps to phase i; out-of-range indexes are ignored
func (ui *RootUI) SelectPhase(i int) {
	if ui.nav.Select(i) {
		ui.showPhase()
	}
}

// NextPhase advances one phase
func (ui *RootUI) NextPhase() {
	if ui.nav.Next() {
		ui.showPhase()
	}
}

// PreviousPhase goes back one phase
func (ui *RootUI) PreviousPhase() {
	if ui.nav.Previous() {
		ui.showPhase()
	}
}

// GoToSimulator jumps straight to the simulator phase
func (ui *RootUI) GoToSimulator() {
	ui.SelectPhase(ui.nav.IndexOf(model.PhaseSimulator))
}

// SetSidebarOpen switches between the full sidebar and the icon rail
func (ui *RootUI) SetSidebarOpen(open bool) {
	if ui.sidebarOpen == open {
		return
	}
	ui.sidebarOpen = open
	if open {
		ui.sideHost.Objects = []fyne.CanvasObject{ui.sidebar.Expanded()}
	} else {
		ui.sideHost.Objects = []fyne.CanvasObject{ui.sidebar.Rail()}
	}
	ui.sideHost.Refresh()
	ui.logger.Debug("sidebar toggled", zap.Bool("open", open))
}

// OpenImage focuses img in the zoom overlay, replacing any focused image
func (ui *RootUI) OpenImage(img model.FocusedImage) {
	ui.focus.Open(img)
	ui.overlay.Show(img)
	ui.logger.Debug("image opened", zap.String("source", img.Source))
}

// CloseImage clears the zoom overlay
func (ui *RootUI) CloseImage() {
	if !ui.focus.IsOpen() {
		return
	}
	ui.focus.Close()
	ui.overlay.Hide()
	ui.logger.Debug("image closed")
}

// onOverlayTap applies a tap inside the overlay
func (ui *RootUI) onOverlayTap(target model.OverlayTarget) {
	if ui.focus.Tap(target) {
		ui.overlay.Hide()
		ui.logger.Debug("image dismissed", zap.Stringer("target", target))
	}
}

// showPhase renders the current phase from scratch
func (ui *RootUI) showPhase() {
	phase := ui.nav.CurrentPhase()
	ui.page = ui.pages.build(phase.ID)
	ui.pageHost.Content = ui.page.root
	ui.pageHost.Refresh()
	ui.pageHost.ScrollToTop()

	ui.sidebar.Refresh()
	ui.footer.Refresh(ui.nav)

	ui.logger.Debug("phase changed",
		zap.Int("index", ui.nav.Current()),
		zap.String("phase", phase.ID.String()),
	)
}

func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		ui.CloseImage()
	case fyne.KeyLeft:
		if !ui.focus.IsOpen() {
			ui.PreviousPhase()
		}
	case fyne.KeyRight:
		if !ui.focus.IsOpen() {
			ui.NextPhase()
		}
	}
}

func (ui *RootUI) onSwipe(dir SwipeDirection) {
	switch dir {
	case SwipeLeft:
		ui.NextPhase()
	case SwipeRight:
		ui.PreviousPhase()
	}
}

// revealFolder opens dir in the system file manager
func (ui *RootUI) revealFolder(dir string) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.logger.Warn("cannot create folder", zap.String("path", dir), zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	if err := platform.OpenFileInManager(dir); err != nil {
		ui.logger.Warn("cannot reveal folder", zap.String("path", dir), zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.logger.Info("folder revealed", zap.String("path", dir))
}

func (ui *RootUI) reportMissingAssets() {
	figs := ui.cs.Figures()
	names := make([]string, 0, len(figs))
	for _, f := range figs {
		names = append(names, f.Asset)
	}
	if missing := ui.assets.Missing(names...); len(missing) > 0 {
		ui.logger.Warn("presentation assets not found",
			zap.String("asset_path", ui.assets.Dir()),
			zap.Strings("missing", missing),
		)
	}
}
