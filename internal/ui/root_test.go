package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/config"
	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/model"
)

func newTestUI(t *testing.T) *RootUI {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	cfg := config.DefaultConfig()
	cfg.AssetPath = t.TempDir()
	cfg.SourceDataDir = t.TempDir()

	return NewRootUI(w, cfg, content.Default(model.DefaultPredictionModel()), zap.NewNop())
}

func TestNewRootUI_KeepsWindowTitle(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	w.SetTitle(AppTitle + " v1.2.3")

	cfg := config.DefaultConfig()
	cfg.AssetPath = t.TempDir()
	NewRootUI(w, cfg, content.Default(model.DefaultPredictionModel()), zap.NewNop())

	assert.Equal(t, AppTitle+" v1.2.3", w.Title())
}

func TestRootUI_InitialState(t *testing.T) {
	ui := newTestUI(t)

	assert.Equal(t, 0, ui.nav.Current())
	assert.True(t, ui.footer.prevBtn.Disabled())
	assert.False(t, ui.footer.nextBtn.Disabled())
	assert.False(t, ui.focus.IsOpen())
	assert.False(t, ui.overlay.Visible())

	group := ui.page.groups[GroupFindings]
	require.NotNil(t, group)
	assert.True(t, group.Item(content.FindingSales).IsOpen())
	assert.False(t, group.Item(content.FindingBrand).IsOpen())
}

func TestRootUI_FooterNavigation(t *testing.T) {
	ui := newTestUI(t)

	test.Tap(ui.footer.prevBtn)
	assert.Equal(t, 0, ui.nav.Current(), "previous is disabled on the first phase")

	test.Tap(ui.footer.nextBtn)
	assert.Equal(t, 1, ui.nav.Current())
	assert.False(t, ui.footer.prevBtn.Disabled())
	assert.True(t, ui.sidebar.checks[0].Visible())
	assert.False(t, ui.sidebar.checks[1].Visible())

	assumptions := ui.page.groups[GroupAssumptions]
	require.NotNil(t, assumptions)
	assert.True(t, assumptions.Item(content.AssumptionNormality).IsOpen())

	for i := 0; i < 10; i++ {
		test.Tap(ui.footer.nextBtn)
	}
	assert.Equal(t, ui.nav.Len()-1, ui.nav.Current())
	assert.True(t, ui.footer.nextBtn.Disabled())
	require.NotNil(t, ui.page.simulator)

	test.Tap(ui.footer.prevBtn)
	assert.Equal(t, ui.nav.Len()-2, ui.nav.Current())
}

func TestRootUI_SidebarSelect(t *testing.T) {
	ui := newTestUI(t)

	test.Tap(ui.sidebar.buttons[3])
	assert.Equal(t, 3, ui.nav.Current())
	for i := 0; i < 3; i++ {
		assert.True(t, ui.sidebar.checks[i].Visible(), "phase %d completed", i)
	}
	assert.Equal(t, "HighImportance", importanceName(ui.sidebar.buttons[3].Importance))

	ui.SelectPhase(42)
	ui.SelectPhase(-1)
	assert.Equal(t, 3, ui.nav.Current())
}

func TestRootUI_SimulateScenarioJump(t *testing.T) {
	ui := newTestUI(t)

	ui.SelectPhase(ui.nav.IndexOf(model.PhaseConclusion))
	require.NotNil(t, ui.page.simulateBtn)

	test.Tap(ui.page.simulateBtn)
	assert.Equal(t, model.PhaseSimulator, ui.nav.CurrentPhase().ID)
	require.NotNil(t, ui.page.simulator)
	assert.Equal(t, int64(196), ui.page.simulator.Projected())
}

func TestRootUI_AccordionToggle(t *testing.T) {
	ui := newTestUI(t)
	group := ui.page.groups[GroupFindings]
	sales := group.Item(content.FindingSales)
	brand := group.Item(content.FindingBrand)

	test.Tap(brand.header)
	assert.True(t, brand.IsOpen())
	assert.False(t, sales.IsOpen())

	test.Tap(brand.header)
	assert.False(t, brand.IsOpen())
	assert.False(t, sales.IsOpen())
	_, open := group.State().Open()
	assert.False(t, open)
}

func TestRootUI_PanelsResetOnRevisit(t *testing.T) {
	ui := newTestUI(t)
	test.Tap(ui.page.groups[GroupFindings].Item(content.FindingBrand).header)

	ui.NextPhase()
	ui.PreviousPhase()

	group := ui.page.groups[GroupFindings]
	assert.True(t, group.Item(content.FindingSales).IsOpen())
	assert.False(t, group.Item(content.FindingBrand).IsOpen())
}

func TestRootUI_ZoomOverlay(t *testing.T) {
	ui := newTestUI(t)
	require.NotEmpty(t, ui.page.images)

	thumb := ui.page.images[0]
	test.Tap(thumb)
	require.True(t, ui.focus.IsOpen())
	assert.True(t, ui.overlay.Visible())
	assert.Equal(t, thumb.Figure().Caption, ui.overlay.Caption())

	test.Tap(ui.overlay.panel)
	assert.True(t, ui.focus.IsOpen(), "taps on the image are swallowed")
	assert.True(t, ui.overlay.Visible())

	test.Tap(ui.overlay.closeBtn)
	assert.False(t, ui.focus.IsOpen())
	assert.False(t, ui.overlay.Visible())

	test.Tap(thumb)
	test.Tap(ui.overlay.backdrop)
	assert.False(t, ui.focus.IsOpen())
	assert.False(t, ui.overlay.Visible())
}

func TestRootUI_OpenImageReplacesFocus(t *testing.T) {
	ui := newTestUI(t)

	ui.OpenImage(model.FocusedImage{Source: "a.png", Caption: "A"})
	ui.OpenImage(model.FocusedImage{Source: "b.png", Caption: "B"})

	img, ok := ui.focus.Current()
	require.True(t, ok)
	assert.Equal(t, "B", img.Caption)
	assert.Equal(t, "B", ui.overlay.Caption())
}

func TestRootUI_Keyboard(t *testing.T) {
	ui := newTestUI(t)

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 1, ui.nav.Current())
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, 0, ui.nav.Current())

	ui.OpenImage(model.FocusedImage{Source: "a.png", Caption: "A"})
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 0, ui.nav.Current(), "arrows are ignored while zoomed")
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.False(t, ui.focus.IsOpen())
}

func TestRootUI_SidebarCollapse(t *testing.T) {
	ui := newTestUI(t)

	test.Tap(ui.sidebar.collapseBtn)
	assert.False(t, ui.sidebarOpen)
	require.Len(t, ui.sideHost.Objects, 1)
	assert.Equal(t, ui.sidebar.Rail(), ui.sideHost.Objects[0])

	test.Tap(ui.sidebar.railButtons[2])
	assert.Equal(t, 2, ui.nav.Current())

	test.Tap(ui.sidebar.expandBtn)
	assert.True(t, ui.sidebarOpen)
	assert.Equal(t, ui.sidebar.Expanded(), ui.sideHost.Objects[0])
}

func TestRootUI_Swipe(t *testing.T) {
	ui := newTestUI(t)

	ui.onSwipe(SwipeLeft)
	assert.Equal(t, 1, ui.nav.Current())
	ui.onSwipe(SwipeUp)
	assert.Equal(t, 1, ui.nav.Current())
	ui.onSwipe(SwipeRight)
	assert.Equal(t, 0, ui.nav.Current())
}
