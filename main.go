package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/config"
	"github.com/promaxdigital/casestudy/internal/content"
	"github.com/promaxdigital/casestudy/internal/logging"
	"github.com/promaxdigital/casestudy/internal/model"
	"github.com/promaxdigital/casestudy/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.promaxdigital.casestudy"

func main() {
	cfg, err := config.Load(config.DefaultConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting presentation",
		zap.String("version", version),
		zap.String("asset_path", cfg.AssetPath),
	)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPresentationTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", ui.AppTitle, version))
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	if icon, err := fyne.LoadResourceFromPath(cfg.AssetFile(ui.AppIcon)); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("window icon not loaded", zap.Error(err))
	}

	ui.NewRootUI(myWindow, cfg, content.Default(model.DefaultPredictionModel()), logger)

	myWindow.ShowAndRun()
}
