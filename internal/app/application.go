package app

import (
	"os"

	"qr-kiosk/internal/config"
	"qr-kiosk/internal/logger"
	"qr-kiosk/internal/netaddr"
	"qr-kiosk/internal/qr"
	"qr-kiosk/internal/screens"
	"qr-kiosk/internal/server"
	"qr-kiosk/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "QR Image Kiosk"
	AppID      = "com.kiosk.qrimage"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp   fyne.App
	config    *config.Config
	logger    logger.Logger
	navigator *screens.Navigator
	launcher  *server.Launcher
	lifecycle *Lifecycle
}

// Options lets callers swap the Fyne app, e.g. for a test driver.
type Options struct {
	FyneApp    fyne.App
	FullScreen bool
}

func NewApplication(cfg *config.Config, log logger.Logger, opts Options) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fyneApp := opts.FyneApp
	if fyneApp == nil {
		fyneApp = app.NewWithID(AppID)
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"images_dir": cfg.ImagesDir,
		"extension":  cfg.Extension,
		"port":       cfg.Port,
		"qr_path":    cfg.QRPath,
	})

	imageStore := store.New(cfg.ImagesDir, cfg.Extension)
	resolver := netaddr.NewResolver(cfg.ProbeAddress)

	generator := qr.NewGenerator(resolver, cfg.Port, cfg.QRPath, cfg.QRPixels, log)
	if cfg.TerminalQR {
		generator.EchoTo(os.Stdout)
	}

	launcher := server.NewLauncher(server.NewDownloadServer(cfg.ImagesDir, cfg.Port, log), log)

	navigator := screens.NewNavigator(screens.Deps{
		App:        fyneApp,
		Config:     cfg,
		Store:      imageStore,
		Generator:  generator,
		Launcher:   launcher,
		Logger:     log,
		FullScreen: opts.FullScreen,
	})

	application := &Application{
		fyneApp:   fyneApp,
		config:    cfg,
		logger:    log,
		navigator: navigator,
		launcher:  launcher,
		lifecycle: NewLifecycle(log),
	}
	application.lifecycle.Register(launcher)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Navigator() *screens.Navigator {
	return a.navigator
}

// Run shows the main menu and blocks in the Fyne loop. The download server is
// stopped only once the loop has ended.
func (a *Application) Run() error {
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.navigator.Start()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
