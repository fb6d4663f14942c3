package main

import (
	"qr-kiosk/internal/app"
	"qr-kiosk/internal/config"
	"qr-kiosk/internal/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)

	application, err := app.NewApplication(cfg, appLogger, app.Options{FullScreen: true})
	if err != nil {
		log.Fatal().Err(err).Msg("application initialization failed")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("application execution failed")
	}
}
