package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/client"
	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("light-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("light-client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
