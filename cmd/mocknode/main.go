package main

import (
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/handler"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mocknode"
	"github.com/MKhiriev/go-light-client/internal/server"
	"github.com/MKhiriev/go-light-client/internal/utils"
	"github.com/MKhiriev/go-light-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mock-node")
	cfg, err := config.GetMockNodeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	demo, err := mocknode.NewDemo(int(cfg.Server.DemoBlocks))
	if err != nil {
		log.Fatal().Err(err).Msg("error building demo chain")
	}
	log.Info().
		Uint32("chain_tip", demo.Chain.ChainTip()).
		Str("account_a", demo.AccountA.String()).
		Str("account_b", demo.AccountB.String()).
		Msg("demo chain ready")

	node := mocknode.NewNode(demo.Chain, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if cfg.Auth.TokenSignKey != "" {
		token, err := utils.GenerateJWTToken(cfg.Auth.TokenIssuer, "light-client", cfg.Auth.TokenDuration, cfg.Auth.TokenSignKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error issuing client token")
		}
		fmt.Printf("Client API token: %s\n", token.String())
	}

	handlers, err := handler.NewHandlers(node, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
