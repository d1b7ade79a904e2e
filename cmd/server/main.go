package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/rebaby/internal/config"
	handlerhttp "github.com/MKhiriev/rebaby/internal/handler/http"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/server"
	"github.com/MKhiriev/rebaby/internal/service"
	"github.com/MKhiriev/rebaby/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine; the environment wins anyway
	_ = godotenv.Load()

	log := logger.NewLogger("rebaby-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler, err := handlerhttp.NewHandler(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
