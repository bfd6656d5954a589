package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	myHTTP "github.com/MKhiriev/go-pass-vault/internal/handler/http"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/server"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pass-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.Address).Str("region", cfg.Storage.Dynamo.Region).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.Dynamo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	encryptor, err := crypto.NewEncryptor(cfg.Crypto.MasterKey, cfg.Crypto.KeySalt)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating encryptor")
	}

	services := service.NewServices(storages, encryptor, log)

	handler := myHTTP.NewHandler(services, cfg.App.Version, log)

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
