package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/host"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewWindowLogger("wa-desk")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	var console io.Writer = io.Discard
	consoleFile, err := logger.OpenNearExecutable(cfg.App.ConsoleLogPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.App.ConsoleLogPath).Msg("console output disabled")
	} else {
		defer consoleFile.Close()
		console = consoleFile
	}

	version := buildVersion
	if version == "N/A" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = host.RunDesktop(ctx, cfg, buildInfo, host.NewWhatsAppClient, host.NewTerminalWindow, console, log)
	if err != nil {
		log.Fatal().Err(err).Msg("desktop host error")
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
