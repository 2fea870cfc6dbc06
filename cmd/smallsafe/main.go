package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-small-safe/internal/client"
	"github.com/MKhiriev/go-small-safe/internal/config"
	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/internal/service"
	"github.com/MKhiriev/go-small-safe/internal/store"
	"github.com/MKhiriev/go-small-safe/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsafe: %v\n", err)
		return 2
	}

	log := logger.NewFileLogger("smallsafe", cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		fmt.Fprintf(os.Stderr, "smallsafe: %s\n", tui.HumanizeError(err))
		return 1
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		fmt.Fprintf(os.Stderr, "smallsafe: %s\n", tui.HumanizeError(err))
		return 1
	}

	app := client.NewApp(services, cfg, log, client.WithBuildInfo(client.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}))

	if err = app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "smallsafe: %s\n", tui.HumanizeError(err))
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}

	return 0
}
