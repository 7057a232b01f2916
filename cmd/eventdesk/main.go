// cmd/eventdesk is the application entry point. It wires together all layers
// and runs the interactive menu.
package main

import (
	"os"

	"eventdesk/internal/cli"
	"eventdesk/internal/config"
	"eventdesk/internal/logger"
	"eventdesk/internal/seed"
	"eventdesk/internal/service"
	"eventdesk/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("config", "error", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	var ids store.IDGenerator = store.NewSequenceIDGenerator()
	if cfg.IDScheme == config.IDSchemeUUID {
		ids = store.UUIDGenerator{}
	}

	st := store.New(ids)
	svc := service.New(st, log, cfg.DataFile)

	if cfg.Seed {
		fixture := seed.Default()
		if cfg.SeedFile != "" {
			fixture, err = seed.LoadFile(cfg.SeedFile)
			if err != nil {
				log.Fatal("seed", "error", err)
			}
		}
		if err := seed.Apply(svc, fixture); err != nil {
			log.Fatal("seed", "error", err)
		}
		log.Info("sample data seeded", "events", len(fixture.Events), "attendees", len(fixture.Attendees))
	}

	cli.New(svc, os.Stdin, os.Stdout).Run()
}
