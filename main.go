package main

import (
	"time"

	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/simulator"
	"auction-marketplace/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLogLevel(cfg.LogLevel)

	store := repository.NewMemoryStore()
	directory := repository.NewMemoryDirectory()

	if cfg.SeedData {
		repository.Prepopulate(store, directory, time.Now().UTC())
	}

	auctionSvc := auction.NewAuctionService(store, directory)

	sim := simulator.New(auctionSvc, directory, cfg.SimulatorInterval)
	if cfg.SimulatorEnabled {
		sim.Start()
		defer sim.Stop()
	}

	router := server.SetupRouter(auctionSvc, sim)

	utils.Info("starting auction marketplace server", map[string]any{
		"addr":              cfg.Addr(),
		"simulator_enabled": cfg.SimulatorEnabled,
		"simulator_period":  cfg.SimulatorInterval.String(),
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
