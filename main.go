package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON or YAML config file")
		generations = flag.Int("generations", -1, "override the configured generation count")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[life] ", log.LstdFlags|log.Lmicroseconds)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Printf("Using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	case err != nil:
		logger.Fatalf("config: %+v", err)
	}
	if *generations >= 0 {
		config.Generations = *generations
	}

	sims, err := initializeSimulations(config)
	if err != nil {
		logger.Fatalf("patterns: %+v", err)
	}
	logger.Printf("Worlds: %d | Generations: %d | Stop when stagnant: %v",
		len(sims), config.Generations, config.StopWhenStagnant)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = runSimulations(ctx, sims, config, logger); err != nil {
		logger.Printf("Shutting down early: %v", err)
	}
	for _, sim := range sims {
		logger.Printf("Final stats: %s %d generations in %.1f seconds, peak population %d",
			sim.name, sim.world.Generation(), sim.stats.Runtime().Seconds(), sim.stats.PeakPopulation)
	}

	// A Life 1.06 file holds one pattern, so several worlds get a file each
	if len(sims) == 1 {
		if err = writeResult(os.Stdout, sims[0], config.Header); err != nil {
			logger.Fatalf("output: %+v", err)
		}
		return
	}
	paths, err := writeResultFiles(sims, config.Header)
	if err != nil {
		logger.Fatalf("output: %+v", err)
	}
	for _, path := range paths {
		logger.Printf("Wrote %s", path)
	}
}
