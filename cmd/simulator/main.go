package main

import (
	"context"
	"log"
	"time"

	"eventrix/simulator"
)

func main() {
	// Define simulation configuration
	config := simulator.SimConfig{
		NumClients:      25,
		SimulationTime:  10 * time.Minute,
		BrowseFrequency: 600.0,
		CreateFrequency: 60.0,
		VoteFrequency:   300.0,
		LikeFrequency:   200.0,
		ZipfS:           1.07,
		EngineURL:       "http://localhost:8080",
	}

	sim := simulator.NewSimulator(config)
	ctx, cancel := context.WithTimeout(context.Background(), config.SimulationTime)
	defer cancel()

	// Log configuration
	log.Printf("Starting simulation with configuration:")
	log.Printf("- Engine URL: %s", config.EngineURL)
	log.Printf("- Number of clients: %d", config.NumClients)
	log.Printf("- Simulation time: %v", config.SimulationTime)
	log.Printf("- Browse frequency: %.2f browses/client/hour", config.BrowseFrequency)
	log.Printf("- Create frequency: %.2f creations/client/hour", config.CreateFrequency)
	log.Printf("- Vote frequency: %.2f votes/client/hour", config.VoteFrequency)
	log.Printf("- Like frequency: %.2f likes/client/hour", config.LikeFrequency)
	log.Printf("- Zipf parameter: %.2f", config.ZipfS)

	// Start simulation
	if err := sim.Run(ctx); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	// Print final metrics
	metrics := sim.GetMetrics()
	log.Printf("\nSimulation completed. Final metrics:")
	log.Printf("- Total clients: %d", metrics.TotalClients)
	log.Printf("- Total browses: %d", metrics.TotalBrowses)
	log.Printf("- Total created: %d", metrics.TotalCreated)
	log.Printf("- Total votes: %d (duplicates: %d)", metrics.TotalVotes, metrics.DuplicateVotes)
	log.Printf("- Total likes: %d", metrics.TotalLikes)
	log.Printf("- Average latency: %v", metrics.AverageLatency)
	log.Printf("- Error count: %d", metrics.ErrorCount)
}
