package main

import (
	"context"
	"log"
	"time"

	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
	"github.com/Skillseed/skillseed-roadmap-service/utils"
)

// RunCoreLoop is the persistent background loop of the service. It
// marks the service healthy once startup completes and periodically
// logs generation counters so operators can follow the fallback rate
// from the journal alone.
func RunCoreLoop(ctx context.Context, rec *telemetry.Recorder) error {
	utils.SetHealthStatus("OK", "Service is running normally")
	log.Println("Core Loop: Initialization complete, service is healthy")

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	var lastRequests uint64

	for {
		select {
		case <-ctx.Done():
			log.Println("Core Loop: Shutdown signal received")
			utils.SetHealthStatus("SHUTTING_DOWN", "Core loop is shutting down")
			return nil

		case <-ticker.C:
			snap := rec.Snapshot()
			if snap["requests"] == lastRequests {
				continue
			}
			lastRequests = snap["requests"]
			log.Printf("Core Loop: requests=%d model=%d fallback=%d rejected=%d",
				snap["requests"], snap["model_roadmaps"], snap["fallback_roadmaps"], snap["rejected_inputs"])
		}
	}
}
