package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/Skillseed/skillseed-roadmap-service/config"
	"github.com/Skillseed/skillseed-roadmap-service/endpoints"
	"github.com/Skillseed/skillseed-roadmap-service/internal/model"
	"github.com/Skillseed/skillseed-roadmap-service/internal/roadmap"
	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
	"github.com/Skillseed/skillseed-roadmap-service/middleware"
	"github.com/Skillseed/skillseed-roadmap-service/utils"
	"github.com/Skillseed/skillseed-roadmap-service/web"
)

const ServiceName = "skillseed-roadmap-service"

func main() {
	// Handle version/help commands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(utils.GetVersion().Str)
			os.Exit(0)
		case "help", "--help", "-h":
			fmt.Println("Skillseed Roadmap Service")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  skillseed-roadmap-service              Start the service")
			fmt.Println("  skillseed-roadmap-service version      Display version information")
			fmt.Println("  skillseed-roadmap-service -list        List telemetry events")
			fmt.Println("  skillseed-roadmap-service -purge <pattern>  Delete telemetry events matching pattern")
			os.Exit(0)
		}
	}

	purgeCmd := flag.Bool("purge", false, "Run in telemetry purge mode")
	listCmd := flag.Bool("list", false, "List telemetry events")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Could not load configuration: %v", err)
	}

	if *purgeCmd {
		patterns := flag.Args()
		if len(patterns) == 0 {
			fmt.Println("Usage: skillseed-roadmap-service -purge <pattern1> [pattern2] ...")
			fmt.Println("\nExamples:")
			fmt.Println("  skillseed-roadmap-service -purge '*'         # Delete all telemetry events")
			fmt.Println("  skillseed-roadmap-service -purge '1*'        # Delete events with IDs starting with 1")
			fmt.Println("\nFirst run with -list to see all event IDs")
			os.Exit(1)
		}
		if err := PurgeMode(cfg, patterns); err != nil {
			log.Fatalf("Purge operation failed: %v", err)
		}
		return
	}

	if *listCmd {
		if err := ListEvents(cfg); err != nil {
			log.Fatalf("List operation failed: %v", err)
		}
		return
	}

	// Redis is optional: without it the telemetry timeline and shared
	// model cooldowns are disabled, everything else works.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		log.Println("Initializing Redis connection...")
		redisClient, err = utils.GetRedisClient(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Printf("WARNING: Redis unavailable, telemetry timeline disabled: %v", err)
		} else {
			log.Println("Redis connected successfully")
		}
	}

	recorder := telemetry.NewRecorder(redisClient)

	modelClient := model.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Models, cfg.Temperature, cfg.MaxTokens, cfg.Timeout)
	modelClient.Cooldowns = recorder
	if cfg.APIKey == "" {
		log.Println("WARNING: LLM_API_KEY is not set; every request will use the fallback generator")
	}

	generator := &roadmap.Generator{Client: modelClient}

	// Create a context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		log.Println("Core Loop: Starting...")
		if err := RunCoreLoop(ctx, recorder); err != nil {
			log.Printf("Core Loop Error: %v", err)
			cancel()
		}
		log.Println("Core Loop: Stopped")
	}()

	r := mux.NewRouter()
	r.HandleFunc("/api/roadmap", endpoints.GenerateRoadmapHandler(generator, recorder, cfg.DevMode)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/models", endpoints.ListModelsHandler(cfg.Models, recorder)).Methods(http.MethodGet)
	r.HandleFunc("/service", endpoints.ServiceHandler(ServiceName, recorder)).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(web.Handler()).Methods(http.MethodGet)

	handler := middleware.CorsMiddleware(middleware.RequestLogMiddleware(r))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Timeout + 15*time.Second, // must outlast the provider call
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Starting %s on :%d\n", ServiceName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server crashed: %v", err)
		}
	}()

	// Wait for shutdown signal (SIGTERM from systemd or SIGINT from Ctrl+C)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down service...")

	utils.SetHealthStatus("SHUTTING_DOWN", "Service is shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Println("Service exited cleanly")
}
