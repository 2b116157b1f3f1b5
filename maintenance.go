package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Skillseed/skillseed-roadmap-service/config"
	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
	"github.com/Skillseed/skillseed-roadmap-service/utils"
)

// PurgeMode deletes telemetry events whose IDs match the given
// glob-style patterns.
func PurgeMode(cfg *config.Config, patterns []string) error {
	ctx := context.Background()

	rdb, err := connectForMaintenance(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedis(rdb)

	log.Printf("Purge patterns: %v", patterns)

	allEventIDs, err := rdb.ZRange(ctx, telemetry.TimelineKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch event IDs: %w", err)
	}

	log.Printf("Found %d total events in timeline", len(allEventIDs))
	if len(allEventIDs) == 0 {
		log.Println("No telemetry events found")
		return nil
	}

	matchingIDs := []string{}
	for _, eventID := range allEventIDs {
		if matchesAnyPattern(eventID, patterns) {
			matchingIDs = append(matchingIDs, eventID)
		}
	}

	if len(matchingIDs) == 0 {
		log.Printf("No events matched the patterns: %v", patterns)
		return nil
	}

	fmt.Printf("\nWARNING: About to delete %d event(s):\n", len(matchingIDs))
	if len(matchingIDs) <= 10 {
		for _, id := range matchingIDs {
			fmt.Printf("  - %s\n", id)
		}
	} else {
		for i := 0; i < 5; i++ {
			fmt.Printf("  - %s\n", matchingIDs[i])
		}
		fmt.Printf("  ... and %d more\n", len(matchingIDs)-5)
	}
	fmt.Printf("\nThis action CANNOT be undone.\n")
	fmt.Printf("Type 'yes' to confirm deletion: ")

	var confirmation string
	_, _ = fmt.Scanln(&confirmation)

	if confirmation != "yes" {
		log.Println("Deletion cancelled by user")
		return nil
	}

	deletedCount := 0
	for _, eventID := range matchingIDs {
		if err := deleteEvent(ctx, rdb, eventID); err != nil {
			log.Printf("Error deleting event %s: %v", eventID, err)
			continue
		}
		deletedCount++
	}

	log.Printf("Successfully deleted %d out of %d events", deletedCount, len(matchingIDs))
	return nil
}

// ListEvents prints every telemetry event currently in the timeline.
func ListEvents(cfg *config.Config) error {
	ctx := context.Background()

	rdb, err := connectForMaintenance(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedis(rdb)

	allEventIDs, err := rdb.ZRangeWithScores(ctx, telemetry.TimelineKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch event IDs: %w", err)
	}

	if len(allEventIDs) == 0 {
		fmt.Println("No telemetry events found")
		return nil
	}

	fmt.Printf("Found %d telemetry event(s):\n\n", len(allEventIDs))
	for _, z := range allEventIDs {
		id, _ := z.Member.(string)
		ts := time.Unix(int64(z.Score), 0).Format(time.RFC3339)

		outcome := "?"
		if data, err := rdb.Get(ctx, telemetry.EventKeyBase+id).Result(); err == nil {
			var e struct {
				Outcome string `json:"outcome"`
			}
			if json.Unmarshal([]byte(data), &e) == nil && e.Outcome != "" {
				outcome = e.Outcome
			}
		}

		fmt.Printf("  %s  %s  %s\n", id, ts, outcome)
	}

	return nil
}

func connectForMaintenance(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not configured; telemetry maintenance requires Redis")
	}

	log.Println("Connecting to Redis...")
	rdb, err := utils.GetRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("Connected to Redis at %s", cfg.RedisAddr)
	return rdb, nil
}

func closeRedis(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("Failed to close Redis connection: %v", err)
	}
}

// matchesAnyPattern checks if an event ID matches any of the given patterns.
func matchesAnyPattern(eventID string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(eventID, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern converts a glob-style pattern to regex and matches.
func matchesPattern(eventID, pattern string) bool {
	regexPattern := regexp.QuoteMeta(pattern)
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, ".*")
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, ".")
	regexPattern = "^" + regexPattern + "$"

	matched, err := regexp.MatchString(regexPattern, eventID)
	if err != nil {
		log.Printf("Invalid pattern '%s': %v", pattern, err)
		return false
	}

	return matched
}

// deleteEvent removes one telemetry event from all Redis structures.
func deleteEvent(ctx context.Context, rdb *redis.Client, eventID string) error {
	var outcome string
	if data, err := rdb.Get(ctx, telemetry.EventKeyBase+eventID).Result(); err == nil {
		var e struct {
			Outcome string `json:"outcome"`
		}
		if json.Unmarshal([]byte(data), &e) == nil {
			outcome = e.Outcome
		}
	}

	pipe := rdb.Pipeline()
	pipe.Del(ctx, telemetry.EventKeyBase+eventID)
	pipe.ZRem(ctx, telemetry.TimelineKey, eventID)
	if outcome != "" {
		pipe.ZRem(ctx, telemetry.OutcomeKeyBase+outcome, eventID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}

	return nil
}
