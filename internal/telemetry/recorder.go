package telemetry

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventTTL bounds how long a telemetry event stays in Redis.
const EventTTL = 7 * 24 * time.Hour

const (
	TimelineKey    = "roadmap:events:timeline"
	OutcomeKeyBase = "roadmap:events:outcome:"
	EventKeyBase   = "roadmap:event:"
	CooldownBase   = "roadmap:model:cooldown:"
)

// Recorder tracks generation outcomes. Counters are in-process and
// always available; the Redis timeline is best-effort and disabled
// when no client is configured. Events carry outcome metadata only,
// never roadmap content.
type Recorder struct {
	Redis *redis.Client

	requests  atomic.Uint64
	model     atomic.Uint64
	fallbacks atomic.Uint64
	rejected  atomic.Uint64

	// In-memory cooldowns when Redis is absent.
	mu        sync.Mutex
	cooldowns map[string]time.Time
}

// NewRecorder builds a recorder. A nil Redis client is valid and
// disables the event timeline.
func NewRecorder(rdb *redis.Client) *Recorder {
	return &Recorder{
		Redis:     rdb,
		cooldowns: make(map[string]time.Time),
	}
}

// event mirrors the stored JSON shape for one generation event.
type event struct {
	ID        string                 `json:"id"`
	Outcome   string                 `json:"outcome"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// RecordGeneration counts one completed generation and appends it to
// the Redis timeline. The write is fire-and-forget.
func (r *Recorder) RecordGeneration(ctx context.Context, outcome string, meta map[string]interface{}) {
	r.requests.Add(1)
	switch outcome {
	case "model":
		r.model.Add(1)
	case "fallback":
		r.fallbacks.Add(1)
	}

	if r.Redis == nil {
		return
	}

	e := event{
		ID:        uuid.New().String(),
		Outcome:   outcome,
		Meta:      meta,
		Timestamp: time.Now().Unix(),
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return
	}

	pipe := r.Redis.Pipeline()
	pipe.Set(ctx, EventKeyBase+e.ID, payload, EventTTL)
	pipe.ZAdd(ctx, TimelineKey, redis.Z{Score: float64(e.Timestamp), Member: e.ID})
	pipe.ZAdd(ctx, OutcomeKeyBase+outcome, redis.Z{Score: float64(e.Timestamp), Member: e.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[telemetry] Failed to record generation event: %v", err)
	}
}

// RecordRejection counts a request refused by input validation.
func (r *Recorder) RecordRejection() {
	r.requests.Add(1)
	r.rejected.Add(1)
}

// Snapshot returns the current counters for the status report.
func (r *Recorder) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"requests":          r.requests.Load(),
		"model_roadmaps":    r.model.Load(),
		"fallback_roadmaps": r.fallbacks.Load(),
		"rejected_inputs":   r.rejected.Load(),
	}
}

// InCooldown reports whether a model was recently marked unavailable.
func (r *Recorder) InCooldown(ctx context.Context, model string) bool {
	if r.Redis != nil {
		n, err := r.Redis.Exists(ctx, CooldownBase+model).Result()
		if err == nil {
			return n > 0
		}
		// Redis hiccup: fall through to the in-memory view.
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	deadline, ok := r.cooldowns[model]
	if !ok {
		return false
	}
	if time.Now().After(deadline) {
		delete(r.cooldowns, model)
		return false
	}
	return true
}

// MarkCooldown flags a model as unavailable for the given window.
func (r *Recorder) MarkCooldown(ctx context.Context, model string, d time.Duration) {
	if r.Redis != nil {
		if err := r.Redis.Set(ctx, CooldownBase+model, "1", d).Err(); err != nil {
			log.Printf("[telemetry] Failed to mark cooldown for %s: %v", model, err)
		}
	}

	r.mu.Lock()
	r.cooldowns[model] = time.Now().Add(d)
	r.mu.Unlock()
}
