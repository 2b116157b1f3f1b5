package roadmap

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Skillseed/skillseed-roadmap-service/types"
)

const pipelineName = "roadmap-pipeline"

// Outcome identifies which path produced a roadmap.
type Outcome string

const (
	OutcomeModel    Outcome = "model"
	OutcomeFallback Outcome = "fallback"
)

// ModelCaller is the outbound surface the pipeline needs from the
// provider client: one system/user exchange, one text reply.
type ModelCaller interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Generator runs the full normalization pipeline: prompt construction,
// model call, sanitization, parse, validation, repair. Any stage
// failure escalates to the deterministic fallback, so Generate always
// returns a structurally valid roadmap.
type Generator struct {
	Client ModelCaller
}

// Generate produces a roadmap for the request and reports which path
// built it. The provider is attempted at most once per request.
func (g *Generator) Generate(ctx context.Context, req types.RoadmapRequest) (types.Roadmap, Outcome) {
	topicsPerWeek := TopicsPerWeek(req.WeeklyHours)

	fallback := func(stage string, reason interface{}) (types.Roadmap, Outcome) {
		log.Printf("[%s] %s failed (%v), using fallback generator", pipelineName, stage, reason)
		return Fallback(req.Goal, req.WeeklyHours, req.TotalDuration, topicsPerWeek), OutcomeFallback
	}

	if g.Client == nil {
		return fallback("call", "no model client configured")
	}

	system, user := BuildPrompt(req.Goal, req.WeeklyHours, req.TotalDuration)

	raw, err := g.Client.Complete(ctx, system, user)
	if err != nil {
		return fallback("call", err)
	}

	cleaned := Sanitize(raw)

	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &candidate); err != nil {
		return fallback("parse", err)
	}

	if res := Validate(candidate); !res.OK {
		return fallback("validate", res.Reason)
	}

	plan, err := Normalize(candidate, req)
	if err != nil {
		return fallback("normalize", err)
	}

	return plan, OutcomeModel
}
