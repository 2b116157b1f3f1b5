package roadmap

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Skillseed/skillseed-roadmap-service/types"
)

func testRequest() types.RoadmapRequest {
	return types.RoadmapRequest{Goal: "Learn Go", WeeklyHours: 4, TotalDuration: 2}
}

func candidateFromJSON(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		t.Fatalf("Test fixture is not valid JSON: %v", err)
	}
	return candidate
}

func TestNormalize_DefaultsFromRequest(t *testing.T) {
	candidate := candidateFromJSON(t, `{
		"roadmap": [
			{"topics": [{"title": "t", "description": "d", "estimatedHours": 2, "whyImportant": "w", "whyThisOrder": "o"}]}
		]
	}`)

	plan, err := Normalize(candidate, testRequest())
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if plan.Goal != "Learn Go" {
		t.Errorf("Expected goal from request, got %q", plan.Goal)
	}
	if plan.WeeklyHours != 4 {
		t.Errorf("Expected weeklyHours from request, got %d", plan.WeeklyHours)
	}
	if plan.Roadmap[0].Summary != "Week 1 focus for Learn Go" {
		t.Errorf("Expected templated summary, got %q", plan.Roadmap[0].Summary)
	}
	if plan.Roadmap[0].Resources == nil {
		t.Error("Expected resources to default to an empty slice")
	}
}

func TestNormalize_RewritesWeekNumbers(t *testing.T) {
	candidate := candidateFromJSON(t, `{
		"goal": "Learn Go",
		"roadmap": [
			{"week": 7, "summary": "a", "topics": [{"title": "t", "description": "d", "estimatedHours": 1, "whyImportant": "w", "whyThisOrder": "o"}]},
			{"week": 3, "summary": "b", "topics": [{"title": "t", "description": "d", "estimatedHours": 1, "whyImportant": "w", "whyThisOrder": "o"}]}
		]
	}`)

	plan, err := Normalize(candidate, testRequest())
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	for i, week := range plan.Roadmap {
		if week.Week != i+1 {
			t.Errorf("Week at position %d has number %d, expected %d", i, week.Week, i+1)
		}
	}
}

func TestNormalize_TotalWeeksTrustsActualLength(t *testing.T) {
	// The model declared 10 weeks but delivered 2; the actual list wins.
	candidate := candidateFromJSON(t, `{
		"goal": "Learn Go",
		"totalWeeks": 10,
		"roadmap": [
			{"week": 1, "summary": "a", "topics": [{"title": "t", "description": "d", "estimatedHours": 1, "whyImportant": "w", "whyThisOrder": "o"}]},
			{"week": 2, "summary": "b", "topics": [{"title": "t", "description": "d", "estimatedHours": 1, "whyImportant": "w", "whyThisOrder": "o"}]}
		]
	}`)

	plan, err := Normalize(candidate, testRequest())
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if plan.TotalWeeks != 2 {
		t.Errorf("Expected totalWeeks overwritten to 2, got %d", plan.TotalWeeks)
	}
}

func TestNormalize_NonSliceTopicsBecomesEmpty(t *testing.T) {
	candidate := candidateFromJSON(t, `{
		"goal": "Learn Go",
		"roadmap": [
			{"week": 1, "summary": "a", "topics": "none"},
			{"week": 2, "summary": "b", "topics": [{"title": "t", "description": "d", "estimatedHours": 1, "whyImportant": "w", "whyThisOrder": "o"}]}
		]
	}`)

	plan, err := Normalize(candidate, testRequest())
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if len(plan.Roadmap[0].Topics) != 0 {
		t.Errorf("Expected empty topics for week 1, got %d", len(plan.Roadmap[0].Topics))
	}
	if len(plan.Roadmap[1].Topics) != 1 {
		t.Errorf("Expected one topic for week 2, got %d", len(plan.Roadmap[1].Topics))
	}
}

func TestNormalize_ZeroTopicsIsFailure(t *testing.T) {
	candidate := candidateFromJSON(t, `{
		"goal": "Learn Go",
		"roadmap": [
			{"week": 1, "summary": "a", "topics": []},
			{"week": 2, "summary": "b", "topics": []}
		]
	}`)

	_, err := Normalize(candidate, testRequest())
	if !errors.Is(err, ErrNoTopics) {
		t.Errorf("Expected ErrNoTopics, got %v", err)
	}
}

func TestNormalize_CarriesOptionalTopicFields(t *testing.T) {
	candidate := candidateFromJSON(t, `{
		"goal": "Learn Go",
		"roadmap": [
			{"week": 1, "summary": "a", "topics": [{
				"title": "t", "description": "d", "estimatedHours": 2.5,
				"whyImportant": "w", "whyThisOrder": "o",
				"commands": ["go run ."], "files": ["main.go"], "tools": ["VS Code"],
				"outcome": "a running program"
			}], "resources": ["https://go.dev/tour"]}
		]
	}`)

	plan, err := Normalize(candidate, testRequest())
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	topic := plan.Roadmap[0].Topics[0]
	if topic.EstimatedHours != 2.5 {
		t.Errorf("Expected estimatedHours 2.5, got %v", topic.EstimatedHours)
	}
	if len(topic.Commands) != 1 || topic.Commands[0] != "go run ." {
		t.Errorf("Expected commands carried over, got %v", topic.Commands)
	}
	if topic.Outcome != "a running program" {
		t.Errorf("Expected outcome carried over, got %q", topic.Outcome)
	}
	if len(plan.Roadmap[0].Resources) != 1 {
		t.Errorf("Expected week resources carried over, got %v", plan.Roadmap[0].Resources)
	}
}
