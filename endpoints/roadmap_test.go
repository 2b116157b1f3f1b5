package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Skillseed/skillseed-roadmap-service/internal/roadmap"
	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
	"github.com/Skillseed/skillseed-roadmap-service/types"
)

// failingCaller simulates a provider that is down or returns nothing.
type failingCaller struct{}

func (failingCaller) Complete(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("provider returned empty body")
}

func postRoadmap(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/roadmap", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func newTestHandler() http.HandlerFunc {
	gen := &roadmap.Generator{Client: failingCaller{}}
	return GenerateRoadmapHandler(gen, telemetry.NewRecorder(nil), false)
}

func TestGenerateRoadmap_FallbackOnProviderFailure(t *testing.T) {
	rr := postRoadmap(t, newTestHandler(), types.RoadmapRequest{
		Goal:          "Become a Frontend Developer",
		WeeklyHours:   10,
		TotalDuration: 4,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var plan types.Roadmap
	if err := json.Unmarshal(rr.Body.Bytes(), &plan); err != nil {
		t.Fatalf("Response is not a roadmap: %v", err)
	}

	if plan.TotalWeeks != 4 {
		t.Errorf("Expected totalWeeks=4, got %d", plan.TotalWeeks)
	}
	if plan.WeeklyHours != 10 {
		t.Errorf("Expected weeklyHours=10, got %d", plan.WeeklyHours)
	}
	if len(plan.Roadmap) != 4 {
		t.Fatalf("Expected 4 weeks, got %d", len(plan.Roadmap))
	}
	for _, week := range plan.Roadmap {
		if len(week.Topics) != 5 {
			t.Errorf("Week %d has %d topics, expected 5", week.Week, len(week.Topics))
		}
		for _, topic := range week.Topics {
			if topic.Title == "" || topic.Description == "" || topic.WhyImportant == "" || topic.WhyThisOrder == "" {
				t.Errorf("Week %d has a topic with empty required fields", week.Week)
			}
		}
	}
}

func TestGenerateRoadmap_InputValidation(t *testing.T) {
	testCases := []struct {
		name      string
		request   types.RoadmapRequest
		wantError string
	}{
		{
			name:      "blank goal",
			request:   types.RoadmapRequest{Goal: "   ", WeeklyHours: 10, TotalDuration: 4},
			wantError: "Valid goal is required",
		},
		{
			name:      "zero weekly hours",
			request:   types.RoadmapRequest{Goal: "Learn Go", WeeklyHours: 0, TotalDuration: 4},
			wantError: "Valid weekly hours is required (minimum 1)",
		},
		{
			name:      "negative weekly hours",
			request:   types.RoadmapRequest{Goal: "Learn Go", WeeklyHours: -2, TotalDuration: 4},
			wantError: "Valid weekly hours is required (minimum 1)",
		},
		{
			name:      "zero duration",
			request:   types.RoadmapRequest{Goal: "Learn Go", WeeklyHours: 10, TotalDuration: 0},
			wantError: "Valid total duration is required (minimum 1)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postRoadmap(t, newTestHandler(), tc.request)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("Error response is not JSON: %v", err)
			}
			if body["error"] != tc.wantError {
				t.Errorf("Expected error %q, got %q", tc.wantError, body["error"])
			}
		})
	}
}

func TestGenerateRoadmap_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/roadmap", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	newTestHandler()(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rr.Code)
	}
}

func TestGenerateRoadmap_CountsTelemetry(t *testing.T) {
	rec := telemetry.NewRecorder(nil)
	gen := &roadmap.Generator{Client: failingCaller{}}
	handler := GenerateRoadmapHandler(gen, rec, false)

	postRoadmap(t, handler, types.RoadmapRequest{Goal: "Learn Go", WeeklyHours: 4, TotalDuration: 1})
	postRoadmap(t, handler, types.RoadmapRequest{Goal: "", WeeklyHours: 4, TotalDuration: 1})

	snap := rec.Snapshot()
	if snap["requests"] != 2 {
		t.Errorf("Expected 2 requests counted, got %d", snap["requests"])
	}
	if snap["fallback_roadmaps"] != 1 {
		t.Errorf("Expected 1 fallback counted, got %d", snap["fallback_roadmaps"])
	}
	if snap["rejected_inputs"] != 1 {
		t.Errorf("Expected 1 rejection counted, got %d", snap["rejected_inputs"])
	}
}
