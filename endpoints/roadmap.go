package endpoints

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/Skillseed/skillseed-roadmap-service/internal/roadmap"
	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
	"github.com/Skillseed/skillseed-roadmap-service/types"
)

// Input validation messages surfaced to the caller on 400s.
const (
	errGoalRequired     = "Valid goal is required"
	errHoursRequired    = "Valid weekly hours is required (minimum 1)"
	errDurationRequired = "Valid total duration is required (minimum 1)"
)

// GenerateRoadmapHandler handles POST /api/roadmap. Bad input returns
// 400 immediately; everything past input validation resolves to a 200
// roadmap because the pipeline's fallback path cannot fail.
func GenerateRoadmapHandler(gen *roadmap.Generator, rec *telemetry.Recorder, devMode bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log.Printf("[endpoints] Panic in roadmap handler: %v\n%s", p, debug.Stack())
				body := map[string]string{"error": "internal server error"}
				if devMode {
					body["details"] = string(debug.Stack())
				}
				writeJSON(w, http.StatusInternalServerError, body)
			}
		}()

		var req types.RoadmapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			rec.RecordRejection()
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.Goal) == "" {
			rec.RecordRejection()
			writeJSONError(w, http.StatusBadRequest, errGoalRequired)
			return
		}
		if req.WeeklyHours < 1 {
			rec.RecordRejection()
			writeJSONError(w, http.StatusBadRequest, errHoursRequired)
			return
		}
		if req.TotalDuration < 1 {
			rec.RecordRejection()
			writeJSONError(w, http.StatusBadRequest, errDurationRequired)
			return
		}

		plan, outcome := gen.Generate(r.Context(), req)

		rec.RecordGeneration(r.Context(), string(outcome), map[string]interface{}{
			"weeks":        plan.TotalWeeks,
			"weekly_hours": plan.WeeklyHours,
		})

		writeJSON(w, http.StatusOK, plan)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[endpoints] Failed to encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
