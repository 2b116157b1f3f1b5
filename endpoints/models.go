package endpoints

import (
	"net/http"

	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
)

// ModelStatus describes one configured candidate model.
type ModelStatus struct {
	Name       string `json:"name"`
	InCooldown bool   `json:"in_cooldown"`
}

// ListModelsHandler reports the configured candidate models and
// whether each is currently cooling down after a provider failure.
func ListModelsHandler(models []string, rec *telemetry.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make([]ModelStatus, 0, len(models))
		for _, m := range models {
			statuses = append(statuses, ModelStatus{
				Name:       m,
				InCooldown: rec.InCooldown(r.Context(), m),
			})
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"models": statuses})
	}
}
