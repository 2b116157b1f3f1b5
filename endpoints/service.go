package endpoints

import (
	"net/http"

	"github.com/Skillseed/skillseed-roadmap-service/internal/telemetry"
	"github.com/Skillseed/skillseed-roadmap-service/utils"
)

// ServiceReport is the full status document returned by /service.
type ServiceReport struct {
	Service string            `json:"service"`
	Version utils.Version     `json:"version"`
	Health  utils.Health      `json:"health"`
	Metrics map[string]uint64 `json:"metrics"`
}

// ServiceHandler provides a status report for health checks and
// operational dashboards.
func ServiceHandler(serviceName string, rec *telemetry.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := ServiceReport{
			Service: serviceName,
			Version: utils.GetVersion(),
			Health:  utils.GetHealth(),
			Metrics: rec.Snapshot(),
		}

		status := http.StatusOK
		if report.Health.Status != "OK" {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, report)
	}
}
