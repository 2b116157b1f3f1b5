package utils

import (
	"fmt"
	"sync"
	"time"
)

// Service health is process-global: one status, one start time.
var (
	healthMu      sync.RWMutex
	healthStart   = time.Now()
	healthStatus  = "STARTING"
	healthMessage = "Service is initializing"
)

// GetHealth returns the current health status with a freshly
// formatted uptime.
func GetHealth() Health {
	healthMu.RLock()
	defer healthMu.RUnlock()

	return Health{
		Status:  healthStatus,
		Uptime:  formatUptime(time.Since(healthStart)),
		Message: healthMessage,
	}
}

// SetHealthStatus updates the reported status and message.
func SetHealthStatus(status string, message string) {
	healthMu.Lock()
	healthStatus = status
	healthMessage = message
	healthMu.Unlock()
}

// formatUptime renders a duration using its largest useful units,
// e.g. "2d 3h 4m 5s" or "45s".
func formatUptime(d time.Duration) string {
	total := int64(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
