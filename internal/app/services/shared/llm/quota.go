package llm

import "strings"

var quotaMarkers = []string{"QUOTA_EXCEEDED", "RESOURCE_EXHAUSTED", "QUOTA EXCEEDED", "RATE LIMIT"}

// isQuotaMessage reports whether an upstream message describes a spent budget.
func isQuotaMessage(message string) bool {
	upper := strings.ToUpper(message)
	for _, marker := range quotaMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
