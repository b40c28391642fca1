package nlp

import (
	"regexp"
	"strings"

	"WattChat.influxDB/internal/models"
)

// topDevicePatterns pair a ranking word with either "device(s)" or a
// consumption noun, in both orders. Every pattern yields the same
// intent, so order among them is immaterial; what matters is that all
// of them are tried before falling back to total_usage.
var topDevicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:top|most|highest)\b.*\bdevices?\b`),
	regexp.MustCompile(`\bdevices?\b.*\b(?:top|most|highest)\b`),
	regexp.MustCompile(`\b(?:top|most|highest)\b.*\b(?:power|energy|consumption|usage)\b`),
	regexp.MustCompile(`\b(?:power|energy|consumption|usage)\b.*\b(?:top|most|highest)\b`),
}

// DetectIntent classifies text into one of the supported intents. It is
// total: any text matching no ranking pattern is total_usage, so there
// is no "unknown intent" outcome.
func DetectIntent(text string) models.Intent {
	t := strings.ToLower(text)
	for _, pat := range topDevicePatterns {
		if pat.MatchString(t) {
			return models.IntentTopDevices
		}
	}
	return models.IntentTotalUsage
}
