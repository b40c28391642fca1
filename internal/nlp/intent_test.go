package nlp

import (
	"testing"

	"WattChat.influxDB/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectIntentTopDevices(t *testing.T) {
	questions := []string{
		"Which of my devices are using the most power today?",
		"top devices by consumption",
		"what are my top 5 devices",
		"which device has the highest energy usage",
		"show the devices with the most consumption",
		"HIGHEST POWER devices last week",
	}
	for _, q := range questions {
		assert.Equal(t, models.IntentTopDevices, DetectIntent(q), "question %q", q)
	}
}

func TestDetectIntentDefaultsToTotalUsage(t *testing.T) {
	questions := []string{
		"How much energy did my fridge use yesterday?",
		"how much power is my tv using",
		"fridge usage please",
		"hello",
		"",
		"?????",
	}
	for _, q := range questions {
		assert.Equal(t, models.IntentTotalUsage, DetectIntent(q), "question %q", q)
	}
}

func TestDetectIntentIsTotal(t *testing.T) {
	// Arbitrary garbage always classifies; there is no error path.
	inputs := []string{"\x00\x01", "日本語のテキスト", "a b c d e f g", "((((", "most", "devices"}
	for _, q := range inputs {
		intent := DetectIntent(q)
		assert.Contains(t, []models.Intent{models.IntentTotalUsage, models.IntentTopDevices}, intent)
	}
}
