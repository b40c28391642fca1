// Package nlp turns free-text energy questions into structured queries.
// It is a deterministic keyword/regex interpreter over a closed
// vocabulary of intents, devices and relative time phrases; there is no
// tokenizer and no model.
package nlp

import (
	"time"

	"WattChat.influxDB/internal/models"
)

// ParseQuery maps a question to a structured query seeded with now.
// It performs no validation: a total_usage query without a device is
// legal here and rejected at the aggregation boundary.
func ParseQuery(text string, now time.Time) models.StructuredQuery {
	start, end := ExtractTimeRange(text, now)
	return models.StructuredQuery{
		Intent:     DetectIntent(text),
		DeviceSlug: ExtractDeviceSlug(text),
		Start:      start,
		End:        end,
	}
}

// ApplyExplicitBounds replaces inferred bounds with caller-supplied
// ones. Each bound overrides independently: an explicit start does not
// force replacement of the inferred end, and vice versa.
func ApplyExplicitBounds(q models.StructuredQuery, start, end *time.Time) models.StructuredQuery {
	if start != nil {
		q.Start = start
	}
	if end != nil {
		q.End = end
	}
	return q
}
