package nlp

import (
	"strings"
	"time"
)

type timePhrase struct {
	phrase  string
	resolve func(now time.Time) (time.Time, time.Time)
}

// relativePhrases is checked in priority order, not alphabetical:
// overlapping phrases must resolve to whichever appears first here.
var relativePhrases = []timePhrase{
	{"yesterday", func(now time.Time) (time.Time, time.Time) {
		start := midnight(now.UTC().AddDate(0, 0, -1))
		return start, start.Add(24 * time.Hour)
	}},
	{"today", func(now time.Time) (time.Time, time.Time) {
		return midnight(now.UTC()), now.UTC()
	}},
	{"last week", trailing(7 * 24 * time.Hour)},
	{"past week", trailing(7 * 24 * time.Hour)},
	{"last 7 days", trailing(7 * 24 * time.Hour)},
	{"last 24 hours", trailing(24 * time.Hour)},
}

func trailing(d time.Duration) func(time.Time) (time.Time, time.Time) {
	return func(now time.Time) (time.Time, time.Time) {
		return now.UTC().Add(-d), now.UTC()
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExtractTimeRange resolves the first relative time phrase found in text
// against now. Both bounds are nil when no phrase matches, which later
// applies as an unbounded window. Windows are half-open: [start, end).
func ExtractTimeRange(text string, now time.Time) (*time.Time, *time.Time) {
	t := strings.ToLower(text)
	for _, p := range relativePhrases {
		if strings.Contains(t, p.phrase) {
			start, end := p.resolve(now)
			return &start, &end
		}
	}
	return nil, nil
}
