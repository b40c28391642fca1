package nlp

import "strings"

type deviceEntry struct {
	slug     string
	variants []string
}

// deviceLexicon maps canonical slugs to the surface forms users type.
// Scan order is fixed so extraction is deterministic.
var deviceLexicon = []deviceEntry{
	{slug: "ac", variants: []string{"ac", "a/c", "air conditioner"}},
	{slug: "fridge", variants: []string{"fridge", "refrigerator"}},
	{slug: "tv", variants: []string{"tv", "television"}},
	{slug: "heater", variants: []string{"heater"}},
	{slug: "washing-machine", variants: []string{"washing machine", "washer"}},
	{slug: "router", variants: []string{"router", "wifi router"}},
	{slug: "pump", variants: []string{"pump", "water pump"}},
}

// ExtractDeviceSlug returns the canonical slug of the first known device
// mentioned in text, or "" when no variant occurs.
func ExtractDeviceSlug(text string) string {
	t := strings.ToLower(text)
	for _, entry := range deviceLexicon {
		for _, variant := range entry.variants {
			if strings.Contains(t, variant) {
				return entry.slug
			}
		}
	}
	return ""
}

// ExtractDeviceSlugs returns every known device mentioned in text,
// preserving lexicon order. Each slug appears at most once.
func ExtractDeviceSlugs(text string) []string {
	t := strings.ToLower(text)
	var slugs []string
	for _, entry := range deviceLexicon {
		for _, variant := range entry.variants {
			if strings.Contains(t, variant) {
				slugs = append(slugs, entry.slug)
				break
			}
		}
	}
	return slugs
}
