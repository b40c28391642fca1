package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDeviceSlugCaseInsensitive(t *testing.T) {
	for _, text := range []string{"My Fridge", "my fridge", "FRIDGE", "the refrigerator"} {
		assert.Equal(t, "fridge", ExtractDeviceSlug(text), "text %q", text)
	}
}

func TestExtractDeviceSlugVariants(t *testing.T) {
	cases := map[string]string{
		"the air conditioner in the bedroom": "ac",
		"my television":                      "tv",
		"is the heater on":                   "heater",
		"the washer ran twice":               "washing-machine",
		"wifi router":                        "router",
		"the water pump outside":             "pump",
	}
	for text, want := range cases {
		assert.Equal(t, want, ExtractDeviceSlug(text), "text %q", text)
	}
}

func TestExtractDeviceSlugNoMatch(t *testing.T) {
	for _, text := range []string{"how much energy did my oven use today?", "", "just words"} {
		assert.Equal(t, "", ExtractDeviceSlug(text), "text %q", text)
	}
}

func TestExtractDeviceSlugs(t *testing.T) {
	slugs := ExtractDeviceSlugs("compare my fridge, tv and heater")
	assert.Equal(t, []string{"fridge", "tv", "heater"}, slugs)

	// Two variants of one device still yield a single slug.
	slugs = ExtractDeviceSlugs("the fridge, also known as the refrigerator")
	assert.Equal(t, []string{"fridge"}, slugs)

	assert.Empty(t, ExtractDeviceSlugs("nothing known here"))
}
