package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Washing Machine":  "washing-machine",
		"Fridge":           "fridge",
		"A/C":              "a-c",
		"  Water  Pump  ":  "water-pump",
		"TV (living room)": "tv-living-room",
		"---":              "",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "name %q", name)
	}
}
