package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID_Format(t *testing.T) {
	id := GenerateRunID("Supply Run")

	parts := strings.Split(id, "-")
	assert.True(t, strings.HasPrefix(id, "supply-run-"))
	assert.Len(t, parts[len(parts)-1], 8)
}

func TestGenerateRunID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateRunID("patrol"), GenerateRunID("patrol"))
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces", "Supply Run", "supply-run"},
		{"punctuation", "patrol #3", "patrol-3"},
		{"mixed separators", "a__b--c", "a-b-c"},
		{"leading and trailing junk", "  trim me  ", "trim-me"},
		{"empty", "", "mission"},
		{"only junk", "###", "mission"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slugify(tc.input))
		})
	}
}
